/*******************************************************************************
* Copyright (C) 2025 the Eclipse BaSyx Authors
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package compliance checks AAS environments against the meta-model
// constraints of 'Details of the Asset Administration Shell'.
package compliance

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/rwth-iat/basyx-go-framework/pkg/jsonization"
	"github.com/rwth-iat/basyx-go-framework/pkg/model"
	"github.com/rwth-iat/basyx-go-framework/pkg/xmlization"
)

// Level classifies a finding.
type Level string

const (
	LevelError   Level = "ERROR"
	LevelWarning Level = "WARNING"
)

// Finding is a single compliance violation located by the path of the object
// it was found on.
type Finding struct {
	Level   Level  `json:"level"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s", f.Level, f.Path, f.Message)
}

// Report collects the findings of one checker run.
type Report struct {
	// ID correlates the report with log output of long-running checks.
	ID string `json:"id"`

	Findings []Finding `json:"findings"`
}

// Compliant reports whether the run produced no error findings. Warnings do
// not affect compliance.
func (r *Report) Compliant() bool {
	for _, f := range r.Findings {
		if f.Level == LevelError {
			return false
		}
	}
	return true
}

// Errors returns the error findings.
func (r *Report) Errors() []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Level == LevelError {
			out = append(out, f)
		}
	}
	return out
}

func (r *Report) add(level Level, path string, format string, args ...interface{}) {
	r.Findings = append(r.Findings, Finding{
		Level:   level,
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	})
}

// idShortPattern is the allowed shape of idShort values, constraint AASd-002.
var idShortPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// Checker validates environments. A zero Checker is not usable, create one
// with NewChecker.
type Checker struct {
	validate *validator.Validate
}

// NewChecker creates a Checker.
func NewChecker() *Checker {
	return &Checker{validate: validator.New()}
}

// CheckEnvironment checks all objects of the environment and the references
// between them.
func (c *Checker) CheckEnvironment(env *model.Environment) *Report {
	report := &Report{ID: uuid.New().String()}

	submodelIDs := make(map[string]struct{})
	for _, sm := range env.Submodels {
		submodelIDs[sm.ID] = struct{}{}
	}

	seenIDs := make(map[string]string)
	for _, identifiable := range env.Identifiables() {
		path := identifiablePath(identifiable)
		if previous, ok := seenIDs[identifiable.GetID()]; ok {
			report.add(LevelError, path, "duplicate identifier, already used by %s", previous)
		}
		seenIDs[identifiable.GetID()] = path
		c.checkIdentifiable(report, path, identifiable)
	}

	for _, aas := range env.AssetAdministrationShells {
		path := identifiablePath(aas)
		if err := model.AssertAssetAdministrationShellConstraints(*aas); err != nil {
			report.add(LevelError, path, "%s", err)
		}
		c.checkAssetInformation(report, path, aas.AssetInformation)
		for _, ref := range aas.Submodels {
			c.checkReference(report, path+"/submodels", ref)
			if ref.Type == model.REFERENCETYPES_MODEL_REFERENCE && len(ref.Keys) > 0 &&
				ref.Keys[0].Type == model.KEYTYPES_SUBMODEL {
				if _, ok := submodelIDs[ref.Keys[0].Value]; !ok {
					report.add(LevelWarning, path+"/submodels",
						"reference to submodel %s which is not part of the environment", ref.Keys[0].Value)
				}
			}
		}
	}

	for _, sm := range env.Submodels {
		path := identifiablePath(sm)
		if err := model.AssertSubmodelConstraints(*sm); err != nil {
			report.add(LevelError, path, "%s", err)
		}
		c.checkQualifiers(report, path, sm.Qualifiers)
		c.checkElements(report, path, sm.SubmodelElements, false)
	}

	for _, cd := range env.ConceptDescriptions {
		path := identifiablePath(cd)
		for _, ref := range cd.IsCaseOf {
			c.checkReference(report, path+"/isCaseOf", ref)
		}
	}

	return report
}

// CheckObjects checks the identifiables as one environment.
func (c *Checker) CheckObjects(objects []model.Identifiable) *Report {
	return c.CheckEnvironment(jsonization.EnvironmentFromObjects(objects))
}

// CheckFile reads the AAS file at the given path and checks its content. The
// serialization format is chosen by the file extension, .json or .xml.
func (c *Checker) CheckFile(path string) (*Report, error) {
	var objectStore interface{ All() []model.Identifiable }
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		objectStore, err = jsonization.ReadEnvironmentFile(path, jsonization.ReadOptions{})
	case ".xml":
		objectStore, err = xmlization.ReadEnvironmentFile(path, jsonization.ReadOptions{})
	default:
		return nil, fmt.Errorf("unsupported file extension %q, expected .json or .xml", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	return c.CheckObjects(objectStore.All()), nil
}

func identifiablePath(obj model.Identifiable) string {
	return fmt.Sprintf("%s[%s]", obj.GetModelType(), obj.GetID())
}

func (c *Checker) checkIdentifiable(report *Report, path string, obj model.Identifiable) {
	switch v := obj.(type) {
	case *model.AssetAdministrationShell:
		if err := model.AssertAssetAdministrationShellRequired(*v); err != nil {
			report.add(LevelError, path, "%s", err)
		}
	case *model.Submodel:
		if err := model.AssertSubmodelRequired(*v); err != nil {
			report.add(LevelError, path, "%s", err)
		}
	case *model.ConceptDescription:
		if err := model.AssertConceptDescriptionRequired(*v); err != nil {
			report.add(LevelError, path, "%s", err)
		}
	}
	if err := c.validate.Var(obj.GetID(), "required,max=2048"); err != nil {
		report.add(LevelError, path, "id must be a non-empty string of at most 2048 characters")
	}
	c.checkIdShort(report, path, obj.GetIdShort())
}

func (c *Checker) checkIdShort(report *Report, path string, idShort string) {
	if idShort == "" {
		return
	}
	if err := c.validate.Var(idShort, "max=128"); err != nil {
		report.add(LevelError, path, "idShort %q is longer than 128 characters", idShort)
		return
	}
	if !idShortPattern.MatchString(idShort) {
		report.add(LevelError, path,
			"idShort %q shall only feature letters, digits, underscores and start with a letter", idShort)
	}
}

func (c *Checker) checkLangStrings(report *Report, path string, languages []string) {
	for _, language := range languages {
		if err := c.validate.Var(language, "required,bcp47_language_tag"); err != nil {
			report.add(LevelError, path, "%q is not a valid BCP 47 language tag", language)
		}
	}
}

func (c *Checker) checkReference(report *Report, path string, ref model.Reference) {
	if err := model.AssertReferenceRequired(ref); err != nil {
		report.add(LevelError, path, "%s", err)
		return
	}
	if err := model.AssertReferenceConstraints(ref); err != nil {
		report.add(LevelError, path, "%s", err)
	}
}

func (c *Checker) checkAssetInformation(report *Report, path string, info model.AssetInformation) {
	if err := model.AssertAssetInformationRequired(info); err != nil {
		report.add(LevelError, path+"/assetInformation", "%s", err)
	}
	if info.GlobalAssetId != "" {
		if err := c.validate.Var(info.GlobalAssetId, "max=2048"); err != nil {
			report.add(LevelError, path+"/assetInformation",
				"globalAssetId is longer than 2048 characters")
		}
	}
	for _, sid := range info.SpecificAssetIds {
		if err := model.AssertSpecificAssetIdRequired(sid); err != nil {
			report.add(LevelError, path+"/assetInformation/specificAssetIds", "%s", err)
		}
	}
}

func (c *Checker) checkQualifiers(report *Report, path string, qualifiers []model.Qualifier) {
	types := make(map[string]struct{}, len(qualifiers))
	for _, q := range qualifiers {
		if err := model.AssertQualifierRequired(q); err != nil {
			report.add(LevelError, path+"/qualifiers", "%s", err)
			continue
		}
		if err := model.AssertQualifierConstraints(q); err != nil {
			report.add(LevelError, path+"/qualifiers", "%s", err)
		}
		// Constraint AASd-021: qualifier types are unique per element.
		if _, ok := types[q.Type]; ok {
			report.add(LevelError, path+"/qualifiers", "duplicate qualifier type %q", q.Type)
		}
		types[q.Type] = struct{}{}
	}
}

// checkElements descends into a list of submodel elements. insideList is true
// for the direct values of a SubmodelElementList, where idShorts are not
// allowed (constraint AASd-120).
func (c *Checker) checkElements(report *Report, parentPath string, elements []model.SubmodelElement, insideList bool) {
	idShorts := make(map[string]struct{}, len(elements))
	for i, el := range elements {
		path := parentPath + "/" + el.GetIdShort()
		if el.GetIdShort() == "" {
			path = fmt.Sprintf("%s[%d]", parentPath, i)
		}

		if err := model.AssertSubmodelElementRequired(el); err != nil {
			report.add(LevelError, path, "%s", err)
		}
		c.checkIdShort(report, path, el.GetIdShort())

		if insideList && el.GetIdShort() != "" {
			report.add(LevelError, path, "elements of a SubmodelElementList shall not have an idShort")
		}
		if !insideList {
			if el.GetIdShort() == "" {
				report.add(LevelError, path, "idShort is required outside of a SubmodelElementList")
			} else if _, ok := idShorts[el.GetIdShort()]; ok {
				// Constraint AASd-022: idShorts are unique within a namespace.
				report.add(LevelError, path, "duplicate idShort %q", el.GetIdShort())
			}
			idShorts[el.GetIdShort()] = struct{}{}
		}

		c.checkQualifiers(report, path, el.GetQualifiers())
		c.checkElement(report, path, el)
	}
}

//nolint:all
func (c *Checker) checkElement(report *Report, path string, el model.SubmodelElement) {
	switch v := el.(type) {
	case *model.Property:
		c.checkValueOfType(report, path, v.Value, v.ValueType)
	case *model.MultiLanguageProperty:
		languages := make([]string, 0, len(v.Value))
		for _, ls := range v.Value {
			languages = append(languages, ls.Language)
		}
		c.checkLangStrings(report, path, languages)
	case *model.Range:
		c.checkValueOfType(report, path, v.Min, v.ValueType)
		c.checkValueOfType(report, path, v.Max, v.ValueType)
	case *model.ReferenceElement:
		if v.Value != nil {
			c.checkReference(report, path, *v.Value)
		}
	case *model.RelationshipElement:
		c.checkReference(report, path+"/first", v.First)
		c.checkReference(report, path+"/second", v.Second)
	case *model.AnnotatedRelationshipElement:
		c.checkReference(report, path+"/first", v.First)
		c.checkReference(report, path+"/second", v.Second)
		c.checkElements(report, path+"/annotations", v.Annotations, false)
	case *model.Entity:
		if err := model.AssertEntityConstraints(*v); err != nil {
			report.add(LevelError, path, "%s", err)
		}
		c.checkElements(report, path+"/statements", v.Statements, false)
	case *model.BasicEventElement:
		c.checkReference(report, path+"/observed", v.Observed)
	case *model.Operation:
		for _, variables := range [][]model.OperationVariable{v.InputVariables, v.OutputVariables, v.InoutputVariables} {
			for _, variable := range variables {
				if variable.Value == nil {
					report.add(LevelError, path, "operation variable without a value element")
				}
			}
		}
	case *model.SubmodelElementCollection:
		c.checkElements(report, path, v.Value, false)
	case *model.SubmodelElementList:
		// Constraint AASd-108: list elements match typeValueListElement.
		for _, child := range v.Value {
			if !elementMatchesListType(child, v.TypeValueListElement) {
				report.add(LevelError, path,
					"element of modelType %s does not match typeValueListElement %s",
					child.GetModelType(), v.TypeValueListElement)
			}
		}
		c.checkElements(report, path, v.Value, true)
	}
}

func elementMatchesListType(el model.SubmodelElement, listType model.AasSubmodelElements) bool {
	switch listType {
	case model.AASSUBMODELELEMENTS_SUBMODEL_ELEMENT, model.AASSUBMODELELEMENTS_DATA_ELEMENT,
		model.AASSUBMODELELEMENTS_EVENT_ELEMENT, model.AASSUBMODELELEMENTS_RELATIONSHIP_ELEMENT:
		// Abstract kinds admit any of their concrete subtypes; checking the
		// hierarchy is left to schema validation.
		return true
	}
	return el.GetModelType() == string(listType)
}

// checkValueOfType checks that a lexical value conforms to its XSD value
// type, for the numeric and boolean types where the check is cheap.
func (c *Checker) checkValueOfType(report *Report, path string, value string, valueType model.DataTypeDefXsd) {
	if value == "" {
		return
	}
	var err error
	switch valueType {
	case model.DATATYPEDEFXSD_INT, model.DATATYPEDEFXSD_INTEGER, model.DATATYPEDEFXSD_LONG,
		model.DATATYPEDEFXSD_SHORT, model.DATATYPEDEFXSD_BYTE, model.DATATYPEDEFXSD_NEGATIVE_INTEGER,
		model.DATATYPEDEFXSD_NON_POSITIVE_INTEGER:
		_, err = strconv.ParseInt(value, 10, 64)
	case model.DATATYPEDEFXSD_UNSIGNED_INT, model.DATATYPEDEFXSD_UNSIGNED_LONG,
		model.DATATYPEDEFXSD_UNSIGNED_SHORT, model.DATATYPEDEFXSD_UNSIGNED_BYTE,
		model.DATATYPEDEFXSD_NON_NEGATIVE_INTEGER, model.DATATYPEDEFXSD_POSITIVE_INTEGER:
		_, err = strconv.ParseUint(value, 10, 64)
	case model.DATATYPEDEFXSD_DOUBLE, model.DATATYPEDEFXSD_FLOAT, model.DATATYPEDEFXSD_DECIMAL:
		_, err = strconv.ParseFloat(value, 64)
	case model.DATATYPEDEFXSD_BOOLEAN:
		if value != "true" && value != "false" && value != "0" && value != "1" {
			err = fmt.Errorf("not a boolean")
		}
	}
	if err != nil {
		report.add(LevelError, path, "value %q is not a valid %s", value, valueType)
	}
}
