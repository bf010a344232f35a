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

package model

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

// Submodel struct representing a Submodel.
type Submodel struct {
	Extensions []Extension `json:"extensions,omitempty"`

	Category string `json:"category,omitempty"`

	//nolint:all
	IdShort string `json:"idShort,omitempty"`

	DisplayName []LangStringNameType `json:"displayName,omitempty"`

	Description []LangStringTextType `json:"description,omitempty"`

	ModelType string `json:"modelType"`

	Administration *AdministrativeInformation `json:"administration,omitempty"`

	ID string `json:"id"`

	Kind ModellingKind `json:"kind,omitempty"`

	SemanticID *Reference `json:"semanticId,omitempty"`

	//nolint:all
	SupplementalSemanticIds []Reference `json:"supplementalSemanticIds,omitempty"`

	Qualifiers []Qualifier `json:"qualifiers,omitempty"`

	EmbeddedDataSpecifications []EmbeddedDataSpecification `json:"embeddedDataSpecifications,omitempty"`

	SubmodelElements []SubmodelElement `json:"submodelElements,omitempty"`
}

// NewSubmodel creates a new Submodel instance
func NewSubmodel(id string) *Submodel {
	return &Submodel{
		ID:        id,
		ModelType: "Submodel",
	}
}

// UnmarshalJSON implements custom unmarshaling for Submodel to handle
// polymorphic SubmodelElements
func (s *Submodel) UnmarshalJSON(data []byte) error {
	type Alias Submodel
	aux := &struct {
		SubmodelElements []json.RawMessage `json:"submodelElements,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(s),
	}
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	elements, err := unmarshalElementSlice(aux.SubmodelElements)
	if err != nil {
		return err
	}
	s.SubmodelElements = elements
	return nil
}

//nolint:all
func (s *Submodel) GetIdShort() string {
	return s.IdShort
}

//nolint:all
func (s *Submodel) GetModelType() string {
	return s.ModelType
}

//nolint:all
func (s *Submodel) GetID() string {
	return s.ID
}

//nolint:all
func (s *Submodel) GetSemanticID() *Reference {
	return s.SemanticID
}

//nolint:all
func (s *Submodel) GetQualifiers() []Qualifier {
	return s.Qualifiers
}

//nolint:all
func (s *Submodel) SetQualifiers(qualifiers []Qualifier) {
	s.Qualifiers = qualifiers
}

// DescendOnce returns the direct referable children of the submodel.
func (s *Submodel) DescendOnce() []Referable {
	children := make([]Referable, 0, len(s.SubmodelElements))
	for _, el := range s.SubmodelElements {
		children = append(children, el)
	}
	return children
}

// ChildElements returns the contained submodel elements.
func (s *Submodel) ChildElements() []SubmodelElement {
	return s.SubmodelElements
}

// SetChildElements replaces the contained submodel elements.
func (s *Submodel) SetChildElements(elements []SubmodelElement) {
	s.SubmodelElements = elements
}

// AssertSubmodelRequired checks if the required fields are not zero-ed
func AssertSubmodelRequired(obj Submodel) error {
	elements := map[string]interface{}{
		"modelType": obj.ModelType,
		"id":        obj.ID,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	for _, el := range obj.SubmodelElements {
		if err := AssertSubmodelElementRequired(el); err != nil {
			return err
		}
	}
	return nil
}

// AssertSubmodelConstraints checks if the values respects the defined constraints
func AssertSubmodelConstraints(obj Submodel) error {
	if obj.Kind != "" && !obj.Kind.IsValid() {
		return &ParsingError{Err: errInvalidEnumValue("Submodel.kind", string(obj.Kind))}
	}
	for _, el := range obj.Qualifiers {
		if err := AssertQualifierConstraints(el); err != nil {
			return err
		}
	}
	for _, el := range obj.SubmodelElements {
		if err := AssertSubmodelElementConstraints(el); err != nil {
			return err
		}
	}
	return nil
}
