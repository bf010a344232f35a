package xmlization

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/rwth-iat/basyx-go-framework/pkg/model"
)

// identifiableDecoders maps the singular top-level element name to the
// decoder for the contained identifiable.
var identifiableDecoders = map[string]func(*node) (model.Identifiable, error){
	"assetAdministrationShell": func(n *node) (model.Identifiable, error) {
		return decodeAssetAdministrationShell(n)
	},
	"submodel": func(n *node) (model.Identifiable, error) {
		return decodeSubmodel(n)
	},
	"conceptDescription": func(n *node) (model.Identifiable, error) {
		return decodeConceptDescription(n)
	},
}

func parseErrf(format string, args ...interface{}) error {
	return &model.ParsingError{Err: fmt.Errorf(format, args...)}
}

func decodeReference(n *node) (model.Reference, error) {
	refType, err := model.NewReferenceTypesFromValue(n.textOf("type"))
	if err != nil {
		return model.Reference{}, parseErrf("aas:%s: %s", n.XMLName.Local, err)
	}
	ref := model.Reference{Type: refType}
	if child := n.childByName("referredSemanticId"); child != nil {
		referred, err := decodeReference(child)
		if err != nil {
			return model.Reference{}, err
		}
		ref.ReferredSemanticId = &referred
	}
	if keys := n.childByName("keys"); keys != nil {
		for i := range keys.Children {
			key := &keys.Children[i]
			keyType, err := model.NewKeyTypesFromValue(key.textOf("type"))
			if err != nil {
				return model.Reference{}, parseErrf("aas:key: %s", err)
			}
			ref.Keys = append(ref.Keys, model.Key{Type: keyType, Value: key.textOf("value")})
		}
	}
	return ref, nil
}

func decodeOptionalReference(n *node, local string) (*model.Reference, error) {
	child := n.childByName(local)
	if child == nil {
		return nil, nil
	}
	ref, err := decodeReference(child)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func decodeReferenceList(n *node) ([]model.Reference, error) {
	refs := make([]model.Reference, 0, len(n.Children))
	for i := range n.Children {
		ref, err := decodeReference(&n.Children[i])
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func decodeLangStringNames(n *node) []model.LangStringNameType {
	out := make([]model.LangStringNameType, 0, len(n.Children))
	for i := range n.Children {
		out = append(out, model.LangStringNameType{
			Language: n.Children[i].textOf("language"),
			Text:     n.Children[i].textOf("text"),
		})
	}
	return out
}

func decodeLangStringTexts(n *node) []model.LangStringTextType {
	out := make([]model.LangStringTextType, 0, len(n.Children))
	for i := range n.Children {
		out = append(out, model.LangStringTextType{
			Language: n.Children[i].textOf("language"),
			Text:     n.Children[i].textOf("text"),
		})
	}
	return out
}

func decodeExtension(n *node) (model.Extension, error) {
	ext := model.Extension{
		Name:  n.textOf("name"),
		Value: n.textOf("value"),
	}
	var err error
	if ext.SemanticId, err = decodeOptionalReference(n, "semanticId"); err != nil {
		return ext, err
	}
	if list := n.childByName("supplementalSemanticIds"); list != nil {
		if ext.SupplementalSemanticIds, err = decodeReferenceList(list); err != nil {
			return ext, err
		}
	}
	if valueType := n.textOf("valueType"); valueType != "" {
		if ext.ValueType, err = model.NewDataTypeDefXsdFromValue(valueType); err != nil {
			return ext, parseErrf("aas:extension: %s", err)
		}
	}
	if list := n.childByName("refersTo"); list != nil {
		if ext.RefersTo, err = decodeReferenceList(list); err != nil {
			return ext, err
		}
	}
	return ext, nil
}

func decodeQualifier(n *node) (model.Qualifier, error) {
	q := model.Qualifier{
		Type:  n.textOf("type"),
		Value: n.textOf("value"),
	}
	var err error
	if q.SemanticId, err = decodeOptionalReference(n, "semanticId"); err != nil {
		return q, err
	}
	if list := n.childByName("supplementalSemanticIds"); list != nil {
		if q.SupplementalSemanticIds, err = decodeReferenceList(list); err != nil {
			return q, err
		}
	}
	if kind := n.textOf("kind"); kind != "" {
		if q.Kind, err = model.NewQualifierKindFromValue(kind); err != nil {
			return q, parseErrf("aas:qualifier: %s", err)
		}
	}
	if q.ValueType, err = model.NewDataTypeDefXsdFromValue(n.textOf("valueType")); err != nil {
		return q, parseErrf("aas:qualifier: %s", err)
	}
	if q.ValueId, err = decodeOptionalReference(n, "valueId"); err != nil {
		return q, err
	}
	return q, nil
}

func decodeSpecificAssetId(n *node) (model.SpecificAssetId, error) {
	sid := model.SpecificAssetId{
		Name:  n.textOf("name"),
		Value: n.textOf("value"),
	}
	var err error
	if sid.SemanticId, err = decodeOptionalReference(n, "semanticId"); err != nil {
		return sid, err
	}
	if list := n.childByName("supplementalSemanticIds"); list != nil {
		if sid.SupplementalSemanticIds, err = decodeReferenceList(list); err != nil {
			return sid, err
		}
	}
	if sid.ExternalSubjectId, err = decodeOptionalReference(n, "externalSubjectId"); err != nil {
		return sid, err
	}
	return sid, nil
}

func decodeAdministrativeInformation(n *node) (*model.AdministrativeInformation, error) {
	adm := &model.AdministrativeInformation{
		Version:    n.textOf("version"),
		Revision:   n.textOf("revision"),
		TemplateId: n.textOf("templateId"),
	}
	var err error
	if adm.Creator, err = decodeOptionalReference(n, "creator"); err != nil {
		return nil, err
	}
	return adm, nil
}

func decodeAssetInformation(n *node) (model.AssetInformation, error) {
	info := model.AssetInformation{
		//nolint:all
		GlobalAssetId: n.textOf("globalAssetId"),
		AssetType:     n.textOf("assetType"),
	}
	var err error
	if info.AssetKind, err = model.NewAssetKindFromValue(n.textOf("assetKind")); err != nil {
		return info, parseErrf("aas:assetInformation: %s", err)
	}
	if list := n.childByName("specificAssetIds"); list != nil {
		for i := range list.Children {
			sid, err := decodeSpecificAssetId(&list.Children[i])
			if err != nil {
				return info, err
			}
			info.SpecificAssetIds = append(info.SpecificAssetIds, sid)
		}
	}
	if thumbnail := n.childByName("defaultThumbnail"); thumbnail != nil {
		info.DefaultThumbnail = &model.Resource{
			Path:        thumbnail.textOf("path"),
			ContentType: thumbnail.textOf("contentType"),
		}
	}
	return info, nil
}

// commonFields collects the attributes shared by referables and submodel
// elements while walking the children of an element node.
type commonFields struct {
	extensions   []model.Extension
	category     string
	idShort      string
	displayName  []model.LangStringNameType
	description  []model.LangStringTextType
	semanticID   *model.Reference
	supplemental []model.Reference
	qualifiers   []model.Qualifier
}

// decodeCommonChild consumes a child shared by all element kinds and reports
// whether it did.
func (cf *commonFields) decodeCommonChild(child *node) (bool, error) {
	switch child.XMLName.Local {
	case "extensions":
		for i := range child.Children {
			ext, err := decodeExtension(&child.Children[i])
			if err != nil {
				return true, err
			}
			cf.extensions = append(cf.extensions, ext)
		}
	case "category":
		cf.category = strings.TrimSpace(child.Text)
	case "idShort":
		cf.idShort = strings.TrimSpace(child.Text)
	case "displayName":
		cf.displayName = decodeLangStringNames(child)
	case "description":
		cf.description = decodeLangStringTexts(child)
	case "semanticId":
		ref, err := decodeReference(child)
		if err != nil {
			return true, err
		}
		cf.semanticID = &ref
	case "supplementalSemanticIds":
		refs, err := decodeReferenceList(child)
		if err != nil {
			return true, err
		}
		cf.supplemental = refs
	case "qualifiers":
		for i := range child.Children {
			q, err := decodeQualifier(&child.Children[i])
			if err != nil {
				return true, err
			}
			cf.qualifiers = append(cf.qualifiers, q)
		}
	default:
		return false, nil
	}
	return true, nil
}

func decodeElementList(n *node) ([]model.SubmodelElement, error) {
	elements := make([]model.SubmodelElement, 0, len(n.Children))
	for i := range n.Children {
		el, err := decodeSubmodelElement(&n.Children[i])
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	return elements, nil
}

func decodeOperationVariables(n *node) ([]model.OperationVariable, error) {
	variables := make([]model.OperationVariable, 0, len(n.Children))
	for i := range n.Children {
		value := n.Children[i].childByName("value")
		if value == nil || len(value.Children) != 1 {
			return nil, parseErrf("aas:operationVariable: expected exactly one value element")
		}
		el, err := decodeSubmodelElement(&value.Children[0])
		if err != nil {
			return nil, err
		}
		variables = append(variables, model.OperationVariable{Value: el})
	}
	return variables, nil
}

//nolint:all
func decodeSubmodelElement(n *node) (model.SubmodelElement, error) {
	var cf commonFields
	rest := make([]*node, 0, len(n.Children))
	for i := range n.Children {
		consumed, err := cf.decodeCommonChild(&n.Children[i])
		if err != nil {
			return nil, err
		}
		if !consumed {
			rest = append(rest, &n.Children[i])
		}
	}

	find := func(local string) *node {
		for _, child := range rest {
			if child.XMLName.Local == local {
				return child
			}
		}
		return nil
	}
	findText := func(local string) string {
		child := find(local)
		if child == nil {
			return ""
		}
		return strings.TrimSpace(child.Text)
	}
	findRef := func(local string) (*model.Reference, error) {
		child := find(local)
		if child == nil {
			return nil, nil
		}
		ref, err := decodeReference(child)
		if err != nil {
			return nil, err
		}
		return &ref, nil
	}
	requireRef := func(local string) (model.Reference, error) {
		child := find(local)
		if child == nil {
			return model.Reference{}, parseErrf("aas:%s: missing element %s", n.XMLName.Local, local)
		}
		return decodeReference(child)
	}

	var el model.SubmodelElement
	var err error
	switch n.XMLName.Local {
	case "property":
		prop := &model.Property{ModelType: "Property", Value: findText("value")}
		if prop.ValueType, err = model.NewDataTypeDefXsdFromValue(findText("valueType")); err != nil {
			return nil, parseErrf("aas:property: %s", err)
		}
		if prop.ValueId, err = findRef("valueId"); err != nil {
			return nil, err
		}
		el = prop
	case "multiLanguageProperty":
		mlp := &model.MultiLanguageProperty{ModelType: "MultiLanguageProperty"}
		if value := find("value"); value != nil {
			mlp.Value = decodeLangStringTexts(value)
		}
		if mlp.ValueId, err = findRef("valueId"); err != nil {
			return nil, err
		}
		el = mlp
	case "range":
		rng := &model.Range{ModelType: "Range", Min: findText("min"), Max: findText("max")}
		if rng.ValueType, err = model.NewDataTypeDefXsdFromValue(findText("valueType")); err != nil {
			return nil, parseErrf("aas:range: %s", err)
		}
		el = rng
	case "blob":
		blob := &model.Blob{ModelType: "Blob", ContentType: findText("contentType")}
		if value := findText("value"); value != "" {
			if blob.Value, err = base64.StdEncoding.DecodeString(value); err != nil {
				return nil, parseErrf("aas:blob: %s", err)
			}
		}
		el = blob
	case "file":
		el = &model.File{
			ModelType:   "File",
			Value:       findText("value"),
			ContentType: findText("contentType"),
		}
	case "referenceElement":
		refEl := &model.ReferenceElement{ModelType: "ReferenceElement"}
		if refEl.Value, err = findRef("value"); err != nil {
			return nil, err
		}
		el = refEl
	case "relationshipElement":
		rel := &model.RelationshipElement{ModelType: "RelationshipElement"}
		if rel.First, err = requireRef("first"); err != nil {
			return nil, err
		}
		if rel.Second, err = requireRef("second"); err != nil {
			return nil, err
		}
		el = rel
	case "annotatedRelationshipElement":
		rel := &model.AnnotatedRelationshipElement{ModelType: "AnnotatedRelationshipElement"}
		if rel.First, err = requireRef("first"); err != nil {
			return nil, err
		}
		if rel.Second, err = requireRef("second"); err != nil {
			return nil, err
		}
		if annotations := find("annotations"); annotations != nil {
			if rel.Annotations, err = decodeElementList(annotations); err != nil {
				return nil, err
			}
		}
		el = rel
	case "capability":
		el = &model.Capability{ModelType: "Capability"}
	case "entity":
		entity := &model.Entity{
			ModelType: "Entity",
			//nolint:all
			GlobalAssetId: findText("globalAssetId"),
		}
		if entity.EntityType, err = model.NewEntityTypeFromValue(findText("entityType")); err != nil {
			return nil, parseErrf("aas:entity: %s", err)
		}
		if statements := find("statements"); statements != nil {
			if entity.Statements, err = decodeElementList(statements); err != nil {
				return nil, err
			}
		}
		if list := find("specificAssetIds"); list != nil {
			for i := range list.Children {
				sid, err := decodeSpecificAssetId(&list.Children[i])
				if err != nil {
					return nil, err
				}
				entity.SpecificAssetIds = append(entity.SpecificAssetIds, sid)
			}
		}
		el = entity
	case "basicEventElement":
		event := &model.BasicEventElement{
			ModelType:    "BasicEventElement",
			MessageTopic: findText("messageTopic"),
			LastUpdate:   findText("lastUpdate"),
			MinInterval:  findText("minInterval"),
			MaxInterval:  findText("maxInterval"),
		}
		if event.Observed, err = requireRef("observed"); err != nil {
			return nil, err
		}
		if event.Direction, err = model.NewDirectionFromValue(findText("direction")); err != nil {
			return nil, parseErrf("aas:basicEventElement: %s", err)
		}
		if event.State, err = model.NewStateOfEventFromValue(findText("state")); err != nil {
			return nil, parseErrf("aas:basicEventElement: %s", err)
		}
		if event.MessageBroker, err = findRef("messageBroker"); err != nil {
			return nil, err
		}
		el = event
	case "operation":
		op := &model.Operation{ModelType: "Operation"}
		if list := find("inputVariables"); list != nil {
			if op.InputVariables, err = decodeOperationVariables(list); err != nil {
				return nil, err
			}
		}
		if list := find("outputVariables"); list != nil {
			if op.OutputVariables, err = decodeOperationVariables(list); err != nil {
				return nil, err
			}
		}
		if list := find("inoutputVariables"); list != nil {
			if op.InoutputVariables, err = decodeOperationVariables(list); err != nil {
				return nil, err
			}
		}
		el = op
	case "submodelElementCollection":
		collection := &model.SubmodelElementCollection{ModelType: "SubmodelElementCollection"}
		if value := find("value"); value != nil {
			if collection.Value, err = decodeElementList(value); err != nil {
				return nil, err
			}
		}
		el = collection
	case "submodelElementList":
		list := &model.SubmodelElementList{ModelType: "SubmodelElementList"}
		if orderRelevant := findText("orderRelevant"); orderRelevant != "" {
			value := orderRelevant == "true" || orderRelevant == "1"
			list.OrderRelevant = &value
		}
		if list.SemanticIdListElement, err = findRef("semanticIdListElement"); err != nil {
			return nil, err
		}
		if list.TypeValueListElement, err = model.NewAasSubmodelElementsFromValue(findText("typeValueListElement")); err != nil {
			return nil, parseErrf("aas:submodelElementList: %s", err)
		}
		if valueType := findText("valueTypeListElement"); valueType != "" {
			if list.ValueTypeListElement, err = model.NewDataTypeDefXsdFromValue(valueType); err != nil {
				return nil, parseErrf("aas:submodelElementList: %s", err)
			}
		}
		if value := find("value"); value != nil {
			if list.Value, err = decodeElementList(value); err != nil {
				return nil, err
			}
		}
		el = list
	default:
		return nil, parseErrf("unexpected submodel element aas:%s", n.XMLName.Local)
	}

	applyCommonFields(el, cf)
	return el, nil
}

// applyCommonFields copies the collected shared attributes onto the concrete
// element struct.
//
//nolint:all
func applyCommonFields(el model.SubmodelElement, cf commonFields) {
	switch v := el.(type) {
	case *model.Property:
		v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description = cf.extensions, cf.category, cf.idShort, cf.displayName, cf.description
		v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers = cf.semanticID, cf.supplemental, cf.qualifiers
	case *model.MultiLanguageProperty:
		v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description = cf.extensions, cf.category, cf.idShort, cf.displayName, cf.description
		v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers = cf.semanticID, cf.supplemental, cf.qualifiers
	case *model.Range:
		v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description = cf.extensions, cf.category, cf.idShort, cf.displayName, cf.description
		v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers = cf.semanticID, cf.supplemental, cf.qualifiers
	case *model.Blob:
		v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description = cf.extensions, cf.category, cf.idShort, cf.displayName, cf.description
		v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers = cf.semanticID, cf.supplemental, cf.qualifiers
	case *model.File:
		v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description = cf.extensions, cf.category, cf.idShort, cf.displayName, cf.description
		v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers = cf.semanticID, cf.supplemental, cf.qualifiers
	case *model.ReferenceElement:
		v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description = cf.extensions, cf.category, cf.idShort, cf.displayName, cf.description
		v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers = cf.semanticID, cf.supplemental, cf.qualifiers
	case *model.RelationshipElement:
		v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description = cf.extensions, cf.category, cf.idShort, cf.displayName, cf.description
		v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers = cf.semanticID, cf.supplemental, cf.qualifiers
	case *model.AnnotatedRelationshipElement:
		v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description = cf.extensions, cf.category, cf.idShort, cf.displayName, cf.description
		v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers = cf.semanticID, cf.supplemental, cf.qualifiers
	case *model.Capability:
		v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description = cf.extensions, cf.category, cf.idShort, cf.displayName, cf.description
		v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers = cf.semanticID, cf.supplemental, cf.qualifiers
	case *model.Entity:
		v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description = cf.extensions, cf.category, cf.idShort, cf.displayName, cf.description
		v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers = cf.semanticID, cf.supplemental, cf.qualifiers
	case *model.BasicEventElement:
		v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description = cf.extensions, cf.category, cf.idShort, cf.displayName, cf.description
		v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers = cf.semanticID, cf.supplemental, cf.qualifiers
	case *model.Operation:
		v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description = cf.extensions, cf.category, cf.idShort, cf.displayName, cf.description
		v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers = cf.semanticID, cf.supplemental, cf.qualifiers
	case *model.SubmodelElementCollection:
		v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description = cf.extensions, cf.category, cf.idShort, cf.displayName, cf.description
		v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers = cf.semanticID, cf.supplemental, cf.qualifiers
	case *model.SubmodelElementList:
		v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description = cf.extensions, cf.category, cf.idShort, cf.displayName, cf.description
		v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers = cf.semanticID, cf.supplemental, cf.qualifiers
	}
}

func decodeAssetAdministrationShell(n *node) (*model.AssetAdministrationShell, error) {
	var cf commonFields
	aas := &model.AssetAdministrationShell{ModelType: "AssetAdministrationShell"}
	for i := range n.Children {
		child := &n.Children[i]
		consumed, err := cf.decodeCommonChild(child)
		if err != nil {
			return nil, err
		}
		if consumed {
			continue
		}
		switch child.XMLName.Local {
		case "administration":
			if aas.Administration, err = decodeAdministrativeInformation(child); err != nil {
				return nil, err
			}
		case "id":
			aas.ID = strings.TrimSpace(child.Text)
		case "derivedFrom":
			ref, err := decodeReference(child)
			if err != nil {
				return nil, err
			}
			aas.DerivedFrom = &ref
		case "assetInformation":
			if aas.AssetInformation, err = decodeAssetInformation(child); err != nil {
				return nil, err
			}
		case "submodels":
			if aas.Submodels, err = decodeReferenceList(child); err != nil {
				return nil, err
			}
		}
	}
	aas.Extensions, aas.Category, aas.IdShort = cf.extensions, cf.category, cf.idShort
	aas.DisplayName, aas.Description = cf.displayName, cf.description
	if err := model.AssertAssetAdministrationShellRequired(*aas); err != nil {
		return nil, err
	}
	return aas, nil
}

func decodeSubmodel(n *node) (*model.Submodel, error) {
	var cf commonFields
	sm := &model.Submodel{ModelType: "Submodel"}
	for i := range n.Children {
		child := &n.Children[i]
		consumed, err := cf.decodeCommonChild(child)
		if err != nil {
			return nil, err
		}
		if consumed {
			continue
		}
		switch child.XMLName.Local {
		case "administration":
			if sm.Administration, err = decodeAdministrativeInformation(child); err != nil {
				return nil, err
			}
		case "id":
			sm.ID = strings.TrimSpace(child.Text)
		case "kind":
			if sm.Kind, err = model.NewModellingKindFromValue(strings.TrimSpace(child.Text)); err != nil {
				return nil, parseErrf("aas:submodel: %s", err)
			}
		case "submodelElements":
			if sm.SubmodelElements, err = decodeElementList(child); err != nil {
				return nil, err
			}
		}
	}
	sm.Extensions, sm.Category, sm.IdShort = cf.extensions, cf.category, cf.idShort
	sm.DisplayName, sm.Description = cf.displayName, cf.description
	sm.SemanticID, sm.SupplementalSemanticIds, sm.Qualifiers = cf.semanticID, cf.supplemental, cf.qualifiers
	if err := model.AssertSubmodelRequired(*sm); err != nil {
		return nil, err
	}
	return sm, nil
}

func decodeConceptDescription(n *node) (*model.ConceptDescription, error) {
	var cf commonFields
	cd := &model.ConceptDescription{ModelType: "ConceptDescription"}
	for i := range n.Children {
		child := &n.Children[i]
		consumed, err := cf.decodeCommonChild(child)
		if err != nil {
			return nil, err
		}
		if consumed {
			continue
		}
		switch child.XMLName.Local {
		case "administration":
			if cd.Administration, err = decodeAdministrativeInformation(child); err != nil {
				return nil, err
			}
		case "id":
			cd.ID = strings.TrimSpace(child.Text)
		case "isCaseOf":
			if cd.IsCaseOf, err = decodeReferenceList(child); err != nil {
				return nil, err
			}
		}
	}
	cd.Extensions, cd.Category, cd.IdShort = cf.extensions, cf.category, cf.idShort
	cd.DisplayName, cd.Description = cf.displayName, cf.description
	if err := model.AssertConceptDescriptionRequired(*cd); err != nil {
		return nil, err
	}
	return cd, nil
}
