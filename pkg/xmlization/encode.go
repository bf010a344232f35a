package xmlization

import (
	"encoding/base64"

	"github.com/rwth-iat/basyx-go-framework/pkg/model"
)

// The encoders below map typed model objects onto the generic node tree.
// Child order follows the sequence definitions of the official XSD schema.
// Embedded data specifications are not part of the XML serialization, see
// DESIGN.md.

func encodeReference(name string, ref model.Reference) node {
	n := elem(name, textElem("type", string(ref.Type)))
	if ref.ReferredSemanticId != nil {
		n.Children = append(n.Children, encodeReference("referredSemanticId", *ref.ReferredSemanticId))
	}
	keys := elem("keys")
	for _, key := range ref.Keys {
		keys.Children = append(keys.Children, elem("key",
			textElem("type", string(key.Type)),
			textElem("value", key.Value),
		))
	}
	n.Children = append(n.Children, keys)
	return n
}

func encodeReferenceList(listName string, entryName string, refs []model.Reference) node {
	n := elem(listName)
	for _, ref := range refs {
		n.Children = append(n.Children, encodeReference(entryName, ref))
	}
	return n
}

func encodeLangStringNames(listName string, strings []model.LangStringNameType) node {
	n := elem(listName)
	for _, ls := range strings {
		n.Children = append(n.Children, elem("langStringNameType",
			textElem("language", ls.Language),
			textElem("text", ls.Text),
		))
	}
	return n
}

func encodeLangStringTexts(listName string, strings []model.LangStringTextType) node {
	n := elem(listName)
	for _, ls := range strings {
		n.Children = append(n.Children, elem("langStringTextType",
			textElem("language", ls.Language),
			textElem("text", ls.Text),
		))
	}
	return n
}

func encodeExtension(ext model.Extension) node {
	n := elem("extension")
	if ext.SemanticId != nil {
		n.Children = append(n.Children, encodeReference("semanticId", *ext.SemanticId))
	}
	if len(ext.SupplementalSemanticIds) > 0 {
		n.Children = append(n.Children,
			encodeReferenceList("supplementalSemanticIds", "reference", ext.SupplementalSemanticIds))
	}
	n.Children = append(n.Children, textElem("name", ext.Name))
	if ext.ValueType != "" {
		n.Children = append(n.Children, textElem("valueType", string(ext.ValueType)))
	}
	if ext.Value != "" {
		n.Children = append(n.Children, textElem("value", ext.Value))
	}
	if len(ext.RefersTo) > 0 {
		n.Children = append(n.Children, encodeReferenceList("refersTo", "reference", ext.RefersTo))
	}
	return n
}

func encodeQualifier(q model.Qualifier) node {
	n := elem("qualifier")
	if q.SemanticId != nil {
		n.Children = append(n.Children, encodeReference("semanticId", *q.SemanticId))
	}
	if len(q.SupplementalSemanticIds) > 0 {
		n.Children = append(n.Children,
			encodeReferenceList("supplementalSemanticIds", "reference", q.SupplementalSemanticIds))
	}
	if q.Kind != "" {
		n.Children = append(n.Children, textElem("kind", string(q.Kind)))
	}
	n.Children = append(n.Children,
		textElem("type", q.Type),
		textElem("valueType", string(q.ValueType)),
	)
	if q.Value != "" {
		n.Children = append(n.Children, textElem("value", q.Value))
	}
	if q.ValueId != nil {
		n.Children = append(n.Children, encodeReference("valueId", *q.ValueId))
	}
	return n
}

func encodeSpecificAssetId(sid model.SpecificAssetId) node {
	n := elem("specificAssetId")
	if sid.SemanticId != nil {
		n.Children = append(n.Children, encodeReference("semanticId", *sid.SemanticId))
	}
	if len(sid.SupplementalSemanticIds) > 0 {
		n.Children = append(n.Children,
			encodeReferenceList("supplementalSemanticIds", "reference", sid.SupplementalSemanticIds))
	}
	n.Children = append(n.Children,
		textElem("name", sid.Name),
		textElem("value", sid.Value),
	)
	if sid.ExternalSubjectId != nil {
		n.Children = append(n.Children, encodeReference("externalSubjectId", *sid.ExternalSubjectId))
	}
	return n
}

func encodeAdministrativeInformation(adm model.AdministrativeInformation) node {
	n := elem("administration")
	if adm.Version != "" {
		n.Children = append(n.Children, textElem("version", adm.Version))
	}
	if adm.Revision != "" {
		n.Children = append(n.Children, textElem("revision", adm.Revision))
	}
	if adm.Creator != nil {
		n.Children = append(n.Children, encodeReference("creator", *adm.Creator))
	}
	if adm.TemplateId != "" {
		n.Children = append(n.Children, textElem("templateId", adm.TemplateId))
	}
	return n
}

func encodeAssetInformation(info model.AssetInformation) node {
	n := elem("assetInformation", textElem("assetKind", string(info.AssetKind)))
	if info.GlobalAssetId != "" {
		n.Children = append(n.Children, textElem("globalAssetId", info.GlobalAssetId))
	}
	if len(info.SpecificAssetIds) > 0 {
		list := elem("specificAssetIds")
		for _, sid := range info.SpecificAssetIds {
			list.Children = append(list.Children, encodeSpecificAssetId(sid))
		}
		n.Children = append(n.Children, list)
	}
	if info.AssetType != "" {
		n.Children = append(n.Children, textElem("assetType", info.AssetType))
	}
	if info.DefaultThumbnail != nil {
		thumbnail := elem("defaultThumbnail", textElem("path", info.DefaultThumbnail.Path))
		if info.DefaultThumbnail.ContentType != "" {
			thumbnail.Children = append(thumbnail.Children,
				textElem("contentType", info.DefaultThumbnail.ContentType))
		}
		n.Children = append(n.Children, thumbnail)
	}
	return n
}

// referableChildren encodes the attributes shared by all referables.
func referableChildren(extensions []model.Extension, category string, idShort string,
	displayName []model.LangStringNameType, description []model.LangStringTextType) []node {
	var children []node
	if len(extensions) > 0 {
		list := elem("extensions")
		for _, ext := range extensions {
			list.Children = append(list.Children, encodeExtension(ext))
		}
		children = append(children, list)
	}
	if category != "" {
		children = append(children, textElem("category", category))
	}
	if idShort != "" {
		children = append(children, textElem("idShort", idShort))
	}
	if len(displayName) > 0 {
		children = append(children, encodeLangStringNames("displayName", displayName))
	}
	if len(description) > 0 {
		children = append(children, encodeLangStringTexts("description", description))
	}
	return children
}

// semanticChildren encodes the attributes shared by all submodel elements.
func semanticChildren(semanticID *model.Reference, supplemental []model.Reference,
	qualifiers []model.Qualifier) []node {
	var children []node
	if semanticID != nil {
		children = append(children, encodeReference("semanticId", *semanticID))
	}
	if len(supplemental) > 0 {
		children = append(children, encodeReferenceList("supplementalSemanticIds", "reference", supplemental))
	}
	if len(qualifiers) > 0 {
		list := elem("qualifiers")
		for _, q := range qualifiers {
			list.Children = append(list.Children, encodeQualifier(q))
		}
		children = append(children, list)
	}
	return children
}

func encodeElementList(listName string, elements []model.SubmodelElement) node {
	n := elem(listName)
	for _, el := range elements {
		n.Children = append(n.Children, encodeSubmodelElement(el))
	}
	return n
}

func encodeOperationVariables(listName string, variables []model.OperationVariable) node {
	n := elem(listName)
	for _, v := range variables {
		n.Children = append(n.Children, elem("operationVariable",
			elem("value", encodeSubmodelElement(v.Value))))
	}
	return n
}

//nolint:all
func encodeSubmodelElement(el model.SubmodelElement) node {
	switch v := el.(type) {
	case *model.Property:
		n := elem("property")
		n.Children = append(n.Children, referableChildren(v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description)...)
		n.Children = append(n.Children, semanticChildren(v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers)...)
		n.Children = append(n.Children, textElem("valueType", string(v.ValueType)))
		if v.Value != "" {
			n.Children = append(n.Children, textElem("value", v.Value))
		}
		if v.ValueId != nil {
			n.Children = append(n.Children, encodeReference("valueId", *v.ValueId))
		}
		return n
	case *model.MultiLanguageProperty:
		n := elem("multiLanguageProperty")
		n.Children = append(n.Children, referableChildren(v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description)...)
		n.Children = append(n.Children, semanticChildren(v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers)...)
		if len(v.Value) > 0 {
			n.Children = append(n.Children, encodeLangStringTexts("value", v.Value))
		}
		if v.ValueId != nil {
			n.Children = append(n.Children, encodeReference("valueId", *v.ValueId))
		}
		return n
	case *model.Range:
		n := elem("range")
		n.Children = append(n.Children, referableChildren(v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description)...)
		n.Children = append(n.Children, semanticChildren(v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers)...)
		n.Children = append(n.Children, textElem("valueType", string(v.ValueType)))
		if v.Min != "" {
			n.Children = append(n.Children, textElem("min", v.Min))
		}
		if v.Max != "" {
			n.Children = append(n.Children, textElem("max", v.Max))
		}
		return n
	case *model.Blob:
		n := elem("blob")
		n.Children = append(n.Children, referableChildren(v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description)...)
		n.Children = append(n.Children, semanticChildren(v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers)...)
		if len(v.Value) > 0 {
			n.Children = append(n.Children, textElem("value", base64.StdEncoding.EncodeToString(v.Value)))
		}
		n.Children = append(n.Children, textElem("contentType", v.ContentType))
		return n
	case *model.File:
		n := elem("file")
		n.Children = append(n.Children, referableChildren(v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description)...)
		n.Children = append(n.Children, semanticChildren(v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers)...)
		if v.Value != "" {
			n.Children = append(n.Children, textElem("value", v.Value))
		}
		n.Children = append(n.Children, textElem("contentType", v.ContentType))
		return n
	case *model.ReferenceElement:
		n := elem("referenceElement")
		n.Children = append(n.Children, referableChildren(v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description)...)
		n.Children = append(n.Children, semanticChildren(v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers)...)
		if v.Value != nil {
			n.Children = append(n.Children, encodeReference("value", *v.Value))
		}
		return n
	case *model.RelationshipElement:
		n := elem("relationshipElement")
		n.Children = append(n.Children, referableChildren(v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description)...)
		n.Children = append(n.Children, semanticChildren(v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers)...)
		n.Children = append(n.Children,
			encodeReference("first", v.First),
			encodeReference("second", v.Second),
		)
		return n
	case *model.AnnotatedRelationshipElement:
		n := elem("annotatedRelationshipElement")
		n.Children = append(n.Children, referableChildren(v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description)...)
		n.Children = append(n.Children, semanticChildren(v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers)...)
		n.Children = append(n.Children,
			encodeReference("first", v.First),
			encodeReference("second", v.Second),
		)
		if len(v.Annotations) > 0 {
			n.Children = append(n.Children, encodeElementList("annotations", v.Annotations))
		}
		return n
	case *model.Capability:
		n := elem("capability")
		n.Children = append(n.Children, referableChildren(v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description)...)
		n.Children = append(n.Children, semanticChildren(v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers)...)
		return n
	case *model.Entity:
		n := elem("entity")
		n.Children = append(n.Children, referableChildren(v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description)...)
		n.Children = append(n.Children, semanticChildren(v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers)...)
		if len(v.Statements) > 0 {
			n.Children = append(n.Children, encodeElementList("statements", v.Statements))
		}
		n.Children = append(n.Children, textElem("entityType", string(v.EntityType)))
		if v.GlobalAssetId != "" {
			n.Children = append(n.Children, textElem("globalAssetId", v.GlobalAssetId))
		}
		if len(v.SpecificAssetIds) > 0 {
			list := elem("specificAssetIds")
			for _, sid := range v.SpecificAssetIds {
				list.Children = append(list.Children, encodeSpecificAssetId(sid))
			}
			n.Children = append(n.Children, list)
		}
		return n
	case *model.BasicEventElement:
		n := elem("basicEventElement")
		n.Children = append(n.Children, referableChildren(v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description)...)
		n.Children = append(n.Children, semanticChildren(v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers)...)
		n.Children = append(n.Children,
			encodeReference("observed", v.Observed),
			textElem("direction", string(v.Direction)),
			textElem("state", string(v.State)),
		)
		if v.MessageTopic != "" {
			n.Children = append(n.Children, textElem("messageTopic", v.MessageTopic))
		}
		if v.MessageBroker != nil {
			n.Children = append(n.Children, encodeReference("messageBroker", *v.MessageBroker))
		}
		if v.LastUpdate != "" {
			n.Children = append(n.Children, textElem("lastUpdate", v.LastUpdate))
		}
		if v.MinInterval != "" {
			n.Children = append(n.Children, textElem("minInterval", v.MinInterval))
		}
		if v.MaxInterval != "" {
			n.Children = append(n.Children, textElem("maxInterval", v.MaxInterval))
		}
		return n
	case *model.Operation:
		n := elem("operation")
		n.Children = append(n.Children, referableChildren(v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description)...)
		n.Children = append(n.Children, semanticChildren(v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers)...)
		if len(v.InputVariables) > 0 {
			n.Children = append(n.Children, encodeOperationVariables("inputVariables", v.InputVariables))
		}
		if len(v.OutputVariables) > 0 {
			n.Children = append(n.Children, encodeOperationVariables("outputVariables", v.OutputVariables))
		}
		if len(v.InoutputVariables) > 0 {
			n.Children = append(n.Children, encodeOperationVariables("inoutputVariables", v.InoutputVariables))
		}
		return n
	case *model.SubmodelElementCollection:
		n := elem("submodelElementCollection")
		n.Children = append(n.Children, referableChildren(v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description)...)
		n.Children = append(n.Children, semanticChildren(v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers)...)
		if len(v.Value) > 0 {
			n.Children = append(n.Children, encodeElementList("value", v.Value))
		}
		return n
	case *model.SubmodelElementList:
		n := elem("submodelElementList")
		n.Children = append(n.Children, referableChildren(v.Extensions, v.Category, v.IdShort, v.DisplayName, v.Description)...)
		n.Children = append(n.Children, semanticChildren(v.SemanticID, v.SupplementalSemanticIds, v.Qualifiers)...)
		if v.OrderRelevant != nil && !*v.OrderRelevant {
			n.Children = append(n.Children, textElem("orderRelevant", "false"))
		}
		if v.SemanticIdListElement != nil {
			n.Children = append(n.Children, encodeReference("semanticIdListElement", *v.SemanticIdListElement))
		}
		n.Children = append(n.Children, textElem("typeValueListElement", string(v.TypeValueListElement)))
		if v.ValueTypeListElement != "" {
			n.Children = append(n.Children, textElem("valueTypeListElement", string(v.ValueTypeListElement)))
		}
		if len(v.Value) > 0 {
			n.Children = append(n.Children, encodeElementList("value", v.Value))
		}
		return n
	}
	return node{}
}

func encodeAssetAdministrationShell(aas *model.AssetAdministrationShell) node {
	n := elem("assetAdministrationShell")
	n.Children = append(n.Children, referableChildren(aas.Extensions, aas.Category, aas.IdShort, aas.DisplayName, aas.Description)...)
	if aas.Administration != nil {
		n.Children = append(n.Children, encodeAdministrativeInformation(*aas.Administration))
	}
	n.Children = append(n.Children, textElem("id", aas.ID))
	if aas.DerivedFrom != nil {
		n.Children = append(n.Children, encodeReference("derivedFrom", *aas.DerivedFrom))
	}
	n.Children = append(n.Children, encodeAssetInformation(aas.AssetInformation))
	if len(aas.Submodels) > 0 {
		n.Children = append(n.Children, encodeReferenceList("submodels", "reference", aas.Submodels))
	}
	return n
}

func encodeSubmodel(sm *model.Submodel) node {
	n := elem("submodel")
	n.Children = append(n.Children, referableChildren(sm.Extensions, sm.Category, sm.IdShort, sm.DisplayName, sm.Description)...)
	if sm.Administration != nil {
		n.Children = append(n.Children, encodeAdministrativeInformation(*sm.Administration))
	}
	n.Children = append(n.Children, textElem("id", sm.ID))
	if sm.Kind != "" {
		n.Children = append(n.Children, textElem("kind", string(sm.Kind)))
	}
	n.Children = append(n.Children, semanticChildren(sm.SemanticID, sm.SupplementalSemanticIds, sm.Qualifiers)...)
	if len(sm.SubmodelElements) > 0 {
		n.Children = append(n.Children, encodeElementList("submodelElements", sm.SubmodelElements))
	}
	return n
}

func encodeConceptDescription(cd *model.ConceptDescription) node {
	n := elem("conceptDescription")
	n.Children = append(n.Children, referableChildren(cd.Extensions, cd.Category, cd.IdShort, cd.DisplayName, cd.Description)...)
	if cd.Administration != nil {
		n.Children = append(n.Children, encodeAdministrativeInformation(*cd.Administration))
	}
	n.Children = append(n.Children, textElem("id", cd.ID))
	if len(cd.IsCaseOf) > 0 {
		n.Children = append(n.Children, encodeReferenceList("isCaseOf", "reference", cd.IsCaseOf))
	}
	return n
}
