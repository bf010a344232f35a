package model

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

// Entity describes an entity of the asset, either self-managed (with its own
// global asset id) or co-managed.
type Entity struct {
	Extensions []Extension `json:"extensions,omitempty"`

	Category string `json:"category,omitempty"`

	//nolint:all
	IdShort string `json:"idShort,omitempty"`

	DisplayName []LangStringNameType `json:"displayName,omitempty"`

	Description []LangStringTextType `json:"description,omitempty"`

	ModelType string `json:"modelType"`

	SemanticID *Reference `json:"semanticId,omitempty"`

	//nolint:all
	SupplementalSemanticIds []Reference `json:"supplementalSemanticIds,omitempty"`

	Qualifiers []Qualifier `json:"qualifiers,omitempty"`

	EmbeddedDataSpecifications []EmbeddedDataSpecification `json:"embeddedDataSpecifications,omitempty"`

	Statements []SubmodelElement `json:"statements,omitempty"`

	EntityType EntityType `json:"entityType"`

	//nolint:all
	GlobalAssetId string `json:"globalAssetId,omitempty"`

	SpecificAssetIds []SpecificAssetId `json:"specificAssetIds,omitempty"`
}

// NewEntity creates a new Entity instance
func NewEntity(entityType EntityType) *Entity {
	return &Entity{
		EntityType: entityType,
		ModelType:  "Entity",
	}
}

// UnmarshalJSON implements custom unmarshaling to handle the polymorphic
// statement elements
func (e *Entity) UnmarshalJSON(data []byte) error {
	type Alias Entity
	aux := &struct {
		Statements []json.RawMessage `json:"statements,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(e),
	}
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	statements, err := unmarshalElementSlice(aux.Statements)
	if err != nil {
		return err
	}
	e.Statements = statements
	return nil
}

//nolint:all
func (e *Entity) GetIdShort() string {
	return e.IdShort
}

//nolint:all
func (e *Entity) GetModelType() string {
	return e.ModelType
}

//nolint:all
func (e *Entity) GetSemanticID() *Reference {
	return e.SemanticID
}

//nolint:all
func (e *Entity) GetQualifiers() []Qualifier {
	return e.Qualifiers
}

//nolint:all
func (e *Entity) SetQualifiers(qualifiers []Qualifier) {
	e.Qualifiers = qualifiers
}

// DescendOnce returns the direct referable children of the element.
func (e *Entity) DescendOnce() []Referable {
	children := make([]Referable, 0, len(e.Statements))
	for _, el := range e.Statements {
		children = append(children, el)
	}
	return children
}

// ChildElements returns the statement elements.
func (e *Entity) ChildElements() []SubmodelElement {
	return e.Statements
}

// SetChildElements replaces the statement elements.
func (e *Entity) SetChildElements(elements []SubmodelElement) {
	e.Statements = elements
}

// AssertEntityRequired checks if the required fields are not zero-ed
func AssertEntityRequired(obj Entity) error {
	elements := map[string]interface{}{
		"modelType":  obj.ModelType,
		"entityType": obj.EntityType,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	for _, el := range obj.Statements {
		if err := AssertSubmodelElementRequired(el); err != nil {
			return err
		}
	}
	return nil
}

// AssertEntityConstraints checks if the values respects the defined constraints
func AssertEntityConstraints(obj Entity) error {
	if !obj.EntityType.IsValid() {
		return &ParsingError{Err: errInvalidEnumValue("Entity.entityType", string(obj.EntityType))}
	}
	// Constraint AASd-014: a self-managed entity carries either a global
	// asset id or specific asset ids, a co-managed entity carries neither.
	hasAssetID := obj.GlobalAssetId != "" || len(obj.SpecificAssetIds) > 0
	if obj.EntityType == ENTITYTYPE_SELF_MANAGED_ENTITY && !hasAssetID {
		return &RequiredError{Field: "globalAssetId"}
	}
	if obj.EntityType == ENTITYTYPE_CO_MANAGED_ENTITY && hasAssetID {
		return &ParsingError{Err: errInvalidEnumValue("Entity.entityType", "CoManagedEntity with asset id")}
	}
	return nil
}
