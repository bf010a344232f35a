package model

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

// SubmodelElementCollection is a struct-like set of named submodel elements.
type SubmodelElementCollection struct {
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

	Value []SubmodelElement `json:"value,omitempty"`
}

// NewSubmodelElementCollection creates a new SubmodelElementCollection instance
func NewSubmodelElementCollection() *SubmodelElementCollection {
	return &SubmodelElementCollection{
		ModelType: "SubmodelElementCollection",
	}
}

// UnmarshalJSON implements custom unmarshaling to handle the polymorphic
// value elements
func (s *SubmodelElementCollection) UnmarshalJSON(data []byte) error {
	type Alias SubmodelElementCollection
	aux := &struct {
		Value []json.RawMessage `json:"value,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(s),
	}
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	value, err := unmarshalElementSlice(aux.Value)
	if err != nil {
		return err
	}
	s.Value = value
	return nil
}

//nolint:all
func (s *SubmodelElementCollection) GetIdShort() string {
	return s.IdShort
}

//nolint:all
func (s *SubmodelElementCollection) GetModelType() string {
	return s.ModelType
}

//nolint:all
func (s *SubmodelElementCollection) GetSemanticID() *Reference {
	return s.SemanticID
}

//nolint:all
func (s *SubmodelElementCollection) GetQualifiers() []Qualifier {
	return s.Qualifiers
}

//nolint:all
func (s *SubmodelElementCollection) SetQualifiers(qualifiers []Qualifier) {
	s.Qualifiers = qualifiers
}

// DescendOnce returns the direct referable children of the element.
func (s *SubmodelElementCollection) DescendOnce() []Referable {
	children := make([]Referable, 0, len(s.Value))
	for _, el := range s.Value {
		children = append(children, el)
	}
	return children
}

// ChildElements returns the contained submodel elements.
func (s *SubmodelElementCollection) ChildElements() []SubmodelElement {
	return s.Value
}

// SetChildElements replaces the contained submodel elements.
func (s *SubmodelElementCollection) SetChildElements(elements []SubmodelElement) {
	s.Value = elements
}

// AssertSubmodelElementCollectionRequired checks if the required fields are not zero-ed
func AssertSubmodelElementCollectionRequired(obj SubmodelElementCollection) error {
	if IsZeroValue(obj.ModelType) {
		return &RequiredError{Field: "modelType"}
	}
	for _, el := range obj.Value {
		if err := AssertSubmodelElementRequired(el); err != nil {
			return err
		}
	}
	return nil
}
