package model

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

// SubmodelElementList is an ordered list of submodel elements of one kind.
// The contained elements are addressed by index, not by idShort.
type SubmodelElementList struct {
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

	OrderRelevant *bool `json:"orderRelevant,omitempty"`

	//nolint:all
	SemanticIdListElement *Reference `json:"semanticIdListElement,omitempty"`

	TypeValueListElement AasSubmodelElements `json:"typeValueListElement"`

	ValueTypeListElement DataTypeDefXsd `json:"valueTypeListElement,omitempty"`

	Value []SubmodelElement `json:"value,omitempty"`
}

// NewSubmodelElementList creates a new SubmodelElementList instance
func NewSubmodelElementList(typeValueListElement AasSubmodelElements) *SubmodelElementList {
	return &SubmodelElementList{
		TypeValueListElement: typeValueListElement,
		ModelType:            "SubmodelElementList",
	}
}

// UnmarshalJSON implements custom unmarshaling to handle the polymorphic
// value elements
func (s *SubmodelElementList) UnmarshalJSON(data []byte) error {
	type Alias SubmodelElementList
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
func (s *SubmodelElementList) GetIdShort() string {
	return s.IdShort
}

//nolint:all
func (s *SubmodelElementList) GetModelType() string {
	return s.ModelType
}

//nolint:all
func (s *SubmodelElementList) GetSemanticID() *Reference {
	return s.SemanticID
}

//nolint:all
func (s *SubmodelElementList) GetQualifiers() []Qualifier {
	return s.Qualifiers
}

//nolint:all
func (s *SubmodelElementList) SetQualifiers(qualifiers []Qualifier) {
	s.Qualifiers = qualifiers
}

// DescendOnce returns the direct referable children of the element.
func (s *SubmodelElementList) DescendOnce() []Referable {
	children := make([]Referable, 0, len(s.Value))
	for _, el := range s.Value {
		children = append(children, el)
	}
	return children
}

// ChildElements returns the contained submodel elements.
func (s *SubmodelElementList) ChildElements() []SubmodelElement {
	return s.Value
}

// SetChildElements replaces the contained submodel elements.
func (s *SubmodelElementList) SetChildElements(elements []SubmodelElement) {
	s.Value = elements
}

// AssertSubmodelElementListRequired checks if the required fields are not zero-ed
func AssertSubmodelElementListRequired(obj SubmodelElementList) error {
	elements := map[string]interface{}{
		"modelType":            obj.ModelType,
		"typeValueListElement": obj.TypeValueListElement,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	for _, el := range obj.Value {
		if err := AssertSubmodelElementRequired(el); err != nil {
			return err
		}
	}
	return nil
}

// AssertSubmodelElementListConstraints checks if the values respects the defined constraints
func AssertSubmodelElementListConstraints(obj SubmodelElementList) error {
	if !obj.TypeValueListElement.IsValid() {
		return &ParsingError{Err: errInvalidEnumValue("SubmodelElementList.typeValueListElement", string(obj.TypeValueListElement))}
	}
	if obj.ValueTypeListElement != "" && !obj.ValueTypeListElement.IsValid() {
		return &ParsingError{Err: errInvalidEnumValue("SubmodelElementList.valueTypeListElement", string(obj.ValueTypeListElement))}
	}
	return nil
}
