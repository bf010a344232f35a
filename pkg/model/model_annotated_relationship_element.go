package model

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

// AnnotatedRelationshipElement is a relationship element that can be
// annotated with data elements.
type AnnotatedRelationshipElement struct {
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

	First Reference `json:"first"`

	Second Reference `json:"second"`

	Annotations []SubmodelElement `json:"annotations,omitempty"`
}

// NewAnnotatedRelationshipElement creates a new AnnotatedRelationshipElement instance
func NewAnnotatedRelationshipElement(first Reference, second Reference) *AnnotatedRelationshipElement {
	return &AnnotatedRelationshipElement{
		First:     first,
		Second:    second,
		ModelType: "AnnotatedRelationshipElement",
	}
}

// UnmarshalJSON implements custom unmarshaling to handle the polymorphic
// annotation elements
func (a *AnnotatedRelationshipElement) UnmarshalJSON(data []byte) error {
	type Alias AnnotatedRelationshipElement
	aux := &struct {
		Annotations []json.RawMessage `json:"annotations,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(a),
	}
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	annotations, err := unmarshalElementSlice(aux.Annotations)
	if err != nil {
		return err
	}
	a.Annotations = annotations
	return nil
}

//nolint:all
func (a *AnnotatedRelationshipElement) GetIdShort() string {
	return a.IdShort
}

//nolint:all
func (a *AnnotatedRelationshipElement) GetModelType() string {
	return a.ModelType
}

//nolint:all
func (a *AnnotatedRelationshipElement) GetSemanticID() *Reference {
	return a.SemanticID
}

//nolint:all
func (a *AnnotatedRelationshipElement) GetQualifiers() []Qualifier {
	return a.Qualifiers
}

//nolint:all
func (a *AnnotatedRelationshipElement) SetQualifiers(qualifiers []Qualifier) {
	a.Qualifiers = qualifiers
}

// DescendOnce returns the direct referable children of the element.
func (a *AnnotatedRelationshipElement) DescendOnce() []Referable {
	children := make([]Referable, 0, len(a.Annotations))
	for _, el := range a.Annotations {
		children = append(children, el)
	}
	return children
}

// ChildElements returns the annotation elements.
func (a *AnnotatedRelationshipElement) ChildElements() []SubmodelElement {
	return a.Annotations
}

// SetChildElements replaces the annotation elements.
func (a *AnnotatedRelationshipElement) SetChildElements(elements []SubmodelElement) {
	a.Annotations = elements
}

// AssertAnnotatedRelationshipElementRequired checks if the required fields are not zero-ed
func AssertAnnotatedRelationshipElementRequired(obj AnnotatedRelationshipElement) error {
	if IsZeroValue(obj.ModelType) {
		return &RequiredError{Field: "modelType"}
	}
	if err := AssertReferenceRequired(obj.First); err != nil {
		return err
	}
	if err := AssertReferenceRequired(obj.Second); err != nil {
		return err
	}
	for _, el := range obj.Annotations {
		if err := AssertSubmodelElementRequired(el); err != nil {
			return err
		}
	}
	return nil
}
