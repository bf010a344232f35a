package model

// ReferenceElement is a data element holding a reference to another
// element or external resource.
type ReferenceElement struct {
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

	Value *Reference `json:"value,omitempty"`
}

// NewReferenceElement creates a new ReferenceElement instance
func NewReferenceElement() *ReferenceElement {
	return &ReferenceElement{
		ModelType: "ReferenceElement",
	}
}

//nolint:all
func (r *ReferenceElement) GetIdShort() string {
	return r.IdShort
}

//nolint:all
func (r *ReferenceElement) GetModelType() string {
	return r.ModelType
}

//nolint:all
func (r *ReferenceElement) GetSemanticID() *Reference {
	return r.SemanticID
}

//nolint:all
func (r *ReferenceElement) GetQualifiers() []Qualifier {
	return r.Qualifiers
}

//nolint:all
func (r *ReferenceElement) SetQualifiers(qualifiers []Qualifier) {
	r.Qualifiers = qualifiers
}

// DescendOnce returns the direct referable children of the element.
func (r *ReferenceElement) DescendOnce() []Referable {
	return nil
}

// AssertReferenceElementRequired checks if the required fields are not zero-ed
func AssertReferenceElementRequired(obj ReferenceElement) error {
	if IsZeroValue(obj.ModelType) {
		return &RequiredError{Field: "modelType"}
	}
	if obj.Value != nil {
		return AssertReferenceRequired(*obj.Value)
	}
	return nil
}

// AssertReferenceElementConstraints checks if the values respects the defined constraints
func AssertReferenceElementConstraints(obj ReferenceElement) error {
	if obj.Value != nil {
		return AssertReferenceConstraints(*obj.Value)
	}
	return nil
}
