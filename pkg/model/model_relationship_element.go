package model

// RelationshipElement describes a relationship between two referable
// elements.
type RelationshipElement struct {
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
}

// NewRelationshipElement creates a new RelationshipElement instance
func NewRelationshipElement(first Reference, second Reference) *RelationshipElement {
	return &RelationshipElement{
		First:     first,
		Second:    second,
		ModelType: "RelationshipElement",
	}
}

//nolint:all
func (r *RelationshipElement) GetIdShort() string {
	return r.IdShort
}

//nolint:all
func (r *RelationshipElement) GetModelType() string {
	return r.ModelType
}

//nolint:all
func (r *RelationshipElement) GetSemanticID() *Reference {
	return r.SemanticID
}

//nolint:all
func (r *RelationshipElement) GetQualifiers() []Qualifier {
	return r.Qualifiers
}

//nolint:all
func (r *RelationshipElement) SetQualifiers(qualifiers []Qualifier) {
	r.Qualifiers = qualifiers
}

// DescendOnce returns the direct referable children of the element.
func (r *RelationshipElement) DescendOnce() []Referable {
	return nil
}

// AssertRelationshipElementRequired checks if the required fields are not zero-ed
func AssertRelationshipElementRequired(obj RelationshipElement) error {
	if IsZeroValue(obj.ModelType) {
		return &RequiredError{Field: "modelType"}
	}
	if err := AssertReferenceRequired(obj.First); err != nil {
		return err
	}
	return AssertReferenceRequired(obj.Second)
}

// AssertRelationshipElementConstraints checks if the values respects the defined constraints
func AssertRelationshipElementConstraints(obj RelationshipElement) error {
	if err := AssertReferenceConstraints(obj.First); err != nil {
		return err
	}
	return AssertReferenceConstraints(obj.Second)
}
