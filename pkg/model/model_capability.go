package model

// Capability expresses an implementation-independent potential of the
// asset.
type Capability struct {
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
}

// NewCapability creates a new Capability instance
func NewCapability() *Capability {
	return &Capability{
		ModelType: "Capability",
	}
}

//nolint:all
func (c *Capability) GetIdShort() string {
	return c.IdShort
}

//nolint:all
func (c *Capability) GetModelType() string {
	return c.ModelType
}

//nolint:all
func (c *Capability) GetSemanticID() *Reference {
	return c.SemanticID
}

//nolint:all
func (c *Capability) GetQualifiers() []Qualifier {
	return c.Qualifiers
}

//nolint:all
func (c *Capability) SetQualifiers(qualifiers []Qualifier) {
	c.Qualifiers = qualifiers
}

// DescendOnce returns the direct referable children of the element.
func (c *Capability) DescendOnce() []Referable {
	return nil
}

// AssertCapabilityRequired checks if the required fields are not zero-ed
func AssertCapabilityRequired(obj Capability) error {
	if IsZeroValue(obj.ModelType) {
		return &RequiredError{Field: "modelType"}
	}
	return nil
}

// AssertCapabilityConstraints checks if the values respects the defined constraints
func AssertCapabilityConstraints(obj Capability) error {
	return nil
}
