package model

// Blob is a data element holding a binary value inline. The value is
// base64-encoded in the JSON representation.
type Blob struct {
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

	Value []byte `json:"value,omitempty"`

	ContentType string `json:"contentType"`
}

// NewBlob creates a new Blob instance
func NewBlob(contentType string) *Blob {
	return &Blob{
		ContentType: contentType,
		ModelType:   "Blob",
	}
}

//nolint:all
func (b *Blob) GetIdShort() string {
	return b.IdShort
}

//nolint:all
func (b *Blob) GetModelType() string {
	return b.ModelType
}

//nolint:all
func (b *Blob) GetSemanticID() *Reference {
	return b.SemanticID
}

//nolint:all
func (b *Blob) GetQualifiers() []Qualifier {
	return b.Qualifiers
}

//nolint:all
func (b *Blob) SetQualifiers(qualifiers []Qualifier) {
	b.Qualifiers = qualifiers
}

// DescendOnce returns the direct referable children of the element.
func (b *Blob) DescendOnce() []Referable {
	return nil
}

// AssertBlobRequired checks if the required fields are not zero-ed
func AssertBlobRequired(obj Blob) error {
	elements := map[string]interface{}{
		"modelType":   obj.ModelType,
		"contentType": obj.ContentType,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	return nil
}

// AssertBlobConstraints checks if the values respects the defined constraints
func AssertBlobConstraints(obj Blob) error {
	return nil
}
