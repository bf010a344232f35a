package model

// File is a data element referencing a file by path or URL.
type File struct {
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

	Value string `json:"value,omitempty"`

	ContentType string `json:"contentType"`
}

// NewFile creates a new File instance
func NewFile(contentType string) *File {
	return &File{
		ContentType: contentType,
		ModelType:   "File",
	}
}

//nolint:all
func (f *File) GetIdShort() string {
	return f.IdShort
}

//nolint:all
func (f *File) GetModelType() string {
	return f.ModelType
}

//nolint:all
func (f *File) GetSemanticID() *Reference {
	return f.SemanticID
}

//nolint:all
func (f *File) GetQualifiers() []Qualifier {
	return f.Qualifiers
}

//nolint:all
func (f *File) SetQualifiers(qualifiers []Qualifier) {
	f.Qualifiers = qualifiers
}

// DescendOnce returns the direct referable children of the element.
func (f *File) DescendOnce() []Referable {
	return nil
}

// AssertFileRequired checks if the required fields are not zero-ed
func AssertFileRequired(obj File) error {
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

// AssertFileConstraints checks if the values respects the defined constraints
func AssertFileConstraints(obj File) error {
	return nil
}
