package model

// MultiLanguageProperty is a data element with a value in multiple languages.
type MultiLanguageProperty struct {
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

	Value []LangStringTextType `json:"value,omitempty"`

	//nolint:all
	ValueId *Reference `json:"valueId,omitempty"`
}

// NewMultiLanguageProperty creates a new MultiLanguageProperty instance
func NewMultiLanguageProperty() *MultiLanguageProperty {
	return &MultiLanguageProperty{
		ModelType: "MultiLanguageProperty",
	}
}

//nolint:all
func (m *MultiLanguageProperty) GetIdShort() string {
	return m.IdShort
}

//nolint:all
func (m *MultiLanguageProperty) GetModelType() string {
	return m.ModelType
}

//nolint:all
func (m *MultiLanguageProperty) GetSemanticID() *Reference {
	return m.SemanticID
}

//nolint:all
func (m *MultiLanguageProperty) GetQualifiers() []Qualifier {
	return m.Qualifiers
}

//nolint:all
func (m *MultiLanguageProperty) SetQualifiers(qualifiers []Qualifier) {
	m.Qualifiers = qualifiers
}

// DescendOnce returns the direct referable children of the element.
func (m *MultiLanguageProperty) DescendOnce() []Referable {
	return nil
}

// AssertMultiLanguagePropertyRequired checks if the required fields are not zero-ed
func AssertMultiLanguagePropertyRequired(obj MultiLanguageProperty) error {
	if IsZeroValue(obj.ModelType) {
		return &RequiredError{Field: "modelType"}
	}
	for _, el := range obj.Value {
		if err := AssertLangStringTextTypeRequired(el); err != nil {
			return err
		}
	}
	return nil
}

// AssertMultiLanguagePropertyConstraints checks if the values respects the defined constraints
func AssertMultiLanguagePropertyConstraints(obj MultiLanguageProperty) error {
	return nil
}
