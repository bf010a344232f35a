package model

// Range is a data element spanning a min/max value pair.
type Range struct {
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

	ValueType DataTypeDefXsd `json:"valueType"`

	Min string `json:"min,omitempty"`

	Max string `json:"max,omitempty"`
}

// NewRange creates a new Range instance
func NewRange(valueType DataTypeDefXsd) *Range {
	return &Range{
		ValueType: valueType,
		ModelType: "Range",
	}
}

//nolint:all
func (r *Range) GetIdShort() string {
	return r.IdShort
}

//nolint:all
func (r *Range) GetModelType() string {
	return r.ModelType
}

//nolint:all
func (r *Range) GetSemanticID() *Reference {
	return r.SemanticID
}

//nolint:all
func (r *Range) GetQualifiers() []Qualifier {
	return r.Qualifiers
}

//nolint:all
func (r *Range) SetQualifiers(qualifiers []Qualifier) {
	r.Qualifiers = qualifiers
}

// DescendOnce returns the direct referable children of the element.
func (r *Range) DescendOnce() []Referable {
	return nil
}

// AssertRangeRequired checks if the required fields are not zero-ed
func AssertRangeRequired(obj Range) error {
	elements := map[string]interface{}{
		"modelType": obj.ModelType,
		"valueType": obj.ValueType,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	return nil
}

// AssertRangeConstraints checks if the values respects the defined constraints
func AssertRangeConstraints(obj Range) error {
	if !obj.ValueType.IsValid() {
		return &ParsingError{Err: errInvalidEnumValue("Range.valueType", string(obj.ValueType))}
	}
	return nil
}
