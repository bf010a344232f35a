package model

// Property is a data element with a single typed value.
type Property struct {
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

	Value string `json:"value,omitempty"`

	//nolint:all
	ValueId *Reference `json:"valueId,omitempty"`
}

// NewProperty creates a new Property instance
func NewProperty(valueType DataTypeDefXsd) *Property {
	return &Property{
		ValueType: valueType,
		ModelType: "Property",
	}
}

//nolint:all
func (p *Property) GetIdShort() string {
	return p.IdShort
}

//nolint:all
func (p *Property) GetModelType() string {
	return p.ModelType
}

//nolint:all
func (p *Property) GetSemanticID() *Reference {
	return p.SemanticID
}

//nolint:all
func (p *Property) GetQualifiers() []Qualifier {
	return p.Qualifiers
}

//nolint:all
func (p *Property) SetQualifiers(qualifiers []Qualifier) {
	p.Qualifiers = qualifiers
}

// DescendOnce returns the direct referable children of the element.
func (p *Property) DescendOnce() []Referable {
	return nil
}

// AssertPropertyRequired checks if the required fields are not zero-ed
func AssertPropertyRequired(obj Property) error {
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

// AssertPropertyConstraints checks if the values respects the defined constraints
func AssertPropertyConstraints(obj Property) error {
	if !obj.ValueType.IsValid() {
		return &ParsingError{Err: errInvalidEnumValue("Property.valueType", string(obj.ValueType))}
	}
	return nil
}
