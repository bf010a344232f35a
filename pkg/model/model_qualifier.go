package model

// Qualifier is a type-value pair qualifying a submodel or submodel element.
type Qualifier struct {
	//nolint:all
	SemanticId *Reference `json:"semanticId,omitempty"`

	//nolint:all
	SupplementalSemanticIds []Reference `json:"supplementalSemanticIds,omitempty"`

	Kind QualifierKind `json:"kind,omitempty"`

	Type string `json:"type"`

	ValueType DataTypeDefXsd `json:"valueType"`

	Value string `json:"value,omitempty"`

	//nolint:all
	ValueId *Reference `json:"valueId,omitempty"`
}

// AssertQualifierRequired checks if the required fields are not zero-ed
func AssertQualifierRequired(obj Qualifier) error {
	elements := map[string]interface{}{
		"type":      obj.Type,
		"valueType": obj.ValueType,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	return nil
}

// AssertQualifierConstraints checks if the values respects the defined constraints
func AssertQualifierConstraints(obj Qualifier) error {
	if !obj.ValueType.IsValid() {
		return &ParsingError{Err: errInvalidEnumValue("Qualifier.valueType", string(obj.ValueType))}
	}
	if obj.Kind != "" && !obj.Kind.IsValid() {
		return &ParsingError{Err: errInvalidEnumValue("Qualifier.kind", string(obj.Kind))}
	}
	return nil
}
