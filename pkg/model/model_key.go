package model

// Key is a single key of a Reference, pointing to a model element or an
// external resource.
type Key struct {
	Type KeyTypes `json:"type"`

	Value string `json:"value"`
}

// AssertKeyRequired checks if the required fields are not zero-ed
func AssertKeyRequired(obj Key) error {
	elements := map[string]interface{}{
		"type":  obj.Type,
		"value": obj.Value,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	return nil
}

// AssertKeyConstraints checks if the values respects the defined constraints
func AssertKeyConstraints(obj Key) error {
	if !obj.Type.IsValid() {
		return &ParsingError{Err: errInvalidEnumValue("Key.type", string(obj.Type))}
	}
	return nil
}
