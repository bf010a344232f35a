package model

// LangStringNameType is a name string together with its language tag.
type LangStringNameType struct {
	Language string `json:"language"`

	Text string `json:"text"`
}

// LangStringTextType is a text string together with its language tag.
type LangStringTextType struct {
	Language string `json:"language"`

	Text string `json:"text"`
}

// AssertLangStringNameTypeRequired checks if the required fields are not zero-ed
func AssertLangStringNameTypeRequired(obj LangStringNameType) error {
	elements := map[string]interface{}{
		"language": obj.Language,
		"text":     obj.Text,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	return nil
}

// AssertLangStringTextTypeRequired checks if the required fields are not zero-ed
func AssertLangStringTextTypeRequired(obj LangStringTextType) error {
	elements := map[string]interface{}{
		"language": obj.Language,
		"text":     obj.Text,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	return nil
}
