package model

// Extension is a proprietary extension of an element.
type Extension struct {
	//nolint:all
	SemanticId *Reference `json:"semanticId,omitempty"`

	//nolint:all
	SupplementalSemanticIds []Reference `json:"supplementalSemanticIds,omitempty"`

	Name string `json:"name"`

	ValueType DataTypeDefXsd `json:"valueType,omitempty"`

	Value string `json:"value,omitempty"`

	RefersTo []Reference `json:"refersTo,omitempty"`
}

// AssertExtensionRequired checks if the required fields are not zero-ed
func AssertExtensionRequired(obj Extension) error {
	if IsZeroValue(obj.Name) {
		return &RequiredError{Field: "name"}
	}
	return nil
}
