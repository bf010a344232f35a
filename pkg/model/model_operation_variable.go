package model

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

// OperationVariable wraps a submodel element used as an operation parameter.
type OperationVariable struct {
	Value SubmodelElement `json:"value"`
}

// UnmarshalJSON implements custom unmarshaling for the polymorphic value
// element
func (o *OperationVariable) UnmarshalJSON(data []byte) error {
	aux := struct {
		Value json.RawMessage `json:"value"`
	}{}
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Value) == 0 {
		o.Value = nil
		return nil
	}
	value, err := UnmarshalSubmodelElement(aux.Value)
	if err != nil {
		return err
	}
	o.Value = value
	return nil
}

// AssertOperationVariableRequired checks if the required fields are not zero-ed
func AssertOperationVariableRequired(obj OperationVariable) error {
	if obj.Value == nil {
		return &RequiredError{Field: "value"}
	}
	return AssertSubmodelElementRequired(obj.Value)
}
