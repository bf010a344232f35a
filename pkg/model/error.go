package model

import (
	"fmt"
	"reflect"
)

// RequiredError indicates that a field required by the meta-model is missing
// or zero-valued.
type RequiredError struct {
	Field string
}

func (e *RequiredError) Error() string {
	return fmt.Sprintf("required field '%s' is zero value", e.Field)
}

// ParsingError indicates that a model was unable to be parsed from input data.
type ParsingError struct {
	Err error
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("parsing error: %v", e.Err)
}

func (e *ParsingError) Unwrap() error {
	return e.Err
}

func errInvalidEnumValue(field, value string) error {
	return fmt.Errorf("field '%s' holds invalid enum value '%s'", field, value)
}

// IsZeroValue checks if the val is the zero-ed value.
func IsZeroValue(val interface{}) bool {
	return val == nil || reflect.DeepEqual(val, reflect.Zero(reflect.TypeOf(val)).Interface())
}
