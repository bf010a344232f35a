package model

import (
	"encoding/json"
)

// EmbeddedDataSpecification links a data specification reference with its
// inlined content. The content is kept as raw JSON: the framework passes
// data specification templates through without interpreting them.
type EmbeddedDataSpecification struct {
	DataSpecification *Reference `json:"dataSpecification,omitempty"`

	DataSpecificationContent json.RawMessage `json:"dataSpecificationContent,omitempty"`
}

// AssertEmbeddedDataSpecificationRequired checks if the required fields are not zero-ed
func AssertEmbeddedDataSpecificationRequired(obj EmbeddedDataSpecification) error {
	if len(obj.DataSpecificationContent) == 0 {
		return &RequiredError{Field: "dataSpecificationContent"}
	}
	return nil
}
