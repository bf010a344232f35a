package model

import (
	"fmt"
)

// ModellingKind type of ModellingKind
type ModellingKind string

// List of ModellingKind
//
//nolint:all
const (
	MODELLINGKIND_INSTANCE ModellingKind = "Instance"
	MODELLINGKIND_TEMPLATE ModellingKind = "Template"
)

// AllowedModellingKindEnumValues is all the allowed values of ModellingKind enum
var AllowedModellingKindEnumValues = []ModellingKind{
	"Instance",
	"Template",
}

var validModellingKindEnumValues = func() map[ModellingKind]struct{} {
	m := make(map[ModellingKind]struct{}, len(AllowedModellingKindEnumValues))
	for _, v := range AllowedModellingKindEnumValues {
		m[v] = struct{}{}
	}
	return m
}()

// IsValid return true if the value is valid for the enum, false otherwise
func (v ModellingKind) IsValid() bool {
	_, ok := validModellingKindEnumValues[v]
	return ok
}

// NewModellingKindFromValue returns a valid ModellingKind for the value passed as
// argument, or an error if the value passed is not allowed by the enum
func NewModellingKindFromValue(v string) (ModellingKind, error) {
	ev := ModellingKind(v)
	if ev.IsValid() {
		return ev, nil
	}
	return "", fmt.Errorf("invalid value '%v' for ModellingKind: valid values are %v", v, AllowedModellingKindEnumValues)
}
