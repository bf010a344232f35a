package model

import (
	"fmt"
)

// ReferenceTypes type of ReferenceTypes
type ReferenceTypes string

// List of ReferenceTypes
//
//nolint:all
const (
	REFERENCETYPES_EXTERNAL_REFERENCE ReferenceTypes = "ExternalReference"
	REFERENCETYPES_MODEL_REFERENCE    ReferenceTypes = "ModelReference"
)

// AllowedReferenceTypesEnumValues is all the allowed values of ReferenceTypes enum
var AllowedReferenceTypesEnumValues = []ReferenceTypes{
	"ExternalReference",
	"ModelReference",
}

var validReferenceTypesEnumValues = func() map[ReferenceTypes]struct{} {
	m := make(map[ReferenceTypes]struct{}, len(AllowedReferenceTypesEnumValues))
	for _, v := range AllowedReferenceTypesEnumValues {
		m[v] = struct{}{}
	}
	return m
}()

// IsValid return true if the value is valid for the enum, false otherwise
func (v ReferenceTypes) IsValid() bool {
	_, ok := validReferenceTypesEnumValues[v]
	return ok
}

// NewReferenceTypesFromValue returns a valid ReferenceTypes for the value passed as
// argument, or an error if the value passed is not allowed by the enum
func NewReferenceTypesFromValue(v string) (ReferenceTypes, error) {
	ev := ReferenceTypes(v)
	if ev.IsValid() {
		return ev, nil
	}
	return "", fmt.Errorf("invalid value '%v' for ReferenceTypes: valid values are %v", v, AllowedReferenceTypesEnumValues)
}
