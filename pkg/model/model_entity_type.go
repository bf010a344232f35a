package model

import (
	"fmt"
)

// EntityType type of EntityType
type EntityType string

// List of EntityType
//
//nolint:all
const (
	ENTITYTYPE_CO_MANAGED_ENTITY   EntityType = "CoManagedEntity"
	ENTITYTYPE_SELF_MANAGED_ENTITY EntityType = "SelfManagedEntity"
)

// AllowedEntityTypeEnumValues is all the allowed values of EntityType enum
var AllowedEntityTypeEnumValues = []EntityType{
	"CoManagedEntity",
	"SelfManagedEntity",
}

var validEntityTypeEnumValues = func() map[EntityType]struct{} {
	m := make(map[EntityType]struct{}, len(AllowedEntityTypeEnumValues))
	for _, v := range AllowedEntityTypeEnumValues {
		m[v] = struct{}{}
	}
	return m
}()

// IsValid return true if the value is valid for the enum, false otherwise
func (v EntityType) IsValid() bool {
	_, ok := validEntityTypeEnumValues[v]
	return ok
}

// NewEntityTypeFromValue returns a valid EntityType for the value passed as
// argument, or an error if the value passed is not allowed by the enum
func NewEntityTypeFromValue(v string) (EntityType, error) {
	ev := EntityType(v)
	if ev.IsValid() {
		return ev, nil
	}
	return "", fmt.Errorf("invalid value '%v' for EntityType: valid values are %v", v, AllowedEntityTypeEnumValues)
}
