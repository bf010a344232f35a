package model

import (
	"fmt"
)

// AssetKind type of AssetKind
type AssetKind string

// List of AssetKind
//
//nolint:all
const (
	ASSETKIND_INSTANCE       AssetKind = "Instance"
	ASSETKIND_NOT_APPLICABLE AssetKind = "NotApplicable"
	ASSETKIND_TYPE           AssetKind = "Type"
)

// AllowedAssetKindEnumValues is all the allowed values of AssetKind enum
var AllowedAssetKindEnumValues = []AssetKind{
	"Instance",
	"NotApplicable",
	"Type",
}

var validAssetKindEnumValues = func() map[AssetKind]struct{} {
	m := make(map[AssetKind]struct{}, len(AllowedAssetKindEnumValues))
	for _, v := range AllowedAssetKindEnumValues {
		m[v] = struct{}{}
	}
	return m
}()

// IsValid return true if the value is valid for the enum, false otherwise
func (v AssetKind) IsValid() bool {
	_, ok := validAssetKindEnumValues[v]
	return ok
}

// NewAssetKindFromValue returns a valid AssetKind for the value passed as
// argument, or an error if the value passed is not allowed by the enum
func NewAssetKindFromValue(v string) (AssetKind, error) {
	ev := AssetKind(v)
	if ev.IsValid() {
		return ev, nil
	}
	return "", fmt.Errorf("invalid value '%v' for AssetKind: valid values are %v", v, AllowedAssetKindEnumValues)
}
