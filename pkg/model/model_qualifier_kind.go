package model

import (
	"fmt"
)

// QualifierKind type of QualifierKind
type QualifierKind string

// List of QualifierKind
//
//nolint:all
const (
	QUALIFIERKIND_CONCEPT_QUALIFIER  QualifierKind = "ConceptQualifier"
	QUALIFIERKIND_TEMPLATE_QUALIFIER QualifierKind = "TemplateQualifier"
	QUALIFIERKIND_VALUE_QUALIFIER    QualifierKind = "ValueQualifier"
)

// AllowedQualifierKindEnumValues is all the allowed values of QualifierKind enum
var AllowedQualifierKindEnumValues = []QualifierKind{
	"ConceptQualifier",
	"TemplateQualifier",
	"ValueQualifier",
}

var validQualifierKindEnumValues = func() map[QualifierKind]struct{} {
	m := make(map[QualifierKind]struct{}, len(AllowedQualifierKindEnumValues))
	for _, v := range AllowedQualifierKindEnumValues {
		m[v] = struct{}{}
	}
	return m
}()

// IsValid return true if the value is valid for the enum, false otherwise
func (v QualifierKind) IsValid() bool {
	_, ok := validQualifierKindEnumValues[v]
	return ok
}

// NewQualifierKindFromValue returns a valid QualifierKind for the value passed as
// argument, or an error if the value passed is not allowed by the enum
func NewQualifierKindFromValue(v string) (QualifierKind, error) {
	ev := QualifierKind(v)
	if ev.IsValid() {
		return ev, nil
	}
	return "", fmt.Errorf("invalid value '%v' for QualifierKind: valid values are %v", v, AllowedQualifierKindEnumValues)
}
