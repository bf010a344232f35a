package model

import (
	"fmt"
)

// Direction type of Direction
type Direction string

// List of Direction
//
//nolint:all
const (
	DIRECTION_INPUT  Direction = "input"
	DIRECTION_OUTPUT Direction = "output"
)

// AllowedDirectionEnumValues is all the allowed values of Direction enum
var AllowedDirectionEnumValues = []Direction{
	"input",
	"output",
}

var validDirectionEnumValues = func() map[Direction]struct{} {
	m := make(map[Direction]struct{}, len(AllowedDirectionEnumValues))
	for _, v := range AllowedDirectionEnumValues {
		m[v] = struct{}{}
	}
	return m
}()

// IsValid return true if the value is valid for the enum, false otherwise
func (v Direction) IsValid() bool {
	_, ok := validDirectionEnumValues[v]
	return ok
}

// NewDirectionFromValue returns a valid Direction for the value passed as
// argument, or an error if the value passed is not allowed by the enum
func NewDirectionFromValue(v string) (Direction, error) {
	ev := Direction(v)
	if ev.IsValid() {
		return ev, nil
	}
	return "", fmt.Errorf("invalid value '%v' for Direction: valid values are %v", v, AllowedDirectionEnumValues)
}
