package model

import (
	"fmt"
)

// StateOfEvent type of StateOfEvent
type StateOfEvent string

// List of StateOfEvent
//
//nolint:all
const (
	STATEOFEVENT_ON  StateOfEvent = "on"
	STATEOFEVENT_OFF StateOfEvent = "off"
)

// AllowedStateOfEventEnumValues is all the allowed values of StateOfEvent enum
var AllowedStateOfEventEnumValues = []StateOfEvent{
	"on",
	"off",
}

var validStateOfEventEnumValues = func() map[StateOfEvent]struct{} {
	m := make(map[StateOfEvent]struct{}, len(AllowedStateOfEventEnumValues))
	for _, v := range AllowedStateOfEventEnumValues {
		m[v] = struct{}{}
	}
	return m
}()

// IsValid return true if the value is valid for the enum, false otherwise
func (v StateOfEvent) IsValid() bool {
	_, ok := validStateOfEventEnumValues[v]
	return ok
}

// NewStateOfEventFromValue returns a valid StateOfEvent for the value passed as
// argument, or an error if the value passed is not allowed by the enum
func NewStateOfEventFromValue(v string) (StateOfEvent, error) {
	ev := StateOfEvent(v)
	if ev.IsValid() {
		return ev, nil
	}
	return "", fmt.Errorf("invalid value '%v' for StateOfEvent: valid values are %v", v, AllowedStateOfEventEnumValues)
}
