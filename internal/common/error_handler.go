package common

import (
	"errors"
	"strings"
)

func NewErrNotFound(elementId string) error {
	return errors.New("404 Not Found: " + elementId)
}

func NewErrBadRequest(message string) error {
	return errors.New("400 Bad Request: " + message)
}

func NewErrConflict(message string) error {
	return errors.New("409 Conflict: " + message)
}

func NewInternalServerError(message string) error {
	return errors.New("500 Internal Server Error: " + message)
}

func IsErrNotFound(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "404 Not Found: ")
}

func IsErrBadRequest(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "400 Bad Request: ")
}

func IsErrConflict(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "409 Conflict: ")
}
