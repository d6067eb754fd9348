package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an operation targets an id absent from
	// its collection. Deletes and updates on missing ids report it instead
	// of crashing.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidTransition is returned when a requested status change is
	// not reachable from the entity's current state.
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError rejects a mutation before it is applied; no partial writes.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalidField(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
