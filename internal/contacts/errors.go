package contacts

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation indicates that a field value failed its format check.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound indicates that a contact or phone does not exist.
	ErrNotFound = errors.New("not found")
)

// ValidationError describes a rejected field value.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Is reports whether target is ErrValidation so callers can use errors.Is.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(field, value, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

func notFound(kind, value string) error {
	return fmt.Errorf("%s %q: %w", kind, value, ErrNotFound)
}
