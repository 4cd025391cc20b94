package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrNotFound signals that no notepad exists under the requested id.
	ErrNotFound = errors.New("notepad not found")

	// ErrUnavailable signals that the underlying store could not be opened
	// or has become unusable. Operations wrap it with detail.
	ErrUnavailable = errors.New("store unavailable")
)

// ValidationError reports user input rejected before it reaches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
