// Package schema defines the request shapes for every exposed operation
// and validates them before any network or subprocess call is made.
package schema

import "fmt"

// ValidationError reports malformed, out-of-range, or cross-field
// inconsistent input. It is always raised before any external effect.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error in field %q: %s", e.Field, e.Message)
}

// errf builds a ValidationError for a field.
func errf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
