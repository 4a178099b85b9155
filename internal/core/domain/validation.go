package domain

import "strings"

// ValidationError carries every violated field message from a single
// validation pass. Validation never short-circuits across fields.
type ValidationError struct {
	Fields []string
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}
