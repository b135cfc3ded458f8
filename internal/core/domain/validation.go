package domain

import "strings"

// ValidationError reports which required input fields were absent.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing fields: " + strings.Join(e.Fields, ", ")
}

// NewValidationError builds a ValidationError from the missing field names.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
