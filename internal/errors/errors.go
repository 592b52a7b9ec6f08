// Package errors provides shared error types for the fourteeners MCP server.
package errors

import (
	"fmt"
	"strings"
)

// NotFoundError indicates an entity was not found in the dataset.
type NotFoundError struct {
	Kind       string // "mountain", "route"
	Identifier string // name fragment or exact name that was looked up
}

func (e *NotFoundError) Error() string {
	if e.Identifier != "" {
		return fmt.Sprintf("%s not found: %s", e.Kind, e.Identifier)
	}
	return fmt.Sprintf("%s not found", e.Kind)
}

// NewNotFoundError creates a NotFoundError for a dataset lookup.
func NewNotFoundError(kind, identifier string) *NotFoundError {
	return &NotFoundError{Kind: kind, Identifier: identifier}
}

// FieldError describes a single violated field in a request.
type FieldError struct {
	Field   string // field name that failed validation
	Value   string // the offending value, if printable
	Message string // human-readable error message
}

func (e FieldError) String() string {
	if e.Value != "" {
		return fmt.Sprintf("%s=%q: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError indicates invalid input parameters. It accumulates every
// violated field so callers see the full set of problems in one response.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field violation.
func (e *ValidationError) Add(field, value, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Value: value, Message: message})
}

// Empty reports whether no violations have been recorded.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// NewValidationError creates a ValidationError with a single field violation.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Value: value, Message: message}}}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}
