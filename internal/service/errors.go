package service

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotFound reports that a well-formed identifier has no corresponding
// row. It is an expected outcome, distinct from a malformed identifier
// (ValidationErrors) and from storage faults (StorageError).
var ErrNotFound = errors.New("expense not found")

// FieldError is a single field-level validation problem.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors carries the complete set of field-level problems found
// in a payload. Mutation payloads collect every violation at once; list
// query validation fails fast and carries exactly one.
type ValidationErrors struct {
	Errors []FieldError
}

func (e *ValidationErrors) Error() string {
	messages := make([]string, len(e.Errors))
	for i, fieldErr := range e.Errors {
		messages[i] = fieldErr.Error()
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

func newValidationError(field, message string) *ValidationErrors {
	return &ValidationErrors{Errors: []FieldError{{Field: field, Message: message}}}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var validationErrors *ValidationErrors
	return errors.As(err, &validationErrors)
}

// StorageError wraps an unexpected storage fault with the operation that
// hit it. The cause is kept for logs and never shown to callers.
type StorageError struct {
	Op  string
	ID  int64
	Err error
}

func (e *StorageError) Error() string {
	if e.ID > 0 {
		return "storage: " + e.Op + " id=" + strconv.FormatInt(e.ID, 10) + ": " + e.Err.Error()
	}
	return "storage: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
