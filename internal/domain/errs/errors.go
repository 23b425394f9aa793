package errs

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError carries every violated rule of a rejected input, not just
// the first one found.
type ValidationError struct {
	Violations []string
}

func NewValidation(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// NotFoundError covers both genuinely missing resources and resources owned
// by someone else. Callers cannot tell the two apart.
type NotFoundError struct {
	Resource string
}

func NewNotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// ConflictError reports a uniqueness clash on a single field.
type ConflictError struct {
	Field   string
	Message string
}

func NewConflict(field, message string) *ConflictError {
	return &ConflictError{Field: field, Message: message}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
