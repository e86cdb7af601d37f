package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")

	// ErrInvalidCredentials is returned by login for both an unknown username
	// and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrIncorrectPassword is returned by password change when the current
	// password does not verify.
	ErrIncorrectPassword = errors.New("current password is incorrect")
	// ErrUnavailable marks an optional integration that is not configured.
	ErrUnavailable = errors.New("unavailable")
	// ErrArchive wraps failures while building an export archive.
	ErrArchive = errors.New("archive error")
)

// FieldError describes a validation error for a specific field.
// Field is a dotted path, e.g. "customization.appearance.race".
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Fields returns the errors keyed by field path. When a field has several
// errors the first one wins.
func (e *ValidationError) Fields() map[string]string {
	out := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		if _, ok := out[fe.Field]; !ok {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

// Invalid returns a ValidationError for a single field.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// FieldErrors collects field failures while an input is checked.
type FieldErrors []FieldError

// Add records a failure for field.
func (f *FieldErrors) Add(field, message string) {
	*f = append(*f, FieldError{Field: field, Message: message})
}

// Merge appends failures produced by a nested check.
func (f *FieldErrors) Merge(errs []FieldError) {
	*f = append(*f, errs...)
}

// Err returns nil when nothing was recorded, otherwise a *ValidationError.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Errors: f}
}
