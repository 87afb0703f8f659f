package service

import (
	"errors"
	"fmt"
	"strings"

	"sizing-assistant/internal/sizing"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrBusy is returned when a submission is attempted while another one is in flight.
	ErrBusy = errors.New("a submission is already in progress")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// ValidationErrors collects every field that failed validation.
// It matches ErrInvalidInput with errors.Is.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, v := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrInvalidInput.
func (e ValidationErrors) Is(target error) bool {
	return target == ErrInvalidInput
}

func toValidationErrors(errs []sizing.FieldError) ValidationErrors {
	out := make(ValidationErrors, 0, len(errs))
	for _, fe := range errs {
		out = append(out, ValidationError{Field: fe.Field, Message: fe.Message})
	}
	return out
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
