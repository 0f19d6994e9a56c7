package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound                = errors.New("not found")
	ErrValidation              = errors.New("validation error")
	ErrAlreadyExists           = errors.New("already exists")
	ErrInvalidLanguageValue    = errors.New("invalid language value")
	ErrDeprecatedLanguageValue = errors.New("deprecated language value")
)

// InvalidLanguageValueError is returned when a value matches no identifier,
// name or alias, and is not a known withdrawn value either.
type InvalidLanguageValueError struct {
	Value string
}

func (e *InvalidLanguageValueError) Error() string {
	return fmt.Sprintf("%q is not a valid Lang argument", e.Value)
}

func (e *InvalidLanguageValueError) Unwrap() error { return ErrInvalidLanguageValue }

// DeprecatedLanguageValueError is returned when a value matches a withdrawn
// identifier or the former reference name of a withdrawn record.
// ChangeTo is empty when the record was retired without replacement.
type DeprecatedLanguageValueError struct {
	Value string
	Deprecation
}

func (e *DeprecatedLanguageValueError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%q is a deprecated language value (%s", e.Value, e.Name)
	if e.Effective != "" {
		fmt.Fprintf(&b, ", withdrawn %s", e.Effective)
	}
	b.WriteString(")")
	if e.ChangeTo != "" {
		fmt.Fprintf(&b, ", use %q instead", e.ChangeTo)
	}
	return b.String()
}

func (e *DeprecatedLanguageValueError) Unwrap() error { return ErrDeprecatedLanguageValue }

// FieldError describes a validation error for a specific field.
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
	return fmt.Sprintf("validation: %d errors (first: %s: %s)", len(e.Errors), e.Errors[0].Field, e.Errors[0].Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
