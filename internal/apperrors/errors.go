package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRegistryInitialized is returned when the currency registry is initialized a second time.
var ErrRegistryInitialized = errors.New("currency registry already initialized")

// ValidationError describes a single rejected field.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field string, value any, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Reason)
	}
	return fmt.Sprintf("%s: %s %v: %s", ErrValidation, e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// UnknownCurrencyCodeError is returned when no currency is registered under Key.
type UnknownCurrencyCodeError struct {
	// Key is the offending alpha or numeric code as the caller supplied it
	// (numeric codes are zero-padded to three digits).
	Key string
}

func (e *UnknownCurrencyCodeError) Error() string {
	return fmt.Sprintf("no currency specified for ISO code '%s'", e.Key)
}

// Unwrap lets errors.Is match ErrNotFound.
func (e *UnknownCurrencyCodeError) Unwrap() error { return ErrNotFound }
