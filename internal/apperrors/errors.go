package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRateNotFound indicates that no exchange rate quote exists for a required currency pair.
// Distinct from ErrNotFound: a missing quote aborts enrichment, a missing entity does not.
var ErrRateNotFound = errors.New("exchange rate not found")

// ValidationError describes a single rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation.Error(), e.Reason)
	}
	return fmt.Sprintf("%s: %s %s", ErrValidation.Error(), e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// RateNotFoundError is returned when the rate store has no quote for Pair.
type RateNotFoundError struct {
	Pair string
}

func (e *RateNotFoundError) Error() string {
	return fmt.Sprintf("rate not found for %s", e.Pair)
}

// Is lets errors.Is(err, ErrRateNotFound) match any RateNotFoundError.
func (e *RateNotFoundError) Is(target error) bool {
	return target == ErrRateNotFound
}

// NewRateNotFoundError creates a RateNotFoundError for the given currency pair.
func NewRateNotFoundError(pair string) *RateNotFoundError {
	return &RateNotFoundError{Pair: pair}
}

// AppError wraps a lower level failure (usually the store) with an HTTP-ish status code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError wraps ErrNotFound with a descriptive message.
func NewNotFoundError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}
