package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// Currency domain errors. Each one is always wrapped together with one of the
// classes above so handlers only need to check the class.
var (
	ErrInvalidCurrencyCode = errors.New("invalid currency code")
	ErrNoRatePath          = errors.New("no exchange rate path")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInactiveCurrency    = errors.New("inactive currency")
)

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with the given status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates a 404 AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError creates a 400 AppError wrapping ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewInvalidCurrencyCodeError reports an unknown currency code.
func NewInvalidCurrencyCodeError(code string) error {
	return fmt.Errorf("%w: %w: currency with code '%s' not found", ErrNotFound, ErrInvalidCurrencyCode, code)
}

// NewNoRatePathError reports that neither a direct nor a hub rate exists.
func NewNoRatePathError(fromCode, toCode string) error {
	return fmt.Errorf("%w: %w: cannot calculate rate from %s to %s, no direct or indirect rate path exists",
		ErrNotFound, ErrNoRatePath, fromCode, toCode)
}
