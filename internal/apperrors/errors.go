package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// Exchange-specific validation errors. These wrap ErrValidation so callers can
// match either the broad category or the precise failure.
var (
	ErrInvalidAmount   = fmt.Errorf("%w: invalid amount", ErrValidation)
	ErrInvalidRate     = fmt.Errorf("%w: invalid rate", ErrValidation)
	ErrInvalidCurrency = fmt.Errorf("%w: unsupported currency", ErrValidation)
	ErrInvalidType     = fmt.Errorf("%w: invalid order type", ErrValidation)
)

// ErrUserNotVerified indicates the user has not completed identity verification.
var ErrUserNotVerified = errors.New("user not verified")

// ErrLimitExceeded indicates an order exceeds the user's per-order maximum.
var ErrLimitExceeded = errors.New("order limit exceeded")

// ErrInvalidTransition indicates a disallowed transaction status transition.
var ErrInvalidTransition = errors.New("invalid status transition")

// AppError carries an HTTP-ish status code alongside the underlying error.
// Repositories use it to report persistence failures without leaking driver
// details to handlers.
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

// NewAppError creates a new AppError wrapping the given error.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches apperrors.ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError that matches apperrors.ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}
