// Package apperr defines the structured failure values surfaced by mutating
// operations. Every failure carries a kind (validation, conflict, not found)
// plus a caller-facing message; nothing leaks internal representation.
package apperr

import (
	"errors"
	"fmt"
)

// Failure kinds.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error pairs a failure kind with a message.
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Validationf creates a validation error with a formatted message.
func Validationf(format string, args ...any) error {
	return &Error{Err: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// Conflictf creates a conflict error with a formatted message.
func Conflictf(format string, args ...any) error {
	return &Error{Err: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf creates a not-found error with a formatted message.
func NotFoundf(format string, args ...any) error {
	return &Error{Err: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// Unauthorizedf creates an unauthorized error with a formatted message.
func Unauthorizedf(format string, args ...any) error {
	return &Error{Err: ErrUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsConflict reports whether err is a conflict error.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsUnauthorized reports whether err is an unauthorized error.
func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }
