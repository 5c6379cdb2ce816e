package errors

import (
	"errors"
	"fmt"
)

// Error represents a typed domain error. Failures carry a stable code
// the presentation layer can match on.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrDuplicateUsername  = New("DUPLICATE_USERNAME", "username already taken")
	ErrInvalidCredentials = New("INVALID_CREDENTIALS", "invalid username or password")
	ErrUserNotFound       = New("USER_NOT_FOUND", "user not found")
	ErrRequestNotFound    = New("REQUEST_NOT_FOUND", "coaching request not found")
	ErrRequestDecided     = New("REQUEST_ALREADY_DECIDED", "coaching request already decided")
	ErrDuplicateRequest   = New("DUPLICATE_REQUEST", "coaching request already open for this teacher")
	ErrValidation         = New("VALIDATION_ERROR", "validation failed")
	ErrForbidden          = New("FORBIDDEN", "forbidden")
	ErrNotFound           = New("NOT_FOUND", "resource not found")
	ErrInternal           = New("INTERNAL_ERROR", "internal error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// Is reports whether err carries the same code as target.
func Is(err error, target *Error) bool {
	if err == nil || target == nil {
		return false
	}
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == target.Code
}
