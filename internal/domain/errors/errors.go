// Package errors defines the application error taxonomy. Every rejected
// request maps to one of these errors, which the HTTP layer renders into the
// standard error envelope.
package errors

import (
	"net/http"

	"tasktag/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int  // HTTP status code
	Title() string  // Error kind token, e.g. "unauthorized"
	Detail() string // Human-readable message for the envelope
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode int
	title    string
	detail   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, title, detail string) *BaseError {
	return &BaseError{
		httpCode: httpCode,
		title:    title,
		detail:   detail,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.detail != "" {
		return e.title + ": " + e.detail
	}

	return e.title
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// Title returns the error kind token
func (e *BaseError) Title() string {
	return e.title
}

// Detail returns the human-readable message
func (e *BaseError) Detail() string {
	return e.detail
}

// Is matches errors by kind: two BaseErrors are the same error when their
// HTTP code and title agree, so copies carrying a specific detail still
// match their predefined kind.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return e.httpCode == other.httpCode && e.title == other.title
}

// WithDetail returns a copy of the error carrying a specific detail message.
func (e *BaseError) WithDetail(detail string) *BaseError {
	return &BaseError{
		httpCode: e.httpCode,
		title:    e.title,
		detail:   detail,
	}
}

// Predefined error types
var (
	// ErrUnauthenticated covers every "no identity" condition: missing
	// header, malformed or unverifiable token, unknown user. The detail is
	// deliberately identical for all of them.
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"unauthorized",
		"Please log in",
	)

	// ErrInvalidCredentials is returned on a failed login attempt.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"unauthorized",
		"Invalid username or password",
	)

	// ErrForbidden is returned when a valid identity targets a record it
	// does not own. The envelope carries no detail about the record.
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"forbidden",
		"",
	)

	// ErrRecordNotFound is the uniform translation for unknown identifiers,
	// regardless of which load triggered it.
	ErrRecordNotFound = NewBaseError(
		http.StatusNotFound,
		"record_not_found",
		"",
	)

	// ErrUsernameTaken is returned when a registration loses the username
	// uniqueness race or aims at an existing name.
	ErrUsernameTaken = NewBaseError(
		http.StatusForbidden,
		"invalid_record",
		"Username already taken",
	)

	// ErrInvalidRegistration covers registration payloads that fail
	// validation, such as a disallowed username charset.
	ErrInvalidRegistration = NewBaseError(
		http.StatusForbidden,
		"invalid_record",
		"Invalid username or password",
	)

	// ErrValidationFailed covers entity-level validation, e.g. an empty
	// task title.
	ErrValidationFailed = NewBaseError(
		http.StatusForbidden,
		"invalid_record",
		"Validation failed",
	)

	// ErrConflict is returned when a direct create collides with an
	// existing row and the conflict is not absorbed by reconciliation.
	ErrConflict = NewBaseError(
		http.StatusConflict,
		"conflict",
		"Record already exists",
	)

	// ErrInternal is the fallback for unexpected storage failures.
	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"internal_server_error",
		"Internal server error",
	)
)
