package domain

import "errors"

// ErrorKind classifies a domain error. The HTTP boundary maps each kind to a
// status code; services never deal in status codes themselves.
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation_error"
	KindNotFound     ErrorKind = "not_found"
	KindUnauthorized ErrorKind = "unauthorized"
	KindConflict     ErrorKind = "conflict"
	KindInternal     ErrorKind = "internal"
)

// Error is the typed error carried across service boundaries.
type Error struct {
	Kind    ErrorKind
	Message string
	// Code is an optional machine-readable error code surfaced to clients
	// alongside the message (e.g. "EMAIL_EXISTS").
	Code string
}

func (e *Error) Error() string { return e.Message }

// Fixed error conditions. Compared with errors.Is (pointer identity).
var (
	ErrProductNotFound    = &Error{Kind: KindNotFound, Message: "product not found"}
	ErrUserNotFound       = &Error{Kind: KindNotFound, Message: "user not found"}
	ErrEmailExists        = &Error{Kind: KindConflict, Message: "email already registered", Code: "EMAIL_EXISTS"}
	ErrInvalidCredentials = &Error{Kind: KindUnauthorized, Message: "invalid credentials", Code: "INVALID_CREDENTIALS"}
	ErrTokenInvalid       = &Error{Kind: KindUnauthorized, Message: "invalid or expired token", Code: "TOKEN_INVALID"}
)

// NewValidation returns a validation error with a caller-supplied message.
func NewValidation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// KindOf reports the kind of err, or KindInternal when err carries no
// domain error.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
