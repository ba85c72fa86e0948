// Package apperrors defines the error kinds the services surface and the
// single place where kinds are mapped to HTTP status codes.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindBadInput
	KindUnauthorized
	KindForbidden
	KindSchemaInvalid
	KindUpstreamUnavailable
	KindUpstreamBadPayload
)

// Error carries a kind, a client-facing message and an optional cause.
// Status overrides the kind's default HTTP status when non-zero.
type Error struct {
	Kind    Kind
	Message string
	Status  int
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NotFound(format string, args ...interface{}) *Error {
	return Newf(KindNotFound, format, args...)
}

func Conflict(format string, args ...interface{}) *Error {
	return Newf(KindConflict, format, args...)
}

// ConflictBadRequest is a duplicate-state conflict reported as 400 rather
// than 409, e.g. adding statistics to a match that already has them.
func ConflictBadRequest(format string, args ...interface{}) *Error {
	e := Newf(KindConflict, format, args...)
	e.Status = http.StatusBadRequest
	return e
}

func BadInput(format string, args ...interface{}) *Error {
	return Newf(KindBadInput, format, args...)
}

func Unauthorized(format string, args ...interface{}) *Error {
	return Newf(KindUnauthorized, format, args...)
}

func Forbidden(format string, args ...interface{}) *Error {
	return Newf(KindForbidden, format, args...)
}

// KindOf extracts the kind from an error chain, KindInternal if none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Status maps an error to the HTTP status the transport should answer with.
func Status(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		if appErr.Status != 0 {
			return appErr.Status
		}
		switch appErr.Kind {
		case KindNotFound:
			return http.StatusNotFound
		case KindConflict:
			return http.StatusConflict
		case KindBadInput:
			return http.StatusBadRequest
		case KindUnauthorized:
			return http.StatusUnauthorized
		case KindForbidden:
			return http.StatusForbidden
		case KindSchemaInvalid:
			return http.StatusUnprocessableEntity
		case KindUpstreamUnavailable, KindUpstreamBadPayload:
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// Message returns the client-facing message, hiding internal details.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}
