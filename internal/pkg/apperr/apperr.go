package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the machine-readable class of an application error.
type Kind string

const (
	KindNotFound       Kind = "NOT_FOUND"
	KindBadRequest     Kind = "INVALID_REQUEST"
	KindConflict       Kind = "CONFLICT"
	KindUnauthorized   Kind = "UNAUTHORIZED"
	KindInternal       Kind = "INTERNAL"
	KindNotImplemented Kind = "NOT_IMPLEMENTED"
)

// Error carries a kind and a message safe to show to the caller.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches by kind. An empty message on the target matches any message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// Kind-only sentinels for errors.Is checks.
var (
	ErrNotFound       = &Error{Kind: KindNotFound}
	ErrBadRequest     = &Error{Kind: KindBadRequest}
	ErrConflict       = &Error{Kind: KindConflict}
	ErrUnauthorized   = &Error{Kind: KindUnauthorized}
	ErrInternal       = &Error{Kind: KindInternal}
	ErrNotImplemented = &Error{Kind: KindNotImplemented}
)

func NotFound(msg string) *Error       { return &Error{Kind: KindNotFound, Message: msg} }
func BadRequest(msg string) *Error     { return &Error{Kind: KindBadRequest, Message: msg} }
func Conflict(msg string) *Error       { return &Error{Kind: KindConflict, Message: msg} }
func Unauthorized(msg string) *Error   { return &Error{Kind: KindUnauthorized, Message: msg} }
func Internal(msg string) *Error       { return &Error{Kind: KindInternal, Message: msg} }
func NotImplemented(msg string) *Error { return &Error{Kind: KindNotImplemented, Message: msg} }

func NotFoundf(format string, args ...any) *Error {
	return NotFound(fmt.Sprintf(format, args...))
}

func BadRequestf(format string, args ...any) *Error {
	return BadRequest(fmt.Sprintf(format, args...))
}

func Conflictf(format string, args ...any) *Error {
	return Conflict(fmt.Sprintf(format, args...))
}

// KindOf returns the kind of err, KindInternal for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps a kind to its response status.
func HTTPStatus(k Kind) int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
