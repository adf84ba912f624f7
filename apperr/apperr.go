// Package apperr is the error taxonomy shared by every service. Each Kind
// maps to one HTTP status; the message is safe to show to clients.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	Unavailable Kind = iota // store or dependency failure
	Validation              // malformed or missing input
	Auth                    // missing, invalid or expired credentials
	Forbidden               // authenticated but not allowed
	NotFound                // referenced entity absent
	Conflict                // uniqueness violation
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Auth:
		return "auth"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	default:
		return "unavailable"
	}
}

// Status is the HTTP status a Kind is rendered with. Conflicts use 400,
// matching what clients of the storefront already expect.
func (k Kind) Status() int {
	switch k {
	case Validation, Conflict:
		return http.StatusBadRequest
	case Auth:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error // cause, never shown to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error of the same Kind, so callers can write
// errors.Is(err, apperr.ErrForbidden).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Message == "" && t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrValidation  = &Error{Kind: Validation}
	ErrAuth        = &Error{Kind: Auth}
	ErrForbidden   = &Error{Kind: Forbidden}
	ErrNotFound    = &Error{Kind: NotFound}
	ErrConflict    = &Error{Kind: Conflict}
	ErrUnavailable = &Error{Kind: Unavailable}
)

func NewValidation(msg string) error { return &Error{Kind: Validation, Message: msg} }
func NewAuth(msg string) error       { return &Error{Kind: Auth, Message: msg} }
func NewForbidden(msg string) error  { return &Error{Kind: Forbidden, Message: msg} }
func NewNotFound(msg string) error   { return &Error{Kind: NotFound, Message: msg} }
func NewConflict(msg string) error   { return &Error{Kind: Conflict, Message: msg} }

// Wrap marks err as a dependency failure. msg is what the client sees.
func Wrap(err error, msg string) error {
	return &Error{Kind: Unavailable, Message: msg, Err: err}
}

// KindOf reports the Kind of err; errors outside the taxonomy are
// Unavailable.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unavailable
}

// Status is the HTTP status for err.
func Status(err error) int { return KindOf(err).Status() }

// Message is the client-facing text for err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return "Internal server error"
}
