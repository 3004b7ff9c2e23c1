package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindAuth
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindAuth:
		return "auth"
	default:
		return "internal"
	}
}

// Error is the single error type handed from services to controllers.
// Message is safe to show to the client.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) error { return &Error{Kind: KindValidation, Message: msg} }
func Conflict(msg string) error   { return &Error{Kind: KindConflict, Message: msg} }
func NotFound(msg string) error   { return &Error{Kind: KindNotFound, Message: msg} }
func Auth(msg string) error       { return &Error{Kind: KindAuth, Message: msg} }

// Internal marks err as an unexpected failure. The client sees err's text.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindInternal, Err: err}
}

// KindOf reports the kind of err. Errors outside the taxonomy are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// StatusOf maps err to its default HTTP status.
func StatusOf(err error) int {
	switch KindOf(err) {
	case KindValidation, KindConflict, KindAuth:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
