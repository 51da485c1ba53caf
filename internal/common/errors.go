package common

import (
	"errors"
	"strings"
)

// Kind classifies an error for the transport boundary. The set is closed:
// the gRPC layer switches over every value.
type Kind int

const (
	KindInternal Kind = iota
	KindKeyUnavailable
	KindAuthenticationFailed
	KindNotFound
	KindUnauthenticated
	KindValidation
	KindAlreadyExists
)

func (k Kind) String() string {
	switch k {
	case KindKeyUnavailable:
		return "key_unavailable"
	case KindAuthenticationFailed:
		return "authentication_failed"
	case KindNotFound:
		return "not_found"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindValidation:
		return "validation_failed"
	case KindAlreadyExists:
		return "already_exists"
	default:
		return "internal"
	}
}

// FieldViolation describes one invalid input field. Its text is safe to
// return to the caller.
type FieldViolation struct {
	Field       string
	Description string
}

// Error is the tagged error type shared by all server components.
//
// Two *Error values match under errors.Is when their kinds are equal and
// either the target has no message or both messages are equal. That lets
// callers test for a whole kind (ErrValidation) or a specific sentinel
// (ErrTokenExpired).
type Error struct {
	Kind   Kind
	Msg    string
	Fields []FieldViolation
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Msg)
	for i, f := range e.Fields {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(f.Field)
		b.WriteString(" ")
		b.WriteString(f.Description)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

var (
	ErrInternal = &Error{Kind: KindInternal, Msg: "internal error"}

	// Key and cipher errors.
	ErrKeyUnavailable       = &Error{Kind: KindKeyUnavailable, Msg: "master key unavailable"}
	ErrAuthenticationFailed = &Error{Kind: KindAuthenticationFailed, Msg: "ciphertext authentication failed"}

	// Repository-level errors.
	ErrNotFound      = &Error{Kind: KindNotFound, Msg: "not found"}
	ErrAlreadyExists = &Error{Kind: KindAlreadyExists, Msg: "already exists"}

	// Session errors.
	ErrUnauthenticated    = &Error{Kind: KindUnauthenticated, Msg: "unauthenticated"}
	ErrTokenExpired       = &Error{Kind: KindUnauthenticated, Msg: "token expired"}
	ErrTokenMalformed     = &Error{Kind: KindUnauthenticated, Msg: "invalid token"}
	ErrInvalidCredentials = &Error{Kind: KindUnauthenticated, Msg: "invalid credentials"}

	ErrValidation = &Error{Kind: KindValidation, Msg: "validation failed"}
)

// Wrap returns a copy of sentinel that carries cause in its chain.
func Wrap(sentinel *Error, cause error) *Error {
	return &Error{Kind: sentinel.Kind, Msg: sentinel.Msg, Fields: sentinel.Fields, Err: cause}
}

// NewValidationError builds a KindValidation error from field violations.
func NewValidationError(fields ...FieldViolation) *Error {
	return &Error{Kind: KindValidation, Msg: ErrValidation.Msg, Fields: fields}
}

// KindOf reports the kind of the first *Error in err's chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// FieldsOf returns the field violations carried by err, if any.
func FieldsOf(err error) []FieldViolation {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}
