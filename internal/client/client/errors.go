package client

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"
)

var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrNotLoggedIn     = errors.New("not logged in")
)

// FieldError is one rejected input field as reported by the server.
type FieldError struct {
	Field       string
	Description string
}

// ValidationError reports rejected input.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Description)
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// mapError converts a gRPC status into a client error.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthenticated, st.Message())
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument:
		return &ValidationError{Message: st.Message(), Fields: fieldErrors(st.Proto().GetDetails())}
	default:
		return fmt.Errorf("server error: %s", st.Message())
	}
}

// fieldErrors extracts the BadRequest field violations from status details.
// Unknown detail types are skipped.
func fieldErrors(details []*anypb.Any) []FieldError {
	var out []FieldError
	for _, d := range details {
		br := &errdetails.BadRequest{}
		if !d.MessageIs(br) {
			continue
		}
		if err := d.UnmarshalTo(br); err != nil {
			continue
		}
		for _, v := range br.GetFieldViolations() {
			out = append(out, FieldError{Field: v.GetField(), Description: v.GetDescription()})
		}
	}
	return out
}
