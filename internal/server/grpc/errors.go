package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus converts a service error into the gRPC status sent to the
// caller. Cryptographic and storage details never leave the server except
// in development mode.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	var (
		code   codes.Code
		msg    string
		detail bool
	)

	kind := common.KindOf(err)
	switch kind {
	case common.KindInternal, common.KindKeyUnavailable:
		code, msg, detail = codes.Internal, "internal error", true
	case common.KindAuthenticationFailed:
		code, msg, detail = codes.Internal, "failed to decrypt secret", true
	case common.KindNotFound:
		code, msg = codes.NotFound, "not found"
	case common.KindUnauthenticated:
		code, msg = codes.Unauthenticated, publicMessage(err)
	case common.KindValidation:
		return s.validationStatus(ctx, err)
	case common.KindAlreadyExists:
		code, msg = codes.AlreadyExists, "already exists"
	default:
		code, msg, detail = codes.Internal, "internal error", true
	}

	if detail {
		s.logger.Error(ctx, msg, "kind", kind.String(), "error", err.Error())
		if s.development {
			msg += ": " + err.Error()
		}
	}
	return status.Error(code, msg)
}

func (s *GRPCServer) validationStatus(ctx context.Context, err error) error {
	st := status.New(codes.InvalidArgument, err.Error())

	br := &errdetails.BadRequest{}
	for _, f := range common.FieldsOf(err) {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       f.Field,
			Description: f.Description,
		})
	}

	withDetails, derr := st.WithDetails(br)
	if derr != nil {
		s.logger.Warn(ctx, "failed to attach field violations", "error", derr.Error())
		return st.Err()
	}
	return withDetails.Err()
}

// publicMessage returns the sentinel message of err without its cause.
func publicMessage(err error) string {
	var e *common.Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "unauthenticated"
}
