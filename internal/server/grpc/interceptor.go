package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/gophvault/internal/common"
	pb "github.com/dmitrijs2005/gophvault/internal/proto"
	"github.com/dmitrijs2005/gophvault/internal/server/audit"
	"github.com/dmitrijs2005/gophvault/internal/server/auth"
	"github.com/dmitrijs2005/gophvault/internal/server/metrics"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// publicMethods are reachable without a session token.
var publicMethods = map[string]bool{
	pb.VaultService_Ping_FullMethodName:     true,
	pb.VaultService_Register_FullMethodName: true,
	pb.VaultService_Login_FullMethodName:    true,
}

// accessTokenInterceptor verifies the bearer token of every non-public
// call and stores the resulting identity in the context. Rejected calls
// never reach the handler.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	token, ok := bearerToken(ctx)
	if !ok {
		metrics.RecordAuthRejected("missing")
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	id, err := s.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			metrics.RecordAuthRejected("expired")
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		metrics.RecordAuthRejected("invalid")
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return handler(auth.WithIdentity(ctx, id), req)
}

// peerInterceptor records the caller's address for audit events.
func (s *GRPCServer) peerInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		ctx = audit.WithPeer(ctx, p.Addr.String())
	}
	return handler(ctx, req)
}

func bearerToken(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}
	values := md.Get(common.AuthorizationHeaderName)
	if len(values) == 0 {
		return "", false
	}

	scheme, token, found := strings.Cut(values[0], " ")
	if !found || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func identity(ctx context.Context) (*auth.Identity, error) {
	id, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}
	return id, nil
}
