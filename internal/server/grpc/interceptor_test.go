package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	pb "github.com/dmitrijs2005/gophvault/internal/proto"
	"github.com/dmitrijs2005/gophvault/internal/server/audit"
	"github.com/dmitrijs2005/gophvault/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestServer(tokens *auth.TokenService) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", nopLogger{}, newStubUsers(tokens), newStubSecrets(), tokens, false)
}

func withAuthorization(value string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", value))
}

func TestInterceptor_PublicMethodsPassWithoutToken(t *testing.T) {
	s := newTestServer(auth.NewTokenService(testSecret, time.Hour))

	for _, m := range []string{
		pb.VaultService_Ping_FullMethodName,
		pb.VaultService_Register_FullMethodName,
		pb.VaultService_Login_FullMethodName,
	} {
		called := false
		h := func(ctx context.Context, req any) (any, error) {
			called = true
			return "ok", nil
		}

		resp, err := s.accessTokenInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: m}, h)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", m, err)
		}
		if !called || resp != "ok" {
			t.Fatalf("%s: handler was not called", m)
		}
	}
}

func TestInterceptor_RejectsBeforeHandler(t *testing.T) {
	now := time.Now()
	tokens := auth.NewTokenService(testSecret, time.Hour, auth.WithClock(func() time.Time { return now }))
	s := newTestServer(tokens)

	valid, err := tokens.Issue("u-1", "alice")
	require.NoError(t, err)

	expired, err := auth.NewTokenService(testSecret, time.Hour,
		auth.WithClock(func() time.Time { return now.Add(-2 * time.Hour) })).Issue("u-1", "alice")
	require.NoError(t, err)

	forged, err := auth.NewTokenService([]byte("another-secret-another-secret-00"), time.Hour).Issue("u-1", "alice")
	require.NoError(t, err)

	tests := []struct {
		name string
		ctx  context.Context
		msg  string
	}{
		{"no metadata", context.Background(), "missing token"},
		{"empty header", withAuthorization(""), "missing token"},
		{"wrong scheme", withAuthorization("Basic " + valid), "missing token"},
		{"bare token", withAuthorization(valid), "missing token"},
		{"expired", withAuthorization("Bearer " + expired), "token expired"},
		{"forged", withAuthorization("Bearer " + forged), "invalid token"},
		{"garbage", withAuthorization("Bearer not-a-jwt"), "invalid token"},
	}

	info := &grpc.UnaryServerInfo{FullMethod: pb.VaultService_GetSecret_FullMethodName}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := func(ctx context.Context, req any) (any, error) {
				t.Fatal("handler must not be called")
				return nil, nil
			}

			_, err := s.accessTokenInterceptor(tc.ctx, nil, info, h)
			if status.Code(err) != codes.Unauthenticated {
				t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
			}
			if got := status.Convert(err).Message(); got != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, got)
			}
		})
	}
}

func TestInterceptor_ValidTokenSetsIdentity(t *testing.T) {
	tokens := auth.NewTokenService(testSecret, time.Hour)
	s := newTestServer(tokens)

	tok, err := tokens.Issue("u-42", "alice")
	require.NoError(t, err)

	info := &grpc.UnaryServerInfo{FullMethod: pb.VaultService_ListSecrets_FullMethodName}
	var got *auth.Identity
	h := func(ctx context.Context, req any) (any, error) {
		got, _ = auth.IdentityFromContext(ctx)
		return nil, nil
	}

	// lower-case scheme is accepted
	_, err = s.accessTokenInterceptor(withAuthorization("bearer "+tok), nil, info, h)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u-42", got.UserID)
	assert.Equal(t, "alice", got.Username)
}

func TestPeerInterceptor_StoresAddress(t *testing.T) {
	s := newTestServer(auth.NewTokenService(testSecret, time.Hour))

	addr := &net.TCPAddr{IP: net.ParseIP("10.0.0.7"), Port: 5555}
	ctx := peer.NewContext(context.Background(), &peer.Peer{Addr: addr})

	var got string
	h := func(ctx context.Context, req any) (any, error) {
		got = audit.PeerFromContext(ctx)
		return nil, nil
	}

	_, err := s.peerInterceptor(ctx, nil, &grpc.UnaryServerInfo{}, h)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.7:5555", got)
}

func TestHandlers_RequireIdentity(t *testing.T) {
	s := newTestServer(auth.NewTokenService(testSecret, time.Hour))

	_, err := s.GetSecret(context.Background(), &pb.GetSecretRequest{Id: "x"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = s.ChangePassword(context.Background(), &pb.ChangePasswordRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = s.GetProfile(context.Background(), &pb.GetProfileRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
