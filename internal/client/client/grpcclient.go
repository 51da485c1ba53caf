package client

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/common"
	pb "github.com/dmitrijs2005/gophvault/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.VaultServiceClient

	mu       sync.RWMutex
	token    string
	userName string
}

// NewGRPCClient connects lazily to endpointURL. Extra dial options are
// appended after the defaults.
func NewGRPCClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewVaultServiceClient(conn)
	return c, nil
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	md.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor bounds every call by the request timeout and
// attaches the session token. A session the server no longer accepts is
// dropped.
func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	token := c.Token()
	if token != "" {
		ctx = withAccessToken(ctx, token)
	}

	err := invoker(ctx, method, req, reply, cc, opts...)

	if st, ok := status.FromError(err); ok && st.Code() == codes.Unauthenticated && token != "" {
		switch st.Message() {
		case common.ErrTokenExpired.Msg, common.ErrTokenMalformed.Msg:
			c.Logout()
		}
	}

	return err
}

// Token returns the current session token, or "" when logged out.
func (c *GRPCClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// UserName returns the name of the logged in user.
func (c *GRPCClient) UserName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userName
}

func (c *GRPCClient) LoggedIn() bool {
	return c.Token() != ""
}

// Logout discards the session token. The server keeps no session state.
func (c *GRPCClient) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.userName = ""
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	resp, err := c.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (c *GRPCClient) Register(ctx context.Context, userName, password string) error {
	_, err := c.client.Register(ctx, &pb.RegisterRequest{Username: userName, Password: password})
	return mapError(err)
}

func (c *GRPCClient) Login(ctx context.Context, userName, password string) (time.Time, error) {
	resp, err := c.client.Login(ctx, &pb.LoginRequest{Username: userName, Password: password})
	if err != nil {
		return time.Time{}, mapError(err)
	}

	c.mu.Lock()
	c.token = resp.GetToken()
	c.userName = resp.GetUsername()
	c.mu.Unlock()

	return resp.GetExpiresAt().AsTime(), nil
}

func (c *GRPCClient) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if !c.LoggedIn() {
		return ErrNotLoggedIn
	}
	_, err := c.client.ChangePassword(ctx, &pb.ChangePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword})
	return mapError(err)
}

// Profile describes the logged in account.
func (c *GRPCClient) Profile(ctx context.Context) (*pb.GetProfileResponse, error) {
	if !c.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	resp, err := c.client.GetProfile(ctx, &pb.GetProfileRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

func (c *GRPCClient) CreateSecret(ctx context.Context, req *pb.CreateSecretRequest) (string, error) {
	if !c.LoggedIn() {
		return "", ErrNotLoggedIn
	}
	resp, err := c.client.CreateSecret(ctx, req)
	if err != nil {
		return "", mapError(err)
	}
	return resp.GetId(), nil
}

func (c *GRPCClient) ListSecrets(ctx context.Context, category, search string) ([]*pb.SecretSummary, error) {
	if !c.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	resp, err := c.client.ListSecrets(ctx, &pb.ListSecretsRequest{Category: category, Search: search})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.GetSecrets(), nil
}

func (c *GRPCClient) GetSecret(ctx context.Context, id string) (*pb.Secret, error) {
	if !c.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	resp, err := c.client.GetSecret(ctx, &pb.GetSecretRequest{Id: id})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

func (c *GRPCClient) UpdateSecret(ctx context.Context, req *pb.UpdateSecretRequest) error {
	if !c.LoggedIn() {
		return ErrNotLoggedIn
	}
	_, err := c.client.UpdateSecret(ctx, req)
	return mapError(err)
}

func (c *GRPCClient) DeleteSecret(ctx context.Context, id string) error {
	if !c.LoggedIn() {
		return ErrNotLoggedIn
	}
	_, err := c.client.DeleteSecret(ctx, &pb.DeleteSecretRequest{Id: id})
	return mapError(err)
}
