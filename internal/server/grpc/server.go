package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/logging"
	pb "github.com/dmitrijs2005/gophvault/internal/proto"
	"github.com/dmitrijs2005/gophvault/internal/server/auth"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
	"github.com/dmitrijs2005/gophvault/internal/server/services"
	"google.golang.org/grpc"
)

// UserAPI is the account service used by the handlers.
type UserAPI interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*services.LoginResult, error)
	ChangePassword(ctx context.Context, id *auth.Identity, oldPassword, newPassword string) error
	GetProfile(ctx context.Context, id *auth.Identity) (*models.User, error)
}

// SecretAPI is the secret service used by the handlers.
type SecretAPI interface {
	Create(ctx context.Context, id *auth.Identity, in models.SecretInput) (string, error)
	List(ctx context.Context, id *auth.Identity, filter models.SecretFilter) ([]*models.SecretSummary, error)
	Get(ctx context.Context, id *auth.Identity, recordID string) (*models.SecretDetails, error)
	Update(ctx context.Context, id *auth.Identity, recordID string, patch models.SecretPatch) error
	Delete(ctx context.Context, id *auth.Identity, recordID string) error
}

// TokenVerifier checks session tokens.
type TokenVerifier interface {
	Verify(token string) (*auth.Identity, error)
}

type GRPCServer struct {
	pb.UnimplementedVaultServiceServer
	address     string
	users       UserAPI
	secrets     SecretAPI
	tokens      TokenVerifier
	logger      logging.Logger
	development bool
}

// NewGRPCServer builds the VaultService server. In development mode internal
// error details are appended to status messages.
func NewGRPCServer(a string, l logging.Logger, us UserAPI, ss SecretAPI, tv TokenVerifier, development bool) *GRPCServer {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		users:       us,
		secrets:     ss,
		tokens:      tv,
		development: development,
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(
		grpc.ConnectionTimeout(10*time.Second),
		grpc.ChainUnaryInterceptor(s.peerInterceptor, s.accessTokenInterceptor),
	)

	pb.RegisterVaultServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
