package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/client/client"
	"github.com/dmitrijs2005/gophvault/internal/client/config"
	pb "github.com/dmitrijs2005/gophvault/internal/proto"
)

// VaultClient is the part of client.GRPCClient the CLI drives.
type VaultClient interface {
	Ping(ctx context.Context) error
	Register(ctx context.Context, userName, password string) error
	Login(ctx context.Context, userName, password string) (time.Time, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
	Profile(ctx context.Context) (*pb.GetProfileResponse, error)
	CreateSecret(ctx context.Context, req *pb.CreateSecretRequest) (string, error)
	ListSecrets(ctx context.Context, category, search string) ([]*pb.SecretSummary, error)
	GetSecret(ctx context.Context, id string) (*pb.Secret, error)
	UpdateSecret(ctx context.Context, req *pb.UpdateSecretRequest) error
	DeleteSecret(ctx context.Context, id string) error
	Logout()
	LoggedIn() bool
	UserName() string
	Close() error
}

type App struct {
	config *config.Config
	client VaultClient
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	a := newApp(apiClient, os.Stdin, os.Stdout)
	a.config = c
	return a, nil
}

func newApp(vc VaultClient, in io.Reader, out io.Writer) *App {
	return &App{client: vc, reader: bufio.NewReader(in), out: out}
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	fmt.Fprintln(a.out, "Welcome to gophvault CLI (type 'help' for commands)")
	if err := a.client.Ping(ctx); err != nil {
		a.printErr(err)
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.client.LoggedIn()
}

func (a *App) getStatus() string {
	if name := a.client.UserName(); name != "" && a.client.LoggedIn() {
		return "(" + name + ")"
	}
	return ""
}

func (a *App) printErr(err error) {
	fmt.Fprintf(a.out, "error: %v\n", err)
}
