// Package cli implements the interactive console for the auth service. It is
// a thin exercise surface over the gRPC API: registration, OTP flows, login,
// token refresh and password recovery.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/djitsotsu/authsvc/internal/client/client"
	"github.com/djitsotsu/authsvc/internal/client/config"
	pb "github.com/djitsotsu/authsvc/internal/proto"
)

// apiClient is the server surface the CLI commands call. Satisfied by
// *client.GRPCClient and by fakes in tests.
type apiClient interface {
	Register(ctx context.Context, email, password, nickname, avatarURL string) (string, error)
	Login(ctx context.Context, email, password string) (*pb.User, error)
	SendOtp(ctx context.Context, identifier string) (string, error)
	VerifyOtp(ctx context.Context, identifier, code string) (*pb.User, error)
	ValidateToken(ctx context.Context) (string, string, error)
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, email, code, newPassword string) (*pb.User, error)
	HasSession() bool
	Close() error
}

type App struct {
	config *config.Config
	api    apiClient
	reader *bufio.Reader

	userName string
}

func NewApp(c *config.Config) (*App, error) {

	grpcClient, err := client.NewAuthClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{
		config: c,
		api:    grpcClient,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.api.HasSession()
}

func (a *App) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()
	a.Root(ctx)
}
