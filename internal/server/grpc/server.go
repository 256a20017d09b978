package grpc

import (
	"context"
	"net"

	"github.com/djitsotsu/authsvc/internal/logging"
	pb "github.com/djitsotsu/authsvc/internal/proto"
	"github.com/djitsotsu/authsvc/internal/server/services"
	"google.golang.org/grpc"
)

// authSvc is the service surface the handlers call. It is satisfied by
// *services.AuthService and by fakes in tests.
type authSvc interface {
	SendOtp(ctx context.Context, identifier string) (string, error)
	Register(ctx context.Context, email, password, nickname, avatarURL string) (string, error)
	VerifyOtpAndLogin(ctx context.Context, identifier, code, ip, userAgent string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password, ip, userAgent string) (*services.AuthResult, error)
	SocialLogin(ctx context.Context, profile services.SocialProfile, ip, userAgent string) (*services.AuthResult, error)
	ValidateToken(ctx context.Context, accessToken string) (string, string, error)
	RefreshTokens(ctx context.Context, refreshToken, ip, userAgent string) (*services.AuthResult, error)
	Logout(ctx context.Context, refreshToken string) error
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, email, code, newPassword, ip, userAgent string) (*services.AuthResult, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	address string
	auth    authSvc
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, as authSvc) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		auth:    as,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.fingerprintInterceptor))

	// registers service
	pb.RegisterAuthServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
