// Package client wraps the generated gRPC client and keeps the token pair
// between calls.
package client

import (
	"context"
	"fmt"

	pb "github.com/djitsotsu/authsvc/internal/proto"
	"github.com/djitsotsu/authsvc/internal/shared"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type GRPCClient struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.AuthServiceClient
	accessToken  string
	refreshToken string
}

func NewAuthClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// HasSession reports whether a refresh token is currently held.
func (s *GRPCClient) HasSession() bool {
	return s.refreshToken != ""
}

// envelopeError converts a payload status/error pair into a sentinel the rest
// of the client can match with errors.Is. A 200 status means no error.
func envelopeError(st int32, name string) error {
	if st == 200 {
		return nil
	}
	switch name {
	case "InvalidInput":
		return shared.ErrorValidation
	case "InvalidCode":
		return shared.ErrorInvalidCode
	case "InvalidOrExpiredCode":
		return shared.ErrorInvalidOrExpiredCode
	case "InvalidCredentials":
		return shared.ErrorInvalidCredentials
	case "InvalidToken":
		return shared.ErrorInvalidToken
	case "InvalidRefreshToken":
		return shared.ErrorInvalidRefreshToken
	case "SessionExpired":
		return shared.ErrorSessionExpired
	case "SecurityBreach":
		return shared.ErrorSecurityBreach
	case "UserNotFound":
		return shared.ErrorUserNotFound
	case "AlreadyExists":
		return shared.ErrorAlreadyExists
	case "DeliveryError":
		return shared.ErrorDeliveryFailed
	}
	return fmt.Errorf("server error %d: %s", st, name)
}

func (s *GRPCClient) storeTokens(access, refresh string) {
	s.accessToken = access
	s.refreshToken = refresh
}

func (s *GRPCClient) Register(ctx context.Context, email, password, nickname, avatarURL string) (string, error) {

	req := &pb.RegisterRequest{Email: email, Password: password, Nickname: nickname, AvatarUrl: avatarURL}

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return "", err
	}
	if err := envelopeError(resp.Status, resp.Error); err != nil {
		return "", err
	}

	return resp.Message, nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*pb.User, error) {

	req := &pb.LoginRequest{Email: email, Password: password}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := envelopeError(resp.Status, resp.Error); err != nil {
		return nil, err
	}

	s.storeTokens(resp.AccessToken, resp.RefreshToken)
	return resp.User, nil
}

func (s *GRPCClient) SendOtp(ctx context.Context, identifier string) (string, error) {

	resp, err := s.client.SendOtp(ctx, &pb.SendOtpRequest{Identifier: identifier})
	if err != nil {
		return "", err
	}
	if err := envelopeError(resp.Status, resp.Error); err != nil {
		return "", err
	}

	return resp.Message, nil
}

func (s *GRPCClient) VerifyOtp(ctx context.Context, identifier, code string) (*pb.User, error) {

	resp, err := s.client.VerifyOtp(ctx, &pb.VerifyOtpRequest{Identifier: identifier, Code: code})
	if err != nil {
		return nil, err
	}
	if err := envelopeError(resp.Status, resp.Error); err != nil {
		return nil, err
	}

	s.storeTokens(resp.AccessToken, resp.RefreshToken)
	return resp.User, nil
}

func (s *GRPCClient) ValidateToken(ctx context.Context) (string, string, error) {

	resp, err := s.client.ValidateToken(ctx, &pb.ValidateTokenRequest{AccessToken: s.accessToken})
	if err != nil {
		return "", "", err
	}
	if err := envelopeError(resp.Status, resp.Error); err != nil {
		return "", "", err
	}

	return resp.UserId, resp.Role, nil
}

func (s *GRPCClient) Refresh(ctx context.Context) error {

	resp, err := s.client.Refresh(ctx, &pb.RefreshRequest{RefreshToken: s.refreshToken})
	if err != nil {
		return err
	}
	if err := envelopeError(resp.Status, resp.Error); err != nil {
		return err
	}

	s.storeTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

func (s *GRPCClient) Logout(ctx context.Context) error {

	resp, err := s.client.Logout(ctx, &pb.LogoutRequest{RefreshToken: s.refreshToken})
	if err != nil {
		return err
	}
	if err := envelopeError(resp.Status, resp.Error); err != nil {
		return err
	}

	s.storeTokens("", "")
	return nil
}

func (s *GRPCClient) ForgotPassword(ctx context.Context, email string) (string, error) {

	resp, err := s.client.ForgotPassword(ctx, &pb.ForgotPasswordRequest{Email: email})
	if err != nil {
		return "", err
	}
	if err := envelopeError(resp.Status, resp.Error); err != nil {
		return "", err
	}

	return resp.Message, nil
}

func (s *GRPCClient) ResetPassword(ctx context.Context, email, code, newPassword string) (*pb.User, error) {

	resp, err := s.client.ResetPassword(ctx, &pb.ResetPasswordRequest{Email: email, Code: code, NewPassword: newPassword})
	if err != nil {
		return nil, err
	}
	if err := envelopeError(resp.Status, resp.Error); err != nil {
		return nil, err
	}

	s.storeTokens(resp.AccessToken, resp.RefreshToken)
	return resp.User, nil
}
