package grpc

import (
	"context"
	"errors"

	pb "github.com/djitsotsu/authsvc/internal/proto"
	"github.com/djitsotsu/authsvc/internal/server/models"
	"github.com/djitsotsu/authsvc/internal/server/services"
	"github.com/djitsotsu/authsvc/internal/shared"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const statusOK = 200

// classify maps a service error to the payload envelope. A zero status means
// the error is not a business outcome and must surface as a transport fault.
func classify(err error) (int32, string) {
	switch {
	case errors.Is(err, shared.ErrorValidation):
		return 400, "InvalidInput"
	case errors.Is(err, shared.ErrorInvalidCode):
		return 400, "InvalidCode"
	case errors.Is(err, shared.ErrorInvalidOrExpiredCode):
		return 400, "InvalidOrExpiredCode"
	case errors.Is(err, shared.ErrorInvalidCredentials):
		return 401, "InvalidCredentials"
	case errors.Is(err, shared.ErrorInvalidToken):
		return 401, "InvalidToken"
	case errors.Is(err, shared.ErrorInvalidRefreshToken):
		return 401, "InvalidRefreshToken"
	case errors.Is(err, shared.ErrorSessionExpired):
		return 401, "SessionExpired"
	case errors.Is(err, shared.ErrorSecurityBreach):
		return 403, "SecurityBreach"
	case errors.Is(err, shared.ErrorUserNotFound):
		return 404, "UserNotFound"
	case errors.Is(err, shared.ErrorAlreadyExists):
		return 409, "AlreadyExists"
	case errors.Is(err, shared.ErrorDeliveryFailed):
		return 502, "DeliveryError"
	}
	return 0, ""
}

func userToProto(u *models.User) *pb.User {
	if u == nil {
		return nil
	}
	return &pb.User{
		Id:         u.ID,
		Email:      u.Email.String,
		Phone:      u.Phone.String,
		Nickname:   u.Nickname,
		Tag:        u.Tag,
		AvatarUrl:  u.AvatarURL.String,
		Role:       u.Role,
		Provider:   u.Provider,
		IsVerified: u.IsVerified,
	}
}

// authResponse builds the envelope for session-opening operations. Business
// failures become a non-200 payload; anything unclassified is an internal
// fault.
func (s *GRPCServer) authResponse(ctx context.Context, result *services.AuthResult, err error) (*pb.AuthResponse, error) {
	if err != nil {
		st, name := classify(err)
		if st == 0 {
			s.logger.Error(ctx, err.Error())
			return nil, status.Error(codes.Internal, "internal error")
		}
		return &pb.AuthResponse{Status: st, Error: name}, nil
	}
	return &pb.AuthResponse{
		Status:       statusOK,
		User:         userToProto(result.User),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	}, nil
}

func (s *GRPCServer) statusResponse(ctx context.Context, message string, err error) (*pb.StatusResponse, error) {
	if err != nil {
		st, name := classify(err)
		if st == 0 {
			s.logger.Error(ctx, err.Error())
			return nil, status.Error(codes.Internal, "internal error")
		}
		return &pb.StatusResponse{Status: st, Error: name}, nil
	}
	return &pb.StatusResponse{Status: statusOK, Message: message}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.StatusResponse, error) {

	s.logger.Info(ctx, "Registration request")

	message, err := s.auth.Register(ctx, req.Email, req.Password, req.Nickname, req.AvatarUrl)

	return s.statusResponse(ctx, message, err)
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {

	ip, userAgent := fingerprint(ctx, req.Ip, req.UserAgent)

	result, err := s.auth.Login(ctx, req.Email, req.Password, ip, userAgent)

	return s.authResponse(ctx, result, err)
}

func (s *GRPCServer) SocialLogin(ctx context.Context, req *pb.SocialLoginRequest) (*pb.AuthResponse, error) {

	ip, userAgent := fingerprint(ctx, req.Ip, req.UserAgent)

	profile := services.SocialProfile{
		Email:      req.Email,
		FirstName:  req.FirstName,
		AvatarURL:  req.AvatarUrl,
		Provider:   req.Provider,
		ProviderID: req.ProviderId,
	}

	result, err := s.auth.SocialLogin(ctx, profile, ip, userAgent)

	return s.authResponse(ctx, result, err)
}

func (s *GRPCServer) SendOtp(ctx context.Context, req *pb.SendOtpRequest) (*pb.StatusResponse, error) {

	message, err := s.auth.SendOtp(ctx, req.Identifier)

	return s.statusResponse(ctx, message, err)
}

func (s *GRPCServer) VerifyOtp(ctx context.Context, req *pb.VerifyOtpRequest) (*pb.AuthResponse, error) {

	ip, userAgent := fingerprint(ctx, req.Ip, req.UserAgent)

	result, err := s.auth.VerifyOtpAndLogin(ctx, req.Identifier, req.Code, ip, userAgent)

	return s.authResponse(ctx, result, err)
}

func (s *GRPCServer) ValidateToken(ctx context.Context, req *pb.ValidateTokenRequest) (*pb.ValidateTokenResponse, error) {

	userID, role, err := s.auth.ValidateToken(ctx, req.AccessToken)

	if err != nil {
		st, name := classify(err)
		if st == 0 {
			s.logger.Error(ctx, err.Error())
			return nil, status.Error(codes.Internal, "internal error")
		}
		return &pb.ValidateTokenResponse{Status: st, Error: name}, nil
	}

	return &pb.ValidateTokenResponse{Status: statusOK, UserId: userID, Role: role}, nil
}

func (s *GRPCServer) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.AuthResponse, error) {

	ip, userAgent := fingerprint(ctx, req.Ip, req.UserAgent)

	result, err := s.auth.RefreshTokens(ctx, req.RefreshToken, ip, userAgent)

	return s.authResponse(ctx, result, err)
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.StatusResponse, error) {

	err := s.auth.Logout(ctx, req.RefreshToken)

	return s.statusResponse(ctx, "Logged out", err)
}

func (s *GRPCServer) ForgotPassword(ctx context.Context, req *pb.ForgotPasswordRequest) (*pb.StatusResponse, error) {

	message, err := s.auth.ForgotPassword(ctx, req.Email)

	return s.statusResponse(ctx, message, err)
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *pb.ResetPasswordRequest) (*pb.AuthResponse, error) {

	ip, userAgent := fingerprint(ctx, req.Ip, req.UserAgent)

	result, err := s.auth.ResetPassword(ctx, req.Email, req.Code, req.NewPassword, ip, userAgent)

	return s.authResponse(ctx, result, err)
}
