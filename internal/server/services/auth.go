// Package services contains server-side business logic. This file implements
// AuthService, the session manager: registration, password and OTP login,
// social login, refresh-token rotation with theft detection, logout, and
// password reset.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/djitsotsu/authsvc/internal/dbx"
	"github.com/djitsotsu/authsvc/internal/logging"
	"github.com/djitsotsu/authsvc/internal/server/auth"
	"github.com/djitsotsu/authsvc/internal/server/config"
	"github.com/djitsotsu/authsvc/internal/server/mail"
	"github.com/djitsotsu/authsvc/internal/server/models"
	"github.com/djitsotsu/authsvc/internal/server/otp"
	"github.com/djitsotsu/authsvc/internal/server/repositories/repomanager"
	"github.com/djitsotsu/authsvc/internal/shared"
)

const minNicknameLength = 3

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthResult is returned by operations that open a session and also resolve
// the user record.
type AuthResult struct {
	User *models.User
	TokenPair
}

// SocialProfile is the identity payload received from an OAuth provider.
type SocialProfile struct {
	Email      string
	FirstName  string
	AvatarURL  string
	Provider   string
	ProviderID string
}

// AuthService orchestrates the credential store, the session store, the
// ephemeral code store, the token issuer and the mail collaborator. It holds
// no mutable state between calls; the store operations are the only
// synchronization primitives.
type AuthService struct {
	db                     *sql.DB
	repomanager            repomanager.RepositoryManager
	codes                  otp.Store
	mailer                 mail.Mailer
	logger                 logging.Logger
	jwtSecret              []byte
	accessTokenValidity    time.Duration
	refreshSessionValidity time.Duration
}

// NewAuthService constructs an AuthService using repositories, the code
// store, the mailer and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, codes otp.Store,
	mailer mail.Mailer, logger logging.Logger, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                     db,
		repomanager:            m,
		codes:                  codes,
		mailer:                 mailer,
		logger:                 logger.With("module", "auth_service"),
		jwtSecret:              []byte(cfg.SecretKey),
		accessTokenValidity:    cfg.AccessTokenValidityDuration,
		refreshSessionValidity: cfg.RefreshSessionValidityDuration,
	}
}

// SendOtp generates a six-digit code, stores it under the login-code key and
// attempts delivery. A delivery failure is returned to the caller, but the
// stored code stays valid: a retried send simply overwrites it.
func (s *AuthService) SendOtp(ctx context.Context, identifier string) (string, error) {
	code, err := shared.MakeOtpCode()
	if err != nil {
		return "", shared.ErrorInternal
	}

	if err := s.codes.Set(ctx, otp.LoginCodeKey(identifier), code, otp.LoginCodeTTL); err != nil {
		return "", fmt.Errorf("storing login code: %w", err)
	}

	s.logger.Debug(ctx, "login code generated", "identifier", identifier, "code", code)

	if err := s.mailer.SendOtpCode(ctx, identifier, code); err != nil {
		return "", err
	}

	return "Code sent", nil
}

// Register validates the input, hashes the password and stores a pending
// registration. No user row is created until the code is confirmed through
// VerifyOtpAndLogin.
func (s *AuthService) Register(ctx context.Context, email, password, nickname, avatarURL string) (string, error) {
	if len(nickname) < minNicknameLength {
		return "", shared.ErrorValidation
	}

	_, err := s.repomanager.Users(s.db).FindByEmail(ctx, email)
	if err == nil {
		return "", shared.ErrorAlreadyExists
	}
	if !errors.Is(err, shared.ErrorNotFound) {
		return "", fmt.Errorf("looking up email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", shared.ErrorInternal
	}

	code, err := shared.MakeOtpCode()
	if err != nil {
		return "", shared.ErrorInternal
	}

	pending := &otp.PendingRegistration{
		Nickname:     nickname,
		PasswordHash: string(hash),
		AvatarURL:    avatarURL,
		Code:         code,
	}
	payload, err := pending.Encode()
	if err != nil {
		return "", shared.ErrorInternal
	}

	if err := s.codes.Set(ctx, otp.RegistrationKey(email), payload, otp.RegistrationTTL); err != nil {
		return "", fmt.Errorf("storing pending registration: %w", err)
	}

	s.logger.Debug(ctx, "registration code generated", "email", email, "code", code)

	if err := s.mailer.SendOtpCode(ctx, email, code); err != nil {
		return "", err
	}

	return "Confirmation code sent", nil
}

// VerifyOtpAndLogin confirms a one-time code and opens a session. A pending
// registration at the identifier takes precedence over the login-code path:
// a user who registers and then requests an OTP before confirming sees the
// registration flow win.
func (s *AuthService) VerifyOtpAndLogin(ctx context.Context, identifier, code, ip, userAgent string) (*AuthResult, error) {

	payload, err := s.codes.Get(ctx, otp.RegistrationKey(identifier))
	switch {
	case err == nil:
		return s.confirmRegistration(ctx, identifier, code, payload, ip, userAgent)
	case errors.Is(err, shared.ErrorNotFound):
		// no pending registration, fall through to the login-code path
	default:
		return nil, fmt.Errorf("reading pending registration: %w", err)
	}

	key := otp.LoginCodeKey(identifier)
	stored, err := s.codes.Get(ctx, key)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return nil, shared.ErrorInvalidOrExpiredCode
		}
		return nil, fmt.Errorf("reading login code: %w", err)
	}
	if stored != code {
		return nil, shared.ErrorInvalidOrExpiredCode
	}

	// Atomic consume: of two racing verifications only one sees deleted=true.
	deleted, err := s.codes.DeleteIfValue(ctx, key, stored)
	if err != nil {
		return nil, fmt.Errorf("consuming login code: %w", err)
	}
	if !deleted {
		return nil, shared.ErrorInvalidOrExpiredCode
	}

	user, err := s.repomanager.Users(s.db).FindByEmailOrPhone(ctx, identifier)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return nil, shared.ErrorUserNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	pair, err := s.openSession(ctx, s.db, user, ip, userAgent)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, TokenPair: *pair}, nil
}

// confirmRegistration finishes the dual-flow registration: the code inside
// the pending payload must match, the payload is consumed atomically, and
// only then is the user row created (verified from the start).
func (s *AuthService) confirmRegistration(ctx context.Context, email, code, payload, ip, userAgent string) (*AuthResult, error) {
	pending, err := otp.DecodePendingRegistration(payload)
	if err != nil {
		return nil, shared.ErrorInternal
	}

	// A mismatch keeps the pending registration so the user can retry
	// until the TTL runs out.
	if pending.Code != code {
		return nil, shared.ErrorInvalidCode
	}

	deleted, err := s.codes.DeleteIfValue(ctx, otp.RegistrationKey(email), payload)
	if err != nil {
		return nil, fmt.Errorf("consuming pending registration: %w", err)
	}
	if !deleted {
		return nil, shared.ErrorInvalidOrExpiredCode
	}

	tag, err := shared.MakeTag()
	if err != nil {
		return nil, shared.ErrorInternal
	}

	user := &models.User{
		Email:        sql.NullString{String: email, Valid: true},
		Nickname:     pending.Nickname,
		Tag:          tag,
		PasswordHash: sql.NullString{String: pending.PasswordHash, Valid: true},
		AvatarURL:    sql.NullString{String: pending.AvatarURL, Valid: pending.AvatarURL != ""},
		Role:         models.RoleUser,
		Provider:     models.ProviderLocal,
		IsVerified:   true,
	}

	user, err = s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, shared.ErrorAlreadyExists) {
			return nil, shared.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info(ctx, "registration confirmed", "user_id", user.ID)

	pair, err := s.openSession(ctx, s.db, user, ip, userAgent)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, TokenPair: *pair}, nil
}

// Login verifies email/password credentials. The caller supplies the client
// fingerprint; the service never fabricates one.
func (s *AuthService) Login(ctx context.Context, email, password, ip, userAgent string) (*AuthResult, error) {
	user, err := s.repomanager.Users(s.db).FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return nil, shared.ErrorInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	// pure-social accounts have no password hash
	if !user.PasswordHash.Valid {
		return nil, shared.ErrorInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash.String), []byte(password)) != nil {
		return nil, shared.ErrorInvalidCredentials
	}

	pair, err := s.openSession(ctx, s.db, user, ip, userAgent)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, TokenPair: *pair}, nil
}

// SocialLogin upserts a user by email. The email is the join key regardless
// of the original provider, so a local account can be claimed by a social
// login with the same address. That is an accepted trust decision, not an
// accident.
func (s *AuthService) SocialLogin(ctx context.Context, profile SocialProfile, ip, userAgent string) (*AuthResult, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.FindByEmail(ctx, profile.Email)
	switch {
	case errors.Is(err, shared.ErrorNotFound):
		nickname := profile.FirstName
		if nickname == "" {
			suffix, tagErr := shared.MakeTag()
			if tagErr != nil {
				return nil, shared.ErrorInternal
			}
			nickname = "User_" + suffix
		}
		tag, tagErr := shared.MakeTag()
		if tagErr != nil {
			return nil, shared.ErrorInternal
		}

		user = &models.User{
			Email:      sql.NullString{String: profile.Email, Valid: true},
			Nickname:   nickname,
			Tag:        tag,
			AvatarURL:  sql.NullString{String: profile.AvatarURL, Valid: profile.AvatarURL != ""},
			Role:       models.RoleUser,
			Provider:   profile.Provider,
			ProviderID: sql.NullString{String: profile.ProviderID, Valid: profile.ProviderID != ""},
			IsVerified: true,
		}
		user, err = repo.Create(ctx, user)
		if err != nil {
			return nil, fmt.Errorf("creating user: %w", err)
		}
		s.logger.Info(ctx, "social account created", "user_id", user.ID, "provider", profile.Provider)

	case err == nil:
		user.AvatarURL = sql.NullString{String: profile.AvatarURL, Valid: profile.AvatarURL != ""}
		user.Provider = profile.Provider
		user.ProviderID = sql.NullString{String: profile.ProviderID, Valid: profile.ProviderID != ""}
		user, err = repo.Update(ctx, user)
		if err != nil {
			return nil, fmt.Errorf("updating user: %w", err)
		}

	default:
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	pair, err := s.openSession(ctx, s.db, user, ip, userAgent)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, TokenPair: *pair}, nil
}

// ValidateToken verifies an access token's signature and expiry and returns
// the embedded user id and role.
func (s *AuthService) ValidateToken(ctx context.Context, accessToken string) (userID, role string, err error) {
	claims, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		return "", "", shared.ErrorInvalidToken
	}
	return claims.UserID, claims.Role, nil
}

// RefreshTokens rotates a refresh-token session. The fingerprint check runs
// first: a mismatch is treated as token theft, revokes every session of the
// user and must not be masked by an expiry message. Then expiry, then
// rotation. The presented token is dead after any outcome.
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken, ip, userAgent string) (*AuthResult, error) {
	sessionRepo := s.repomanager.Sessions(s.db)

	session, err := sessionRepo.FindByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return nil, shared.ErrorInvalidRefreshToken
		}
		return nil, fmt.Errorf("looking up session: %w", err)
	}

	if !session.MatchesFingerprint(ip, userAgent) {
		s.logger.Warn(ctx, "refresh token presented from foreign fingerprint, revoking all sessions",
			"user_id", session.UserID)
		if err := sessionRepo.DeleteAllForUser(ctx, session.UserID); err != nil {
			return nil, fmt.Errorf("revoking sessions: %w", err)
		}
		return nil, shared.ErrorSecurityBreach
	}

	if session.Expired(time.Now()) {
		if err := sessionRepo.DeleteByID(ctx, session.ID); err != nil {
			return nil, fmt.Errorf("deleting expired session: %w", err)
		}
		return nil, shared.ErrorSessionExpired
	}

	user, err := s.repomanager.Users(s.db).FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return nil, shared.ErrorUserNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		deleted, err := s.repomanager.Sessions(tx).DeleteByToken(ctx, refreshToken)
		if err != nil {
			return fmt.Errorf("rotating session: %w", err)
		}
		// a concurrent refresh already rotated this token; the loser fails
		if !deleted {
			return shared.ErrorInvalidRefreshToken
		}
		pair, err = s.openSession(ctx, tx, user, ip, userAgent)
		return err
	}); err != nil {
		return nil, err
	}

	return &AuthResult{User: user, TokenPair: *pair}, nil
}

// Logout deletes the session if present. Logging out twice, or with an
// unknown token, is not an error.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.repomanager.Sessions(s.db).DeleteByToken(ctx, refreshToken); err != nil {
		s.logger.Warn(ctx, "logout session delete failed", "error", err.Error())
	}
	return nil
}

// ForgotPassword checks that the account exists and delegates to SendOtp.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	_, err := s.repomanager.Users(s.db).FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return "", shared.ErrorUserNotFound
		}
		return "", fmt.Errorf("looking up user: %w", err)
	}
	return s.SendOtp(ctx, email)
}

// ResetPassword validates a login-style code, persists the new password
// hash, marks the account verified, revokes every existing session of the
// user, consumes the code and opens one fresh session.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword, ip, userAgent string) (*AuthResult, error) {
	key := otp.LoginCodeKey(email)
	stored, err := s.codes.Get(ctx, key)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return nil, shared.ErrorInvalidOrExpiredCode
		}
		return nil, fmt.Errorf("reading reset code: %w", err)
	}
	if stored != code {
		return nil, shared.ErrorInvalidCode
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return nil, shared.ErrorUserNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, shared.ErrorInternal
	}

	user.PasswordHash = sql.NullString{String: string(hash), Valid: true}
	user.IsVerified = true
	user, err = repo.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	// prior refresh tokens must not survive a password reset
	if err := s.repomanager.Sessions(s.db).DeleteAllForUser(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("revoking sessions: %w", err)
	}

	if _, err := s.codes.DeleteIfValue(ctx, key, stored); err != nil {
		return nil, fmt.Errorf("consuming reset code: %w", err)
	}

	s.logger.Info(ctx, "password reset completed", "user_id", user.ID)

	pair, err := s.openSession(ctx, s.db, user, ip, userAgent)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, TokenPair: *pair}, nil
}

// --- helpers below ---

// openSession mints a fresh opaque refresh token, persists the session bound
// to the presented fingerprint, and signs an access token.
func (s *AuthService) openSession(ctx context.Context, db dbx.DBTX, user *models.User, ip, userAgent string) (*TokenPair, error) {
	refreshToken := uuid.NewString()

	session := &models.Session{
		UserID:       user.ID,
		RefreshToken: refreshToken,
		IP:           ip,
		UserAgent:    userAgent,
		ExpiresAt:    time.Now().Add(s.refreshSessionValidity),
	}
	if _, err := s.repomanager.Sessions(db).Create(ctx, session); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	accessToken, err := auth.GenerateToken(user.ID, user.Role, s.jwtSecret, s.accessTokenValidity)
	if err != nil {
		return nil, shared.ErrorInternal
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
