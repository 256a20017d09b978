package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"github.com/djitsotsu/authsvc/internal/dbx"
	"github.com/djitsotsu/authsvc/internal/logging"
	"github.com/djitsotsu/authsvc/internal/server/config"
	"github.com/djitsotsu/authsvc/internal/server/models"
	"github.com/djitsotsu/authsvc/internal/server/otp"
	"github.com/djitsotsu/authsvc/internal/server/repositories/sessions"
	"github.com/djitsotsu/authsvc/internal/server/repositories/users"
	"github.com/djitsotsu/authsvc/internal/shared"
)

// ---- test logger ----

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- fakes ----

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int
	byID   map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if user.Email.Valid && u.Email.Valid && u.Email.String == user.Email.String {
			return nil, shared.ErrorAlreadyExists
		}
		if user.Phone.Valid && u.Phone.Valid && u.Phone.String == user.Phone.String {
			return nil, shared.ErrorAlreadyExists
		}
	}
	r.nextID++
	cp := *user
	cp.ID = fmt.Sprintf("u%d", r.nextID)
	cp.CreatedAt = time.Now()
	r.byID[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[user.ID]; !ok {
		return nil, shared.ErrorNotFound
	}
	cp := *user
	r.byID[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[id]; ok {
		out := *u
		return &out, nil
	}
	return nil, shared.ErrorNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email.Valid && u.Email.String == email {
			out := *u
			return &out, nil
		}
	}
	return nil, shared.ErrorNotFound
}

func (r *fakeUserRepo) FindByEmailOrPhone(ctx context.Context, identifier string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email.Valid && u.Email.String == identifier {
			out := *u
			return &out, nil
		}
		if u.Phone.Valid && u.Phone.String == identifier {
			out := *u
			return &out, nil
		}
	}
	return nil, shared.ErrorNotFound
}

type fakeSessionRepo struct {
	mu      sync.Mutex
	nextID  int
	byToken map[string]*models.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byToken: map[string]*models.Session{}}
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *models.Session) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	cp := *session
	cp.ID = fmt.Sprintf("s%d", r.nextID)
	cp.CreatedAt = time.Now()
	r.byToken[cp.RefreshToken] = &cp
	out := cp
	return &out, nil
}

func (r *fakeSessionRepo) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.byToken[token]; ok {
		out := *s
		return &out, nil
	}
	return nil, shared.ErrorNotFound
}

func (r *fakeSessionRepo) DeleteByToken(ctx context.Context, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byToken[token]; !ok {
		return false, nil
	}
	delete(r.byToken, token)
	return true, nil
}

func (r *fakeSessionRepo) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for token, s := range r.byToken {
		if s.ID == id {
			delete(r.byToken, token)
			return nil
		}
	}
	return nil
}

func (r *fakeSessionRepo) DeleteAllForUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for token, s := range r.byToken {
		if s.UserID == userID {
			delete(r.byToken, token)
		}
	}
	return nil
}

func (r *fakeSessionRepo) countForUser(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.byToken {
		if s.UserID == userID {
			n++
		}
	}
	return n
}

type fakeRepoManager struct {
	users    *fakeUserRepo
	sessions *fakeSessionRepo
}

func (m *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository                  { return m.users }
func (m *fakeRepoManager) Sessions(db dbx.DBTX) sessions.Repository            { return m.sessions }

type fakeCodeStore struct {
	mu     sync.Mutex
	values map[string]string
}

func newFakeCodeStore() *fakeCodeStore {
	return &fakeCodeStore{values: map[string]string{}}
}

func (s *fakeCodeStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *fakeCodeStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.values[key]; ok {
		return v, nil
	}
	return "", shared.ErrorNotFound
}

func (s *fakeCodeStore) GetAndDelete(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.values[key]; ok {
		delete(s.values, key)
		return v, nil
	}
	return "", shared.ErrorNotFound
}

func (s *fakeCodeStore) DeleteIfValue(ctx context.Context, key, value string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.values[key]; ok && v == value {
		delete(s.values, key)
		return true, nil
	}
	return false, nil
}

func (s *fakeCodeStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

type fakeMailer struct {
	mu        sync.Mutex
	sendErr   error
	sent      int
	recipient string
	lastCode  string
}

func (m *fakeMailer) SendOtpCode(ctx context.Context, recipient, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent++
	m.recipient = recipient
	m.lastCode = code
	return nil
}

// ---- helpers ----

type fixture struct {
	svc      *AuthService
	users    *fakeUserRepo
	sessions *fakeSessionRepo
	codes    *fakeCodeStore
	mailer   *fakeMailer
	mock     sqlmock.Sqlmock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	f := &fixture{
		users:    newFakeUserRepo(),
		sessions: newFakeSessionRepo(),
		codes:    newFakeCodeStore(),
		mailer:   &fakeMailer{},
		mock:     mock,
	}

	cfg := &config.Config{
		SecretKey:                      "test-secret",
		AccessTokenValidityDuration:    15 * time.Minute,
		RefreshSessionValidityDuration: 168 * time.Hour,
	}
	f.svc = NewAuthService(db, &fakeRepoManager{users: f.users, sessions: f.sessions},
		f.codes, f.mailer, nopLogger{}, cfg)

	return f
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	return string(h)
}

// seedUser inserts a verified local account with the given password.
func seedUser(t *testing.T, f *fixture, email, password string) *models.User {
	t.Helper()
	u, err := f.users.Create(context.Background(), &models.User{
		Email:        sql.NullString{String: email, Valid: true},
		Nickname:     "seed",
		Tag:          "0000",
		PasswordHash: sql.NullString{String: mustHash(t, password), Valid: true},
		Role:         models.RoleUser,
		Provider:     models.ProviderLocal,
		IsVerified:   true,
	})
	if err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return u
}

// ---- SendOtp ----

func TestSendOtp_StoresAndMails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	msg, err := f.svc.SendOtp(ctx, "a@b.c")
	if err != nil {
		t.Fatalf("SendOtp error: %v", err)
	}
	if msg != "Code sent" {
		t.Fatalf("unexpected message: %q", msg)
	}

	stored, err := f.codes.Get(ctx, otp.LoginCodeKey("a@b.c"))
	if err != nil {
		t.Fatalf("code not stored: %v", err)
	}
	if f.mailer.lastCode != stored {
		t.Fatalf("mailed code %q differs from stored %q", f.mailer.lastCode, stored)
	}
	if f.mailer.recipient != "a@b.c" {
		t.Fatalf("unexpected recipient: %q", f.mailer.recipient)
	}
}

func TestSendOtp_DeliveryFailureKeepsCode(t *testing.T) {
	f := newFixture(t)
	f.mailer.sendErr = shared.ErrorDeliveryFailed
	ctx := context.Background()

	_, err := f.svc.SendOtp(ctx, "a@b.c")
	if !errors.Is(err, shared.ErrorDeliveryFailed) {
		t.Fatalf("want ErrorDeliveryFailed, got %v", err)
	}

	// the stored code stays valid; a later verify against it can still work
	if _, err := f.codes.Get(ctx, otp.LoginCodeKey("a@b.c")); err != nil {
		t.Fatalf("code should remain stored: %v", err)
	}
}

// ---- Register / VerifyOtpAndLogin (dual flow) ----

func TestRegister_ShortNickname(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Register(context.Background(), "a@b.c", "pw123456", "ab", "")
	if !errors.Is(err, shared.ErrorValidation) {
		t.Fatalf("want ErrorValidation, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	seedUser(t, f, "a@b.c", "pw123456")

	_, err := f.svc.Register(context.Background(), "a@b.c", "pw123456", "alice", "")
	if !errors.Is(err, shared.ErrorAlreadyExists) {
		t.Fatalf("want ErrorAlreadyExists, got %v", err)
	}
}

func TestRegister_NoUserRowUntilConfirmed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Register(ctx, "a@b.c", "pw123456", "alice", ""); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if _, err := f.users.FindByEmail(ctx, "a@b.c"); !errors.Is(err, shared.ErrorNotFound) {
		t.Fatal("user row must not exist before confirmation")
	}

	payload, err := f.codes.Get(ctx, otp.RegistrationKey("a@b.c"))
	if err != nil {
		t.Fatalf("pending registration not stored: %v", err)
	}
	pending, err := otp.DecodePendingRegistration(payload)
	if err != nil {
		t.Fatalf("pending payload not decodable: %v", err)
	}
	if pending.Nickname != "alice" || pending.Code != f.mailer.lastCode {
		t.Fatalf("unexpected pending payload: %+v", pending)
	}
	if pending.PasswordHash == "pw123456" {
		t.Fatal("password stored unhashed")
	}
}

func TestVerifyOtp_ConfirmsRegistration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Register(ctx, "a@b.c", "pw123456", "alice", "http://img"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	result, err := f.svc.VerifyOtpAndLogin(ctx, "a@b.c", f.mailer.lastCode, "1.2.3.4", "ua/1")
	if err != nil {
		t.Fatalf("VerifyOtpAndLogin error: %v", err)
	}

	user := result.User
	if !user.IsVerified {
		t.Fatal("confirmed account must be verified")
	}
	if user.Nickname != "alice" || len(user.Tag) != 4 {
		t.Fatalf("unexpected user: %+v", user)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Fatal("session not opened")
	}

	// pending payload consumed
	if _, err := f.codes.Get(ctx, otp.RegistrationKey("a@b.c")); !errors.Is(err, shared.ErrorNotFound) {
		t.Fatal("pending registration must be consumed")
	}

	if f.sessions.countForUser(user.ID) != 1 {
		t.Fatalf("expected 1 session, got %d", f.sessions.countForUser(user.ID))
	}
}

func TestVerifyOtp_WrongCodeKeepsPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Register(ctx, "a@b.c", "pw123456", "alice", ""); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err := f.svc.VerifyOtpAndLogin(ctx, "a@b.c", "000000", "1.2.3.4", "ua/1")
	if !errors.Is(err, shared.ErrorInvalidCode) {
		t.Fatalf("want ErrorInvalidCode, got %v", err)
	}

	// the pending registration survives a bad attempt; a retry with the
	// right code succeeds
	if _, err := f.svc.VerifyOtpAndLogin(ctx, "a@b.c", f.mailer.lastCode, "1.2.3.4", "ua/1"); err != nil {
		t.Fatalf("retry with correct code failed: %v", err)
	}
}

func TestVerifyOtp_RegistrationPendingWinsOverLoginCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// an account already exists with this address, and a login code is out
	seedUser(t, f, "a@b.c", "oldpw123")
	if _, err := f.svc.SendOtp(ctx, "a@b.c"); err != nil {
		t.Fatalf("SendOtp error: %v", err)
	}
	loginCode := f.mailer.lastCode

	// now a pending registration shows up at the same identifier
	pending := &otp.PendingRegistration{Nickname: "bob", PasswordHash: mustHash(t, "x"), Code: "654321"}
	payload, _ := pending.Encode()
	if err := f.codes.Set(ctx, otp.RegistrationKey("a@b.c"), payload, otp.RegistrationTTL); err != nil {
		t.Fatalf("seeding pending registration: %v", err)
	}

	// the login code is valid, but the pending registration takes precedence
	_, err := f.svc.VerifyOtpAndLogin(ctx, "a@b.c", loginCode, "1.2.3.4", "ua/1")
	if !errors.Is(err, shared.ErrorInvalidCode) {
		t.Fatalf("registration path should win and reject the login code, got %v", err)
	}
}

func TestVerifyOtp_LoginCodeSingleUse(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	seedUser(t, f, "a@b.c", "pw123456")
	if _, err := f.svc.SendOtp(ctx, "a@b.c"); err != nil {
		t.Fatalf("SendOtp error: %v", err)
	}
	code := f.mailer.lastCode

	if _, err := f.svc.VerifyOtpAndLogin(ctx, "a@b.c", code, "1.2.3.4", "ua/1"); err != nil {
		t.Fatalf("first verify failed: %v", err)
	}

	_, err := f.svc.VerifyOtpAndLogin(ctx, "a@b.c", code, "1.2.3.4", "ua/1")
	if !errors.Is(err, shared.ErrorInvalidOrExpiredCode) {
		t.Fatalf("code must be single-use, got %v", err)
	}
}

func TestVerifyOtp_UnknownUserOnLoginPath(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.SendOtp(ctx, "ghost@b.c"); err != nil {
		t.Fatalf("SendOtp error: %v", err)
	}

	_, err := f.svc.VerifyOtpAndLogin(ctx, "ghost@b.c", f.mailer.lastCode, "1.2.3.4", "ua/1")
	if !errors.Is(err, shared.ErrorUserNotFound) {
		t.Fatalf("want ErrorUserNotFound, got %v", err)
	}
}

func TestVerifyOtp_NoCodeAnywhere(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.VerifyOtpAndLogin(context.Background(), "a@b.c", "123456", "1.2.3.4", "ua/1")
	if !errors.Is(err, shared.ErrorInvalidOrExpiredCode) {
		t.Fatalf("want ErrorInvalidOrExpiredCode, got %v", err)
	}
}

// ---- Login ----

func TestLogin_OK(t *testing.T) {
	f := newFixture(t)
	seedUser(t, f, "a@b.c", "pw123456")

	result, err := f.svc.Login(context.Background(), "a@b.c", "pw123456", "1.2.3.4", "ua/1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Fatal("session not opened")
	}

	// the session is bound to the supplied fingerprint
	session, err := f.sessions.FindByToken(context.Background(), result.RefreshToken)
	if err != nil {
		t.Fatalf("session not stored: %v", err)
	}
	if session.IP != "1.2.3.4" || session.UserAgent != "ua/1" {
		t.Fatalf("fingerprint not bound: %+v", session)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newFixture(t)
	seedUser(t, f, "a@b.c", "pw123456")

	_, err := f.svc.Login(context.Background(), "a@b.c", "nope", "1.2.3.4", "ua/1")
	if !errors.Is(err, shared.ErrorInvalidCredentials) {
		t.Fatalf("want ErrorInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Login(context.Background(), "ghost@b.c", "pw", "1.2.3.4", "ua/1")
	if !errors.Is(err, shared.ErrorInvalidCredentials) {
		t.Fatalf("want ErrorInvalidCredentials, got %v", err)
	}
}

func TestLogin_SocialOnlyAccountHasNoPassword(t *testing.T) {
	f := newFixture(t)
	_, err := f.users.Create(context.Background(), &models.User{
		Email:      sql.NullString{String: "a@b.c", Valid: true},
		Nickname:   "alice",
		Tag:        "0000",
		Role:       models.RoleUser,
		Provider:   models.ProviderGoogle,
		IsVerified: true,
	})
	if err != nil {
		t.Fatalf("seeding user: %v", err)
	}

	_, err = f.svc.Login(context.Background(), "a@b.c", "anything", "1.2.3.4", "ua/1")
	if !errors.Is(err, shared.ErrorInvalidCredentials) {
		t.Fatalf("want ErrorInvalidCredentials, got %v", err)
	}
}

// ---- SocialLogin ----

func TestSocialLogin_CreatesVerifiedUser(t *testing.T) {
	f := newFixture(t)

	profile := SocialProfile{
		Email: "a@b.c", FirstName: "Alice", AvatarURL: "http://img",
		Provider: models.ProviderGoogle, ProviderID: "g-1",
	}
	result, err := f.svc.SocialLogin(context.Background(), profile, "1.2.3.4", "ua/1")
	if err != nil {
		t.Fatalf("SocialLogin error: %v", err)
	}

	user := result.User
	if !user.IsVerified || user.Provider != models.ProviderGoogle || user.Nickname != "Alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.PasswordHash.Valid {
		t.Fatal("social account must not carry a password hash")
	}
}

func TestSocialLogin_NicknameFallback(t *testing.T) {
	f := newFixture(t)

	profile := SocialProfile{Email: "a@b.c", Provider: models.ProviderGoogle, ProviderID: "g-1"}
	result, err := f.svc.SocialLogin(context.Background(), profile, "1.2.3.4", "ua/1")
	if err != nil {
		t.Fatalf("SocialLogin error: %v", err)
	}
	if !strings.HasPrefix(result.User.Nickname, "User_") {
		t.Fatalf("expected generated nickname, got %q", result.User.Nickname)
	}
}

func TestSocialLogin_IdempotentUpsert(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	profile := SocialProfile{Email: "a@b.c", FirstName: "Alice", Provider: models.ProviderGoogle, ProviderID: "g-1"}

	first, err := f.svc.SocialLogin(ctx, profile, "1.2.3.4", "ua/1")
	if err != nil {
		t.Fatalf("first SocialLogin error: %v", err)
	}
	second, err := f.svc.SocialLogin(ctx, profile, "1.2.3.4", "ua/1")
	if err != nil {
		t.Fatalf("second SocialLogin error: %v", err)
	}

	if first.User.ID != second.User.ID {
		t.Fatalf("upsert created a second account: %s vs %s", first.User.ID, second.User.ID)
	}
	if len(f.users.byID) != 1 {
		t.Fatalf("expected 1 user row, got %d", len(f.users.byID))
	}
}

func TestSocialLogin_ClaimsLocalAccountByEmail(t *testing.T) {
	f := newFixture(t)
	seeded := seedUser(t, f, "a@b.c", "pw123456")

	profile := SocialProfile{Email: "a@b.c", FirstName: "Alice", Provider: models.ProviderGoogle, ProviderID: "g-1"}
	result, err := f.svc.SocialLogin(context.Background(), profile, "1.2.3.4", "ua/1")
	if err != nil {
		t.Fatalf("SocialLogin error: %v", err)
	}
	if result.User.ID != seeded.ID {
		t.Fatal("social login with matching email must claim the existing account")
	}
	if result.User.Provider != models.ProviderGoogle {
		t.Fatalf("provider not updated: %q", result.User.Provider)
	}
}

// ---- ValidateToken ----

func TestValidateToken_RoundTrip(t *testing.T) {
	f := newFixture(t)
	seeded := seedUser(t, f, "a@b.c", "pw123456")

	result, err := f.svc.Login(context.Background(), "a@b.c", "pw123456", "1.2.3.4", "ua/1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	userID, role, err := f.svc.ValidateToken(context.Background(), result.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if userID != seeded.ID || role != models.RoleUser {
		t.Fatalf("unexpected claims: %s/%s", userID, role)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	f := newFixture(t)
	_, _, err := f.svc.ValidateToken(context.Background(), "not-a-token")
	if !errors.Is(err, shared.ErrorInvalidToken) {
		t.Fatalf("want ErrorInvalidToken, got %v", err)
	}
}

// ---- RefreshTokens ----

func TestRefreshTokens_RotatesUnconditionally(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedUser(t, f, "a@b.c", "pw123456")

	login, err := f.svc.Login(ctx, "a@b.c", "pw123456", "1.2.3.4", "ua/1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	refreshed, err := f.svc.RefreshTokens(ctx, login.RefreshToken, "1.2.3.4", "ua/1")
	if err != nil {
		t.Fatalf("RefreshTokens error: %v", err)
	}
	if refreshed.RefreshToken == login.RefreshToken {
		t.Fatal("refresh token was not rotated")
	}

	// the old token is dead
	if _, err := f.sessions.FindByToken(ctx, login.RefreshToken); !errors.Is(err, shared.ErrorNotFound) {
		t.Fatal("old session must be deleted after rotation")
	}
	if _, err := f.sessions.FindByToken(ctx, refreshed.RefreshToken); err != nil {
		t.Fatalf("new session missing: %v", err)
	}
}

func TestRefreshTokens_ReplayOfRotatedTokenFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedUser(t, f, "a@b.c", "pw123456")

	login, err := f.svc.Login(ctx, "a@b.c", "pw123456", "1.2.3.4", "ua/1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	if _, err := f.svc.RefreshTokens(ctx, login.RefreshToken, "1.2.3.4", "ua/1"); err != nil {
		t.Fatalf("RefreshTokens error: %v", err)
	}

	_, err = f.svc.RefreshTokens(ctx, login.RefreshToken, "1.2.3.4", "ua/1")
	if !errors.Is(err, shared.ErrorInvalidRefreshToken) {
		t.Fatalf("replay must fail with ErrorInvalidRefreshToken, got %v", err)
	}
}

func TestRefreshTokens_ForeignFingerprintRevokesAll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seeded := seedUser(t, f, "a@b.c", "pw123456")

	// two independent sessions
	if _, err := f.svc.Login(ctx, "a@b.c", "pw123456", "1.2.3.4", "ua/1"); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	stolen, err := f.svc.Login(ctx, "a@b.c", "pw123456", "1.2.3.4", "ua/1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	_, err = f.svc.RefreshTokens(ctx, stolen.RefreshToken, "6.6.6.6", "evil/1")
	if !errors.Is(err, shared.ErrorSecurityBreach) {
		t.Fatalf("want ErrorSecurityBreach, got %v", err)
	}

	if n := f.sessions.countForUser(seeded.ID); n != 0 {
		t.Fatalf("all sessions must be revoked on theft, %d left", n)
	}
}

func TestRefreshTokens_TheftCheckPrecedesExpiry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seeded := seedUser(t, f, "a@b.c", "pw123456")

	// an expired session presented from a foreign fingerprint must still be
	// reported as a breach, not softened into an expiry message
	_, err := f.sessions.Create(ctx, &models.Session{
		UserID:       seeded.ID,
		RefreshToken: "expired-stolen",
		IP:           "1.2.3.4",
		UserAgent:    "ua/1",
		ExpiresAt:    time.Now().Add(-time.Hour),
	})
	if err != nil {
		t.Fatalf("seeding session: %v", err)
	}

	_, err = f.svc.RefreshTokens(ctx, "expired-stolen", "6.6.6.6", "evil/1")
	if !errors.Is(err, shared.ErrorSecurityBreach) {
		t.Fatalf("want ErrorSecurityBreach, got %v", err)
	}
}

func TestRefreshTokens_Expired(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seeded := seedUser(t, f, "a@b.c", "pw123456")

	_, err := f.sessions.Create(ctx, &models.Session{
		UserID:       seeded.ID,
		RefreshToken: "expired-token",
		IP:           "1.2.3.4",
		UserAgent:    "ua/1",
		ExpiresAt:    time.Now().Add(-time.Minute),
	})
	if err != nil {
		t.Fatalf("seeding session: %v", err)
	}

	_, err = f.svc.RefreshTokens(ctx, "expired-token", "1.2.3.4", "ua/1")
	if !errors.Is(err, shared.ErrorSessionExpired) {
		t.Fatalf("want ErrorSessionExpired, got %v", err)
	}

	// the expired session is gone; a replay is indistinguishable from an
	// unknown token
	_, err = f.svc.RefreshTokens(ctx, "expired-token", "1.2.3.4", "ua/1")
	if !errors.Is(err, shared.ErrorInvalidRefreshToken) {
		t.Fatalf("want ErrorInvalidRefreshToken, got %v", err)
	}
}

func TestRefreshTokens_UnknownToken(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.RefreshTokens(context.Background(), "never-issued", "1.2.3.4", "ua/1")
	if !errors.Is(err, shared.ErrorInvalidRefreshToken) {
		t.Fatalf("want ErrorInvalidRefreshToken, got %v", err)
	}
}

// ---- Logout ----

func TestLogout_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedUser(t, f, "a@b.c", "pw123456")

	login, err := f.svc.Login(ctx, "a@b.c", "pw123456", "1.2.3.4", "ua/1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	if err := f.svc.Logout(ctx, login.RefreshToken); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
	// second logout with the same token, and one with a token that never
	// existed: both succeed
	if err := f.svc.Logout(ctx, login.RefreshToken); err != nil {
		t.Fatalf("second Logout error: %v", err)
	}
	if err := f.svc.Logout(ctx, "never-issued"); err != nil {
		t.Fatalf("unknown-token Logout error: %v", err)
	}

	// the session is actually gone
	_, err = f.svc.RefreshTokens(ctx, login.RefreshToken, "1.2.3.4", "ua/1")
	if !errors.Is(err, shared.ErrorInvalidRefreshToken) {
		t.Fatalf("refresh after logout must fail, got %v", err)
	}
}

// ---- ForgotPassword / ResetPassword ----

func TestForgotPassword_UnknownUser(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.ForgotPassword(context.Background(), "ghost@b.c")
	if !errors.Is(err, shared.ErrorUserNotFound) {
		t.Fatalf("want ErrorUserNotFound, got %v", err)
	}
	if f.mailer.sent != 0 {
		t.Fatal("no mail may be sent for unknown accounts")
	}
}

func TestForgotPassword_SendsCode(t *testing.T) {
	f := newFixture(t)
	seedUser(t, f, "a@b.c", "pw123456")

	msg, err := f.svc.ForgotPassword(context.Background(), "a@b.c")
	if err != nil {
		t.Fatalf("ForgotPassword error: %v", err)
	}
	if msg != "Code sent" || f.mailer.sent != 1 {
		t.Fatalf("unexpected outcome: msg=%q sent=%d", msg, f.mailer.sent)
	}
}

func TestResetPassword_FullFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seeded := seedUser(t, f, "a@b.c", "oldpw123")

	// an existing session that must not survive the reset
	prior, err := f.svc.Login(ctx, "a@b.c", "oldpw123", "1.2.3.4", "ua/1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	if _, err := f.svc.ForgotPassword(ctx, "a@b.c"); err != nil {
		t.Fatalf("ForgotPassword error: %v", err)
	}
	code := f.mailer.lastCode

	result, err := f.svc.ResetPassword(ctx, "a@b.c", code, "newpw123", "1.2.3.4", "ua/1")
	if err != nil {
		t.Fatalf("ResetPassword error: %v", err)
	}
	if result.User.ID != seeded.ID || !result.User.IsVerified {
		t.Fatalf("unexpected user: %+v", result.User)
	}

	// prior session revoked, exactly the fresh one remains
	if _, err := f.sessions.FindByToken(ctx, prior.RefreshToken); !errors.Is(err, shared.ErrorNotFound) {
		t.Fatal("prior session must be revoked")
	}
	if n := f.sessions.countForUser(seeded.ID); n != 1 {
		t.Fatalf("expected exactly the fresh session, got %d", n)
	}

	// old password dead, new one works
	if _, err := f.svc.Login(ctx, "a@b.c", "oldpw123", "1.2.3.4", "ua/1"); !errors.Is(err, shared.ErrorInvalidCredentials) {
		t.Fatal("old password must stop working")
	}
	if _, err := f.svc.Login(ctx, "a@b.c", "newpw123", "1.2.3.4", "ua/1"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}

	// the code is consumed
	if _, err := f.svc.ResetPassword(ctx, "a@b.c", code, "again123", "1.2.3.4", "ua/1"); !errors.Is(err, shared.ErrorInvalidOrExpiredCode) {
		t.Fatalf("reset code must be single-use, got %v", err)
	}
}

func TestResetPassword_WrongCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedUser(t, f, "a@b.c", "oldpw123")

	if _, err := f.svc.ForgotPassword(ctx, "a@b.c"); err != nil {
		t.Fatalf("ForgotPassword error: %v", err)
	}

	_, err := f.svc.ResetPassword(ctx, "a@b.c", "000000", "newpw123", "1.2.3.4", "ua/1")
	if !errors.Is(err, shared.ErrorInvalidCode) {
		t.Fatalf("want ErrorInvalidCode, got %v", err)
	}

	// a wrong attempt does not consume the stored code
	if _, err := f.svc.ResetPassword(ctx, "a@b.c", f.mailer.lastCode, "newpw123", "1.2.3.4", "ua/1"); err != nil {
		t.Fatalf("retry with correct code failed: %v", err)
	}
}

func TestResetPassword_NoCodeRequested(t *testing.T) {
	f := newFixture(t)
	seedUser(t, f, "a@b.c", "oldpw123")

	_, err := f.svc.ResetPassword(context.Background(), "a@b.c", "123456", "newpw123", "1.2.3.4", "ua/1")
	if !errors.Is(err, shared.ErrorInvalidOrExpiredCode) {
		t.Fatalf("want ErrorInvalidOrExpiredCode, got %v", err)
	}
}
