package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/djitsotsu/authsvc/internal/shared"
)

var testSecret = []byte("test-secret")

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("u1", "user", testSecret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.UserID != "u1" {
		t.Errorf("expected user id u1, got %q", claims.UserID)
	}
	if claims.Role != "user" {
		t.Errorf("expected role user, got %q", claims.Role)
	}
	if claims.Subject != "u1" {
		t.Errorf("expected subject u1, got %q", claims.Subject)
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("u1", "user", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := ParseToken(token, testSecret); !errors.Is(err, shared.ErrorInvalidToken) {
		t.Fatalf("expected ErrorInvalidToken for expired token, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("u1", "user", testSecret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := ParseToken(token, []byte("other-secret")); !errors.Is(err, shared.ErrorInvalidToken) {
		t.Fatalf("expected ErrorInvalidToken for wrong secret, got %v", err)
	}
}

func TestParseToken_Malformed(t *testing.T) {
	if _, err := ParseToken("not-a-token", testSecret); !errors.Is(err, shared.ErrorInvalidToken) {
		t.Fatalf("expected ErrorInvalidToken for malformed token, got %v", err)
	}
}

func TestParseToken_WrongAlgorithm(t *testing.T) {
	// "none" algorithm must never verify.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "u1"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	if _, err := ParseToken(signed, testSecret); !errors.Is(err, shared.ErrorInvalidToken) {
		t.Fatalf("expected ErrorInvalidToken for alg=none token, got %v", err)
	}
}
