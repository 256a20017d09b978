// Package auth implements the token issuer: short-lived HS256 access tokens
// carrying the user id and role. Refresh tokens are opaque identifiers
// handled by the session store, never signed or decoded.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/djitsotsu/authsvc/internal/shared"
)

// Claims includes the registered claims plus the user id (subject) and the
// flat role string.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Role   string `json:"role"`
}

// GenerateToken signs an access token for the given user id and role.
func GenerateToken(userID, role string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
		Role:   role,
	})

	return token.SignedString(secretKey)
}

// ParseToken verifies signature and expiry and returns the embedded claims.
// Any verification failure (malformed, expired, wrong signature, wrong
// algorithm) is reported as shared.ErrorInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, shared.ErrorInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, shared.ErrorInvalidToken
	}

	if !token.Valid {
		return nil, shared.ErrorInvalidToken
	}

	return claims, nil
}
