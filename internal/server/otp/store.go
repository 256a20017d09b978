// Package otp implements the ephemeral code store: a TTL-bounded key→value
// cache holding one-time login codes and pending registrations. Keys are
// namespaced by purpose so the two flows stay independent even though they
// share one backend:
//
//	otp:<identifier>  six-digit login code, 5 minute TTL
//	reg:<email>       pending registration payload (JSON), 10 minute TTL
package otp

import (
	"context"
	"encoding/json"
	"time"
)

// TTLs for the two entry kinds.
const (
	LoginCodeTTL    = 5 * time.Minute
	RegistrationTTL = 10 * time.Minute
)

// LoginCodeKey returns the store key for a login code sent to the given
// identifier (email or phone).
func LoginCodeKey(identifier string) string {
	return "otp:" + identifier
}

// RegistrationKey returns the store key for a pending registration.
func RegistrationKey(email string) string {
	return "reg:" + email
}

// Store is the ephemeral code store contract. Get returns
// shared.ErrorNotFound for absent or expired keys.
type Store interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)

	// GetAndDelete atomically fetches and removes a value, so two
	// concurrent consumers cannot both observe the same code.
	GetAndDelete(ctx context.Context, key string) (string, error)

	// DeleteIfValue removes the key only while it still holds the given
	// value, reporting whether a deletion happened. Callers use it as an
	// atomic consume step after validating a previously read value.
	DeleteIfValue(ctx context.Context, key, value string) (bool, error)

	Delete(ctx context.Context, key string) error
}

// PendingRegistration is a provisional account held in the store until the
// registration code is confirmed. No user row exists yet.
type PendingRegistration struct {
	Nickname     string `json:"nickname"`
	PasswordHash string `json:"passwordHash"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
	Code         string `json:"code"`
}

// Encode serializes the pending registration for storage.
func (p *PendingRegistration) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodePendingRegistration parses a stored pending-registration payload.
func DecodePendingRegistration(value string) (*PendingRegistration, error) {
	p := &PendingRegistration{}
	if err := json.Unmarshal([]byte(value), p); err != nil {
		return nil, err
	}
	return p, nil
}
