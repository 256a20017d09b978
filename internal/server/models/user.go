// Package models holds the persistent data structures of the auth service.
package models

import (
	"database/sql"
	"time"
)

// Provider values for User.Provider.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// RoleUser is the default role assigned to new accounts.
const RoleUser = "user"

// User is a durable credential record. At least one of Email or Phone is
// always set. PasswordHash is absent for accounts created through a social
// provider or the OTP flow.
type User struct {
	ID           string
	Email        sql.NullString
	Phone        sql.NullString
	Nickname     string
	Tag          string
	PasswordHash sql.NullString
	AvatarURL    sql.NullString
	Role         string
	Provider     string
	ProviderID   sql.NullString
	IsVerified   bool
	CreatedAt    time.Time
}
