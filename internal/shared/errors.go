// Package shared provides sentinel errors and small utility functions used
// across the auth service. Callers should use errors.Is to match the
// sentinel values.
package shared

import "errors"

var (

	// repository-level errors
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// generic flow control
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// credential errors
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorUserNotFound       = errors.New("user not found")

	// one-time code errors
	ErrorInvalidCode          = errors.New("invalid code")
	ErrorInvalidOrExpiredCode = errors.New("invalid or expired code")

	// token and session lifecycle errors
	ErrorInvalidToken        = errors.New("invalid token")
	ErrorInvalidRefreshToken = errors.New("invalid refresh token")
	ErrorSessionExpired      = errors.New("session expired")

	// ErrorSecurityBreach is returned when a refresh token is presented from
	// a fingerprint that does not match the one the session was bound to.
	// All sessions of the affected user are revoked before it is returned.
	ErrorSecurityBreach = errors.New("security breach detected")

	// mail collaborator errors
	ErrorDeliveryFailed = errors.New("code delivery failed")
)
