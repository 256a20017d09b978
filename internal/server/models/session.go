package models

import "time"

// Session is one active refresh-token grant. The refresh token is an opaque
// random identifier; presenting it once consumes the session (rotation).
// IP and UserAgent form the fingerprint the session is bound to.
type Session struct {
	ID           string
	UserID       string
	RefreshToken string
	IP           string
	UserAgent    string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// Expired reports whether the session's absolute expiry has passed.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// MatchesFingerprint reports whether the presented network address and
// client agent match the ones the session was created with.
func (s *Session) MatchesFingerprint(ip, userAgent string) bool {
	return s.IP == ip && s.UserAgent == userAgent
}
