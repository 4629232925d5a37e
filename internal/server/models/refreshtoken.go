package models

import "time"

// RefreshToken is the server-side record of an issued refresh token. ID is
// the JWT jti; TokenHash is the SHA-256 of the token string. Tokens that
// were rotated keep their row with RevokedAt and ReplacedBy set, which is
// what makes reuse detectable.
type RefreshToken struct {
	ID         string
	UserID     string
	FamilyID   string
	TokenHash  string
	IssuedAt   time.Time
	ExpiresAt  time.Time
	RevokedAt  *time.Time
	ReplacedBy string
}

// Active reports whether the token may still be exchanged at now.
func (t *RefreshToken) Active(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}

// Rotated reports whether the token was revoked by a successful refresh.
func (t *RefreshToken) Rotated() bool {
	return t.RevokedAt != nil && t.ReplacedBy != ""
}
