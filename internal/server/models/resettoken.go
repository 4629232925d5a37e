package models

import "time"

// ResetToken is a single-use password reset grant addressed to an email.
type ResetToken struct {
	ID        string
	Email     string
	TokenHash string
	CreatedAt time.Time
	ExpiresAt time.Time
	UsedAt    *time.Time
}

func (t *ResetToken) Used() bool {
	return t.UsedAt != nil
}

func (t *ResetToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
