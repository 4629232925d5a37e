// Package models holds the persisted entities of the session service.
package models

import "time"

// User is a registered account. Only PasswordHash and TFASecret change
// after creation; an empty TFASecret means two-factor is not enrolled yet.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	TFASecret    string
	CreatedAt    time.Time
}

// HasTwoFactor reports whether the user has a confirmed TOTP secret.
func (u *User) HasTwoFactor() bool {
	return u.TFASecret != ""
}

// UserPublic is the user as returned to callers; it never carries the
// password hash or the two-factor secret.
type UserPublic struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) Public() *UserPublic {
	return &UserPublic{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}
