// Package users declares the credential store and its PostgreSQL and
// in-memory implementations.
package users

import (
	"context"

	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
)

// Repository persists user accounts. Lookups return common.ErrorNotFound
// when nothing matches; Create returns common.ErrConflict for a taken email.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)

	// LockForUpdate takes a row lock on the user for the rest of the
	// surrounding transaction.
	LockForUpdate(ctx context.Context, id string) error

	UpdatePassword(ctx context.Context, id string, passwordHash string) error

	// EnrollTwoFactor stores secret only if the user has none yet and
	// reports whether it did.
	EnrollTwoFactor(ctx context.Context, id string, secret string) (bool, error)

	// UseTwoFactorStep records step as the last accepted TOTP time step
	// when it is newer than the stored one and reports whether it was.
	UseTwoFactorStep(ctx context.Context, id string, step int64) (bool, error)
}
