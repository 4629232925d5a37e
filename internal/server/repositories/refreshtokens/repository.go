// Package refreshtokens declares the server-side store for issued refresh
// tokens. Rows are looked up by the SHA-256 of the token string.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
)

// Repository persists refresh token records. now is passed in by the
// caller so all time comparisons share one clock.
type Repository interface {
	// Create stores a newly issued token.
	Create(ctx context.Context, token *models.RefreshToken) error

	// FindActive returns the token if it is neither revoked nor expired at
	// now, common.ErrorNotFound otherwise.
	FindActive(ctx context.Context, tokenHash string, now time.Time) (*models.RefreshToken, error)

	// FindByHash returns the token in any state.
	FindByHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)

	// Rotate revokes an active token and records successorID as its
	// replacement in a single conditional update. It returns the token as
	// it was before rotation, or common.ErrorNotFound if it was not active.
	Rotate(ctx context.Context, tokenHash string, successorID string, now time.Time) (*models.RefreshToken, error)

	// RevokeFamily revokes every still-active token of a family.
	RevokeFamily(ctx context.Context, familyID string, now time.Time) (int64, error)

	// RevokeAllForUser revokes every still-active token of a user.
	RevokeAllForUser(ctx context.Context, userID string, now time.Time) (int64, error)
}
