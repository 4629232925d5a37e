// Package resettokens stores single-use password reset grants, keyed by the
// SHA-256 of the token string.
package resettokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, token *models.ResetToken) error

	// Redeem marks an unused, unexpired token as used at now and returns
	// it. Anything else yields common.ErrorNotFound; the token is never
	// redeemable twice.
	Redeem(ctx context.Context, tokenHash string, now time.Time) (*models.ResetToken, error)

	// FindByHash returns the token in any state.
	FindByHash(ctx context.Context, tokenHash string) (*models.ResetToken, error)
}
