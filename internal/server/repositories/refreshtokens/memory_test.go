package refreshtokens

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, r *MemoryRepository, id, user, family string) {
	t.Helper()
	require.NoError(t, r.Create(context.Background(), &models.RefreshToken{
		ID: id, UserID: user, FamilyID: family, TokenHash: "h-" + id,
		IssuedAt: now, ExpiresAt: now.Add(time.Hour),
	}))
}

func TestMemoryRepository_RotateOnce(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	seed(t, r, "a", "u1", "f1")

	before, err := r.Rotate(ctx, "h-a", "b", now)
	require.NoError(t, err)
	assert.Nil(t, before.RevokedAt)

	_, err = r.Rotate(ctx, "h-a", "c", now)
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = r.FindActive(ctx, "h-a", now)
	require.ErrorIs(t, err, common.ErrorNotFound)

	rotated, err := r.FindByHash(ctx, "h-a")
	require.NoError(t, err)
	assert.True(t, rotated.Rotated())
	assert.Equal(t, "b", rotated.ReplacedBy)
}

func TestMemoryRepository_ExpiredIsInactive(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	seed(t, r, "a", "u1", "f1")

	_, err := r.FindActive(ctx, "h-a", now.Add(time.Hour))
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = r.Rotate(ctx, "h-a", "b", now.Add(2*time.Hour))
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_Revocation(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	seed(t, r, "a", "u1", "f1")
	seed(t, r, "b", "u1", "f1")
	seed(t, r, "c", "u1", "f2")
	seed(t, r, "d", "u2", "f3")

	n, err := r.RevokeFamily(ctx, "f1", now)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = r.RevokeAllForUser(ctx, "u1", now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n, "only f2 was still active")

	_, err = r.FindActive(ctx, "h-d", now)
	require.NoError(t, err, "other users are untouched")
}

func TestMemoryRepository_DuplicateHash(t *testing.T) {
	r := NewMemoryRepository()
	seed(t, r, "a", "u1", "f1")

	err := r.Create(context.Background(), &models.RefreshToken{ID: "z", TokenHash: "h-a"})
	require.ErrorIs(t, err, common.ErrConflict)
}
