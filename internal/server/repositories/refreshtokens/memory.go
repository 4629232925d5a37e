package refreshtokens

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
)

type MemoryRepository struct {
	mu     sync.Mutex
	byHash map[string]*models.RefreshToken
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byHash: make(map[string]*models.RefreshToken)}
}

func (r *MemoryRepository) Create(ctx context.Context, t *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byHash[t.TokenHash]; ok {
		return common.ErrConflict
	}
	stored := *t
	r.byHash[t.TokenHash] = &stored
	return nil
}

func (r *MemoryRepository) FindActive(ctx context.Context, tokenHash string, now time.Time) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byHash[tokenHash]
	if !ok || !t.Active(now) {
		return nil, common.ErrorNotFound
	}
	return clone(t), nil
}

func (r *MemoryRepository) FindByHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byHash[tokenHash]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(t), nil
}

func (r *MemoryRepository) Rotate(ctx context.Context, tokenHash string, successorID string, now time.Time) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byHash[tokenHash]
	if !ok || !t.Active(now) {
		return nil, common.ErrorNotFound
	}
	before := clone(t)
	revoked := now
	t.RevokedAt = &revoked
	t.ReplacedBy = successorID
	return before, nil
}

func (r *MemoryRepository) RevokeFamily(ctx context.Context, familyID string, now time.Time) (int64, error) {
	return r.revokeWhere(now, func(t *models.RefreshToken) bool { return t.FamilyID == familyID })
}

func (r *MemoryRepository) RevokeAllForUser(ctx context.Context, userID string, now time.Time) (int64, error) {
	return r.revokeWhere(now, func(t *models.RefreshToken) bool { return t.UserID == userID })
}

func (r *MemoryRepository) revokeWhere(now time.Time, match func(*models.RefreshToken) bool) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, t := range r.byHash {
		if t.RevokedAt == nil && match(t) {
			revoked := now
			t.RevokedAt = &revoked
			n++
		}
	}
	return n, nil
}

func clone(t *models.RefreshToken) *models.RefreshToken {
	out := *t
	if t.RevokedAt != nil {
		ts := *t.RevokedAt
		out.RevokedAt = &ts
	}
	return &out
}
