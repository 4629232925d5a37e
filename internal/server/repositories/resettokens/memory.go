package resettokens

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
)

type MemoryRepository struct {
	mu     sync.Mutex
	byHash map[string]*models.ResetToken
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byHash: make(map[string]*models.ResetToken)}
}

func (r *MemoryRepository) Create(ctx context.Context, t *models.ResetToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byHash[t.TokenHash]; ok {
		return common.ErrConflict
	}
	stored := *t
	r.byHash[t.TokenHash] = &stored
	return nil
}

func (r *MemoryRepository) Redeem(ctx context.Context, tokenHash string, now time.Time) (*models.ResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byHash[tokenHash]
	if !ok || t.Used() || t.Expired(now) {
		return nil, common.ErrorNotFound
	}
	used := now
	t.UsedAt = &used

	out := *t
	return &out, nil
}

func (r *MemoryRepository) FindByHash(ctx context.Context, tokenHash string) (*models.ResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byHash[tokenHash]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *t
	return &out, nil
}
