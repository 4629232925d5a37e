package resettokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/dbx"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.ResetToken) error {
	query :=
		`INSERT INTO password_resets (id, email, token_hash, created_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query, t.ID, t.Email, t.TokenHash, t.CreatedAt, t.ExpiresAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Redeem(ctx context.Context, tokenHash string, now time.Time) (*models.ResetToken, error) {
	query :=
		`UPDATE password_resets SET used_at = $2
		 WHERE token_hash = $1 AND used_at IS NULL AND expires_at > $2
		 RETURNING id, email, token_hash, created_at, expires_at`

	t := &models.ResetToken{}
	err := r.db.QueryRowContext(ctx, query, tokenHash, now).Scan(
		&t.ID, &t.Email, &t.TokenHash, &t.CreatedAt, &t.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	used := now
	t.UsedAt = &used
	return t, nil
}

func (r *PostgresRepository) FindByHash(ctx context.Context, tokenHash string) (*models.ResetToken, error) {
	query :=
		`SELECT id, email, token_hash, created_at, expires_at, used_at
		 FROM password_resets WHERE token_hash = $1`

	t := &models.ResetToken{}
	var usedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, tokenHash).Scan(
		&t.ID, &t.Email, &t.TokenHash, &t.CreatedAt, &t.ExpiresAt, &usedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if usedAt.Valid {
		ts := usedAt.Time
		t.UsedAt = &ts
	}
	return t, nil
}
