package refreshtokens

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

func (r *PostgresRepository) Create(ctx context.Context, t *models.RefreshToken) error {
	query :=
		`INSERT INTO refresh_tokens (id, user_id, family_id, token_hash, issued_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query, t.ID, t.UserID, t.FamilyID, t.TokenHash, t.IssuedAt, t.ExpiresAt)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

const tokenColumns = `id, user_id, family_id, token_hash, issued_at, expires_at, revoked_at, replaced_by`

func (r *PostgresRepository) FindActive(ctx context.Context, tokenHash string, now time.Time) (*models.RefreshToken, error) {
	query := `SELECT ` + tokenColumns + ` FROM refresh_tokens
		 WHERE token_hash = $1 AND revoked_at IS NULL AND expires_at > $2`

	return scanToken(r.db.QueryRowContext(ctx, query, tokenHash, now))
}

func (r *PostgresRepository) FindByHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	query := `SELECT ` + tokenColumns + ` FROM refresh_tokens WHERE token_hash = $1`

	return scanToken(r.db.QueryRowContext(ctx, query, tokenHash))
}

func (r *PostgresRepository) Rotate(ctx context.Context, tokenHash string, successorID string, now time.Time) (*models.RefreshToken, error) {
	query :=
		`UPDATE refresh_tokens SET revoked_at = $3, replaced_by = $2
		 WHERE token_hash = $1 AND revoked_at IS NULL AND expires_at > $3
		 RETURNING id, user_id, family_id, token_hash, issued_at, expires_at`

	t := &models.RefreshToken{}
	err := r.db.QueryRowContext(ctx, query, tokenHash, successorID, now).Scan(
		&t.ID, &t.UserID, &t.FamilyID, &t.TokenHash, &t.IssuedAt, &t.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) RevokeFamily(ctx context.Context, familyID string, now time.Time) (int64, error) {
	return r.revoke(ctx, `UPDATE refresh_tokens SET revoked_at = $2 WHERE family_id = $1 AND revoked_at IS NULL`, familyID, now)
}

func (r *PostgresRepository) RevokeAllForUser(ctx context.Context, userID string, now time.Time) (int64, error) {
	return r.revoke(ctx, `UPDATE refresh_tokens SET revoked_at = $2 WHERE user_id = $1 AND revoked_at IS NULL`, userID, now)
}

func (r *PostgresRepository) revoke(ctx context.Context, query string, key string, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, key, now)
	if err != nil {
		return 0, fmt.Errorf("error performing sql request: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error performing sql request: %w", err)
	}
	return n, nil
}

func scanToken(row *sql.Row) (*models.RefreshToken, error) {
	t := &models.RefreshToken{}
	var (
		revokedAt  sql.NullTime
		replacedBy sql.NullString
	)

	err := row.Scan(&t.ID, &t.UserID, &t.FamilyID, &t.TokenHash, &t.IssuedAt, &t.ExpiresAt, &revokedAt, &replacedBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	if revokedAt.Valid {
		ts := revokedAt.Time
		t.RevokedAt = &ts
	}
	t.ReplacedBy = replacedBy.String
	return t, nil
}
