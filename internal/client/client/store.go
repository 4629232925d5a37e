package client

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/sessionkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/sessionkeeper/internal/dbx"
)

const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUserID       = "user_id"
)

// Session is what the client remembers between runs.
type Session struct {
	UserID       string
	AccessToken  string
	RefreshToken string
}

func (s Session) Empty() bool { return s.RefreshToken == "" }

type SessionStore interface {
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}

// SQLSessionStore keeps the session in the metadata table.
type SQLSessionStore struct {
	db *sql.DB
}

func NewSQLSessionStore(db *sql.DB) *SQLSessionStore {
	return &SQLSessionStore{db: db}
}

func (s *SQLSessionStore) Load(ctx context.Context) (Session, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	var out Session
	for key, dst := range map[string]*string{
		keyUserID:       &out.UserID,
		keyAccessToken:  &out.AccessToken,
		keyRefreshToken: &out.RefreshToken,
	} {
		v, err := repo.Get(ctx, key)
		if err != nil {
			return Session{}, fmt.Errorf("load session: %w", err)
		}
		*dst = string(v)
	}
	return out, nil
}

// Save writes all three values in one transaction.
func (s *SQLSessionStore) Save(ctx context.Context, sess Session) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyUserID, []byte(sess.UserID)); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyAccessToken, []byte(sess.AccessToken)); err != nil {
			return err
		}
		return repo.Set(ctx, keyRefreshToken, []byte(sess.RefreshToken))
	})
}

func (s *SQLSessionStore) Clear(ctx context.Context) error {
	repo := metadata.NewSQLiteRepository(s.db)
	return repo.Delete(ctx, keyUserID, keyAccessToken, keyRefreshToken)
}

// MemorySessionStore forgets everything on exit.
type MemorySessionStore struct {
	mu   sync.Mutex
	sess Session
}

func (m *MemorySessionStore) Load(context.Context) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sess, nil
}

func (m *MemorySessionStore) Save(_ context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = s
	return nil
}

func (m *MemorySessionStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = Session{}
	return nil
}
