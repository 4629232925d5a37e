package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const insertQ = `(?s)^INSERT\s+INTO\s+users\s*\(id,\s*email,\s*password_hash,\s*first_name,\s*last_name\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*RETURNING\s+created_at$`

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery(insertQ).
		WithArgs(sqlmock.AnyArg(), "alice@example.com", "hash", "Alice", "Liddell").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	u := &models.User{Email: "alice@example.com", PasswordHash: "hash", FirstName: "Alice", LastName: "Liddell"}
	got, err := repo.Create(context.Background(), u)
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, created, got.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})

	_, err := repo.Create(context.Background(), &models.User{Email: "alice@example.com"})
	require.ErrorIs(t, err, common.ErrConflict)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Email: "alice@example.com"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

var userColumns = []string{"id", "email", "password_hash", "first_name", "last_name", "tfa_secret", "created_at"}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*email,.*tfa_secret,\s*created_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1$`
	mock.ExpectQuery(q).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("u-1", "alice@example.com", "hash", "Alice", "L", nil, time.Now()))

	u, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
	assert.Empty(t, u.TFASecret)
	assert.False(t, u.HasTwoFactor())
}

func TestGetByID_WithSecret(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+users\s+WHERE\s+id\s*=\s*\$1$`
	mock.ExpectQuery(q).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("u-1", "alice@example.com", "hash", "Alice", "L", "JBSWY3DPEHPK3PXP", time.Now()))

	u, err := repo.GetByID(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", u.TFASecret)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,.*FROM\s+users`).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "nope")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestLockForUpdate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s+FOR\s+UPDATE$`
	mock.ExpectQuery(q).WithArgs("u-1").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("u-1"))
	mock.ExpectQuery(q).WithArgs("u-2").WillReturnError(sql.ErrNoRows)

	require.NoError(t, repo.LockForUpdate(context.Background(), "u-1"))
	require.ErrorIs(t, repo.LockForUpdate(context.Background(), "u-2"), common.ErrorNotFound)
}

func TestUpdatePassword(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+password_hash\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1$`
	mock.ExpectExec(q).WithArgs("u-1", "new").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("u-2", "new").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.UpdatePassword(context.Background(), "u-1", "new"))
	require.ErrorIs(t, repo.UpdatePassword(context.Background(), "u-2", "new"), common.ErrorNotFound)
}

func TestEnrollTwoFactor_Conditional(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+tfa_secret\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1\s+AND\s+tfa_secret\s+IS\s+NULL$`
	mock.ExpectExec(q).WithArgs("u-1", "S1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("u-1", "S2").WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.EnrollTwoFactor(context.Background(), "u-1", "S1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.EnrollTwoFactor(context.Background(), "u-1", "S2")
	require.NoError(t, err)
	assert.False(t, ok, "second enrolment must not overwrite")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollTwoFactor_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+users`).WillReturnError(errors.New("db down"))

	_, err := repo.EnrollTwoFactor(context.Background(), "u-1", "S1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestUseTwoFactorStep_OnlyForward(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+tfa_last_step\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1\s+AND\s+tfa_last_step\s*<\s*\$2$`
	mock.ExpectExec(q).WithArgs("u-1", int64(100)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("u-1", int64(100)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(q).WithArgs("u-1", int64(101)).WillReturnError(errors.New("db down"))

	ok, err := repo.UseTwoFactorStep(context.Background(), "u-1", 100)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.UseTwoFactorStep(context.Background(), "u-1", 100)
	require.NoError(t, err)
	assert.False(t, ok, "a step is accepted once")

	_, err = repo.UseTwoFactorStep(context.Background(), "u-1", 101)
	require.ErrorContains(t, err, "db error")
	require.NoError(t, mock.ExpectationsWereMet())
}
