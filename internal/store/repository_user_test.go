package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/fortuna/internal/logger"
	"github.com/MKhiriev/fortuna/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T) (*userRepository, *Pool, sqlmock.Sqlmock) {
	t.Helper()
	pool, mock := newMockPool(t)
	repo := &userRepository{
		db:     pool,
		logger: logger.Nop(),
		now:    func() time.Time { return time.Unix(1_700_000_000, 0) },
	}
	return repo, pool, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, pool, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(createUser)).
		WithArgs("a@x.com", "$argon2id$hash", "salt", int64(1_700_000_000)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(42))

	var id int64
	err := pool.WithConn(context.Background(), func(ctx context.Context, q Querier) error {
		var err error
		id, err = repo.CreateUser(ctx, q, models.User{Email: "a@x.com", PassHash: "$argon2id$hash", Salt: "salt"})
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, pool, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := pool.WithConn(context.Background(), func(ctx context.Context, q Querier) error {
		_, err := repo.CreateUser(ctx, q, models.User{Email: "a@x.com"})
		return err
	})

	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, pool, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("connection reset"))

	err := pool.WithConn(context.Background(), func(ctx context.Context, q Querier) error {
		_, err := repo.CreateUser(ctx, q, models.User{Email: "a@x.com"})
		return err
	})

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrDuplicateEmail)
}

func TestFindActiveUserByEmail_FoldsWorkspaces(t *testing.T) {
	repo, _, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows([]string{"user_id", "email", "pass_hash", "salt", "workspace_id"}).
		AddRow(7, "a@x.com", "hash", "salt", 3).
		AddRow(7, "a@x.com", "hash", "salt", 3).
		AddRow(7, "a@x.com", "hash", "salt", 9)

	mock.ExpectQuery(regexp.QuoteMeta(findActiveUserByEmail)).WithArgs("a@x.com").WillReturnRows(rows)

	user, err := repo.FindActiveUserByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "hash", user.PassHash)
	assert.Equal(t, "salt", user.Salt)
	assert.True(t, user.Active)
	assert.Equal(t, []int64{3, 9}, user.WorkspaceIDs)
}

func TestFindActiveUserByEmail_NoWorkspaces(t *testing.T) {
	repo, _, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT u.user_id").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "email", "pass_hash", "salt", "workspace_id"}).
			AddRow(7, "a@x.com", "hash", "salt", nil))

	user, err := repo.FindActiveUserByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Empty(t, user.WorkspaceIDs)
}

func TestFindActiveUserByEmail_NotFound(t *testing.T) {
	repo, _, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT u.user_id").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "email", "pass_hash", "salt", "workspace_id"}))

	user, err := repo.FindActiveUserByEmail(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestFindActiveUserByEmail_QueryError(t *testing.T) {
	repo, _, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT u.user_id").WillReturnError(errors.New("timeout"))

	user, err := repo.FindActiveUserByEmail(context.Background(), "a@x.com")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
