package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/fortuna/internal/logger"
	"github.com/MKhiriev/fortuna/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionColumns = []string{"session_key", "user_id", "expires", "user_agent", "created", "last_used"}

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock) {
	t.Helper()
	pool, mock := newMockPool(t)
	return &sessionRepository{db: pool, logger: logger.Nop()}, mock
}

func TestCreateSession_NullUserAgent(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(createSession)).
		WithArgs("tok", int64(1), int64(200), nil, int64(100), int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateSession(context.Background(), models.SessionRecord{
		Token: "tok", UserID: 1, Expires: 200, Created: 100, LastUsed: 100,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSession_Error(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("INSERT INTO sessions").WillReturnError(errors.New("disk full"))

	err := repo.CreateSession(context.Background(), models.SessionRecord{Token: "tok", UserAgent: `{"os":"linux"}`})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindUsableSession(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(findUsableSession)).
		WithArgs("tok", int64(150)).
		WillReturnRows(sqlmock.NewRows(sessionColumns).AddRow("tok", 1, 200, `{"os":"linux"}`, 100, 120))

	rec, err := repo.FindUsableSession(context.Background(), "tok", 150)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, models.SessionRecord{
		Token: "tok", UserID: 1, Expires: 200, UserAgent: `{"os":"linux"}`, Active: true, Created: 100, LastUsed: 120,
	}, *rec)
}

func TestFindUsableSession_NoRows(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery("SELECT s.session_key").WillReturnRows(sqlmock.NewRows(sessionColumns))

	rec, err := repo.FindUsableSession(context.Background(), "tok", 150)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestFindUsableSession_Error(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery("SELECT s.session_key").WillReturnError(errors.New("gone"))

	rec, err := repo.FindUsableSession(context.Background(), "tok", 150)
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListActiveSessions(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	query, _, err := buildListActiveSessionsQuery(1, 150)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(int64(1), int64(150)).
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow("a", 1, 200, nil, 100, 140).
			AddRow("b", 1, 300, `{"browser":"firefox"}`, 110, 130))

	sessions, err := repo.ListActiveSessions(context.Background(), 1, 150)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "a", sessions[0].Token)
	assert.Empty(t, sessions[0].UserAgent)
	assert.Equal(t, `{"browser":"firefox"}`, sessions[1].UserAgent)
}

func TestDeactivateSession(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "deactivated", affected: 1, want: true},
		{name: "no such session", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestSessionRepo(t)

			mock.ExpectExec(regexp.QuoteMeta(deactivateSession)).
				WithArgs(int64(1), "tok").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			ok, err := repo.DeactivateSession(context.Background(), 1, "tok")
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestTouchSession(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(touchSession)).
		WithArgs(int64(500), "tok").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.TouchSession(context.Background(), "tok", 500))

	mock.ExpectExec("UPDATE sessions").WillReturnError(errors.New("locked"))
	assert.ErrorIs(t, repo.TouchSession(context.Background(), "tok", 500), ErrExecutingQuery)
}
