package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/fortuna/internal/logger"
	"github.com/MKhiriev/fortuna/models"
)

// sessionRepository is the SQL implementation of [SessionRepository].
// Sessions are never deleted: revocation flips the active flag.
type sessionRepository struct {
	db     *Pool
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository].
func NewSessionRepository(db *Pool, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session models.SessionRecord) error {
	_, err := r.db.Exec(ctx, createSession,
		session.Token,
		session.UserID,
		session.Expires,
		nullString(session.UserAgent),
		session.Created,
		session.LastUsed,
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*sessionRepository.CreateSession").
			Int64("user_id", session.UserID).
			Msg("error inserting session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sessionRepository) FindUsableSession(ctx context.Context, token string, now int64) (*models.SessionRecord, error) {
	var rec models.SessionRecord
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return scanSession(row, &rec)
	}, findUsableSession, token, now)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.FindUsableSession").Msg("error finding session")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rec.Active = true
	return &rec, nil
}

func (r *sessionRepository) TouchSession(ctx context.Context, token string, now int64) error {
	if _, err := r.db.Exec(ctx, touchSession, now, token); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *sessionRepository) ListActiveSessions(ctx context.Context, userID int64, now int64) ([]models.SessionRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListActiveSessionsQuery(userID, now)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.ListActiveSessions").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	sessions := make([]models.SessionRecord, 0, 4)
	err = r.db.Query(ctx, func(rows *sql.Rows) error {
		var rec models.SessionRecord
		if err := scanSession(rows, &rec); err != nil {
			return err
		}
		rec.Active = true
		sessions = append(sessions, rec)
		return nil
	}, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.ListActiveSessions").
			Int64("user_id", userID).
			Msg("error listing sessions")
		return nil, err
	}

	return sessions, nil
}

func (r *sessionRepository) DeactivateSession(ctx context.Context, userID int64, token string) (bool, error) {
	res, err := r.db.Exec(ctx, deactivateSession, userID, token)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*sessionRepository.DeactivateSession").
			Int64("user_id", userID).
			Msg("error deactivating session")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner, rec *models.SessionRecord) error {
	var userAgent sql.NullString
	if err := row.Scan(&rec.Token, &rec.UserID, &rec.Expires, &userAgent, &rec.Created, &rec.LastUsed); err != nil {
		return err
	}
	rec.UserAgent = userAgent.String
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
