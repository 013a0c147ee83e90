package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/fortuna/internal/logger"
	"github.com/MKhiriev/fortuna/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
type userRepository struct {
	db     *Pool
	logger *logger.Logger
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// pool and logger.
func NewUserRepository(db *Pool, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// CreateUser inserts an active user within the caller's scope q and returns
// the id assigned by the database.
//
// Error handling:
//   - unique violation on email → [ErrDuplicateEmail].
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, q Querier, user models.User) (int64, error) {
	log := logger.FromContext(ctx)

	var userID int64
	err := q.QueryRowContext(ctx, createUser, user.Email, user.PassHash, user.Salt, r.now().Unix()).Scan(&userID)
	if err != nil {
		if r.db.IsUniqueViolation(err) {
			return 0, ErrDuplicateEmail
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return userID, nil
}

// userWorkspaceRow is one row of the user/workspace LEFT JOIN.
type userWorkspaceRow struct {
	userID      int64
	email       string
	passHash    string
	salt        string
	workspaceID sql.NullInt64
}

// FindActiveUserByEmail returns nil, nil when no active user has the email.
// The joined rows are folded into one user; workspace ids are de-duplicated
// with a seen set.
func (r *userRepository) FindActiveUserByEmail(ctx context.Context, email string) (*models.User, error) {
	log := logger.FromContext(ctx)

	var user *models.User
	seen := make(map[int64]struct{})

	err := r.db.Query(ctx, func(rows *sql.Rows) error {
		var row userWorkspaceRow
		if err := rows.Scan(&row.userID, &row.email, &row.passHash, &row.salt, &row.workspaceID); err != nil {
			return err
		}

		if user == nil {
			user = &models.User{
				UserID:       row.userID,
				Email:        row.email,
				PassHash:     row.passHash,
				Salt:         row.salt,
				Active:       true,
				WorkspaceIDs: make([]int64, 0, 1),
			}
		}

		if !row.workspaceID.Valid {
			return nil
		}
		if _, ok := seen[row.workspaceID.Int64]; !ok {
			seen[row.workspaceID.Int64] = struct{}{}
			user.WorkspaceIDs = append(user.WorkspaceIDs, row.workspaceID.Int64)
		}
		return nil
	}, findActiveUserByEmail, email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindActiveUserByEmail").Msg("error finding user")
		return nil, err
	}

	return user, nil
}
