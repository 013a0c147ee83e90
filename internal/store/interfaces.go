package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/fortuna/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Querier is the subset of database/sql used by repositories.
// *sql.Conn, *sql.Tx and *sql.DB all satisfy it.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Transactor opens scoped units of work on a single pooled connection.
// [Pool] is the production implementation.
type Transactor interface {
	// WithConn runs fn on one acquired connection and releases it on every
	// exit path.
	WithConn(ctx context.Context, fn func(ctx context.Context, q Querier) error) error

	// WithTransaction runs fn inside BEGIN/COMMIT on one acquired connection.
	// A returned error or panic rolls the transaction back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, q Querier) error) error
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	// Classify reports whether a failed operation may be retried.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a unique constraint failure.
	IsUniqueViolation(err error) bool
	// IsForeignKeyViolation reports whether err references a missing row.
	IsForeignKeyViolation(err error) bool
}

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts an active user and returns its id.
	// A duplicate email yields [ErrDuplicateEmail].
	CreateUser(ctx context.Context, q Querier, user models.User) (int64, error)
	// FindActiveUserByEmail returns the active user with the given email
	// together with its workspace ids, or nil when there is none.
	FindActiveUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// SessionRepository persists sessions. Timestamps are unix seconds.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.SessionRecord) error
	// FindUsableSession returns the session only if it is active, unexpired
	// at now and owned by an active user; nil otherwise.
	FindUsableSession(ctx context.Context, token string, now int64) (*models.SessionRecord, error)
	TouchSession(ctx context.Context, token string, now int64) error
	ListActiveSessions(ctx context.Context, userID int64, now int64) ([]models.SessionRecord, error)
	// DeactivateSession reports whether an active session was deactivated.
	DeactivateSession(ctx context.Context, userID int64, token string) (bool, error)
}

// WorkspaceRepository persists workspaces and memberships. Methods taking a
// [Querier] run in the caller's connection or transaction scope.
type WorkspaceRepository interface {
	// CreateWorkspace inserts a workspace under its stored (prefixed) name.
	// A duplicate shared name yields [ErrDuplicateWorkspace]; personal names
	// may repeat across owners.
	CreateWorkspace(ctx context.Context, q Querier, storedName string, personal bool) (int64, error)
	// AddMember inserts a membership. A duplicate pair yields [ErrAlreadyMember],
	// an unknown user or workspace yields [ErrNotFound].
	AddMember(ctx context.Context, q Querier, workspaceID, userID int64, role models.Role) error
	// MemberRole returns the role of an active user, or "" when not a member.
	MemberRole(ctx context.Context, q Querier, workspaceID, userID int64) (models.Role, error)
	CountAdmins(ctx context.Context, q Querier, workspaceID int64) (int, error)
	DeleteMember(ctx context.Context, q Querier, workspaceID, userID int64) (bool, error)
	ListMembers(ctx context.Context, workspaceID int64) ([]models.WorkspaceMember, error)
	ListForUser(ctx context.Context, userID int64) ([]models.Workspace, error)
}

// ExperimentRepository persists experiments and their outcomes.
type ExperimentRepository interface {
	CreateExperiment(ctx context.Context, experiment models.Experiment) (int64, error)
	AddOutcome(ctx context.Context, outcome models.Outcome) (int64, error)
	// ListExperiments returns up to limit experiments starting at offset.
	ListExperiments(ctx context.Context, workspaceID int64, limit, offset uint64) ([]models.Experiment, error)
	// GetExperiment returns the experiment with outcomes and results, or nil.
	GetExperiment(ctx context.Context, experimentID int64) (*models.Experiment, error)
	// ExperimentWorkspace returns the owning workspace or [ErrNotFound].
	ExperimentWorkspace(ctx context.Context, experimentID int64) (int64, error)
}
