package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/fortuna/internal/logger"
	"github.com/MKhiriev/fortuna/models"
)

// workspaceRepository is the SQL implementation of [WorkspaceRepository].
type workspaceRepository struct {
	db     *Pool
	logger *logger.Logger
}

// NewWorkspaceRepository constructs a [WorkspaceRepository].
func NewWorkspaceRepository(db *Pool, logger *logger.Logger) WorkspaceRepository {
	logger.Debug().Msg("creating workspace repository")
	return &workspaceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *workspaceRepository) CreateWorkspace(ctx context.Context, q Querier, storedName string, personal bool) (int64, error) {
	var workspaceID int64
	err := q.QueryRowContext(ctx, createWorkspace, storedName, personal).Scan(&workspaceID)
	if err != nil {
		if r.db.IsUniqueViolation(err) {
			return 0, ErrDuplicateWorkspace
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "*workspaceRepository.CreateWorkspace").
			Str("name", storedName).
			Msg("error inserting workspace")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return workspaceID, nil
}

func (r *workspaceRepository) AddMember(ctx context.Context, q Querier, workspaceID, userID int64, role models.Role) error {
	if _, err := q.ExecContext(ctx, addWorkspaceMember, workspaceID, userID, string(role)); err != nil {
		if r.db.IsUniqueViolation(err) {
			return ErrAlreadyMember
		}
		if r.db.IsForeignKeyViolation(err) {
			return ErrNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "*workspaceRepository.AddMember").
			Int64("workspace_id", workspaceID).
			Int64("user_id", userID).
			Msg("error inserting workspace member")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *workspaceRepository) MemberRole(ctx context.Context, q Querier, workspaceID, userID int64) (models.Role, error) {
	var role string
	err := q.QueryRowContext(ctx, getMemberRole, workspaceID, userID).Scan(&role)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", nil
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*workspaceRepository.MemberRole").Msg("error reading member role")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.Role(role), nil
}

func (r *workspaceRepository) CountAdmins(ctx context.Context, q Querier, workspaceID int64) (int, error) {
	var count int
	if err := q.QueryRowContext(ctx, countWorkspaceAdmins, workspaceID, string(models.RoleAdmin)).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count, nil
}

func (r *workspaceRepository) DeleteMember(ctx context.Context, q Querier, workspaceID, userID int64) (bool, error) {
	res, err := q.ExecContext(ctx, deleteWorkspaceMember, workspaceID, userID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return affected > 0, nil
}

func (r *workspaceRepository) ListMembers(ctx context.Context, workspaceID int64) ([]models.WorkspaceMember, error) {
	members := make([]models.WorkspaceMember, 0, 4)

	err := r.db.Query(ctx, func(rows *sql.Rows) error {
		var (
			m    models.WorkspaceMember
			role string
		)
		if err := rows.Scan(&m.UserID, &m.Email, &role); err != nil {
			return err
		}
		m.Role = models.Role(role)
		members = append(members, m)
		return nil
	}, listWorkspaceMembers, workspaceID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*workspaceRepository.ListMembers").
			Int64("workspace_id", workspaceID).
			Msg("error listing members")
		return nil, err
	}

	return members, nil
}

func (r *workspaceRepository) ListForUser(ctx context.Context, userID int64) ([]models.Workspace, error) {
	workspaces := make([]models.Workspace, 0, 2)

	err := r.db.Query(ctx, func(rows *sql.Rows) error {
		var (
			ws     models.Workspace
			stored string
		)
		if err := rows.Scan(&ws.WorkspaceID, &stored, &ws.Personal); err != nil {
			return err
		}
		ws.Name = models.WorkspaceDisplayName(stored)
		workspaces = append(workspaces, ws)
		return nil
	}, listUserWorkspaces, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*workspaceRepository.ListForUser").
			Int64("user_id", userID).
			Msg("error listing workspaces")
		return nil, err
	}

	return workspaces, nil
}
