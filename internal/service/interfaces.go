package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/fortuna/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService creates accounts and checks credentials. It has no session
// side effects: callers open sessions through [SessionService].
type AuthService interface {
	Signup(ctx context.Context, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
}

// SessionService issues, resolves, lists and revokes sessions.
type SessionService interface {
	CreateSession(ctx context.Context, user models.User, client *models.ClientInfo) (models.Session, error)
	// GetSession returns nil without error when the token is unknown,
	// revoked, expired or owned by an inactive user.
	GetSession(ctx context.Context, token string) (*models.Session, error)
	// Touch refreshes last-used time. Failures are logged, never returned.
	Touch(ctx context.Context, token string)
	ListActive(ctx context.Context, userID int64) ([]models.SessionInfo, error)
	Revoke(ctx context.Context, userID int64, token string) (bool, error)
}

// WorkspaceService bootstraps workspaces and manages their members.
type WorkspaceService interface {
	CreateWorkspace(ctx context.Context, ownerID int64, name string, personal bool) (models.Workspace, error)
	Members(ctx context.Context, workspaceID int64) ([]models.WorkspaceMember, error)
	Role(ctx context.Context, workspaceID, userID int64) (models.WorkspaceRole, error)
	ListForUser(ctx context.Context, userID int64) ([]models.Workspace, error)
	AddMember(ctx context.Context, actorID, workspaceID, userID int64, role models.Role) error
	RemoveMember(ctx context.Context, actorID, workspaceID, userID int64) error
}

// ExperimentService manages experiments and their outcomes.
type ExperimentService interface {
	CreateExperiment(ctx context.Context, workspaceID int64, name, description string) (models.CreatedExperiment, error)
	AddOutcome(ctx context.Context, experimentID int64, value json.RawMessage, weight float64, description string) (models.Outcome, error)
	ListExperiments(ctx context.Context, workspaceID int64, page int) (models.ExperimentPage, error)
	GetExperiment(ctx context.Context, experimentID int64) (*models.Experiment, error)
	// ExperimentWorkspace returns the owning workspace or [ErrNotFound].
	ExperimentWorkspace(ctx context.Context, experimentID int64) (int64, error)
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
