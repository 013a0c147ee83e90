package service

import (
	"context"

	"github.com/MKhiriev/fortuna/internal/config"
	"github.com/MKhiriev/fortuna/internal/crypto"
	"github.com/MKhiriev/fortuna/internal/logger"
	"github.com/MKhiriev/fortuna/internal/store"
	"github.com/MKhiriev/fortuna/models"
)

// Services bundles every service the transport layer depends on.
type Services struct {
	AuthService       AuthService
	SessionService    SessionService
	WorkspaceService  WorkspaceService
	ExperimentService ExperimentService
	AppInfoService    AppInfoService
}

// NewServices wires the services over storages. All collaborators are
// passed explicitly; nothing is held in package state.
func NewServices(ctx context.Context, storages *store.Storages, hasher crypto.PasswordHasher, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(ctx, storages, hasher, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:       authService,
		SessionService:    NewSessionService(storages.SessionRepository, cfg.App.SessionTTL, logger),
		WorkspaceService:  NewWorkspaceService(storages.Transactor, storages.WorkspaceRepository, logger),
		ExperimentService: NewExperimentService(storages.ExperimentRepository, hasher, logger),
		AppInfoService:    appInfoService,
	}, nil
}
