package service

import (
	"context"

	"github.com/MKhiriev/fortuna/internal/config"
	"github.com/MKhiriev/fortuna/internal/logger"
	"github.com/MKhiriev/fortuna/models"
)

type appInfoService struct {
	appVersion string
	buildInfo  models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService returns [ErrVersionIsNotSpecified] when cfg carries no version.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		buildInfo:  buildInfo,
		logger:     logger,
	}, nil
}

// GetAppVersion prefers the linker-injected build version over the
// configured one.
func (s *appInfoService) GetAppVersion(ctx context.Context) models.VersionResponse {
	version := s.appVersion
	if v := s.buildInfo.BuildVersion(); v != "" && v != "N/A" {
		version = v
	}

	return models.VersionResponse{
		Version: version,
		Date:    s.buildInfo.BuildDate(),
		Commit:  s.buildInfo.BuildCommit(),
	}
}
