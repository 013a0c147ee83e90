package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/fortuna/internal/config"
	"github.com/MKhiriev/fortuna/internal/logger"
	"github.com/MKhiriev/fortuna/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: ""}, models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	got := svc.GetAppVersion(context.Background())

	assert.Equal(t, "3.1.4", got.Version)
}

func TestGetAppVersion_BuildInfoWins(t *testing.T) {
	build := models.NewAppBuildInfo("v2.0.0", "2026-01-01", "abc123")
	svc, err := NewAppInfoService(config.App{Version: "dev"}, build, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, models.VersionResponse{Version: "v2.0.0", Date: "2026-01-01", Commit: "abc123"},
		svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_NotAvailableBuildVersionIgnored(t *testing.T) {
	build := models.NewAppBuildInfo("N/A", "N/A", "N/A")
	svc, err := NewAppInfoService(config.App{Version: "0.0.1"}, build, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "0.0.1", svc.GetAppVersion(context.Background()).Version)
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx).Version)
}
