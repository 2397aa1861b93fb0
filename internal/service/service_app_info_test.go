package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("", "2026-10-18", "abc"), logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetAppVersion / GetBuildInfo
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("3.1.4", "", ""), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_VersionWithSpecialChars(t *testing.T) {
	version := "v1.2.3-beta+build.42"
	svc, err := NewAppInfoService(models.NewAppBuildInfo(version, "", ""), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, version, svc.GetAppVersion(context.Background()))
}

func TestGetBuildInfo(t *testing.T) {
	info := models.NewAppBuildInfo("1.0.0", "2026-10-18", "abc123")
	svc, err := NewAppInfoService(info, logger.Nop())
	require.NoError(t, err)

	got := svc.GetBuildInfo(context.Background())
	assert.Equal(t, "2026-10-18", got.BuildDate())
	assert.Equal(t, "abc123", got.BuildCommit())
}
