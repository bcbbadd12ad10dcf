package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nascli/internal/shared/testutil"
)

func TestHealthCheck(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	hs := NewHealthService("v1.0.0", "2026-08-26", nil, nil, logger)

	status := hs.HealthCheck(context.Background())
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "v1.0.0", status.Version)
	assert.NotEmpty(t, status.Runtime["go_version"])
}

func TestReadinessCheckDatasetReady(t *testing.T) {
	svc, _ := newTestService(t, testCSV, false)
	logger, _ := testutil.NewTestLogger(t)
	hs := NewHealthService("v1.0.0", "", svc.paths, svc, logger)

	status := hs.ReadinessCheck(context.Background())
	assert.Equal(t, "ready", status.Status)

	dataset, ok := status.Services["dataset"].(ServiceHealth)
	require.True(t, ok)
	assert.Equal(t, "ready", dataset.Status)
}

func TestReadinessCheckDatasetMissing(t *testing.T) {
	svc, _ := newTestService(t, "", false)
	logger, _ := testutil.NewTestLogger(t)
	hs := NewHealthService("v1.0.0", "", svc.paths, svc, logger)

	status := hs.ReadinessCheck(context.Background())
	assert.Equal(t, "not_ready", status.Status)

	dataset, ok := status.Services["dataset"].(ServiceHealth)
	require.True(t, ok)
	assert.Equal(t, "not_ready", dataset.Status)
}

func TestLivenessCheck(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	hs := NewHealthService("v1.0.0", "", nil, nil, logger)

	status := hs.LivenessCheck(context.Background())
	assert.Equal(t, "alive", status.Status)
}
