package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Scan.ConnectTimeoutSeconds)
	assert.Equal(t, 60, cfg.Scan.TableTimeoutSeconds)
	assert.Equal(t, 300, cfg.Scan.MaxScanTimeSeconds)
	assert.Equal(t, 3, cfg.Scan.MaxWorkers)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SCAN_TABLE_TIMEOUT_SECONDS", "30")
	t.Setenv("SCAN_MAX_WORKERS", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Scan.TableTimeout())
	assert.Equal(t, 2, cfg.Scan.MaxWorkers)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	t.Setenv("SCAN_MAX_WORKERS", "0")

	_, err := Load()
	assert.Error(t, err)
}
