package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gotank/internal/errors"
)

func TestLoadDefaultsWithoutEnvFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, 5.0, cfg.Server.RateLimit)
	assert.Equal(t, 10, cfg.Server.Burst)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "GOTANK_CATALOG=blueprint.json\nGOTANK_ADDR=:8080\nGOTANK_RATE_BURST=3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	for _, key := range []string{EnvCatalog, EnvAddr, EnvRateBurst} {
		t.Cleanup(func() { os.Unsetenv(key) })
	}

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "blueprint.json", cfg.CatalogPath)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 3, cfg.Server.Burst)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadRejectsBadRateLimit(t *testing.T) {
	t.Setenv(EnvRateLimit, "fast")

	_, err := Load("")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}
