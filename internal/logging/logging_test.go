package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitializeWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gotank.log")

	require.NoError(t, Initialize(Config{Level: "info", Format: "json", Output: path}))
	t.Cleanup(InitializeDefault)

	Info("catalog loaded")
	Debug("not written")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"catalog loaded"`)
	assert.NotContains(t, string(data), "not written")
}

func TestInitializeUnknownLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gotank.log")

	require.NoError(t, Initialize(Config{Level: "loud", Format: "json", Output: path}))
	t.Cleanup(InitializeDefault)

	assert.True(t, Logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, Logger.Core().Enabled(zapcore.DebugLevel))
}
