package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotetray/quotetray/internal/config"
)

func TestInitDisabledReturnsNoop(t *testing.T) {
	logger, err := Init(Config{Enabled: false})
	require.NoError(t, err)

	// No-op logger must swallow everything without side effects.
	logger.Error("ignored")
	assert.NoError(t, logger.Shutdown())
}

func TestInitWritesJSONToAppendOnlyFile(t *testing.T) {
	stateDir := t.TempDir()
	t.Setenv("QUOTETRAY_STATE_DIR", stateDir)
	t.Setenv("QUOTETRAY_CONFIG_DIR", filepath.Join(stateDir, "config"))
	config.Load()

	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Level = "warn"

	logger, err := Init(cfg)
	require.NoError(t, err)

	logger.Error("save failed", "file", "quotes.json", "op", "saveAll")
	logger.Info("should be filtered out by level")
	require.NoError(t, logger.Shutdown())

	data, err := os.ReadFile(filepath.Join(stateDir, "logs", LogFileName))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "save failed")
	assert.Contains(t, content, "quotes.json")
	assert.NotContains(t, content, "filtered out")
}

func TestInitAppendsAcrossSessions(t *testing.T) {
	stateDir := t.TempDir()
	t.Setenv("QUOTETRAY_STATE_DIR", stateDir)
	t.Setenv("QUOTETRAY_CONFIG_DIR", filepath.Join(stateDir, "config"))
	config.Load()

	cfg := DefaultConfig()
	cfg.Enabled = true

	first, err := Init(cfg)
	require.NoError(t, err)
	first.Error("first session")
	require.NoError(t, first.Shutdown())

	second, err := Init(cfg)
	require.NoError(t, err)
	second.Error("second session")
	require.NoError(t, second.Shutdown())

	data, err := os.ReadFile(filepath.Join(stateDir, "logs", LogFileName))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "first session")
	assert.Contains(t, content, "second session")
	assert.Equal(t, 2, strings.Count(content, "\n"))
}

func TestWithAddsPersistentFields(t *testing.T) {
	stateDir := t.TempDir()
	t.Setenv("QUOTETRAY_STATE_DIR", stateDir)
	t.Setenv("QUOTETRAY_CONFIG_DIR", filepath.Join(stateDir, "config"))
	config.Load()

	cfg := DefaultConfig()
	cfg.Enabled = true

	logger, err := Init(cfg)
	require.NoError(t, err)

	logger.With("component", "store").Error("boom")
	require.NoError(t, logger.Shutdown())

	data, err := os.ReadFile(filepath.Join(stateDir, "logs", LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "store")
}
