package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotetray/quotetray/internal/config"
	"github.com/quotetray/quotetray/internal/quote"
)

func setupDirs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("QUOTETRAY_CONFIG_DIR", filepath.Join(dir, "config"))
	t.Setenv("QUOTETRAY_STATE_DIR", filepath.Join(dir, "state"))
	t.Setenv("QUOTETRAY_SETTINGS_PATH", "")
	config.Load()
	return dir
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	setupDirs(t)

	s := Load()
	assert.Equal(t, quote.ThemeLight, s.Theme)
	assert.Equal(t, "", s.LastCategory)

	// Defaults are not written to disk until the next Save.
	_, err := os.Stat(Path())
	assert.True(t, os.IsNotExist(err))
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	setupDirs(t)

	saved := &Settings{Theme: quote.ThemeDark, LastCategory: "Wisdom"}
	require.NoError(t, Save(saved))

	loaded := Load()
	assert.Equal(t, saved, loaded)
}

func TestLoadMalformedFileReturnsDefaults(t *testing.T) {
	setupDirs(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(Path()), 0755))
	require.NoError(t, os.WriteFile(Path(), []byte("{not json"), 0644))

	s := Load()
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadInvalidThemeReturnsDefaults(t *testing.T) {
	setupDirs(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(Path()), 0755))
	require.NoError(t, os.WriteFile(Path(), []byte(`{"theme":"sepia","lastCategory":"x"}`), 0644))

	s := Load()
	assert.Equal(t, DefaultSettings(), s)
}

func TestSaveRejectsInvalidTheme(t *testing.T) {
	setupDirs(t)

	err := Save(&Settings{Theme: quote.Theme("sepia")})
	assert.Error(t, err)

	err = Save(nil)
	assert.Error(t, err)
}

func TestSaveWritesStableJSONKeys(t *testing.T) {
	setupDirs(t)

	require.NoError(t, Save(&Settings{Theme: quote.ThemeLight, LastCategory: "Humor"}))

	data, err := os.ReadFile(Path())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "light", raw["theme"])
	assert.Equal(t, "Humor", raw["lastCategory"])
}

func TestPathOverride(t *testing.T) {
	dir := setupDirs(t)
	override := filepath.Join(dir, "elsewhere", "prefs.json")
	t.Setenv("QUOTETRAY_SETTINGS_PATH", override)
	config.Load()

	assert.Equal(t, override, Path())

	require.NoError(t, Save(DefaultSettings()))
	_, err := os.Stat(override)
	assert.NoError(t, err)
}
