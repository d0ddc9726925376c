package settings

import (
	"os"
	"path/filepath"

	"github.com/quotetray/quotetray/internal/config"
)

const settingsFilename = "settings.json"

// Path returns the filesystem path for the settings file.
// It respects the optional settings_path override.
func Path() string {
	if override := config.Get("settings_path", ""); override != "" {
		return override
	}
	return filepath.Join(resolveConfigDir(), settingsFilename)
}

// resolveConfigDir returns the configured quotetray config directory,
// falling back to the XDG default if needed.
func resolveConfigDir() string {
	configDir := config.Get("config_dir", "")
	if configDir != "" {
		return configDir
	}
	home, _ := os.UserHomeDir()
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		xdgConfigHome = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgConfigHome, "quotetray")
}
