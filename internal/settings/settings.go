// Package settings provides user preference persistence.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quotetray/quotetray/internal/colors"
	"github.com/quotetray/quotetray/internal/config"
	"github.com/quotetray/quotetray/internal/logging"
	"github.com/quotetray/quotetray/internal/quote"
)

// Settings holds user preferences persisted to disk.
//
// JSON Schema:
//
//	{
//	  "theme": "light",
//	  "lastCategory": ""
//	}
//
// Settings are stored at ~/.config/quotetray/settings.json
type Settings struct {
	// Theme selects the UI palette: "light" or "dark".
	Theme quote.Theme `json:"theme"`

	// LastCategory is the category filter active when the app last ran.
	// Empty string means no filter.
	LastCategory string `json:"lastCategory"`
}

// DefaultSettings returns settings with all default values.
func DefaultSettings() *Settings {
	return &Settings{
		Theme:        quote.ThemeLight,
		LastCategory: "",
	}
}

// Load reads settings from the config directory.
// A missing or unreadable file yields defaults; this is never fatal, the
// condition is logged and the next Save will rewrite the file.
func Load() *Settings {
	s, err := load()
	if err != nil {
		colors.Warning(fmt.Sprintf("using default settings: %v", err))
		logging.Warn("settings load failed", "file", Path(), "error", err)
		return DefaultSettings()
	}
	return s
}

// load reads and validates the settings file, surfacing every failure.
func load() (*Settings, error) {
	path := Path()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultSettings(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if err := validate(settings); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return settings, nil
}

// Save writes settings to the config directory.
// Creates the config directory if it doesn't exist.
func Save(settings *Settings) error {
	if err := validate(settings); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), config.FileModeDir); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, config.FileModeFile); err != nil {
		logging.Error("settings save failed", "file", path, "error", err)
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// validate checks settings invariants before use or persistence.
func validate(settings *Settings) error {
	if settings == nil {
		return fmt.Errorf("settings cannot be nil")
	}
	if !settings.Theme.IsValid() {
		return fmt.Errorf("invalid theme: %s", settings.Theme)
	}
	return nil
}
