package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quotetray/quotetray/internal/colors"
	"github.com/quotetray/quotetray/internal/config"
	"github.com/quotetray/quotetray/internal/store/sqlite"
)

const (
	// BackendJSON selects the JSON flat-file checkpoint.
	BackendJSON = "json"
	// BackendSQLite selects the SQLite-backed checkpoint.
	BackendSQLite = "sqlite"

	quotesJSONFileName = "quotes.json"
	quotesDBFileName   = "quotes.db"
)

var _ Backend = (*sqlite.Storage)(nil)
var _ Backend = (*JSONBackend)(nil)

// StateDir returns the directory holding quote checkpoints.
func StateDir() string {
	if dir := config.Get("state_dir", ""); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "quotetray")
}

// NewFromConfig creates a checkpoint backend based on configuration.
func NewFromConfig() (Backend, error) {
	config.Load()
	return NewForBackend(config.Get("storage_backend", BackendJSON))
}

// NewForBackend creates a checkpoint backend for the provided backend name.
// Unknown names and sqlite initialization failures fall back to the JSON
// backend with a warning, so the app always starts.
func NewForBackend(backend string) (Backend, error) {
	stateDir := StateDir()
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendJSON:
		return NewJSONBackend(filepath.Join(stateDir, quotesJSONFileName))
	case BackendSQLite:
		sqliteBackend, err := sqlite.New(filepath.Join(stateDir, quotesDBFileName))
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize sqlite backend, falling back to json: %v", err))
			return NewJSONBackend(filepath.Join(stateDir, quotesJSONFileName))
		}
		return sqliteBackend, nil
	default:
		colors.Warning(fmt.Sprintf("unknown storage backend '%s', falling back to json", backend))
		return NewJSONBackend(filepath.Join(stateDir, quotesJSONFileName))
	}
}
