package store

import "github.com/quotetray/quotetray/internal/quote"

// Backend is a checkpoint target for the in-memory collection.
// The in-memory collection is authoritative during a session; a backend
// only reads a point-in-time snapshot at startup and overwrites it on save.
type Backend interface {
	// Load reads the persisted collection. A missing checkpoint yields an
	// empty collection, a malformed one an error.
	Load() ([]quote.Quote, error)

	// SaveAll atomically replaces the persisted collection.
	SaveAll(quotes []quote.Quote) error

	// Path returns the checkpoint location for diagnostics.
	Path() string

	// Close releases backend resources.
	Close() error
}
