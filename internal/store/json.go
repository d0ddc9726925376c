package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quotetray/quotetray/internal/quote"
)

// JSONBackend checkpoints the collection as a JSON array of quote objects.
type JSONBackend struct {
	path string
}

// NewJSONBackend creates a JSON file backend at the provided path.
func NewJSONBackend(path string) (*JSONBackend, error) {
	if path == "" {
		return nil, fmt.Errorf("json backend: path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("json backend: create state directory: %w", err)
	}
	return &JSONBackend{path: path}, nil
}

// Load reads the quote file. A missing file yields an empty collection;
// the file itself is created on the first save.
func (b *JSONBackend) Load() ([]quote.Quote, error) {
	data, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		return []quote.Quote{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", b.path, err)
	}

	var quotes []quote.Quote
	if err := json.Unmarshal(data, &quotes); err != nil {
		return nil, fmt.Errorf("parse %s: %w: %v", b.path, ErrMalformedFile, err)
	}
	for i := range quotes {
		quotes[i].Rating = quote.ClampRating(quotes[i].Rating)
	}
	return quotes, nil
}

// SaveAll serializes the full collection, replacing the file atomically
// via write-then-rename so a failed write never corrupts the last-good
// checkpoint.
func (b *JSONBackend) SaveAll(quotes []quote.Quote) error {
	if quotes == nil {
		quotes = []quote.Quote{}
	}
	data, err := json.MarshalIndent(quotes, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal quotes: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(b.path), ".quotes-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, b.path); err != nil {
		return fmt.Errorf("replace %s: %w", b.path, err)
	}
	return nil
}

// Path returns the quote file location.
func (b *JSONBackend) Path() string {
	return b.path
}

// Close is a no-op for the file backend.
func (b *JSONBackend) Close() error {
	return nil
}
