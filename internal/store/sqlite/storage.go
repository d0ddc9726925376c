// Package sqlite provides a SQLite-backed checkpoint for the quote collection.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/quotetray/quotetray/internal/quote"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS quotes (
	position INTEGER PRIMARY KEY,
	text     TEXT NOT NULL,
	author   TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	rating   INTEGER NOT NULL DEFAULT 0 CHECK (rating BETWEEN 0 AND 5)
);
`

// Storage implements the store.Backend interface using SQLite.
// The whole collection is replaced in one transaction on save, matching the
// checkpoint semantics of the flat-file backend.
type Storage struct {
	db   *sql.DB
	path string
}

// New creates a SQLite-backed checkpoint at the provided path.
func New(dbPath string) (*Storage, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("sqlite storage: db path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite storage: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: open db: %w", err)
	}

	storage := &Storage{db: db, path: dbPath}
	if err := storage.init(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return storage, nil
}

func (s *Storage) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("sqlite storage: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("sqlite storage: create schema: %w", err)
	}
	return nil
}

// Load reads the persisted collection in position order.
func (s *Storage) Load() ([]quote.Quote, error) {
	rows, err := s.db.Query("SELECT text, author, category, rating FROM quotes ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: load quotes: %w", err)
	}
	defer rows.Close()

	quotes := []quote.Quote{}
	for rows.Next() {
		var q quote.Quote
		if err := rows.Scan(&q.Text, &q.Author, &q.Category, &q.Rating); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan quote: %w", err)
		}
		q.Rating = quote.ClampRating(q.Rating)
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: read quotes: %w", err)
	}
	return quotes, nil
}

// SaveAll replaces the persisted collection in a single transaction.
func (s *Storage) SaveAll(quotes []quote.Quote) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("sqlite storage: begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM quotes"); err != nil {
		return fmt.Errorf("sqlite storage: clear quotes: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO quotes (position, text, author, category, rating) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("sqlite storage: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, q := range quotes {
		if _, err := stmt.Exec(i, q.Text, q.Author, q.Category, q.Rating); err != nil {
			return fmt.Errorf("sqlite storage: insert quote %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite storage: commit save: %w", err)
	}
	return nil
}

// Path returns the database file location.
func (s *Storage) Path() string {
	return s.path
}

// Close closes the underlying SQLite connection.
func (s *Storage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
