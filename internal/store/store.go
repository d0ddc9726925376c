// Package store owns the in-memory quote collection and its checkpoints.
package store

import (
	"fmt"

	"github.com/quotetray/quotetray/internal/logging"
	"github.com/quotetray/quotetray/internal/quote"
)

// Store is the single source of truth for the quote collection during a
// session. Mutations are staged in memory; the checkpoint file is only
// rewritten by SaveAll.
type Store struct {
	backend Backend
	quotes  []quote.Quote
	nextID  int
	dirty   bool
}

// New creates a store over the given checkpoint backend.
func New(backend Backend) *Store {
	return &Store{
		backend: backend,
		quotes:  []quote.Quote{},
		nextID:  1,
	}
}

// Load reads the checkpoint into memory. On a malformed checkpoint the
// in-memory collection falls back to empty and the error is returned so
// the caller can surface it; the store stays usable either way.
func (s *Store) Load() error {
	quotes, err := s.backend.Load()
	if err != nil {
		s.quotes = []quote.Quote{}
		s.nextID = 1
		s.dirty = false
		logging.Error("quote collection load failed", "file", s.backend.Path(), "op", "load", "error", err)
		return fmt.Errorf("load quotes: %w", err)
	}
	s.quotes = quotes
	for i := range s.quotes {
		s.quotes[i].ID = i + 1
	}
	s.nextID = len(s.quotes) + 1
	s.dirty = false
	return nil
}

// Add appends a new quote with rating 0 and returns its position.
func (s *Store) Add(text, author, category string) (int, error) {
	q := quote.Quote{
		Text:     text,
		Author:   author,
		Category: category,
		Rating:   quote.MinRating,
	}
	if err := q.Validate(); err != nil {
		return 0, fmt.Errorf("add quote: %w", ErrEmptyText)
	}
	q.ID = s.nextID
	s.nextID++
	s.quotes = append(s.quotes, q)
	s.dirty = true
	return len(s.quotes) - 1, nil
}

// Edit overwrites the text, author and category at the given position,
// preserving the existing rating.
func (s *Store) Edit(position int, text, author, category string) error {
	if !s.validPosition(position) {
		return fmt.Errorf("edit quote %d: %w", position, ErrNotFound)
	}
	q := quote.Quote{Text: text, Author: author, Category: category}
	if err := q.Validate(); err != nil {
		return fmt.Errorf("edit quote %d: %w", position, ErrEmptyText)
	}
	s.quotes[position].Text = text
	s.quotes[position].Author = author
	s.quotes[position].Category = category
	s.dirty = true
	return nil
}

// Delete removes the quote at the given position. Positions of later
// entries shift down; callers holding positions must treat them as
// invalidated.
func (s *Store) Delete(position int) error {
	if !s.validPosition(position) {
		return fmt.Errorf("delete quote %d: %w", position, ErrNotFound)
	}
	s.quotes = append(s.quotes[:position], s.quotes[position+1:]...)
	s.dirty = true
	return nil
}

// Rate sets the rating at the given position.
func (s *Store) Rate(position, stars int) error {
	if !quote.ValidRating(stars) {
		return fmt.Errorf("rate quote %d with %d stars: %w", position, stars, ErrRatingOutOfRange)
	}
	if !s.validPosition(position) {
		return fmt.Errorf("rate quote %d: %w", position, ErrNotFound)
	}
	s.quotes[position].Rating = stars
	s.dirty = true
	return nil
}

// SaveAll checkpoints the full in-memory collection. On failure the
// in-memory state is untouched and the on-disk file keeps its last-good
// content.
func (s *Store) SaveAll() error {
	if err := s.backend.SaveAll(s.quotes); err != nil {
		logging.Error("quote collection save failed", "file", s.backend.Path(), "op", "saveAll", "error", err)
		return fmt.Errorf("save quotes: %w", err)
	}
	s.dirty = false
	return nil
}

// Import merges parsed quotes into the collection. When replace is true the
// current collection is discarded first. Ratings are clamped; quotes with
// empty text are rejected wholesale so a bad import never half-applies.
func (s *Store) Import(quotes []quote.Quote, replace bool) (int, error) {
	for _, q := range quotes {
		if err := q.Validate(); err != nil {
			return 0, fmt.Errorf("import: %w", ErrEmptyText)
		}
	}
	if replace {
		s.quotes = []quote.Quote{}
		s.nextID = 1
	}
	for _, q := range quotes {
		q.ID = s.nextID
		q.Rating = quote.ClampRating(q.Rating)
		s.nextID++
		s.quotes = append(s.quotes, q)
	}
	if len(quotes) > 0 || replace {
		s.dirty = true
	}
	return len(quotes), nil
}

// Get returns the quote at the given position.
func (s *Store) Get(position int) (quote.Quote, error) {
	if !s.validPosition(position) {
		return quote.Quote{}, fmt.Errorf("get quote %d: %w", position, ErrNotFound)
	}
	return s.quotes[position], nil
}

// All returns a copy of the full collection in insertion order.
func (s *Store) All() []quote.Quote {
	copied := make([]quote.Quote, len(s.quotes))
	copy(copied, s.quotes)
	return copied
}

// Len returns the collection size.
func (s *Store) Len() int {
	return len(s.quotes)
}

// Dirty reports whether the in-memory collection has unsaved changes.
func (s *Store) Dirty() bool {
	return s.dirty
}

// Close releases the checkpoint backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) validPosition(position int) bool {
	return position >= 0 && position < len(s.quotes)
}
