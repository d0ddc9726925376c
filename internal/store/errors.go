package store

import "errors"

var (
	// ErrNotFound indicates an operation referenced a stale or invalid position.
	ErrNotFound = errors.New("quote not found")
	// ErrEmptyText indicates a quote with no text was submitted.
	ErrEmptyText = errors.New("quote text cannot be empty")
	// ErrRatingOutOfRange indicates a rating outside the [0,5] range.
	ErrRatingOutOfRange = errors.New("rating must be between 0 and 5")
	// ErrMalformedFile indicates the checkpoint file could not be parsed.
	ErrMalformedFile = errors.New("malformed quote file")
)
