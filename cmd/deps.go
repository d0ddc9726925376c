/*
Copyright © 2026 The quotetray authors
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/quotetray/quotetray/internal/colors"
	"github.com/quotetray/quotetray/internal/store"
)

// storeOpener opens the quote store. Commands receive it as a dependency
// so tests can substitute a temp-dir backend.
type storeOpener func() (*store.Store, error)

// openStore opens the configured checkpoint backend and loads the
// collection. A malformed checkpoint is an error here; every subcommand
// using this opener mutates and saves, which would overwrite the file.
func openStore() (*store.Store, error) {
	backend, err := store.NewFromConfig()
	if err != nil {
		return nil, err
	}
	s := store.New(backend)
	if err := s.Load(); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// openBrowseStore opens the store for the interactive browser. A malformed
// checkpoint is reported and the session starts with the empty collection
// the store fell back to; the file is only rewritten if the user saves.
func openBrowseStore() (*store.Store, error) {
	backend, err := store.NewFromConfig()
	if err != nil {
		return nil, err
	}
	s := store.New(backend)
	if err := s.Load(); err != nil {
		colors.Warning(fmt.Sprintf("failed to load quotes, starting with an empty collection: %v", err))
	}
	return s, nil
}

// parseQuoteNumber converts a 1-based display number argument to a store
// position.
func parseQuoteNumber(arg string, total int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid quote number %q", arg)
	}
	if n < 1 || n > total {
		return 0, fmt.Errorf("quote number %d out of range (1-%d)", n, total)
	}
	return n - 1, nil
}
