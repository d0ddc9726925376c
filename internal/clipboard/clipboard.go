// Package clipboard wraps the system clipboard behind a small interface so
// the browser can be tested without a display.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Writer receives display text on a copy action.
type Writer interface {
	Write(text string) error
}

// SystemWriter writes to the operating system clipboard.
type SystemWriter struct{}

// NewSystemWriter creates a clipboard writer backed by the OS clipboard.
func NewSystemWriter() *SystemWriter {
	return &SystemWriter{}
}

// Write copies text to the system clipboard.
func (w *SystemWriter) Write(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// NullWriter discards writes; used when no clipboard is available.
type NullWriter struct{}

func (NullWriter) Write(string) error { return nil }
