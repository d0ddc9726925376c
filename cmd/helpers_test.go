package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/quotetray/quotetray/internal/store"
)

// testOpener returns a store opener backed by a temp-dir JSON file so
// command runs are isolated and repeatable within a test.
func testOpener(t *testing.T) storeOpener {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quotes.json")
	return func() (*store.Store, error) {
		backend, err := store.NewJSONBackend(path)
		if err != nil {
			return nil, err
		}
		s := store.New(backend)
		if err := s.Load(); err != nil {
			return nil, err
		}
		return s, nil
	}
}

func executeCmd(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func seedStore(t *testing.T, open storeOpener) {
	t.Helper()
	s, err := open()
	require.NoError(t, err)
	for _, q := range []struct {
		text, author, category string
	}{
		{"Stay hungry, stay foolish.", "Steve Jobs", "motivation"},
		{"Talk is cheap. Show me the code.", "Linus Torvalds", "programming"},
		{"Less is more.", "Mies van der Rohe", "design"},
	} {
		_, err := s.Add(q.text, q.author, q.category)
		require.NoError(t, err)
	}
	require.NoError(t, s.SaveAll())
	require.NoError(t, s.Close())
}
