package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotetray/quotetray/internal/codec"
)

const sampleCSV = `text,author,category,rating
"Stay hungry, stay foolish.",Steve Jobs,motivation,5
Less is more.,Mies van der Rohe,design,0
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quotes.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportCmdAppends(t *testing.T) {
	open := testOpener(t)
	seedStore(t, open)
	path := writeCSV(t, sampleCSV)

	out, err := executeCmd(t, NewImportCmd(open), path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 quote(s)")

	s, err := open()
	require.NoError(t, err)
	assert.Equal(t, 5, s.Len())
}

func TestImportCmdReplace(t *testing.T) {
	open := testOpener(t)
	seedStore(t, open)
	path := writeCSV(t, sampleCSV)

	_, err := executeCmd(t, NewImportCmd(open), "--replace", path)
	require.NoError(t, err)

	s, err := open()
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	q, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 5, q.Rating)
}

func TestImportCmdMalformedFileLeavesStoreUntouched(t *testing.T) {
	open := testOpener(t)
	seedStore(t, open)
	path := writeCSV(t, "text,author,category,rating\n,missing text,cat,1\n")

	_, err := executeCmd(t, NewImportCmd(open), path)
	var rowErr *codec.RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 2, rowErr.Line)

	s, err := open()
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
}

func TestImportCmdMissingFile(t *testing.T) {
	open := testOpener(t)

	_, err := executeCmd(t, NewImportCmd(open), filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestExportCmdToStdout(t *testing.T) {
	open := testOpener(t)
	seedStore(t, open)

	out, err := executeCmd(t, NewExportCmd(open))
	require.NoError(t, err)
	assert.Contains(t, out, "text,author,category,rating")
	assert.Contains(t, out, "\"Stay hungry, stay foolish.\",Steve Jobs,motivation,0")
}

func TestExportCmdToFile(t *testing.T) {
	open := testOpener(t)
	seedStore(t, open)
	path := filepath.Join(t.TempDir(), "out.csv")

	out, err := executeCmd(t, NewExportCmd(open), path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 3 quote(s)")

	quotes, err := codec.ImportFile(path)
	require.NoError(t, err)
	assert.Len(t, quotes, 3)
}

func TestExportImportRoundTrip(t *testing.T) {
	open := testOpener(t)
	seedStore(t, open)
	path := filepath.Join(t.TempDir(), "out.csv")

	_, err := executeCmd(t, NewExportCmd(open), path)
	require.NoError(t, err)

	_, err = executeCmd(t, NewImportCmd(open), "--replace", path)
	require.NoError(t, err)

	s, err := open()
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
}
