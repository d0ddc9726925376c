package codec

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotetray/quotetray/internal/quote"
)

func TestExportWritesHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	quotes := []quote.Quote{
		{Text: "Be water.", Author: "Bruce Lee", Category: "Wisdom", Rating: 5},
		{Text: "I love deadlines.", Author: "Douglas Adams", Category: "Humor", Rating: 0},
	}

	require.NoError(t, Export(&buf, quotes))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "text,author,category,rating", lines[0])
	assert.Equal(t, "Be water.,Bruce Lee,Wisdom,5", lines[1])
	assert.Equal(t, "I love deadlines.,Douglas Adams,Humor,0", lines[2])
}

func TestRoundTripWithEmbeddedDelimiterAndNewline(t *testing.T) {
	original := []quote.Quote{
		{Text: "First line,\nsecond line", Author: "A, B \"and\" C", Category: "Multi,line", Rating: 3},
		{Text: "plain", Author: "", Category: "", Rating: 0},
	}

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, original))

	parsed, err := Import(&buf)
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestImportRejectsMissingHeader(t *testing.T) {
	_, err := Import(strings.NewReader(""))

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 1, rowErr.Line)
}

func TestImportRejectsWrongHeader(t *testing.T) {
	_, err := Import(strings.NewReader("foo,bar\n"))

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 1, rowErr.Line)
}

func TestImportAcceptsLegacyCapitalizedHeader(t *testing.T) {
	input := "Quote,Author,Category,Rating\n"
	// The original tool exported a "Quote" column; only the canonical header
	// names are accepted for the first column.
	_, err := Import(strings.NewReader(input))
	assert.Error(t, err)

	input = "Text,Author,Category,Rating\nhello,me,Misc,2\n"
	quotes, err := Import(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, 2, quotes[0].Rating)
}

func TestImportNamesOffendingLine(t *testing.T) {
	input := "text,author,category,rating\nok,me,Misc,1\n\"unterminated,me,Misc,2\n"
	_, err := Import(strings.NewReader(input))

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 3, rowErr.Line)
}

func TestImportRejectsEmptyText(t *testing.T) {
	input := "text,author,category,rating\n,me,Misc,1\n"
	_, err := Import(strings.NewReader(input))

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 2, rowErr.Line)
}

func TestImportRatingHandling(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want int
	}{
		{"valid rating", "q,a,c,4", 4},
		{"missing rating field", "q,a,c", 0},
		{"empty rating", "q,a,c,", 0},
		{"non-numeric rating", "q,a,c,five", 0},
		{"clamped above", "q,a,c,9", 5},
		{"clamped below", "q,a,c,-2", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "text,author,category,rating\n" + tt.row + "\n"
			quotes, err := Import(strings.NewReader(input))
			require.NoError(t, err)
			require.Len(t, quotes, 1)
			assert.Equal(t, tt.want, quotes[0].Rating)
		})
	}
}

func TestExportFileAndImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.csv")
	quotes := []quote.Quote{{Text: "hello", Author: "me", Category: "Misc", Rating: 1}}

	require.NoError(t, ExportFile(path, quotes))

	parsed, err := ImportFile(path)
	require.NoError(t, err)
	assert.Equal(t, quotes, parsed)
}

func TestImportFileMissing(t *testing.T) {
	_, err := ImportFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)

	var rowErr *RowError
	assert.False(t, errors.As(err, &rowErr), "missing file is not a format error")
}
