// Package codec converts between quote collections and delimited text for
// interchange with other tools.
package codec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/quotetray/quotetray/internal/quote"
)

// Header is the deterministic column order of the delimited format.
var Header = []string{"text", "author", "category", "rating"}

// RowError reports a malformed row, naming the offending line.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Export writes quotes as CSV with a header row. Embedded delimiters and
// newlines are quoted per RFC 4180 by the csv writer.
func Export(w io.Writer, quotes []quote.Quote) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, q := range quotes {
		record := []string{q.Text, q.Author, q.Category, strconv.Itoa(q.Rating)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Import parses CSV records into quotes. Malformed rows abort the import
// with a RowError naming the offending line; nothing is partially applied.
// An absent or non-numeric rating yields 0, an out-of-range numeric rating
// is clamped into [0,5].
func Import(r io.Reader) ([]quote.Quote, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &RowError{Line: 1, Err: errors.New("missing header row")}
	}
	if err != nil {
		return nil, rowError(err, 1)
	}
	if !isHeader(header) {
		return nil, &RowError{Line: 1, Err: fmt.Errorf("unexpected header %q, want %q", strings.Join(header, ","), strings.Join(Header, ","))}
	}

	var quotes []quote.Quote
	rows := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, rowError(err, rows+2)
		}
		rows++
		line, _ := cr.FieldPos(0)
		if len(record) < 3 {
			return nil, &RowError{Line: line, Err: fmt.Errorf("expected at least 3 fields, got %d", len(record))}
		}
		q := quote.Quote{
			Text:     strings.TrimSpace(record[0]),
			Author:   strings.TrimSpace(record[1]),
			Category: strings.TrimSpace(record[2]),
		}
		if q.Text == "" {
			return nil, &RowError{Line: line, Err: errors.New("quote text cannot be empty")}
		}
		if len(record) > 3 {
			if stars, err := strconv.Atoi(strings.TrimSpace(record[3])); err == nil {
				q.Rating = quote.ClampRating(stars)
			}
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

// ExportFile exports quotes to a CSV file.
func ExportFile(path string, quotes []quote.Quote) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := Export(f, quotes); err != nil {
		return fmt.Errorf("export to %s: %w", path, err)
	}
	return f.Close()
}

// ImportFile imports quotes from a CSV file.
func ImportFile(path string) ([]quote.Quote, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Import(f)
}

// isHeader checks the header row case-insensitively. The original tool wrote
// capitalized column names, so those are accepted too.
func isHeader(record []string) bool {
	if len(record) != len(Header) {
		return false
	}
	for i, field := range record {
		if !strings.EqualFold(strings.TrimSpace(field), Header[i]) {
			return false
		}
	}
	return true
}

// rowError wraps a csv parse error, preferring the parser's own line number.
func rowError(err error, fallbackLine int) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &RowError{Line: parseErr.Line, Err: parseErr.Err}
	}
	return &RowError{Line: fallbackLine, Err: err}
}
