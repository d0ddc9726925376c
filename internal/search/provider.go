// Package search provides a unified search abstraction for filtering quotes.
// It supports multiple search strategies (substring, regex) through a common
// Provider interface, eliminating duplicate search logic between CLI and TUI.
package search

import (
	"github.com/quotetray/quotetray/internal/quote"
)

// Search field names.
const (
	FieldText     = "text"
	FieldAuthor   = "author"
	FieldCategory = "category"
)

// Provider defines the interface for search providers.
// Implementations can use different strategies (substring, regex, etc.)
// to match quotes against search queries.
type Provider interface {
	// Match returns true if the quote matches the search query.
	Match(q quote.Quote, query string) bool

	// Name returns the provider name for identification and debugging.
	Name() string
}

// quote.KeywordMatcher is satisfied by every Provider.
var _ quote.KeywordMatcher = Provider(nil)

// Options holds configuration options for creating search providers.
type Options struct {
	CaseInsensitive bool     // If true, searches ignore case sensitivity
	Fields          []string // Fields to search in (default: text and author)
}

// DefaultOptions returns the default search options.
func DefaultOptions() Options {
	return Options{
		CaseInsensitive: true,
		Fields:          []string{FieldText, FieldAuthor},
	}
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

// WithFields sets the fields to search in.
// Valid fields: "text", "author", "category".
func WithFields(fields []string) Option {
	return func(o *Options) {
		o.Fields = fields
	}
}

// applyOptions applies the given options to the options struct.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// fieldValue resolves a configured field name to its value on the quote.
func fieldValue(q quote.Quote, field string) string {
	switch field {
	case FieldText:
		return q.Text
	case FieldAuthor:
		return q.Author
	case FieldCategory:
		return q.Category
	default:
		return ""
	}
}

// NewProvider creates a provider by name, falling back to substring for
// unknown names.
func NewProvider(name string, opts ...Option) Provider {
	switch name {
	case "regex":
		return NewRegexProvider(opts...)
	default:
		return NewSubstringProvider(opts...)
	}
}
