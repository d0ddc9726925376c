package quote

import (
	"sort"
	"strings"
)

// CategoryAll is the category selector that matches every quote.
// An empty category selector behaves the same way.
const CategoryAll = "all"

// Filter holds filter criteria for quotes. Category and keyword compose
// with logical AND.
type Filter struct {
	// Category filters quotes by exact category match.
	// Empty string or "all" means no filter.
	Category string

	// Keyword filters quotes by keyword match against text and author.
	// Empty string means no filter.
	Keyword string
}

// IsEmpty returns true if no criteria are set.
func (f Filter) IsEmpty() bool {
	return f.MatchesAllCategories() && f.Keyword == ""
}

// MatchesAllCategories reports whether the category selector is a wildcard.
func (f Filter) MatchesAllCategories() bool {
	return f.Category == "" || strings.EqualFold(f.Category, CategoryAll)
}

// MatchesCategory checks the category criterion alone.
func (f Filter) MatchesCategory(q Quote) bool {
	if f.MatchesAllCategories() {
		return true
	}
	return q.Category == f.Category
}

// KeywordMatcher decides whether a quote matches a keyword query.
// Implementations live in the search package.
type KeywordMatcher interface {
	Match(q Quote, query string) bool
}

// Matches checks both criteria against a single quote. The keyword
// criterion is delegated to the matcher; a nil matcher disables keyword
// filtering.
func (f Filter) Matches(q Quote, matcher KeywordMatcher) bool {
	if !f.MatchesCategory(q) {
		return false
	}
	if f.Keyword != "" && matcher != nil && !matcher.Match(q, f.Keyword) {
		return false
	}
	return true
}

// Apply returns the order-preserving subset of quotes matching the filter.
func Apply(quotes []Quote, f Filter, matcher KeywordMatcher) []Quote {
	filtered := make([]Quote, 0, len(quotes))
	for _, q := range quotes {
		if f.Matches(q, matcher) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// CategoryNames returns the sorted distinct categories present in quotes.
func CategoryNames(quotes []Quote) []string {
	return distinct(quotes, func(q Quote) string { return q.Category })
}

// AuthorNames returns the sorted distinct authors present in quotes.
func AuthorNames(quotes []Quote) []string {
	return distinct(quotes, func(q Quote) string { return q.Author })
}

func distinct(quotes []Quote, field func(Quote) string) []string {
	seen := make(map[string]bool, len(quotes))
	names := make([]string, 0, len(quotes))
	for _, q := range quotes {
		v := field(q)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		names = append(names, v)
	}
	sort.Strings(names)
	return names
}
