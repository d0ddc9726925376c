// Package quote provides the domain layer for quotations.
// It contains business logic, value objects, and domain services.
package quote

import (
	"fmt"
	"strings"
)

// Rating bounds. A rating of MinRating means "unrated".
const (
	MinRating = 0
	MaxRating = 5
)

// Quote represents a single saved quotation.
//
// The ID is a session-stable surrogate key assigned by the store; it is not
// persisted. Identity on disk is the position in the collection.
type Quote struct {
	ID       int    `json:"-"`
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Rating   int    `json:"rating"`
}

// Theme represents a UI color theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// IsValid checks if the theme is valid.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark:
		return true
	default:
		return false
	}
}

// String returns the string representation of the theme.
func (t Theme) String() string {
	return string(t)
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme parses a string into a Theme.
func ParseTheme(s string) (Theme, error) {
	th := Theme(s)
	if !th.IsValid() {
		return "", fmt.Errorf("invalid theme: %s", s)
	}
	return th, nil
}

// ValidRating reports whether stars is within the allowed [0,5] range.
func ValidRating(stars int) bool {
	return stars >= MinRating && stars <= MaxRating
}

// ClampRating forces stars into the allowed [0,5] range.
func ClampRating(stars int) int {
	if stars < MinRating {
		return MinRating
	}
	if stars > MaxRating {
		return MaxRating
	}
	return stars
}

// IsRated reports whether the quote has a non-zero rating.
func (q Quote) IsRated() bool {
	return q.Rating > MinRating
}

// Validate validates the quote and returns an error if invalid.
func (q Quote) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("quote text cannot be empty")
	}
	if !ValidRating(q.Rating) {
		return fmt.Errorf("rating %d out of range [%d,%d]", q.Rating, MinRating, MaxRating)
	}
	return nil
}

// DisplayText returns the quote formatted for display and clipboard use.
func (q Quote) DisplayText() string {
	if q.Author == "" {
		return fmt.Sprintf("“%s”", q.Text)
	}
	return fmt.Sprintf("“%s”\n\n— %s", q.Text, q.Author)
}

// Stars renders the rating as filled and empty star glyphs.
func (q Quote) Stars() string {
	return strings.Repeat("★", q.Rating) + strings.Repeat("☆", MaxRating-q.Rating)
}
