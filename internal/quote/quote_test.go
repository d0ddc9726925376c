package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRating(t *testing.T) {
	tests := []struct {
		name  string
		stars int
		want  bool
	}{
		{"unrated", 0, true},
		{"minimum rated", 1, true},
		{"maximum", 5, true},
		{"above maximum", 6, false},
		{"negative", -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidRating(tt.stars))
		})
	}
}

func TestClampRating(t *testing.T) {
	assert.Equal(t, 0, ClampRating(-3))
	assert.Equal(t, 5, ClampRating(99))
	assert.Equal(t, 3, ClampRating(3))
}

func TestQuote_Validate(t *testing.T) {
	t.Run("valid quote", func(t *testing.T) {
		q := Quote{Text: "Be water.", Author: "Bruce Lee", Category: "Wisdom"}
		assert.NoError(t, q.Validate())
	})

	t.Run("empty text", func(t *testing.T) {
		q := Quote{Text: "   ", Author: "Someone"}
		assert.Error(t, q.Validate())
	})

	t.Run("rating out of range", func(t *testing.T) {
		q := Quote{Text: "ok", Rating: 6}
		assert.Error(t, q.Validate())
	})
}

func TestQuote_DisplayText(t *testing.T) {
	t.Run("with author", func(t *testing.T) {
		q := Quote{Text: "Be water.", Author: "Bruce Lee"}
		assert.Equal(t, "“Be water.”\n\n— Bruce Lee", q.DisplayText())
	})

	t.Run("without author", func(t *testing.T) {
		q := Quote{Text: "Anonymous wisdom"}
		assert.Equal(t, "“Anonymous wisdom”", q.DisplayText())
	})
}

func TestQuote_Stars(t *testing.T) {
	assert.Equal(t, "☆☆☆☆☆", Quote{}.Stars())
	assert.Equal(t, "★★★☆☆", Quote{Rating: 3}.Stars())
	assert.Equal(t, "★★★★★", Quote{Rating: 5}.Stars())
}

func TestTheme(t *testing.T) {
	assert.True(t, ThemeLight.IsValid())
	assert.True(t, ThemeDark.IsValid())
	assert.False(t, Theme("sepia").IsValid())

	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())

	th, err := ParseTheme("dark")
	assert.NoError(t, err)
	assert.Equal(t, ThemeDark, th)

	_, err = ParseTheme("blue")
	assert.Error(t, err)
}
