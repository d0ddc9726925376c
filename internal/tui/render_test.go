package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewShowsCurrentQuote(t *testing.T) {
	m := setupModel(t)

	out := m.View()
	assert.Contains(t, out, "quotetray")
	assert.Contains(t, out, "1/3")
	assert.Contains(t, out, "Stay hungry, stay foolish.")
	assert.Contains(t, out, "Steve Jobs")
	assert.Contains(t, out, "#motivation")
}

func TestViewEmptyCollection(t *testing.T) {
	m := setupModel(t)
	for m.store.Len() > 0 {
		require.NoError(t, m.store.Delete(0))
	}
	m.browser.SetFilter("", "")

	assert.Contains(t, m.View(), "No quotes yet")
}

func TestViewEmptyFilterResult(t *testing.T) {
	m := setupModel(t)
	m.applyFilter("history", "")

	out := m.View()
	assert.Contains(t, out, "No quotes match")
	assert.Contains(t, out, "category: history")
}

func TestViewShowsStarsWhenRated(t *testing.T) {
	m := setupModel(t)
	press(m, "3")

	assert.Contains(t, m.View(), "★★★☆☆")
}

func TestViewFormMode(t *testing.T) {
	m := setupModel(t)
	press(m, "a")

	out := m.View()
	assert.Contains(t, out, "Add quote")
	assert.Contains(t, out, "Text")
	assert.Contains(t, out, "Author")
	assert.Contains(t, out, "Category")
}

func TestViewConfirmDelete(t *testing.T) {
	m := setupModel(t)
	press(m, "d")

	assert.Contains(t, m.View(), "Delete this quote? (y/n)")
}

func TestViewStatsOverlay(t *testing.T) {
	m := setupModel(t)
	press(m, "s")

	out := m.View()
	assert.Contains(t, out, "Collection stats")
	assert.Contains(t, out, "Quotes:     3")
	assert.Contains(t, out, "Categories: 3")
}

func TestViewStatusMessage(t *testing.T) {
	m := setupModel(t)
	press(m, "c")

	assert.Contains(t, m.View(), "copied to clipboard")
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, "one two\nthree", wrapText("one two three", 8))
	assert.Equal(t, "short", wrapText("short", 40))
	assert.Equal(t, "", wrapText("", 10))
}
