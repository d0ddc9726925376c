// Package browser drives quote presentation: it owns the current filtered
// view and the display cursor, and routes collection mutations so the view
// never goes stale.
package browser

import (
	"math/rand"
	"time"

	"github.com/quotetray/quotetray/internal/clipboard"
	"github.com/quotetray/quotetray/internal/quote"
	"github.com/quotetray/quotetray/internal/store"
)

// NoSelection is the cursor value when the filtered view is empty.
const NoSelection = -1

// Browser is the presentation controller. All methods are synchronous and
// run on the UI event loop; there is exactly one reader and writer.
type Browser struct {
	store   *store.Store
	matcher quote.KeywordMatcher
	clip    clipboard.Writer
	rng     *rand.Rand

	filter  quote.Filter
	view    []int // positions into the store collection, insertion order
	current int   // index into view, or NoSelection
}

// New creates a browser over the given store. The matcher handles keyword
// queries; rng drives Random and may be fixed-seeded in tests. A nil rng is
// seeded from the clock, a nil clip discards copies.
func New(s *store.Store, matcher quote.KeywordMatcher, clip clipboard.Writer, rng *rand.Rand) *Browser {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if clip == nil {
		clip = clipboard.NullWriter{}
	}
	b := &Browser{
		store:   s,
		matcher: matcher,
		clip:    clip,
		rng:     rng,
		current: NoSelection,
	}
	b.refresh()
	return b
}

// SetFilter replaces the active criteria, recomputes the view and resets
// the cursor to the first match (or no selection when the view is empty).
func (b *Browser) SetFilter(category, keyword string) {
	b.filter = quote.Filter{Category: category, Keyword: keyword}
	b.refresh()
	if len(b.view) > 0 {
		b.current = 0
	} else {
		b.current = NoSelection
	}
}

// Filter returns the active criteria.
func (b *Browser) Filter() quote.Filter {
	return b.filter
}

// refresh recomputes the view from the store. The cursor is clamped so a
// shrunken view never leaves it out of bounds.
func (b *Browser) refresh() {
	quotes := b.store.All()
	b.view = b.view[:0]
	for pos, q := range quotes {
		if b.filter.Matches(q, b.matcher) {
			b.view = append(b.view, pos)
		}
	}
	switch {
	case len(b.view) == 0:
		b.current = NoSelection
	case b.current == NoSelection:
		b.current = 0
	case b.current >= len(b.view):
		b.current = len(b.view) - 1
	}
}

// ViewLen returns the size of the current filtered view.
func (b *Browser) ViewLen() int {
	return len(b.view)
}

// View returns the quotes in the current filtered view, insertion order.
func (b *Browser) View() []quote.Quote {
	quotes := make([]quote.Quote, 0, len(b.view))
	for _, pos := range b.view {
		if q, err := b.store.Get(pos); err == nil {
			quotes = append(quotes, q)
		}
	}
	return quotes
}

// Current returns the quote under the cursor.
func (b *Browser) Current() (quote.Quote, bool) {
	if b.current == NoSelection {
		return quote.Quote{}, false
	}
	q, err := b.store.Get(b.view[b.current])
	if err != nil {
		return quote.Quote{}, false
	}
	return q, true
}

// CurrentIndex returns the cursor position within the view, or NoSelection.
func (b *Browser) CurrentIndex() int {
	return b.current
}

// Select moves the cursor to the given view index if it is valid.
func (b *Browser) Select(viewIndex int) bool {
	if viewIndex < 0 || viewIndex >= len(b.view) {
		return false
	}
	b.current = viewIndex
	return true
}

// Next advances the cursor, wrapping around at the end for continuous
// browsing.
func (b *Browser) Next() {
	if len(b.view) == 0 {
		return
	}
	b.current = (b.current + 1) % len(b.view)
}

// Previous retreats the cursor, wrapping around at the start.
func (b *Browser) Previous() {
	if len(b.view) == 0 {
		return
	}
	b.current = (b.current - 1 + len(b.view)) % len(b.view)
}

// Random moves the cursor to a uniformly random view index. When the view
// has more than one element the current index is excluded so the action is
// never a visible no-op.
func (b *Browser) Random() {
	n := len(b.view)
	switch n {
	case 0:
		return
	case 1:
		b.current = 0
	default:
		next := b.rng.Intn(n - 1)
		if next >= b.current {
			next++
		}
		b.current = next
	}
}

// CopyCurrent hands the current quote's display text to the clipboard.
// It is a side effect only; browser state does not change.
func (b *Browser) CopyCurrent() error {
	q, ok := b.Current()
	if !ok {
		return store.ErrNotFound
	}
	return b.clip.Write(q.DisplayText())
}

// Add appends a quote through the store and recomputes the view.
func (b *Browser) Add(text, author, category string) (int, error) {
	pos, err := b.store.Add(text, author, category)
	if err != nil {
		return 0, err
	}
	b.refresh()
	return pos, nil
}

// EditCurrent rewrites the quote under the cursor, preserving its rating.
func (b *Browser) EditCurrent(text, author, category string) error {
	if b.current == NoSelection {
		return store.ErrNotFound
	}
	if err := b.store.Edit(b.view[b.current], text, author, category); err != nil {
		return err
	}
	b.refresh()
	return nil
}

// DeleteCurrent removes the quote under the cursor.
func (b *Browser) DeleteCurrent() error {
	if b.current == NoSelection {
		return store.ErrNotFound
	}
	if err := b.store.Delete(b.view[b.current]); err != nil {
		return err
	}
	b.refresh()
	return nil
}

// RateCurrent rates the quote under the cursor.
func (b *Browser) RateCurrent(stars int) error {
	if b.current == NoSelection {
		return store.ErrNotFound
	}
	if err := b.store.Rate(b.view[b.current], stars); err != nil {
		return err
	}
	b.refresh()
	return nil
}

// Import merges quotes through the store and recomputes the view.
func (b *Browser) Import(quotes []quote.Quote, replace bool) (int, error) {
	n, err := b.store.Import(quotes, replace)
	if err != nil {
		return 0, err
	}
	b.refresh()
	return n, nil
}
