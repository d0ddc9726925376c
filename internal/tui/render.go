package tui

import (
	"fmt"
	"strings"

	"github.com/quotetray/quotetray/internal/errors"
	"github.com/quotetray/quotetray/internal/quote"
	"github.com/quotetray/quotetray/internal/version"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		m.width = defaultViewportWidth
	}
	if m.height == 0 {
		m.height = defaultViewportHeight
	}

	var s strings.Builder
	s.WriteString(m.renderHeader())
	s.WriteString("\n\n")

	switch m.mode {
	case modeForm:
		s.WriteString(m.renderForm())
	case modeConfirmDelete:
		s.WriteString(m.renderQuoteCard())
		s.WriteString("\n\n")
		s.WriteString(m.styles.Label.Render("Delete this quote? (y/n)"))
	case modeStats:
		s.WriteString(m.renderStats())
	case modeHelp:
		s.WriteString(m.renderHelp())
	case modeAbout:
		s.WriteString(m.renderAbout())
	default:
		s.WriteString(m.renderQuoteCard())
	}

	s.WriteString("\n\n")
	s.WriteString(m.renderFooter())
	return s.String()
}

func (m *Model) renderHeader() string {
	title := m.styles.Header.Render("quotetray")

	counter := ""
	if n := m.browser.ViewLen(); n > 0 {
		counter = m.styles.Counter.Render(
			fmt.Sprintf("%d/%d", m.browser.CurrentIndex()+1, n))
	}

	filter := ""
	if f := m.browser.Filter(); !f.IsEmpty() {
		parts := make([]string, 0, 2)
		if f.Category != "" && !f.MatchesAllCategories() {
			parts = append(parts, "category: "+f.Category)
		}
		if f.Keyword != "" {
			parts = append(parts, "keyword: "+f.Keyword)
		}
		if len(parts) > 0 {
			filter = m.styles.Category.Render("[" + strings.Join(parts, ", ") + "]")
		}
	}

	return strings.TrimRight(title+"  "+counter+"  "+filter, " ")
}

func (m *Model) renderQuoteCard() string {
	q, ok := m.browser.Current()
	if !ok {
		if m.store.Len() == 0 {
			return m.styles.Author.Render("No quotes yet. Press 'a' to add one.")
		}
		return m.styles.Author.Render("No quotes match the current filter. Press 'esc' to clear it.")
	}

	var card strings.Builder
	card.WriteString(m.styles.QuoteText.Render(wrapText(q.Text, m.cardWidth())))
	if q.Author != "" {
		card.WriteString("\n\n")
		card.WriteString(m.styles.Author.Render("— " + q.Author))
	}

	meta := make([]string, 0, 2)
	if q.IsRated() {
		meta = append(meta, m.styles.Stars.Render(q.Stars()))
	}
	if q.Category != "" {
		meta = append(meta, m.styles.Category.Render("#"+q.Category))
	}
	if len(meta) > 0 {
		card.WriteString("\n\n")
		card.WriteString(strings.Join(meta, "  "))
	}

	return m.styles.Overlay.Width(m.cardWidth() + 4).Render(card.String())
}

func (m *Model) renderForm() string {
	var s strings.Builder
	s.WriteString(m.styles.Label.Render(m.form.title))
	s.WriteString("\n\n")
	for i, ti := range m.form.inputs {
		s.WriteString(m.styles.Author.Render(m.form.labels[i]))
		s.WriteString("\n")
		s.WriteString(ti.View())
		s.WriteString("\n")
	}
	s.WriteString("\n")
	s.WriteString(m.styles.Footer.Render("enter: next/submit  tab: next field  esc: cancel"))
	return s.String()
}

func (m *Model) renderStats() string {
	stats := quote.Collect(m.store.All())
	lines := []string{
		m.styles.Label.Render("Collection stats"),
		"",
		fmt.Sprintf("Quotes:     %d", stats.Total),
		fmt.Sprintf("Categories: %d", stats.Categories),
		fmt.Sprintf("Authors:    %d", stats.Authors),
		fmt.Sprintf("Rated:      %d", stats.Rated),
		"",
		m.styles.Footer.Render("press any key to close"),
	}
	return m.styles.Overlay.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderHelp() string {
	lines := []string{
		m.styles.Label.Render("Keys"),
		"",
		"n/l/→   next quote        a       add quote",
		"p/h/←   previous quote    e       edit quote",
		"r       random quote      d       delete quote",
		"c       copy to clipboard 0-5     rate (0 clears)",
		"/ or f  filter            esc     clear filter",
		"i       import CSV        o       export CSV",
		"s       stats             t       toggle theme",
		"w       save              q       save and quit",
		"v       about",
		"",
		m.styles.Footer.Render("press any key to close"),
	}
	return m.styles.Overlay.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderAbout() string {
	lines := []string{
		m.styles.Header.Render("quotetray"),
		"",
		"A pocket collection of quotes in your terminal.",
		"Version " + version.String(),
		"",
		m.styles.Footer.Render("press any key to close"),
	}
	return m.styles.Overlay.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFooter() string {
	if m.hasStatusMessage {
		style := m.styles.StatusInfo
		switch m.statusMessageType {
		case errors.MessageTypeError:
			style = m.styles.StatusError
		case errors.MessageTypeWarning:
			style = m.styles.StatusWarning
		case errors.MessageTypeSuccess:
			style = m.styles.StatusSuccess
		}
		return style.Render(m.statusMessage)
	}
	return m.styles.Footer.Render("n/p: browse  r: random  c: copy  a: add  /: filter  ?: help  q: quit")
}

func (m *Model) cardWidth() int {
	w := m.width - 8
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// wrapText is a plain greedy word wrap. Words longer than the width are
// left intact.
func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var out strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > width {
				out.WriteString("\n")
				lineLen = 0
			} else {
				out.WriteString(" ")
				lineLen++
			}
		}
		out.WriteString(word)
		lineLen += len(word)
	}
	return out.String()
}
