package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/quotetray/quotetray/internal/quote"
)

// Styles holds the lipgloss styles for one theme. The whole set is rebuilt
// when the theme toggles.
type Styles struct {
	Theme quote.Theme

	Header    lipgloss.Style
	QuoteText lipgloss.Style
	Author    lipgloss.Style
	Stars     lipgloss.Style
	Category  lipgloss.Style
	Counter   lipgloss.Style
	Footer    lipgloss.Style
	Label     lipgloss.Style
	Overlay   lipgloss.Style

	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles builds the style set for the given theme.
func NewStyles(theme quote.Theme) Styles {
	var (
		text    lipgloss.Color
		muted   lipgloss.Color
		accent  lipgloss.Color
		border  lipgloss.Color
		warning lipgloss.Color
	)

	if theme == quote.ThemeDark {
		text = lipgloss.Color("252")
		muted = lipgloss.Color("244")
		accent = lipgloss.Color("39")
		border = lipgloss.Color("240")
		warning = lipgloss.Color("214")
	} else {
		text = lipgloss.Color("235")
		muted = lipgloss.Color("245")
		accent = lipgloss.Color("27")
		border = lipgloss.Color("250")
		warning = lipgloss.Color("130")
	}

	return Styles{
		Theme:     theme,
		Header:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		QuoteText: lipgloss.NewStyle().Foreground(text).Italic(true),
		Author:    lipgloss.NewStyle().Foreground(muted),
		Stars:     lipgloss.NewStyle().Foreground(warning),
		Category:  lipgloss.NewStyle().Foreground(accent),
		Counter:   lipgloss.NewStyle().Foreground(muted),
		Footer:    lipgloss.NewStyle().Foreground(muted),
		Label:     lipgloss.NewStyle().Bold(true).Foreground(text),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		StatusWarning: lipgloss.NewStyle().Foreground(warning),
		StatusInfo:    lipgloss.NewStyle().Foreground(accent),
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
}
