// Package tui implements the interactive quote browser for bubbletea.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quotetray/quotetray/internal/browser"
	"github.com/quotetray/quotetray/internal/errors"
	"github.com/quotetray/quotetray/internal/settings"
	"github.com/quotetray/quotetray/internal/store"
)

type mode int

const (
	modeBrowse mode = iota
	modeForm
	modeConfirmDelete
	modeStats
	modeHelp
	modeAbout
)

const (
	defaultViewportWidth  = 80
	defaultViewportHeight = 24
)

// Model represents the TUI model for bubbletea.
type Model struct {
	browser *browser.Browser
	store   *store.Store
	prefs   *settings.Settings

	errorHandler      *errors.TUIHandler
	statusMessage     string
	statusMessageType errors.MessageType
	hasStatusMessage  bool
	statusSeq         int

	mode   mode
	form   *form
	styles Styles

	width  int
	height int
}

// NewModel creates a new TUI model. The last used category filter is
// applied so the session resumes where the previous one left off.
func NewModel(b *browser.Browser, s *store.Store, prefs *settings.Settings) *Model {
	if prefs == nil {
		prefs = settings.DefaultSettings()
	}

	m := &Model{
		browser: b,
		store:   s,
		prefs:   prefs,
		mode:    modeBrowse,
		styles:  NewStyles(prefs.Theme),
	}

	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.statusMessage = msg.Text
		m.statusMessageType = msg.Type
		m.hasStatusMessage = msg.Text != ""
		m.statusSeq++
	})

	if prefs.LastCategory != "" {
		b.SetFilter(prefs.LastCategory, "")
	}

	return m
}

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.clearStatus()
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) clearStatus() {
	m.statusMessage = ""
	m.hasStatusMessage = false
}

// statusCmd returns the tick command that clears the message the error
// handler just set.
func (m *Model) statusCmd() tea.Cmd {
	return clearStatusAfter(m.statusSeq)
}

// persistPrefs writes settings to disk, reporting failures on the status
// bar instead of propagating them.
func (m *Model) persistPrefs() {
	if err := settings.Save(m.prefs); err != nil {
		m.errorHandler.Warning("failed to save settings: " + err.Error())
	}
}

// saveQuotes checkpoints the collection if it has unsaved changes.
func (m *Model) saveQuotes() {
	if !m.store.Dirty() {
		m.errorHandler.Info("no changes to save")
		return
	}
	if err := m.store.SaveAll(); err != nil {
		m.errorHandler.Error("failed to save quotes: " + err.Error())
		return
	}
	m.errorHandler.Success("quotes saved")
}

// quit persists state and exits. A failed checkpoint does not block exit;
// the store keeps its file intact on write failure.
func (m *Model) quit() (tea.Model, tea.Cmd) {
	if m.store.Dirty() {
		if err := m.store.SaveAll(); err != nil {
			m.errorHandler.Error("failed to save quotes: " + err.Error())
		}
	}
	m.persistPrefs()
	return m, tea.Quit
}

// Run starts the interactive browser and blocks until it exits.
func Run(b *browser.Browser, s *store.Store, prefs *settings.Settings) error {
	p := tea.NewProgram(NewModel(b, s, prefs), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
