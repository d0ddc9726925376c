package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quotetray/quotetray/internal/codec"
	"github.com/quotetray/quotetray/internal/quote"
)

// handleKeyMsg processes keyboard input for the TUI.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	switch m.mode {
	case modeForm:
		return m.handleFormKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmDelete(msg)
	case modeStats, modeHelp, modeAbout:
		// Any key dismisses an overlay.
		m.mode = modeBrowse
		return m, nil
	}

	return m.handleBrowseKey(msg)
}

// handleBrowseKey handles string-based key bindings in browse mode.
func (m *Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q":
		return m.quit()
	case "n", "l", "right":
		m.browser.Next()
		return m, nil
	case "p", "h", "left":
		m.browser.Previous()
		return m, nil
	case "r":
		m.browser.Random()
		return m, nil
	case "c":
		return m.handleCopy()
	case "a":
		m.openAddForm()
		return m, nil
	case "e":
		return m.openEditForm()
	case "d":
		if _, ok := m.browser.Current(); !ok {
			m.errorHandler.Warning("no quote selected")
			return m, m.statusCmd()
		}
		m.mode = modeConfirmDelete
		return m, nil
	case "0", "1", "2", "3", "4", "5":
		return m.handleRate(int(key[0] - '0'))
	case "/", "f":
		m.openFilterForm()
		return m, nil
	case "esc":
		if !m.browser.Filter().IsEmpty() {
			m.applyFilter("", "")
		}
		return m, nil
	case "t":
		m.prefs.Theme = m.prefs.Theme.Toggle()
		m.styles = NewStyles(m.prefs.Theme)
		m.persistPrefs()
		return m, nil
	case "s":
		m.mode = modeStats
		return m, nil
	case "i":
		m.mode = modeForm
		m.form = newForm(formImport, "Import CSV", []string{"File"}, nil)
		return m, nil
	case "o":
		m.mode = modeForm
		m.form = newForm(formExport, "Export CSV", []string{"File"}, nil)
		return m, nil
	case "w":
		m.saveQuotes()
		return m, m.statusCmd()
	case "v":
		m.mode = modeAbout
		return m, nil
	case "?":
		m.mode = modeHelp
		return m, nil
	}
	return m, nil
}

func (m *Model) handleCopy() (tea.Model, tea.Cmd) {
	if err := m.browser.CopyCurrent(); err != nil {
		m.errorHandler.Error("copy failed: " + err.Error())
	} else {
		m.errorHandler.Success("copied to clipboard")
	}
	return m, m.statusCmd()
}

func (m *Model) handleRate(stars int) (tea.Model, tea.Cmd) {
	if err := m.browser.RateCurrent(stars); err != nil {
		m.errorHandler.Error("rate failed: " + err.Error())
		return m, m.statusCmd()
	}
	if stars == quote.MinRating {
		m.errorHandler.Info("rating cleared")
	} else {
		m.errorHandler.Success(fmt.Sprintf("rated %d star(s)", stars))
	}
	return m, m.statusCmd()
}

// handleConfirmDelete handles key input during delete confirmation.
func (m *Model) handleConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.mode = modeBrowse
		if err := m.browser.DeleteCurrent(); err != nil {
			m.errorHandler.Error("delete failed: " + err.Error())
		} else {
			m.errorHandler.Success("quote deleted")
		}
		return m, m.statusCmd()
	case "n", "N", "esc":
		m.mode = modeBrowse
		return m, nil
	}
	return m, nil
}

func (m *Model) openAddForm() {
	m.mode = modeForm
	m.form = newForm(formAdd, "Add quote",
		[]string{"Text", "Author", "Category"}, nil)
}

func (m *Model) openEditForm() (tea.Model, tea.Cmd) {
	q, ok := m.browser.Current()
	if !ok {
		m.errorHandler.Warning("no quote selected")
		return m, m.statusCmd()
	}
	m.mode = modeForm
	m.form = newForm(formEdit, "Edit quote",
		[]string{"Text", "Author", "Category"},
		[]string{q.Text, q.Author, q.Category})
	return m, nil
}

func (m *Model) openFilterForm() {
	f := m.browser.Filter()
	m.mode = modeForm
	m.form = newForm(formFilter, "Filter quotes",
		[]string{"Category", "Keyword"},
		[]string{f.Category, f.Keyword})
}

// handleFormKey routes keys while a form is open. Enter advances focus and
// submits from the last field, Esc cancels.
func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeForm()
		return m, nil
	case tea.KeyEnter:
		if m.form.next() {
			return m.submitForm()
		}
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.form.next()
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.form.prev()
		return m, nil
	}
	return m, m.form.update(msg)
}

func (m *Model) closeForm() {
	m.mode = modeBrowse
	m.form = nil
}

func (m *Model) submitForm() (tea.Model, tea.Cmd) {
	values := m.form.values()
	kind := m.form.kind
	m.closeForm()

	switch kind {
	case formAdd:
		if _, err := m.browser.Add(values[0], values[1], values[2]); err != nil {
			m.errorHandler.Error("add failed: " + err.Error())
		} else {
			m.errorHandler.Success("quote added")
		}
	case formEdit:
		if err := m.browser.EditCurrent(values[0], values[1], values[2]); err != nil {
			m.errorHandler.Error("edit failed: " + err.Error())
		} else {
			m.errorHandler.Success("quote updated")
		}
	case formFilter:
		m.applyFilter(values[0], values[1])
		return m, nil
	case formImport:
		m.importCSV(values[0])
	case formExport:
		m.exportCSV(values[0])
	}
	return m, m.statusCmd()
}

func (m *Model) importCSV(path string) {
	if path == "" {
		m.errorHandler.Warning("no file given")
		return
	}
	quotes, err := codec.ImportFile(path)
	if err != nil {
		m.errorHandler.Error("import failed: " + err.Error())
		return
	}
	n, err := m.browser.Import(quotes, false)
	if err != nil {
		m.errorHandler.Error("import failed: " + err.Error())
		return
	}
	m.errorHandler.Success(fmt.Sprintf("imported %d quote(s)", n))
}

func (m *Model) exportCSV(path string) {
	if path == "" {
		m.errorHandler.Warning("no file given")
		return
	}
	if err := codec.ExportFile(path, m.store.All()); err != nil {
		m.errorHandler.Error("export failed: " + err.Error())
		return
	}
	m.errorHandler.Success(fmt.Sprintf("exported %d quote(s)", m.store.Len()))
}

// applyFilter updates the view and remembers the category for the next
// session.
func (m *Model) applyFilter(category, keyword string) {
	m.browser.SetFilter(category, keyword)
	m.prefs.LastCategory = category
	m.persistPrefs()
}
