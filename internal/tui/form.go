package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formKind int

const (
	formAdd formKind = iota
	formEdit
	formFilter
	formImport
	formExport
)

// form is a small vertical stack of text inputs with enter/tab focus
// cycling. Submitting the last field submits the form.
type form struct {
	kind   formKind
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(kind formKind, title string, labels, values []string) *form {
	f := &form{
		kind:   kind,
		title:  title,
		labels: labels,
		inputs: make([]textinput.Model, len(labels)),
	}
	for i := range labels {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 500
		ti.Width = 60
		if i < len(values) {
			ti.SetValue(values[i])
		}
		f.inputs[i] = ti
	}
	f.inputs[0].Focus()
	return f
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(f.inputs))
	for i := range f.inputs {
		f.inputs[i], cmds[i] = f.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

// next moves focus forward and reports whether the form was submitted.
func (f *form) next() bool {
	if f.focus == len(f.inputs)-1 {
		return true
	}
	f.setFocus(f.focus + 1)
	return false
}

func (f *form) prev() {
	if f.focus > 0 {
		f.setFocus(f.focus - 1)
	}
}

func (f *form) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

// values returns the trimmed field values in label order.
func (f *form) values() []string {
	out := make([]string, len(f.inputs))
	for i := range f.inputs {
		out[i] = strings.TrimSpace(f.inputs[i].Value())
	}
	return out
}
