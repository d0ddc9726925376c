package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const statusClearDuration = 5 * time.Second

// statusClearMsg clears the status bar after a delay. The sequence number
// makes stale ticks harmless when a newer message replaced the old one.
type statusClearMsg struct {
	seq int
}

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusClearDuration, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}
