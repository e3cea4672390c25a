// Package tui provides the Bubble Tea integration for the minesweeper
// client. It handles the terminal UI loop, input mapping, and the round
// timer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per second while a round is running to advance the
// elapsed-time counter.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next timer tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
