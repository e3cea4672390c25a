package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

// Fixed menu rows after the difficulty presets.
const (
	menuRowMarks = iota
	menuRowColor
	menuRowSound
	menuRowTimes
	menuRowBack
	menuExtraRows
)

// menuRowCount returns the total number of menu rows.
func menuRowCount() int {
	return len(mines.Difficulties()) + menuExtraRows
}

// handleMenuKey processes keyboard input for the difficulty menu.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.menuCursor > 0 {
			m.menuCursor--
		}

	case MenuActionDown:
		if m.menuCursor < menuRowCount()-1 {
			m.menuCursor++
		}

	case MenuActionSelect:
		return m.selectMenuRow()

	case MenuActionBack:
		m.view = viewGame
	}

	return m, nil
}

// selectMenuRow applies the highlighted menu row.
func (m Model) selectMenuRow() (tea.Model, tea.Cmd) {
	presets := mines.Difficulties()
	if m.menuCursor < len(presets) {
		return m.startRound(presets[m.menuCursor])
	}

	switch m.menuCursor - len(presets) {
	case menuRowMarks:
		m.cfg.Marks = !m.cfg.Marks
		m.game.SetMarks(m.cfg.Marks)
	case menuRowColor:
		m.cfg.Color = !m.cfg.Color
	case menuRowSound:
		m.cfg.Sound = !m.cfg.Sound
	case menuRowTimes:
		m.loadTimes()
		m.view = viewTimes
	case menuRowBack:
		m.view = viewGame
	}

	return m, nil
}

// renderMenu draws the difficulty and options menu.
func (m Model) renderMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("M I N E S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Difficulty and options", m.width))
	b.WriteString("\n\n")

	presets := mines.Difficulties()
	rows := make([]string, 0, menuRowCount())
	for _, d := range presets {
		marker := "  "
		if d.Name == m.diff.Name {
			marker = "* "
		}
		rows = append(rows, fmt.Sprintf("%s%-14s %2dx%-2d %3d mines", marker, d.Title(), d.Width, d.Height, d.Mines))
	}
	rows = append(rows,
		fmt.Sprintf("  Marks  %s", onOff(m.cfg.Marks)),
		fmt.Sprintf("  Color  %s", onOff(m.cfg.Color)),
		fmt.Sprintf("  Sound  %s", onOff(m.cfg.Sound)),
		"  Best times",
		"  Back",
	)

	for i, row := range rows {
		cursor := "  "
		line := cursor + row
		if i == m.menuCursor {
			line = cursorStyle.Render("> " + row)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(helpStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
