package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

const (
	cellWidth  = 2 // Each board cell renders as glyph plus a space
	boardTop   = 3 // Rows above the board: title, status, blank
	minUIWidth = 24
)

// Board glyphs.
const (
	glyphCovered  = '■'
	glyphFlag     = 'F'
	glyphMark     = '?'
	glyphMine     = '*'
	glyphExploded = 'X'
	glyphBlank    = ' '
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	coveredStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	flagStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	markStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	mineStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	explodedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")).Bold(true)
	wrongFlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true)
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	wonStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	lostStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	infoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// countStyles colors the neighbor counts 1 through 8.
var countStyles = map[int]lipgloss.Style{
	1: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	2: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	3: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	4: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	5: lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	6: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	7: lipgloss.NewStyle().Foreground(lipgloss.Color("253")),
	8: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// boardRect returns the screen rectangle the board occupies. The mouse
// handler relies on it matching renderGame line for line.
func (m Model) boardRect() Rect {
	b := m.game.Board()
	w := b.Width() * cellWidth
	x := (m.width - w) / 2
	if x < 0 {
		x = 0
	}
	return Rect{X: x, Y: boardTop, W: w, H: b.Height()}
}

// renderGame draws the board view: title, status counters, the board grid
// and the footer lines.
func (m Model) renderGame() string {
	b := m.game.Board()
	rect := m.boardRect()

	if m.width < minUIWidth || m.width < b.Width()*cellWidth {
		return "Window too small\nPlease resize terminal"
	}

	var sb strings.Builder

	sb.WriteString(centerText(titleStyle.Render("M I N E S"), m.width))
	sb.WriteString("\n")
	sb.WriteString(centerText(statusStyle.Render(m.statusLine()), m.width))
	sb.WriteString("\n\n")

	pad := strings.Repeat(" ", rect.X)
	for y := range b.Height() {
		sb.WriteString(pad)
		for x := range b.Width() {
			sb.WriteString(m.renderCell(x, y))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(centerText(m.verdictLine(), m.width))
	sb.WriteString("\n")
	sb.WriteString(centerText(infoStyle.Render(m.infoLine()), m.width))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return sb.String()
}

// statusLine builds the counter row: mines left, face, elapsed seconds.
func (m Model) statusLine() string {
	face := ":)"
	switch {
	case m.game.Lost():
		face = ":("
	case m.game.Won():
		face = "8-)"
	}
	return fmt.Sprintf("Mines %3d   %s   Time %4d", m.game.MinesLeft(), face, m.elapsed)
}

// infoLine names the current difficulty and toggled options.
func (m Model) infoLine() string {
	parts := []string{m.diff.Title()}
	if m.game.Marks() {
		parts = append(parts, "marks")
	}
	if m.cfg.Sound && m.sounds != nil {
		parts = append(parts, "sound")
	}
	return strings.Join(parts, " · ")
}

// verdictLine renders the round outcome or a transient status message.
func (m Model) verdictLine() string {
	switch {
	case m.game.Lost():
		return lostStyle.Render("BOOM! Press n for a new round")
	case m.game.Won():
		return wonStyle.Render(fmt.Sprintf("Cleared in %ds. Press n for a new round", m.elapsed))
	}
	return infoStyle.Render(m.statusMsg)
}

// renderCell draws one board cell, two columns wide.
func (m Model) renderCell(x, y int) string {
	t := m.game.Board().Tile(x, y)
	glyph, style := m.cellGlyph(t)

	if x == m.cursorX && y == m.cursorY && !m.game.Over() {
		style = cursorStyle
	}
	cell := string(glyph) + " "
	if !m.cfg.Color {
		if x == m.cursorX && y == m.cursorY && !m.game.Over() {
			return lipgloss.NewStyle().Reverse(true).Render(cell)
		}
		return cell
	}
	return style.Render(cell)
}

// cellGlyph picks the rune and style for a tile. Lost rounds expose every
// mine; the detonated one stands out and misplaced flags dim out.
func (m Model) cellGlyph(t *mines.Tile) (rune, lipgloss.Style) {
	switch {
	case t.Exploded():
		return glyphExploded, explodedStyle
	case t.Uncovered():
		if n := t.MineCount(); n > 0 {
			return rune('0' + n), countStyles[n]
		}
		return glyphBlank, coveredStyle
	case t.Flagged():
		if m.game.Lost() && !t.Mined() {
			return glyphFlag, wrongFlagStyle
		}
		return glyphFlag, flagStyle
	case m.game.Lost() && t.Mined():
		return glyphMine, mineStyle
	case t.Marked():
		return glyphMark, markStyle
	}
	return glyphCovered, coveredStyle
}

// centerText centers text within the given width. Styled text is measured
// by its visible width.
func centerText(text string, width int) string {
	visible := lipgloss.Width(text)
	if visible >= width {
		return text
	}
	padding := (width - visible) / 2
	return strings.Repeat(" ", padding) + text
}
