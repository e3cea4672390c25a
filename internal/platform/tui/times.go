package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

const maxTimes = 100 // Max rounds to load per difficulty

// TimesKeyMap defines the key bindings for the best-times screen.
type TimesKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextDiff key.Binding
	PrevDiff key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k TimesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextDiff, k.PrevDiff, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k TimesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextDiff, k.PrevDiff},
		{k.Back, k.Quit},
	}
}

// DefaultTimesKeyMap returns default key bindings.
func DefaultTimesKeyMap() TimesKeyMap {
	return TimesKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextDiff: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next difficulty"),
		),
		PrevDiff: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev difficulty"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// newTimesTable creates the best-times table sized for the screen.
func newTimesTable(width, height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Player", Width: 16},
		{Title: "Date", Width: 14},
	}

	tableHeight := height - 8 // Leave room for header, help, and margins
	if tableHeight < 3 {
		tableHeight = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadTimes loads the rounds for the selected difficulty into the table.
func (m *Model) loadTimes() {
	presets := mines.Difficulties()
	d := presets[Clamp(m.timesDiff, 0, len(presets)-1)]

	var rows []table.Row
	if m.store != nil {
		times, err := m.store.TopTimes(d.Name, maxTimes)
		if err == nil {
			rows = make([]table.Row, len(times))
			for i, e := range times {
				rows[i] = table.Row{
					fmt.Sprintf("#%d", i+1),
					fmt.Sprintf("%ds", e.Seconds),
					e.Player,
					e.CreatedAt.Format("Jan 02 15:04"),
				}
			}
		}
	}
	m.timesTable.SetRows(rows)
	m.timesTable.GotoTop()
}

// handleTimesKey processes keyboard input for the best-times screen.
func (m Model) handleTimesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	presets := mines.Difficulties()

	switch {
	case key.Matches(msg, m.timesKeys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.timesKeys.Back):
		m.view = viewGame
		return m, nil

	case key.Matches(msg, m.timesKeys.NextDiff):
		m.timesDiff = (m.timesDiff + 1) % len(presets)
		m.loadTimes()
		return m, nil

	case key.Matches(msg, m.timesKeys.PrevDiff):
		m.timesDiff--
		if m.timesDiff < 0 {
			m.timesDiff = len(presets) - 1
		}
		m.loadTimes()
		return m, nil
	}

	// Pass everything else to the table for scrolling
	var cmd tea.Cmd
	m.timesTable, cmd = m.timesTable.Update(msg)
	return m, cmd
}

// renderTimes draws the best-times screen.
func (m Model) renderTimes() string {
	presets := mines.Difficulties()
	d := presets[Clamp(m.timesDiff, 0, len(presets)-1)]

	var b strings.Builder

	title := fmt.Sprintf("BEST TIMES - %s", d.Title())
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	content := m.timesTable.View()
	if len(m.timesTable.Rows()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		content = emptyStyle.Render("No rounds recorded yet.\nClear a board to set a time!")
	}
	b.WriteString(centerText(tableStyle.Render(content), m.width))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.timesKeys)))

	return b.String()
}

// newNameInput creates the prompt for recording a new best time.
func newNameInput(player string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Anonymous"
	ti.SetValue(player)
	ti.CharLimit = 24
	ti.Width = 24
	ti.Focus()
	return ti
}

// handleNameEntryKey processes keyboard input for the name prompt.
func (m Model) handleNameEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "enter", "esc":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" || msg.String() == "esc" {
			name = m.cfg.Player
		}
		m.saveTime(name)
		m.timesDiff = presetIndex(m.pendingDiff)
		m.loadTimes()
		m.view = viewTimes
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// saveTime records the pending round under the given name.
func (m *Model) saveTime(name string) {
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveTime(m.pendingDiff.Name, name, m.pendingSeconds)
	m.statusMsg = fmt.Sprintf("New best time for %s: %ds", m.pendingDiff.Title(), m.pendingSeconds)
}

// renderNameEntry draws the new-best-time prompt.
func (m Model) renderNameEntry() string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(centerText(wonStyle.Render("NEW BEST TIME"), m.width))
	b.WriteString("\n\n")
	line := fmt.Sprintf("%s cleared in %ds", m.pendingDiff.Title(), m.pendingSeconds)
	b.WriteString(centerText(line, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Your name:", m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.nameInput.View(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(helpStyle.Render("Enter: Save  |  Esc: Save as "+m.cfg.Player), m.width))
	b.WriteString("\n")

	return b.String()
}

// presetIndex maps a difficulty to its position in the preset list.
func presetIndex(d mines.Difficulty) int {
	for i, p := range mines.Difficulties() {
		if p.Name == d.Name {
			return i
		}
	}
	return 0
}
