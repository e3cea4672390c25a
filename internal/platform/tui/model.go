package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/mines"
	"github.com/vovakirdan/tui-mines/internal/sound"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

const maxElapsed = 9999 // The status line renders the timer with four digits

// view selects which screen the model draws.
type view int

const (
	viewGame      view = iota // Active board
	viewMenu                  // Difficulty and options
	viewTimes                 // Best times table
	viewNameEntry             // New best time prompt
)

// eventSink collects callbacks fired by the game core while an intent runs.
// The model keeps a pointer to it so the copies Bubble Tea passes around
// all observe the same flags.
type eventSink struct {
	started   bool
	ended     bool
	hitMine   bool
	flagDelta int
}

// Model is the Bubble Tea model for a minesweeper session.
type Model struct {
	cfg    config.MinesConfig
	game   *mines.Game
	diff   mines.Difficulty
	store  *storage.Store
	sounds *sound.Manager
	events *eventSink

	keys      GameKeyMap
	timesKeys TimesKeyMap
	help      help.Model

	view       view
	menuCursor int

	cursorX int
	cursorY int

	width  int
	height int

	running bool
	elapsed int
	seed    int64

	statusMsg string
	quitting  bool

	timesTable table.Model
	timesDiff  int

	nameInput      textinput.Model
	pendingDiff    mines.Difficulty
	pendingSeconds int
}

// NewModel creates a new Bubble Tea model for the given round setup.
// A nil store disables best-time recording and a nil sound manager
// disables audio; both are normal for SSH sessions.
func NewModel(cfg config.MinesConfig, d mines.Difficulty, store *storage.Store, sounds *sound.Manager, seed int64) (Model, error) {
	round := d.Config()
	round.Marks = cfg.Marks
	round.Seed = seed

	game, err := mines.NewGame(round)
	if err != nil {
		return Model{}, err
	}

	// The game core reports through callbacks; collect them in a sink the
	// update loop drains after each intent.
	events := &eventSink{}
	game.OnGameStart(func() { events.started = true })
	game.OnGameEnd(func(hitMine bool) {
		events.ended = true
		events.hitMine = hitMine
	})
	game.OnFlagsChanged(func(delta int) { events.flagDelta += delta })

	return Model{
		cfg:        cfg,
		game:       game,
		diff:       d,
		store:      store,
		sounds:     sounds,
		events:     events,
		keys:       DefaultGameKeyMap(),
		timesKeys:  DefaultTimesKeyMap(),
		help:       help.New(),
		seed:       seed,
		timesTable: newTimesTable(80, 24),
	}, nil
}

// Init initializes the model. The timer only starts on the first reveal,
// so there is nothing to schedule yet.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey dispatches keyboard input to the active screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case viewMenu:
		return m.handleMenuKey(msg)
	case viewTimes:
		return m.handleTimesKey(msg)
	case viewNameEntry:
		return m.handleNameEntryKey(msg)
	}
	return m.handleGameKey(msg)
}

// handleGameKey processes keyboard input on the board screen.
func (m Model) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Menu):
		m.menuCursor = presetIndex(m.diff)
		m.view = viewMenu
		return m, nil

	case key.Matches(msg, m.keys.Times):
		m.timesDiff = presetIndex(m.diff)
		m.loadTimes()
		m.view = viewTimes
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NewGame):
		m.newRound()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.cursorY = Clamp(m.cursorY-1, 0, m.game.Board().Height()-1)
	case key.Matches(msg, m.keys.Down):
		m.cursorY = Clamp(m.cursorY+1, 0, m.game.Board().Height()-1)
	case key.Matches(msg, m.keys.Left):
		m.cursorX = Clamp(m.cursorX-1, 0, m.game.Board().Width()-1)
	case key.Matches(msg, m.keys.Right):
		m.cursorX = Clamp(m.cursorX+1, 0, m.game.Board().Width()-1)

	case key.Matches(msg, m.keys.Reveal):
		m.game.Reveal(m.cursorX, m.cursorY)
		return m.drainEvents()
	case key.Matches(msg, m.keys.Flag):
		m.game.ToggleFlag(m.cursorX, m.cursorY)
		return m.drainEvents()
	case key.Matches(msg, m.keys.Chord):
		m.game.Chord(m.cursorX, m.cursorY)
		return m.drainEvents()
	}

	return m, nil
}

// handleMouse maps clicks on the board to game intents. Left reveals,
// right flags, middle chords, matching the desktop convention.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.view != viewGame || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	x, y, ok := m.boardRect().Cell(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.cursorX = x
	m.cursorY = y

	switch msg.Button {
	case tea.MouseButtonLeft:
		m.game.Reveal(x, y)
	case tea.MouseButtonRight:
		m.game.ToggleFlag(x, y)
	case tea.MouseButtonMiddle:
		m.game.Chord(x, y)
	default:
		return m, nil
	}

	return m.drainEvents()
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.timesTable = newTimesTable(msg.Width, msg.Height)
	m.loadTimes()
	return m, nil
}

// handleTick advances the round timer once per second while a round runs.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.running || m.game.Over() {
		return m, nil
	}
	if m.elapsed < maxElapsed {
		m.elapsed++
	}
	return m, tickCmd()
}

// drainEvents reacts to whatever the last intent made the game report:
// starting the timer, playing effects, and recording finished rounds.
func (m Model) drainEvents() (tea.Model, tea.Cmd) {
	ev := *m.events
	*m.events = eventSink{}

	var cmds []tea.Cmd

	if ev.flagDelta != 0 && m.cfg.Sound && m.sounds != nil {
		m.sounds.PlayFlag()
	}

	if ev.started {
		m.running = true
		cmds = append(cmds, tickCmd())
	}

	if ev.ended {
		m.running = false
		if ev.hitMine {
			if m.cfg.Sound && m.sounds != nil {
				m.sounds.PlayDetonation()
			}
		} else {
			if m.cfg.Sound && m.sounds != nil {
				m.sounds.PlayWin()
			}
			return m.recordWin(cmds)
		}
	}

	return m, tea.Batch(cmds...)
}

// recordWin stores the finished round. A time beating the stored best
// opens the name prompt; every other preset win is saved quietly under
// the configured player name.
func (m Model) recordWin(cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	if m.store == nil || !m.diff.IsPreset() {
		return m, tea.Batch(cmds...)
	}

	best, err := m.store.BestTime(m.diff.Name)
	if err != nil {
		return m, tea.Batch(cmds...)
	}

	if best == nil || m.elapsed < best.Seconds {
		m.pendingDiff = m.diff
		m.pendingSeconds = m.elapsed
		m.nameInput = newNameInput(m.cfg.Player)
		m.view = viewNameEntry
		cmds = append(cmds, textinput.Blink)
		return m, tea.Batch(cmds...)
	}

	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveTime(m.diff.Name, m.cfg.Player, m.elapsed)
	return m, tea.Batch(cmds...)
}

// newRound restarts on the current configuration. With an explicit seed
// the same layout replays, otherwise a fresh one is drawn.
func (m *Model) newRound() {
	m.game.Reset()
	m.elapsed = 0
	m.running = false
	m.statusMsg = ""
	*m.events = eventSink{}
}

// startRound switches to the given difficulty and begins a fresh round.
func (m Model) startRound(d mines.Difficulty) (tea.Model, tea.Cmd) {
	round := d.Config()
	round.Marks = m.cfg.Marks
	round.Seed = m.seed

	if err := m.game.Configure(round); err != nil {
		m.statusMsg = err.Error()
		return m, nil
	}

	m.diff = d
	m.elapsed = 0
	m.running = false
	m.cursorX = 0
	m.cursorY = 0
	m.statusMsg = ""
	m.view = viewGame
	*m.events = eventSink{}
	return m, nil
}

// View renders the active screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewMenu:
		return m.renderMenu()
	case viewTimes:
		return m.renderTimes()
	case viewNameEntry:
		return m.renderNameEntry()
	}
	return m.renderGame()
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(cfg config.MinesConfig, d mines.Difficulty, store *storage.Store, sounds *sound.Manager, seed int64) error {
	model, err := NewModel(cfg, d, store, sounds, seed)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Reveal, flag and chord by mouse
	)

	_, err = p.Run()
	return err
}
