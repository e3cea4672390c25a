package mines

import (
	"fmt"
	"math/rand"
	"time"
)

// State identifies where a game session is in its lifecycle.
type State int

const (
	StateNotStarted State = iota // board empty, mines not yet placed
	StateInProgress
	StateWon
	StateLost
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateInProgress:
		return "in_progress"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Config carries everything needed to set up a game session.
type Config struct {
	Width  int
	Height int
	Mines  int
	Marks  bool  // enable the "?" annotation cycle
	Seed   int64 // 0 seeds from the clock
}

// Validate checks dimensions and the mine target against the placement
// bound.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("board %dx%d: dimensions must be at least 1", c.Width, c.Height)
	}
	if c.Mines < 0 || c.Mines > maxMines(c.Width, c.Height) {
		return fmt.Errorf("mine target %d out of range for %dx%d board (0-%d)", c.Mines, c.Width, c.Height, maxMines(c.Width, c.Height))
	}
	return nil
}

// Game wraps a Board with the session state machine: lazy mine placement on
// the first reveal, terminal-state no-ops, flag counting, and the event
// notifications the platform layer hangs timers and sounds on.
type Game struct {
	board *Board
	cfg   Config
	state State
	rng   *rand.Rand
	flags int

	onGameStart    func()
	onGameEnd      func(hitMine bool)
	onFlagsChanged func(delta int)
}

// NewGame builds a session from cfg. The board starts empty; the first
// reveal places the mines.
func NewGame(cfg Config) (*Game, error) {
	board, err := NewBoard(cfg.Width, cfg.Height, cfg.Mines)
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		board: board,
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
	}, nil
}

// Reset starts a new round on the same configuration: the board returns to
// its empty pre-placement state and the next reveal seeds it again. An
// explicit configured seed is rewound so the same layouts replay; with a
// zero seed each round keeps drawing from the clock-seeded stream.
func (g *Game) Reset() {
	if g.cfg.Seed != 0 {
		g.rng = rand.New(rand.NewSource(g.cfg.Seed))
	}
	g.board.Clear()
	g.state = StateNotStarted
	g.flags = 0
}

// Configure replaces the session configuration (new dimensions and mine
// target allowed) and starts a fresh round.
func (g *Game) Configure(cfg Config) error {
	board, err := NewBoard(cfg.Width, cfg.Height, cfg.Mines)
	if err != nil {
		return err
	}
	g.board = board
	g.cfg = cfg
	g.state = StateNotStarted
	g.flags = 0
	if cfg.Seed != 0 {
		g.rng = rand.New(rand.NewSource(cfg.Seed))
	}
	return nil
}

// Reveal issues the reveal intent at (x, y). The first reveal of a round
// places the mines, keeping the clicked row and column clear, and fires the
// start event. Revealing a mine detonates it instead of uncovering it.
// Returns true if the intent detonated.
func (g *Game) Reveal(x, y int) bool {
	if g.Over() {
		return false
	}
	t := g.board.Tile(x, y)
	if t == nil || t.Uncovered() || t.Flagged() {
		return false
	}

	if g.state == StateNotStarted {
		g.board.PlaceMines(x, y, g.rng)
		g.state = StateInProgress
		if g.onGameStart != nil {
			g.onGameStart()
		}
	}

	if t.Mined() {
		g.board.Detonate(x, y)
	} else {
		g.board.Reveal(x, y)
	}
	return g.finish()
}

// ToggleFlag issues the flag intent at (x, y), advancing the annotation
// cycle. Placing the last correct flag can end the round, so termination is
// re-checked here too.
func (g *Game) ToggleFlag(x, y int) {
	if g.Over() {
		return
	}
	delta := g.board.ToggleFlag(x, y, g.cfg.Marks)
	if delta != 0 {
		g.flags += delta
		if g.onFlagsChanged != nil {
			g.onFlagsChanged(delta)
		}
	}
	g.finish()
}

// Chord issues the chord intent at (x, y). Returns true if it detonated any
// neighbor.
func (g *Game) Chord(x, y int) bool {
	if g.Over() {
		return false
	}
	g.board.Chord(x, y)
	return g.finish()
}

// finish re-evaluates the termination predicate after a mutating intent and
// fires the end event on the transition into a terminal state. Returns true
// if the board holds a detonated mine.
func (g *Game) finish() bool {
	if g.state != StateInProgress {
		return false
	}
	exploded := g.board.Exploded()
	switch {
	case exploded:
		g.state = StateLost
	case g.board.GameOver():
		g.state = StateWon
	default:
		return false
	}
	if g.onGameEnd != nil {
		g.onGameEnd(exploded)
	}
	return exploded
}

// Board exposes the underlying board for rendering and queries.
func (g *Game) Board() *Board {
	return g.board
}

// Config returns the active session configuration.
func (g *Game) Config() Config {
	return g.cfg
}

// State returns the session lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Over reports whether the session has reached a terminal state. Further
// intents are no-ops until Reset or Configure.
func (g *Game) Over() bool {
	return g.state == StateWon || g.state == StateLost
}

// Won reports a finished round with every safe tile uncovered and every
// mine flagged.
func (g *Game) Won() bool {
	return g.state == StateWon
}

// Lost reports a finished round with a detonated mine.
func (g *Game) Lost() bool {
	return g.state == StateLost
}

// FlagCount returns the number of flags currently placed.
func (g *Game) FlagCount() int {
	return g.flags
}

// MinesLeft returns the configured mine count minus placed flags. Negative
// when over-flagged, exactly as the status counter shows it.
func (g *Game) MinesLeft() int {
	return g.cfg.Mines - g.flags
}

// SetMarks enables or disables the "?" annotation cycle for subsequent flag
// intents.
func (g *Game) SetMarks(enabled bool) {
	g.cfg.Marks = enabled
}

// Marks reports whether the "?" cycle is enabled.
func (g *Game) Marks() bool {
	return g.cfg.Marks
}

// OnGameStart registers fn to run when the first reveal of a round places
// the mines.
func (g *Game) OnGameStart(fn func()) {
	g.onGameStart = fn
}

// OnGameEnd registers fn to run once when the round ends; hitMine
// distinguishes a loss from a win.
func (g *Game) OnGameEnd(fn func(hitMine bool)) {
	g.onGameEnd = fn
}

// OnFlagsChanged registers fn to run whenever the flag count moves.
func (g *Game) OnFlagsChanged(fn func(delta int)) {
	g.onFlagsChanged = fn
}
