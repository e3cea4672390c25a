package mines

import (
	"testing"
)

// tinyConfig builds a 2x2 round with a single mine. The first reveal
// excludes its whole row and column, so revealing (0,0) always leaves the
// mine at (1,1) no matter how the generator rolls.
func tinyConfig() Config {
	return Config{Width: 2, Height: 2, Mines: 1}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "beginner", cfg: Config{Width: 8, Height: 8, Mines: 10}},
		{name: "intermediate", cfg: Config{Width: 16, Height: 16, Mines: 40}},
		{name: "expert", cfg: Config{Width: 32, Height: 16, Mines: 99}},
		{name: "tiny", cfg: tinyConfig()},
		{name: "zero width", cfg: Config{Width: 0, Height: 8, Mines: 0}, wantErr: true},
		{name: "zero height", cfg: Config{Width: 8, Height: 0, Mines: 0}, wantErr: true},
		{name: "negative mines", cfg: Config{Width: 8, Height: 8, Mines: -1}, wantErr: true},
		{name: "too many mines", cfg: Config{Width: 3, Height: 3, Mines: 5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%+v) error = %v, wantErr %v", tt.cfg, err, tt.wantErr)
			}
		})
	}
}

func TestNewGameRejectsBadConfig(t *testing.T) {
	if _, err := NewGame(Config{Width: 0, Height: 8, Mines: 0}); err == nil {
		t.Error("NewGame should reject an invalid config")
	}
}

func TestGameLazyPlacement(t *testing.T) {
	g, err := NewGame(Config{Width: 8, Height: 8, Mines: 10, Seed: 3})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	if g.State() != StateNotStarted {
		t.Fatalf("state = %v, want %v", g.State(), StateNotStarted)
	}
	if g.Board().Mines() != 0 {
		t.Fatal("mines must not be placed before the first reveal")
	}

	// Flagging happens before the round starts and must not seed the board;
	// neither must revealing the flagged tile.
	g.ToggleFlag(2, 2)
	g.Reveal(2, 2)
	if g.Board().Mines() != 0 || g.State() != StateNotStarted {
		t.Fatal("flagged reveal must not start the round")
	}

	g.ToggleFlag(2, 2)
	g.Reveal(2, 2)
	if g.Board().Mines() != 10 {
		t.Errorf("placed %d mines after first reveal, want 10", g.Board().Mines())
	}
	if g.State() != StateInProgress {
		t.Errorf("state = %v, want %v", g.State(), StateInProgress)
	}
	if !g.Board().Tile(2, 2).Uncovered() {
		t.Error("first revealed tile should be uncovered")
	}
}

func TestGameFirstRevealIsSafe(t *testing.T) {
	for seed := int64(1); seed <= 15; seed++ {
		g, err := NewGame(Config{Width: 8, Height: 8, Mines: 10, Seed: seed})
		if err != nil {
			t.Fatalf("NewGame: %v", err)
		}

		if detonated := g.Reveal(4, 4); detonated {
			t.Fatalf("seed %d: first reveal detonated", seed)
		}
		for i := range 8 {
			if g.Board().Tile(i, 4).Mined() || g.Board().Tile(4, i).Mined() {
				t.Errorf("seed %d: mine in the first reveal's row or column", seed)
			}
		}
		if g.Over() {
			t.Errorf("seed %d: round ended on the first reveal", seed)
		}
	}
}

func TestGameEvents(t *testing.T) {
	g, err := NewGame(tinyConfig())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	var starts, ends int
	var hitMine bool
	var deltas []int
	g.OnGameStart(func() { starts++ })
	g.OnGameEnd(func(hit bool) { ends++; hitMine = hit })
	g.OnFlagsChanged(func(delta int) { deltas = append(deltas, delta) })

	g.Reveal(0, 0)
	if starts != 1 {
		t.Errorf("game start fired %d times, want 1", starts)
	}

	g.Reveal(1, 0)
	g.Reveal(0, 1)
	if ends != 0 {
		t.Fatal("game end fired before the round was decided")
	}

	g.ToggleFlag(1, 1)
	if ends != 1 || hitMine {
		t.Errorf("game end fired %d times with hitMine=%v, want once with false", ends, hitMine)
	}
	if g.State() != StateWon {
		t.Errorf("state = %v, want %v", g.State(), StateWon)
	}
	if len(deltas) != 1 || deltas[0] != 1 {
		t.Errorf("flag deltas = %v, want [1]", deltas)
	}
}

func TestGameDetonation(t *testing.T) {
	g, err := NewGame(tinyConfig())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	var endedWithMine bool
	g.OnGameEnd(func(hit bool) { endedWithMine = hit })

	g.Reveal(0, 0)
	if !g.Board().Tile(1, 1).Mined() {
		t.Fatal("mine should be forced to (1,1)")
	}

	if detonated := g.Reveal(1, 1); !detonated {
		t.Error("revealing the mine should report a detonation")
	}
	if g.State() != StateLost {
		t.Errorf("state = %v, want %v", g.State(), StateLost)
	}
	if !endedWithMine {
		t.Error("game end should report the mine hit")
	}
	tile := g.Board().Tile(1, 1)
	if !tile.Exploded() || tile.Uncovered() {
		t.Errorf("exploded=%v uncovered=%v, want exploded and still covered", tile.Exploded(), tile.Uncovered())
	}
}

func TestGameTerminalNoOps(t *testing.T) {
	g, err := NewGame(tinyConfig())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	g.Reveal(0, 0)
	g.Reveal(1, 1)
	if !g.Lost() {
		t.Fatal("round should be lost")
	}

	if detonated := g.Reveal(1, 0); detonated {
		t.Error("reveal after the round must report nothing")
	}
	if g.Board().Tile(1, 0).Uncovered() {
		t.Error("reveal after the round must not change the board")
	}
	g.ToggleFlag(0, 1)
	if g.FlagCount() != 0 {
		t.Error("flags must not change after the round")
	}
	g.Chord(0, 0)
	if g.State() != StateLost {
		t.Error("state must stay lost")
	}
}

func TestGameChordWin(t *testing.T) {
	g, err := NewGame(tinyConfig())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	g.Reveal(0, 0)
	g.ToggleFlag(1, 1)
	if detonated := g.Chord(0, 0); detonated {
		t.Error("chord with the correct flag must not detonate")
	}
	if !g.Won() {
		t.Errorf("state = %v, want %v", g.State(), StateWon)
	}
}

func TestGameChordDetonates(t *testing.T) {
	g, err := NewGame(tinyConfig())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	g.Reveal(0, 0)
	g.ToggleFlag(1, 0)
	if detonated := g.Chord(0, 0); !detonated {
		t.Error("chord with a misplaced flag should detonate the real mine")
	}
	if !g.Lost() {
		t.Errorf("state = %v, want %v", g.State(), StateLost)
	}
	if !g.Board().Tile(1, 1).Exploded() {
		t.Error("the unflagged mine should carry the explosion")
	}
	if g.Board().Tile(1, 0).Uncovered() {
		t.Error("the misplaced flag must survive the chord")
	}
}

func TestGameWinRequiresFlaggedMines(t *testing.T) {
	g, err := NewGame(tinyConfig())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	g.Reveal(0, 0)
	g.Reveal(1, 0)
	g.Reveal(0, 1)
	if g.Over() {
		t.Fatal("covered unflagged mine should keep the round open")
	}

	g.ToggleFlag(1, 1)
	if !g.Won() {
		t.Errorf("state = %v, want %v", g.State(), StateWon)
	}
	if g.MinesLeft() != 0 {
		t.Errorf("mines left = %d, want 0", g.MinesLeft())
	}
}

func TestGameMinesLeftGoesNegative(t *testing.T) {
	g, err := NewGame(tinyConfig())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	g.ToggleFlag(0, 0)
	g.ToggleFlag(1, 0)
	g.ToggleFlag(0, 1)
	if g.FlagCount() != 3 {
		t.Errorf("flag count = %d, want 3", g.FlagCount())
	}
	if g.MinesLeft() != -2 {
		t.Errorf("mines left = %d, want -2", g.MinesLeft())
	}
}

func TestGameSeededRoundsRepeat(t *testing.T) {
	cfg := Config{Width: 8, Height: 8, Mines: 10, Seed: 42}

	g1, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g2, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	g1.Reveal(3, 3)
	g2.Reveal(3, 3)
	first := layoutString(g1.Board().Layout())
	if second := layoutString(g2.Board().Layout()); second != first {
		t.Errorf("same seed produced different boards:\n%s\n---\n%s", first, second)
	}

	// An explicit seed replays the same layout after a reset.
	g1.Reset()
	if g1.State() != StateNotStarted || g1.Board().Mines() != 0 {
		t.Fatal("reset should return to a blank board")
	}
	g1.Reveal(3, 3)
	if replay := layoutString(g1.Board().Layout()); replay != first {
		t.Errorf("seeded reset produced a different board:\n%s\n---\n%s", first, replay)
	}
}

func TestGameReset(t *testing.T) {
	g, err := NewGame(tinyConfig())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	g.Reveal(0, 0)
	g.ToggleFlag(0, 1)
	g.Reveal(1, 1)
	if !g.Lost() {
		t.Fatal("round should be lost")
	}

	g.Reset()
	if g.State() != StateNotStarted {
		t.Errorf("state = %v, want %v", g.State(), StateNotStarted)
	}
	if g.Board().Mines() != 0 || g.FlagCount() != 0 {
		t.Error("reset should clear mines and flags")
	}

	// The next round plays from scratch.
	g.Reveal(0, 0)
	if g.State() != StateInProgress {
		t.Errorf("state after new first reveal = %v, want %v", g.State(), StateInProgress)
	}
}

func TestGameConfigure(t *testing.T) {
	g, err := NewGame(Config{Width: 8, Height: 8, Mines: 10})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	if err := g.Configure(Config{Width: 32, Height: 16, Mines: 99}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if g.Board().Width() != 32 || g.Board().Height() != 16 {
		t.Errorf("board = %dx%d, want 32x16", g.Board().Width(), g.Board().Height())
	}
	if g.State() != StateNotStarted {
		t.Errorf("state = %v, want %v", g.State(), StateNotStarted)
	}

	// A rejected config leaves the session untouched.
	if err := g.Configure(Config{Width: 3, Height: 3, Mines: 9}); err == nil {
		t.Fatal("Configure should reject an unplaceable mine target")
	}
	if g.Board().Width() != 32 || g.Board().Height() != 16 {
		t.Error("failed configure must keep the previous board")
	}
}

func TestGameMarks(t *testing.T) {
	g, err := NewGame(tinyConfig())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	// Marks disabled: the toggle is a two-state cycle.
	g.ToggleFlag(0, 1)
	g.ToggleFlag(0, 1)
	tile := g.Board().Tile(0, 1)
	if tile.Flagged() || tile.Marked() {
		t.Error("without marks the second toggle should clear the tile")
	}

	g.SetMarks(true)
	if !g.Marks() {
		t.Error("marks should be enabled")
	}
	g.ToggleFlag(0, 1)
	g.ToggleFlag(0, 1)
	if !tile.Marked() || tile.Flagged() {
		t.Error("with marks the second toggle should leave a mark")
	}
}

func TestGameSnapshot(t *testing.T) {
	g, err := NewGame(tinyConfig())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	g.Reveal(0, 0)
	g.ToggleFlag(1, 1)

	snap := g.Snapshot()
	if snap.State != StateWon {
		t.Errorf("state = %v, want %v", snap.State, StateWon)
	}
	if snap.Width != 2 || snap.Height != 2 {
		t.Errorf("size = %dx%d, want 2x2", snap.Width, snap.Height)
	}
	if snap.MineTarget != 1 || snap.Mines != 1 || snap.Flags != 1 || snap.MinesLeft != 0 {
		t.Errorf("target=%d mines=%d flags=%d left=%d, want 1 1 1 0",
			snap.MineTarget, snap.Mines, snap.Flags, snap.MinesLeft)
	}

	want := []string{
		"1#",
		"#F",
	}
	if layoutString(snap.Layout) != layoutString(want) {
		t.Errorf("layout:\n%s\nwant:\n%s", layoutString(snap.Layout), layoutString(want))
	}
}

func TestStateStrings(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateNotStarted, "not_started"},
		{StateInProgress, "in_progress"},
		{StateWon, "won"},
		{StateLost, "lost"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		d      Difficulty
		width  int
		height int
		mines  int
	}{
		{Beginner, 8, 8, 10},
		{Intermediate, 16, 16, 40},
		{Expert, 32, 16, 99},
	}
	for _, tt := range tests {
		if tt.d.Width != tt.width || tt.d.Height != tt.height || tt.d.Mines != tt.mines {
			t.Errorf("%s = %dx%d/%d, want %dx%d/%d",
				tt.d.Name, tt.d.Width, tt.d.Height, tt.d.Mines, tt.width, tt.height, tt.mines)
		}
		if !tt.d.IsPreset() {
			t.Errorf("%s should be a preset", tt.d.Name)
		}
		cfg := tt.d.Config()
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s config invalid: %v", tt.d.Name, err)
		}
	}
}

func TestDifficultyByName(t *testing.T) {
	d, ok := DifficultyByName("EXPERT")
	if !ok || d.Mines != 99 {
		t.Errorf("lookup EXPERT = %+v, %v", d, ok)
	}
	if _, ok := DifficultyByName("impossible"); ok {
		t.Error("unknown difficulty should not resolve")
	}
}

func TestCustomDifficulty(t *testing.T) {
	d := Custom(10, 12, 20)
	if d.IsPreset() {
		t.Error("custom rounds are not presets")
	}
	if d.Title() != "Custom" {
		t.Errorf("title = %q, want Custom", d.Title())
	}
	cfg := d.Config()
	if cfg.Width != 10 || cfg.Height != 12 || cfg.Mines != 20 {
		t.Errorf("config = %+v, want 10x12/20", cfg)
	}
}
