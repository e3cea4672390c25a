// Package mines implements the minesweeper board and game session: tile
// state, lazy first-click-safe mine placement, flood-fill reveal, flagging,
// chord resolution, and the win/loss predicate. The package is pure game
// logic with no rendering, timing, or I/O; randomness is injected for mine
// placement.
package mines

import (
	"fmt"
	"math/rand"

	"github.com/gammazero/deque"
)

// Point is a board coordinate.
type Point struct {
	X, Y int
}

// Board is a rectangular grid of tiles. It owns all tile mutation: mine
// placement, reveal, flagging, chord resolution, and the termination
// predicate. A board starts empty and is seeded once per round by
// PlaceMines, triggered by the first reveal intent.
type Board struct {
	width      int
	height     int
	mineTarget int
	tiles      []Tile // row-major, y*width+x
}

// NewBoard creates an empty board with no mines placed.
func NewBoard(width, height, mineTarget int) (*Board, error) {
	b := &Board{}
	if err := b.Resize(width, height); err != nil {
		return nil, err
	}
	if err := b.SetMineTarget(mineTarget); err != nil {
		return nil, err
	}
	return b, nil
}

// maxMines returns the largest placeable mine target for the dimensions.
// Placement keeps the first click's entire row and column clear, so only
// (width-1)*(height-1) cells are ever eligible.
func maxMines(width, height int) int {
	return (width - 1) * (height - 1)
}

// Resize replaces the grid with freshly defaulted tiles. The mine target is
// a separate setting and carries over; shrinking below it is rejected, so
// lower the target first when going down in size.
func (b *Board) Resize(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("board %dx%d: dimensions must be at least 1", width, height)
	}
	if b.mineTarget > maxMines(width, height) {
		return fmt.Errorf("board %dx%d cannot hold %d mines (max %d)", width, height, b.mineTarget, maxMines(width, height))
	}
	b.width = width
	b.height = height
	b.tiles = make([]Tile, width*height)
	return nil
}

// SetMineTarget sets the number of mines the next placement will seed.
// Placement must be able to terminate, so the target is capped at
// (width-1)*(height-1), the cells left eligible once a first click's row
// and column are excluded.
func (b *Board) SetMineTarget(n int) error {
	if n < 0 || n > maxMines(b.width, b.height) {
		return fmt.Errorf("mine target %d out of range for %dx%d board (0-%d)", n, b.width, b.height, maxMines(b.width, b.height))
	}
	b.mineTarget = n
	return nil
}

// Clear resets every tile to its default state, dropping mines, counts and
// annotations. Dimensions and mine target are kept.
func (b *Board) Clear() {
	for i := range b.tiles {
		b.tiles[i].reset()
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// MineTarget returns the configured mine count.
func (b *Board) MineTarget() int {
	return b.mineTarget
}

// InBounds returns true if (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Tile returns the tile at (x, y), or nil if the coordinate is off the
// board. Mutation goes through the board operations.
func (b *Board) Tile(x, y int) *Tile {
	if !b.InBounds(x, y) {
		return nil
	}
	return b.tileAt(x, y)
}

func (b *Board) tileAt(x, y int) *Tile {
	return &b.tiles[y*b.width+x]
}

// Neighbors returns the coordinates of the up-to-8 Moore-neighbors of
// (x, y) that lie on the board.
func (b *Board) Neighbors(x, y int) []Point {
	points := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if b.InBounds(nx, ny) {
				points = append(points, Point{nx, ny})
			}
		}
	}
	return points
}

// PlaceMines seeds the board with exactly the configured number of mines,
// then computes every tile's neighbor count. Called once per round, on the
// first reveal intent. Candidates are sampled uniformly and rejected while
// they land on an already mined cell, on the excluded column, or on the
// excluded row: the first click's whole row and column stay mine-free.
func (b *Board) PlaceMines(excludeX, excludeY int, rng *rand.Rand) {
	remaining := b.mineTarget
	for remaining > 0 {
		x := rng.Intn(b.width)
		y := rng.Intn(b.height)
		t := b.tileAt(x, y)
		if t.mined || x == excludeX || y == excludeY {
			continue
		}
		t.mine()
		remaining--
	}
	b.countNeighborMines()
}

// countNeighborMines recomputes every tile's mine count. Counts are stored
// uniformly, mined tiles included.
func (b *Board) countNeighborMines() {
	for y := range b.height {
		for x := range b.width {
			n := 0
			for _, p := range b.Neighbors(x, y) {
				if b.tileAt(p.X, p.Y).mined {
					n++
				}
			}
			b.tileAt(x, y).SetMineCount(n)
		}
	}
}

// Reveal uncovers the tile at (x, y) and flood-fills outward through
// zero-count territory. Out-of-bounds, uncovered and flagged tiles are
// no-ops, which is also what bounds the cascade: it spreads only from
// zero-count non-mined tiles, so numbered tiles form its one-tile border
// and flags are never crossed. An explicit work-list keeps the traversal
// flat regardless of board size.
func (b *Board) Reveal(x, y int) {
	var work deque.Deque[Point]
	work.PushBack(Point{X: x, Y: y})

	for work.Len() > 0 {
		p := work.PopFront()
		t := b.Tile(p.X, p.Y)
		if t == nil || t.uncovered || t.flagged {
			continue
		}

		t.Reveal()

		if t.mined || t.mineCount > 0 {
			continue
		}
		for _, n := range b.Neighbors(p.X, p.Y) {
			work.PushBack(n)
		}
	}
}

// Detonate sets off a mine at (x, y): the tile is marked exploded but stays
// covered. No-op if the coordinate is off the board or the tile is not
// mined. This is the reveal intent's path for mined tiles; the flood fill
// never reaches one.
func (b *Board) Detonate(x, y int) {
	if t := b.Tile(x, y); t != nil {
		t.Detonate()
	}
}

// ToggleFlag advances the annotation cycle on the covered tile at (x, y)
// and returns the flag-count delta (-1, 0 or +1). With marks disabled the
// cycle is unflagged <-> flagged; with marks enabled it runs unflagged ->
// flagged -> marked -> unflagged. Out-of-bounds coordinates and uncovered
// tiles are no-ops.
func (b *Board) ToggleFlag(x, y int, marksEnabled bool) int {
	t := b.Tile(x, y)
	if t == nil || t.uncovered {
		return 0
	}
	switch {
	case t.flagged:
		t.ClearFlag()
		if marksEnabled {
			t.SetMark()
		}
		return -1
	case t.marked:
		t.ClearMark()
		return 0
	default:
		t.SetFlag()
		return 1
	}
}

// Chord resolves the two-button action on the numbered tile at (x, y). The
// flagged-neighbor count must exactly match the tile's mine count,
// otherwise nothing happens. On a match every unflagged neighbor is
// resolved: mined neighbors detonate (a misplaced flag surfaces as a loss)
// and the rest are revealed with the usual cascade.
func (b *Board) Chord(x, y int) {
	t := b.Tile(x, y)
	if t == nil || t.mineCount == 0 {
		return
	}

	neighbors := b.Neighbors(x, y)
	flags := 0
	for _, p := range neighbors {
		if b.tileAt(p.X, p.Y).flagged {
			flags++
		}
	}
	if flags != t.mineCount {
		return
	}

	for _, p := range neighbors {
		n := b.tileAt(p.X, p.Y)
		if n.flagged {
			continue
		}
		if n.mined {
			n.Detonate()
		} else {
			b.Reveal(p.X, p.Y)
		}
	}
}

// Flags returns the number of flagged tiles.
func (b *Board) Flags() int {
	n := 0
	for i := range b.tiles {
		if b.tiles[i].flagged {
			n++
		}
	}
	return n
}

// Mines returns the number of mined tiles. Zero until placement.
func (b *Board) Mines() int {
	n := 0
	for i := range b.tiles {
		if b.tiles[i].mined {
			n++
		}
	}
	return n
}

// Exploded returns true if any tile on the board has been set off.
func (b *Board) Exploded() bool {
	for i := range b.tiles {
		if b.tiles[i].exploded {
			return true
		}
	}
	return false
}

// GameOver evaluates the termination predicate: true on any explosion
// (loss), or when every tile is either uncovered or a correctly flagged
// mine (win). Pure and idempotent; the session re-checks it after every
// mutating intent.
func (b *Board) GameOver() bool {
	if b.Exploded() {
		return true
	}
	for i := range b.tiles {
		t := &b.tiles[i]
		if t.uncovered {
			continue
		}
		if !t.flagged || !t.mined {
			return false
		}
	}
	return true
}
