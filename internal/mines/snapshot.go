package mines

import (
	"fmt"
	"strings"
)

// Snapshot captures the observable session state for tests and logging.
type Snapshot struct {
	State      State
	Width      int
	Height     int
	MineTarget int
	Mines      int
	Flags      int
	MinesLeft  int
	Layout     []string
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:      g.state,
		Width:      g.board.width,
		Height:     g.board.height,
		MineTarget: g.board.mineTarget,
		Mines:      g.board.Mines(),
		Flags:      g.flags,
		MinesLeft:  g.MinesLeft(),
		Layout:     g.board.Layout(),
	}
}

// Layout dumps the board one rune per tile, full knowledge, top row first:
//
//	X exploded    F flagged     ? marked
//	* covered mine              # covered safe tile
//	. uncovered zero            1-8 uncovered count
func (b *Board) Layout() []string {
	rows := make([]string, 0, b.height)
	var sb strings.Builder
	for y := range b.height {
		sb.Reset()
		for x := range b.width {
			sb.WriteRune(b.tileAt(x, y).layoutRune())
		}
		rows = append(rows, sb.String())
	}
	return rows
}

func (t *Tile) layoutRune() rune {
	switch {
	case t.exploded:
		return 'X'
	case t.flagged:
		return 'F'
	case t.marked:
		return '?'
	case !t.uncovered && t.mined:
		return '*'
	case !t.uncovered:
		return '#'
	case t.mineCount == 0:
		return '.'
	default:
		return rune('0' + t.mineCount)
	}
}

// ParseBoard builds a covered board from a textual layout, one rune per
// tile: '*' is a mine, '.' and '#' are safe tiles. Rows must share one
// width. Neighbor counts are computed and the mine target is set to the
// number of mines in the layout.
func ParseBoard(rows []string) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("parse board: empty layout")
	}
	width := len(rows[0])
	height := len(rows)

	b := &Board{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("parse board: row %d is %d wide, want %d", y, len(row), width)
		}
		for x, r := range row {
			switch r {
			case '*':
				b.tileAt(x, y).mine()
				b.mineTarget++
			case '.', '#':
			default:
				return nil, fmt.Errorf("parse board: unexpected %q at (%d,%d)", r, x, y)
			}
		}
	}
	b.countNeighborMines()
	return b, nil
}
