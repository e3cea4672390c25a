package mines

// Tile is one cell of the board: a set of independent facets plus the
// neighbor-mine count. Two facets are coupled: a tile is never both flagged
// and marked, and exploded only ever appears on a mined tile.
type Tile struct {
	uncovered bool
	mined     bool
	flagged   bool
	marked    bool
	exploded  bool
	mineCount int
}

// Uncovered returns true if the tile has been revealed.
func (t *Tile) Uncovered() bool {
	return t.uncovered
}

// Covered returns true if the tile has not been revealed.
func (t *Tile) Covered() bool {
	return !t.uncovered
}

// Mined returns true if the tile holds a mine.
func (t *Tile) Mined() bool {
	return t.mined
}

// Flagged returns true if the tile carries a flag annotation.
func (t *Tile) Flagged() bool {
	return t.flagged
}

// Marked returns true if the tile carries a "?" annotation.
func (t *Tile) Marked() bool {
	return t.marked
}

// Exploded returns true if a mine on this tile has been set off.
func (t *Tile) Exploded() bool {
	return t.exploded
}

// MineCount returns the number of mined neighbors (0-8).
func (t *Tile) MineCount() int {
	return t.mineCount
}

// Reveal uncovers the tile. Idempotent: revealing an uncovered tile does
// nothing further.
func (t *Tile) Reveal() {
	t.uncovered = true
}

// SetFlag places a flag, clearing any mark.
func (t *Tile) SetFlag() {
	t.flagged = true
	t.marked = false
}

// ClearFlag removes the flag.
func (t *Tile) ClearFlag() {
	t.flagged = false
}

// SetMark places a "?" mark, clearing any flag.
func (t *Tile) SetMark() {
	t.marked = true
	t.flagged = false
}

// ClearMark removes the mark.
func (t *Tile) ClearMark() {
	t.marked = false
}

// Detonate sets the tile off. Only meaningful on a mined tile; detonating
// anything else does nothing.
func (t *Tile) Detonate() {
	if t.mined {
		t.exploded = true
	}
}

// SetMineCount records the number of mined neighbors.
func (t *Tile) SetMineCount(n int) {
	t.mineCount = n
}

func (t *Tile) mine() {
	t.mined = true
}

// reset returns every facet to its zero value.
func (t *Tile) reset() {
	*t = Tile{}
}
