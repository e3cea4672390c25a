package tui

// Rect is a screen-space rectangle used for mouse hit-testing.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// Cell converts a screen position inside the rectangle to board
// coordinates, with every cell rendered cellWidth columns wide.
func (r Rect) Cell(x, y int) (int, int, bool) {
	if !r.Contains(x, y) {
		return 0, 0, false
	}
	return (x - r.X) / cellWidth, y - r.Y, true
}

// Clamp restricts a value to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
