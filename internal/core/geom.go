// Package core provides fundamental types shared by the simulation and the
// platform layer. It has no third-party dependencies (especially no Bubble Tea)
// so game logic stays pure and testable.
package core

// Rect is an axis-aligned box on the integer grid. Edges are half-open:
// a rect covers columns [X, X+W) and rows [Y, Y+H).
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Square returns a size×size rect anchored at (x, y).
func Square(x, y, size int) Rect {
	return Rect{X: x, Y: y, W: size, H: size}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the cell (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
