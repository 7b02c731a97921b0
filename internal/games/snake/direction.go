package snake

import (
	"fmt"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

// Point is a grid cell.
type Point struct {
	X, Y int
}

// Add returns the neighbouring cell one step in direction d.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the grid distance between two cells.
func (p Point) Manhattan(q Point) int {
	return core.Abs(p.X-q.X) + core.Abs(p.Y-q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four unit moves on the grid.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{DirRight, DirDown, DirLeft, DirUp}

// Delta returns the unit vector of the direction. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	default:
		panic(fmt.Sprintf("snake: invalid direction %d", int(d)))
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		panic(fmt.Sprintf("snake: invalid direction %d", int(d)))
	}
}

// Horizontal reports whether the direction moves along the x axis.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Turnable reports whether the snake, last moving in current, may be steered
// towards d. Only axis changes are allowed: a vertical move is accepted while
// the current vertical component is zero, and symmetrically for horizontal.
// This rejects both reversal and repeating the current direction.
func Turnable(current, d Direction) bool {
	cx, cy := current.Delta()
	dx, dy := d.Delta()
	if dy != 0 {
		return cy == 0
	}
	return dx != 0 && cx == 0
}

// DirectionBetween returns the direction of the single step from a to b.
// ok is false when the cells are not grid-adjacent.
func DirectionBetween(a, b Point) (d Direction, ok bool) {
	switch (Point{X: b.X - a.X, Y: b.Y - a.Y}) {
	case Point{X: 1, Y: 0}:
		return DirRight, true
	case Point{X: -1, Y: 0}:
		return DirLeft, true
	case Point{X: 0, Y: 1}:
		return DirDown, true
	case Point{X: 0, Y: -1}:
		return DirUp, true
	default:
		return 0, false
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
