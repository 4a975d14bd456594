// Package core contains the pure rules of Paperacers: grid coordinates, the
// race state machine that validates moves against momentum, and the decorative
// track geometry. It has no platform dependencies.
package core

import "fmt"

// GridPos is a point on the movement lattice.
// X increases to the right, Y increases downward.
type GridPos struct {
	X int
	Y int
}

// Pos is a convenience constructor for GridPos.
func Pos(x, y int) GridPos {
	return GridPos{X: x, Y: y}
}

// String returns a string representation of the position.
func (p GridPos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the component-wise sum of two positions.
func (p GridPos) Add(other GridPos) GridPos {
	return GridPos{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the displacement from other to p.
func (p GridPos) Sub(other GridPos) GridPos {
	return GridPos{X: p.X - other.X, Y: p.Y - other.Y}
}

// IsAdjacent reports whether a and b are king-move neighbors.
// A position is never adjacent to itself.
func IsAdjacent(a, b GridPos) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	switch dx {
	case 1, -1:
		return dy >= -1 && dy <= 1
	case 0:
		return dy == 1 || dy == -1
	default:
		return false
	}
}

// IsAdjacentOrEqual reports whether b lies in the 3x3 window centered on a.
func IsAdjacentOrEqual(a, b GridPos) bool {
	return a == b || IsAdjacent(a, b)
}

// Neighborhood returns the 3x3 window centered on c in row-major order.
func Neighborhood(c GridPos) []GridPos {
	cells := make([]GridPos, 0, 9)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			cells = append(cells, GridPos{X: c.X + dx, Y: c.Y + dy})
		}
	}
	return cells
}

// Neighbors returns the 8 cells adjacent to c in row-major order.
func Neighbors(c GridPos) []GridPos {
	cells := make([]GridPos, 0, 8)
	for _, n := range Neighborhood(c) {
		if n != c {
			cells = append(cells, n)
		}
	}
	return cells
}
