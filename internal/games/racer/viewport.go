package racer

import (
	platformcore "github.com/vovakirdan/paperacers/internal/core"
	"github.com/vovakirdan/paperacers/internal/games/racer/core"
)

// Viewport maps grid points to screen cells and back.
// Grid point Origin is drawn at screen cell (Left, Top); each grid step
// spans CellW columns and CellH rows.
type Viewport struct {
	CellW, CellH  int
	Left, Top     int
	Width, Height int // Screen cells available to the grid
	Origin        core.GridPos
}

// ToScreen returns the screen cell of grid point p.
func (v Viewport) ToScreen(p core.GridPos) (x, y int) {
	return v.Left + (p.X-v.Origin.X)*v.CellW, v.Top + (p.Y-v.Origin.Y)*v.CellH
}

// ToGrid returns the grid point nearest to screen cell (x, y).
// Halfway cells round toward the next grid point.
func (v Viewport) ToGrid(x, y int) core.GridPos {
	return core.GridPos{
		X: roundDiv(x-v.Left, v.CellW) + v.Origin.X,
		Y: roundDiv(y-v.Top, v.CellH) + v.Origin.Y,
	}
}

// roundDiv divides a by b rounding to nearest, halves up. b must be positive.
func roundDiv(a, b int) int {
	return platformcore.FloorDiv(2*a+b, 2*b)
}

// Cols returns how many grid columns fit in the viewport.
func (v Viewport) Cols() int {
	if v.Width <= 0 {
		return 0
	}
	return (v.Width-1)/v.CellW + 1
}

// Rows returns how many grid rows fit in the viewport.
func (v Viewport) Rows() int {
	if v.Height <= 0 {
		return 0
	}
	return (v.Height-1)/v.CellH + 1
}

// Visible reports whether grid point p is drawn.
func (v Viewport) Visible(p core.GridPos) bool {
	dx, dy := p.X-v.Origin.X, p.Y-v.Origin.Y
	return dx >= 0 && dx < v.Cols() && dy >= 0 && dy < v.Rows()
}

// Area returns the screen rectangle reserved for the grid.
func (v Viewport) Area() platformcore.Rect {
	return platformcore.NewRect(v.Left, v.Top, v.Width, v.Height)
}

// CenterOn scrolls so that p is in the middle of the viewport.
func (v *Viewport) CenterOn(p core.GridPos) {
	v.Origin = core.GridPos{X: p.X - v.Cols()/2, Y: p.Y - v.Rows()/2}
}

// Follow scrolls the minimum amount that keeps p at least margin points
// away from the viewport edges.
func (v *Viewport) Follow(p core.GridPos, margin int) {
	v.Origin.X = follow(v.Origin.X, p.X, v.Cols(), margin)
	v.Origin.Y = follow(v.Origin.Y, p.Y, v.Rows(), margin)
}

func follow(origin, p, span, margin int) int {
	if span <= 0 {
		return origin
	}
	margin = platformcore.Clamp(margin, 0, (span-1)/2)
	if p < origin+margin {
		return p - margin
	}
	if p > origin+span-1-margin {
		return p - (span - 1 - margin)
	}
	return origin
}
