package core

// Polygon is a closed outline on the grid. The last vertex connects back to the first.
type Polygon []GridPos

// Contains reports whether p lies inside the polygon or on one of its edges.
// Uses the even-odd rule.
func (poly Polygon) Contains(p GridPos) bool {
	n := len(poly)
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[j], poly[i]
		if onSegment(a, b, p) {
			return true
		}
		// Edge crosses the horizontal ray to the right of p
		if (a.Y > p.Y) != (b.Y > p.Y) {
			// x of the crossing, compared without division
			lhs := (p.X - a.X) * (b.Y - a.Y)
			rhs := (b.X - a.X) * (p.Y - a.Y)
			if b.Y > a.Y {
				if lhs < rhs {
					inside = !inside
				}
			} else if lhs > rhs {
				inside = !inside
			}
		}
	}
	return inside
}

// onSegment reports whether p lies on the segment a-b.
func onSegment(a, b, p GridPos) bool {
	cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	if cross != 0 {
		return false
	}
	return p.X >= min(a.X, b.X) && p.X <= max(a.X, b.X) &&
		p.Y >= min(a.Y, b.Y) && p.Y <= max(a.Y, b.Y)
}

// Bounds returns the smallest rectangle (inclusive corners) covering the polygon.
func (poly Polygon) Bounds() (topLeft, bottomRight GridPos) {
	if len(poly) == 0 {
		return GridPos{}, GridPos{}
	}
	topLeft, bottomRight = poly[0], poly[0]
	for _, p := range poly[1:] {
		topLeft.X = min(topLeft.X, p.X)
		topLeft.Y = min(topLeft.Y, p.Y)
		bottomRight.X = max(bottomRight.X, p.X)
		bottomRight.Y = max(bottomRight.Y, p.Y)
	}
	return topLeft, bottomRight
}

// Track is the course drawn under the race.
// It is decorative: move validation never looks at it.
type Track struct {
	ID    string
	Name  string
	Outer Polygon
	Inner Polygon
	Start []GridPos // Start line cells, drawn only

	Metadata map[string]string // Free-form notes from the track file (author, difficulty)
}

// OnCourse reports whether p is on the road between the outer and inner edges.
func (t Track) OnCourse(p GridPos) bool {
	return t.Outer.Contains(p) && !t.Inner.Contains(p)
}

// Bounds returns the extent of the outer edge.
func (t Track) Bounds() (topLeft, bottomRight GridPos) {
	return t.Outer.Bounds()
}

// Center returns the middle of the track's bounds.
func (t Track) Center() GridPos {
	tl, br := t.Bounds()
	return GridPos{X: (tl.X + br.X) / 2, Y: (tl.Y + br.Y) / 2}
}

// PaperTrack returns the course from the original paper-and-pencil board.
func PaperTrack() Track {
	return Track{
		ID:    "paper",
		Name:  "Paper Loop",
		Outer: Polygon{{8, 8}, {12, 8}, {14, 14}, {12, 16}, {8, 16}},
		Inner: Polygon{{9, 9}, {10, 9}, {10, 12}, {9, 12}},
		Start: []GridPos{{8, 13}, {9, 13}, {10, 13}},
	}
}
