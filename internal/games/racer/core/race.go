package core

// Race holds the accepted path of a single car.
// Momentum is always derived from the last two path entries.
//
// A Race is not safe for concurrent use; the owning input loop serializes calls.
type Race struct {
	path []GridPos
}

// NewRace creates a race with an empty path.
func NewRace() *Race {
	return &Race{}
}

// UpdateState appends candidate to the path if it is a valid move.
// Invalid candidates are discarded so the player can simply pick again.
func (r *Race) UpdateState(candidate GridPos) {
	r.Accept(candidate)
}

// Accept behaves like UpdateState but reports whether candidate was appended.
func (r *Race) Accept(candidate GridPos) bool {
	if !r.ValidMove(candidate) {
		return false
	}
	r.path = append(r.path, candidate)
	return true
}

// ValidMove reports whether candidate would be accepted. It never mutates the race.
func (r *Race) ValidMove(candidate GridPos) bool {
	switch n := len(r.path); n {
	case 0:
		return isOnStartingLine(candidate)
	case 1:
		// Second move must leave the first cell.
		return IsAdjacent(r.path[0], candidate)
	default:
		projected := Extrapolate(r.path[n-2], r.path[n-1])
		return IsAdjacentOrEqual(projected, candidate)
	}
}

// isOnStartingLine is the hook for a starting-line rule. Any first move is accepted.
func isOnStartingLine(GridPos) bool {
	return true
}

// Extrapolate continues the move from start to end with unchanged velocity.
func Extrapolate(start, end GridPos) GridPos {
	return end.Add(end.Sub(start))
}

// Path returns a copy of the accepted positions, oldest first.
func (r *Race) Path() []GridPos {
	out := make([]GridPos, len(r.path))
	copy(out, r.path)
	return out
}

// Len returns the number of accepted positions.
func (r *Race) Len() int {
	return len(r.path)
}

// Last returns the current position, if any.
func (r *Race) Last() (GridPos, bool) {
	if len(r.path) == 0 {
		return GridPos{}, false
	}
	return r.path[len(r.path)-1], true
}

// Velocity returns the displacement of the last move.
// It is only defined once two positions have been accepted.
func (r *Race) Velocity() (GridPos, bool) {
	n := len(r.path)
	if n < 2 {
		return GridPos{}, false
	}
	return r.path[n-1].Sub(r.path[n-2]), true
}

// Projection returns the coasting point for the next move.
func (r *Race) Projection() (GridPos, bool) {
	n := len(r.path)
	if n < 2 {
		return GridPos{}, false
	}
	return Extrapolate(r.path[n-2], r.path[n-1]), true
}

// Candidates returns every cell that ValidMove would accept next.
// A nil result means the next move is unconstrained.
func (r *Race) Candidates() []GridPos {
	switch len(r.path) {
	case 0:
		return nil
	case 1:
		return Neighbors(r.path[0])
	default:
		projected, _ := r.Projection()
		return Neighborhood(projected)
	}
}

// Reset clears the path for a new race.
func (r *Race) Reset() {
	r.path = r.path[:0]
}
