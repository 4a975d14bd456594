package core

import (
	"slices"
	"testing"
)

// raceWith builds a race whose path is exactly moves.
// Fails the test if any move is rejected.
func raceWith(t *testing.T, moves ...GridPos) *Race {
	t.Helper()
	r := NewRace()
	for _, m := range moves {
		if !r.Accept(m) {
			t.Fatalf("setup move %v rejected after path %v", m, r.Path())
		}
	}
	return r
}

func TestValidMoveEmptyPath(t *testing.T) {
	r := NewRace()

	for _, p := range []GridPos{Pos(0, 0), Pos(-50, 12), Pos(1000, -1000)} {
		if !r.ValidMove(p) {
			t.Errorf("ValidMove(%v) on empty path = false, expected true", p)
		}
	}
}

func TestValidMoveSingleEntry(t *testing.T) {
	r := raceWith(t, Pos(0, 0))

	tests := []struct {
		name      string
		candidate GridPos
		expected  bool
	}{
		{"stationary rejected", Pos(0, 0), false},
		{"adjacent accepted", Pos(1, 0), true},
		{"diagonal accepted", Pos(-1, 1), true},
		{"two steps rejected", Pos(2, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.ValidMove(tc.candidate); got != tc.expected {
				t.Errorf("ValidMove(%v) = %v, expected %v", tc.candidate, got, tc.expected)
			}
		})
	}
}

func TestValidMoveMomentum(t *testing.T) {
	r := raceWith(t, Pos(0, 0), Pos(1, 0))

	tests := []struct {
		name      string
		candidate GridPos
		expected  bool
	}{
		{"coast to projection", Pos(2, 0), true},
		{"accelerate", Pos(3, 0), true},
		{"accelerate and steer", Pos(3, 1), true},
		{"brake", Pos(1, 0), true},
		{"steer up", Pos(2, -1), true},
		{"too far", Pos(4, 0), false},
		{"reverse", Pos(0, 0), false},
		{"too wide", Pos(2, 2), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.ValidMove(tc.candidate); got != tc.expected {
				t.Errorf("ValidMove(%v) = %v, expected %v", tc.candidate, got, tc.expected)
			}
		})
	}
}

func TestValidMoveStationaryAfterStop(t *testing.T) {
	// Braking to zero velocity makes staying put the coasting point.
	r := raceWith(t, Pos(0, 0), Pos(1, 0), Pos(1, 0))

	if !r.ValidMove(Pos(1, 0)) {
		t.Error("ValidMove should allow staying put with zero velocity")
	}
	if r.ValidMove(Pos(3, 0)) {
		t.Error("ValidMove should reject two steps from a standstill")
	}
}

func TestValidMoveUsesLastTwoEntries(t *testing.T) {
	r := raceWith(t, Pos(0, 0), Pos(1, 1), Pos(3, 3), Pos(5, 4))

	// Velocity is (2,1); projection (7,5).
	if !r.ValidMove(Pos(7, 5)) {
		t.Error("ValidMove should accept the projection of the last two moves")
	}
	if r.ValidMove(Pos(7, 7)) {
		t.Error("ValidMove should not project from older moves")
	}
}

func TestValidMoveIsPure(t *testing.T) {
	r := raceWith(t, Pos(0, 0), Pos(1, 0))
	before := r.Path()

	first := r.ValidMove(Pos(3, 1))
	for i := 0; i < 10; i++ {
		if r.ValidMove(Pos(3, 1)) != first {
			t.Fatal("ValidMove returned different results for the same candidate")
		}
		r.ValidMove(Pos(9, 9))
	}

	if !slices.Equal(before, r.Path()) {
		t.Errorf("ValidMove mutated path: before %v, after %v", before, r.Path())
	}
}

func TestUpdateStateRejectLeavesPathUnchanged(t *testing.T) {
	r := raceWith(t, Pos(0, 0), Pos(1, 0))
	before := r.Path()

	r.UpdateState(Pos(4, 0))

	after := r.Path()
	if !slices.Equal(before, after) {
		t.Errorf("path changed after invalid move: before %v, after %v", before, after)
	}
}

func TestUpdateStateAcceptAppends(t *testing.T) {
	r := raceWith(t, Pos(0, 0), Pos(1, 0))
	before := r.Path()

	r.UpdateState(Pos(3, 1))

	after := r.Path()
	if len(after) != len(before)+1 {
		t.Fatalf("path length = %d, expected %d", len(after), len(before)+1)
	}
	if !slices.Equal(before, after[:len(before)]) {
		t.Errorf("prior entries changed: before %v, after %v", before, after)
	}
	if after[len(after)-1] != Pos(3, 1) {
		t.Errorf("last entry = %v, expected %v", after[len(after)-1], Pos(3, 1))
	}
}

func TestAcceptReportsOutcome(t *testing.T) {
	r := NewRace()

	if !r.Accept(Pos(5, 5)) {
		t.Error("Accept on empty path should succeed")
	}
	if r.Accept(Pos(5, 5)) {
		t.Error("Accept of stationary second move should fail")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", r.Len())
	}
}

func TestPathIsCopy(t *testing.T) {
	r := raceWith(t, Pos(0, 0), Pos(1, 0))

	p := r.Path()
	p[0] = Pos(99, 99)

	if r.Path()[0] != Pos(0, 0) {
		t.Error("modifying Path() result should not affect the race")
	}
}

func TestVelocityAndProjection(t *testing.T) {
	r := NewRace()

	if _, ok := r.Velocity(); ok {
		t.Error("Velocity should be undefined on empty path")
	}
	if _, ok := r.Last(); ok {
		t.Error("Last should be undefined on empty path")
	}

	r.UpdateState(Pos(2, 2))
	if _, ok := r.Projection(); ok {
		t.Error("Projection should be undefined with one entry")
	}

	r.UpdateState(Pos(3, 1))
	v, ok := r.Velocity()
	if !ok || v != Pos(1, -1) {
		t.Errorf("Velocity() = %v, %v, expected (1,-1), true", v, ok)
	}
	p, ok := r.Projection()
	if !ok || p != Pos(4, 0) {
		t.Errorf("Projection() = %v, %v, expected (4,0), true", p, ok)
	}
	last, _ := r.Last()
	if last != Pos(3, 1) {
		t.Errorf("Last() = %v, expected (3,1)", last)
	}
}

func TestCandidatesMatchValidMove(t *testing.T) {
	tests := []struct {
		name     string
		path     []GridPos
		expected int
	}{
		{"single entry", []GridPos{Pos(0, 0)}, 8},
		{"moving", []GridPos{Pos(0, 0), Pos(1, 0)}, 9},
		{"fast diagonal", []GridPos{Pos(0, 0), Pos(1, 1), Pos(3, 3)}, 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := raceWith(t, tc.path...)
			cands := r.Candidates()
			if len(cands) != tc.expected {
				t.Fatalf("Candidates() returned %d cells, expected %d", len(cands), tc.expected)
			}
			for _, c := range cands {
				if !r.ValidMove(c) {
					t.Errorf("candidate %v rejected by ValidMove", c)
				}
			}

			// Nothing outside the candidate set should be accepted nearby.
			last, _ := r.Last()
			for dx := -6; dx <= 6; dx++ {
				for dy := -6; dy <= 6; dy++ {
					p := last.Add(Pos(dx, dy))
					if r.ValidMove(p) && !slices.Contains(cands, p) {
						t.Errorf("ValidMove accepts %v which is not a candidate", p)
					}
				}
			}
		})
	}

	if NewRace().Candidates() != nil {
		t.Error("Candidates() on empty path should be nil")
	}
}

func TestReset(t *testing.T) {
	r := raceWith(t, Pos(0, 0), Pos(1, 0), Pos(2, 0))
	r.Reset()

	if r.Len() != 0 {
		t.Errorf("Len() after Reset = %d, expected 0", r.Len())
	}
	if !r.ValidMove(Pos(40, 40)) {
		t.Error("any first move should be valid after Reset")
	}
}
