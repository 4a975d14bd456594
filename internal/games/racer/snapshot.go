package racer

import "github.com/vovakirdan/paperacers/internal/games/racer/core"

// MoveResult is the outcome of the most recent committed move.
type MoveResult string

const (
	ResultNone     MoveResult = "none"
	ResultAccepted MoveResult = "accepted"
	ResultRejected MoveResult = "rejected"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Track    string
	Path     []core.GridPos
	Cursor   core.GridPos
	Valid    bool // Whether the race would accept Cursor
	Last     MoveResult
	TooSmall bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Track:    g.track.ID,
		Path:     g.race.Path(),
		Cursor:   g.cursor,
		Valid:    g.race.ValidMove(g.cursor),
		Last:     g.last,
		TooSmall: g.tooSmall,
	}
}
