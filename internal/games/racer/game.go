// Package racer provides Paperacers, a vector racing game on squared paper.
//
// The player picks grid points one after another. After the first two moves
// the car keeps its velocity: the next point must lie in the 3x3 window around
// the point the last move would reach if repeated.
package racer

import (
	"github.com/vovakirdan/paperacers/internal/config"
	platformcore "github.com/vovakirdan/paperacers/internal/core"
	"github.com/vovakirdan/paperacers/internal/games/racer/core"
	"github.com/vovakirdan/paperacers/internal/registry"
)

const (
	hudHeight  = 2  // Status line and separator
	minScreenW = 24 // Narrowest screen the HUD stays readable on
	keyMargin  = 1  // Grid points kept between a keyboard cursor and the edge
)

// Game implements the racer on top of core.Race.
type Game struct {
	race  *core.Race
	track core.Track
	cfg   config.RacerConfig

	cursor core.GridPos
	view   Viewport
	last   MoveResult
	events platformcore.EventLog

	// Screen dimensions
	screenW int
	screenH int

	tick     uint64
	tooSmall bool
}

// Package-level configuration, set by the CLI before registry.Create.
var (
	racerConfig   = config.DefaultRacerConfig()
	selectedTrack = core.PaperTrack()
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.RacerConfig) {
	racerConfig = cfg
}

// SetTrack sets the track used by games created afterwards.
func SetTrack(t core.Track) {
	selectedTrack = t
}

// SelectedTrack returns the track new games will use.
func SelectedTrack() core.Track {
	return selectedTrack
}

func init() {
	registry.Register("racer", func() registry.Game {
		return New()
	})
}

// New creates a racer using the package-level configuration and track.
func New() *Game {
	return NewWithTrack(racerConfig, selectedTrack)
}

// NewWithTrack creates a racer with an explicit configuration and track.
func NewWithTrack(cfg config.RacerConfig, track core.Track) *Game {
	if cfg.Validate() != nil {
		cfg.Grid = config.DefaultRacerConfig().Grid
	}
	return &Game{
		race:  core.NewRace(),
		track: track,
		cfg:   cfg,
		last:  ResultNone,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "racer"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Paperacers"
}

// Reset starts a new race on a screen of the configured size.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.layout()
	g.restart()
}

// Resize adapts the layout to a new screen size without touching the race.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout()
	g.view.Follow(g.cursor, keyMargin)
}

// layout computes the viewport for the current screen size.
func (g *Game) layout() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < hudHeight+1
	g.view.CellW = g.cfg.Grid.CellW
	g.view.CellH = g.cfg.Grid.CellH
	g.view.Left = 1
	g.view.Top = hudHeight
	g.view.Width = max(g.screenW-1, 0)
	g.view.Height = max(g.screenH-hudHeight, 0)
}

// restart clears the path and puts the cursor on the start line.
func (g *Game) restart() {
	g.race.Reset()
	g.last = ResultNone
	g.cursor = g.track.Center()
	if len(g.track.Start) > 0 {
		g.cursor = g.track.Start[0]
	}
	g.view.CenterOn(g.track.Center())
	g.view.Follow(g.cursor, keyMargin)
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if in.Has(platformcore.ActionRestart) {
		g.restart()
		g.events.Add("race restarted", "track", g.track.ID)
		return platformcore.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	// Pointer events land on grid points before key moves are applied
	if in.Pointer.Active() && in.Pointer.Y >= g.view.Top {
		g.cursor = g.view.ToGrid(in.Pointer.X, in.Pointer.Y)
		g.view.Follow(g.cursor, 0)
		if in.Pointer.Clicked {
			g.commit()
		}
	}

	dx := in.Count(platformcore.ActionRight) - in.Count(platformcore.ActionLeft)
	dy := in.Count(platformcore.ActionDown) - in.Count(platformcore.ActionUp)
	if dx != 0 || dy != 0 {
		g.cursor = g.cursor.Add(core.Pos(dx, dy))
		g.view.Follow(g.cursor, keyMargin)
	}

	if in.Has(platformcore.ActionConfirm) {
		g.commit()
	}

	return platformcore.StepResult{State: g.State()}
}

// commit offers the cursor position to the race.
// After an accepted move the cursor jumps to the coasting point, if any.
func (g *Game) commit() {
	pos := g.cursor
	if !g.race.Accept(pos) {
		g.last = ResultRejected
		g.events.Add("move rejected", "pos", pos, "moves", g.race.Len())
		return
	}

	g.last = ResultAccepted
	kv := []any{"pos", pos, "moves", g.race.Len()}
	if v, ok := g.race.Velocity(); ok {
		kv = append(kv, "velocity", v)
	}
	g.events.Add("move accepted", kv...)

	if next, ok := g.race.Projection(); ok {
		g.cursor = next
		g.view.Follow(g.cursor, keyMargin)
	}
}

// Events returns moves and restarts recorded since the previous call.
func (g *Game) Events() []platformcore.Event {
	return g.events.Drain()
}

// State returns the platform-visible state. The race has no score and never ends.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    0,
		GameOver: false,
		Paused:   g.tooSmall,
	}
}

// Race exposes the underlying race for read access.
func (g *Game) Race() *core.Race {
	return g.race
}

// Track returns the track being raced on.
func (g *Game) Track() core.Track {
	return g.track
}

// Cursor returns the grid point under the cursor.
func (g *Game) Cursor() core.GridPos {
	return g.cursor
}
