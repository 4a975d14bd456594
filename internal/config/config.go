// Package config provides YAML-based configuration loading for the racer.
package config

import "fmt"

// RacerConfig contains all configuration for the racer game.
type RacerConfig struct {
	Grid      GridConfig    `yaml:"grid"`
	Track     string        `yaml:"track"`      // Track ID used when none is requested
	TracksDir string        `yaml:"tracks_dir"` // Extra directory of track files
	Display   DisplayConfig `yaml:"display"`
}

// GridConfig defines how a grid step maps to terminal cells.
type GridConfig struct {
	CellW int `yaml:"cell_w"` // Columns per grid step
	CellH int `yaml:"cell_h"` // Rows per grid step
}

// DisplayConfig toggles optional overlays.
type DisplayConfig struct {
	ShowProjection bool `yaml:"show_projection"` // Mark the extrapolated next point
	ShowCandidates bool `yaml:"show_candidates"` // Shade the legal 3x3 window
	ShowTrack      bool `yaml:"show_track"`      // Shade the course between the edges
}

// Validate checks that the configuration can be rendered.
func (c RacerConfig) Validate() error {
	if c.Grid.CellW < 1 || c.Grid.CellH < 1 {
		return fmt.Errorf("config: cell size must be at least 1x1, got %dx%d", c.Grid.CellW, c.Grid.CellH)
	}
	return nil
}
