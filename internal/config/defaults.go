package config

import (
	_ "embed"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultRacerConfig returns the hardcoded racer configuration.
// It matches defaults/racer.yaml and is used if the embedded file cannot be parsed.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Grid: GridConfig{
			CellW: 4,
			CellH: 2,
		},
		Track:     "paper",
		TracksDir: "~/.paperacers/tracks",
		Display: DisplayConfig{
			ShowProjection: true,
			ShowCandidates: true,
			ShowTrack:      true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "racer":
		return defaultRacerYAML
	default:
		return nil
	}
}
