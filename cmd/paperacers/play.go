package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/paperacers/internal/config"
	"github.com/vovakirdan/paperacers/internal/games/racer"
	racecore "github.com/vovakirdan/paperacers/internal/games/racer/core"
	"github.com/vovakirdan/paperacers/internal/games/racer/tracks"
	"github.com/vovakirdan/paperacers/internal/platform/tui"
	"github.com/vovakirdan/paperacers/internal/registry"
)

var (
	flagTrack     string
	flagTracksDir string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Race on a track",
	Long: `Start a race on the selected track.

Controls:
  Arrows/hjkl/wasd - Move the cursor
  Mouse            - Point at a cell, click to move there
  Enter/Space      - Move to the cursor
  R                - Restart the race
  ?                - Show all keys
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  paperacers play
  paperacers play --track oval
  paperacers play --tracks-dir ./tracks --track canyon
  paperacers play --config ./my-racer.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd, replayCmd} {
		c.Flags().StringVar(&flagTrack, "track", "", "Track ID (default from config)")
		c.Flags().StringVar(&flagTracksDir, "tracks-dir", "", "Extra directory to load tracks from")
	}
}

// loadRacerConfig loads the racer config and applies track flags on top.
func loadRacerConfig() (config.RacerConfig, error) {
	cfg, err := config.LoadRacer(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagTrack != "" {
		cfg.Track = flagTrack
	}
	if flagTracksDir != "" {
		cfg.TracksDir = flagTracksDir
	}
	return cfg, nil
}

// resolveTrack finds the configured track in the built-ins and the tracks dir.
func resolveTrack(cfg config.RacerConfig) (racecore.Track, error) {
	return tracks.Find(cfg.Track, cfg.TracksDir)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "racer"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fail("unknown game %q\nRun 'paperacers list' to see available games.", gameID)
	}

	rcfg, err := loadRacerConfig()
	if err != nil {
		fail("%v", err)
	}
	track, err := resolveTrack(rcfg)
	if err != nil {
		fail("%v\nRun 'paperacers list' to see available tracks.", err)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	racer.SetConfig(rcfg)
	racer.SetTrack(track)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fail("cannot create game: %v", err)
	}

	logger.Info("race started", "track", track.ID, "config", flagConfig)
	if _, err := tui.Run(game, runtimeConfig(), logger); err != nil {
		logger.Error("race aborted", "err", err)
		closeLog()
		fail("%v", err)
	}
}
