package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/paperacers/internal/games/racer"
	"github.com/vovakirdan/paperacers/internal/games/racer/tracks"
	"github.com/vovakirdan/paperacers/internal/platform/tui"
	"github.com/vovakirdan/paperacers/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a track and race",
	Long: `Start Paperacers in interactive menu mode.

Use arrow keys or j/k to pick a track, Enter to race on it.
Esc during a race returns to the menu.

Controls:
  Up/Down/j/k  - Navigate tracks
  Enter/Space  - Race
  Q            - Quit

Examples:
  paperacers menu
  paperacers menu --fps 30
  paperacers menu --tracks-dir ./tracks`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	rcfg, err := loadRacerConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	racer.SetConfig(rcfg)
	cfg := runtimeConfig()
	selectedID := rcfg.Track

	for {
		menuResult, err := tui.RunMenu(tracks.List(rcfg.TracksDir), selectedID, cfg)
		if err != nil {
			logger.Error("menu failed", "err", err)
			closeLog()
			fail("%v", err)
		}
		cfg = menuResult.Config

		if menuResult.Quit || menuResult.Track == nil {
			break
		}

		track := *menuResult.Track
		selectedID = track.ID
		racer.SetTrack(track)

		game, err := registry.Create("racer")
		if err != nil {
			logger.Error("cannot create game", "err", err)
			break
		}

		logger.Info("race started", "track", track.ID)
		back, err := tui.Run(game, cfg, logger)
		if err != nil {
			logger.Error("race aborted", "err", err)
			break
		}
		if !back {
			break
		}
		// Loop back to menu
	}
}
