package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	racecore "github.com/vovakirdan/paperacers/internal/games/racer/core"
	"github.com/vovakirdan/paperacers/internal/games/racer/tracks"
	"github.com/vovakirdan/paperacers/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and tracks",
	Long: `Shows the registered games and every track that can be raced,
built-in tracks first merged with the ones from the tracks directory.`,
	Run: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagTracksDir, "tracks-dir", "", "Extra directory to load tracks from")
}

func runList(_ *cobra.Command, _ []string) {
	cfg, err := loadRacerConfig()
	if err != nil {
		fail("%v", err)
	}
	printGames(os.Stdout, registry.List())
	fmt.Println()
	printTracks(os.Stdout, tracks.List(cfg.TracksDir), cfg.Track)
	fmt.Println()
	fmt.Println("Run 'paperacers play --track <id>' to race.")
}

func printGames(w io.Writer, games []registry.GameInfo) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}
}

// printTracks prints a track table, marking the default track with '*'.
func printTracks(w io.Writer, list []racecore.Track, defaultID string) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No tracks available.")
		return
	}

	fmt.Fprintln(w, "Tracks:")
	fmt.Fprintln(w)

	maxIDLen := 2
	for _, t := range list {
		maxIDLen = max(maxIDLen, len(t.ID))
	}

	fmt.Fprintf(w, "  %-*s  %-7s  %s\n", maxIDLen, "ID", "Size", "Name")
	fmt.Fprintf(w, "  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "----")
	for _, t := range list {
		tl, br := t.Bounds()
		size := fmt.Sprintf("%dx%d", br.X-tl.X+1, br.Y-tl.Y+1)
		mark := ""
		if t.ID == defaultID {
			mark = " *"
		}
		fmt.Fprintf(w, "  %-*s  %-7s  %s%s\n", maxIDLen, t.ID, size, t.Name, mark)
	}
}
