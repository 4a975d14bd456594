// paperacers is a vector racing game for the terminal, played on a grid
// the way it is played on squared paper.
//
// Usage:
//
//	paperacers list                 - List games and tracks
//	paperacers play [game]          - Race on a track
//	paperacers menu                 - Pick a track interactively
//	paperacers replay <x,y>...      - Check a sequence of moves
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--config <path>    - Path to a custom racer config YAML
//	--log-file <path>  - Write logs to a file (the TUI hides stderr)
//	--debug            - Log every move
//	--no-color         - Disable colors
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/paperacers/internal/core"
	"github.com/vovakirdan/paperacers/internal/platform/tui"

	// Import games to register them
	_ "github.com/vovakirdan/paperacers/internal/games/racer"
)

var (
	// Global flags
	flagFPS     int
	flagConfig  string
	flagLogFile string
	flagDebug   bool
	flagNoColor bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paperacers",
	Short: "Paperacers - vector racing on a grid",
	Long: `Paperacers is the pen-and-paper racing game for the terminal.

The first move goes anywhere and the second to a neighboring point. From
then on the next point must sit within one cell of where your current
velocity would carry you. The track is drawn for you to follow; the rules
only check momentum.

Available commands:
  list     - Show games and tracks
  play     - Race on a track directly
  menu     - Interactive track picker
  replay   - Validate a list of moves without the TUI

Examples:
  paperacers list
  paperacers play --track oval
  paperacers menu
  paperacers replay 8,13 9,13 11,13`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagNoColor {
			lipgloss.SetColorProfile(termenv.Ascii)
			tui.SetTheme(tui.MonochromeTheme())
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom racer config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colors")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(replayCmd)
}

// newLogger builds the logger for a command.
// Interactive commands own the terminal, so without --log-file they log nowhere.
// The returned close function must be called when the command is done.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "paperacers",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// runtimeConfig returns the platform config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}

// fail prints err and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
