package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	racecore "github.com/vovakirdan/paperacers/internal/games/racer/core"
	"github.com/vovakirdan/paperacers/internal/games/racer/tracks"
	"github.com/vovakirdan/paperacers/internal/platform/tui"
)

var (
	flagMovesFile string
	flagStrict    bool
	flagNoBoard   bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [x,y]...",
	Short: "Check a sequence of moves without the TUI",
	Long: `Feed moves to a race one by one and report which are accepted.

Moves come from the arguments as x,y pairs or from a YAML file:

  track: paper
  moves:
    - {x: 8, y: 13}
    - {x: 9, y: 13}

Rejected moves leave the race unchanged, like a refused click in the game.

Flags go before the moves. A move that starts with '-' would read as a flag,
so put the moves after -- or wrap them in parentheses.

Examples:
  paperacers replay 8,13 9,13 11,13
  paperacers replay --file race.yaml
  paperacers replay --strict --track oval 10,3 11,3
  paperacers replay -- -1,0 -2,0 -3,1
  paperacers replay "(-1,0)" "(-2,0)"`,
	Run: runReplay,
}

func init() {
	replayCmd.Flags().StringVarP(&flagMovesFile, "file", "f", "", "YAML file with moves")
	replayCmd.Flags().BoolVar(&flagStrict, "strict", false, "Exit with status 1 if any move is rejected")
	replayCmd.Flags().BoolVar(&flagNoBoard, "no-board", false, "Do not print the final board")

	// Everything after the first move is a move, so "0,0 -1,0" works
	replayCmd.Flags().SetInterspersed(false)
}

// MovesFile is the on-disk shape of a replay.
type MovesFile struct {
	Track string         `yaml:"track"`
	Moves []tracks.Point `yaml:"moves"`
}

// ReplayResult summarizes a replay.
type ReplayResult struct {
	Accepted int
	Rejected int
	Path     []racecore.GridPos
}

func runReplay(cmd *cobra.Command, args []string) {
	rcfg, err := loadRacerConfig()
	if err != nil {
		fail("%v", err)
	}

	var moves []racecore.GridPos
	if flagMovesFile != "" {
		mf, err := loadMovesFile(flagMovesFile)
		if err != nil {
			fail("%v", err)
		}
		if mf.Track != "" && flagTrack == "" {
			rcfg.Track = mf.Track
		}
		for _, p := range mf.Moves {
			moves = append(moves, racecore.Pos(p.X, p.Y))
		}
	}
	parsed, err := parseMoves(args)
	if err != nil {
		fail("%v", err)
	}
	moves = append(moves, parsed...)
	if len(moves) == 0 {
		fail("no moves given\nPass x,y pairs or --file.")
	}

	track, err := resolveTrack(rcfg)
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	res := replay(cmd.OutOrStdout(), logger, track, moves, !flagNoBoard)
	logger.Info("replay finished", "track", track.ID, "accepted", res.Accepted, "rejected", res.Rejected)

	if flagStrict && res.Rejected > 0 {
		closeLog()
		os.Exit(1)
	}
}

// replay plays moves on a fresh race and writes a report to w.
func replay(w io.Writer, logger *log.Logger, track racecore.Track, moves []racecore.GridPos, board bool) ReplayResult {
	theme := tui.GetTheme()
	race := racecore.NewRace()
	var res ReplayResult

	fmt.Fprintf(w, "Track: %s (%s)\n\n", track.Name, track.ID)

	for i, m := range moves {
		reason := rejectReason(race)
		if !race.Accept(m) {
			res.Rejected++
			logger.Debug("move rejected", "n", i+1, "pos", m, "reason", reason)
			fmt.Fprintf(w, "  %3d  %-10s %s  %s\n", i+1, m, theme.Rejected.Render("rejected"), reason)
			continue
		}

		res.Accepted++
		note := ""
		if !track.OnCourse(m) {
			note = "off course"
		}
		vel, _ := race.Velocity()
		logger.Debug("move accepted", "n", i+1, "pos", m, "velocity", vel)
		fmt.Fprintf(w, "  %3d  %-10s %s  %s\n", i+1, m, theme.Accepted.Render("accepted"), note)
	}

	res.Path = race.Path()
	fmt.Fprintf(w, "\nMoves: %d accepted, %d rejected\n", res.Accepted, res.Rejected)
	fmt.Fprintf(w, "Path: %s\n", formatPath(res.Path))

	if board {
		fmt.Fprintln(w)
		fmt.Fprint(w, racecore.RenderASCII(track, res.Path))
	}
	return res
}

// rejectReason describes what the next move must satisfy.
func rejectReason(r *racecore.Race) string {
	last, ok := r.Last()
	if !ok {
		return ""
	}
	if p, ok := r.Projection(); ok {
		return "must be within one cell of " + p.String()
	}
	return "must be next to " + last.String()
}

func formatPath(path []racecore.GridPos) string {
	if len(path) == 0 {
		return "-"
	}
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

// parseMoves parses command line moves.
func parseMoves(args []string) ([]racecore.GridPos, error) {
	moves := make([]racecore.GridPos, 0, len(args))
	for _, a := range args {
		m, err := parseMove(a)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// parseMove parses "x,y", optionally wrapped in parentheses.
func parseMove(s string) (racecore.GridPos, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")

	xs, ys, ok := strings.Cut(trimmed, ",")
	if !ok {
		return racecore.GridPos{}, fmt.Errorf("replay: cannot parse move %q: expected x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return racecore.GridPos{}, fmt.Errorf("replay: cannot parse move %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return racecore.GridPos{}, fmt.Errorf("replay: cannot parse move %q: %w", s, err)
	}
	return racecore.Pos(x, y), nil
}

// loadMovesFile reads a YAML replay file.
func loadMovesFile(path string) (MovesFile, error) {
	var mf MovesFile
	data, err := os.ReadFile(path)
	if err != nil {
		return mf, fmt.Errorf("replay: cannot read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return mf, fmt.Errorf("replay: cannot parse %s: %w", path, err)
	}
	return mf, nil
}
