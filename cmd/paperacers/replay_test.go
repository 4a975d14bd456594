package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	racecore "github.com/vovakirdan/paperacers/internal/games/racer/core"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in      string
		want    racecore.GridPos
		wantErr bool
	}{
		{"8,13", racecore.Pos(8, 13), false},
		{" 8 , 13 ", racecore.Pos(8, 13), false},
		{"(8,13)", racecore.Pos(8, 13), false},
		{"-2,-3", racecore.Pos(-2, -3), false},
		{"8", racecore.GridPos{}, true},
		{"a,1", racecore.GridPos{}, true},
		{"1,b", racecore.GridPos{}, true},
		{"", racecore.GridPos{}, true},
	}

	for _, tt := range tests {
		got, err := parseMove(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseMove(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseMove(%q) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestParseMovesStopsAtFirstError(t *testing.T) {
	if _, err := parseMoves([]string{"1,1", "oops", "2,2"}); err == nil {
		t.Error("expected error for bad move")
	}

	moves, err := parseMoves([]string{"1,1", "2,2"})
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 2 || moves[1] != racecore.Pos(2, 2) {
		t.Errorf("parseMoves = %v", moves)
	}
}

func TestLoadMovesFile(t *testing.T) {
	mf, err := loadMovesFile(filepath.Join("testdata", "race.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if mf.Track != "oval" {
		t.Errorf("track = %q, expected oval", mf.Track)
	}
	if len(mf.Moves) != 3 || mf.Moves[2].X != 11 || mf.Moves[2].Y != 13 {
		t.Errorf("moves = %+v", mf.Moves)
	}

	if _, err := loadMovesFile(filepath.Join("testdata", "broken.yaml")); err == nil {
		t.Error("expected parse error")
	}
	if _, err := loadMovesFile(filepath.Join("testdata", "missing.yaml")); err == nil {
		t.Error("expected read error")
	}
}

func TestReplay(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(io.Discard)
	moves := []racecore.GridPos{
		racecore.Pos(8, 13),
		racecore.Pos(9, 13),
		racecore.Pos(20, 20), // too far from (10,13)
		racecore.Pos(11, 13),
	}

	res := replay(&buf, logger, racecore.PaperTrack(), moves, true)

	if res.Accepted != 3 || res.Rejected != 1 {
		t.Errorf("accepted=%d rejected=%d, expected 3 and 1", res.Accepted, res.Rejected)
	}
	want := []racecore.GridPos{racecore.Pos(8, 13), racecore.Pos(9, 13), racecore.Pos(11, 13)}
	if len(res.Path) != len(want) {
		t.Fatalf("path = %v, expected %v", res.Path, want)
	}
	for i := range want {
		if res.Path[i] != want[i] {
			t.Errorf("path[%d] = %v, expected %v", i, res.Path[i], want[i])
		}
	}

	out := buf.String()
	for _, s := range []string{
		"Track: Paper Loop (paper)",
		"rejected",
		"must be within one cell of (10,13)",
		"Moves: 3 accepted, 1 rejected",
		"Path: (8,13) (9,13) (11,13)",
		"@",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestReplaySecondMoveMustBeAdjacent(t *testing.T) {
	var buf bytes.Buffer
	moves := []racecore.GridPos{racecore.Pos(8, 13), racecore.Pos(10, 13)}

	res := replay(&buf, log.New(io.Discard), racecore.PaperTrack(), moves, false)

	if res.Rejected != 1 {
		t.Errorf("rejected = %d, expected 1", res.Rejected)
	}
	if !strings.Contains(buf.String(), "must be next to (8,13)") {
		t.Errorf("missing reason in:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "@") {
		t.Error("board should be omitted")
	}
}

func TestReplayMarksOffCourse(t *testing.T) {
	var buf bytes.Buffer
	replay(&buf, log.New(io.Discard), racecore.PaperTrack(), []racecore.GridPos{racecore.Pos(0, 0)}, false)

	if !strings.Contains(buf.String(), "off course") {
		t.Errorf("expected off course note:\n%s", buf.String())
	}
}

func TestReplayCommandNegativeMoves(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"after separator", []string{"replay", "--no-board", "--", "0,0", "-1,0"}, "Path: (0,0) (-1,0)"},
		{"after first move", []string{"replay", "--no-board", "0,0", "-1,0", "-2,0"}, "Path: (0,0) (-1,0) (-2,0)"},
		{"leading negative after separator", []string{"replay", "--no-board", "--", "-1,0", "-2,0"}, "Path: (-1,0) (-2,0)"},
		{"parenthesized", []string{"replay", "--no-board", "(-1,0)", "(-2,1)"}, "Path: (-1,0) (-2,1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			rootCmd.SetOut(&buf)
			rootCmd.SetArgs(tt.args)

			if err := rootCmd.Execute(); err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, buf.String())
			}
		})
	}
}

func TestFormatPath(t *testing.T) {
	if got := formatPath(nil); got != "-" {
		t.Errorf("formatPath(nil) = %q", got)
	}
	if got := formatPath([]racecore.GridPos{racecore.Pos(1, 2), racecore.Pos(3, 4)}); got != "(1,2) (3,4)" {
		t.Errorf("formatPath = %q", got)
	}
}
