package tracks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/paperacers/internal/games/racer/core"
)

const testdataRoot = "testdata/tracks"

func TestLoaderLoadAll(t *testing.T) {
	loader := NewLoader(testdataRoot)

	tracks, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// broken.yaml fails validation and notes.txt is not a track file
	if len(tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(tracks))
	}
	if tracks[0].ID != "alpha" || tracks[1].ID != "beta" {
		t.Errorf("tracks not sorted by ID: %s, %s", tracks[0].ID, tracks[1].ID)
	}
}

func TestLoaderLoadYAML(t *testing.T) {
	loader := NewLoader(testdataRoot)

	track, err := loader.LoadByID("alpha")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if track.Name != "Alpha" {
		t.Errorf("expected Name 'Alpha', got %q", track.Name)
	}
	if len(track.Outer) != 4 {
		t.Errorf("expected 4 outer vertices, got %d", len(track.Outer))
	}
	if len(track.Inner) != 0 {
		t.Errorf("expected no inner edge, got %d vertices", len(track.Inner))
	}
	if !track.OnCourse(core.Pos(3, 3)) {
		t.Error("track without infield should be on course at its center")
	}
}

func TestLoaderLoadTOML(t *testing.T) {
	loader := NewLoader(testdataRoot)

	track, err := loader.LoadFile(filepath.Join(testdataRoot, "nested", "beta.toml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if track.ID != "beta" {
		t.Errorf("expected ID 'beta', got %q", track.ID)
	}
	if len(track.Outer) != 3 || len(track.Inner) != 3 {
		t.Errorf("expected triangle edges, got outer=%d inner=%d", len(track.Outer), len(track.Inner))
	}
	if track.Outer[2] != core.Pos(5, 8) {
		t.Errorf("expected third outer vertex (5,8), got %v", track.Outer[2])
	}
}

func TestLoaderLoadByIDMissing(t *testing.T) {
	loader := NewLoader(testdataRoot)

	if _, err := loader.LoadByID("nope"); err == nil {
		t.Error("expected error for unknown track ID")
	}
}

func TestLoaderRejectsInvalidFile(t *testing.T) {
	loader := NewLoader(testdataRoot)

	_, err := loader.LoadFile(filepath.Join(testdataRoot, "broken.yaml"))
	if err == nil {
		t.Fatal("expected validation error for polygon with 2 vertices")
	}
	if !strings.Contains(err.Error(), "invalid track") {
		t.Errorf("expected schema error, got: %v", err)
	}
}

func TestParseYAMLValidation(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{
			name: "valid",
			doc:  "id: ok\nouter: [{x: 0, y: 0}, {x: 2, y: 0}, {x: 1, y: 2}]\n",
		},
		{
			name:    "missing id",
			doc:     "outer: [{x: 0, y: 0}, {x: 2, y: 0}, {x: 1, y: 2}]\n",
			wantErr: true,
		},
		{
			name:    "fractional coordinate",
			doc:     "id: frac\nouter: [{x: 0.5, y: 0}, {x: 2, y: 0}, {x: 1, y: 2}]\n",
			wantErr: true,
		},
		{
			name:    "unknown field",
			doc:     "id: extra\nlaps: 3\nouter: [{x: 0, y: 0}, {x: 2, y: 0}, {x: 1, y: 2}]\n",
			wantErr: true,
		},
		{
			name:    "short inner edge",
			doc:     "id: short\nouter: [{x: 0, y: 0}, {x: 9, y: 0}, {x: 4, y: 9}]\ninner: [{x: 4, y: 2}]\n",
			wantErr: true,
		},
		{
			name:    "not yaml",
			doc:     "id: [unclosed\n",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.doc))
			if (err != nil) != tc.wantErr {
				t.Errorf("ParseYAML() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestParseTOMLValidation(t *testing.T) {
	valid := `id = "t"
outer = [{ x = 0, y = 0 }, { x = 4, y = 0 }, { x = 2, y = 3 }]
`
	if _, err := ParseTOML([]byte(valid)); err != nil {
		t.Errorf("ParseTOML(valid) failed: %v", err)
	}

	invalid := `id = "t"
outer = [{ x = 0, y = 0 }]
`
	if _, err := ParseTOML([]byte(invalid)); err == nil {
		t.Error("ParseTOML should reject a one-vertex outer edge")
	}
}

func TestBuiltin(t *testing.T) {
	tracks := Builtin()

	ids := make([]string, len(tracks))
	for i, tr := range tracks {
		ids[i] = tr.ID
	}
	expected := []string{"dogleg", "oval", "paper"}
	if strings.Join(ids, ",") != strings.Join(expected, ",") {
		t.Fatalf("Builtin() IDs = %v, expected %v", ids, expected)
	}
}

func TestMetadataCarriedToTrack(t *testing.T) {
	tests := []struct {
		id, key, want string
	}{
		{"oval", "author", "paperacers"},
		{"dogleg", "difficulty", "tight"}, // TOML table
	}

	for _, tt := range tests {
		track, err := Find(tt.id)
		if err != nil {
			t.Fatalf("Find(%s) failed: %v", tt.id, err)
		}
		if got := track.Metadata[tt.key]; got != tt.want {
			t.Errorf("%s metadata[%s] = %q, expected %q", tt.id, tt.key, got, tt.want)
		}
	}
}

func TestBuiltinPaperMatchesCore(t *testing.T) {
	track, err := Find("paper")
	if err != nil {
		t.Fatalf("Find(paper) failed: %v", err)
	}

	want := core.PaperTrack()
	if track.Name != want.Name {
		t.Errorf("Name = %q, expected %q", track.Name, want.Name)
	}
	if len(track.Outer) != len(want.Outer) || len(track.Inner) != len(want.Inner) {
		t.Fatalf("edge sizes differ from core.PaperTrack()")
	}
	for i := range want.Outer {
		if track.Outer[i] != want.Outer[i] {
			t.Errorf("Outer[%d] = %v, expected %v", i, track.Outer[i], want.Outer[i])
		}
	}
}

func TestFindDefaultAndUnknown(t *testing.T) {
	track, err := Find("")
	if err != nil {
		t.Fatalf("Find(\"\") failed: %v", err)
	}
	if track.ID != DefaultID {
		t.Errorf("Find(\"\") = %q, expected %q", track.ID, DefaultID)
	}

	if _, err := Find("atlantis"); err == nil {
		t.Error("expected error for unknown track")
	}
}

func TestListDirectoryOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	doc := "id: paper\nname: My Paper\nouter: [{x: 0, y: 0}, {x: 3, y: 0}, {x: 0, y: 3}]\n"
	if err := os.WriteFile(filepath.Join(dir, "paper.yml"), []byte(doc), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	track, err := Find("paper", dir, filepath.Join(dir, "missing"))
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if track.Name != "My Paper" {
		t.Errorf("expected directory track to win, got %q", track.Name)
	}

	if n := len(List(dir)); n != len(Builtin()) {
		t.Errorf("List() returned %d tracks, expected %d", n, len(Builtin()))
	}
}
