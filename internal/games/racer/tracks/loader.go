// Package tracks provides the track catalog for Paperacers: built-in courses
// embedded in the binary plus user track files in YAML or TOML.
package tracks

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/paperacers/internal/games/racer/core"
)

//go:embed builtin
var builtinFS embed.FS

// DefaultID is the track used when none is selected.
const DefaultID = "paper"

// Loader handles loading tracks from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new track loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all track files.
// Invalid files are skipped. Returns tracks sorted by ID.
func (l *Loader) LoadAll() ([]core.Track, error) {
	var tracks []core.Track

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		track, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		tracks = append(tracks, track)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sortTracks(tracks)
	return tracks, nil
}

// LoadFile loads a single track file.
func (l *Loader) LoadFile(path string) (core.Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Track{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	doc, err := parseByExtension(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return core.Track{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return doc.Track(), nil
}

// LoadByID loads a specific track by ID.
func (l *Loader) LoadByID(id string) (core.Track, error) {
	tracks, err := l.LoadAll()
	if err != nil {
		return core.Track{}, err
	}

	for _, t := range tracks {
		if t.ID == id {
			return t, nil
		}
	}
	return core.Track{}, fmt.Errorf("track not found: %s", id)
}

// Builtin returns the tracks shipped with the game, sorted by ID.
func Builtin() []core.Track {
	var tracks []core.Track

	//nolint:errcheck // Embedded tree is fixed at build time
	fs.WalkDir(builtinFS, "builtin", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}
		data, err := builtinFS.ReadFile(p)
		if err != nil {
			return nil
		}
		doc, err := parseByExtension(data, ext)
		if err != nil {
			return nil
		}
		tracks = append(tracks, doc.Track())
		return nil
	})

	sortTracks(tracks)
	return tracks
}

// List returns built-in tracks merged with tracks found in dirs.
// A directory track replaces a built-in one with the same ID.
// Missing directories are ignored.
func List(dirs ...string) []core.Track {
	byID := make(map[string]core.Track)
	for _, t := range Builtin() {
		byID[t.ID] = t
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		found, err := NewLoader(expandHome(dir)).LoadAll()
		if err != nil {
			continue
		}
		for _, t := range found {
			byID[t.ID] = t
		}
	}

	tracks := make([]core.Track, 0, len(byID))
	for _, t := range byID {
		tracks = append(tracks, t)
	}
	sortTracks(tracks)
	return tracks
}

// Find returns the track with the given ID from dirs or the built-ins.
// An empty ID selects DefaultID.
func Find(id string, dirs ...string) (core.Track, error) {
	if id == "" {
		id = DefaultID
	}
	for _, t := range List(dirs...) {
		if t.ID == id {
			return t, nil
		}
	}
	return core.Track{}, fmt.Errorf("tracks: unknown track %q", id)
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(dir string) string {
	if !strings.HasPrefix(dir, "~") {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return dir
	}
	return filepath.Join(home, dir[1:])
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func sortTracks(tracks []core.Track) {
	sort.Slice(tracks, func(i, j int) bool {
		return tracks[i].ID < tracks[j].ID
	})
}
