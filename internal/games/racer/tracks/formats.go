package tracks

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/paperacers/internal/games/racer/core"
)

//go:embed schema.json
var trackSchemaJSON []byte

const trackSchemaURL = "mem://paperacers/track.schema.json"

// Document is the on-disk shape of a track file, shared by all formats.
type Document struct {
	ID       string            `yaml:"id" toml:"id"`
	Name     string            `yaml:"name" toml:"name"`
	Outer    []Point           `yaml:"outer" toml:"outer"`
	Inner    []Point           `yaml:"inner,omitempty" toml:"inner,omitempty"`
	Start    []Point           `yaml:"start,omitempty" toml:"start,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty" toml:"metadata,omitempty"`
}

// Point is a single grid vertex in a track file.
type Point struct {
	X int `yaml:"x" toml:"x"`
	Y int `yaml:"y" toml:"y"`
}

// Track converts the document into the core track type.
func (d Document) Track() core.Track {
	name := d.Name
	if name == "" {
		name = d.ID
	}
	return core.Track{
		ID:    d.ID,
		Name:  name,
		Outer: toPolygon(d.Outer),
		Inner: toPolygon(d.Inner),
		Start: toPositions(d.Start),

		Metadata: d.Metadata,
	}
}

func toPositions(points []Point) []core.GridPos {
	if len(points) == 0 {
		return nil
	}
	out := make([]core.GridPos, len(points))
	for i, p := range points {
		out[i] = core.Pos(p.X, p.Y)
	}
	return out
}

func toPolygon(points []Point) core.Polygon {
	return core.Polygon(toPositions(points))
}

// compiledSchema compiles the embedded track schema once.
var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(trackSchemaURL, bytes.NewReader(trackSchemaJSON)); err != nil {
		return nil, fmt.Errorf("add track schema: %w", err)
	}
	schema, err := compiler.Compile(trackSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile track schema: %w", err)
	}
	return schema, nil
})

// validate checks a generically decoded document against the track schema.
// The value is round-tripped through JSON so every format presents the
// validator with the same types.
func validate(raw any) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("normalize document: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("normalize document: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid track: %w", err)
	}
	return nil
}

// ParseYAML parses and validates a YAML track document.
func ParseYAML(data []byte) (Document, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := validate(raw); err != nil {
		return Document{}, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return doc, nil
}

// ParseTOML parses and validates a TOML track document.
func ParseTOML(data []byte) (Document, error) {
	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return Document{}, fmt.Errorf("toml decode: %w", err)
	}
	if err := validate(raw); err != nil {
		return Document{}, err
	}

	var doc Document
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return Document{}, fmt.Errorf("toml decode: %w", err)
	}
	return doc, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (Document, error) {
	switch ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return Document{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
