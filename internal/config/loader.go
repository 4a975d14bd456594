package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRacer loads racer configuration.
// Search order: customPath -> ~/.paperacers/configs/racer.yaml -> ./configs/racer.yaml -> embedded default
//
// Optional locations that are missing or malformed are skipped.
// A custom path that cannot be read, parsed or validated is an error.
func LoadRacer(customPath string) (RacerConfig, error) {
	// Fields absent from a file keep their default values
	cfg := DefaultRacerConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("%w (in %s)", err, customPath)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("racer.yaml"), filepath.Join("configs", "racer.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	cfg = DefaultRacerConfig()
	if err := yaml.Unmarshal(defaultRacerYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultRacerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file on top of the defaults.
func tryLoad(path string) (RacerConfig, bool) {
	cfg := DefaultRacerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".paperacers", "configs", filename)
}
