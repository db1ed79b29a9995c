package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names for configurations that do not come from a file.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// localConfigPath is the project-relative override location.
const localConfigPath = "configs/snake.yaml"

// Load loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.cnake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), localConfigPath} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, path, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		return Default(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML on top of the built-in defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cnake", filename)
}
