package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	sessionFile = "session.yaml"
	envPrefix   = "SHIMONOPOLY_"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.shimonopoly/configs/session.yaml ->
// ./configs/session.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (GameConfig, error) {
	cfg := DefaultGameConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(sessionFile); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", sessionFile)); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultGameConfig()
	if err := yaml.Unmarshal(defaultSessionYAML, &embedded); err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file; unreadable or invalid files are skipped.
func tryLoad(path string) (GameConfig, bool) {
	cfg := DefaultGameConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shimonopoly", "configs", filename)
}

// LoadServer reads the server configuration from the environment.
func LoadServer() (ServerConfig, error) {
	cfg, err := env.ParseAsWithOptions[ServerConfig](env.Options{Prefix: envPrefix})
	if err != nil {
		return cfg, fmt.Errorf("config: parsing environment: %w", err)
	}
	return cfg, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
