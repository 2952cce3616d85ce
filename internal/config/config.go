// Package config provides YAML-based session configuration, difficulty
// presets and environment-based server settings.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when a session configuration cannot start a game.
var ErrInvalidConfig = errors.New("invalid configuration")

// GameConfig is the on-disk configuration file.
type GameConfig struct {
	Dataset string        `yaml:"dataset"` // Embedded dataset ID, see `shimonopoly datasets`
	Session SessionConfig `yaml:"session"`
}

// SessionConfig is the immutable input to one game.
type SessionConfig struct {
	PlayerName      string  `yaml:"player_name"` // Opaque to the game logic
	Seed            int64   `yaml:"seed"`
	NumCities       int     `yaml:"num_cities"`
	DamagedFraction float64 `yaml:"damaged_fraction"` // Must lie in [0.5, 1.0]
	TimerDuration   int     `yaml:"timer_duration"`   // Seconds
	AdvancedMode    bool    `yaml:"advanced_mode"`
}

// Validate checks the fields the controller cannot repair itself.
// Zero cities is an empty session. The damaged fraction is checked when
// damage is assigned.
func (c SessionConfig) Validate() error {
	if c.NumCities < 0 {
		return fmt.Errorf("config: num_cities must not be negative, got %d: %w", c.NumCities, ErrInvalidConfig)
	}
	if c.TimerDuration <= 0 {
		return fmt.Errorf("config: timer_duration must be positive, got %d: %w", c.TimerDuration, ErrInvalidConfig)
	}
	return nil
}

// ServerConfig holds SSH server settings read from SHIMONOPOLY_* variables.
type ServerConfig struct {
	Address     string        `env:"SSH_ADDR" envDefault:":23234"`
	HostKeyPath string        `env:"HOST_KEY"` // Auto-generated under ~/.shimonopoly when empty
	DBPath      string        `env:"DB" envDefault:"~/.shimonopoly/sessions.db"`
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT" envDefault:"30m"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
}
