package config

import (
	_ "embed"
)

//go:embed defaults/session.yaml
var defaultSessionYAML []byte

// DefaultDataset is the embedded dataset used when none is configured.
const DefaultDataset = "usmetros"

// DefaultGameConfig returns the default configuration.
// It matches defaults/session.yaml.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Dataset: DefaultDataset,
		Session: DefaultSessionConfig(),
	}
}

// DefaultSessionConfig returns the default session settings.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		PlayerName:      "Player",
		Seed:            0,
		NumCities:       15,
		DamagedFraction: 0.75,
		TimerDuration:   180,
		AdvancedMode:    false,
	}
}
