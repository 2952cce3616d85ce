package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets in increasing difficulty.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParseDifficultyPreset validates a preset name. An empty name is not a preset.
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty preset %q (want easy, normal or hard): %w", name, ErrInvalidConfig)
}

// ApplyPreset sets city count, damage fraction and timer for a preset.
// Harder presets damage more of a larger map in less time.
func ApplyPreset(cfg *SessionConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.NumCities = 10
		cfg.DamagedFraction = 0.5
		cfg.TimerDuration = 300
	case DifficultyNormal:
		cfg.NumCities = 15
		cfg.DamagedFraction = 0.75
		cfg.TimerDuration = 180
	case DifficultyHard:
		cfg.NumCities = 25
		cfg.DamagedFraction = 1.0
		cfg.TimerDuration = 120
	}
}
