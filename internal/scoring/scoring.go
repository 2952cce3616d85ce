// Package scoring computes points and transformer costs for restorations.
package scoring

import (
	"github.com/vovakirdan/shimonopoly/internal/cities"
	"github.com/vovakirdan/shimonopoly/internal/geo"
)

const (
	// ProximityRadiusMiles is how close an already restored city must be to
	// discount the cost of a restoration in advanced mode.
	ProximityRadiusMiles = 300.0

	// PopulationDivisor converts population into advanced-mode points.
	PopulationDivisor = 1000.0
)

// Mode selects the scoring rules.
type Mode int

const (
	ModeBasic Mode = iota
	ModeAdvanced
)

// ModeFor maps the advanced-mode flag to a Mode.
func ModeFor(advanced bool) Mode {
	if advanced {
		return ModeAdvanced
	}
	return ModeBasic
}

// String returns the mode name used in storage and the CLI.
func (m Mode) String() string {
	switch m {
	case ModeBasic:
		return "basic"
	case ModeAdvanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// ParseMode is the inverse of String.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "basic":
		return ModeBasic, true
	case "advanced":
		return ModeAdvanced, true
	}
	return ModeBasic, false
}

// Engine applies the rules of one mode. It holds no other state.
type Engine struct {
	mode Mode
}

// New creates an engine for the given mode.
func New(mode Mode) Engine {
	return Engine{mode: mode}
}

// Mode returns the engine's mode.
func (e Engine) Mode() Mode {
	return e.mode
}

// PointsFor returns the points earned by restoring c.
// Basic mode awards 1; advanced mode awards population / 1000.
func (e Engine) PointsFor(c *cities.City) float64 {
	if e.mode == ModeAdvanced {
		return c.Population / PopulationDivisor
	}
	return 1
}

// CostFor returns the transformers needed to restore c given the cities
// already restored. Basic mode always costs 1. Advanced mode costs
// 1 / (1 + N), N being the restored cities within ProximityRadiusMiles,
// so the result is always in (0, 1].
func (e Engine) CostFor(c *cities.City, alreadyRestored []*cities.City) float64 {
	if e.mode == ModeAdvanced {
		nearby := geo.CountWithinRadius(c, alreadyRestored, ProximityRadiusMiles)
		return 1 / float64(1+nearby)
	}
	return 1
}
