package game

import (
	"github.com/vovakirdan/shimonopoly/internal/cities"
	"github.com/vovakirdan/shimonopoly/internal/config"
)

// Snapshot is a read-only view of the controller state for rendering.
// City slices share their elements with the registry.
type Snapshot struct {
	Phase         Phase                `json:"phase"`
	Mode          string               `json:"mode"`
	Config        config.SessionConfig `json:"config"`
	Score         float64              `json:"score"`
	Transformers  float64              `json:"transformers"`
	TimeRemaining int                  `json:"time_remaining"`
	TimerStarted  bool                 `json:"timer_started"`
	Ended         bool                 `json:"ended"`
	Cities        []*cities.City       `json:"cities"`
	Damaged       []*cities.City       `json:"damaged"` // Damaged and not yet restored
	Restored      []*cities.City       `json:"restored"`
}

// Summary is the persisted outcome of one session.
type Summary struct {
	Player           string
	Mode             string
	Seed             int64
	NumCities        int
	Damaged          int
	Restored         int
	Score            float64
	TransformersLeft float64
	TimerDuration    int
}

// Summary condenses the snapshot for the session history.
func (s Snapshot) Summary() Summary {
	return Summary{
		Player:           s.Config.PlayerName,
		Mode:             s.Mode,
		Seed:             s.Config.Seed,
		NumCities:        len(s.Cities),
		Damaged:          len(s.Damaged) + len(s.Restored),
		Restored:         len(s.Restored),
		Score:            s.Score,
		TransformersLeft: s.Transformers,
		TimerDuration:    s.Config.TimerDuration,
	}
}
