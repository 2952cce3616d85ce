package game

import "github.com/vovakirdan/shimonopoly/internal/cities"

// Outcome classifies a restore attempt.
type Outcome int

const (
	OutcomeRestored Outcome = iota
	OutcomeNotStarted
	OutcomeGameEnded
	OutcomeNotFound
	OutcomeNotDamaged
	OutcomeAlreadyRestored
	OutcomeInsufficientTransformers
)

// String returns the player-facing message for failures.
// Successful restores build their message from the city name.
func (o Outcome) String() string {
	switch o {
	case OutcomeRestored:
		return "Restored"
	case OutcomeNotStarted:
		return "Game has not started"
	case OutcomeGameEnded:
		return "Game has ended"
	case OutcomeNotFound:
		return "City not found"
	case OutcomeNotDamaged:
		return "City is not damaged"
	case OutcomeAlreadyRestored:
		return "City already restored"
	case OutcomeInsufficientTransformers:
		return "Not enough transformers"
	default:
		return "Unknown"
	}
}

// RestoreResult is the value returned by every restore attempt.
// Points, Cost and City are set only on success.
type RestoreResult struct {
	Outcome    Outcome
	Success    bool
	Message    string
	City       *cities.City
	Points     float64
	Cost       float64
	ClearInput bool // The caller should clear its input field
}

func rejected(o Outcome) RestoreResult {
	return RestoreResult{Outcome: o, Message: o.String()}
}

func restored(c *cities.City, points, cost float64) RestoreResult {
	return RestoreResult{
		Outcome:    OutcomeRestored,
		Success:    true,
		Message:    c.Name + " restored!",
		City:       c,
		Points:     points,
		Cost:       cost,
		ClearInput: true,
	}
}
