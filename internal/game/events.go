package game

import "github.com/vovakirdan/shimonopoly/internal/cities"

// Event is emitted by the controller after a state change.
type Event interface {
	gameEvent()
}

// Listener receives controller events synchronously.
type Listener func(Event)

// TimerStartedEvent is sent on the first successful restore.
type TimerStartedEvent struct {
	TimeRemaining int
}

func (TimerStartedEvent) gameEvent() {}

// CityRestoredEvent is sent after each successful restore.
type CityRestoredEvent struct {
	City   *cities.City
	Points float64
	Cost   float64
}

func (CityRestoredEvent) gameEvent() {}

// GameEndedEvent is sent once, when the timer runs out.
// The tick source should stop when it receives this event.
type GameEndedEvent struct {
	Score    float64
	Restored int
	Damaged  int
}

func (GameEndedEvent) gameEvent() {}
