// Package tui provides the Bubble Tea front end for Shimonopoly: the game
// screen, the setup menu, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timerInterval is the wall-clock length of one countdown tick.
const timerInterval = time.Second

// TickMsg is sent to advance the countdown by one second.
type TickMsg struct {
	Time time.Time
	Gen  int // Game the tick was armed for
}

// tickCmd returns a Bubble Tea command that sends a single tick after interval.
// The model re-arms it after each tick until the game ends.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
