package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shimonopoly/internal/config"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSetupDefaults(t *testing.T) {
	m := NewSetupModel(config.DefaultGameConfig(), 100, 30)

	res := m.Result()
	if res.Dataset != config.DefaultDataset {
		t.Errorf("Dataset = %q", res.Dataset)
	}
	if res.Session != config.DefaultSessionConfig() {
		t.Errorf("default session changed by setup: %+v", res.Session)
	}
	if m.presets[m.presetIdx] != config.DifficultyNormal {
		t.Errorf("preset = %s, want normal", m.presets[m.presetIdx])
	}
}

func TestSetupCycling(t *testing.T) {
	m := NewSetupModel(config.DefaultGameConfig(), 100, 30)

	update := func(msg tea.KeyMsg) {
		next, _ := m.Update(msg)
		m = next.(SetupModel)
	}

	// Start row is preselected; move up to mode and difficulty
	update(keyMsg("up"))
	update(keyMsg("right"))
	if !m.Result().Session.AdvancedMode {
		t.Error("mode row should switch to advanced")
	}

	update(keyMsg("up"))
	update(keyMsg("right"))
	res := m.Result()
	if res.Session.NumCities != 25 || res.Session.DamagedFraction != 1.0 || res.Session.TimerDuration != 120 {
		t.Errorf("hard preset not applied: %+v", res.Session)
	}

	update(keyMsg("right"))
	if m.presets[m.presetIdx] != config.DifficultyEasy {
		t.Error("difficulty should wrap around to easy")
	}
	update(keyMsg("left"))
	if m.presets[m.presetIdx] != config.DifficultyHard {
		t.Error("difficulty should wrap back to hard")
	}

	if m.Selected() != nil {
		t.Fatal("nothing selected yet")
	}
	update(keyMsg("down"))
	update(keyMsg("down"))
	update(keyMsg("enter"))
	if m.Selected() == nil || !m.Selected().Session.AdvancedMode {
		t.Errorf("Selected() = %+v", m.Selected())
	}
}

func TestSetupQuitAndScores(t *testing.T) {
	m := NewSetupModel(config.DefaultGameConfig(), 100, 30)
	next, cmd := m.Update(keyMsg("tab"))
	if !next.(SetupModel).WantsScoreboard() || cmd == nil {
		t.Error("tab should open the scoreboard")
	}

	next, _ = m.Update(keyMsg("q"))
	if !next.(SetupModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(nil, config.DefaultGameConfig(), nil, "alice", 120, 40)
	if m.config.Session.PlayerName != "alice" {
		t.Errorf("player = %q, want the SSH user", m.config.Session.PlayerName)
	}

	update := func(msg tea.Msg) tea.Cmd {
		next, cmd := m.Update(msg)
		m = next.(SessionModel)
		return cmd
	}

	update(keyMsg("enter"))
	if m.screen != screenGame {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	if !m.game.allowBack {
		t.Error("SSH games should allow going back")
	}
	if got := len(m.game.ctrl.Cities()); got != 15 {
		t.Errorf("working set = %d, want 15", got)
	}

	m.game.ctrl.RestoreCity(m.game.ctrl.DamagedCities()[0].Name)
	for !m.game.ctrl.Ended() {
		m.game.ctrl.Tick()
	}
	m.game.keys.Back.SetEnabled(true)
	update(keyMsg("esc"))
	if m.screen != screenSetup {
		t.Fatalf("screen = %v, want setup", m.screen)
	}

	update(keyMsg("tab"))
	if m.screen != screenScores {
		t.Fatalf("screen = %v, want scores", m.screen)
	}
	update(keyMsg("esc"))
	if m.screen != screenSetup {
		t.Fatalf("screen = %v, want setup after scores", m.screen)
	}

	if cmd := update(keyMsg("q")); cmd == nil || !m.quitting {
		t.Error("q should quit the session")
	}
}
