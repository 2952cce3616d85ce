package tui

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shimonopoly/internal/cities"
	"github.com/vovakirdan/shimonopoly/internal/config"
	"github.com/vovakirdan/shimonopoly/internal/datasets"
	"github.com/vovakirdan/shimonopoly/internal/scoring"
	"github.com/vovakirdan/shimonopoly/internal/storage"
)

type sessionScreen int

const (
	screenSetup sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: setup -> game -> setup.
// This is the top-level model used for SSH sessions; each one owns its own
// game controller.
type SessionModel struct {
	store    *storage.Store
	config   config.GameConfig
	logger   *log.Logger
	username string
	width    int
	height   int

	screen   sessionScreen
	setup    SetupModel
	game     Model
	scores   ScoreboardModel
	lastErr  string
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg config.GameConfig, logger *log.Logger, username string, width, height int) SessionModel {
	if strings.TrimSpace(username) != "" {
		cfg.Session.PlayerName = username
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return SessionModel{
		store:    store,
		config:   cfg,
		logger:   logger,
		username: username,
		width:    width,
		height:   height,
		setup:    NewSetupModel(cfg, width, height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.setup.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateSetup(msg)
	}
}

// updateSetup handles updates when in the setup menu.
func (m SessionModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	newSetup, cmd := m.setup.Update(msg)
	if setup, ok := newSetup.(SetupModel); ok {
		m.setup = setup
	}

	if m.setup.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.setup.WantsScoreboard() {
		mode := scoring.ModeFor(m.setup.Result().Session.AdvancedMode)
		m.scores = NewScoreboardModel(m.store, mode, m.width, m.height)
		m.screen = screenScores
		return m, m.scores.Init()
	}

	if selected := m.setup.Selected(); selected != nil {
		m.config.Dataset = selected.Dataset
		m.config.Session = selected.Session

		gameModel, err := NewModel(selected.Session, datasetSource(selected.Dataset, m.logger), m.store, m.logger, m.width, m.height)
		if err != nil {
			m.logger.Warn("cannot start game", "dataset", selected.Dataset, "error", err)
			m.lastErr = err.Error()
			m.setup = NewSetupModel(m.config, m.width, m.height)
			return m, nil
		}

		m.logger.Info("game started", "dataset", selected.Dataset, "mode", scoring.ModeFor(selected.Session.AdvancedMode))
		m.lastErr = ""
		m.game = gameModel.withBack()
		m.screen = screenGame
		return m, tea.Batch(m.game.Init(), m.resizeCmd())
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.setup = NewSetupModel(m.config, m.width, m.height)
		m.screen = screenSetup
		return m, m.setup.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScores, cmd := m.scores.Update(msg)
	if scores, ok := newScores.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores.IsGoingBack() {
		m.setup = NewSetupModel(m.config, m.width, m.height)
		m.screen = screenSetup
		return m, nil
	}

	return m, cmd
}

// resizeCmd replays the current window size to a freshly created screen.
func (m SessionModel) resizeCmd() tea.Cmd {
	w, h := m.width, m.height
	return func() tea.Msg {
		return tea.WindowSizeMsg{Width: w, Height: h}
	}
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	}

	view := m.setup.View()
	if m.lastErr != "" {
		view += "\n" + centerText(failStyle.Render(m.lastErr), m.width)
	}
	return view
}

// datasetSource loads a fresh copy of an embedded dataset for each game.
func datasetSource(id string, logger *log.Logger) CitySource {
	loader := cities.NewLoader(logger)
	return func() ([]*cities.City, error) {
		all, _, err := datasets.Load(id, loader)
		return all, err
	}
}
