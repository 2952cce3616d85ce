package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shimonopoly/internal/config"
	"github.com/vovakirdan/shimonopoly/internal/datasets"
	"github.com/vovakirdan/shimonopoly/internal/scoring"
)

// Setup menu rows
const (
	rowDataset = iota
	rowDifficulty
	rowMode
	rowStart
	setupRows
)

// SetupResult is the game chosen in the setup menu.
type SetupResult struct {
	Dataset string
	Session config.SessionConfig
}

// SetupModel is the Bubble Tea model for choosing dataset, difficulty and mode.
type SetupModel struct {
	base     config.SessionConfig
	datasets []datasets.Info
	presets  []config.DifficultyPreset
	modes    []scoring.Mode

	cursor     int
	datasetIdx int
	presetIdx  int
	modeIdx    int
	width      int
	height     int
	quitting   bool
	selected   *SetupResult
	openScores bool
}

// NewSetupModel creates a setup menu preselected from cfg.
func NewSetupModel(cfg config.GameConfig, width, height int) SetupModel {
	m := SetupModel{
		base:     cfg.Session,
		datasets: datasets.List(),
		presets:  config.Presets(),
		modes:    []scoring.Mode{scoring.ModeBasic, scoring.ModeAdvanced},
		width:    width,
		height:   height,
		cursor:   rowStart,
	}

	for i, d := range m.datasets {
		if d.ID == cfg.Dataset {
			m.datasetIdx = i
		}
	}
	m.presetIdx = 1 // normal
	for i, p := range m.presets {
		probe := cfg.Session
		config.ApplyPreset(&probe, p)
		if probe == cfg.Session {
			m.presetIdx = i
		}
	}
	if cfg.Session.AdvancedMode {
		m.modeIdx = 1
	}

	return m
}

// Init initializes the setup model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the setup menu.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < setupRows-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.cycle(-1)

	case MenuActionRight:
		m.cycle(1)

	case MenuActionSelect:
		if m.cursor != rowStart {
			m.cycle(1)
			return m, nil
		}
		result := m.Result()
		m.selected = &result
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScores = true
		return m, tea.Quit
	}

	return m, nil
}

// cycle moves the option on the current row by delta, wrapping around.
func (m *SetupModel) cycle(delta int) {
	wrap := func(i, n int) int {
		if n == 0 {
			return 0
		}
		return ((i+delta)%n + n) % n
	}

	switch m.cursor {
	case rowDataset:
		m.datasetIdx = wrap(m.datasetIdx, len(m.datasets))
	case rowDifficulty:
		m.presetIdx = wrap(m.presetIdx, len(m.presets))
	case rowMode:
		m.modeIdx = wrap(m.modeIdx, len(m.modes))
	}
}

// Result returns the currently chosen game.
func (m SetupModel) Result() SetupResult {
	session := m.base
	config.ApplyPreset(&session, m.presets[m.presetIdx])
	session.AdvancedMode = m.modes[m.modeIdx] == scoring.ModeAdvanced

	dataset := config.DefaultDataset
	if len(m.datasets) > 0 {
		dataset = m.datasets[m.datasetIdx].ID
	}
	return SetupResult{Dataset: dataset, Session: session}
}

// View renders the setup menu.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  S H I M O N O P O L Y  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Bring the grid back before the clock runs out", m.width))
	b.WriteString("\n\n")

	result := m.Result()
	datasetTitle := result.Dataset
	if len(m.datasets) > 0 {
		datasetTitle = m.datasets[m.datasetIdx].Title
	}
	values := [setupRows]string{
		fmt.Sprintf("Cities:     < %s >", datasetTitle),
		fmt.Sprintf("Difficulty: < %s >  %d cities, %d%% damaged, %s",
			m.presets[m.presetIdx], result.Session.NumCities,
			int(result.Session.DamagedFraction*100), formatClock(result.Session.TimerDuration)),
		fmt.Sprintf("Mode:       < %s >", m.modes[m.modeIdx]),
		"Start game",
	}

	for i, line := range values {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		b.WriteString(centerText(style.Render(cursor+line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Start  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen game, or nil if none was started.
func (m SetupModel) Selected() *SetupResult {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m SetupModel) WantsScoreboard() bool {
	return m.openScores
}
