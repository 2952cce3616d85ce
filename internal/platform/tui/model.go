package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/shimonopoly/internal/canvas"
	"github.com/vovakirdan/shimonopoly/internal/cities"
	"github.com/vovakirdan/shimonopoly/internal/config"
	"github.com/vovakirdan/shimonopoly/internal/game"
	"github.com/vovakirdan/shimonopoly/internal/storage"
)

// Game screen layout constants
const (
	minGameWidth    = 40
	minGameHeight   = 14
	minSidebarWidth = 100 // Minimum width to show the city list sidebar
	citySidebar     = 26
	chromeLines     = 6 // HUD, input, message, help and spacing
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hudStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// CitySource returns freshly loaded cities for one game.
type CitySource func() ([]*cities.City, error)

// eventQueue collects controller events until the next Update drains them.
type eventQueue struct {
	events []game.Event
}

func (q *eventQueue) push(e game.Event) {
	q.events = append(q.events, e)
}

func (q *eventQueue) drain() []game.Event {
	events := q.events
	q.events = nil
	return events
}

// Result is what a finished game screen reports back to its caller.
type Result struct {
	Snapshot  game.Snapshot
	SessionID string // Empty if the session was not saved
}

// Model is the Bubble Tea model for one game of Shimonopoly.
// The controller is driven only from Update.
type Model struct {
	cfg    config.SessionConfig // As configured; a zero seed means time-based
	source CitySource
	store  *storage.Store
	logger *log.Logger

	ctrl  *game.Controller
	queue *eventQueue

	input  textinput.Model
	help   help.Model
	keys   GameKeyMap
	canvas *canvas.Canvas
	width  int
	height int

	message      string
	messageOK    bool
	lastRestored *cities.City
	ticking      bool
	gen          int // Incremented per game so stale ticks are dropped
	sessionID    string
	allowBack    bool
	quitting     bool
	backToMenu   bool
}

// NewModel creates the game screen and starts the first game.
// Initialization errors, such as an invalid damage fraction, are returned.
func NewModel(cfg config.SessionConfig, source CitySource, store *storage.Store, logger *log.Logger, width, height int) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "type a damaged city and press enter"
	input.CharLimit = 64
	input.ShowSuggestions = true

	m := Model{
		cfg:    cfg,
		source: source,
		store:  store,
		logger: logger,
		input:  input,
		help:   help.New(),
		keys:   DefaultGameKeyMap(),
		canvas: canvas.New(width, height),
		width:  width,
		height: height,
	}

	if err := m.start(); err != nil {
		return m, err
	}
	return m, nil
}

// start loads cities and initializes a fresh controller.
func (m *Model) start() error {
	cfg := m.cfg
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	all, err := m.source()
	if err != nil {
		return fmt.Errorf("tui: cannot load cities: %w", err)
	}

	queue := &eventQueue{}
	ctrl := game.New(cfg, game.WithLogger(m.logger))
	ctrl.OnEvent(queue.push)
	if err := ctrl.Initialize(all); err != nil {
		return err
	}

	m.ctrl = ctrl
	m.queue = queue
	m.gen++
	m.message = fmt.Sprintf("%d cities need power. The clock starts with your first restore.", len(ctrl.DamagedCities()))
	m.messageOK = true
	m.lastRestored = nil
	m.ticking = false
	m.sessionID = ""
	m.keys.NewGame.SetEnabled(false)
	m.keys.Back.SetEnabled(false)
	m.input.Reset()
	m.input.Focus()
	m.updateSuggestions()
	return nil
}

func (m *Model) updateSuggestions() {
	damaged := m.ctrl.DamagedCities()
	names := make([]string, len(damaged))
	for i, c := range damaged {
		names[i] = c.Name
	}
	m.input.SetSuggestions(names)
}

// withBack lets the player leave a finished game with esc.
func (m Model) withBack() Model {
	m.allowBack = true
	return m
}

// Init starts the cursor blink. The countdown starts on the first restore.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.ctrl.Ended() {
		switch {
		case key.Matches(msg, m.keys.NewGame):
			if err := m.start(); err != nil {
				m.message, m.messageOK = err.Error(), false
			}
			return m, textinput.Blink
		case key.Matches(msg, m.keys.Back):
			m.backToMenu = true
			return m, nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		res := m.ctrl.RestoreCity(m.input.Value())
		m.message, m.messageOK = res.Message, res.Success
		if res.Success {
			m.message = fmt.Sprintf("%s  +%s points, -%s transformers",
				res.Message, formatAmount(res.Points), formatAmount(res.Cost))
		}
		if res.ClearInput {
			m.input.Reset()
		}
		return m, m.handleEvents()

	case key.Matches(msg, m.keys.Clear):
		m.input.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleTick advances the countdown. Ticks stop once the game has ended.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.ticking {
		return m, nil
	}

	m.ctrl.Tick()
	cmd := m.handleEvents()
	if !m.ticking {
		return m, cmd
	}
	return m, tea.Batch(cmd, tickCmd(timerInterval, m.gen))
}

// handleEvents reacts to controller events. It returns the command that
// starts the countdown when the timer has just started.
func (m *Model) handleEvents() tea.Cmd {
	var cmd tea.Cmd
	for _, e := range m.queue.drain() {
		switch e := e.(type) {
		case game.TimerStartedEvent:
			if !m.ticking {
				m.ticking = true
				cmd = tickCmd(timerInterval, m.gen)
			}

		case game.CityRestoredEvent:
			m.lastRestored = e.City
			m.updateSuggestions()

		case game.GameEndedEvent:
			m.ticking = false
			m.input.Blur()
			m.keys.NewGame.SetEnabled(true)
			m.keys.Back.SetEnabled(m.allowBack)
			m.message = fmt.Sprintf("Time's up! %d of %d cities restored, final score %s",
				e.Restored, e.Damaged, formatAmount(e.Score))
			m.messageOK = true
			m.saveSession()
		}
	}
	return cmd
}

// saveSession records the finished game. Failures are logged, not fatal.
func (m *Model) saveSession() {
	if m.store == nil {
		return
	}
	summary := m.ctrl.Snapshot().Summary()
	best, bestErr := m.store.HighScore(summary.Mode)

	id, err := m.store.SaveSession(summary)
	if err != nil {
		m.logger.Warn("could not save session", "error", err)
		return
	}
	m.sessionID = id
	if bestErr == nil && summary.Score > best {
		m.message += " - new high score!"
	}
	m.logger.Info("session saved", "id", id, "score", m.ctrl.Score())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width < minGameWidth || m.height < minGameHeight {
		return centerText(fmt.Sprintf("Terminal too small (need %dx%d)", minGameWidth, minGameHeight), m.width)
	}

	snap := m.ctrl.Snapshot()

	var b strings.Builder
	b.WriteString(m.renderHUD(snap))
	b.WriteString("\n")

	mapW, mapH := m.width, m.height-chromeLines
	showSidebar := m.width >= minSidebarWidth
	if showSidebar {
		mapW -= citySidebar + 1
	}
	m.canvas.Resize(mapW, mapH)
	drawMap(m.canvas, m.canvas.Bounds(), snap, m.lastRestored)
	mapView := RenderCanvas(m.canvas)
	if showSidebar {
		mapView = lipgloss.JoinHorizontal(lipgloss.Top, mapView, " ", m.renderSidebar(snap, mapH))
	}
	b.WriteString(mapView)
	b.WriteString("\n\n")

	if snap.Ended {
		b.WriteString(titleStyle.Render("  GAME OVER"))
		if m.sessionID != "" {
			b.WriteString(dimStyle.Render("  saved as " + m.sessionID[:8]))
		}
	} else {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")

	style := failStyle
	if m.messageOK {
		style = okStyle
	}
	b.WriteString(style.Render(m.message))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderHUD renders the status line above the map.
func (m Model) renderHUD(snap game.Snapshot) string {
	clock := formatClock(snap.TimeRemaining)
	if !snap.TimerStarted {
		clock += " (waiting)"
	}

	parts := []string{
		titleStyle.Render("SHIMONOPOLY"),
		hudStyle.Render(snap.Config.PlayerName),
		hudStyle.Render(snap.Mode),
		hudStyle.Render("score " + formatAmount(snap.Score)),
		hudStyle.Render("transformers " + formatAmount(snap.Transformers)),
		hudStyle.Render(fmt.Sprintf("restored %d/%d", len(snap.Restored), len(snap.Restored)+len(snap.Damaged))),
		hudStyle.Render("time " + clock),
	}
	return strings.Join(parts, dimStyle.Render(" | "))
}

// renderSidebar lists the cities that still need restoring.
func (m Model) renderSidebar(snap game.Snapshot, height int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Damaged (%d)\n", len(snap.Damaged))

	// Border and heading take three lines
	room := max(height-3, 0)
	for i, c := range snap.Damaged {
		if i == room-1 && len(snap.Damaged) > room {
			b.WriteString(dimStyle.Render(fmt.Sprintf("... %d more", len(snap.Damaged)-i)))
			break
		}
		if i >= room {
			break
		}
		b.WriteString(truncate(c.Name, citySidebar-4))
		b.WriteString("\n")
	}

	return sidebarStyle.Width(citySidebar).Height(max(height-2, 1)).Render(strings.TrimRight(b.String(), "\n"))
}

// Result returns the final state of the game screen.
func (m Model) Result() Result {
	return Result{Snapshot: m.ctrl.Snapshot(), SessionID: m.sessionID}
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the setup menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// formatAmount formats scores and transformer counts, which may be fractional.
func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return humanize.Comma(int64(v))
	}
	return humanize.CommafWithDigits(v, 2)
}

// formatClock formats seconds as m:ss.
func formatClock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Run starts the game screen and blocks until the player quits.
func Run(cfg config.SessionConfig, source CitySource, store *storage.Store, logger *log.Logger, width, height int) (Result, error) {
	model, err := NewModel(cfg, source, store, logger, width, height)
	if err != nil {
		return Result{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return model.Result(), nil
	}
	return m.Result(), nil
}
