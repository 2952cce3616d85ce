// Package game implements the Shimonopoly session controller: city
// selection and damage, restore attempts and the countdown timer.
package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shimonopoly/internal/cities"
	"github.com/vovakirdan/shimonopoly/internal/config"
	"github.com/vovakirdan/shimonopoly/internal/scoring"
)

// Controller owns the state of one game session.
// It is not safe for concurrent use; a single event loop drives it.
type Controller struct {
	cfg      config.SessionConfig
	logger   *log.Logger
	registry *cities.Registry
	scorer   scoring.Engine

	phase         Phase
	score         float64
	transformers  float64
	timeRemaining int
	timerStarted  bool

	listeners []Listener
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a controller for the given session. Call Initialize to start it.
func New(cfg config.SessionConfig, opts ...Option) *Controller {
	c := &Controller{
		cfg:    cfg,
		logger: log.New(io.Discard),
		scorer: scoring.New(scoring.ModeFor(cfg.AdvancedMode)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnEvent registers a listener. Listeners run synchronously, in
// registration order, after the state change they describe.
func (c *Controller) OnEvent(l Listener) {
	if l != nil {
		c.listeners = append(c.listeners, l)
	}
}

func (c *Controller) emit(e Event) {
	for _, l := range c.listeners {
		l(e)
	}
}

// Initialize selects and damages the working set and resets the session.
// On error the controller state is left untouched. Damage flags are set on
// the given cities, so each session needs freshly loaded values.
func (c *Controller) Initialize(all []*cities.City) error {
	if err := c.cfg.Validate(); err != nil {
		return err
	}

	registry := cities.NewRegistry(all, c.cfg.Seed)
	registry.Select(c.cfg.NumCities)
	if err := registry.Damage(c.cfg.DamagedFraction); err != nil {
		return err
	}

	c.registry = registry
	c.scorer = scoring.New(scoring.ModeFor(c.cfg.AdvancedMode))
	c.transformers = float64(len(registry.DamagedUnrestored()))
	c.score = 0
	c.timeRemaining = c.cfg.TimerDuration
	c.timerStarted = false
	c.phase = PhaseRunning

	c.logger.Debug("session initialized",
		"seed", c.cfg.Seed,
		"cities", registry.Len(),
		"damaged", len(registry.Damaged()),
		"mode", c.scorer.Mode(),
		"timer", c.timeRemaining)
	return nil
}

// RestoreCity attempts to restore the named city.
// Every failure leaves the session state unchanged.
func (c *Controller) RestoreCity(name string) RestoreResult {
	switch c.phase {
	case PhaseNotStarted:
		return rejected(OutcomeNotStarted)
	case PhaseEnded:
		return rejected(OutcomeGameEnded)
	}

	city, ok := c.registry.FindByName(name)
	if !ok {
		return rejected(OutcomeNotFound)
	}
	if !city.Damaged() {
		return rejected(OutcomeNotDamaged)
	}
	if city.Restored() {
		return rejected(OutcomeAlreadyRestored)
	}

	cost := c.scorer.CostFor(city, c.registry.Restored())
	if c.transformers < cost {
		c.logger.Debug("restore refused", "city", city.Name, "cost", cost, "transformers", c.transformers)
		return rejected(OutcomeInsufficientTransformers)
	}

	timerStarting := !c.timerStarted
	c.timerStarted = true
	c.registry.MarkRestored(city)
	c.transformers -= cost
	points := c.scorer.PointsFor(city)
	c.score += points

	c.logger.Debug("city restored", "city", city.Name, "points", points, "cost", cost, "score", c.score)

	if timerStarting {
		c.emit(TimerStartedEvent{TimeRemaining: c.timeRemaining})
	}
	c.emit(CityRestoredEvent{City: city, Points: points, Cost: cost})
	return restored(city, points, cost)
}

// Tick advances the countdown by one second and ends the game at zero.
// It does nothing before Initialize or after the game has ended.
// Callers start ticking on TimerStartedEvent.
func (c *Controller) Tick() {
	if c.phase != PhaseRunning {
		return
	}

	c.timeRemaining = max(c.timeRemaining-1, 0)
	if c.timeRemaining > 0 {
		return
	}

	c.phase = PhaseEnded
	restoredCount := len(c.registry.Restored())
	damagedCount := len(c.registry.Damaged())
	c.logger.Debug("game ended", "score", c.score, "restored", restoredCount, "damaged", damagedCount)
	c.emit(GameEndedEvent{Score: c.score, Restored: restoredCount, Damaged: damagedCount})
}

// Config returns the session configuration.
func (c *Controller) Config() config.SessionConfig { return c.cfg }

// Mode returns the scoring mode.
func (c *Controller) Mode() scoring.Mode { return c.scorer.Mode() }

// Phase returns the lifecycle state.
func (c *Controller) Phase() Phase { return c.phase }

// Score returns the cumulative score.
func (c *Controller) Score() float64 { return c.score }

// Transformers returns the remaining transformers.
func (c *Controller) Transformers() float64 { return c.transformers }

// TimeRemaining returns the countdown in seconds.
func (c *Controller) TimeRemaining() int { return c.timeRemaining }

// TimerStarted reports whether a city has been restored yet.
func (c *Controller) TimerStarted() bool { return c.timerStarted }

// Ended reports whether the timer has run out.
func (c *Controller) Ended() bool { return c.phase == PhaseEnded }

// Cities returns the working set, or an empty list before Initialize.
func (c *Controller) Cities() []*cities.City {
	if c.registry == nil {
		return []*cities.City{}
	}
	return c.registry.All()
}

// DamagedCities returns the cities that still need restoring.
func (c *Controller) DamagedCities() []*cities.City {
	if c.registry == nil {
		return []*cities.City{}
	}
	return c.registry.DamagedUnrestored()
}

// RestoredCities returns the restored cities in working-set order.
func (c *Controller) RestoredCities() []*cities.City {
	if c.registry == nil {
		return []*cities.City{}
	}
	return c.registry.Restored()
}

// Snapshot returns the full session state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Phase:         c.phase,
		Mode:          c.scorer.Mode().String(),
		Config:        c.cfg,
		Score:         c.score,
		Transformers:  c.transformers,
		TimeRemaining: c.timeRemaining,
		TimerStarted:  c.timerStarted,
		Ended:         c.Ended(),
		Cities:        c.Cities(),
		Damaged:       c.DamagedCities(),
		Restored:      c.RestoredCities(),
	}
}
