package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shimonopoly/internal/cities"
	"github.com/vovakirdan/shimonopoly/internal/config"
	"github.com/vovakirdan/shimonopoly/internal/datasets"
	"github.com/vovakirdan/shimonopoly/internal/platform/tui"
	"github.com/vovakirdan/shimonopoly/internal/storage"
)

var (
	flagConfig    string
	flagPreset    string
	flagDataset   string
	flagCities    string
	flagPlayer    string
	flagNumCities int
	flagFraction  float64
	flagTimer     int
	flagAdvanced  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game on an embedded dataset or your own JSONL city file.

Controls:
  Enter      - Restore the typed city
  Tab        - Accept the suggested city name
  Ctrl+U     - Clear the input
  Ctrl+R     - New game (after time is up)
  Ctrl+C     - Quit

Difficulty presets:
  easy   - 10 cities, 50% damaged, 5:00
  normal - 15 cities, 75% damaged, 3:00
  hard   - 25 cities, 100% damaged, 2:00

Log output goes to ~/.shimonopoly/play.log while the game is on screen.

Examples:
  shimonopoly play
  shimonopoly play --preset easy
  shimonopoly play --dataset northeast --advanced
  shimonopoly play --cities ./cities.jsonl --num-cities 20 --fraction 0.5
  shimonopoly play --config ./my-session.yaml --seed 123`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom session config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagDataset, "dataset", "", "Embedded dataset ID (see 'shimonopoly datasets')")
	playCmd.Flags().StringVar(&flagCities, "cities", "", "Path to a JSONL city file (overrides --dataset)")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name recorded with the session")
	playCmd.Flags().IntVar(&flagNumCities, "num-cities", 0, "Number of cities on the map")
	playCmd.Flags().Float64Var(&flagFraction, "fraction", 0, "Fraction of cities damaged, 0.5 to 1.0")
	playCmd.Flags().IntVar(&flagTimer, "timer", 0, "Timer duration in seconds")
	playCmd.Flags().BoolVar(&flagAdvanced, "advanced", false, "Score by population instead of one point per city")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if err := applyPlayFlags(cmd, &cfg); err != nil {
		fail("%v", err)
	}

	logger, closeLog := playLogger()
	defer closeLog()

	source, err := citySource(cfg.Dataset, flagCities, logger)
	if err != nil {
		fail("%v", err)
	}

	// Get terminal size before entering the alt screen
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	result, runErr := tui.Run(cfg.Session, source, store, logger, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("%v", runErr)
	}

	printSummary(result)
}

// applyPlayFlags layers the preset and explicitly set flags over cfg.
func applyPlayFlags(cmd *cobra.Command, cfg *config.GameConfig) error {
	flags := cmd.Flags()

	if flagPreset != "" {
		preset, err := config.ParseDifficultyPreset(flagPreset)
		if err != nil {
			return err
		}
		config.ApplyPreset(&cfg.Session, preset)
	}

	if flags.Changed("dataset") {
		cfg.Dataset = flagDataset
	}
	if flags.Changed("player") {
		cfg.Session.PlayerName = flagPlayer
	}
	if flags.Changed("seed") {
		cfg.Session.Seed = flagSeed
	}
	if flags.Changed("num-cities") {
		cfg.Session.NumCities = flagNumCities
	}
	if flags.Changed("fraction") {
		cfg.Session.DamagedFraction = flagFraction
	}
	if flags.Changed("timer") {
		cfg.Session.TimerDuration = flagTimer
	}
	if flags.Changed("advanced") {
		cfg.Session.AdvancedMode = flagAdvanced
	}

	// An empty map is a valid session but not a playable game
	if cfg.Session.NumCities == 0 {
		return fmt.Errorf("config: num_cities must be positive: %w", config.ErrInvalidConfig)
	}
	return cfg.Session.Validate()
}

// citySource returns a source that reloads the city file, or the embedded
// dataset when path is empty, for every new game.
func citySource(dataset, path string, logger *log.Logger) (tui.CitySource, error) {
	loader := cities.NewLoader(logger)

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("cannot read city file: %w", err)
		}
		return func() ([]*cities.City, error) {
			all, _, err := loader.LoadFile(path)
			return all, err
		}, nil
	}

	if !datasets.Exists(dataset) {
		return nil, fmt.Errorf("unknown dataset %q, run 'shimonopoly datasets' to see the list", dataset)
	}
	return func() ([]*cities.City, error) {
		all, _, err := datasets.Load(dataset, loader)
		return all, err
	}, nil
}

// playLogger logs to ~/.shimonopoly/play.log since stderr is hidden behind
// the alt screen. Logging is discarded if the file cannot be opened.
func playLogger() (*log.Logger, func()) {
	path, err := config.ExpandHome("~/.shimonopoly/play.log")
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	if err != nil {
		return newLogger(io.Discard, "shimonopoly"), func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return newLogger(io.Discard, "shimonopoly"), func() {}
	}
	return newLogger(f, "shimonopoly"), func() { f.Close() }
}

func printSummary(result tui.Result) {
	snap := result.Snapshot
	if !snap.Ended {
		return
	}

	sum := snap.Summary()
	fmt.Printf("Game over - %s mode\n", sum.Mode)
	fmt.Printf("  Restored:      %d of %d\n", sum.Restored, sum.Damaged)
	fmt.Printf("  Score:         %s\n", humanize.CommafWithDigits(sum.Score, 2))
	fmt.Printf("  Transformers:  %s left\n", humanize.CommafWithDigits(sum.TransformersLeft, 2))
	fmt.Printf("  Seed:          %d\n", sum.Seed)
	if result.SessionID != "" {
		fmt.Printf("  Session:       %s\n", result.SessionID)
	}
}
