package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shimonopoly/internal/platform/tui"
	"github.com/vovakirdan/shimonopoly/internal/scoring"
	"github.com/vovakirdan/shimonopoly/internal/storage"
)

var (
	flagInteractive bool
	flagAll         bool
	flagClear       bool
	flagScorePlayer string
	flagSessionID   string
	flagStats       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [basic|advanced]",
	Short: "Show session history",
	Long: `Display the best recorded games for a scoring mode (basic by default).

Examples:
  shimonopoly scores
  shimonopoly scores advanced --all
  shimonopoly scores --player alice
  shimonopoly scores --interactive
  shimonopoly scores --stats
  shimonopoly scores --id 3f2c9a1e-...
  shimonopoly scores basic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the scoreboard screen")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "List every session instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all sessions for the mode")
	scoresCmd.Flags().StringVar(&flagScorePlayer, "player", "", "Show recent sessions of one player")
	scoresCmd.Flags().StringVar(&flagSessionID, "id", "", "Show one session by ID")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Summarize every mode")
}

func runScores(_ *cobra.Command, args []string) {
	mode := scoring.ModeBasic
	if len(args) == 1 {
		parsed, ok := scoring.ParseMode(args[0])
		if !ok {
			fail("unknown mode %q (want basic or advanced)", args[0])
		}
		mode = parsed
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening session database: %v", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, mode, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	if flagSessionID != "" {
		session, err := store.SessionByID(flagSessionID)
		if err != nil {
			fail("%v", err)
		}
		if session == nil {
			fail("no session with ID %q", flagSessionID)
		}
		printSession(os.Stdout, *session)
		return
	}

	if flagStats {
		all, err := store.GetAllModesStats()
		if err != nil {
			fail("%v", err)
		}
		printStats(os.Stdout, all)
		return
	}

	if flagClear {
		if err := store.ClearSessions(mode.String()); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared %s sessions.\n", mode)
		return
	}

	var sessions []storage.Session
	switch {
	case flagScorePlayer != "":
		sessions, err = store.PlayerSessions(flagScorePlayer, 0)
	case flagAll:
		sessions, err = store.AllSessions(mode.String())
	default:
		sessions, err = store.TopSessions(mode.String(), 10)
	}
	if err != nil {
		fail("retrieving sessions: %v", err)
	}

	if flagScorePlayer != "" {
		fmt.Printf("Recent games - %s\n", flagScorePlayer)
	} else {
		fmt.Printf("High Scores - %s mode\n", mode)
	}
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'shimonopoly play' to set the first high score!")
		return
	}

	printSessions(sessions)

	if flagScorePlayer != "" {
		return
	}
	stats, err := store.GetModeStats(mode.String())
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %s  Average: %s  Games: %d  Cities restored: %s  Last played %s\n",
			humanize.CommafWithDigits(stats.HighScore, 2),
			humanize.CommafWithDigits(stats.AvgScore, 2),
			stats.GamesCount,
			humanize.Comma(stats.TotalRestored),
			humanize.Time(stats.LastPlayed),
		)
	}
}

func printSessions(sessions []storage.Session) {
	fmt.Printf("  %-4s  %-14s  %-8s  %12s  %-9s  %s\n", "Rank", "Player", "Mode", "Score", "Restored", "When")
	fmt.Printf("  %-4s  %-14s  %-8s  %12s  %-9s  %s\n", "----", "------", "----", "-----", "--------", "----")

	for i, s := range sessions {
		fmt.Printf("  %-4d  %-14s  %-8s  %12s  %-9s  %s\n",
			i+1,
			s.Player,
			s.Mode,
			humanize.CommafWithDigits(s.Score, 2),
			fmt.Sprintf("%d/%d", s.Restored, s.Damaged),
			humanize.Time(s.CreatedAt),
		)
	}
}

func printSession(w io.Writer, s storage.Session) {
	fmt.Fprintf(w, "Session %s\n", s.ID)
	fmt.Fprintf(w, "  Player:        %s\n", s.Player)
	fmt.Fprintf(w, "  Mode:          %s\n", s.Mode)
	fmt.Fprintf(w, "  Score:         %s\n", humanize.CommafWithDigits(s.Score, 2))
	fmt.Fprintf(w, "  Restored:      %d of %d\n", s.Restored, s.Damaged)
	fmt.Fprintf(w, "  Transformers:  %s left\n", humanize.CommafWithDigits(s.TransformersLeft, 2))
	fmt.Fprintf(w, "  Cities:        %d\n", s.NumCities)
	fmt.Fprintf(w, "  Timer:         %ds\n", s.TimerDuration)
	fmt.Fprintf(w, "  Seed:          %d\n", s.Seed)
	fmt.Fprintf(w, "  Played:        %s (%s)\n", s.CreatedAt.Format("2006-01-02 15:04"), humanize.Time(s.CreatedAt))
}

func printStats(w io.Writer, all map[string]*storage.ModeStats) {
	if len(all) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		return
	}

	modes := make([]string, 0, len(all))
	for mode := range all {
		modes = append(modes, mode)
	}
	sort.Strings(modes)

	fmt.Fprintf(w, "  %-8s  %5s  %12s  %12s  %8s  %s\n", "Mode", "Games", "Best", "Average", "Restored", "Last played")
	fmt.Fprintf(w, "  %-8s  %5s  %12s  %12s  %8s  %s\n", "----", "-----", "----", "-------", "--------", "-----------")
	for _, mode := range modes {
		st := all[mode]
		fmt.Fprintf(w, "  %-8s  %5d  %12s  %12s  %8s  %s\n",
			mode,
			st.GamesCount,
			humanize.CommafWithDigits(st.HighScore, 2),
			humanize.CommafWithDigits(st.AvgScore, 2),
			humanize.Comma(st.TotalRestored),
			humanize.Time(st.LastPlayed),
		)
	}
}
