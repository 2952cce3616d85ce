// shimonopoly is a terminal game about restoring power to damaged cities
// before the clock runs out.
//
// Usage:
//
//	shimonopoly play                 - Play a game
//	shimonopoly datasets [id]        - List embedded city datasets
//	shimonopoly validate <file>      - Check a JSONL city file
//	shimonopoly scores [mode]        - Show session history
//	shimonopoly serve                - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible games
//	--db <path>          - Set database path (default: ~/.shimonopoly/sessions.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shimonopoly",
	Short: "Shimonopoly - restore the grid before time runs out",
	Long: `Shimonopoly is a terminal game. A storm has knocked out power across
a map of cities; type city names to send transformers and restore them.
Bigger cities score more, and cities close to ones already restored are
cheaper. The clock starts with your first restore.

Available commands:
  play      - Play a game
  datasets  - List embedded city datasets
  validate  - Check a JSONL city file
  scores    - View session history
  serve     - Start SSH server for remote play

Examples:
  shimonopoly play
  shimonopoly play --preset hard --advanced
  shimonopoly play --cities ./my-cities.jsonl --seed 42
  shimonopoly serve --ssh :2222
  shimonopoly scores advanced`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shimonopoly/sessions.db", "Path to session database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(datasetsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the root logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
