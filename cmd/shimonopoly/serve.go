package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shimonopoly/internal/config"
	"github.com/vovakirdan/shimonopoly/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagServeConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the shimonopoly SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game with a setup menu. The SSH user name
is recorded as the player name. Sessions are stored per-server (all users
share the same scoreboard).

Settings come from SHIMONOPOLY_SSH_ADDR, SHIMONOPOLY_HOST_KEY,
SHIMONOPOLY_DB, SHIMONOPOLY_IDLE_TIMEOUT and SHIMONOPOLY_LOG_LEVEL;
flags override them when given.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.shimonopoly/host_key

Examples:
  shimonopoly serve                           # Listen on :23234
  shimonopoly serve --ssh :2222               # Listen on port 2222
  shimonopoly serve --host-key ./my_host_key  # Use specific host key
  shimonopoly serve --db ./sessions.db        # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle time before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to session config YAML used as setup defaults")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg, err := config.LoadServer()
	if err != nil {
		fail("%v", err)
	}

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.IdleTimeout = flagIdleTimeout
	}
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if !flags.Changed("log-level") {
		flagLogLevel = cfg.LogLevel
	}

	gameCfg, err := config.Load(flagServeConfig)
	if err != nil {
		fail("%v", err)
	}

	logger := newLogger(os.Stderr, "shimonopoly-ssh")

	server, err := tui.NewSSHServer(cfg, gameCfg, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting shimonopoly SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		logger.Error("server stopped", "error", err)
		stop()
		os.Exit(1)
	}
	logger.Info("server stopped")
}
