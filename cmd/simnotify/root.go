package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/simnotify/simnotify/internal/config"
	"github.com/simnotify/simnotify/internal/host"
	"github.com/simnotify/simnotify/internal/simlog"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
	}
	logger   *slog.Logger
	simClock *host.SimClock
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "simnotify",
	Short: "Auto-hiding notification panel for flight sim message streams",
	Long: `simnotify renders a scrolling, auto-hiding notification panel for
flight sim message streams: network chatter, radio transmissions,
private messages, and system events, each in its own color.

New messages show the panel and arm a disappear timer; the panel hides
itself once the timer lapses unless it is pinned always-visible.

Running simnotify without a subcommand reads messages from stdin.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load configuration
		path := globalOpts.configPath
		if path == "" {
			path = config.Path()
		}

		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		setupLogger()
		return nil
	},
	// Default to the stdin feed when no subcommand is provided
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRun(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/simnotify/config.toml)")
}

// setupLogger configures the global slog logger. Log lines carry the
// session-elapsed timestamp, matching the sim's own log format.
func setupLogger() {
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	// Log to stderr so stdout is clean for output
	simClock = host.NewSimClock(host.SystemClock{})
	logger = simlog.New(os.Stderr, simClock, level)
	slog.SetDefault(logger)
}
