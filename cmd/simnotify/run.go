package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/simnotify/simnotify/internal/audio"
	"github.com/simnotify/simnotify/internal/feed"
	"github.com/simnotify/simnotify/internal/host"
	"github.com/simnotify/simnotify/internal/overlay"
	"github.com/simnotify/simnotify/internal/theme"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show the panel, reading messages from stdin",
	Long: `Show the notification panel and feed it from stdin, one message
per line. A line may carry a kind prefix selecting its color:

  error: voice server connection lost
  radio: LSZH_TWR: cleared to land runway 14
  private: EDDM_APP: radio check

Lines without a known prefix are shown as plain info messages.

Key bindings:
  t           Toggle the panel
  p           Pin the panel always-visible
  j/k, ↑/↓    Scroll messages
  ?           Show help
  q           Quit`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	return runOverlay(feed.NewLineFeed(os.Stdin))
}

// runOverlay wires the shared collaborators and runs the overlay with the
// given feed until it exits or a shutdown signal arrives.
func runOverlay(f feed.Feed) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	palette, err := theme.Load(cfg.Theme.Name, cfg.Theme.Path)
	if err != nil {
		logger.Warn("failed to load theme, using default", "error", err)
		palette, _ = theme.Builtin("default")
	}

	var player *audio.Player
	if cfg.Audio.Enabled {
		player, err = audio.NewPlayer(cfg.Audio.SoundFile, cfg.Audio.Volume, logger)
		if err != nil {
			logger.Warn("audio unavailable", "error", err)
			player = nil
		}
	}

	// Session heartbeat on its own frame loop, outside the overlay's
	// update cycle.
	scheduler := host.NewTickScheduler(simClock, logger)
	scheduler.Register("heartbeat", func(now time.Time) time.Duration {
		logger.Debug("session heartbeat", "elapsed", simClock.Elapsed().Round(time.Second))
		return time.Minute
	})
	if err := scheduler.Start(ctx); err != nil {
		logger.Warn("heartbeat scheduler failed to start", "error", err)
	}
	defer scheduler.Stop()

	configPath := globalOpts.configPath
	if configPath == "" {
		configPath = overlayConfigPath()
	}

	logger.Info("overlay starting",
		"theme", palette.Name,
		"display_duration", cfg.Panel.DisplayDuration.Duration(),
		"audio", cfg.Audio.Enabled,
	)

	return overlay.Run(ctx, overlay.RunOptions{
		Config:     cfg,
		ConfigPath: configPath,
		Palette:    palette,
		Feed:       f,
		Player:     player,
		Clock:      simClock,
		Logger:     logger,
	})
}
