package overlay

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/simnotify/simnotify/internal/audio"
	"github.com/simnotify/simnotify/internal/config"
	"github.com/simnotify/simnotify/internal/feed"
	"github.com/simnotify/simnotify/internal/host"
	"github.com/simnotify/simnotify/internal/panel"
	"github.com/simnotify/simnotify/internal/theme"
)

// RunOptions configures the overlay program.
type RunOptions struct {
	Config     *config.Config
	ConfigPath string // watched for hot reload when non-empty
	Palette    *theme.Palette
	Feed       feed.Feed
	Player     *audio.Player // nil disables the sound cue
	Clock      host.Clock
	Logger     *slog.Logger
}

// Run wires the panel to its collaborators and blocks until the overlay
// exits or ctx is canceled.
func Run(ctx context.Context, opts RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = host.SystemClock{}
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	palette := opts.Palette
	if palette == nil {
		palette, _ = theme.Builtin("default")
	}

	b := cfg.Panel.Bounds
	pnl := panel.New(clock, panel.Options{
		Bounds:          panel.Bounds{Left: b.Left, Top: b.Top, Right: b.Right, Bottom: b.Bottom},
		DisplayDuration: cfg.Panel.DisplayDuration.Duration(),
		FrameInterval:   cfg.Panel.FrameInterval.Duration(),
		AlwaysVisible:   cfg.Panel.AlwaysVisible,
		Logger:          logger,
	})

	commands := host.NewCommands(logger)
	m := New(cfg, pnl, palette, commands, opts.Player, clock, logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if opts.Feed != nil {
		go func() {
			err := opts.Feed.Run(ctx, func(ev feed.Event) { p.Send(ev) })
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("feed stopped", "error", err)
			}
		}()
	}

	if opts.ConfigPath != "" {
		watcher, err := config.NewWatcher(opts.ConfigPath, cfg, logger)
		if err != nil {
			logger.Warn("config watcher unavailable", "error", err)
		} else {
			watcher.SetReloadCallback(func(newCfg *config.Config) {
				pal, perr := theme.Load(newCfg.Theme.Name, newCfg.Theme.Path)
				if perr != nil {
					logger.Warn("reloaded config has bad theme, keeping palette", "error", perr)
					pal = palette
				}
				p.Send(ReloadMsg{Config: newCfg, Palette: pal})
			})
			if err := watcher.Start(); err != nil {
				logger.Warn("config watcher failed to start", "error", err)
			} else {
				defer func() { _ = watcher.Stop() }()
			}
		}
	}

	_, err := p.Run()
	return err
}
