// Package overlay is the terminal draw layer hosting the notification
// panel: a bubbletea program that drives the panel's frame callback and
// renders its build-interface hook into a viewport.
package overlay

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/simnotify/simnotify/internal/audio"
	"github.com/simnotify/simnotify/internal/config"
	"github.com/simnotify/simnotify/internal/feed"
	"github.com/simnotify/simnotify/internal/host"
	"github.com/simnotify/simnotify/internal/model"
	"github.com/simnotify/simnotify/internal/panel"
	"github.com/simnotify/simnotify/internal/theme"
)

// FrameMsg is the self-rescheduling frame tick driving the panel's
// periodic check.
type FrameMsg struct {
	At time.Time
}

// ReloadMsg carries a hot-reloaded config and its resolved palette.
type ReloadMsg struct {
	Config  *config.Config
	Palette *theme.Palette
}

// Model is the overlay's bubbletea model. All panel mutation happens
// here, on the update loop, preserving the panel's single-owner rule.
type Model struct {
	cfg    *config.Config
	logger *slog.Logger
	clock  host.Clock

	panel    *panel.NotificationPanel
	palette  *theme.Palette
	commands *host.Commands
	player   *audio.Player // nil when audio is disabled

	viewport viewport.Model
	help     help.Model
	keys     KeyMap
	styles   styles
	surface  drawSurface

	width    int
	height   int
	ready    bool
	showHelp bool
}

// New creates the overlay model and binds the panel's host commands.
func New(cfg *config.Config, pnl *panel.NotificationPanel, palette *theme.Palette,
	commands *host.Commands, player *audio.Player, clock host.Clock, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	if clock == nil {
		clock = host.SystemClock{}
	}

	pnl.BindCommands(commands)

	return Model{
		cfg:      cfg,
		logger:   logger,
		clock:    clock,
		panel:    pnl,
		palette:  palette,
		commands: commands,
		player:   player,
		help:     help.New(),
		keys:     DefaultKeyMap(),
		styles:   defaultStyles(),
	}
}

// Init schedules the first frame tick.
func (m Model) Init() tea.Cmd {
	return m.scheduleFrame(m.cfg.Panel.FrameInterval.Duration())
}

func (m Model) scheduleFrame(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return FrameMsg{At: time.Now()}
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()
		m.ready = true
		m.refresh()
		return m, nil

	case FrameMsg:
		// The frame callback decides its own re-invoke cadence.
		next := m.panel.OnFrame(m.clock.Now())
		return m, m.scheduleFrame(next)

	case feed.Event:
		m.addEvent(msg)
		m.refresh()
		return m, nil

	case ReloadMsg:
		m.cfg = msg.Config
		m.palette = msg.Palette
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) addEvent(ev feed.Event) {
	text := ev.Text
	if limit := m.cfg.Panel.MaxLineLength; limit > 0 {
		text = model.Truncate(text, limit)
	}
	m.panel.AddMessage(text, m.palette.Color(ev.Kind))
	if m.player != nil && m.cfg.Audio.Enabled {
		m.player.Cue()
	}
	m.logger.Debug("panel message added", "kind", ev.Kind, "messages", m.panel.Len())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if err := m.commands.Invoke("panel/toggle"); err != nil {
			m.logger.Warn("toggle failed", "error", err)
		}
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Pin):
		if err := m.commands.Invoke("panel/pin"); err != nil {
			m.logger.Warn("pin failed", "error", err)
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) resizeViewport() {
	b := m.panel.Bounds()

	// Bounds are laid out in overlay cells; clamp to the terminal.
	w := b.Width()
	if w <= 0 || w > m.width-4 {
		w = m.width - 4
	}
	h := b.Height()
	if h <= 0 || h > m.height-6 {
		h = m.height - 6
	}
	if w < 20 {
		w = 20
	}
	if h < 3 {
		h = 3
	}

	m.viewport.Width = w
	m.viewport.Height = h
}

// refresh runs one pass of the panel's build-interface hook and pushes
// the result into the viewport.
func (m *Model) refresh() {
	s := drawSurface{}
	m.panel.BuildInterface(&s)
	m.surface = s

	m.viewport.SetContent(s.content())
	if s.scroll {
		m.viewport.GotoBottom()
	}
}

// View renders the overlay.
func (m Model) View() string {
	if !m.ready {
		return ""
	}

	if !m.panel.Visible() {
		hint := m.styles.hidden.Render("notifications hidden (press t to show)")
		if m.showHelp {
			hint += "\n" + m.help.FullHelpView(m.keys.FullHelp())
		}
		return hint
	}

	title := m.styles.title.Render("Notifications")
	if m.panel.IsAlwaysVisible() {
		title += m.styles.status.Render("  (pinned)")
	}

	body := title + "\n" + m.viewport.View() + "\n" + m.surface.checkboxView(m.styles)

	view := m.styles.frame.Render(body) + "\n" + m.statusLine()
	if m.showHelp {
		view += "\n" + m.help.FullHelpView(m.keys.FullHelp())
	} else {
		view += "\n" + m.help.ShortHelpView(m.keys.ShortHelp())
	}
	return view
}

func (m Model) statusLine() string {
	n := m.panel.Len()
	if n == 0 {
		return m.styles.status.Render("no messages yet")
	}

	line := humanize.Comma(int64(n)) + " messages"
	if n == 1 {
		line = "1 message"
	}
	if newest, ok := m.panel.Newest(); ok {
		line += " · last " + humanize.Time(newest.Time)
	}
	return m.styles.status.Render(line)
}
