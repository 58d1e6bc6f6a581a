// Package panel implements the auto-hiding notification message panel.
//
// The panel is frame-driven and single-owner: every method is expected to
// be called from the host's update loop, so there is no locking here.
package panel

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/simnotify/simnotify/internal/host"
	"github.com/simnotify/simnotify/internal/model"
)

// Defaults used when Options leaves a field zero.
const (
	DefaultDisplayDuration = 10 * time.Second
	DefaultFrameInterval   = 500 * time.Millisecond
)

// Bounds is the panel's fixed screen rectangle, set once at construction.
type Bounds struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() int { return b.Right - b.Left }

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() int { return b.Top - b.Bottom }

// Options configures a NotificationPanel.
type Options struct {
	Bounds          Bounds
	DisplayDuration time.Duration // how long the panel stays up after an append
	FrameInterval   time.Duration // re-invoke interval returned to the scheduler
	AlwaysVisible   bool
	Logger          *slog.Logger
}

// NotificationPanel owns a timestamped, colored message list, toggles
// visibility, and auto-hides after a timeout unless pinned.
//
// Messages are append-only and never reordered; there is no eviction.
type NotificationPanel struct {
	clock  host.Clock
	logger *slog.Logger

	bounds          Bounds
	displayDuration time.Duration
	frameInterval   time.Duration

	messages       []model.Message
	disappearTime  time.Time
	alwaysVisible  bool
	scrollToBottom bool
	visible        bool
}

// New constructs a panel with fixed bounds. The clock is the panel's only
// time source.
func New(clock host.Clock, opts Options) *NotificationPanel {
	if clock == nil {
		clock = host.SystemClock{}
	}
	if opts.DisplayDuration <= 0 {
		opts.DisplayDuration = DefaultDisplayDuration
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &NotificationPanel{
		clock:           clock,
		logger:          opts.Logger,
		bounds:          opts.Bounds,
		displayDuration: opts.DisplayDuration,
		frameInterval:   opts.FrameInterval,
		alwaysVisible:   opts.AlwaysVisible,
	}
}

// AddMessage appends a message in the given color, arms the auto-hide
// timer, requests a scroll to the newest entry, and shows the panel.
// It cannot fail; the list grows without bound.
func (p *NotificationPanel) AddMessage(text string, color model.RGB) {
	now := p.clock.Now()
	p.messages = append(p.messages, model.NewMessage(text, color, now))
	p.disappearTime = now.Add(p.displayDuration)
	p.scrollToBottom = true
	p.visible = true
}

// Addf is AddMessage with printf formatting.
func (p *NotificationPanel) Addf(color model.RGB, format string, args ...any) {
	p.AddMessage(fmt.Sprintf(format, args...), color)
}

// Toggle flips panel visibility. Toggling a stale panel back on does not
// re-arm the auto-hide timer, so the next frame check may hide it again.
// That matches the original behavior and is intentional.
func (p *NotificationPanel) Toggle() {
	p.visible = !p.visible
}

// IsAlwaysVisible reports whether the panel is pinned.
func (p *NotificationPanel) IsAlwaysVisible() bool { return p.alwaysVisible }

// SetAlwaysVisible sets the pin flag. It does not change current
// visibility; it only suppresses (or re-enables) the auto-hide check.
func (p *NotificationPanel) SetAlwaysVisible(v bool) { p.alwaysVisible = v }

// Visible reports whether the panel is currently shown.
func (p *NotificationPanel) Visible() bool { return p.visible }

// Messages returns a copy of the message list, oldest first.
func (p *NotificationPanel) Messages() []model.Message {
	out := make([]model.Message, len(p.messages))
	copy(out, p.messages)
	return out
}

// Len returns the number of messages.
func (p *NotificationPanel) Len() int { return len(p.messages) }

// Newest returns the most recent message, if any.
func (p *NotificationPanel) Newest() (model.Message, bool) {
	if len(p.messages) == 0 {
		return model.Message{}, false
	}
	return p.messages[len(p.messages)-1], true
}

// Bounds returns the panel's screen rectangle.
func (p *NotificationPanel) Bounds() Bounds { return p.bounds }

// OnFrame is the periodic host callback: it hides the panel once the
// auto-hide deadline has passed, unless pinned, and returns the fixed
// re-invoke interval for the scheduler.
func (p *NotificationPanel) OnFrame(now time.Time) time.Duration {
	if !p.alwaysVisible && p.visible && !now.Before(p.disappearTime) {
		p.visible = false
		p.logger.Debug("panel auto-hidden",
			"messages", len(p.messages),
			"disappear_time", p.disappearTime,
		)
	}
	return p.frameInterval
}

// BindCommands registers the panel's host commands.
func (p *NotificationPanel) BindCommands(reg *host.Commands) {
	reg.Register("panel/toggle", "Toggle the notification panel", p.Toggle)
	reg.Register("panel/pin", "Toggle always-visible pin", func() {
		p.SetAlwaysVisible(!p.alwaysVisible)
	})
}

// BuildInterface draws the message list onto the surface: each message in
// its stored color, oldest first. A pending scroll-to-bottom request is
// honored once and cleared. The pin checkbox feeds straight back into
// SetAlwaysVisible.
func (p *NotificationPanel) BuildInterface(s Surface) {
	for _, m := range p.messages {
		s.Line(m.Text, m.Color)
	}

	if p.scrollToBottom {
		s.ScrollToBottom()
		p.scrollToBottom = false
	}

	if pinned := s.Checkbox("Always visible", p.alwaysVisible); pinned != p.alwaysVisible {
		p.SetAlwaysVisible(pinned)
	}
}
