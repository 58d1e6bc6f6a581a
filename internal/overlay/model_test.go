package overlay

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simnotify/simnotify/internal/config"
	"github.com/simnotify/simnotify/internal/feed"
	"github.com/simnotify/simnotify/internal/host"
	"github.com/simnotify/simnotify/internal/model"
	"github.com/simnotify/simnotify/internal/panel"
	"github.com/simnotify/simnotify/internal/theme"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func newTestModel(t *testing.T) (Model, *fakeClock) {
	t.Helper()

	fc := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	cfg := config.Default()
	cfg.Panel.DisplayDuration = config.Duration(5 * time.Second)

	pnl := panel.New(fc, panel.Options{
		DisplayDuration: 5 * time.Second,
		FrameInterval:   500 * time.Millisecond,
	})
	palette, err := theme.Builtin("default")
	require.NoError(t, err)

	m := New(cfg, pnl, palette, host.NewCommands(nil), nil, fc, nil)

	// Simulate the initial window size message.
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model), fc
}

func TestModel_FeedEventAddsMessage(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(feed.Event{Kind: theme.KindError, Text: "voice lost"})
	m = updated.(Model)

	require.Equal(t, 1, m.panel.Len())
	msg, ok := m.panel.Newest()
	require.True(t, ok)
	assert.Equal(t, "voice lost", msg.Text)
	assert.Equal(t, model.Red, msg.Color)
	assert.True(t, m.panel.Visible())
}

func TestModel_FeedEventTruncates(t *testing.T) {
	m, _ := newTestModel(t)
	m.cfg.Panel.MaxLineLength = 10

	updated, _ := m.Update(feed.Event{Kind: theme.KindInfo, Text: "this line is far too long"})
	m = updated.(Model)

	msg, ok := m.panel.Newest()
	require.True(t, ok)
	assert.Equal(t, "this li...", msg.Text)
}

func TestModel_FrameMsgHidesStalePanel(t *testing.T) {
	m, fc := newTestModel(t)

	updated, _ := m.Update(feed.Event{Kind: theme.KindInfo, Text: "hello"})
	m = updated.(Model)
	require.True(t, m.panel.Visible())

	fc.now = fc.now.Add(time.Minute)
	updated, cmd := m.Update(FrameMsg{At: fc.now})
	m = updated.(Model)

	assert.False(t, m.panel.Visible())
	assert.NotNil(t, cmd, "frame must reschedule itself")
}

func TestModel_ToggleKeyFlipsVisibility(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	m = updated.(Model)
	assert.True(t, m.panel.Visible())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	m = updated.(Model)
	assert.False(t, m.panel.Visible())
}

func TestModel_PinKey(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	m = updated.(Model)
	assert.True(t, m.panel.IsAlwaysVisible())
}

func TestModel_ViewHiddenAndVisible(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Contains(t, m.View(), "hidden")

	updated, _ := m.Update(feed.Event{Kind: theme.KindInfo, Text: "hello"})
	m = updated.(Model)

	view := m.View()
	assert.Contains(t, view, "Notifications")
	assert.Contains(t, view, "hello")
	assert.Contains(t, view, "Always visible")
	assert.Contains(t, view, "1 message")
}

func TestModel_ReloadSwapsPalette(t *testing.T) {
	m, _ := newTestModel(t)

	mono, err := theme.Builtin("mono")
	require.NoError(t, err)

	cfg := config.Default()
	updated, _ := m.Update(ReloadMsg{Config: cfg, Palette: mono})
	m = updated.(Model)

	updated, _ = m.Update(feed.Event{Kind: theme.KindError, Text: "now white"})
	m = updated.(Model)

	msg, ok := m.panel.Newest()
	require.True(t, ok)
	assert.Equal(t, model.White, msg.Color)
}

func TestLineStyle_UsesMessageColor(t *testing.T) {
	s := lineStyle(model.Orange)
	assert.Equal(t, lipgloss.Color("#ffa500"), s.GetForeground())
}

func TestDrawSurface_CollectsRenderPass(t *testing.T) {
	s := drawSurface{}
	s.Line("one", model.White)
	s.Line("two", model.Red)
	s.ScrollToBottom()
	s.Checkbox("Always visible", true)

	assert.Contains(t, s.content(), "one")
	assert.Contains(t, s.content(), "two")
	assert.True(t, s.scroll)
	assert.Contains(t, s.checkboxView(defaultStyles()), "[x] Always visible")
}
