package feed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simnotify/simnotify/internal/theme"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Event
		ok   bool
	}{
		{"plain text", "hello there", Event{Kind: theme.KindInfo, Text: "hello there"}, true},
		{"error prefix", "error: it broke", Event{Kind: theme.KindError, Text: "it broke"}, true},
		{"radio prefix", "RADIO: cleared for takeoff", Event{Kind: theme.KindRadio, Text: "cleared for takeoff"}, true},
		{"unknown prefix kept verbatim", "note: remember this", Event{Kind: theme.KindInfo, Text: "note: remember this"}, true},
		{"colon in plain text", "time is 12:30", Event{Kind: theme.KindInfo, Text: "time is 12:30"}, true},
		{"empty line", "   ", Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.in)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLineFeed_Run(t *testing.T) {
	input := "success: connected\n\nwarning: stale weather\nplain line\n"
	f := NewLineFeed(strings.NewReader(input))

	var events []Event
	err := f.Run(context.Background(), func(ev Event) { events = append(events, ev) })
	require.NoError(t, err)

	require.Len(t, events, 3)
	assert.Equal(t, Event{Kind: theme.KindSuccess, Text: "connected"}, events[0])
	assert.Equal(t, Event{Kind: theme.KindWarning, Text: "stale weather"}, events[1])
	assert.Equal(t, Event{Kind: theme.KindInfo, Text: "plain line"}, events[2])
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	content := `
- after: 0s
  kind: success
  text: Connected
- after: 1500
  text: no kind defaults to info
- after: 2s
  kind: error
  text: Something failed
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	steps, err := LoadScript(path)
	require.NoError(t, err)
	require.Len(t, steps, 3)

	assert.Equal(t, theme.KindSuccess, steps[0].Kind)
	assert.Equal(t, 1500*time.Millisecond, steps[1].After.Duration())
	assert.Equal(t, theme.KindInfo, steps[1].Kind)
	assert.Equal(t, 2*time.Second, steps[2].After.Duration())
}

func TestLoadScript_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: [not a list"), 0o644))

	_, err := LoadScript(path)
	assert.Error(t, err)
}

func TestScriptFeed_Run(t *testing.T) {
	steps := []Step{
		{Kind: theme.KindInfo, Text: "one"},
		{Kind: theme.KindError, Text: "two"},
	}
	f := NewScriptFeed(steps)

	var events []Event
	err := f.Run(context.Background(), func(ev Event) { events = append(events, ev) })
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, "one", events[0].Text)
	assert.Equal(t, "two", events[1].Text)
}

func TestScriptFeed_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewScriptFeed(DemoScript())
	err := f.Run(ctx, func(Event) { t.Fatal("emit after cancel") })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoop_ReplaysUntilCanceled(t *testing.T) {
	steps := []Step{{Kind: theme.KindInfo, Text: "tick"}}

	ctx, cancel := context.WithCancel(context.Background())
	var count int
	err := Loop(NewScriptFeed(steps)).Run(ctx, func(Event) {
		count++
		if count == 3 {
			cancel()
		}
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, count, 3)
}

func TestDemoScript(t *testing.T) {
	steps := DemoScript()
	require.NotEmpty(t, steps)
	for _, s := range steps {
		assert.NotEmpty(t, s.Text)
		assert.NotEmpty(t, s.Kind)
	}
}
