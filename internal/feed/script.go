package feed

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/simnotify/simnotify/internal/config"
	"github.com/simnotify/simnotify/internal/theme"
)

// Step is one scripted event: wait, then show.
type Step struct {
	After config.Duration `yaml:"after"`
	Kind  string          `yaml:"kind"`
	Text  string          `yaml:"text"`
}

// ScriptFeed replays a fixed sequence of steps, pacing them by each
// step's delay.
type ScriptFeed struct {
	steps []Step
}

// NewScriptFeed creates a ScriptFeed over the given steps.
func NewScriptFeed(steps []Step) *ScriptFeed {
	return &ScriptFeed{steps: steps}
}

// LoadScript reads a step list from a YAML file.
func LoadScript(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}

	for i := range steps {
		if steps[i].Kind == "" {
			steps[i].Kind = theme.KindInfo
		}
	}
	return steps, nil
}

// DemoScript is the built-in sequence used when no script file is given.
func DemoScript() []Step {
	d := func(dur time.Duration) config.Duration { return config.Duration(dur) }
	return []Step{
		{After: d(0), Kind: theme.KindSuccess, Text: "Connected to network"},
		{After: d(2 * time.Second), Kind: theme.KindInfo, Text: "Server: welcome aboard"},
		{After: d(3 * time.Second), Kind: theme.KindRadio, Text: "LSZH_TWR: cleared to land runway 14"},
		{After: d(4 * time.Second), Kind: theme.KindPrivate, Text: "N172SP: are you on frequency?"},
		{After: d(6 * time.Second), Kind: theme.KindWarning, Text: "Weather data is stale"},
		{After: d(8 * time.Second), Kind: theme.KindError, Text: "Lost connection to voice server"},
		{After: d(3 * time.Second), Kind: theme.KindSuccess, Text: "Voice reconnected"},
		{After: d(12 * time.Second), Kind: theme.KindSystem, Text: "Disconnected from network"},
	}
}

// Loop wraps a feed so it replays from the start whenever it finishes.
// The loop ends only on cancellation or a feed error.
func Loop(f Feed) Feed {
	return loopFeed{inner: f}
}

type loopFeed struct {
	inner Feed
}

func (l loopFeed) Run(ctx context.Context, emit func(Event)) error {
	for {
		if err := l.inner.Run(ctx, emit); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// Run replays the steps, honoring each delay, until done or canceled.
func (f *ScriptFeed) Run(ctx context.Context, emit func(Event)) error {
	for _, step := range f.steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if d := step.After.Duration(); d > 0 {
			timer := time.NewTimer(d)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
		emit(Event{Kind: step.Kind, Text: step.Text})
	}
	return nil
}
