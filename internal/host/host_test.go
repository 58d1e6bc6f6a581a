package host

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func TestSimClock_Elapsed(t *testing.T) {
	fc := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	sc := NewSimClock(fc)

	assert.Equal(t, time.Duration(0), sc.Elapsed())

	fc.now = fc.now.Add(90 * time.Second)
	assert.Equal(t, 90*time.Second, sc.Elapsed())
}

func TestTickScheduler_Reinvokes(t *testing.T) {
	s := NewTickScheduler(SystemClock{}, nil)

	var calls atomic.Int32
	done := make(chan struct{})
	s.Register("test", func(now time.Time) time.Duration {
		if calls.Add(1) == 3 {
			close(done)
			return 0 // unregister
		}
		return time.Millisecond
	})

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callback was not re-invoked")
	}
	assert.Equal(t, int32(3), calls.Load())
}

func TestTickScheduler_StopHaltsCallbacks(t *testing.T) {
	s := NewTickScheduler(SystemClock{}, nil)

	var calls atomic.Int32
	s.Register("test", func(now time.Time) time.Duration {
		calls.Add(1)
		return time.Millisecond
	})

	require.NoError(t, s.Start(context.Background()))
	time.Sleep(10 * time.Millisecond)
	s.Stop()

	after := calls.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}

func TestCommands_RegisterAndInvoke(t *testing.T) {
	c := NewCommands(nil)

	invoked := false
	c.Register("panel/toggle", "Toggle the notification panel", func() {
		invoked = true
	})

	require.NoError(t, c.Invoke("panel/toggle"))
	assert.True(t, invoked)
}

func TestCommands_UnknownCommand(t *testing.T) {
	c := NewCommands(nil)
	err := c.Invoke("panel/missing")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestCommands_List(t *testing.T) {
	c := NewCommands(nil)
	c.Register("panel/toggle", "toggle", func() {})
	c.Register("panel/pin", "pin", func() {})

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, "panel/pin", list[0].Name)
	assert.Equal(t, "panel/toggle", list[1].Name)
}

func TestPaths_StripSystemRoot(t *testing.T) {
	root := t.TempDir()
	p, err := NewPaths(root)
	require.NoError(t, err)

	inside := filepath.Join(root, "Resources", "plugins")
	assert.Equal(t, filepath.Join("Resources", "plugins"), p.StripSystemRoot(inside))

	outside := filepath.Join(os.TempDir(), "elsewhere")
	if outside == inside {
		t.Skip("tempdir collision")
	}
	assert.Equal(t, "/somewhere/else", p.StripSystemRoot("/somewhere/else"))
}

func TestPaths_CountFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0o644))

	p, err := NewPaths(dir)
	require.NoError(t, err)

	n, err := p.CountFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = p.CountFiles(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
