package host

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// FrameFunc is a periodic callback. It receives the current time and
// returns the interval after which it wants to run again. Returning zero
// or a negative duration unregisters the callback.
type FrameFunc func(now time.Time) time.Duration

// FrameScheduler re-invokes registered callbacks on a cadence each
// callback chooses for itself.
type FrameScheduler interface {
	Register(name string, fn FrameFunc)
	Start(ctx context.Context) error
	Stop()
}

// TickScheduler is a timer-driven FrameScheduler. Each registered callback
// gets its own self-rescheduling loop: run, sleep for whatever the
// callback returned, run again.
type TickScheduler struct {
	mu     sync.Mutex
	clock  Clock
	logger *slog.Logger

	callbacks map[string]FrameFunc

	stopCh  chan struct{}
	wg      sync.WaitGroup
	running bool
}

// NewTickScheduler creates a TickScheduler using the given clock.
func NewTickScheduler(clock Clock, logger *slog.Logger) *TickScheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TickScheduler{
		clock:     clock,
		logger:    logger,
		callbacks: make(map[string]FrameFunc),
	}
}

// Register adds a callback under a name. Registering before Start is the
// normal path; registering the same name twice replaces the callback but
// does not restart a running loop.
func (s *TickScheduler) Register(name string, fn FrameFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks[name] = fn
}

// Start launches one loop per registered callback. Each callback is first
// invoked immediately, then re-invoked after the interval it returned.
func (s *TickScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.stopCh = make(chan struct{})

	for name, fn := range s.callbacks {
		s.wg.Add(1)
		go s.loop(ctx, name, fn)
	}
	s.mu.Unlock()

	s.logger.Debug("frame scheduler started", "callbacks", len(s.callbacks))
	return nil
}

// Stop stops all callback loops and waits for them to finish.
func (s *TickScheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Debug("frame scheduler stopped")
}

func (s *TickScheduler) loop(ctx context.Context, name string, fn FrameFunc) {
	defer s.wg.Done()

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-timer.C:
			next := fn(s.clock.Now())
			if next <= 0 {
				s.logger.Debug("frame callback unregistered itself", "name", name)
				return
			}
			timer.Reset(next)
		}
	}
}
