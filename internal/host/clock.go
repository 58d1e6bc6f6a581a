package host

import "time"

// Clock is the time source for everything the panel does with time.
// It is injected once at construction; nothing reads time.Now directly.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// SimClock is an owned session-time handle: created once at startup, it
// exposes both wall time and elapsed session time for log prefixes.
type SimClock struct {
	clock Clock
	epoch time.Time
}

// NewSimClock creates a SimClock whose session starts now.
func NewSimClock(clock Clock) *SimClock {
	if clock == nil {
		clock = SystemClock{}
	}
	return &SimClock{clock: clock, epoch: clock.Now()}
}

// Now returns the current wall time.
func (c *SimClock) Now() time.Time { return c.clock.Now() }

// Elapsed returns the time since the session epoch.
func (c *SimClock) Elapsed() time.Duration {
	return c.clock.Now().Sub(c.epoch)
}
