// Package simlog provides a slog handler that prefixes records with
// elapsed session time, the way the host debug log expects entries:
//
//	0:01:30.250 simnotify [INFO] connected callsign=N172SP
package simlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/simnotify/simnotify/internal/host"
)

// LevelFatal extends the slog levels with the host log's FATAL.
const LevelFatal = slog.Level(12)

const prefix = "simnotify"

// Handler renders slog records into the host debug log format.
type Handler struct {
	mu     *sync.Mutex
	w      io.Writer
	clock  *host.SimClock
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

// NewHandler creates a Handler writing to w. Session time comes from the
// clock handle; records below level are dropped.
func NewHandler(w io.Writer, clock *host.SimClock, level slog.Leveler) *Handler {
	if clock == nil {
		clock = host.NewSimClock(nil)
	}
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{
		mu:    &sync.Mutex{},
		w:     w,
		clock: clock,
		level: level,
	}
}

// New returns a *slog.Logger backed by a Handler.
func New(w io.Writer, clock *host.SimClock, level slog.Leveler) *slog.Logger {
	return slog.New(NewHandler(w, clock, level))
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	elapsed := h.clock.Elapsed()
	hours := int(elapsed.Hours())
	mins := int(elapsed.Minutes()) % 60
	secs := elapsed.Seconds() - float64(hours*3600) - float64(mins*60)
	fmt.Fprintf(&b, "%d:%02d:%06.3f %s [%s] %s", hours, mins, secs, prefix, levelName(r.Level), r.Message)

	for _, a := range h.attrs {
		appendAttr(&b, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		a.Key = h.qualify(a.Key)
		appendAttr(&b, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

// WithAttrs implements slog.Handler. Keys are qualified with the group
// path in effect at the time the attrs are attached.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		a.Key = h.qualify(a.Key)
		h2.attrs = append(h2.attrs, a)
	}
	return &h2
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.groups = append(append([]string{}, h.groups...), name)
	return &h2
}

func (h *Handler) qualify(key string) string {
	if len(h.groups) == 0 {
		return key
	}
	return strings.Join(h.groups, ".") + "." + key
}

func appendAttr(b *strings.Builder, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	fmt.Fprintf(b, " %s=%v", a.Key, a.Value.Resolve())
}

func levelName(l slog.Level) string {
	switch {
	case l >= LevelFatal:
		return "FATAL"
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARN"
	case l >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
