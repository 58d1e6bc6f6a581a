// Package model defines the core data structures for simnotify.
package model

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// RGB is a message color with channels in [0,255], matching the convention
// of the host overlay API the panel was written against.
type RGB struct {
	R float32 `toml:"r" yaml:"r"`
	G float32 `toml:"g" yaml:"g"`
	B float32 `toml:"b" yaml:"b"`
}

// Builtin message colors.
var (
	White  = RGB{255, 255, 255}
	Gray   = RGB{128, 128, 128}
	Yellow = RGB{255, 255, 0}
	Orange = RGB{255, 165, 0}
	Red    = RGB{255, 0, 0}
	Green  = RGB{0, 200, 0}
	Cyan   = RGB{0, 255, 255}
)

// ErrInvalidColor is returned when a color channel is outside [0,255].
var ErrInvalidColor = errors.New("color channel out of range [0,255]")

// Validate checks that all channels are within [0,255].
func (c RGB) Validate() error {
	for _, ch := range []float32{c.R, c.G, c.B} {
		if ch < 0 || ch > 255 {
			return fmt.Errorf("%w: %v", ErrInvalidColor, c)
		}
	}
	return nil
}

// Hex returns the color as a #rrggbb string, the form lipgloss and most
// terminal styling layers accept.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", uint8(c.R), uint8(c.G), uint8(c.B))
}

// ParseRGB parses a color from "r,g,b" decimal form, e.g. "255,165,0".
func ParseRGB(s string) (RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("invalid color %q: want r,g,b", s)
	}
	var ch [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		ch[i] = v
	}
	c := RGB{float32(ch[0]), float32(ch[1]), float32(ch[2])}
	if err := c.Validate(); err != nil {
		return RGB{}, err
	}
	return c, nil
}

// Message is a single panel entry. Messages are owned by the panel once
// appended and are never mutated afterwards.
type Message struct {
	ID    string    `json:"id" yaml:"id"`
	Text  string    `json:"text" yaml:"text"`
	Color RGB       `json:"color" yaml:"color"`
	Time  time.Time `json:"time" yaml:"time"`
}

// NewMessage creates a Message stamped with the given time.
func NewMessage(text string, color RGB, at time.Time) Message {
	return Message{
		ID:    ulid.MustNew(ulid.Timestamp(at), rand.Reader).String(),
		Text:  text,
		Color: color,
		Time:  at,
	}
}

// RelativeTime returns a human-readable age relative to now.
// Examples: "just now", "5m ago", "2h ago", "1d ago".
func (m Message) RelativeTime(now time.Time) string {
	diff := now.Sub(m.Time)
	switch {
	case diff < 0:
		return "in the future"
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
}

// Truncate cuts s to at most max characters, appending "..." when it had
// to cut. Whitespace runs are collapsed to single spaces first.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
