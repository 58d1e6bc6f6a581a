// Package feed produces the messages shown in the panel. Feeds run off
// the update loop and hand events to the host, which owns the panel.
package feed

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/simnotify/simnotify/internal/theme"
)

// Event is one message bound for the panel.
type Event struct {
	Kind string `yaml:"kind"`
	Text string `yaml:"text"`
}

// Feed emits events until the source is exhausted or ctx is canceled.
type Feed interface {
	Run(ctx context.Context, emit func(Event)) error
}

// knownKinds are the prefixes ParseLine recognizes.
var knownKinds = map[string]bool{
	theme.KindInfo:    true,
	theme.KindSuccess: true,
	theme.KindWarning: true,
	theme.KindError:   true,
	theme.KindRadio:   true,
	theme.KindPrivate: true,
	theme.KindSystem:  true,
}

// ParseLine turns a raw input line into an Event. A leading "kind:"
// prefix selects the palette kind; anything else is plain info text.
func ParseLine(line string) (Event, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Event{}, false
	}

	if kind, rest, ok := strings.Cut(line, ":"); ok {
		kind = strings.ToLower(strings.TrimSpace(kind))
		if knownKinds[kind] {
			return Event{Kind: kind, Text: strings.TrimSpace(rest)}, true
		}
	}
	return Event{Kind: theme.KindInfo, Text: line}, true
}

// LineFeed reads newline-delimited events from a reader, usually stdin.
type LineFeed struct {
	r io.Reader
}

// NewLineFeed creates a LineFeed over r.
func NewLineFeed(r io.Reader) *LineFeed {
	return &LineFeed{r: r}
}

// Run scans lines until EOF or cancellation.
func (f *LineFeed) Run(ctx context.Context, emit func(Event)) error {
	scanner := bufio.NewScanner(f.r)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if ev, ok := ParseLine(scanner.Text()); ok {
			emit(ev)
		}
	}
	return scanner.Err()
}
