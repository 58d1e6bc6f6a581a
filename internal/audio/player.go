// Package audio plays the message arrival sound cue.
package audio

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// Player decodes the cue once and replays the buffered samples. Playback
// failures never propagate to the panel; a broken audio stack degrades to
// silence.
type Player struct {
	mu     sync.Mutex
	logger *slog.Logger

	volume      float64
	initialized bool
	sampleRate  beep.SampleRate

	cue *beep.Buffer
}

// NewPlayer creates a Player with the cue at path preloaded.
// Volume is 0.0 to 1.0.
func NewPlayer(path string, volume float64, logger *slog.Logger) (*Player, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}

	p := &Player{
		logger:     logger,
		volume:     volume,
		sampleRate: beep.SampleRate(44100),
	}

	if path != "" {
		cue, err := p.load(expandHome(path))
		if err != nil {
			return nil, err
		}
		p.cue = cue
	}
	return p, nil
}

// Cue plays the arrival sound. A Player with no cue loaded is a no-op.
func (p *Player) Cue() {
	p.mu.Lock()
	cue := p.cue
	volume := p.volume
	sampleRate := p.sampleRate
	p.mu.Unlock()

	if cue == nil {
		return
	}

	var streamer beep.Streamer = cue.Streamer(0, cue.Len())
	if cue.Format().SampleRate != sampleRate {
		streamer = beep.Resample(4, cue.Format().SampleRate, sampleRate, streamer)
	}
	if volume < 1.0 {
		streamer = &effects.Volume{
			Streamer: streamer,
			Base:     2,
			Volume:   volumeToDecibels(volume),
			Silent:   volume == 0,
		}
	}

	speaker.Play(streamer)
}

func (p *Player) load(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound: %w", err)
	}
	defer func() { _ = streamer.Close() }()

	if err := p.ensureInitialized(format.SampleRate); err != nil {
		return nil, err
	}

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return buffer, nil
}

func (p *Player) ensureInitialized(sampleRate beep.SampleRate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	bufferSize := sampleRate.N(100 * time.Millisecond)
	if err := speaker.Init(sampleRate, bufferSize); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	p.sampleRate = sampleRate
	p.initialized = true
	p.logger.Debug("speaker initialized", "sample_rate", sampleRate)
	return nil
}

// volumeToDecibels converts linear volume to the log scale beep expects.
func volumeToDecibels(volume float64) float64 {
	if volume <= 0 {
		return -10
	}
	return math.Log2(volume)
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
