// Package audio plays the short chime games trigger on notable events.
// A chime is opened when a game session starts and closed when it ends.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

// Chime is a fire-and-forget sound trigger.
type Chime interface {
	// Play starts the sound and returns without waiting for it to finish.
	Play()
	// Close releases the output device.
	Close() error
}

// Options configures a speaker chime.
type Options struct {
	SampleRate int           // Output sample rate in Hz
	Frequency  float64       // Tone pitch in Hz
	Duration   time.Duration // Tone length
	Gain       float64       // Added to 1 and multiplied into every sample; -0.8 is quiet
}

// DefaultOptions returns a short, quiet high-pitched blip.
func DefaultOptions() Options {
	return Options{
		SampleRate: 44100,
		Frequency:  880,
		Duration:   60 * time.Millisecond,
		Gain:       -0.8,
	}
}

// SpeakerChime plays a sine tone through the system audio device.
type SpeakerChime struct {
	sr   beep.SampleRate
	opts Options
	once sync.Once
}

// NewSpeakerChime initializes the speaker. It fails when no audio device
// is available.
func NewSpeakerChime(opts Options) (*SpeakerChime, error) {
	if opts.SampleRate <= 0 || opts.Frequency <= 0 || opts.Duration <= 0 {
		return nil, fmt.Errorf("audio: invalid chime options %+v", opts)
	}
	sr := beep.SampleRate(opts.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/30)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	return &SpeakerChime{sr: sr, opts: opts}, nil
}

// Play queues one tone on the speaker mixer.
func (c *SpeakerChime) Play() {
	tone, err := generators.SineTone(c.sr, c.opts.Frequency)
	if err != nil {
		return
	}
	speaker.Play(&effects.Gain{
		Streamer: beep.Take(c.sr.N(c.opts.Duration), tone),
		Gain:     c.opts.Gain,
	})
}

// Close shuts the speaker down. Further calls are no-ops.
func (c *SpeakerChime) Close() error {
	c.once.Do(speaker.Close)
	return nil
}

// BellChime rings the terminal bell.
type BellChime struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBellChime creates a chime writing BEL to w.
func NewBellChime(w io.Writer) *BellChime {
	return &BellChime{w: w}
}

// Play writes a BEL character.
func (c *BellChime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	//nolint:errcheck // A missed bell is not worth reporting
	io.WriteString(c.w, "\a")
}

// Close does nothing; the writer belongs to the caller.
func (c *BellChime) Close() error { return nil }

// NopChime is used when sound is muted.
type NopChime struct{}

// Play does nothing.
func (NopChime) Play() {}

// Close does nothing.
func (NopChime) Close() error { return nil }

// Open picks the best chime available: nothing when muted, the speaker when
// an audio device can be opened, the terminal bell on bellOut otherwise.
func Open(muted bool, bellOut io.Writer, logger *log.Logger) Chime {
	if muted {
		return NopChime{}
	}
	c, err := NewSpeakerChime(DefaultOptions())
	if err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, using terminal bell", "err", err)
		}
		return NewBellChime(bellOut)
	}
	return c
}
