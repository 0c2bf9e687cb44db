// Package share publishes end-of-game results. The terminal version copies
// the message to the system clipboard with an OSC 52 escape sequence.
package share

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aymanbagabas/go-osc52/v2"
)

// Sharer accepts a message to publish. The error is only used for status
// display; callers never retry.
type Sharer interface {
	Share(text string) error
}

// Message builds the text shared at the end of a game.
func Message(title string, score int, url string) string {
	msg := fmt.Sprintf("I scored %d points in %s!", score, title)
	if url = strings.TrimSpace(url); url != "" {
		msg += " " + url
	}
	return msg
}

// Multiplexer selects how the escape sequence is wrapped.
type Multiplexer int

const (
	MuxNone   Multiplexer = iota // Plain terminal
	MuxTmux                      // tmux passthrough
	MuxScreen                    // GNU screen passthrough
)

// DetectMultiplexer guesses the multiplexer from the environment.
func DetectMultiplexer(getenv func(string) string) Multiplexer {
	switch {
	case getenv("TMUX") != "":
		return MuxTmux
	case strings.HasPrefix(getenv("TERM"), "screen"):
		return MuxScreen
	default:
		return MuxNone
	}
}

// ClipboardSharer writes an OSC 52 copy sequence to a terminal.
type ClipboardSharer struct {
	mu  sync.Mutex
	w   io.Writer
	mux Multiplexer
}

// NewClipboardSharer creates a sharer writing to w.
func NewClipboardSharer(w io.Writer, mux Multiplexer) *ClipboardSharer {
	return &ClipboardSharer{w: w, mux: mux}
}

// Share copies text to the clipboard.
func (s *ClipboardSharer) Share(text string) error {
	if text == "" {
		return fmt.Errorf("share: empty message")
	}

	seq := osc52.New(text)
	switch s.mux {
	case MuxTmux:
		seq = seq.Tmux()
	case MuxScreen:
		seq = seq.Screen()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := seq.WriteTo(s.w); err != nil {
		return fmt.Errorf("share: write clipboard sequence: %w", err)
	}
	return nil
}
