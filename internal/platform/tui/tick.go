// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// loop run that scheduled it.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// FrameLoop owns the recurring tick of one game session. Every Start begins
// a new generation; ticks scheduled by an earlier generation are rejected,
// so restarting never leaves two loops running.
type FrameLoop struct {
	tickRate int
	gen      uint64
	running  bool
}

// NewFrameLoop creates a stopped frame loop ticking tickRate times per second.
// Non-positive rates fall back to 60.
func NewFrameLoop(tickRate int) *FrameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameLoop{tickRate: tickRate}
}

// Start begins a new generation and returns the command for its first tick.
func (l *FrameLoop) Start() tea.Cmd {
	l.gen++
	l.running = true
	return l.schedule()
}

// Stop invalidates every pending tick.
func (l *FrameLoop) Stop() {
	l.running = false
	l.gen++
}

// Running reports whether the loop accepts ticks.
func (l *FrameLoop) Running() bool {
	return l.running
}

// Generation returns the current generation number.
func (l *FrameLoop) Generation() uint64 {
	return l.gen
}

// Accept checks whether msg belongs to the live generation. If it does, the
// returned command schedules the next tick.
func (l *FrameLoop) Accept(msg TickMsg) (tea.Cmd, bool) {
	if !l.running || msg.Gen != l.gen {
		return nil, false
	}
	return l.schedule(), true
}

// schedule returns a command that delivers one tick of the current generation.
func (l *FrameLoop) schedule() tea.Cmd {
	gen := l.gen
	interval := time.Second / time.Duration(l.tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
