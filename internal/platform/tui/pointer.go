package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// PointerTracker turns terminal mouse events into world-space slices.
// A press and release without motion is a click; motion while the button
// is held produces one drag segment per cell moved.
type PointerTracker struct {
	vp core.Viewport

	pressed  bool
	moved    bool
	lastCell [2]int
	last     core.Vec2
}

// NewPointerTracker creates a tracker projecting through vp.
func NewPointerTracker(vp core.Viewport) *PointerTracker {
	return &PointerTracker{vp: vp}
}

// SetViewport updates the projection after a resize. A gesture in progress
// is abandoned.
func (p *PointerTracker) SetViewport(vp core.Viewport) {
	p.vp = vp
	p.Reset()
}

// Reset abandons any gesture in progress.
func (p *PointerTracker) Reset() {
	p.pressed = false
	p.moved = false
}

// Handle consumes one mouse event and returns the slice it completes, if any.
// The canvas starts at the top-left terminal cell.
func (p *PointerTracker) Handle(msg tea.MouseMsg) (core.Slice, bool) {
	cx, cy := msg.X, msg.Y

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return core.Slice{}, false
		}
		pt, ok := p.vp.ToWorld(cx, cy)
		if !ok {
			return core.Slice{}, false
		}
		p.pressed = true
		p.moved = false
		p.last = pt
		p.lastCell = [2]int{cx, cy}
		return core.Slice{}, false

	case tea.MouseActionMotion:
		if !p.pressed || p.lastCell == [2]int{cx, cy} {
			return core.Slice{}, false
		}
		pt, ok := p.vp.ToWorld(cx, cy)
		if !ok {
			return core.Slice{}, false
		}
		s := core.Drag(p.last, pt)
		p.last = pt
		p.lastCell = [2]int{cx, cy}
		p.moved = true
		return s, true

	case tea.MouseActionRelease:
		if !p.pressed {
			return core.Slice{}, false
		}
		p.pressed = false
		if p.moved {
			return core.Slice{}, false
		}
		return core.Click(p.last), true
	}

	return core.Slice{}, false
}

// Pressed reports whether a gesture is in progress.
func (p *PointerTracker) Pressed() bool {
	return p.pressed
}
