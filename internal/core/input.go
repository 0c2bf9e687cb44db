package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionJump           // Space, W, Up - jump
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart after game over / victory
	ActionShare          // S key - share the final score
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionShare:
		return "Share"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// SliceKind distinguishes the two pointer gestures that can slice.
type SliceKind int

const (
	SliceClick SliceKind = iota // Single point: hits whatever box contains it
	SliceDrag                   // Segment: hits whatever center lies close to it
)

// Slice is one pointer gesture in world coordinates.
// For clicks From and To are the same point.
type Slice struct {
	Kind SliceKind
	From Vec2
	To   Vec2
}

// Click creates a click slice at p.
func Click(p Vec2) Slice {
	return Slice{Kind: SliceClick, From: p, To: p}
}

// Drag creates a drag slice from a to b.
func Drag(a, b Vec2) Slice {
	return Slice{Kind: SliceDrag, From: a, To: b}
}

// InputFrame represents the player's input during one simulation tick.
// It contains all actions and pointer gestures that arrived during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Slices holds pointer gestures in arrival order.
	Slices []Slice
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddSlice appends a pointer gesture to this frame.
func (f *InputFrame) AddSlice(s Slice) {
	f.Slices = append(f.Slices, s)
}

// Clear resets all actions and gestures for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Slices = f.Slices[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Slices) > 0 {
		clone.Slices = append([]Slice(nil), f.Slices...)
	}
	return clone
}
