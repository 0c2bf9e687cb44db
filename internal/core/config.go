package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// InputKind tells the platform which input source a game listens to.
type InputKind int

const (
	InputButtons InputKind = iota // Discrete key presses (left/right/jump)
	InputPointer                  // Mouse press, drag and release
)

// String returns a human-readable name for the input kind.
func (k InputKind) String() string {
	switch k {
	case InputButtons:
		return "keyboard"
	case InputPointer:
		return "mouse"
	default:
		return "unknown"
	}
}
