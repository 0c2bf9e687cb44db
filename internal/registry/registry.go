// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Game is the interface every arcade game implements.
// Games are pure simulations with no Bubble Tea dependency. The platform
// handles input mapping, timing, overlays and side effects.
type Game interface {
	// ID returns a unique identifier used by CLI commands (e.g. "mario").
	ID() string

	// Title returns a human-readable name for display and share messages.
	Title() string

	// Input tells the platform whether to feed key presses or pointer
	// gestures into the game.
	Input() core.InputKind

	// Reset initializes or restarts the game. Called once at start and
	// again for every restart after a terminal mode.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick and reports the
	// resulting state and the events that happened during the tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. It must not mutate the
	// game and must tolerate a nil or zero-sized screen.
	Render(dst *core.Screen)

	// State returns the current counters and mode.
	State() core.GameState
}

// PointerGame is implemented by games played with the mouse. The platform
// projects pointer positions into the world size the game reports.
type PointerGame interface {
	Game
	WorldSize() (w, h float64)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
	Input core.InputKind
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	g := f()
	infos[id] = GameInfo{ID: id, Title: g.Title(), Input: g.Input()}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
