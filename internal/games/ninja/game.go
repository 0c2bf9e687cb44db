// Package ninja implements a fruit slicing game. Fruit falls from the top
// of the playfield; the player slices it with mouse clicks and drags before
// it reaches the bottom. A single miss ends the game.
package ninja

import (
	"fmt"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

// Visual characters for rendering
const (
	FruitChar    = '●'
	TrailChar    = '·'
	MissLineChar = '┄'
)

// trailTicks is how long the last gesture stays visible.
const trailTicks = 6

// Game implements the slicing game logic.
type Game struct {
	session    core.Session
	fruit      *FruitManager
	trail      []core.Slice // Gestures from the most recent slicing tick
	trailAge   int
	paused     bool
	runtime    core.RuntimeConfig
	cfg        config.NinjaConfig
	override   *config.NinjaConfig
	difficulty *config.DifficultyManager
	tickCount  int
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new slicing game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a slicing game that always uses cfg instead of
// loading configuration from disk.
func NewWithConfig(cfg config.NinjaConfig) *Game {
	return &Game{override: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "ninja"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Fruit Ninja Mini"
}

// Input reports that the slicing game is played with the mouse.
func (g *Game) Input() core.InputKind {
	return core.InputPointer
}

// WorldSize returns the playfield size pointer input is projected into.
// Before the first Reset it reports the default playfield.
func (g *Game) WorldSize() (w, h float64) {
	if g.cfg.World.Width <= 0 || g.cfg.World.Height <= 0 {
		def := config.DefaultNinjaConfig().World
		return def.Width, def.Height
	}
	return g.cfg.World.Width, g.cfg.World.Height
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	var cfg config.NinjaConfig
	if g.override != nil {
		cfg = *g.override
	} else {
		loaded, err := config.LoadNinja(configPath)
		if err != nil {
			loaded = config.DefaultNinjaConfig()
		}
		cfg = loaded
	}
	cfg.Difficulty.ApplyPreset(difficultyPreset)
	g.cfg = cfg

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.session.Restart(0)
	g.trail = g.trail[:0]
	g.trailAge = 0
	g.paused = false
	g.tickCount = 0

	if g.fruit == nil {
		g.fruit = NewFruitManager(runtime.Seed, &g.cfg, g.difficulty)
	} else {
		g.fruit.UpdateConfig(&g.cfg, g.difficulty)
		g.fruit.Reset(runtime.Seed)
	}
}

// Step advances the game by one tick. Gestures are resolved against the
// fruit positions drawn on the previous frame, before anything moves.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.session.Playing() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	var events []core.Event

	g.fruit.PruneSliced()

	sliced := 0
	for _, s := range in.Slices {
		sliced += g.fruit.Slice(s)
	}
	if sliced > 0 {
		g.session.AddScore(sliced)
		events = append(events, core.Event{Kind: core.EventSlice, Count: sliced})
	}
	g.updateTrail(in.Slices)

	if g.fruit.Advance() {
		g.session.Lose()
		events = append(events, core.Event{Kind: core.EventGameOver})
		return core.StepResult{State: g.State(), Events: events}
	}

	g.fruit.Spawn(g.session.Score(), g.tickCount)

	return core.StepResult{State: g.State(), Events: events}
}

// updateTrail keeps the latest gestures around for a few ticks so they can
// be drawn.
func (g *Game) updateTrail(slices []core.Slice) {
	if len(slices) > 0 {
		g.trail = append(g.trail[:0], slices...)
		g.trailAge = 0
		return
	}
	g.trailAge++
	if g.trailAge >= trailTicks {
		g.trail = g.trail[:0]
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if dst.Empty() {
		return
	}
	dst.Clear()

	vp := core.NewViewport(g.cfg.World.Width, g.cfg.World.Height, dst.Width(), dst.Height())
	if !vp.Valid() {
		return
	}

	missRow := vp.RowOf(g.fruit.MissLine())
	dst.DrawHLine(0, missRow, dst.Width(), MissLineChar, core.ColorGray)

	for _, f := range g.fruit.Fruit() {
		if f.Sliced {
			continue
		}
		if r, ok := vp.BoxToRect(f.Box()); ok {
			dst.FillRect(r, FruitChar, varietyColors[f.Variety])
		}
	}

	for _, s := range g.trail {
		g.drawSlice(dst, vp, s)
	}

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.session.Score()), core.ColorBrightWhite)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ")
	}
}

// drawSlice marks the cells a gesture passed through.
func (g *Game) drawSlice(dst *core.Screen, vp core.Viewport, s core.Slice) {
	if s.Kind == core.SliceClick {
		if x, y, ok := vp.ToCell(s.From); ok {
			dst.SetColored(x, y, '✕', core.ColorBrightWhite)
		}
		return
	}

	x0, y0, ok0 := vp.ToCell(s.From)
	x1, y1, ok1 := vp.ToCell(s.To)
	if !ok0 || !ok1 {
		return
	}
	steps := core.Max(core.Abs(x1-x0), core.Abs(y1-y0))
	if steps == 0 {
		dst.SetColored(x0, y0, TrailChar, core.ColorBrightWhite)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + (x1-x0)*i/steps
		y := y0 + (y1-y0)*i/steps
		dst.SetColored(x, y, TrailChar, core.ColorBrightWhite)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.session.State(g.paused)
}

func init() {
	registry.Register("ninja", func() registry.Game {
		return New()
	})
}
