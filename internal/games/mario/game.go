// Package mario implements a side-scrolling platformer. The player walks
// right towards an exit flag, stomping enemies that walk the other way.
// Reaching the flag on the final stage wins the game.
package mario

import (
	"fmt"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	EnemyChar  = '▆'
	GroundChar = '▓'
	GrassChar  = '▀'
	PoleChar   = '│'
	FlagChar   = '▶'
)

// Game implements the platformer logic.
type Game struct {
	session    core.Session
	player     Player
	enemies    *EnemyManager
	paused     bool
	runtime    core.RuntimeConfig
	cfg        config.MarioConfig
	override   *config.MarioConfig // Set by NewWithConfig; skips file loading
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

// New creates a new platformer instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a platformer that always uses cfg instead of
// loading configuration from disk.
func NewWithConfig(cfg config.MarioConfig) *Game {
	return &Game{override: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "mario"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Super Mario Mini"
}

// Input reports that the platformer is played with the keyboard.
func (g *Game) Input() core.InputKind {
	return core.InputButtons
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	var cfg config.MarioConfig
	if g.override != nil {
		cfg = *g.override
	} else {
		loaded, err := config.LoadMario(configPath)
		if err != nil {
			loaded = config.DefaultMarioConfig()
		}
		cfg = loaded
	}
	cfg.Difficulty.ApplyPreset(difficultyPreset)
	g.cfg = cfg

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.session.Restart(cfg.Gameplay.Lives)
	g.player = newPlayer(&g.cfg)
	g.paused = false
	g.tickCount = 0

	if g.enemies == nil {
		g.enemies = NewEnemyManager(runtime.Seed, &g.cfg, g.difficulty)
	} else {
		g.enemies.UpdateConfig(&g.cfg, g.difficulty)
		g.enemies.Reset(runtime.Seed)
	}
	g.enemies.StartStage(g.session.Stage())
}

// Step advances the game by one tick.
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

	g.player.applyInput(in, &g.cfg)
	prevBottom := g.player.Box().Bottom()
	g.player.integrate(&g.cfg)

	score := g.session.Score()
	g.enemies.Advance(score, g.tickCount)
	events = append(events, g.resolveCollisions(prevBottom)...)
	g.enemies.Prune()
	g.enemies.Spawn(g.session.Score(), g.tickCount)

	// Running out of lives wins over reaching the flag on the same tick.
	if g.session.Lives() == 0 {
		g.session.Lose()
		events = append(events, core.Event{Kind: core.EventGameOver})
		return core.StepResult{State: g.State(), Events: events}
	}

	if g.player.Box().Right() >= g.exitX() {
		events = append(events, g.clearStage())
	}

	return core.StepResult{State: g.State(), Events: events}
}

// resolveCollisions tests the player against every enemy. A fall onto an
// enemy's head band removes it; any other overlap costs a life and ends
// the check for this tick. Every enemy is tested against the player as it
// was before any collision this tick, and the stomp bounce is applied last.
func (g *Game) resolveCollisions(prevBottom float64) []core.Event {
	var events []core.Event
	stomped := 0
	hit := false

	pb := g.player.Box()
	falling := g.player.Vel.Y >= 0

	enemies := g.enemies.Enemies()
	for i := range enemies {
		e := &enemies[i]
		if e.Removed {
			continue
		}
		eb := e.Box()

		if falling && g.isStomp(pb, eb, prevBottom) {
			e.Removed = true
			stomped++
			g.session.AddScore(1)
			continue
		}

		if pb.Intersects(eb) && !g.player.Invulnerable() {
			g.session.LoseLife()
			g.player.respawn(&g.cfg)
			g.player.invulnTicks = g.cfg.Player.InvulnTicks
			events = append(events, core.Event{Kind: core.EventHit, Count: 1})
			hit = true
			break
		}
	}

	// A respawned player keeps its spawn velocity
	if stomped > 0 && !hit {
		g.player.Vel.Y = g.cfg.Enemies.StompBounce
		g.player.Grounded = false
	}
	if stomped > 0 {
		events = append([]core.Event{{Kind: core.EventStomp, Count: stomped}}, events...)
	}
	return events
}

// clearStage handles the player reaching the exit threshold.
func (g *Game) clearStage() core.Event {
	cleared := g.session.Stage()
	if cleared >= g.cfg.Gameplay.MaxStage {
		g.session.Win()
		return core.Event{Kind: core.EventVictory, Count: cleared}
	}

	g.session.AdvanceStage()
	g.player.respawn(&g.cfg)
	g.enemies.StartStage(g.session.Stage())
	return core.Event{Kind: core.EventStageClear, Count: cleared}
}

// exitX returns the world x the player's right edge must reach to clear a stage.
func (g *Game) exitX() float64 {
	return g.cfg.World.Width - g.cfg.Gameplay.ExitMargin
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

	g.drawGround(dst, vp)
	g.drawExit(dst, vp)

	for _, e := range g.enemies.Enemies() {
		if e.Removed {
			continue
		}
		if r, ok := vp.BoxToRect(e.Box()); ok {
			dst.FillRect(r, EnemyChar, core.ColorBrown)
		}
	}

	// Blink while invulnerable
	if !g.player.Invulnerable() || (g.tickCount/4)%2 == 0 {
		if r, ok := vp.BoxToRect(g.player.Box()); ok {
			dst.FillRect(r, PlayerChar, core.ColorRed)
		}
	}

	hud := fmt.Sprintf("Stage %d  Score: %d  Lives: %d", g.session.Stage(), g.session.Score(), g.session.Lives())
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ")
	}
}

// drawGround fills the strip below the ground line.
func (g *Game) drawGround(dst *core.Screen, vp core.Viewport) {
	top := vp.RowOf(groundY(&g.cfg))
	dst.DrawHLine(0, top, dst.Width(), GrassChar, core.ColorGreen)
	for y := top + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundChar, core.ColorBrown)
	}
}

// drawExit draws the flag pole at the exit threshold.
func (g *Game) drawExit(dst *core.Screen, vp core.Viewport) {
	x := vp.ColOf(g.exitX())
	ground := vp.RowOf(groundY(&g.cfg))
	top := vp.RowOf(groundY(&g.cfg) - g.cfg.Player.Height*3)
	dst.DrawVLine(x, top, ground-top, PoleChar, core.ColorWhite)
	dst.SetColored(x+1, top, FlagChar, core.ColorGreen)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.session.State(g.paused)
}

func init() {
	registry.Register("mario", func() registry.Game {
		return New()
	})
}
