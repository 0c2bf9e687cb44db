package mario

import (
	"strings"
	"testing"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  20,
	TickRate: 60,
	Seed:     42,
}

// newTestGame builds a game from the default config after applying mutate.
func newTestGame(t *testing.T, mutate func(*config.MarioConfig)) *Game {
	t.Helper()
	cfg := config.DefaultMarioConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := NewWithConfig(cfg)
	g.Reset(testRuntime)
	return g
}

// stillEnemies freezes enemies in place and disables periodic spawns.
func stillEnemies(cfg *config.MarioConfig) {
	cfg.Enemies.Speed = 0
	cfg.Enemies.SpawnInterval = 0
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestResetOpensStageOne(t *testing.T) {
	g := newTestGame(t, nil)

	st := g.State()
	if st.Stage != 1 || st.Lives != 3 || st.Score != 0 || st.Mode != core.ModePlaying {
		t.Errorf("initial state = %+v", st)
	}
	if g.player.Pos.X != 50 || !g.player.Grounded {
		t.Errorf("player should start grounded at x=50, got %+v", g.player)
	}
	if got := g.enemies.Active(); got != 2 {
		t.Errorf("stage 1 should open with 2 enemies, got %d", got)
	}
}

func TestReachingExitAdvancesStage(t *testing.T) {
	g := newTestGame(t, stillEnemies)
	g.enemies.enemies = g.enemies.enemies[:0]
	g.player.Pos.X = 770

	res := g.Step(press(core.ActionRight))

	if res.State.Stage != 2 {
		t.Fatalf("stage = %d, expected 2", res.State.Stage)
	}
	if !res.Has(core.EventStageClear) {
		t.Error("expected a stage clear event")
	}
	if g.player.Pos.X != 50 {
		t.Errorf("player should respawn at x=50, got %v", g.player.Pos.X)
	}
	if got := g.enemies.Active(); got != 3 {
		t.Errorf("stage 2 should open with 3 enemies, got %d", got)
	}
}

func TestExitOnFinalStageIsVictory(t *testing.T) {
	g := newTestGame(t, func(cfg *config.MarioConfig) {
		stillEnemies(cfg)
		cfg.Gameplay.MaxStage = 1
	})
	g.enemies.enemies = g.enemies.enemies[:0]
	g.player.Pos.X = 760

	res := g.Step(press(core.ActionRight))
	if res.State.Mode != core.ModeVictory {
		t.Fatalf("mode = %v, expected victory", res.State.Mode)
	}
	if !res.Has(core.EventVictory) {
		t.Error("expected a victory event")
	}

	// Terminal modes ignore further input
	before := g.player.Pos
	g.Step(press(core.ActionLeft))
	if g.player.Pos != before || g.State().Mode != core.ModeVictory {
		t.Error("steps after victory should not change state")
	}
}

func TestStompRemovesEnemy(t *testing.T) {
	g := newTestGame(t, stillEnemies)
	g.enemies.enemies = g.enemies.enemies[:0]
	g.enemies.add(300) // top edge at y=320

	g.player.Pos = core.Vec2{X: 300, Y: 288}
	g.player.Vel = core.Vec2{Y: 4}
	g.player.Grounded = false

	res := g.Step(core.NewInputFrame())

	if res.State.Score != 1 {
		t.Errorf("score = %d, expected 1", res.State.Score)
	}
	if res.State.Lives != 3 {
		t.Errorf("stomp should not cost a life, lives = %d", res.State.Lives)
	}
	if !res.Has(core.EventStomp) {
		t.Error("expected a stomp event")
	}
	if len(g.enemies.Enemies()) != 0 {
		t.Errorf("stomped enemy should be pruned, %d left", len(g.enemies.Enemies()))
	}
	if g.player.Vel.Y != g.cfg.Enemies.StompBounce {
		t.Errorf("player should bounce with %v, got %v", g.cfg.Enemies.StompBounce, g.player.Vel.Y)
	}
}

func TestLandingOnTwoEnemiesStompsBoth(t *testing.T) {
	g := newTestGame(t, stillEnemies)
	g.enemies.enemies = g.enemies.enemies[:0]
	g.enemies.add(300)
	g.enemies.add(320)

	// Player spans x 305..335, over both heads
	g.player.Pos = core.Vec2{X: 305, Y: 288}
	g.player.Vel = core.Vec2{Y: 4}
	g.player.Grounded = false

	res := g.Step(core.NewInputFrame())

	if res.State.Score != 2 {
		t.Errorf("score = %d, expected 2", res.State.Score)
	}
	if res.State.Lives != 3 {
		t.Errorf("lives = %d, expected 3", res.State.Lives)
	}
	if res.Has(core.EventHit) {
		t.Error("landing on two heads should not count as a hit")
	}
	if len(res.Events) == 0 || res.Events[0].Kind != core.EventStomp || res.Events[0].Count != 2 {
		t.Errorf("events = %v, expected one stomp event with count 2", res.Events)
	}
	if g.player.Vel.Y != g.cfg.Enemies.StompBounce {
		t.Errorf("player should bounce with %v, got %v", g.cfg.Enemies.StompBounce, g.player.Vel.Y)
	}
}

func TestFastFallStillStomps(t *testing.T) {
	g := newTestGame(t, stillEnemies)
	g.enemies.enemies = g.enemies.enemies[:0]
	g.enemies.add(300)

	// Bottom edge goes from 325 to 337 in one tick, below the 10 unit band
	g.player.Pos = core.Vec2{X: 300, Y: 295}
	g.player.Vel = core.Vec2{Y: 12}
	g.player.Grounded = false

	if res := g.Step(core.NewInputFrame()); res.State.Score != 1 {
		t.Errorf("score = %d, expected the stomp to register", res.State.Score)
	}
}

func TestSideHitCostsLife(t *testing.T) {
	g := newTestGame(t, stillEnemies)
	g.enemies.enemies = g.enemies.enemies[:0]
	g.enemies.add(75) // overlaps the standing player

	res := g.Step(core.NewInputFrame())

	if res.State.Lives != 2 {
		t.Errorf("lives = %d, expected 2", res.State.Lives)
	}
	if res.State.Score != 0 {
		t.Errorf("side hit should not score, got %d", res.State.Score)
	}
	if !res.Has(core.EventHit) {
		t.Error("expected a hit event")
	}
	if g.player.Pos.X != 50 || g.player.Vel != (core.Vec2{}) {
		t.Errorf("player should be back at spawn with no velocity, got %+v", g.player)
	}

	// Still overlapping, but protected after the respawn
	if res := g.Step(core.NewInputFrame()); res.State.Lives != 2 {
		t.Errorf("lives = %d right after respawn, expected 2", res.State.Lives)
	}
}

func TestSideHitStopsCheckingEnemies(t *testing.T) {
	g := newTestGame(t, stillEnemies)
	g.enemies.enemies = g.enemies.enemies[:0]
	g.enemies.add(60)
	g.enemies.add(70)

	if res := g.Step(core.NewInputFrame()); res.State.Lives != 2 {
		t.Errorf("two overlapping enemies should cost one life, lives = %d", res.State.Lives)
	}
}

func TestLastLifeIsGameOver(t *testing.T) {
	g := newTestGame(t, func(cfg *config.MarioConfig) {
		stillEnemies(cfg)
		cfg.Gameplay.Lives = 1
	})
	g.enemies.enemies = g.enemies.enemies[:0]
	g.enemies.add(75)

	res := g.Step(core.NewInputFrame())
	if res.State.Mode != core.ModeGameOver {
		t.Fatalf("mode = %v, expected game over", res.State.Mode)
	}
	if res.State.Lives != 0 {
		t.Errorf("lives = %d, expected 0", res.State.Lives)
	}
	if !res.Has(core.EventGameOver) {
		t.Error("expected a game over event")
	}

	// Restart brings the session back
	g.Reset(testRuntime)
	if st := g.State(); st.Mode != core.ModePlaying || st.Lives != 1 || st.Stage != 1 {
		t.Errorf("after reset state = %+v", st)
	}
}

func TestMoveHoldWindow(t *testing.T) {
	g := newTestGame(t, stillEnemies)
	g.enemies.enemies = g.enemies.enemies[:0]

	g.Step(press(core.ActionRight))
	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
	}

	// One press moves move_speed per tick for move_hold_ticks ticks
	want := 50 + g.cfg.Physics.MoveSpeed*float64(g.cfg.Player.MoveHoldTicks)
	if g.player.Pos.X != want {
		t.Errorf("x = %v, expected %v", g.player.Pos.X, want)
	}
	if g.player.Vel.X != 0 {
		t.Errorf("horizontal velocity should settle to 0, got %v", g.player.Vel.X)
	}

	// Opposite directions cancel out
	g.Step(press(core.ActionLeft, core.ActionRight))
	if g.player.Pos.X != want {
		t.Errorf("left+right should not move, x = %v", g.player.Pos.X)
	}
}

func TestJumpAndLand(t *testing.T) {
	g := newTestGame(t, stillEnemies)
	g.enemies.enemies = g.enemies.enemies[:0]
	startY := g.player.Pos.Y

	g.Step(press(core.ActionJump))
	if g.player.Pos.Y >= startY || g.player.Grounded {
		t.Fatalf("jump should lift the player, y = %v", g.player.Pos.Y)
	}

	// No double jump
	vel := g.player.Vel.Y
	g.Step(press(core.ActionJump))
	if g.player.Vel.Y < vel {
		t.Error("jumping in mid-air should not add upward velocity")
	}

	for i := 0; i < 100 && !g.player.Grounded; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.player.Grounded || g.player.Pos.Y != startY {
		t.Errorf("player should land back at y=%v, got %v", startY, g.player.Pos.Y)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, nil)

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause action should pause")
	}
	g.Step(press(core.ActionRight))
	if g.tickCount != 0 || g.player.Pos.X != 50 {
		t.Error("paused game should not advance")
	}
	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause action should resume")
	}
}

func TestDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 800)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%3 == 0 {
			inputs[i].Set(core.ActionRight)
		}
		if i%25 == 0 {
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() (*Game, core.GameState) {
		g := newTestGame(t, nil)
		var st core.GameState
		for _, in := range inputs {
			st = g.Step(in).State
		}
		return g, st
	}

	g1, s1 := run()
	g2, s2 := run()
	if s1 != s2 {
		t.Errorf("states differ: %+v vs %+v", s1, s2)
	}
	if g1.player.Pos != g2.player.Pos || len(g1.enemies.Enemies()) != len(g2.enemies.Enemies()) {
		t.Error("world state differs between identical runs")
	}
}

func TestCountersStayValid(t *testing.T) {
	g := newTestGame(t, nil)
	lastStage := 1

	for i := 0; i < 3000; i++ {
		in := core.NewInputFrame()
		switch {
		case i%7 == 0:
			in.Set(core.ActionJump)
		case i%2 == 0:
			in.Set(core.ActionRight)
		case i%11 == 0:
			in.Set(core.ActionLeft)
		}
		st := g.Step(in).State

		if st.Score < 0 || st.Lives < 0 {
			t.Fatalf("tick %d: negative counter %+v", i, st)
		}
		if st.Stage < lastStage || st.Stage > g.cfg.Gameplay.MaxStage {
			t.Fatalf("tick %d: stage went from %d to %d", i, lastStage, st.Stage)
		}
		if st.Mode == core.ModeVictory && st.Lives == 0 {
			t.Fatalf("tick %d: victory with no lives left", i)
		}
		lastStage = st.Stage
		if st.Over() {
			break
		}
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, stillEnemies)

	// Nil and zero-sized screens are ignored
	g.Render(nil)
	g.Render(core.NewScreen(0, 0))

	scr := core.NewScreen(80, 20)
	g.Render(scr)
	if !strings.Contains(scr.Row(0), "Stage 1  Score: 0  Lives: 3") {
		t.Errorf("HUD row = %q", scr.Row(0))
	}
	// Player at x=50..80, y=320..350 covers cells 5..7 on rows 16..17
	if c := scr.GetCell(6, 16); c.Rune != PlayerChar {
		t.Errorf("player cell = %q, expected %q", c.Rune, PlayerChar)
	}
}

func TestRemovedEnemiesAreNotDrawn(t *testing.T) {
	g := newTestGame(t, stillEnemies)
	g.enemies.enemies = g.enemies.enemies[:0]
	g.enemies.add(400) // cells 40..42, rows 16..17

	scr := core.NewScreen(80, 20)
	g.Render(scr)
	if scr.GetCell(41, 16).Rune != EnemyChar {
		t.Fatal("live enemy should be drawn")
	}

	g.enemies.enemies[0].Removed = true
	g.Render(scr)
	if scr.GetCell(41, 16).Rune == EnemyChar {
		t.Error("removed enemy should not be drawn")
	}
}
