package mario

import (
	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Player is the controllable character. Pos is the top-left corner in world units.
type Player struct {
	Pos      core.Vec2
	Vel      core.Vec2
	W, H     float64
	Grounded bool
	Facing   int // -1 = left, 1 = right

	moveTicks   int // Ticks left in the current left/right press
	invulnTicks int // Ticks of protection left after a side hit
}

// newPlayer places a player at the spawn point, standing on the ground.
func newPlayer(cfg *config.MarioConfig) Player {
	return Player{
		Pos:      core.Vec2{X: cfg.Player.SpawnX, Y: groundY(cfg) - cfg.Player.Height},
		W:        cfg.Player.Width,
		H:        cfg.Player.Height,
		Grounded: true,
		Facing:   1,
	}
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.NewBox(p.Pos.X, p.Pos.Y, p.W, p.H)
}

// Invulnerable reports whether side hits are currently ignored.
func (p Player) Invulnerable() bool {
	return p.invulnTicks > 0
}

// groundY returns the world y of the ground line.
func groundY(cfg *config.MarioConfig) float64 {
	return cfg.World.Height - cfg.Physics.GroundHeight
}

// applyInput turns button presses into velocity.
// Terminals report presses but not releases, so a press keeps the player
// moving for a short window that key auto-repeat refreshes.
func (p *Player) applyInput(in core.InputFrame, cfg *config.MarioConfig) {
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case left && right:
		p.Vel.X = 0
		p.moveTicks = 0
	case left:
		p.Vel.X = -cfg.Physics.MoveSpeed
		p.moveTicks = cfg.Player.MoveHoldTicks
		p.Facing = -1
	case right:
		p.Vel.X = cfg.Physics.MoveSpeed
		p.moveTicks = cfg.Player.MoveHoldTicks
		p.Facing = 1
	}

	if in.Has(core.ActionJump) && p.Grounded {
		p.Vel.Y = cfg.Physics.JumpVelocity
		p.Grounded = false
	}
}

// integrate advances the player by one tick: gravity, velocity, playfield
// bounds and ground contact.
func (p *Player) integrate(cfg *config.MarioConfig) {
	if !p.Grounded {
		p.Vel.Y += cfg.Physics.Gravity
		if cfg.Physics.MaxFallSpeed > 0 && p.Vel.Y > cfg.Physics.MaxFallSpeed {
			p.Vel.Y = cfg.Physics.MaxFallSpeed
		}
	}

	p.Pos = p.Pos.Add(p.Vel)
	p.Pos.X = core.ClampF(p.Pos.X, 0, cfg.World.Width-p.W)

	ground := groundY(cfg)
	if p.Pos.Y+p.H >= ground {
		p.Pos.Y = ground - p.H
		p.Vel.Y = 0
		p.Grounded = true
	}

	if p.moveTicks > 0 {
		p.moveTicks--
		if p.moveTicks == 0 {
			p.Vel.X = 0
		}
	}
	if p.invulnTicks > 0 {
		p.invulnTicks--
	}
}

// respawn puts the player back at the spawn point with no velocity.
func (p *Player) respawn(cfg *config.MarioConfig) {
	*p = newPlayer(cfg)
}
