package mario

import (
	"math/rand"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Enemy walks leftward along the ground.
type Enemy struct {
	X, Y    float64 // Top-left corner
	W, H    float64
	Removed bool // Stomped this tick; pruned before the next one
}

// Box returns the collision box for this enemy.
func (e Enemy) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// EnemyManager handles placement, movement, spawning and removal of enemies.
type EnemyManager struct {
	enemies    []Enemy
	rng        *rand.Rand
	cfg        *config.MarioConfig
	difficulty *config.DifficultyManager
	spawnTimer int // Ticks until the next enemy walks in
}

// NewEnemyManager creates a new enemy manager with the given RNG seed.
func NewEnemyManager(seed int64, cfg *config.MarioConfig, diff *config.DifficultyManager) *EnemyManager {
	em := &EnemyManager{
		enemies:    make([]Enemy, 0, 8),
		cfg:        cfg,
		difficulty: diff,
	}
	em.Reset(seed)
	return em
}

// UpdateConfig updates the configuration.
func (em *EnemyManager) UpdateConfig(cfg *config.MarioConfig, diff *config.DifficultyManager) {
	em.cfg = cfg
	em.difficulty = diff
}

// Reset clears all enemies and resets the RNG.
func (em *EnemyManager) Reset(seed int64) {
	em.enemies = em.enemies[:0]
	em.rng = rand.New(rand.NewSource(seed))
	em.spawnTimer = em.cfg.Enemies.SpawnInterval
}

// StartStage replaces all enemies with the opening layout of a stage.
// Stage n opens with base_count+n-1 enemies lined up from the right edge;
// none are placed inside the safe zone around the spawn point.
func (em *EnemyManager) StartStage(stage int) {
	em.enemies = em.enemies[:0]
	em.spawnTimer = em.cfg.Enemies.SpawnInterval

	count := em.cfg.Enemies.BaseCount + stage - 1
	safeZone := em.cfg.Player.SpawnX + em.cfg.Player.Width*4
	x := em.cfg.World.Width - em.cfg.Enemies.Width
	for i := 0; i < count; i++ {
		if x < safeZone {
			break
		}
		em.add(x)
		x -= em.cfg.Enemies.Spacing
	}
}

// add places one enemy on the ground at horizontal position x.
func (em *EnemyManager) add(x float64) {
	em.enemies = append(em.enemies, Enemy{
		X: x,
		Y: groundY(em.cfg) - em.cfg.Enemies.Height,
		W: em.cfg.Enemies.Width,
		H: em.cfg.Enemies.Height,
	})
}

// Advance moves every enemy leftward by the current speed.
func (em *EnemyManager) Advance(score, ticks int) {
	speed := em.difficulty.Speed(em.cfg.Enemies.Speed, score, ticks)
	for i := range em.enemies {
		em.enemies[i].X -= speed
	}
}

// Prune drops stomped enemies and those whose right edge left the playfield.
func (em *EnemyManager) Prune() {
	valid := em.enemies[:0]
	for _, e := range em.enemies {
		if e.Removed || e.X+e.W <= 0 {
			continue
		}
		valid = append(valid, e)
	}
	em.enemies = valid
}

// Spawn counts down the spawn timer and walks a new enemy in from the right
// edge when it expires. Returns true if an enemy was added.
func (em *EnemyManager) Spawn(score, ticks int) bool {
	base := em.cfg.Enemies.SpawnInterval
	if base <= 0 {
		return false
	}

	em.spawnTimer--
	if em.spawnTimer > 0 {
		return false
	}

	em.add(em.cfg.World.Width - em.cfg.Enemies.Width)

	// Next spawn: current interval plus up to a quarter of jitter
	interval := em.difficulty.Interval(base, score, ticks)
	em.spawnTimer = interval + em.rng.Intn(interval/4+1)
	return true
}

// Enemies returns the current list of enemies, including ones removed this tick.
func (em *EnemyManager) Enemies() []Enemy {
	return em.enemies
}

// Active returns the number of enemies still in play.
func (em *EnemyManager) Active() int {
	n := 0
	for _, e := range em.enemies {
		if !e.Removed {
			n++
		}
	}
	return n
}
