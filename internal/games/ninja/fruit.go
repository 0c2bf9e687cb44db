package ninja

import (
	"math/rand"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Variety picks how a fruit is drawn. It has no effect on gameplay.
type Variety int

const (
	Apple Variety = iota
	Orange
	Lime
	Grape
	Banana
	varietyCount
)

// varietyColors maps each variety to its draw color.
var varietyColors = [varietyCount]core.Color{
	Apple:  core.ColorBrightRed,
	Orange: core.ColorOrange,
	Lime:   core.ColorBrightGreen,
	Grape:  core.ColorMagenta,
	Banana: core.ColorBrightYellow,
}

// Fruit falls from the top of the playfield until it is sliced or missed.
type Fruit struct {
	Center  core.Vec2
	Size    float64
	Speed   float64 // Fall speed in world units per tick
	Variety Variety
	Sliced  bool // Hit this tick; pruned before the next one
}

// Box returns the fruit's bounding box.
func (f Fruit) Box() core.Box {
	return core.BoxAround(f.Center, f.Size)
}

// hitBy reports whether a single gesture slices this fruit.
// A click must land inside the bounding box; a drag must pass within half
// the fruit size of its center. Zero-length drags never hit.
func (f Fruit) hitBy(s core.Slice) bool {
	switch s.Kind {
	case core.SliceClick:
		return f.Box().Contains(s.From)
	case core.SliceDrag:
		dist, ok := core.SegmentPointDistance(s.From, s.To, f.Center)
		return ok && dist < f.Size/2
	default:
		return false
	}
}

// FruitManager handles spawning, falling, slicing and removal of fruit.
type FruitManager struct {
	fruit      []Fruit
	rng        *rand.Rand
	cfg        *config.NinjaConfig
	difficulty *config.DifficultyManager
	spawnTimer int // Ticks until the next fruit drops in
}

// NewFruitManager creates a new fruit manager with the given RNG seed.
func NewFruitManager(seed int64, cfg *config.NinjaConfig, diff *config.DifficultyManager) *FruitManager {
	fm := &FruitManager{
		fruit:      make([]Fruit, 0, 16),
		cfg:        cfg,
		difficulty: diff,
	}
	fm.Reset(seed)
	return fm
}

// UpdateConfig updates the configuration.
func (fm *FruitManager) UpdateConfig(cfg *config.NinjaConfig, diff *config.DifficultyManager) {
	fm.cfg = cfg
	fm.difficulty = diff
}

// Reset clears all fruit and resets the RNG.
func (fm *FruitManager) Reset(seed int64) {
	fm.fruit = fm.fruit[:0]
	fm.rng = rand.New(rand.NewSource(seed))
	fm.spawnTimer = fm.cfg.Fruit.SpawnInterval
}

// PruneSliced drops fruit sliced during the previous tick.
func (fm *FruitManager) PruneSliced() {
	valid := fm.fruit[:0]
	for _, f := range fm.fruit {
		if !f.Sliced {
			valid = append(valid, f)
		}
	}
	fm.fruit = valid
}

// Slice applies one gesture and returns how many fruit it newly sliced.
func (fm *FruitManager) Slice(s core.Slice) int {
	n := 0
	for i := range fm.fruit {
		f := &fm.fruit[i]
		if f.Sliced || !f.hitBy(s) {
			continue
		}
		f.Sliced = true
		n++
	}
	return n
}

// Advance moves every unsliced fruit down by its fall speed and drops fruit
// that left the bottom of the playfield. With gravity the fall speed grows
// every tick up to the configured cap. It reports whether an unsliced fruit
// reached the miss line, counting fruit that fell out in the same move.
func (fm *FruitManager) Advance() (missed bool) {
	gravity := fm.cfg.Physics.Gravity
	maxFall := fm.cfg.Physics.MaxFallSpeed
	line := fm.MissLine()

	valid := fm.fruit[:0]
	for _, f := range fm.fruit {
		if !f.Sliced {
			if gravity > 0 {
				f.Speed += gravity
				if maxFall > 0 && f.Speed > maxFall {
					f.Speed = maxFall
				}
			}
			f.Center.Y += f.Speed
			if f.Box().Bottom() >= line {
				missed = true
			}
		}
		if f.Box().Y >= fm.cfg.World.Height {
			continue
		}
		valid = append(valid, f)
	}
	fm.fruit = valid
	return missed
}

// MissLine returns the world y an unsliced fruit must not reach.
func (fm *FruitManager) MissLine() float64 {
	return fm.cfg.World.Height - fm.cfg.Fruit.MissMargin
}

// Spawn counts down the spawn timer and drops a new fruit in at a random
// column when it expires. Returns true if a fruit was added.
func (fm *FruitManager) Spawn(score, ticks int) bool {
	fm.spawnTimer--
	if fm.spawnTimer > 0 {
		return false
	}

	size := fm.cfg.Fruit.Size
	x := size/2 + fm.rng.Float64()*(fm.cfg.World.Width-size)
	base := fm.cfg.Fruit.MinSpeed + fm.rng.Float64()*(fm.cfg.Fruit.MaxSpeed-fm.cfg.Fruit.MinSpeed)

	fm.fruit = append(fm.fruit, Fruit{
		Center:  core.Vec2{X: x, Y: -size / 2},
		Size:    size,
		Speed:   fm.difficulty.Speed(base, score, ticks),
		Variety: Variety(fm.rng.Intn(int(varietyCount))),
	})

	fm.spawnTimer = fm.difficulty.Interval(fm.cfg.Fruit.SpawnInterval, score, ticks)
	return true
}

// Fruit returns the current list of fruit, including ones sliced this tick.
func (fm *FruitManager) Fruit() []Fruit {
	return fm.fruit
}

// Active returns the number of fruit still in play.
func (fm *FruitManager) Active() int {
	n := 0
	for _, f := range fm.fruit {
		if !f.Sliced {
			n++
		}
	}
	return n
}
