// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// WorldConfig is the fixed logical playfield the simulation runs in.
// Rendering scales it to the terminal, so gameplay does not depend on
// terminal size.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// MarioConfig contains all configuration for the platformer.
type MarioConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    MarioPhysics     `yaml:"physics"`
	Player     MarioPlayer      `yaml:"player"`
	Enemies    MarioEnemies     `yaml:"enemies"`
	Gameplay   MarioGameplay    `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MarioPhysics defines physics parameters for the platformer.
type MarioPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"` // Negative = up
	MoveSpeed    float64 `yaml:"move_speed"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	GroundHeight float64 `yaml:"ground_height"` // Height of the ground strip at the bottom
}

// MarioPlayer defines player parameters for the platformer.
type MarioPlayer struct {
	SpawnX        float64 `yaml:"spawn_x"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	MoveHoldTicks int     `yaml:"move_hold_ticks"`    // Ticks a left/right press keeps the player moving
	InvulnTicks   int     `yaml:"invulnerable_ticks"` // Ticks of protection after a side hit
}

// MarioEnemies defines enemy parameters for the platformer.
type MarioEnemies struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	BaseCount     int     `yaml:"base_count"`     // Enemies placed at the start of stage 1
	Spacing       float64 `yaml:"spacing"`        // Horizontal gap between enemies placed at stage start
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between extra enemies; 0 disables
	HeadBand      float64 `yaml:"head_band"`      // Depth of the stompable band at the enemy's top
	StompBounce   float64 `yaml:"stomp_bounce"`   // Vertical velocity after a stomp
}

// MarioGameplay defines session rules for the platformer.
type MarioGameplay struct {
	Lives      int     `yaml:"lives"`
	MaxStage   int     `yaml:"max_stage"`
	ExitMargin float64 `yaml:"exit_margin"` // Exit threshold is world width minus this margin
}

// NinjaConfig contains all configuration for the slicing game.
type NinjaConfig struct {
	World      WorldConfig      `yaml:"world"`
	Fruit      NinjaFruit       `yaml:"fruit"`
	Physics    NinjaPhysics     `yaml:"physics"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// NinjaFruit defines fruit spawning parameters.
type NinjaFruit struct {
	Size          float64 `yaml:"size"`
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between spawns
	MissMargin    float64 `yaml:"miss_margin"`    // Distance above the bottom that counts as a miss
}

// NinjaPhysics defines fall physics for the slicing game.
type NinjaPhysics struct {
	Gravity      float64 `yaml:"gravity"` // 0 = constant fall speed
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // Spawn interval reduction (ticks) at max difficulty
	MinInterval       int     `yaml:"min_interval"`       // Spawn interval never drops below this
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield ""
// which means "use the config's own difficulty section".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies a difficulty section based on a preset.
// An empty preset leaves the section untouched.
func (d *DifficultyConfig) ApplyPreset(preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		d.Enabled = false
	default:
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}
