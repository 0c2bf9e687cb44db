package config

import (
	_ "embed"
)

//go:embed defaults/mario.yaml
var defaultMarioYAML []byte

//go:embed defaults/ninja.yaml
var defaultNinjaYAML []byte

// DefaultMarioConfig returns the default platformer configuration.
// The playfield is 800x400 world units.
func DefaultMarioConfig() MarioConfig {
	return MarioConfig{
		World: WorldConfig{
			Width:  800,
			Height: 400,
		},
		Physics: MarioPhysics{
			Gravity:      0.5,
			JumpVelocity: -10,
			MoveSpeed:    3,
			MaxFallSpeed: 12,
			GroundHeight: 50,
		},
		Player: MarioPlayer{
			SpawnX:        50,
			Width:         30,
			Height:        30,
			MoveHoldTicks: 8,
			InvulnTicks:   90,
		},
		Enemies: MarioEnemies{
			Width:         30,
			Height:        30,
			Speed:         2,
			BaseCount:     2,
			Spacing:       220,
			SpawnInterval: 240,
			HeadBand:      10,
			StompBounce:   -6,
		},
		Gameplay: MarioGameplay{
			Lives:      3,
			MaxStage:   3,
			ExitMargin: 50,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 30,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 120,
				MinInterval:       90,
			},
		},
	}
}

// DefaultNinjaConfig returns the default slicing game configuration.
func DefaultNinjaConfig() NinjaConfig {
	return NinjaConfig{
		World: WorldConfig{
			Width:  800,
			Height: 400,
		},
		Fruit: NinjaFruit{
			Size:          50,
			MinSpeed:      2,
			MaxSpeed:      5,
			SpawnInterval: 60,
			MissMargin:    10,
		},
		Physics: NinjaPhysics{
			Gravity:      0,
			MaxFallSpeed: 9,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.8,
				IntervalReduction: 30,
				MinInterval:       25,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "mario":
		return defaultMarioYAML
	case "ninja":
		return defaultNinjaYAML
	default:
		return nil
	}
}
