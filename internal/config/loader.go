package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMario loads the platformer configuration.
// Search order: customPath -> ~/.arcade/configs/mario.yaml -> ./configs/mario.yaml -> embedded default
func LoadMario(customPath string) (MarioConfig, error) {
	cfg, err := load("mario", customPath, DefaultMarioConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadNinja loads the slicing game configuration.
// Search order: customPath -> ~/.arcade/configs/ninja.yaml -> ./configs/ninja.yaml -> embedded default
func LoadNinja(customPath string) (NinjaConfig, error) {
	cfg, err := load("ninja", customPath, DefaultNinjaConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// load resolves a game config. Every YAML document is decoded on top of the
// hard-coded defaults, so partial files only override what they mention.
func load[T any](gameID, customPath string, defaults func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"
	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate rejects platformer configs that cannot produce a playable game.
func (c MarioConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: mario: world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: mario: player size must be positive")
	case c.Physics.GroundHeight < 0 || c.Physics.GroundHeight+c.Player.Height > c.World.Height:
		return fmt.Errorf("config: mario: ground height %v leaves no room for the player", c.Physics.GroundHeight)
	case c.Gameplay.Lives < 1:
		return fmt.Errorf("config: mario: lives must be at least 1, got %d", c.Gameplay.Lives)
	case c.Gameplay.MaxStage < 1:
		return fmt.Errorf("config: mario: max_stage must be at least 1, got %d", c.Gameplay.MaxStage)
	}
	return nil
}

// Validate rejects slicing configs that cannot produce a playable game.
func (c NinjaConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: ninja: world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.Fruit.Size <= 0 || c.Fruit.Size >= c.World.Width:
		return fmt.Errorf("config: ninja: fruit size %v must fit the playfield", c.Fruit.Size)
	case c.Fruit.MinSpeed <= 0 || c.Fruit.MaxSpeed < c.Fruit.MinSpeed:
		return fmt.Errorf("config: ninja: fall speed range [%v, %v] is invalid", c.Fruit.MinSpeed, c.Fruit.MaxSpeed)
	case c.Fruit.SpawnInterval < 1:
		return fmt.Errorf("config: ninja: spawn_interval must be at least 1, got %d", c.Fruit.SpawnInterval)
	}
	return nil
}
