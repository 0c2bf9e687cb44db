package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls (mario):
  Left/Right, A/D  - Walk
  Space/Up/W       - Jump

Controls (ninja):
  Click            - Slice the fruit under the pointer
  Drag             - Slice every fruit along the stroke

Common:
  P/Esc            - Pause
  R                - Restart / Play again (after the game ends)
  S                - Share your score (after the game ends)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play mario
  arcade play ninja --difficulty hard
  arcade play mario --config ./my-mario.yaml
  arcade play ninja --mute --share-url https://example.com/arcade`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}
	if err := checkDifficulty(flagDifficulty); err != nil {
		return err
	}

	configureGame(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	cfg := runtimeConfig()
	logger.Info("starting game", "game", gameID, "difficulty", flagDifficulty, "config", flagConfig)
	return playSession(game, cfg)
}

// checkDifficulty rejects preset names the games would silently ignore.
func checkDifficulty(preset string) error {
	if preset != "" && config.ParsePreset(preset) == "" {
		return fmt.Errorf("unknown difficulty %q (expected easy, normal, hard or fixed)", preset)
	}
	return nil
}
