package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/mini-arcade/internal/audio"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/mario"
	"github.com/vovakirdan/mini-arcade/internal/games/ninja"
	"github.com/vovakirdan/mini-arcade/internal/platform/tui"
	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/share"
)

var (
	flagConfig     string
	flagDifficulty string
)

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// configureGame passes --config and --difficulty to the selected game.
func configureGame(gameID string) {
	switch gameID {
	case "mario":
		mario.SetConfigPath(flagConfig)
		mario.SetDifficultyPreset(flagDifficulty)
	case "ninja":
		ninja.SetConfigPath(flagConfig)
		ninja.SetDifficultyPreset(flagDifficulty)
	}
}

// playSession runs one game with its own chime, opened for the session
// and closed when it ends.
func playSession(game registry.Game, cfg core.RuntimeConfig) error {
	chime := audio.Open(flagMute, os.Stderr, logger)
	defer func() {
		if err := chime.Close(); err != nil {
			logger.Warn("closing audio", "err", err)
		}
	}()

	return tui.Run(game, cfg, tui.Options{
		Chime:    chime,
		Sharer:   share.NewClipboardSharer(os.Stderr, share.DetectMultiplexer(os.Getenv)),
		ShareURL: flagShareURL,
		Logger:   logger,
	})
}
