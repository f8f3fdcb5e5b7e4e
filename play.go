package main

import (
	"slidepuzzle/internal/assets"
	"slidepuzzle/internal/collision"
	"slidepuzzle/internal/config"
	"slidepuzzle/internal/game"
	"slidepuzzle/internal/input"
	"slidepuzzle/internal/sfx"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game (default command)",
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(flagConfig)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Log.Level, flagDebug)
	collision.SetLogger(logger.WithPrefix("collision"))

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetWindowSize())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	atlas, err := assets.Load(cfg)
	if err != nil {
		logger.Fatal("failed to load textures", "dir", cfg.Assets.Dir, "err", err)
	}

	sounds, err := sfx.NewBank(cfg.Audio, logger)
	if err != nil {
		logger.Warn("sounds disabled", "err", err)
		sounds = sfx.NewSilentBank(logger)
	}

	g, err := game.NewGame(game.Options{
		Config: cfg,
		Atlas:  atlas,
		Sounds: sounds,
		Logger: logger,
		Rand:   newRand(flagSeed),
	})
	if err != nil {
		return err
	}

	logger.Info("starting", "board", cfg.Board.Size, "seed", flagSeed, "config", flagConfig)
	return ebiten.RunGame(game.NewGameLoop(g, input.NewEbitenSource()))
}
