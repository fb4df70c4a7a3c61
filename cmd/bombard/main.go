package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroids/internal/bombard"
	"github.com/tomz197/asteroids/internal/config"
	"github.com/tomz197/asteroids/internal/logging"
)

func main() {
	cfg, err := config.LoadBombard()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	logger, closeLog, err := openLogger(cfg.Logging)
	if err != nil {
		config.Exitf("logging: %v", err)
	}
	defer closeLog()

	rng := rand.New(rand.NewSource(config.Seed(cfg.Seed)))
	ships, err := bombard.RandomShips(rng, cfg.Ships, cfg.ShipLength, cfg.BoardSize)
	if err != nil {
		config.Exitf("place ships: %v", err)
	}
	logger.Debug("ships placed", "count", len(ships), "board", cfg.BoardSize)

	game, err := bombard.NewGame(cfg.BoardSize, ships,
		bombard.NewPrompt(os.Stdin, os.Stdout),
		bombard.NewTextReporter(os.Stdout),
		bombard.Options{
			Palette: bombard.DefaultPalette(lipgloss.NewRenderer(os.Stdout)),
			Logger:  logger,
		})
	if err != nil {
		config.Exitf("new game: %v", err)
	}

	if err := game.Play(); err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return
		}
		closeLog()
		config.Exitf("game error: %v", err)
	}
}

// openLogger logs to stderr unless a log file is configured.
func openLogger(cfg config.Logging) (*log.Logger, func(), error) {
	if cfg.File == "" {
		logger, err := logging.New(os.Stderr, cfg.Level, "bombard")
		return logger, func() {}, err
	}
	logger, closer, err := logging.Open(cfg.File, cfg.Level, "bombard")
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = closer.Close() }, nil
}
