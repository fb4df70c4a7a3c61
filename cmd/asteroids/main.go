package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/asteroids/internal/config"
	"github.com/tomz197/asteroids/internal/input"
	"github.com/tomz197/asteroids/internal/logging"
	"github.com/tomz197/asteroids/internal/loop"
	"github.com/tomz197/asteroids/internal/screen"
)

func main() {
	count, err := config.AsteroidCount(os.Args[1:])
	if err != nil {
		config.Exitf("usage: asteroids [count]: %v", err)
	}
	cfg, err := config.LoadArcade()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	logger, closer, err := logging.Open(cfg.File, cfg.Level, "asteroids")
	if err != nil {
		config.Exitf("logging: %v", err)
	}
	defer closer.Close()

	res, err := play(cfg, count, logger)
	if err != nil {
		logger.Error("game failed", "err", err)
		closer.Close()
		config.Exitf("game error: %v", err)
	}
	if res.Outcome.Over() {
		fmt.Printf("%s\n%s\n", res.Outcome.Title, res.Outcome.Text)
	}
}

// play runs one game with the terminal in raw mode and restores it before
// returning.
func play(cfg config.Arcade, count int, logger *log.Logger) (loop.Result, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return loop.Result{}, fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	stream := input.StartStream(bufio.NewReader(os.Stdin), cfg.Tick)
	surface, err := screen.New(stream, os.Stdout, screen.Options{})
	if err != nil {
		return loop.Result{}, err
	}
	runner, err := loop.New(surface, loop.Options{
		Asteroids:    count,
		TickInterval: cfg.Tick,
		Rand:         rand.New(rand.NewSource(config.Seed(cfg.Seed))),
		Logger:       logger,
	})
	if err != nil {
		return loop.Result{}, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := runner.Run(ctx)
	if errors.Is(err, context.Canceled) {
		surface.EndGame()
		return res, nil
	}
	return res, err
}
