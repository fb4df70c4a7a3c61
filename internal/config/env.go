// Package config loads runtime configuration from the environment and the
// command line.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"

	loopconfig "github.com/tomz197/asteroids/internal/loop/config"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// maxBoardSize keeps board columns addressable by a single letter.
const maxBoardSize = 26

// Logging is shared by every binary.
type Logging struct {
	Level string `env:"ASTEROIDS_LOG_LEVEL" envDefault:"info"`
	File  string `env:"ASTEROIDS_LOG_FILE"`
}

// Arcade configures the asteroids game.
type Arcade struct {
	Logging
	Tick time.Duration `env:"ASTEROIDS_TICK" envDefault:"30ms"`
	Seed int64         `env:"ASTEROIDS_SEED"` // 0 picks a time based seed
}

// SSH configures the SSH host.
type SSH struct {
	Arcade
	Host        string `env:"SSH_HOST"     envDefault:"::"`
	Port        string `env:"SSH_PORT"     envDefault:"2222"`
	HostKeyPath string `env:"SSH_HOST_KEY" envDefault:"/app/keys/host_key"`
}

// Bombard configures the bombardment game.
type Bombard struct {
	Logging
	BoardSize  int   `env:"BOMBARD_BOARD_SIZE"  envDefault:"5"`
	Ships      int   `env:"BOMBARD_SHIPS"       envDefault:"4"`
	ShipLength int   `env:"BOMBARD_SHIP_LENGTH" envDefault:"2"`
	Seed       int64 `env:"BOMBARD_SEED"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadArcade reads the arcade configuration.
func LoadArcade() (Arcade, error) {
	var cfg Arcade
	if err := ParseEnv(&cfg); err != nil {
		return Arcade{}, err
	}
	return cfg, cfg.validate()
}

func (c Arcade) validate() error {
	if c.Tick <= 0 {
		return fmt.Errorf("%w: ASTEROIDS_TICK must be positive, got %s", ErrInvalid, c.Tick)
	}
	return nil
}

// LoadSSH reads the SSH host configuration.
func LoadSSH() (SSH, error) {
	var cfg SSH
	if err := ParseEnv(&cfg); err != nil {
		return SSH{}, err
	}
	if cfg.Port == "" {
		return SSH{}, fmt.Errorf("%w: SSH_PORT is empty", ErrInvalid)
	}
	return cfg, cfg.Arcade.validate()
}

// LoadBombard reads the bombardment configuration.
func LoadBombard() (Bombard, error) {
	var cfg Bombard
	if err := ParseEnv(&cfg); err != nil {
		return Bombard{}, err
	}
	switch {
	case cfg.BoardSize < 1 || cfg.BoardSize > maxBoardSize:
		return Bombard{}, fmt.Errorf("%w: BOMBARD_BOARD_SIZE must be in 1..%d, got %d", ErrInvalid, maxBoardSize, cfg.BoardSize)
	case cfg.Ships < 1:
		return Bombard{}, fmt.Errorf("%w: BOMBARD_SHIPS must be positive, got %d", ErrInvalid, cfg.Ships)
	case cfg.ShipLength < 1 || cfg.ShipLength > cfg.BoardSize:
		return Bombard{}, fmt.Errorf("%w: BOMBARD_SHIP_LENGTH must be in 1..%d, got %d", ErrInvalid, cfg.BoardSize, cfg.ShipLength)
	}
	return cfg, nil
}

// AsteroidCount parses the optional asteroid count argument. Without one it
// returns the default count.
func AsteroidCount(args []string) (int, error) {
	if len(args) == 0 {
		return loopconfig.DefaultAsteroids, nil
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("%w: expected at most one argument, got %d", ErrInvalid, len(args))
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: asteroid count %q: %w", ErrInvalid, args[0], err)
	}
	if n < 0 || n > loopconfig.MaxAsteroids {
		return 0, fmt.Errorf("%w: asteroid count must be in 0..%d, got %d", ErrInvalid, loopconfig.MaxAsteroids, n)
	}
	return n, nil
}

// Seed returns seed, or a time based seed when it is zero.
func Seed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
