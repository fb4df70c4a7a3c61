// Package loop provides the arcade game loop: it owns the ship, asteroids
// and torpedoes, runs one tick at a time and reports terminal states.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroids/internal/loop/config"
	"github.com/tomz197/asteroids/internal/object"
	"github.com/tomz197/asteroids/internal/physics"
)

var (
	// ErrInvalidAsteroidCount is returned for a count outside 0..config.MaxAsteroids.
	ErrInvalidAsteroidCount = errors.New("invalid asteroid count")
	// ErrFieldTooSmall is returned when no asteroid fits away from the ship.
	ErrFieldTooSmall = errors.New("field too small for asteroids")
)

// spawnAttempts bounds the position re-rolls for one asteroid.
const spawnAttempts = 1000

// Options configures a Runner. Zero values select the defaults from
// the config package.
type Options struct {
	Asteroids    int           // Initial asteroid count
	Field        physics.Field // World bounds
	TickInterval time.Duration // Period of the tick timer
	Rand         *rand.Rand    // Source for spawn positions and speeds
	Logger       *log.Logger   // Debug events; discarded when nil
}

// Runner is the arcade orchestrator. It is not safe for concurrent use:
// all state is owned by the goroutine calling Tick or Run.
type Runner struct {
	surface  Surface
	field    physics.Field
	interval time.Duration
	rng      *rand.Rand
	logger   *log.Logger
	ids      object.IDSource

	ship      *object.Ship
	asteroids []*object.Asteroid

	// Torpedoes keyed by id; order keeps launch order for iteration.
	torpedoes map[object.ID]*object.Torpedo
	lifetimes map[object.ID]int
	order     []object.ID

	lives int
	score int
	quit  bool // Quit key seen during the current tick
}

// New creates a game with a ship at a random position and opts.Asteroids
// large asteroids, all registered with the surface.
func New(surface Surface, opts Options) (*Runner, error) {
	if opts.Asteroids < 0 || opts.Asteroids > config.MaxAsteroids {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAsteroidCount, opts.Asteroids)
	}
	field := opts.Field
	if field == (physics.Field{}) {
		field = config.DefaultField
	}
	if err := field.Validate(); err != nil {
		return nil, fmt.Errorf("invalid field: %w", err)
	}
	interval := opts.TickInterval
	if interval <= 0 {
		interval = config.DefaultTickInterval
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	r := &Runner{
		surface:   surface,
		field:     field,
		interval:  interval,
		rng:       rng,
		logger:    logger,
		torpedoes: make(map[object.ID]*object.Torpedo),
		lifetimes: make(map[object.ID]int),
		lives:     config.InitialLives,
		score:     config.InitialScore,
	}

	r.ship = object.NewShip(r.randomPosition())
	for i := 0; i < opts.Asteroids; i++ {
		if err := r.spawnAsteroid(); err != nil {
			return nil, err
		}
	}

	logger.Debug("game created", "asteroids", opts.Asteroids,
		"ship_x", r.ship.Pos.X, "ship_y", r.ship.Pos.Y)
	return r, nil
}

// randomPosition returns a uniformly random point inside the field.
func (r *Runner) randomPosition() physics.Vector {
	return physics.Vector{
		X: r.field.X.Min + r.rng.Float64()*r.field.Width(),
		Y: r.field.Y.Min + r.rng.Float64()*r.field.Height(),
	}
}

// randomAsteroidSpeed returns a velocity with integer components in
// [MinAsteroidSpeed, MaxAsteroidSpeed], so it is never zero.
func (r *Runner) randomAsteroidSpeed() physics.Vector {
	span := config.MaxAsteroidSpeed - config.MinAsteroidSpeed + 1
	return physics.Vector{
		X: float64(config.MinAsteroidSpeed + r.rng.Intn(span)),
		Y: float64(config.MinAsteroidSpeed + r.rng.Intn(span)),
	}
}

// spawnAsteroid places a new large asteroid that does not touch the ship.
func (r *Runner) spawnAsteroid() error {
	a := object.NewAsteroid(r.ids.Next(), r.randomPosition(), r.randomAsteroidSpeed(),
		object.AsteroidSize(config.AsteroidInitialSize))
	for range spawnAttempts {
		if !physics.Intersects(a, r.ship) {
			r.addAsteroid(a)
			return nil
		}
		a.Pos = r.randomPosition()
	}
	return fmt.Errorf("%w: %gx%g", ErrFieldTooSmall, r.field.Width(), r.field.Height())
}

func (r *Runner) addAsteroid(a *object.Asteroid) {
	r.surface.RegisterAsteroid(a.ID, int(a.Size))
	r.asteroids = append(r.asteroids, a)
}

// Run drives Tick from a fixed-period timer until the game ends or ctx is
// cancelled. On a terminal outcome it shows the final message and ends the
// surface; it never exits the process.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		outcome := r.Tick()
		if err := r.surface.Update(); err != nil {
			return r.result(outcome), fmt.Errorf("update surface: %w", err)
		}
		if outcome.Over() {
			r.surface.ShowMessage(outcome.Title, outcome.Text)
			r.surface.EndGame()
			r.logger.Info("game over", "outcome", outcome.Kind, "score", r.score, "lives", r.lives)
			return r.result(outcome), nil
		}

		select {
		case <-ctx.Done():
			return r.result(outcome), ctx.Err()
		case <-ticker.C:
		}
	}
}

func (r *Runner) result(o Outcome) Result {
	return Result{Outcome: o, Score: r.score, Lives: r.lives}
}

// Score returns the current score.
func (r *Runner) Score() int {
	return r.score
}

// Lives returns the remaining lives.
func (r *Runner) Lives() int {
	return r.lives
}

// Ship returns the player's ship.
func (r *Runner) Ship() *object.Ship {
	return r.ship
}

// Asteroids returns the live asteroids. The slice must not be modified.
func (r *Runner) Asteroids() []*object.Asteroid {
	return r.asteroids
}

// Torpedoes returns the torpedoes in flight in launch order together with
// their remaining lifetimes.
func (r *Runner) Torpedoes() ([]*object.Torpedo, []int) {
	torpedoes := make([]*object.Torpedo, 0, len(r.order))
	lifetimes := make([]int, 0, len(r.order))
	for _, id := range r.order {
		torpedoes = append(torpedoes, r.torpedoes[id])
		lifetimes = append(lifetimes, r.lifetimes[id])
	}
	return torpedoes, lifetimes
}
