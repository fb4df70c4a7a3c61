package loop

import (
	"slices"
	"strconv"

	"github.com/tomz197/asteroids/internal/loop/config"
	"github.com/tomz197/asteroids/internal/object"
	"github.com/tomz197/asteroids/internal/physics"
)

// Tick advances the game by one step: input, ship, asteroids, torpedoes,
// then terminal conditions. When a terminal state is reached in the middle
// of a phase the tick stops right there.
func (r *Runner) Tick() Outcome {
	r.surface.DrawShip(r.ship.Pos.X, r.ship.Pos.Y, r.ship.Heading)
	r.applyInput()
	r.ship.Move(r.field)

	if o := r.asteroidPhase(); o.Over() {
		return o
	}
	if o := r.torpedoPhase(); o.Over() {
		return o
	}
	return r.status()
}

// applyInput polls the surface once and steers the ship.
func (r *Runner) applyInput() {
	in := r.surface.PollInput()
	r.quit = in.Quit

	if in.Left {
		r.ship.TurnLeft()
	}
	if in.Right {
		r.ship.TurnRight()
	}
	if in.Up {
		r.ship.Accelerate()
	}
	if in.Space {
		r.Fire()
	}
}

// Fire launches a torpedo from the ship. It is a no-op once TorpedoLimit
// torpedoes are in flight.
func (r *Runner) Fire() {
	if len(r.torpedoes) >= config.TorpedoLimit {
		r.logger.Debug("torpedo limit reached", "in_flight", len(r.torpedoes))
		return
	}
	t := object.NewTorpedo(r.ids.Next(), r.ship.Pos, r.ship.Heading, r.ship.Vel)
	r.torpedoes[t.ID] = t
	r.lifetimes[t.ID] = config.TorpedoLifetime
	r.order = append(r.order, t.ID)
	r.surface.RegisterTorpedo(t.ID)
}

// asteroidPhase draws and moves every asteroid and resolves ship collisions.
func (r *Runner) asteroidPhase() Outcome {
	for _, a := range slices.Clone(r.asteroids) {
		r.surface.DrawAsteroid(a.ID, a.Pos.X, a.Pos.Y)
		a.Move(r.field)

		if physics.Intersects(a, r.ship) {
			r.shipCollision()
			if o := r.destroyAsteroid(a); o.Over() {
				return o
			}
		}
	}
	return Outcome{}
}

// shipCollision costs one life. The ship itself is never destroyed.
func (r *Runner) shipCollision() {
	r.lives--
	r.surface.RemoveLife()
	r.surface.ShowMessage(config.TitleCollision, config.MsgCollision+strconv.Itoa(r.lives))
	r.logger.Debug("ship collision", "lives", r.lives)
}

// torpedoPhase draws and moves every torpedo, resolves hits and expires
// torpedoes. A torpedo handles every asteroid it touches this tick and is
// disarmed once afterwards.
func (r *Runner) torpedoPhase() Outcome {
	ids := slices.Clone(r.order)
	disarmed := make(map[object.ID]bool)

	defer func() {
		if len(disarmed) > 0 {
			r.order = slices.DeleteFunc(r.order, func(id object.ID) bool { return disarmed[id] })
		}
	}()

	for _, id := range ids {
		t := r.torpedoes[id]
		r.surface.DrawTorpedo(t.ID, t.Pos.X, t.Pos.Y, t.Heading)
		t.Move(r.field)

		exploded := false
		for _, a := range slices.Clone(r.asteroids) {
			if !physics.Intersects(a, t) {
				continue
			}
			exploded = true
			r.addScore(int(a.Size))

			var o Outcome
			if a.CanSplit() {
				o = r.splitAsteroid(a, t)
			} else {
				o = r.destroyAsteroid(a)
			}
			if o.Over() {
				return o
			}
		}

		r.lifetimes[id]--
		if r.lifetimes[id] <= 0 || exploded {
			r.disarmTorpedo(id)
			disarmed[id] = true
		}
	}
	return Outcome{}
}

// splitAsteroid replaces a with two fragments one size smaller. Each
// fragment's course is derived from the torpedo impact, then mirrored.
func (r *Runner) splitAsteroid(a *object.Asteroid, t *object.Torpedo) Outcome {
	for _, factor := range config.SplitValues {
		child := a.Fragment(r.ids.Next())
		child.CollisionAcceleration(t.Velocity())
		child.SplitWays(factor)
		r.addAsteroid(child)
	}
	r.logger.Debug("asteroid split", "id", a.ID, "size", a.Size)
	return r.destroyAsteroid(a)
}

// destroyAsteroid unregisters a and removes it from the active set, then
// evaluates whether the game has ended.
func (r *Runner) destroyAsteroid(a *object.Asteroid) Outcome {
	r.surface.UnregisterAsteroid(a.ID)
	r.asteroids = slices.DeleteFunc(r.asteroids, func(o *object.Asteroid) bool { return o.ID == a.ID })
	return r.status()
}

func (r *Runner) disarmTorpedo(id object.ID) {
	r.surface.UnregisterTorpedo(id)
	delete(r.torpedoes, id)
	delete(r.lifetimes, id)
}

// addScore awards the points for hitting an asteroid of the given size.
func (r *Runner) addScore(size int) {
	r.score += config.InterceptionPoints[size]
	r.surface.SetScore(r.score)
}

// status evaluates the terminal conditions. Winning takes precedence over
// losing, and both over quitting.
func (r *Runner) status() Outcome {
	switch {
	case len(r.asteroids) == 0:
		return wonOutcome(r.score)
	case r.lives <= 0:
		return lostOutcome()
	case r.quit:
		return quitOutcome()
	default:
		return Outcome{}
	}
}
