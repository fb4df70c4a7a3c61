package loop

import (
	"github.com/tomz197/asteroids/internal/input"
	"github.com/tomz197/asteroids/internal/object"
)

// Surface is the display and input collaborator of the Runner. The runner
// never depends on what a surface does with these calls.
type Surface interface {
	// PollInput returns the current key state without blocking.
	// It is called once per tick.
	PollInput() input.Input

	DrawShip(x, y, heading float64)
	DrawAsteroid(id object.ID, x, y float64)
	DrawTorpedo(id object.ID, x, y, heading float64)

	RegisterAsteroid(id object.ID, size int)
	UnregisterAsteroid(id object.ID)
	RegisterTorpedo(id object.ID)
	UnregisterTorpedo(id object.ID)

	ShowMessage(title, text string)
	SetScore(score int)
	RemoveLife()

	// Update presents everything drawn during the last tick.
	Update() error
	// EndGame tears the presentation down after the final message.
	EndGame()
}
