// Package screen draws the arcade game on an ANSI terminal.
package screen

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/asteroids/internal/draw"
	"github.com/tomz197/asteroids/internal/input"
	"github.com/tomz197/asteroids/internal/loop"
	"github.com/tomz197/asteroids/internal/loop/config"
	"github.com/tomz197/asteroids/internal/object"
	"github.com/tomz197/asteroids/internal/physics"
)

// Visual sizes in world units. The ship's collision radius is tiny, so it
// is drawn larger than it collides.
const (
	shipLength      = 14.0
	shipRearAngle   = 140.0 // Degrees between nose and each rear corner
	torpedoLength   = 8.0
	asteroidSegment = 12
)

// DefaultMessageTicks is how many frames a message stays on screen.
const DefaultMessageTicks = 60

// InputSource supplies the key state for one tick.
type InputSource interface {
	Poll() input.Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func() input.Input

// Poll calls f.
func (f InputFunc) Poll() input.Input {
	return f()
}

// Options configures a Terminal.
type Options struct {
	Field        physics.Field     // World shown on screen; config.DefaultField when zero
	Size         draw.TermSizeFunc // Terminal size; draw.StdoutSize when nil
	Renderer     *lipgloss.Renderer
	MessageTicks int
}

type overlay struct {
	title, text string
	ticks       int // Frames left; negative stays forever
}

// Terminal is a loop.Surface that renders to an ANSI terminal.
type Terminal struct {
	in     InputSource
	out    *draw.ChunkWriter
	canvas *draw.Canvas
	size   draw.TermSizeFunc
	styles Styles

	messageTicks int
	msg          *overlay

	asteroids map[object.ID]object.AsteroidSize
	torpedoes map[object.ID]struct{}
	score     int
	lives     int
	ended     bool
}

var _ loop.Surface = (*Terminal)(nil)

// New creates a Terminal reading keys from in and writing frames to w.
func New(in InputSource, w io.Writer, opts Options) (*Terminal, error) {
	field := opts.Field
	if field == (physics.Field{}) {
		field = config.DefaultField
	}
	if err := field.Validate(); err != nil {
		return nil, fmt.Errorf("invalid field: %w", err)
	}
	size := opts.Size
	if size == nil {
		size = draw.StdoutSize
	}
	cols, rows, err := size()
	if err != nil {
		return nil, fmt.Errorf("terminal size: %w", err)
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.NewRenderer(w)
	}
	ticks := opts.MessageTicks
	if ticks <= 0 {
		ticks = DefaultMessageTicks
	}

	t := &Terminal{
		in:           in,
		out:          draw.NewChunkWriter(w, 0, 0),
		canvas:       draw.NewCanvas(cols, rows, field),
		size:         size,
		styles:       DefaultStyles(renderer),
		messageTicks: ticks,
		asteroids:    make(map[object.ID]object.AsteroidSize),
		torpedoes:    make(map[object.ID]struct{}),
		score:        config.InitialScore,
		lives:        config.InitialLives,
	}
	t.out.WriteString(draw.SeqHideCursor + draw.SeqClear)
	return t, nil
}

// PollInput returns the key state for this tick.
func (t *Terminal) PollInput() input.Input {
	return t.in.Poll()
}

// DrawShip draws the ship as a triangle pointing along heading.
func (t *Terminal) DrawShip(x, y, heading float64) {
	center := physics.Vector{X: x, Y: y}
	points := []physics.Vector{
		along(center, heading, shipLength/2),
		along(center, heading+shipRearAngle, shipLength/2),
		along(center, heading-shipRearAngle, shipLength/2),
	}
	t.canvas.Polygon(points, true)
}

// DrawAsteroid draws a registered asteroid as a circle of its collision
// radius. Unregistered ids are ignored.
func (t *Terminal) DrawAsteroid(id object.ID, x, y float64) {
	size, ok := t.asteroids[id]
	if !ok {
		return
	}
	t.canvas.Circle(physics.Vector{X: x, Y: y}, size.Radius(), asteroidSegment)
}

// DrawTorpedo draws a short streak along heading.
func (t *Terminal) DrawTorpedo(id object.ID, x, y, heading float64) {
	if _, ok := t.torpedoes[id]; !ok {
		return
	}
	tail := physics.Vector{X: x, Y: y}
	t.canvas.Line(tail, along(tail, heading, torpedoLength))
}

func (t *Terminal) RegisterAsteroid(id object.ID, size int) {
	t.asteroids[id] = object.AsteroidSize(size)
}

func (t *Terminal) UnregisterAsteroid(id object.ID) {
	delete(t.asteroids, id)
}

func (t *Terminal) RegisterTorpedo(id object.ID) {
	t.torpedoes[id] = struct{}{}
}

func (t *Terminal) UnregisterTorpedo(id object.ID) {
	delete(t.torpedoes, id)
}

// ShowMessage shows a boxed message in the middle of the screen for a
// while. A newer message replaces an older one.
func (t *Terminal) ShowMessage(title, text string) {
	t.msg = &overlay{title: title, text: text, ticks: t.messageTicks}
}

func (t *Terminal) SetScore(score int) {
	t.score = score
}

func (t *Terminal) RemoveLife() {
	t.lives--
}

// Update presents the frame drawn since the previous call and starts a new
// one.
func (t *Terminal) Update() error {
	if t.ended {
		return nil
	}
	cols, rows, err := t.size()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	if cols != t.canvas.Cols() || rows != t.canvas.Rows() {
		t.canvas.Resize(cols, rows)
	}

	t.out.WriteString(draw.SeqClear)
	t.canvas.Render(t.out)
	t.drawHUD()
	t.drawMessage()
	t.canvas.Clear()

	if err := t.out.Flush(); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// EndGame draws a last frame with the final message pinned and restores
// the cursor. Later updates are ignored.
func (t *Terminal) EndGame() {
	if t.ended {
		return
	}
	if t.msg != nil {
		t.msg.ticks = -1
	}
	_ = t.Update()
	t.out.MoveCursor(1, t.canvas.Rows())
	t.out.WriteString(draw.SeqReset + draw.SeqShowCursor + "\r\n")
	_ = t.out.Flush()
	t.ended = true
}

// Score returns the score last reported by the game.
func (t *Terminal) Score() int {
	return t.score
}

// Lives returns the lives shown in the HUD.
func (t *Terminal) Lives() int {
	return t.lives
}

// Message returns the message on screen, if any.
func (t *Terminal) Message() (title, text string, ok bool) {
	if t.msg == nil {
		return "", "", false
	}
	return t.msg.title, t.msg.text, true
}

func (t *Terminal) drawHUD() {
	cols := t.canvas.Cols()
	t.out.WriteAt(2, 1, t.styles.HUD.Render(fmt.Sprintf("Score: %d", t.score)))

	lives := t.styles.HUD.Render(fmt.Sprintf("Lives: %d", t.lives))
	t.out.WriteAt(max(cols-lipgloss.Width(lives), 1), 1, lives)
}

func (t *Terminal) drawMessage() {
	if t.msg == nil {
		return
	}
	box := t.styles.Message.Render(t.styles.Title.Render(t.msg.title) + "\n\n" + t.msg.text)
	col := max((t.canvas.Cols()-lipgloss.Width(box))/2+1, 1)
	row := max((t.canvas.Rows()-lipgloss.Height(box))/2+1, 1)
	t.out.WriteBlock(col, row, box)

	if t.msg.ticks > 0 {
		t.msg.ticks--
		if t.msg.ticks == 0 {
			t.msg = nil
		}
	}
}

// along returns the point dist away from p in direction heading (degrees).
func along(p physics.Vector, heading, dist float64) physics.Vector {
	rad := heading * math.Pi / 180
	return physics.Vector{X: p.X + dist*math.Cos(rad), Y: p.Y + dist*math.Sin(rad)}
}
