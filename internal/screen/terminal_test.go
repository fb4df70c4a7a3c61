package screen

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/asteroids/internal/draw"
	"github.com/tomz197/asteroids/internal/input"
	"github.com/tomz197/asteroids/internal/loop/config"
	"github.com/tomz197/asteroids/internal/object"
)

func newTestTerminal(t *testing.T, in InputSource) (*Terminal, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	term, err := New(in, &out, Options{
		Size:         draw.FixedSize(60, 20),
		Renderer:     lipgloss.NewRenderer(io.Discard),
		MessageTicks: 2,
	})
	require.NoError(t, err)
	return term, &out
}

func TestPollInputDelegates(t *testing.T) {
	want := input.Input{Left: true, Space: true}
	term, _ := newTestTerminal(t, InputFunc(func() input.Input { return want }))
	assert.Equal(t, want, term.PollInput())
}

func TestHUD(t *testing.T) {
	term, out := newTestTerminal(t, nil)
	term.SetScore(120)
	term.RemoveLife()

	require.NoError(t, term.Update())

	assert.Contains(t, out.String(), "Score: 120")
	assert.Contains(t, out.String(), "Lives: 2")
	assert.Equal(t, config.InitialLives-1, term.Lives())
	assert.Equal(t, 120, term.Score())
}

func TestMessageExpires(t *testing.T) {
	term, out := newTestTerminal(t, nil)
	term.ShowMessage(config.TitleCollision, "Remaining lives: 2")

	require.NoError(t, term.Update())
	assert.Contains(t, out.String(), config.TitleCollision)

	out.Reset()
	require.NoError(t, term.Update())
	assert.Contains(t, out.String(), config.TitleCollision)
	_, _, ok := term.Message()
	assert.False(t, ok, "message gone after its ticks")

	out.Reset()
	require.NoError(t, term.Update())
	assert.NotContains(t, out.String(), config.TitleCollision)
}

func TestDrawsOnlyRegisteredEntities(t *testing.T) {
	term, out := newTestTerminal(t, nil)

	term.DrawAsteroid(7, 0, 0)
	term.DrawTorpedo(8, 0, 0, 0)
	require.NoError(t, term.Update())
	assert.NotContains(t, out.String(), string(draw.BlockFull))
	assert.NotContains(t, out.String(), string(draw.BlockUpperHalf))
	assert.NotContains(t, out.String(), string(draw.BlockLowerHalf))

	term.RegisterAsteroid(7, int(object.AsteroidLarge))
	out.Reset()
	term.DrawAsteroid(7, 0, 0)
	require.NoError(t, term.Update())
	assert.Regexp(t, "[▀▄█]", out.String())

	term.UnregisterAsteroid(7)
	out.Reset()
	term.DrawAsteroid(7, 0, 0)
	require.NoError(t, term.Update())
	assert.NotRegexp(t, "[▀▄█]", out.String())
}

func TestDrawShipAndTorpedo(t *testing.T) {
	term, out := newTestTerminal(t, nil)
	term.RegisterTorpedo(3)

	term.DrawShip(0, 0, 90)
	term.DrawTorpedo(3, 100, 100, 45)
	require.NoError(t, term.Update())
	assert.Regexp(t, "[▀▄█]", out.String())

	term.UnregisterTorpedo(3)
	out.Reset()
	term.DrawTorpedo(3, 100, 100, 45)
	require.NoError(t, term.Update())
	assert.NotRegexp(t, "[▀▄█]", out.String())
}

func TestEndGamePinsFinalMessage(t *testing.T) {
	term, out := newTestTerminal(t, nil)
	term.ShowMessage(config.TitleWin, config.MsgWin+"40")

	term.EndGame()

	assert.Contains(t, out.String(), config.TitleWin)
	assert.Contains(t, out.String(), draw.SeqShowCursor)
	title, text, ok := term.Message()
	require.True(t, ok)
	assert.Equal(t, config.TitleWin, title)
	assert.Equal(t, config.MsgWin+"40", text)

	out.Reset()
	require.NoError(t, term.Update())
	assert.Empty(t, out.String(), "no frames after the game ended")
}

func TestResizeFollowsTerminal(t *testing.T) {
	var out bytes.Buffer
	cols := 40
	term, err := New(nil, &out, Options{
		Size:     func() (int, int, error) { return cols, 10, nil },
		Renderer: lipgloss.NewRenderer(io.Discard),
	})
	require.NoError(t, err)

	cols = 80
	require.NoError(t, term.Update())
	assert.Equal(t, 80, term.canvas.Cols())
}

func TestSizeError(t *testing.T) {
	boom := errors.New("no tty")
	_, err := New(nil, io.Discard, Options{Size: func() (int, int, error) { return 0, 0, boom }})
	require.ErrorIs(t, err, boom)
}
