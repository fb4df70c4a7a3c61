package input

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feed(s *Stream, bytes string) {
	for i := 0; i < len(bytes); i++ {
		s.ch <- bytes[i]
	}
}

func TestReadInputKeys(t *testing.T) {
	tests := []struct {
		name  string
		bytes string
		want  Input
	}{
		{"nothing", "", Input{}},
		{"letters", "aw ", Input{Left: true, Up: true, Space: true}},
		{"arrows", "\x1b[D\x1b[C\x1b[A", Input{Left: true, Right: true, Up: true}},
		{"quit", "q", Input{Quit: true}},
		{"ctrl c", "\x03", Input{Quit: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStream(0)
			now := time.Unix(1000, 0)
			s.now = func() time.Time { return now }
			feed(s, tt.bytes)

			assert.Equal(t, tt.want, ReadInput(s))
		})
	}
}

func TestReadInputHoldWindow(t *testing.T) {
	s := newStream(40 * time.Millisecond)
	now := time.Unix(1000, 0)
	s.now = func() time.Time { return now }

	feed(s, "d")
	assert.True(t, ReadInput(s).Right)

	now = now.Add(10 * time.Millisecond)
	assert.True(t, ReadInput(s).Right, "still held")

	now = now.Add(15 * time.Millisecond)
	assert.False(t, ReadInput(s).Right, "released")
}

func TestTapIsReportedByOnePoll(t *testing.T) {
	for _, interval := range []time.Duration{0, 5 * time.Millisecond, 30 * time.Millisecond, 100 * time.Millisecond} {
		s := newStream(interval)
		now := time.Unix(1000, 0)
		s.now = func() time.Time { return now }
		step := interval
		if step == 0 {
			step = defaultPollInterval
		}

		feed(s, " j")
		first := ReadInput(s)
		assert.True(t, first.Space, "interval %s", interval)
		assert.True(t, first.Left, "interval %s", interval)

		now = now.Add(step)
		second := ReadInput(s)
		assert.False(t, second.Space, "interval %s: tap fired twice", interval)
		assert.False(t, second.Left, "interval %s: tap turned twice", interval)
	}
}

func TestStreamClosedReportsQuit(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")), 0)

	require.Eventually(t, func() bool {
		return ReadInput(s).Quit
	}, time.Second, 5*time.Millisecond)
	assert.True(t, s.Closed())
}
