// Package input turns raw terminal bytes into per-tick key state.
package input

import (
	"bufio"
	"time"
)

// defaultPollInterval is assumed when StartStream is given no interval.
const defaultPollInterval = 30 * time.Millisecond

// holdWindow is how long a key is considered "held" after its last press.
// It stays under the poll interval so one tap is reported by exactly one poll.
func holdWindow(pollInterval time.Duration) time.Duration {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return pollInterval / 2
}

// Input is the key state the game reads once per tick.
type Input struct {
	Left    bool // Turn counter-clockwise
	Right   bool // Turn clockwise
	Up      bool // Thrust
	Space   bool // Fire torpedo
	Quit    bool // End the game
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
	up    time.Time
	space time.Time
	quit  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	closed bool
	state  keyState
	hold   time.Duration
	now    func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r returns an error. pollInterval is how often
// ReadInput will be called; zero assumes 30ms.
func StartStream(r *bufio.Reader, pollInterval time.Duration) *Stream {
	s := newStream(pollInterval)
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream(pollInterval time.Duration) *Stream {
	return &Stream{
		ch:   make(chan byte, 128),
		hold: holdWindow(pollInterval),
		now:  time.Now,
	}
}

// Closed reports whether the underlying reader has ended (e.g. the SSH
// session or stdin was closed).
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream without blocking.
// Handles escape sequences for arrow keys. Keys seen within the hold window
// are reported as pressed.
func ReadInput(s *Stream) Input {
	now := s.now()
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}

	return Input{
		Left:  now.Sub(s.state.left) < s.hold,
		Right: now.Sub(s.state.right) < s.hold,
		Up:    now.Sub(s.state.up) < s.hold,
		Space: now.Sub(s.state.space) < s.hold,
		Quit:  s.closed || now.Sub(s.state.quit) < s.hold,
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl+C arrives as a byte in raw mode
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.up = now
	case ' ':
		state.space = now
	}
}

// Poll is ReadInput as a method, so a Stream can serve as an input source.
func (s *Stream) Poll() Input {
	return ReadInput(s)
}
