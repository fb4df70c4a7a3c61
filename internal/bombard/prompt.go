package bombard

import (
	"bufio"
	"fmt"
	"io"
)

// Prompt reads targets line by line, asking again until a line names a
// cell on the board.
type Prompt struct {
	in  *bufio.Scanner
	out io.Writer
}

var _ TargetSource = (*Prompt)(nil)

// NewPrompt creates a Prompt reading from r and prompting on w.
func NewPrompt(r io.Reader, w io.Writer) *Prompt {
	return &Prompt{in: bufio.NewScanner(r), out: w}
}

// Target blocks until a valid target is entered. It fails with io.EOF (or
// the read error) when the input ends first.
func (p *Prompt) Target(boardSize int) (Coordinate, error) {
	last := Coordinate{X: boardSize - 1, Y: boardSize - 1}
	for {
		fmt.Fprintf(p.out, "Choose target (A1-%s): ", last.Label())
		if !p.in.Scan() {
			err := p.in.Err()
			if err == nil {
				err = io.EOF
			}
			return Coordinate{}, fmt.Errorf("prompt: %w", err)
		}
		c, err := ParseCoordinate(p.in.Text(), boardSize)
		if err != nil {
			fmt.Fprintf(p.out, "%v, try again\n", err)
			continue
		}
		return c, nil
	}
}
