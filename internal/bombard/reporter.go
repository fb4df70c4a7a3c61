package bombard

import (
	"fmt"
	"io"
)

// TextReporter writes the game to a plain text stream.
type TextReporter struct {
	w io.Writer
}

var _ Reporter = (*TextReporter)(nil)

// NewTextReporter creates a TextReporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Legend explains the board symbols.
func (r *TextReporter) Legend() {
	fmt.Fprintf(r.w, "Legend: %s water, %s ship, %s hit ship, %s explosion, digits are bombs with their remaining rounds\n",
		SymbolWater, SymbolShip, SymbolHit, SymbolExplosion)
}

func (r *TextReporter) Board(board string) {
	fmt.Fprint(r.w, board)
}

func (r *TextReporter) Turn(hits, terminations int) {
	fmt.Fprintf(r.w, "Hits this turn: %d, ships terminated: %d\n", hits, terminations)
}

func (r *TextReporter) GameOver() {
	fmt.Fprintln(r.w, "Game over! All ships are down.")
}
