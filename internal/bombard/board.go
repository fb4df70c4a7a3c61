package bombard

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Board symbols, in order of precedence.
const (
	SymbolExplosion = "*"
	SymbolHit       = "X"
	SymbolShip      = "#"
	SymbolWater     = "."
)

// Palette styles the board symbols. The zero Palette renders plain text.
type Palette struct {
	Header    lipgloss.Style
	Water     lipgloss.Style
	Ship      lipgloss.Style
	Hit       lipgloss.Style
	Bomb      lipgloss.Style
	Explosion lipgloss.Style
}

// DefaultPalette returns a colored palette built on r.
func DefaultPalette(r *lipgloss.Renderer) Palette {
	return Palette{
		Header:    r.NewStyle().Faint(true),
		Water:     r.NewStyle().Foreground(lipgloss.Color("4")),
		Ship:      r.NewStyle().Foreground(lipgloss.Color("7")).Bold(true),
		Hit:       r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Bomb:      r.NewStyle().Foreground(lipgloss.Color("3")),
		Explosion: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// BoardString renders a size x size board. Each cell shows, by precedence,
// a bomb that exploded this round, a hit ship cell, an intact ship cell,
// the remaining rounds of a live bomb, or water. It has no side effects.
func BoardString(size int, exploded []Coordinate, bombs map[Coordinate]int,
	hit, notHit []Coordinate, p Palette) string {
	explodedSet := toSet(exploded)
	hitSet := toSet(hit)
	shipSet := toSet(notHit)

	width := len(strconv.Itoa(size))
	var b strings.Builder

	b.WriteString(strings.Repeat(" ", width))
	for x := range size {
		b.WriteByte(' ')
		b.WriteString(p.Header.Render(string(rune('A' + x))))
	}
	b.WriteByte('\n')

	for y := range size {
		b.WriteString(p.Header.Render(padLeft(strconv.Itoa(y+1), width)))
		for x := range size {
			c := Coordinate{X: x, Y: y}
			b.WriteByte(' ')
			switch rounds, bomb := bombs[c]; {
			case explodedSet[c]:
				b.WriteString(p.Explosion.Render(SymbolExplosion))
			case hitSet[c]:
				b.WriteString(p.Hit.Render(SymbolHit))
			case shipSet[c]:
				b.WriteString(p.Ship.Render(SymbolShip))
			case bomb:
				b.WriteString(p.Bomb.Render(strconv.Itoa(rounds)))
			default:
				b.WriteString(p.Water.Render(SymbolWater))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func toSet(cells []Coordinate) map[Coordinate]bool {
	set := make(map[Coordinate]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return set
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
