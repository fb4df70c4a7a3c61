// Package draw renders world-space geometry onto a terminal using
// half-block characters, two pixels per cell vertically.
package draw

import (
	"math"
	"slices"
	"strings"

	"github.com/tomz197/asteroids/internal/physics"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas is a pixel buffer that maps a world field onto terminal cells.
// World y grows upwards; terminal rows grow downwards, so y is flipped.
type Canvas struct {
	cols   int    // Terminal columns
	rows   int    // Terminal rows
	height int    // Pixel rows, rows*2
	pixels []bool // [y*cols + x]

	view   physics.Field
	scaleX float64 // cols / view width
	scaleY float64 // height / view height

	crossings []float64 // Scratch for polygon fill
}

// NewCanvas creates a canvas of cols x rows terminal cells showing view.
func NewCanvas(cols, rows int, view physics.Field) *Canvas {
	c := &Canvas{view: view}
	c.Resize(cols, rows)
	return c
}

// Resize updates the terminal dimensions while keeping the view.
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	if cols != c.cols || rows != c.rows || c.pixels == nil {
		c.cols = cols
		c.rows = rows
		c.height = rows * 2
		c.pixels = make([]bool, c.height*cols)
	}
	c.scaleX = float64(c.cols) / c.view.Width()
	c.scaleY = float64(c.height) / c.view.Height()
}

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Cols returns the terminal column count.
func (c *Canvas) Cols() int {
	return c.cols
}

// Rows returns the terminal row count.
func (c *Canvas) Rows() int {
	return c.rows
}

// project converts a world point to pixel space, not rounded.
func (c *Canvas) project(p physics.Vector) (float64, float64) {
	return (p.X - c.view.X.Min) * c.scaleX, (c.view.Y.Max - p.Y) * c.scaleY
}

func (c *Canvas) pixel(p physics.Vector) (int, int) {
	x, y := c.project(p)
	return int(math.Floor(x)), int(math.Floor(y))
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.height {
		c.pixels[y*c.cols+x] = true
	}
}

// Pixel reports whether the pixel at x, y (pixel space, origin top left)
// is set.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.cols || y < 0 || y >= c.height {
		return false
	}
	return c.pixels[y*c.cols+x]
}

// Cell returns the 1-based terminal column and row that shows p.
func (c *Canvas) Cell(p physics.Vector) (col, row int) {
	x, y := c.pixel(p)
	return x + 1, y/2 + 1
}

// Plot sets the pixel under a world point.
func (c *Canvas) Plot(p physics.Vector) {
	c.setPixel(c.pixel(p))
}

// Line draws a line between two world points using Bresenham's algorithm.
func (c *Canvas) Line(a, b physics.Vector) {
	x1, y1 := c.pixel(a)
	x2, y2 := c.pixel(b)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Polygon draws the outline through points, closing the shape. When filled
// the interior is filled with a scanline pass.
func (c *Canvas) Polygon(points []physics.Vector, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fill(points)
	}
	for i := range points {
		c.Line(points[i], points[(i+1)%len(points)])
	}
}

// Circle draws a circle outline approximated by segments vertices.
func (c *Canvas) Circle(center physics.Vector, radius float64, segments int) {
	segments = max(segments, 3)
	points := make([]physics.Vector, segments)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		points[i] = physics.Vector{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	c.Polygon(points, false)
}

func (c *Canvas) fill(points []physics.Vector) {
	type pt struct{ x, y float64 }
	scaled := make([]pt, len(points))
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range points {
		x, y := c.project(p)
		scaled[i] = pt{x, y}
		minY, maxY = min(minY, y), max(maxY, y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scan := float64(y) + 0.5
		crossings := c.crossings[:0]
		for i := range scaled {
			p1, p2 := scaled[i], scaled[(i+1)%len(scaled)]
			if (p1.y <= scan && p2.y > scan) || (p2.y <= scan && p1.y > scan) {
				t := (scan - p1.y) / (p2.y - p1.y)
				crossings = append(crossings, p1.x+t*(p2.x-p1.x))
			}
		}
		c.crossings = crossings
		slices.Sort(crossings)

		for i := 0; i+1 < len(crossings); i += 2 {
			for x := int(math.Ceil(crossings[i])); x <= int(math.Floor(crossings[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// Render writes every non-empty cell to w as a positioned half-block.
func (c *Canvas) Render(w *ChunkWriter) {
	for row := 0; row < c.rows; row++ {
		top := row * 2 * c.cols
		bottom := top + c.cols
		for col := 0; col < c.cols; col++ {
			var ch rune
			switch t, b := c.pixels[top+col], c.pixels[bottom+col]; {
			case t && b:
				ch = BlockFull
			case t:
				ch = BlockUpperHalf
			case b:
				ch = BlockLowerHalf
			default:
				continue
			}
			w.MoveCursor(col+1, row+1)
			w.WriteRune(ch)
		}
	}
}

// String returns the canvas as plain rows of block characters, mainly for
// debugging and tests.
func (c *Canvas) String() string {
	var w strings.Builder
	for row := 0; row < c.rows; row++ {
		top := row * 2 * c.cols
		for col := 0; col < c.cols; col++ {
			t, b := c.pixels[top+col], c.pixels[top+c.cols+col]
			switch {
			case t && b:
				w.WriteRune(BlockFull)
			case t:
				w.WriteRune(BlockUpperHalf)
			case b:
				w.WriteRune(BlockLowerHalf)
			default:
				w.WriteRune(' ')
			}
		}
		w.WriteByte('\n')
	}
	return w.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
