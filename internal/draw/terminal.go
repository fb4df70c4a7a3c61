package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ANSI control sequences.
const (
	SeqClear      = "\033[H\033[2J"
	SeqHideCursor = "\033[?25l"
	SeqShowCursor = "\033[?25h"
	SeqReset      = "\033[0m"
)

// maxChunkSize is the largest write handed to the underlying writer at
// once. It stays below a typical MTU so SSH frames flow smoothly.
const maxChunkSize = 1400

// ChunkWriter accumulates one frame of terminal output and writes it in
// chunks on Flush.
type ChunkWriter struct {
	buf    strings.Builder
	out    *bufio.Writer
	numBuf [20]byte // Scratch for allocation-free integer formatting
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter writing to w. offsetCol and offsetRow
// are added to every cursor position.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		out:    bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// MoveCursor appends a cursor position sequence. col and row are 1-based.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// Write implements io.Writer.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	return cw.buf.Write(p)
}

// WriteString appends s to the frame.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteRune appends r to the frame.
func (cw *ChunkWriter) WriteRune(r rune) {
	cw.buf.WriteRune(r)
}

// WriteAt writes s starting at col, row.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.buf.WriteString(s)
}

// WriteBlock writes a multi-line string with its top left corner at col,
// row, one line per terminal row.
func (cw *ChunkWriter) WriteBlock(col, row int, block string) {
	for i, line := range strings.Split(block, "\n") {
		cw.WriteAt(col, row+i, line)
	}
}

// Len returns the number of bytes buffered for the current frame.
func (cw *ChunkWriter) Len() int {
	return cw.buf.Len()
}

// Flush writes the frame to the underlying writer and resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := cw.out.WriteString(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return cw.out.Flush()
}

var _ io.Writer = (*ChunkWriter)(nil)

// TermSizeFunc returns the terminal dimensions in cells.
type TermSizeFunc func() (cols, rows int, err error)

// StdoutSize reports the size of the terminal attached to stdout.
func StdoutSize() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// FixedSize returns a TermSizeFunc that always reports cols x rows.
func FixedSize(cols, rows int) TermSizeFunc {
	return func() (int, int, error) {
		return cols, rows, nil
	}
}
