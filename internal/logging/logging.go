// Package logging builds the structured loggers used by every binary.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the named level ("debug", "info",
// "warn", "error").
func New(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          prefix,
		ReportTimestamp: true,
	}), nil
}

// Open returns a logger appending to the file at path. An empty path
// discards all output; raw terminal mode leaves no room for log lines on
// screen. Close the returned closer when done.
func Open(path, level, prefix string) (*log.Logger, io.Closer, error) {
	if path == "" {
		logger, err := New(io.Discard, level, prefix)
		return logger, nopCloser{}, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := New(f, level, prefix)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
