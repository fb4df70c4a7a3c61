package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn", "test")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "key", 42)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "key=42")
	assert.Contains(t, buf.String(), "test")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	logger, closer, err := Open(path, "debug", "")
	require.NoError(t, err)

	logger.Debug("tick", "n", 1)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tick")
}

func TestOpenWithoutPathDiscards(t *testing.T) {
	logger, closer, err := Open("", "info", "")
	require.NoError(t, err)
	logger.Info("nowhere")
	assert.NoError(t, closer.Close())
}

func TestOpenBadLevelClosesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	_, _, err := Open(path, "nope", "")
	require.Error(t, err)
}
