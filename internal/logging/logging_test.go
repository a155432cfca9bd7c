package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, Level(-1))
	assert.Equal(t, slog.LevelWarn, Level(0))
	assert.Equal(t, slog.LevelInfo, Level(1))
	assert.Equal(t, slog.LevelDebug, Level(2))
	assert.Equal(t, slog.LevelDebug, Level(5))
}

func TestNew_FiltersByVerbosity(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, 0)

	logger.Info("hidden")
	logger.Warn("shown", "item", 3)

	out := buf.String()
	assert.Assert(t, !bytes.Contains(buf.Bytes(), []byte("hidden")))
	assert.Assert(t, is.Contains(out, "shown"))
	assert.Assert(t, is.Contains(out, "item=3"))
}

func TestNew_NoColorForBuffers(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, 2).Debug("plain")
	assert.Assert(t, !bytes.Contains(buf.Bytes(), []byte("\x1b[")))
}
