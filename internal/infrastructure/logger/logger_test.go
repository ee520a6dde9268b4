package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestLevelTag(t *testing.T) {
	assert.Equal(t, "ERROR", levelTag(slog.LevelError))
	assert.Equal(t, "WARN ", levelTag(slog.LevelWarn))
	assert.Equal(t, "INFO ", levelTag(slog.LevelInfo))
	assert.Equal(t, "DEBUG", levelTag(slog.LevelDebug))
}

func TestFormatAttr(t *testing.T) {
	assert.Equal(t, "  key=value", formatAttr("", slog.String("key", "value")))
	assert.Equal(t, "  sim.key=value", formatAttr("sim", slog.String("key", "value")))
	assert.Equal(t, "  tick=42", formatAttr("", slog.Int("tick", 42)))
}

func TestConsoleHandler(t *testing.T) {
	t.Run("filters by level", func(t *testing.T) {
		h := &consoleHandler{level: slog.LevelInfo}

		assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
		assert.True(t, h.Enabled(context.Background(), slog.LevelError))
		assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	})

	t.Run("writes one line per record", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(Config{Level: "debug", Format: "console", Output: &buf})

		l.With("actor", "a1").WithGroup("move").Info("state change", "to", "Falling")

		line := buf.String()
		assert.True(t, strings.HasSuffix(line, "\n"))
		assert.Contains(t, line, "INFO  state change")
		assert.Contains(t, line, "  actor=a1")
		assert.Contains(t, line, "  move.to=Falling")
	})

	t.Run("timestamp uses time only", func(t *testing.T) {
		var buf bytes.Buffer
		h := &consoleHandler{w: &buf, level: slog.LevelDebug, mu: &sync.Mutex{}}
		r := slog.NewRecord(time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC), slog.LevelWarn, "paused", 0)

		require.NoError(t, h.Handle(context.Background(), r))

		assert.Equal(t, "12:30:00 WARN  paused\n", buf.String())
	})
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Format: "json", Output: &buf})

	l.Info("dropped")
	l.Warn("kept", "n", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, float64(3), rec["n"])
}

func TestInit_SetsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	l := Init(Config{Level: "info", Format: "text", Output: &buf})

	assert.Same(t, l, L())
	slog.Info("via default")
	assert.Contains(t, buf.String(), "msg=\"via default\"")
}
