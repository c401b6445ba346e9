package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/scry-drill/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreDefault keeps Setup from leaking its default logger into other tests.
func restoreDefault(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestSetupLevels(t *testing.T) {
	restoreDefault(t)

	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
		warnSeen  bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"warn", false, false, true},
		{"WARN", false, false, true},
		{"", false, false, true},
		{"error", false, false, false},
	}

	for _, tt := range tests {
		t.Run("level_"+tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := logger.Setup(logger.Config{Level: tt.level, Format: "json"}, &buf)
			require.NoError(t, err)

			l.Debug("debug message")
			l.Info("info message")
			l.Warn("warn message")

			out := buf.String()
			assert.Equal(t, tt.debugSeen, strings.Contains(out, "debug message"))
			assert.Equal(t, tt.infoSeen, strings.Contains(out, "info message"))
			assert.Equal(t, tt.warnSeen, strings.Contains(out, "warn message"))
		})
	}
}

func TestSetupInvalidLevelFallsBack(t *testing.T) {
	restoreDefault(t)

	var buf bytes.Buffer
	l, err := logger.Setup(logger.Config{Level: "verbose", Format: "text"}, &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "invalid log level configured")

	buf.Reset()
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetupFormats(t *testing.T) {
	restoreDefault(t)

	var buf bytes.Buffer
	l, err := logger.Setup(logger.Config{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	l.Info("structured", slog.String("component", "test"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "structured", entry["msg"])
	assert.Equal(t, "test", entry["component"])
	assert.Same(t, l, slog.Default())

	_, err = logger.Setup(logger.Config{Level: "info", Format: "xml"}, &buf)
	assert.Error(t, err)
}

func TestContextHelpers(t *testing.T) {
	t.Parallel()

	l, buf := logger.NewTestLogger(t)
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
	assert.Same(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))
	assert.Same(t, slog.Default(), logger.FromContext(context.Background()))

	ctx := logger.WithLogger(context.Background(), l.With(slog.String("session_id", "abc")))
	logger.FromContextOrDefault(ctx, fallback).Info("from context")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "abc", entries[0]["session_id"])
}
