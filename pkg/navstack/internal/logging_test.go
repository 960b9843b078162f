package internal

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	for raw, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"Warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	} {
		assert.Equal(t, want, ParseLevel(raw), raw)
	}
}

func TestInternalLoggerStartsAtError(t *testing.T) {
	l := GetInternalLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, l.Enabled(context.Background(), slog.LevelError))

	SetInternalLogLevel(slog.LevelDebug)
	t.Cleanup(func() { SetInternalLogLevel(slog.LevelError) })
	assert.True(t, l.Enabled(context.Background(), slog.LevelDebug))
}
