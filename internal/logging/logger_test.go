package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiHandlerFansOutByLevel(t *testing.T) {
	var all, errorsOnly bytes.Buffer
	h := newMultiHandler(
		slog.NewJSONHandler(&all, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&errorsOnly, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	log := slog.New(h)

	log.Info("routine")
	log.Error("broken")

	assert.Contains(t, all.String(), "routine")
	assert.Contains(t, all.String(), "broken")
	assert.NotContains(t, errorsOnly.String(), "routine")
	assert.Contains(t, errorsOnly.String(), "broken")
}

func TestMultiHandlerEnabledWhenAnyHandlerIs(t *testing.T) {
	var buf bytes.Buffer
	h := newMultiHandler(
		slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	ctx := context.Background()
	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.True(t, h.Enabled(ctx, slog.LevelError))
}
