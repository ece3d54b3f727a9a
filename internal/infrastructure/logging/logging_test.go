package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestSetupLoggerConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn := SetupLogger(&buf, slog.LevelInfo, "")
	defer closeFn()

	logger.Debug("hidden")
	logger.Info("grid rendered", "rows", 4)

	out := buf.String()
	assert.Assert(t, !strings.Contains(out, "hidden"))
	assert.Assert(t, strings.Contains(out, `msg="grid rendered" rows=4`), out)
}

func TestMultiHandlerFansOut(t *testing.T) {
	var debugBuf, warnBuf bytes.Buffer
	multi := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}}

	assert.Assert(t, multi.Enabled(context.Background(), slog.LevelDebug))
	assert.Assert(t, !multi.Enabled(context.Background(), slog.LevelDebug-4))

	logger := slog.New(multi).With("session", "abc").WithGroup("grid")
	logger.Info("sorted", "column", "ID")

	assert.Assert(t, strings.Contains(debugBuf.String(), "session=abc grid.column=ID"), debugBuf.String())
	assert.Equal(t, warnBuf.String(), "")
}
