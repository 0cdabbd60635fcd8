// Package testutil provides shared test helpers for snowshift packages.
package testutil

import (
	"log/slog"
	"testing"
)

// NewTestLogger returns a slog logger routed through t.Log, suitable for
// handing to adapters under test. Output only surfaces on failure or with
// -v, so adapter debug lines don't clutter passing runs.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}
