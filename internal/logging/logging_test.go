package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewFollowsLevel(t *testing.T) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)

	logger := New(&buf, level)
	logger.Debug("hidden", "dir", "/notes/locked")
	if buf.Len() != 0 {
		t.Fatalf("expected debug record to be dropped at warn level, got %q", buf.String())
	}

	level.Set(slog.LevelDebug)
	logger.Debug("skipping directory", "dir", "/notes/locked")

	out := buf.String()
	if !strings.Contains(out, "skipping directory") || !strings.Contains(out, "dir=/notes/locked") {
		t.Fatalf("expected debug record once level is lowered, got %q", out)
	}
	if strings.Contains(out, "time=") {
		t.Fatalf("expected timestamps to be stripped, got %q", out)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("expected discard logger to be disabled")
	}
}
