package logging

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(t *testing.T) (*Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return FromZap(zap.New(core)), logs
}

func TestLogger_KeyValueArgs(t *testing.T) {
	logger, logs := newObserved(t)

	logger.Info("player registered", "player_id", int64(7), "shirt_number", 9)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["player_id"] != int64(7) {
		t.Fatalf("unexpected player_id field: %v", fields["player_id"])
	}
	if fields["shirt_number"] != int64(9) {
		t.Fatalf("unexpected shirt_number field: %v", fields["shirt_number"])
	}
}

func TestLogger_ErrorValuesKeepTheirKey(t *testing.T) {
	logger, logs := newObserved(t)

	logger.Error("command failed", "error", fmt.Errorf("boom"))

	fields := logs.All()[0].ContextMap()
	if fields["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", fields["error"])
	}
}

func TestLogger_DanglingKeyGetsNilValue(t *testing.T) {
	logger, logs := newObserved(t)

	logger.Warn("odd args", "only_key")

	fields := logs.All()[0].ContextMap()
	if _, ok := fields["only_key"]; !ok {
		t.Fatalf("expected dangling key to be kept, got %v", fields)
	}
}

func TestLogger_ContextWithoutSpanAddsNoTraceFields(t *testing.T) {
	logger, logs := newObserved(t)

	logger.InfoContext(context.Background(), "store opened", "path", "club.db")

	fields := logs.All()[0].ContextMap()
	if _, ok := fields["trace_id"]; ok {
		t.Fatalf("expected no trace fields without an active span, got %v", fields)
	}
}

func TestLogger_NilReceiverIsSafe(t *testing.T) {
	var logger *Logger
	logger.Info("ignored")
	logger.With("k", "v").Error("still ignored")
	if err := logger.Sync(); err != nil {
		t.Fatalf("sync on nil logger: %v", err)
	}
}
