package database

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/futclub/clubmanager/internal/platform/logging"
)

const sampleScript = `
-- bootstrap objects
CREATE TABLE squads (
    id INTEGER PRIMARY KEY, -- generated
    name TEXT NOT NULL
);

CREATE INDEX idx_squads_name ON squads (name);

CREATE TRIGGER trg_squads_touch AFTER UPDATE ON squads
BEGIN
    UPDATE squads SET name = NEW.name WHERE id = NEW.id;
END;

INSERT OR IGNORE INTO squads (id, name) VALUES (1, 'first team')
`

func TestSplitStatements(t *testing.T) {
	units := SplitStatements(sampleScript)

	if len(units) != 4 {
		t.Fatalf("expected 4 units, got %d: %q", len(units), units)
	}
	if got := units[0]; got[:12] != "CREATE TABLE" {
		t.Fatalf("unexpected first unit: %q", got)
	}
	if got := units[2]; got[:14] != "CREATE TRIGGER" {
		t.Fatalf("unexpected trigger unit: %q", got)
	}
}

func TestSplitStatements_TriggerBodyStaysWhole(t *testing.T) {
	units := SplitStatements(sampleScript)

	trigger := units[2]
	if !containsAll(trigger, "BEGIN", "UPDATE squads", "END;") {
		t.Fatalf("trigger unit split apart: %q", trigger)
	}
}

func TestSplitStatements_TrailingUnitWithoutSemicolon(t *testing.T) {
	units := SplitStatements(sampleScript)

	last := units[len(units)-1]
	if last[:6] != "INSERT" {
		t.Fatalf("expected trailing insert unit, got %q", last)
	}
}

func TestSplitStatements_CommentsStripped(t *testing.T) {
	for _, unit := range SplitStatements(sampleScript) {
		if strings.Contains(unit, "--") {
			t.Fatalf("comment leaked into unit: %q", unit)
		}
	}
}

func TestSplitStatements_Empty(t *testing.T) {
	if units := SplitStatements("  \n-- only a comment\n"); len(units) != 0 {
		t.Fatalf("expected no units, got %q", units)
	}
}

func TestSchemaLoader_ApplyIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	loader := NewSchemaLoader(db, logging.NewNop())

	if err := loader.Apply(context.Background(), sampleScript); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if err := loader.Apply(context.Background(), sampleScript); err != nil {
		t.Fatalf("second apply must skip existing objects: %v", err)
	}

	var count int
	if err := db.Conn().GetContext(context.Background(), &count, "SELECT COUNT(*) FROM squads"); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row after re-apply, got %d", count)
	}
}

func TestSchemaLoader_AbortsOnBrokenUnit(t *testing.T) {
	db := openTestDB(t)
	loader := NewSchemaLoader(db, logging.NewNop())

	err := loader.Apply(context.Background(), "CREATE TABLE ok (id INTEGER); NOT VALID SQL;")
	if err == nil {
		t.Fatalf("expected apply to fail on the broken unit")
	}
}

func openTestDB(t *testing.T) *DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(context.Background(), path, logging.NewNop())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
