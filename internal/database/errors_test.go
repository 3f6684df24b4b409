package database

import (
	"context"
	"fmt"
	"testing"
)

func TestErrorClassification(t *testing.T) {
	db := openTestDB(t)
	mustExec(t, db, "CREATE TABLE owners (id INTEGER PRIMARY KEY, name TEXT NOT NULL UNIQUE)")
	mustExec(t, db, `CREATE TABLE pets (
		id INTEGER PRIMARY KEY,
		owner_id INTEGER NOT NULL,
		FOREIGN KEY (owner_id) REFERENCES owners (id)
	)`)
	mustExec(t, db, "INSERT INTO owners (id, name) VALUES (1, 'sam')")

	_, uniqueErr := db.Conn().ExecContext(context.Background(), "INSERT INTO owners (id, name) VALUES (2, 'sam')")
	if uniqueErr == nil {
		t.Fatalf("expected unique violation")
	}
	if !IsUniqueViolation(uniqueErr) {
		t.Fatalf("expected IsUniqueViolation, got %v", uniqueErr)
	}
	if !IsConstraintViolation(uniqueErr) {
		t.Fatalf("unique violation is a constraint violation, got %v", uniqueErr)
	}
	if IsForeignKeyViolation(uniqueErr) {
		t.Fatalf("unique violation misclassified as foreign key")
	}

	_, fkErr := db.Conn().ExecContext(context.Background(), "INSERT INTO pets (id, owner_id) VALUES (1, 99)")
	if fkErr == nil {
		t.Fatalf("expected foreign key violation")
	}
	if !IsForeignKeyViolation(fkErr) {
		t.Fatalf("expected IsForeignKeyViolation, got %v", fkErr)
	}

	_, dupErr := db.Conn().ExecContext(context.Background(), "CREATE TABLE owners (id INTEGER PRIMARY KEY)")
	if dupErr == nil {
		t.Fatalf("expected duplicate object failure")
	}
	if !IsDuplicateObject(dupErr) {
		t.Fatalf("expected IsDuplicateObject, got %v", dupErr)
	}
	if IsConstraintViolation(dupErr) {
		t.Fatalf("duplicate object misclassified as constraint violation")
	}
}

func TestIsDuplicateObject_IgnoresOrdinaryErrors(t *testing.T) {
	if IsDuplicateObject(fmt.Errorf("already exists, but not from the driver")) {
		t.Fatalf("plain errors must not classify as duplicate objects")
	}
}
