package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
)

func TestInTransaction_CommitsOnSuccess(t *testing.T) {
	db := openTestDB(t)
	mustExec(t, db, "CREATE TABLE counters (id INTEGER PRIMARY KEY, value INTEGER NOT NULL)")

	err := db.InTransaction(context.Background(), func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(context.Background(), "INSERT INTO counters (id, value) VALUES (1, 10)"); err != nil {
			return err
		}
		_, err := tx.ExecContext(context.Background(), "UPDATE counters SET value = value + 5 WHERE id = 1")
		return err
	})
	if err != nil {
		t.Fatalf("transaction: %v", err)
	}

	var value int
	if err := db.Conn().GetContext(context.Background(), &value, "SELECT value FROM counters WHERE id = 1"); err != nil {
		t.Fatalf("read counter: %v", err)
	}
	if value != 15 {
		t.Fatalf("expected committed value 15, got %d", value)
	}
}

func TestInTransaction_RollsBackEveryWrite(t *testing.T) {
	db := openTestDB(t)
	mustExec(t, db, "CREATE TABLE counters (id INTEGER PRIMARY KEY, value INTEGER NOT NULL)")

	boom := fmt.Errorf("boom")
	err := db.InTransaction(context.Background(), func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(context.Background(), "INSERT INTO counters (id, value) VALUES (1, 10)"); err != nil {
			return err
		}
		return boom
	})

	if !errors.Is(err, ErrTxFailed) {
		t.Fatalf("expected ErrTxFailed, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected original cause to be preserved, got %v", err)
	}

	var count int
	if err := db.Conn().GetContext(context.Background(), &count, "SELECT COUNT(*) FROM counters"); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rollback to leave no rows, got %d", count)
	}
}

func mustExec(t *testing.T, db *DB, query string) {
	t.Helper()
	if _, err := db.Conn().ExecContext(context.Background(), query); err != nil {
		t.Fatalf("exec %q: %v", query, err)
	}
}
