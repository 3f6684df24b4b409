package database

import (
	"strings"

	"github.com/cockroachdb/errors"
	sqlite3 "github.com/mattn/go-sqlite3"
)

// Sentinels callers can branch on with errors.Is.
var (
	// ErrTxFailed marks any failure inside a unit of work; the work has been
	// rolled back by the time callers see it.
	ErrTxFailed = errors.New("transaction failed")
)

// IsConstraintViolation reports whether err is a uniqueness or foreign-key
// failure surfaced by the store.
func IsConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}

// IsUniqueViolation reports whether err is specifically a unique-index failure.
func IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

// IsForeignKeyViolation reports whether err is a foreign-key failure.
func IsForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}

// IsDuplicateObject reports whether err means the DDL target already exists.
// SQLite reports duplicate tables, indexes, and triggers under the generic
// SQLITE_ERROR code, so after the typed check the message is the only
// discriminator the driver exposes.
func IsDuplicateObject(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	if sqliteErr.Code != sqlite3.ErrError {
		return false
	}
	return strings.Contains(strings.ToLower(sqliteErr.Error()), "already exists")
}
