package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// execer is the slice of sqlx satisfied by both *sqlx.DB and *sqlx.Tx, so
// every query method works unchanged inside a unit of work.
type execer interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

// ParseError reports a temporal column whose stored text could not be
// decoded under any accepted format.
type ParseError struct {
	Column string
	Value  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse temporal column %s: unrecognized value %q", e.Column, e.Value)
}

// parseTemporal decodes the store's temporal text columns. Historic rows mix
// formats, so decoding is tolerant: an all-digit value is epoch milliseconds,
// a value with a time-of-day suffix is truncated to its date part, and
// anything else must be an ISO date. A blank value never reaches here;
// callers treat blank as absence.
func parseTemporal(column, value string) (time.Time, error) {
	if isAllDigits(value) {
		millis, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return time.Time{}, &ParseError{Column: column, Value: value}
		}
		return time.UnixMilli(millis).UTC(), nil
	}

	datePart := value
	if idx := strings.IndexByte(value, ' '); idx > 0 {
		datePart = value[:idx]
	}

	t, err := time.Parse(dateLayout, datePart)
	if err != nil {
		return time.Time{}, &ParseError{Column: column, Value: value}
	}
	return t, nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseNullableTemporal maps NULL and blank to absence.
func parseNullableTemporal(column string, v sql.NullString) (*time.Time, error) {
	if !v.Valid || strings.TrimSpace(v.String) == "" {
		return nil, nil
	}
	t, err := parseTemporal(column, strings.TrimSpace(v.String))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseRequiredTemporal maps NULL and blank to the zero time.
func parseRequiredTemporal(column string, v sql.NullString) (time.Time, error) {
	if !v.Valid || strings.TrimSpace(v.String) == "" {
		return time.Time{}, nil
	}
	return parseTemporal(column, strings.TrimSpace(v.String))
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDateTime(t time.Time) string {
	return t.UTC().Format(dateTimeLayout)
}

func nullableDate(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatDate(*t), Valid: true}
}

func nullableDateTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatDateTime(*t), Valid: true}
}

func nullInt64ToIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int64)
	return &out
}

func intPtrToNullInt64(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullInt64ToInt64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	out := v.Int64
	return &out
}

func int64PtrToNullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullStringToString(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

func stringToNullString(v string) sql.NullString {
	if v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}
