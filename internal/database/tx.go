package database

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
)

// TxFunc is a caller-supplied unit of work. Every write inside it either
// commits together or rolls back together.
type TxFunc func(tx *sqlx.Tx) error

// InTransaction runs fn atomically against the shared handle. On success the
// work is committed; on any failure it is rolled back and the original error
// is returned marked with ErrTxFailed. A failed rollback is logged, not
// re-raised. Not reentrant: units of work must not nest.
func (d *DB) InTransaction(ctx context.Context, fn TxFunc) error {
	tx, err := d.conn.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Mark(errors.Wrap(err, "begin transaction"), ErrTxFailed)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			d.logger.ErrorContext(ctx, "rollback failed", "error", rbErr)
		}
		return errors.Mark(errors.Wrap(err, "unit of work failed"), ErrTxFailed)
	}

	if err := tx.Commit(); err != nil {
		return errors.Mark(errors.Wrap(err, "commit transaction"), ErrTxFailed)
	}

	return nil
}
