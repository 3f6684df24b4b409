package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/futclub/clubmanager/internal/platform/logging"
)

const pingTimeout = 5 * time.Second

// DB owns the single shared handle to the embedded store. The pool is capped
// at one open connection so all callers observe the serialized single-writer
// semantics the application is built around; database/sql transparently
// recreates the underlying connection if it was closed.
//
// Lifecycle is explicit: the entry point calls Open once and Close on
// shutdown. Repositories and the transaction runner receive the DB by
// injection, never through package state.
type DB struct {
	conn   *sqlx.DB
	logger *logging.Logger
}

// Open connects to the store file at path with foreign-key enforcement
// turned on and verifies the connection.
func Open(ctx context.Context, path string, logger *logging.Logger) (*DB, error) {
	if path == "" {
		return nil, errors.New("store path cannot be empty")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	dsn := fmt.Sprintf("file:%s?%s", path, dsnOptions())
	conn, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "open store %s", path)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, errors.Wrapf(err, "ping store %s", path)
	}

	logger.InfoContext(ctx, "store opened", "path", path)

	return &DB{conn: conn, logger: logger}, nil
}

func dsnOptions() string {
	opts := url.Values{}
	opts.Set("_foreign_keys", "on")
	opts.Set("_busy_timeout", "5000")
	return opts.Encode()
}

// Conn exposes the underlying handle for repositories.
func (d *DB) Conn() *sqlx.DB {
	return d.conn
}

// Close releases the shared handle. Safe to call once at shutdown.
func (d *DB) Close() error {
	if err := d.conn.Close(); err != nil {
		return errors.Wrap(err, "close store")
	}
	d.logger.Info("store closed")
	return nil
}
