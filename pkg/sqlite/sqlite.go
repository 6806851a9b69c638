// Package sqlite opens SQLite databases and applies their schema migrations.
package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3"
)

const defaultBusyTimeout = 5 * time.Second

// DSN builds the go-sqlite3 data source name for the database file at path.
func DSN(path string, busyTimeout time.Duration) string {
	if busyTimeout <= 0 {
		busyTimeout = defaultBusyTimeout
	}
	return fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL&_foreign_keys=on", path, busyTimeout.Milliseconds())
}

// New opens the SQLite database described by dsn.
//
// SQLite allows a single writer, so the pool is limited to one connection and
// concurrent callers queue on it instead of failing with SQLITE_BUSY.
func New(ctx context.Context, dsn string) (*sqlx.DB, error) {
	const op = "sqlite.New"

	db, err := sqlx.ConnectContext(ctx, "sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect to database: %w", op, err)
	}

	db.SetMaxOpenConns(1)

	return db, nil
}
