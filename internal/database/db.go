package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
)

// DB is the narrow store surface the repositories are written against.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	// SQLDB exposes a database/sql handle for the migration runner.
	SQLDB() *sql.DB
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}

// IsNoRows reports whether err is the "no rows" result of either driver path.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}
