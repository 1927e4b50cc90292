package store

import (
	"context"
	"database/sql"
)

// DBTX is the subset of *sql.DB used by the SQL stores. *sql.Tx satisfies it
// too, so a store can be pointed at a transaction in tests.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
