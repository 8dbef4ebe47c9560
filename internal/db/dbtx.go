package db

import (
	"context"
	"database/sql"
)

// DBTX is the slice of database/sql that both *sql.DB and *sql.Tx
// provide. Repositories take it instead of a concrete handle, so the
// group-stat recompute can run the same repository code inside a
// transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Both standard handles must keep satisfying DBTX.
var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
