// Package dbx holds the database/sql helpers the accounts table is reseeded
// through.
package dbx

import (
	"context"
	"database/sql"
	"fmt"
)

// Execer runs statements that return no rows. *sql.DB and *sql.Tx both
// satisfy it.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Beginner opens transactions; *sql.DB satisfies it.
type Beginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// WithTx runs fn inside a transaction. It commits when fn returns nil and
// rolls back on error or panic; panics are re-raised after the rollback.
func WithTx(ctx context.Context, db Beginner, fn func(ctx context.Context, tx Execer) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("commit: %w", cerr)
		}
	}()

	return fn(ctx, tx)
}

// ExecEach runs query once for each of n rows, taking the arguments of row i
// from args. It stops at the first failing row.
func ExecEach(ctx context.Context, ex Execer, query string, n int, args func(i int) []any) error {
	for i := range n {
		if _, err := ex.ExecContext(ctx, query, args(i)...); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}
