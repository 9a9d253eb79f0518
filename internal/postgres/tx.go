package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type txKey struct{}

// GetTx returns the transaction stored in the context, if any
func GetTx(ctx context.Context) (*sqlx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx, ok
}

// WithTx runs fn inside a transaction. The transaction is stored in the
// context so that repository calls made from fn share it. A nested call
// reuses the outer transaction.
func (db *DB) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := GetTx(ctx); ok {
		return fn(ctx)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	txCtx := context.WithValue(ctx, txKey{}, tx)
	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			db.logger.Errorw("error rolling back transaction", "error", rbErr)
		}
		return err
	}

	return tx.Commit()
}
