package service

import (
	"context"
	"database/sql"

	"github.com/phrazzld/adboard-api/internal/store"
)

// inTx runs fn inside a transaction when db is set. Without a db (in-memory
// stores) fn receives a nil transaction and the operation runs directly.
func inTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx *sql.Tx) error) error {
	if db == nil {
		return fn(ctx, nil)
	}
	return store.RunInTransaction(ctx, db, fn)
}
