// Package testdb connects integration tests to a real PostgreSQL database.
//
// Tests call GetTestDBWithT to obtain a migrated connection, or are skipped
// when no database URL is configured. WithTx runs a test body inside a
// transaction that is always rolled back, so tests leave no rows behind and
// can run in parallel:
//
//	func TestUserStore(t *testing.T) {
//	    t.Parallel()
//	    db := testdb.GetTestDBWithT(t)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        users := postgres.NewPostgresUserStore(tx, hasher, logger)
//	        // ...
//	    })
//	}
//
// Files in this package are only built with the integration tag.
package testdb
