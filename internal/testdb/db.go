//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/adboard-api/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// TestTimeout bounds setup operations against the test database.
const TestTimeout = 10 * time.Second

var (
	migrateOnce sync.Once
	migrateErr  error
)

// GetTestDBWithT opens the test database, applies the schema once per test
// binary and closes the connection when the test ends. The test is skipped
// when no database URL is configured.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skipf("%s / %s not set - skipping integration test", EnvTestDatabaseURL, EnvDatabaseURL)
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "open %s", maskDatabaseURL(dbURL))
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "ping %s", maskDatabaseURL(dbURL))

	migrateOnce.Do(func() {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		if migrateErr = postgres.Migrate(ctx, db, "reset", logger); migrateErr != nil {
			return
		}
		migrateErr = postgres.Migrate(ctx, db, "up", logger)
	})
	require.NoError(t, migrateErr, "apply migrations")

	return db
}
