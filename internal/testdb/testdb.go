// Package testdb provides utilities for database integration tests.
// Tests that need a real PostgreSQL instance are gated on the
// DATABASE_URL environment variable and skipped when it is unset.
package testdb

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/nexalabs/nexa-task-api/migrations"
)

// DefaultTimeout bounds individual test database operations.
const DefaultTimeout = 5 * time.Second

// MigrationTableName is the table goose uses to track applied
// migrations, kept consistent with the server's migration runner.
const MigrationTableName = "schema_migrations"

// URL returns the test database URL from the environment, or an empty
// string when integration tests cannot run.
func URL() string {
	return os.Getenv("DATABASE_URL")
}

// SkipIfNotAvailable skips the calling test unless a test database is
// configured.
func SkipIfNotAvailable(t *testing.T) {
	t.Helper()
	if URL() == "" {
		t.Skip("skipping integration test: DATABASE_URL not set")
	}
}

// New opens a connection to the test database, applies the embedded
// migrations, and registers cleanup that truncates the tasks table and
// closes the connection when the test finishes.
func New(t *testing.T) *sql.DB {
	t.Helper()
	SkipIfNotAvailable(t)

	db, err := sql.Open("pgx", URL())
	require.NoError(t, err, "failed to open test database")

	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "failed to ping test database")

	goose.SetBaseFS(migrations.FS)
	goose.SetTableName(MigrationTableName)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, "."), "failed to apply migrations")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
		defer cancel()
		if _, err := db.ExecContext(ctx, "TRUNCATE TABLE tasks"); err != nil {
			t.Logf("failed to truncate tasks table: %v", err)
		}
		if err := db.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	return db
}
