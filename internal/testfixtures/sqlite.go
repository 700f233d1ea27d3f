// Package testfixtures provides helpers shared by integration-style tests.
package testfixtures

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/locvowork/hrms_lite/internal/database"
)

// SQLiteConfig points at a fresh database file in a temporary directory.
func SQLiteConfig(tb testing.TB) database.Config {
	tb.Helper()
	return database.Config{
		Driver:     database.DriverSQLite,
		SQLitePath: filepath.Join(tb.TempDir(), "hrms.db"),
	}
}

// OpenSQLite opens and migrates the database described by cfg. It is closed
// automatically when the test finishes.
func OpenSQLite(tb testing.TB, cfg database.Config) *sql.DB {
	tb.Helper()

	ctx := context.Background()
	db, err := database.Open(ctx, cfg)
	if err != nil {
		tb.Fatalf("failed to open sqlite: %v", err)
	}
	tb.Cleanup(func() { _ = db.Close() })

	if err := database.Migrate(ctx, db, database.DriverSQLite); err != nil {
		tb.Fatalf("failed to migrate sqlite: %v", err)
	}
	return db
}

// NewSQLiteDB opens a migrated SQLite database in a temporary directory.
func NewSQLiteDB(tb testing.TB) *sql.DB {
	tb.Helper()
	return OpenSQLite(tb, SQLiteConfig(tb))
}
