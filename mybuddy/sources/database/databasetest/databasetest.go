// Package databasetest opens a throwaway SQLite store for tests.
package databasetest

import (
	"context"
	"path/filepath"
	"testing"

	"mybuddy/mybuddy/config"
	"mybuddy/mybuddy/sources/database"
)

// New returns a migrated database in t's temp dir, closed on cleanup.
func New(t testing.TB) *database.Database {
	t.Helper()
	cfg := config.Config{
		DBDriver: "sqlite",
		DBPath:   filepath.Join(t.TempDir(), "test.db"),
	}
	db, err := database.NewDatabase(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(db.Close)
	return db
}
