// Package testutil provides shared helpers for integration tests.
// Every helper works against a throwaway SQLite file under t.TempDir(), so
// integration tests need no external database and never share state.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/pkordes/namebook/internal/repo"
)

// NewSQLDB opens a fresh SQLite database with every migration applied.
// The handle is closed automatically when the test finishes.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db := NewRawSQLDB(t)
	if err := repo.Migrate(context.Background(), db); err != nil {
		t.Fatalf("testutil.NewSQLDB: migrate: %v", err)
	}
	return db
}

// NewRawSQLDB opens a fresh, empty SQLite database with no migrations applied.
// Use this when the test drives goose itself.
// The handle is closed automatically when the test finishes.
func NewRawSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := repo.Open(context.Background(), DBPath(t))
	if err != nil {
		t.Fatalf("testutil.NewRawSQLDB: open: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// DBPath returns a path for a database file that does not exist yet, inside
// a directory removed when the test finishes.
func DBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "namebook.db")
}
