// Package repo contains all database access logic for the namebook server.
// Each resource has its own file with an interface and a SQLite implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver for database/sql

	"github.com/pkordes/namebook/internal/domain"
	"github.com/pkordes/namebook/migrations"
)

// builder produces SQLite-flavoured statements with ? placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// db is the minimal interface satisfied by *sql.DB, *sql.Conn, and *sql.Tx.
// Accepting this interface instead of *sql.DB directly lets tests run a repo
// inside a transaction or against a closed handle.
type db interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Open opens the SQLite database file at path, creating it if it does not
// exist, and verifies it is reachable.
// The caller owns the returned handle and must Close it.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("repo.Open: %w: database path is required", domain.ErrStorage)
	}

	dsn := filepath.Clean(path) +
		"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("repo.Open: %w: %w", domain.ErrStorage, err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("repo.Open: ping: %w: %w", domain.ErrStorage, err)
	}
	return sqlDB, nil
}

// Migrate applies every pending embedded migration. It is idempotent:
// calling it against an up-to-date database applies nothing and leaves
// existing rows untouched, so it is safe to run on every process start.
func Migrate(ctx context.Context, sqlDB *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, sqlDB, migrations.FS)
	if err != nil {
		return fmt.Errorf("repo.Migrate: create goose provider: %w: %w", domain.ErrStorage, err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("repo.Migrate: %w: %w", domain.ErrStorage, err)
	}
	return nil
}
