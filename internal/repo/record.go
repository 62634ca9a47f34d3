package repo

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkordes/namebook/internal/domain"
)

// RecordRepo defines the persistence operations for Records.
// The service layer depends on this interface, not the concrete SQLite
// implementation, which allows the service to be unit-tested with a mock.
type RecordRepo interface {
	// Create inserts a new record and returns it with its database-assigned id.
	// The schema rejects names longer than domain.MaxNameLength; any rejected
	// write is reported as domain.ErrStorage.
	Create(ctx context.Context, name string) (domain.Record, error)

	// List returns every record ordered by id ascending.
	List(ctx context.Context) ([]domain.Record, error)
}

// sqliteRecordRepo is the SQLite implementation of RecordRepo.
type sqliteRecordRepo struct {
	db db
}

// NewRecordRepo constructs a RecordRepo backed by the provided db connection.
// In production pass the *sql.DB returned by Open; in tests a *sql.Tx works too.
func NewRecordRepo(db db) RecordRepo {
	return &sqliteRecordRepo{db: db}
}

// Create inserts a new record row and returns the full persisted record.
// Names over domain.MaxNameLength characters or containing NUL are rejected
// before reaching SQLite, whose length() stops counting at the first NUL.
func (r *sqliteRecordRepo) Create(ctx context.Context, name string) (domain.Record, error) {
	if strings.ContainsRune(name, 0) {
		return domain.Record{}, fmt.Errorf("repo.RecordRepo.Create: %w: name contains NUL", domain.ErrStorage)
	}
	if n := utf8.RuneCountInString(name); n > domain.MaxNameLength {
		return domain.Record{}, fmt.Errorf("repo.RecordRepo.Create: %w: name is %d characters, max %d",
			domain.ErrStorage, n, domain.MaxNameLength)
	}

	q, args, err := builder.
		Insert("records").
		Columns("name").
		Values(name).
		Suffix("RETURNING id, name").
		ToSql()
	if err != nil {
		return domain.Record{}, fmt.Errorf("repo.RecordRepo.Create: build: %w", err)
	}

	var rec domain.Record
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&rec.ID, &rec.Name); err != nil {
		return domain.Record{}, fmt.Errorf("repo.RecordRepo.Create: %w: %w", domain.ErrStorage, err)
	}
	return rec, nil
}

// List returns all records in insertion (primary key) order.
// The result is fully read before returning; an empty table yields an empty slice.
func (r *sqliteRecordRepo) List(ctx context.Context) ([]domain.Record, error) {
	q, args, err := builder.
		Select("id", "name").
		From("records").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("repo.RecordRepo.List: build: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("repo.RecordRepo.List: %w: %w", domain.ErrStorage, err)
	}
	defer rows.Close()

	records := make([]domain.Record, 0)
	for rows.Next() {
		var rec domain.Record
		if err := rows.Scan(&rec.ID, &rec.Name); err != nil {
			return nil, fmt.Errorf("repo.RecordRepo.List: scan: %w: %w", domain.ErrStorage, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RecordRepo.List: rows: %w: %w", domain.ErrStorage, err)
	}

	return records, nil
}
