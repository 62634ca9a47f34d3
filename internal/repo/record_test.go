package repo_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/namebook/internal/domain"
	"github.com/pkordes/namebook/internal/repo"
	"github.com/pkordes/namebook/testutil"
)

// newTestRepo returns a RecordRepo backed by a fresh, migrated SQLite file.
// Each test gets its own file, so no cleanup SQL is needed.
func newTestRepo(t *testing.T) repo.RecordRepo {
	t.Helper()
	return repo.NewRecordRepo(testutil.NewSQLDB(t))
}

func TestRecordRepo_Create_FreshStore(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	got, err := r.Create(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, domain.Record{ID: 1, Name: "Alice"}, got)

	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Record{{ID: 1, Name: "Alice"}}, all)
}

func TestRecordRepo_Create_IDsStrictlyIncrease(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	var prev int64
	for _, name := range []string{"Alice", "Bob", "Carol", "Dave"} {
		got, err := r.Create(ctx, name)
		require.NoError(t, err)
		assert.Greater(t, got.ID, prev, "id for %q should exceed the previous id", name)
		prev = got.ID
	}
}

func TestRecordRepo_Create_RoundTrip(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	names := []string{
		"x",
		"Zoë Ångström",
		"名前",
		"O'Brien; DROP TABLE records;--",
		strings.Repeat("a", domain.MaxNameLength),
		strings.Repeat("é", domain.MaxNameLength), // 80 characters, 160 bytes
	}

	seen := make(map[int64]bool)
	for _, name := range names {
		created, err := r.Create(ctx, name)
		require.NoError(t, err, "create %q", name)
		assert.False(t, seen[created.ID], "id %d reused", created.ID)
		seen[created.ID] = true

		all, err := r.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, all, created)
	}
}

func TestRecordRepo_Create_NameTooLong(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{
		strings.Repeat("a", domain.MaxNameLength+1),
		strings.Repeat("é", domain.MaxNameLength+1),
		// SQLite's length() stops at NUL, so this would count as 1 character.
		"a\x00" + strings.Repeat("b", 200),
	} {
		_, err := r.Create(ctx, name)

		require.Error(t, err, "name of %d bytes", len(name))
		assert.ErrorIs(t, err, domain.ErrStorage)
	}

	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "rejected write must not leave a row behind")
}

func TestRecordRepo_Create_NULName(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"\x00", "\x00x", "x\x00"} {
		_, err := r.Create(ctx, name)
		assert.ErrorIs(t, err, domain.ErrStorage, "name %q", name)
	}

	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRecordRepo_Create_ClosedDatabase(t *testing.T) {
	db := testutil.NewSQLDB(t)
	r := repo.NewRecordRepo(db)
	require.NoError(t, db.Close())

	_, err := r.Create(context.Background(), "Alice")

	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestRecordRepo_Create_InsideTransaction(t *testing.T) {
	db := testutil.NewSQLDB(t)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	_, err = repo.NewRecordRepo(tx).Create(ctx, "Alice")
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	all, err := repo.NewRecordRepo(db).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "rolled back insert must not be visible")
}

func TestRecordRepo_List_Empty(t *testing.T) {
	r := newTestRepo(t)

	got, err := r.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRecordRepo_List_Ordering(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Zed", "Amy", "Mo"} {
		_, err := r.Create(ctx, name)
		require.NoError(t, err)
	}

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Zed", got[0].Name, "records come back in insertion order, not by name")
	assert.Equal(t, "Amy", got[1].Name)
	assert.Equal(t, "Mo", got[2].Name)
}

func TestRecordRepo_List_RepeatedReadsAreIdentical(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Alice", "Bob"} {
		_, err := r.Create(ctx, name)
		require.NoError(t, err)
	}

	first, err := r.List(ctx)
	require.NoError(t, err)
	second, err := r.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMigrate_Idempotent(t *testing.T) {
	path := testutil.DBPath(t)
	ctx := context.Background()

	db, err := repo.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, repo.Migrate(ctx, db))

	_, err = repo.NewRecordRepo(db).Create(ctx, "Alice")
	require.NoError(t, err)

	// Running migrations again on the same handle is a no-op.
	require.NoError(t, repo.Migrate(ctx, db))
	require.NoError(t, db.Close())

	// So is running them after a restart.
	db, err = repo.Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, repo.Migrate(ctx, db))

	got, err := repo.NewRecordRepo(db).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Record{{ID: 1, Name: "Alice"}}, got)
}

func TestOpen_CreatesFile(t *testing.T) {
	path := testutil.DBPath(t)

	db, err := repo.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = os.Stat(path)
	assert.NoError(t, err, "database file should exist after Open")
}

func TestOpen_BlankPath(t *testing.T) {
	_, err := repo.Open(context.Background(), "  ")

	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestOpen_UnreachableDirectory(t *testing.T) {
	_, err := repo.Open(context.Background(), t.TempDir()+"/missing/dir/namebook.db")

	assert.ErrorIs(t, err, domain.ErrStorage)
}
