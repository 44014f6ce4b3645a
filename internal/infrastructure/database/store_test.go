package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/config"
)

func openMemory(t *testing.T) Store {
	t.Helper()
	store, err := Open(context.Background(), &config.DatabaseConfig{Type: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_RunGetAll(t *testing.T) {
	ctx := context.Background()
	store := openMemory(t)
	assert.Equal(t, BackendSQLite, store.Backend())

	_, err := store.Run(ctx, `CREATE TABLE notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		body TEXT NOT NULL,
		done BOOLEAN DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	require.NoError(t, err)

	res, err := store.Run(ctx, "INSERT INTO notes (body) VALUES (?)", "first")
	require.NoError(t, err)
	require.NotNil(t, res.LastInsertID)
	assert.Equal(t, int64(1), *res.LastInsertID)
	assert.Equal(t, int64(1), res.RowsAffected)

	res, err = store.Run(ctx, "INSERT INTO notes (body, done) VALUES (?, ?)", "second", true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), *res.LastInsertID)

	res, err = store.Run(ctx, "UPDATE notes SET done = ? WHERE body <> 'x?'", true)
	require.NoError(t, err)
	assert.Nil(t, res.LastInsertID)
	assert.Equal(t, int64(2), res.RowsAffected)

	row, err := store.Get(ctx, "SELECT id, body, done, created_at FROM notes WHERE id = ?", 2)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "second", row.String("body"))
	assert.True(t, row.Bool("done"))
	assert.False(t, row.Time("created_at").IsZero())

	missing, err := store.Get(ctx, "SELECT id FROM notes WHERE id = ?", 99)
	require.NoError(t, err)
	assert.Nil(t, missing)

	rows, err := store.All(ctx, "SELECT id, body FROM notes ORDER BY id DESC")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(2), rows[0].Int64("id"))

	none, err := store.All(ctx, "SELECT id FROM notes WHERE body = ?", "nope")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	count, err := store.Get(ctx, "SELECT COUNT(*) AS count FROM notes")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count.Int64("count"))
}

func TestStore_ArgumentMismatchFailsBeforeExecution(t *testing.T) {
	ctx := context.Background()
	store := openMemory(t)

	_, err := store.Run(ctx, "CREATE TABLE t (id INTEGER)", 1)
	assert.Error(t, err)

	rows, err := store.All(ctx, "SELECT name FROM sqlite_master WHERE type = 'table' AND name = 't'")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStore_ForeignKeysEnforced(t *testing.T) {
	ctx := context.Background()
	store := openMemory(t)

	_, err := store.Run(ctx, "CREATE TABLE parent (id INTEGER PRIMARY KEY AUTOINCREMENT)")
	require.NoError(t, err)
	_, err = store.Run(ctx, "CREATE TABLE child (id INTEGER PRIMARY KEY AUTOINCREMENT, parent_id INTEGER NOT NULL REFERENCES parent(id) ON DELETE CASCADE)")
	require.NoError(t, err)

	res, err := store.Run(ctx, "INSERT INTO parent DEFAULT VALUES")
	require.NoError(t, err)
	_, err = store.Run(ctx, "INSERT INTO child (parent_id) VALUES (?)", *res.LastInsertID)
	require.NoError(t, err)

	_, err = store.Run(ctx, "INSERT INTO child (parent_id) VALUES (?)", 999)
	assert.Error(t, err)

	_, err = store.Run(ctx, "DELETE FROM parent WHERE id = ?", *res.LastInsertID)
	require.NoError(t, err)
	rows, err := store.All(ctx, "SELECT id FROM child")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestOpen_FallsBackToSQLite(t *testing.T) {
	store, err := Open(context.Background(), &config.DatabaseConfig{
		Type:           "postgresql",
		Host:           "127.0.0.1",
		Port:           1,
		Username:       "helpdesk",
		Database:       "helpdesk",
		ConnectTimeout: 1,
		Path:           ":memory:",
	})
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, BackendSQLite, store.Backend())
	assert.NoError(t, store.Ping(context.Background()))
}
