package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replog/internal/ports"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_SetAndGet(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sessions", []byte(`[{"id":"a"}]`)))

	value, err := store.Get(ctx, "sessions")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"a"}]`), value)
}

func TestSQLiteStore_GetMissingKey(t *testing.T) {
	store := newTestSQLiteStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ports.ErrKeyNotFound)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sessions", []byte("old")))
	require.NoError(t, store.Set(ctx, "sessions", []byte("new")))

	value, err := store.Get(ctx, "sessions")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), value)
}

func TestSQLiteStore_ReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "sessions", []byte("durable")))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, "sessions")
	require.NoError(t, err)
	assert.Equal(t, []byte("durable"), value)
}
