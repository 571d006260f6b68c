package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// setupStore creates an open Store backed by a temp directory, closed
// automatically at test end.
func setupStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(types.Config{DataDir: t.TempDir()})
	require.NoError(t, s.Open())
	t.Cleanup(func() { s.Close() })
	return s
}

func strptr(v string) *string { return &v }

func TestOpenIsIdempotent(t *testing.T) {
	s := NewStore(types.Config{DataDir: t.TempDir()})
	require.NoError(t, s.Open())
	defer s.Close()

	assert.NoError(t, s.Open())
}

func TestOpenCreatesDatabaseFile(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(types.Config{DataDir: filepath.Join(dir, "nested")})
	require.NoError(t, s.Open())
	defer s.Close()

	_, err := os.Stat(filepath.Join(dir, "nested", dbFileName))
	assert.NoError(t, err)
}

func TestOpenPreservesExistingData(t *testing.T) {
	dir := t.TempDir()

	s := NewStore(types.Config{DataDir: dir})
	require.NoError(t, s.Open())
	require.NoError(t, s.Insert(types.Record{ID: "1", Name: "Ravi"}))
	require.NoError(t, s.Close())

	reopened := NewStore(types.Config{DataDir: dir})
	require.NoError(t, reopened.Open())
	defer reopened.Close()

	records, err := reopened.ListAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Ravi", records[0].Name)
}

func TestOpenStorageUnavailable(t *testing.T) {
	// A data dir path that collides with an existing file cannot be created.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	s := NewStore(types.Config{DataDir: blocker})
	err := s.Open()
	assert.ErrorIs(t, err, types.ErrStorageUnavailable)
}

func TestCloseIsIdempotent(t *testing.T) {
	s := NewStore(types.Config{DataDir: t.TempDir()})
	require.NoError(t, s.Open())
	require.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestOperationsOnClosedStore(t *testing.T) {
	s := NewStore(types.Config{DataDir: t.TempDir()})

	_, err := s.ListAll()
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	_, err = s.ListByCategory(types.CategoryAdmin)
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	_, err = s.SearchByName("x")
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	assert.ErrorIs(t, s.Insert(types.Record{ID: "1", Name: "x"}), types.ErrStoreClosed)
	assert.ErrorIs(t, s.Update(types.Record{ID: "1", Name: "x"}), types.ErrStoreClosed)
	assert.ErrorIs(t, s.Delete("1"), types.ErrStoreClosed)
	assert.ErrorIs(t, s.BulkUpsert(nil), types.ErrStoreClosed)
}
