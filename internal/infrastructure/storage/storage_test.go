package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nooros/backend/internal/domain/persistence"
)

func backends(t *testing.T) map[string]Backend {
	t.Helper()
	dir := t.TempDir()

	file, err := Open(BackendFile, filepath.Join(dir, "layout"))
	require.NoError(t, err)
	db, err := Open(BackendSQLite, filepath.Join(dir, "db", "layout.db"))
	require.NoError(t, err)

	out := map[string]Backend{
		BackendMemory: NewMemory(),
		BackendFile:   file,
		BackendSQLite: db,
	}
	t.Cleanup(func() {
		for _, b := range out {
			b.Close()
		}
	})
	return out
}

func TestBackendContract(t *testing.T) {
	ctx := context.Background()

	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := b.Get(ctx, persistence.WindowsKey)
			assert.ErrorIs(t, err, persistence.ErrNotFound)

			require.NoError(t, b.Set(ctx, persistence.WindowsKey, []byte(`[{"appId":"about"}]`)))
			got, err := b.Get(ctx, persistence.WindowsKey)
			require.NoError(t, err)
			assert.Equal(t, `[{"appId":"about"}]`, string(got))

			require.NoError(t, b.Set(ctx, persistence.WindowsKey, []byte(`[]`)))
			got, err = b.Get(ctx, persistence.WindowsKey)
			require.NoError(t, err)
			assert.Equal(t, `[]`, string(got))

			require.NoError(t, b.Delete(ctx, persistence.WindowsKey))
			_, err = b.Get(ctx, persistence.WindowsKey)
			assert.ErrorIs(t, err, persistence.ErrNotFound)

			require.NoError(t, b.Delete(ctx, persistence.IconsKey), "deleting a missing key is fine")
		})
	}
}

func TestMemoryCopiesValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	value := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", value))
	value[0] = 'z'

	got, _ := m.Get(ctx, "k")
	assert.Equal(t, "abc", string(got))
}

func TestFileRejectsUnsafeKeys(t *testing.T) {
	f, err := NewFile(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, f.Set(context.Background(), "../escape", []byte("x")))
	_, err = f.Get(context.Background(), "a/b")
	assert.Error(t, err)
}

func TestFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	require.NoError(t, err)

	require.NoError(t, f.Set(context.Background(), persistence.IconsKey, []byte("[]")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, persistence.IconsKey+".json", entries[0].Name())
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "layout.db")

	db, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, db.Set(ctx, persistence.IconsKey, []byte(`[{"id":"about"}]`)))
	require.NoError(t, db.Close())

	db, err = OpenSQLite(path)
	require.NoError(t, err)
	defer db.Close()

	got, err := db.Get(ctx, persistence.IconsKey)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"about"}]`, string(got))
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("redis", "")
	assert.Error(t, err)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, NewMemory().Set(ctx, "k", nil))
}
