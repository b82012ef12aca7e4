package filekv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteRemove(t *testing.T) {
	store := New(t.TempDir())
	require.True(t, store.Available())

	_, ok := store.Read("todos")
	assert.False(t, ok, "an absent key should read as absent")

	err := store.Write("todos", []byte(`[{"id":"1"}]`))
	require.NoError(t, err)

	data, ok := store.Read("todos")
	require.True(t, ok)
	assert.Equal(t, []byte(`[{"id":"1"}]`), data)

	err = store.Write("todos", []byte(`[]`))
	require.NoError(t, err)

	data, ok = store.Read("todos")
	require.True(t, ok)
	assert.Equal(t, []byte(`[]`), data, "a write should replace the previous value")

	err = store.Remove("todos")
	require.NoError(t, err)

	_, ok = store.Read("todos")
	assert.False(t, ok)

	err = store.Remove("todos")
	assert.NoError(t, err, "removing an absent key should not be an error")

	assert.NoError(t, store.Close())
}

func TestValuesSurviveReopen(t *testing.T) {
	dir := t.TempDir()

	store := New(dir)
	err := store.Write("users", []byte(`[{"id":"u1"}]`))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened := New(dir)
	data, ok := reopened.Read("users")
	require.True(t, ok)
	assert.Equal(t, []byte(`[{"id":"u1"}]`), data)
}

func TestDegradedStore(t *testing.T) {
	// A regular file in place of the directory makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	store := New(filepath.Join(blocker, "state"))
	assert.False(t, store.Available())

	assert.NoError(t, store.Write("todos", []byte(`[]`)), "a degraded store should drop writes silently")

	_, ok := store.Read("todos")
	assert.False(t, ok, "a degraded store should read absent")

	assert.NoError(t, store.Remove("todos"))
	assert.NoError(t, store.Close())
}

func TestEmptyDirIsDegraded(t *testing.T) {
	store := New("")
	assert.False(t, store.Available())
}
