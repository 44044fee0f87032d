package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courierworks/glovoadmin/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(types.Config{Backend: types.BackendJSON, DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestReadAbsentKey(t *testing.T) {
	st := openTestStore(t)

	data, err := st.Read("users")
	require.NoError(t, err)
	assert.Nil(t, data, "a never-written key reads as nil, not an error")
}

func TestWriteReadRoundtrip(t *testing.T) {
	st := openTestStore(t)

	payload := []byte(`[{"id":1,"name":"Karim"}]`)
	require.NoError(t, st.Write("users", payload))

	data, err := st.Read("users")
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestWriteReplacesValue(t *testing.T) {
	st := openTestStore(t)

	require.NoError(t, st.Write("users", []byte(`[1]`)))
	require.NoError(t, st.Write("users", []byte(`[2]`)))

	data, err := st.Read("users")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[2]`), data, "last writer wins")
}

func TestDeleteIsIdempotent(t *testing.T) {
	st := openTestStore(t)

	require.NoError(t, st.Write("users", []byte(`[]`)))
	require.NoError(t, st.Delete("users"))

	data, err := st.Read("users")
	require.NoError(t, err)
	assert.Nil(t, data)

	// Deleting again, or deleting a key that never existed, is fine.
	require.NoError(t, st.Delete("users"))
	require.NoError(t, st.Delete("nothing"))
}

func TestCloseIsIdempotent(t *testing.T) {
	st := openTestStore(t)

	require.NoError(t, st.Close())
	require.NoError(t, st.Close())

	_, err := st.Read("users")
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	assert.ErrorIs(t, st.Write("users", []byte(`[]`)), types.ErrStoreClosed)
	assert.ErrorIs(t, st.Delete("users"), types.ErrStoreClosed)
}

func TestInvalidKeys(t *testing.T) {
	st := openTestStore(t)

	_, err := st.Read("")
	assert.ErrorIs(t, err, types.ErrCollectionEmpty)

	assert.Error(t, st.Write("../escape", []byte(`[]`)))
	assert.Error(t, st.Write("a/b", []byte(`[]`)))
	assert.Error(t, st.Write(".", []byte(`[]`)))
}

func TestFilePerKeyLayout(t *testing.T) {
	dir := t.TempDir()
	st, err := Open(types.Config{Backend: types.BackendJSON, DataDir: dir})
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Write("orders", []byte(`[]`)))

	_, err = os.Stat(filepath.Join(dir, "orders.json"))
	assert.NoError(t, err, "each key is stored as <key>.json")
}

func TestNoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	st, err := Open(types.Config{Backend: types.BackendJSON, DataDir: dir})
	require.NoError(t, err)
	defer st.Close()

	for i := 0; i < 10; i++ {
		require.NoError(t, st.Write("users", []byte(`[]`)))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp")
	}
}

func TestOpenCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	st, err := Open(types.Config{Backend: types.BackendJSON, DataDir: dir})
	require.NoError(t, err)
	defer st.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
