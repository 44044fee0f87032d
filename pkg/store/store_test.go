package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courierworks/glovoadmin/pkg/types"
)

func TestOpenValidatesConfig(t *testing.T) {
	_, err := Open(types.Config{})
	assert.ErrorIs(t, err, types.ErrBackendEmpty)

	_, err = Open(types.Config{Backend: "redis"})
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestOpenBackends(t *testing.T) {
	for _, backend := range []string{types.BackendJSON, types.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			st, err := Open(types.Config{Backend: backend, DataDir: t.TempDir()})
			require.NoError(t, err)
			defer st.Close()

			require.NoError(t, st.Write("users", []byte(`[]`)))
			data, err := st.Read("users")
			require.NoError(t, err)
			assert.Equal(t, []byte(`[]`), data)
		})
	}
}

func TestReadCollection(t *testing.T) {
	st, err := Open(types.Config{Backend: types.BackendJSON, DataDir: t.TempDir()})
	require.NoError(t, err)
	defer st.Close()

	t.Run("absent key reads as empty collection", func(t *testing.T) {
		users, err := ReadCollection[types.User](st, types.CollectionUsers)
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("roundtrip", func(t *testing.T) {
		in := []types.User{{ID: 1, Name: "Karim"}, {ID: 2, Name: "Salma"}}
		require.NoError(t, WriteCollection(st, types.CollectionUsers, in))

		out, err := ReadCollection[types.User](st, types.CollectionUsers)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("malformed value fails with ErrCorruptData", func(t *testing.T) {
		require.NoError(t, st.Write("broken", []byte(`{not json`)))
		_, err := ReadCollection[types.User](st, "broken")
		assert.ErrorIs(t, err, types.ErrCorruptData)
	})

	t.Run("stored null reads as empty collection", func(t *testing.T) {
		require.NoError(t, st.Write("nulled", []byte(`null`)))
		out, err := ReadCollection[types.User](st, "nulled")
		require.NoError(t, err)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})
}

func TestWriteCollectionNilSlice(t *testing.T) {
	st, err := Open(types.Config{Backend: types.BackendJSON, DataDir: t.TempDir()})
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, WriteCollection[types.User](st, types.CollectionUsers, nil))

	raw, err := st.Read(types.CollectionUsers)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), raw, "nil is written as an empty array, never null")
}

func TestReadWriteObject(t *testing.T) {
	st, err := Open(types.Config{Backend: types.BackendJSON, DataDir: t.TempDir()})
	require.NoError(t, err)
	defer st.Close()

	t.Run("absent key reads as nil", func(t *testing.T) {
		sess, err := ReadObject[types.Session](st, types.KeySession)
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("roundtrip", func(t *testing.T) {
		in := types.Session{Name: "Admin", Role: types.RoleAdmin, Email: "a@b.c", Token: "tok"}
		require.NoError(t, WriteObject(st, types.KeySession, in))

		out, err := ReadObject[types.Session](st, types.KeySession)
		require.NoError(t, err)
		require.NotNil(t, out)
		assert.Equal(t, in, *out)
	})
}
