package cache

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetGet(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.Get("GET circles")
	assert.False(t, ok)

	require.NoError(t, store.Set("GET circles", []byte(`{"circles": []}`)))

	body, ok := store.Get("GET circles")
	require.True(t, ok)
	assert.JSONEq(t, `{"circles": []}`, string(body))
}

func TestStore_SetReplaces(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set("k", []byte("one")))
	require.NoError(t, store.Set("k", []byte("two")))

	body, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, "two", string(body))
}

func TestStore_CloseRemovesDirectory(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	dir := store.Dir()
	_, statErr := os.Stat(dir)
	require.NoError(t, statErr)

	require.NoError(t, store.Close())

	_, statErr = os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "session directory must be released on close")
}

func TestStore_IsolatedSessions(t *testing.T) {
	root := t.TempDir()

	a, err := NewStore(root)
	require.NoError(t, err)
	defer a.Close()

	b, err := NewStore(root)
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, a.Set("k", []byte("from-a")))
	_, ok := b.Get("k")
	assert.False(t, ok, "stores must not share state")
}
