package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kvContract exercises the behavior every backend must share.
func kvContract(t *testing.T, kv KV) {
	t.Helper()

	assert.True(t, kv.Available())

	_, ok := kv.Get("absent")
	assert.False(t, ok)

	require.NoError(t, kv.Set(BoardKey, []byte(`{"a":1}`)))
	got, ok := kv.Get(BoardKey)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), got)

	// Overwrite
	require.NoError(t, kv.Set(BoardKey, []byte(`{"a":2}`)))
	got, _ = kv.Get(BoardKey)
	assert.Equal(t, []byte(`{"a":2}`), got)

	// Keys are independent
	require.NoError(t, kv.Set(PrefsKey, []byte(`{}`)))
	got, _ = kv.Get(BoardKey)
	assert.Equal(t, []byte(`{"a":2}`), got)

	require.NoError(t, kv.Remove(BoardKey))
	_, ok = kv.Get(BoardKey)
	assert.False(t, ok)

	// Removing an absent key is fine
	require.NoError(t, kv.Remove(BoardKey))
}

func TestMemoryKV(t *testing.T) {
	kvContract(t, NewMemory())
}

func TestFileKV(t *testing.T) {
	kvContract(t, NewFile(t.TempDir()))
}

func TestMemoryCopiesValues(t *testing.T) {
	kv := NewMemory()
	value := []byte("hello")
	require.NoError(t, kv.Set(BoardKey, value))

	value[0] = 'X'
	got, _ := kv.Get(BoardKey)
	assert.Equal(t, []byte("hello"), got, "stored value is isolated from the caller's slice")
}

func TestFileKVKeyMapping(t *testing.T) {
	dir := t.TempDir()
	kv := NewFile(dir)
	require.NoError(t, kv.Set(BoardKey, []byte("x")))

	// The key separator never reaches the filesystem
	_, err := os.Stat(filepath.Join(dir, "boardkit_board.json"))
	assert.NoError(t, err)
}

func TestFileKVCreatesDirOnWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deeper")
	kv := NewFile(dir)
	require.NoError(t, kv.Set(BoardKey, []byte("x")))

	got, ok := kv.Get(BoardKey)
	require.True(t, ok)
	assert.Equal(t, []byte("x"), got)
}
