package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "boardkit.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteKV(t *testing.T) {
	kvContract(t, openTestSQLite(t))
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boardkit.db")

	db, err := OpenSQLite(path, nil)
	require.NoError(t, err)
	require.NoError(t, db.Set(BoardKey, []byte("persisted")))
	require.NoError(t, db.Close())

	db, err = OpenSQLite(path, nil)
	require.NoError(t, err)
	defer db.Close()

	got, ok := db.Get(BoardKey)
	require.True(t, ok)
	assert.Equal(t, []byte("persisted"), got)
}

func TestOpenSQLiteEmptyPath(t *testing.T) {
	_, err := OpenSQLite("", nil)
	assert.Error(t, err)
}
