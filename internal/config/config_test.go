package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, StoreFile, cfg.Store)
	assert.Equal(t, 1000, cfg.AutosaveMs)
	assert.Equal(t, "macchiato", cfg.Theme)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigMergesPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".boardkit.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"store":"sqlite","autosaveMs":250}`), 0644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, 250, cfg.AutosaveMs)
	// unspecified fields come from the defaults
	assert.Equal(t, DefaultConfig().DataDir, cfg.DataDir)
	assert.Equal(t, "macchiato", cfg.Theme)
}

func TestLoadConfigRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".boardkit.json")
	require.NoError(t, os.WriteFile(path, []byte(`{store:`), 0644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".boardkit.json")
	want := &Config{Store: StoreMemory, DataDir: dir, AutosaveMs: 500, Theme: "macchiato"}

	require.NoError(t, SaveConfig(want, path))

	got, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMergeWithDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := MergeWithDefaults(&Config{Store: StoreMemory})

	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, DefaultConfig().AutosaveMs, cfg.AutosaveMs)
}

func TestDefaultPrefs(t *testing.T) {
	p := DefaultPrefs()

	assert.Equal(t, "macchiato", p.Theme)
	assert.False(t, p.SortDesc)
}
