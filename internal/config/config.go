// Package config loads the boardkit configuration file and user
// preferences.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store backend names accepted in configuration.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config represents the full boardkit configuration
type Config struct {
	Store      string `json:"store"`      // file | sqlite | memory
	DataDir    string `json:"dataDir"`    // where the file/sqlite stores live
	AutosaveMs int    `json:"autosaveMs"` // debounce window for auto-save
	Theme      string `json:"theme"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Store:      StoreFile,
		DataDir:    filepath.Join(homeDir, ".boardkit"),
		AutosaveMs: 1000,
		Theme:      "macchiato",
	}
}

// LoadConfig loads configuration with priority:
// 1. .boardkit.json in dir
// 2. Defaults
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".boardkit.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse .boardkit.json: %w", err)
	}
	return MergeWithDefaults(&cfg), nil
}

// SaveConfig saves configuration to the specified path
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Store == "" {
		cfg.Store = defaults.Store
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaults.DataDir
	}
	if cfg.AutosaveMs == 0 {
		cfg.AutosaveMs = defaults.AutosaveMs
	}
	if cfg.Theme == "" {
		cfg.Theme = defaults.Theme
	}

	return cfg
}

// Load is a convenience function that loads config from the current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
