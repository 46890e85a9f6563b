// ABOUTME: Ironlog configuration: data location and autosave tuning.
// ABOUTME: JSON file in the XDG config directory with sensible defaults.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultAutosaveDelay is how long a burst of edits settles before the
// snapshot is flushed to the vault.
const DefaultAutosaveDelay = 800 * time.Millisecond

// Config stores ironlog configuration.
type Config struct {
	// DataDir is the root directory for the working database and the
	// snapshot vault. Supports ~ expansion. Defaults to
	// ~/.local/share/ironlog.
	DataDir string `json:"data_dir,omitempty"`

	// AutosaveDelayMS overrides the debounce delay for snapshot flushes.
	AutosaveDelayMS int `json:"autosave_delay_ms,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetAutosaveDelay returns the snapshot debounce delay.
func (c *Config) GetAutosaveDelay() time.Duration {
	if c.AutosaveDelayMS <= 0 {
		return DefaultAutosaveDelay
	}
	return time.Duration(c.AutosaveDelayMS) * time.Millisecond
}

// DBPath returns the working database file location.
func (c *Config) DBPath() string {
	return filepath.Join(c.GetDataDir(), "work", "ironlog.db")
}

// VaultDir returns the snapshot vault location.
func (c *Config) VaultDir() string {
	return filepath.Join(c.GetDataDir(), "vault")
}

// DataDir returns the default data directory following the XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "ironlog")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "ironlog", "config.json")
}

// Load reads config from disk. A missing file yields defaults.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
