// ABOUTME: Tests for configuration loading and path resolution.
// ABOUTME: Verifies defaults, overrides, and XDG handling.
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "" {
		t.Errorf("DataDir = %q, want empty default", cfg.DataDir)
	}
	if got := cfg.GetAutosaveDelay(); got != DefaultAutosaveDelay {
		t.Errorf("GetAutosaveDelay = %v, want %v", got, DefaultAutosaveDelay)
	}
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{DataDir: "/tmp/ironlog-test", AutosaveDelayMS: 250}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.DataDir != cfg.DataDir {
		t.Errorf("DataDir = %q, want %q", got.DataDir, cfg.DataDir)
	}
	if got.GetAutosaveDelay() != 250*time.Millisecond {
		t.Errorf("GetAutosaveDelay = %v, want 250ms", got.GetAutosaveDelay())
	}
}

func TestDataDirRespectsXDG(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	want := filepath.Join(dataHome, "ironlog")
	if got := DataDir(); got != want {
		t.Errorf("DataDir = %q, want %q", got, want)
	}

	cfg := &Config{}
	if got := cfg.DBPath(); got != filepath.Join(want, "work", "ironlog.db") {
		t.Errorf("DBPath = %q", got)
	}
	if got := cfg.VaultDir(); got != filepath.Join(want, "vault") {
		t.Errorf("VaultDir = %q", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir failed: %v", err)
	}

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"~", home},
		{"~/ironlog", filepath.Join(home, "ironlog")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGetAutosaveDelayOverride(t *testing.T) {
	cfg := &Config{AutosaveDelayMS: 100}
	if got := cfg.GetAutosaveDelay(); got != 100*time.Millisecond {
		t.Errorf("GetAutosaveDelay = %v, want 100ms", got)
	}

	cfg = &Config{AutosaveDelayMS: -5}
	if got := cfg.GetAutosaveDelay(); got != DefaultAutosaveDelay {
		t.Errorf("GetAutosaveDelay = %v, want default for negative", got)
	}
}
