// ABOUTME: Tests for the badger-backed snapshot vault.
// ABOUTME: Verifies roundtrips, empty-vault loads, and revision metadata.
package snapshot

import (
	"bytes"
	"testing"
	"time"
)

func setupTestVault(t *testing.T) *Vault {
	t.Helper()

	v, err := OpenVault(t.TempDir())
	if err != nil {
		t.Fatalf("OpenVault failed: %v", err)
	}
	t.Cleanup(func() { _ = v.Close() })
	return v
}

func TestVaultLoadEmpty(t *testing.T) {
	v := setupTestVault(t)

	data, err := v.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if data != nil {
		t.Errorf("empty vault returned %d bytes, want nil", len(data))
	}

	meta, err := v.Meta()
	if err != nil {
		t.Fatalf("Meta failed: %v", err)
	}
	if meta != nil {
		t.Errorf("empty vault meta = %+v, want nil", meta)
	}
}

func TestVaultRoundtrip(t *testing.T) {
	v := setupTestVault(t)

	blob := []byte("SQLite format 3\x00 pretend database bytes")
	if err := v.Save(blob); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := v.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !bytes.Equal(got, blob) {
		t.Errorf("loaded %d bytes, want %d identical bytes", len(got), len(blob))
	}

	meta, err := v.Meta()
	if err != nil {
		t.Fatalf("Meta failed: %v", err)
	}
	if meta == nil {
		t.Fatal("expected metadata after save")
	}
	if meta.SizeBytes != len(blob) {
		t.Errorf("SizeBytes = %d, want %d", meta.SizeBytes, len(blob))
	}
	if meta.Revision == "" {
		t.Error("Revision is empty")
	}
	if time.Since(meta.SavedAt) > time.Minute {
		t.Errorf("SavedAt = %v, want recent", meta.SavedAt)
	}
}

func TestVaultSaveReplacesRevision(t *testing.T) {
	v := setupTestVault(t)

	if err := v.Save([]byte("first")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	first, err := v.Meta()
	if err != nil {
		t.Fatalf("Meta failed: %v", err)
	}

	if err := v.Save([]byte("second")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	second, err := v.Meta()
	if err != nil {
		t.Fatalf("Meta failed: %v", err)
	}

	if first.Revision == second.Revision {
		t.Error("revision unchanged across saves")
	}

	got, err := v.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("loaded %q, want second", got)
	}
}

func TestVaultPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	v, err := OpenVault(dir)
	if err != nil {
		t.Fatalf("OpenVault failed: %v", err)
	}
	if err := v.Save([]byte("durable")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := v.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	v, err = OpenVault(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer v.Close()

	got, err := v.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(got) != "durable" {
		t.Errorf("loaded %q, want durable", got)
	}
}
