// ABOUTME: Wires the store, snapshot vault, and debounced flusher together.
// ABOUTME: The vault blob is the durable truth; the working file is a scratch copy.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harperreed/ironlog/internal/config"
	"github.com/harperreed/ironlog/internal/snapshot"
	"github.com/harperreed/ironlog/internal/storage"
)

// App bundles the open handles for one ironlog session.
type App struct {
	Store   *storage.Store
	Vault   *snapshot.Vault
	Flusher *snapshot.Flusher
}

// Open restores the working database from the vault snapshot (or creates
// a fresh seeded one), then attaches the debounced flusher so every
// mutation schedules a save.
func Open(cfg *config.Config) (*App, error) {
	vault, err := snapshot.OpenVault(cfg.VaultDir())
	if err != nil {
		return nil, err
	}

	dbPath := cfg.DBPath()
	blob, err := vault.Load()
	if err != nil {
		_ = vault.Close()
		return nil, err
	}
	if blob != nil {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
			_ = vault.Close()
			return nil, fmt.Errorf("create work directory: %w", err)
		}
		// Stale WAL/SHM files must not outlive the snapshot they belong to.
		_ = os.Remove(dbPath + "-wal")
		_ = os.Remove(dbPath + "-shm")
		if err := os.WriteFile(dbPath, blob, 0600); err != nil {
			_ = vault.Close()
			return nil, fmt.Errorf("restore snapshot: %w", err)
		}
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		_ = vault.Close()
		return nil, err
	}

	flusher := snapshot.NewFlusher(cfg.GetAutosaveDelay(), func() error {
		data, err := store.Snapshot()
		if err != nil {
			return err
		}
		return vault.Save(data)
	})
	store.SetSaver(flusher)

	a := &App{Store: store, Vault: vault, Flusher: flusher}

	// First run: make the freshly seeded database durable right away.
	if blob == nil {
		if err := a.Flush(); err != nil {
			_ = a.Close()
			return nil, err
		}
	}

	return a, nil
}

// Flush saves the current state to the vault immediately, bypassing the
// debounce.
func (a *App) Flush() error {
	return a.Flusher.Flush()
}

// Close flushes any pending save and releases both stores.
func (a *App) Close() error {
	flushErr := a.Flusher.Close()
	storeErr := a.Store.Close()
	vaultErr := a.Vault.Close()
	if flushErr != nil {
		return flushErr
	}
	if storeErr != nil {
		return storeErr
	}
	return vaultErr
}
