// ABOUTME: Badger-backed vault holding the serialized database snapshot.
// ABOUTME: One blob under a fixed key plus a revision metadata record.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
)

var (
	snapshotKey = []byte("ironlog/db")
	metaKey     = []byte("ironlog/db-meta")
)

// Meta describes the stored snapshot.
type Meta struct {
	Revision  string    `json:"revision"`
	SavedAt   time.Time `json:"saved_at"`
	SizeBytes int       `json:"size_bytes"`
}

// Vault is the durable local key-value store for database snapshots.
type Vault struct {
	db *badger.DB
}

// OpenVault opens (or creates) the vault at the given directory.
func OpenVault(dir string) (*Vault, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open vault: %w", err)
	}
	return &Vault{db: db}, nil
}

// Load returns the stored snapshot bytes, or nil when no snapshot has been
// saved yet.
func (v *Vault) Load() ([]byte, error) {
	var data []byte
	err := v.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(snapshotKey)
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return data, nil
}

// Save replaces the stored snapshot and stamps a new revision.
func (v *Vault) Save(data []byte) error {
	meta, err := json.Marshal(Meta{
		Revision:  uuid.New().String(),
		SavedAt:   time.Now(),
		SizeBytes: len(data),
	})
	if err != nil {
		return fmt.Errorf("encode snapshot meta: %w", err)
	}

	err = v.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(snapshotKey, data); err != nil {
			return err
		}
		return txn.Set(metaKey, meta)
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Meta returns the metadata of the stored snapshot, or nil when no
// snapshot exists.
func (v *Vault) Meta() (*Meta, error) {
	var raw []byte
	err := v.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(metaKey)
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot meta: %w", err)
	}

	var meta Meta
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("decode snapshot meta: %w", err)
	}
	return &meta, nil
}

// Close closes the vault.
func (v *Vault) Close() error {
	return v.db.Close()
}
