// ABOUTME: SQLite database connection and lifecycle management.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound marks lookups that matched nothing. Callers treat it as a
// normal outcome, not a failure.
var ErrNotFound = errors.New("not found")

// ErrActiveWorkout is returned when starting a workout while another one
// is still unfinished.
var ErrActiveWorkout = errors.New("a workout is already active")

// Saver receives a notification after every mutation so persistence can be
// coalesced outside the store. Typically a snapshot.Flusher.
type Saver interface {
	ScheduleSave()
}

// Store wraps the SQLite connection holding all workout data.
type Store struct {
	db     *sql.DB
	dbPath string
	saver  Saver
}

// Open opens or creates the workout database at the given path, applies
// the schema, and seeds reference data on first run.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := os.Chmod(dbPath, 0600); err != nil && !os.IsNotExist(err) {
		_ = db.Close()
		return nil, fmt.Errorf("set database permissions: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}

	if err := s.configurePragmas(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure pragmas: %w", err)
	}

	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	if err := s.Seed(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed exercises: %w", err)
	}
	if err := s.SeedTemplates(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed templates: %w", err)
	}

	return s, nil
}

// SetSaver attaches the persistence scheduler notified after mutations.
func (s *Store) SetSaver(saver Saver) {
	s.saver = saver
}

// scheduleSave notifies the attached saver, if any. Nil-safe so tests and
// read-only use need no persistence wiring.
func (s *Store) scheduleSave() {
	if s.saver != nil {
		s.saver.ScheduleSave()
	}
}

// Snapshot returns the raw serialized database bytes. The WAL is
// checkpointed first so the main file alone is the complete state.
func (s *Store) Snapshot() ([]byte, error) {
	if _, err := s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return nil, fmt.Errorf("checkpoint: %w", err)
	}
	data, err := os.ReadFile(s.dbPath)
	if err != nil {
		return nil, fmt.Errorf("read database file: %w", err)
	}
	return data, nil
}

// Path returns the location of the working database file.
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// configurePragmas sets up SQLite behavior. Foreign-key enforcement is
// opt-in in SQLite and the cascade semantics depend on it.
func (s *Store) configurePragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := s.db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

// nowISO is the canonical timestamp format persisted in the database.
func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// parseTime reads a persisted RFC 3339 timestamp.
func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// nullableTime converts an optional timestamp column.
func nullableTime(ns sql.NullString) *time.Time {
	if !ns.Valid {
		return nil
	}
	t := parseTime(ns.String)
	return &t
}

// nullableString converts an optional text column.
func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
