// Package sqlite implements the durable record store on SQLite.
// The store owns schema creation, the connection lifecycle, and every
// read/write against the records table.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// dbFileName is the SQLite database file created inside DataDir.
const dbFileName = "rolodex.db"

// schemaSQL creates the records table. Safe to run on every open.
const schemaSQL = `CREATE TABLE IF NOT EXISTS records (
    id TEXT PRIMARY KEY NOT NULL,
    name TEXT NOT NULL,
    email TEXT,
    category TEXT,
    created_at TEXT,
    updated_at TEXT
);`

// Store implements types.Store using SQLite as the durable medium.
// A Store owns exactly one *sql.DB handle between Open and Close.
type Store struct {
	mu     sync.RWMutex
	config types.Config
	db     *sql.DB
	open   bool
}

// NewStore creates a Store for the given config. The store is not open;
// call Open before use.
func NewStore(config types.Config) *Store {
	return &Store{config: config}
}

// Open creates DataDir and the records table if absent and opens the
// database handle. Idempotent: opening an open store is a no-op.
func (s *Store) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return nil
	}

	if err := s.config.Validate(); err != nil {
		return err
	}

	dataDir := s.config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", errors.Join(types.ErrStorageUnavailable, err))
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", errors.Join(types.ErrStorageUnavailable, err))
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("create schema: %w", errors.Join(types.ErrStorageUnavailable, err))
	}

	s.db = db
	s.open = true
	return nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}

	if err := s.db.Close(); err != nil {
		return ioError("close database", err)
	}
	s.db = nil
	s.open = false
	return nil
}

// ioError tags a post-open storage failure with types.ErrStorageIO while
// keeping the underlying error in the chain.
func ioError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(types.ErrStorageIO, err))
}

// now returns the current wall-clock time truncated to RFC3339 second
// precision, matching the stored representation.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// formatTime renders a timestamp for the TEXT columns.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
