// Package sqlite opens the embedded SQLite database used as a record store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/kailas-cloud/studentnest/internal/db"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Store owns a *sql.DB limited to one connection.
type Store struct {
	db *sql.DB
}

// Open creates the parent directory and opens the database in WAL mode.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("path is required")
	}

	dsn := MemoryPath
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// A single connection keeps writes serialized and :memory: shared.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	return &Store{db: conn}, nil
}

// DB exposes the underlying handle to repositories.
func (s *Store) DB() *sql.DB { return s.db }

// Ping checks the database handle.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close releases the database.
func (s *Store) Close() {
	_ = s.db.Close()
}
