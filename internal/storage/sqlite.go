// Package storage provides the durable KVStore adapters behind the
// repository layer: a SQLite-backed store for the application and an
// in-memory store for tests.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	portsrepo "github.com/moneynest/money_tracker_app/internal/core/ports/repositories"

	_ "modernc.org/sqlite"
)

// SQLiteKVStore persists each collection as one row in a key-value table.
type SQLiteKVStore struct {
	db *sql.DB
}

// NewSQLiteKVStore opens (creating if necessary) the database at dbPath and
// runs pending migrations.
func NewSQLiteKVStore(dbPath string) (*SQLiteKVStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteKVStore{db: db}, nil
}

// Ensure SQLiteKVStore implements the persistence port
var _ portsrepo.KVStore = (*SQLiteKVStore)(nil)

func (s *SQLiteKVStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv_collections WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteKVStore) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_collections (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteKVStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
