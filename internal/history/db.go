// Package history persists play sessions and their moves in SQLite.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite database connection.
type DB struct {
	*sql.DB
	path string
}

// DefaultDBPath returns the default database path in the user's home directory.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".rubik3d")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(dir, "rubik3d.db"), nil
}

// Open opens (or creates) the SQLite database at the given path and brings
// the schema up to date.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	wrapped := &DB{DB: db, path: dbPath}
	if err := wrapped.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return wrapped, nil
}

// OpenDefault opens the database at the default path.
func OpenDefault() (*DB, error) {
	path, err := DefaultDBPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// Transaction executes a function within a database transaction.
func (db *DB) Transaction(fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		session_id    TEXT PRIMARY KEY,
		started_at    TEXT NOT NULL,
		ended_at      TEXT,
		duration_ms   INTEGER,
		scramble_text TEXT,
		notes         TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS moves (
		move_id    INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL REFERENCES sessions(session_id) ON DELETE CASCADE,
		move_index INTEGER NOT NULL,
		ts_ms      INTEGER NOT NULL,
		face       TEXT NOT NULL,
		turn       INTEGER NOT NULL,
		notation   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_moves_session ON moves(session_id, move_index)`,
}

func (db *DB) migrate() error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version    INTEGER PRIMARY KEY,
		applied_at TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create schema version table: %w", err)
	}

	var current int
	if err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&current); err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for i := current; i < len(migrations); i++ {
		stmt := migrations[i]
		err := db.Transaction(func(tx *sql.Tx) error {
			if _, err := tx.Exec(stmt); err != nil {
				return fmt.Errorf("migration %d failed: %w", i+1, err)
			}
			if _, err := tx.Exec(
				"INSERT INTO schema_version (version, applied_at) VALUES (?, datetime('now'))", i+1,
			); err != nil {
				return fmt.Errorf("failed to record migration %d: %w", i+1, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// CurrentVersion returns the current schema version.
func (db *DB) CurrentVersion() (int, error) {
	var version int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to get current version: %w", err)
	}
	return version, nil
}
