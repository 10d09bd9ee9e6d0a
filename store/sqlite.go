// ABOUTME: SQLite-backed KV implementation
// ABOUTME: Single key/value table with WAL mode, selected via --backend sqlite
package store

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteKV stores entries in a single key/value table.
type SQLiteKV struct {
	db *sql.DB
}

// OpenSQLite opens the key/value database at path, creating the directory and
// schema as needed.
func OpenSQLite(path string) (*SQLiteKV, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	// Open database with WAL mode
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	// Configure connection pool for SQLite (avoid database locked errors)
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteKV{db: db}, nil
}

func (s *SQLiteKV) Get(key []byte) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, string(key)).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *SQLiteKV) Set(key, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, string(key), value)
	return err
}

// Keys returns all keys with the given prefix in ascending order.
func (s *SQLiteKV) Keys(prefix []byte) ([][]byte, error) {
	rows, err := s.db.Query(`
		SELECT key FROM kv
		WHERE substr(key, 1, ?) = ?
		ORDER BY key
	`, len(prefix), string(prefix))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys [][]byte
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, []byte(k))
	}
	return keys, rows.Err()
}

func (s *SQLiteKV) Close() error {
	return s.db.Close()
}
