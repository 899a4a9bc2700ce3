// Package kv is a small durable key-value store backed by a single
// sqlite file. Values are opaque strings; callers decide the encoding.
package kv

import (
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("database path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %s", path)
	}

	s := &Store{db: db}
	if err := s.applySchema(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to apply schema")
	}
	return s, nil
}

func (s *Store) applySchema() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(schema); err != nil {
		return err
	}
	return tx.Commit()
}

// Get returns the stored value for key. The second return is false when
// the key is absent.
func (s *Store) Get(key string) (string, bool, error) {
	stmt := `SELECT value FROM kv WHERE key = ?`

	var value string
	if err := s.db.QueryRow(stmt, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	stmt := `
		INSERT INTO kv (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE
		SET value = EXCLUDED.value
	`
	args := []any{key, value}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(stmt, args...); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	stmt := `DELETE FROM kv WHERE key = ?`

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(stmt, key); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Ping() error {
	return s.db.Ping()
}

func (s *Store) Close() error {
	return s.db.Close()
}
