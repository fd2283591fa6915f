// Package autosave keeps the active scoreboard sessions in a local sqlite
// key-value table so a restarted server can rehydrate them. It is a durability
// aid, not a system of record: corrupt rows are discarded, never surfaced.
package autosave

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store is a durable key-value store for JSON snapshots.
type Store struct {
	db *sql.DB
}

// Open creates or opens the autosave database at path and ensures the schema.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("autosave path is required")
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open autosave db: %w", err)
	}
	// Single writer; the server serialises saves behind the store lock anyway.
	conn.SetMaxOpenConns(1)
	if _, err := conn.Exec(`CREATE TABLE IF NOT EXISTS autosaves (
		key TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		saved_at TIMESTAMP NOT NULL
	)`); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init autosave schema: %w", err)
	}
	return &Store{db: conn}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save marshals payload and upserts it under key.
func (s *Store) Save(key string, payload any) error {
	if s == nil || s.db == nil {
		return nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode autosave %s: %w", key, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO autosaves (key, payload, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at`,
		key, string(data), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("write autosave %s: %w", key, err)
	}
	return nil
}

// Load returns the raw payload stored under key, or ok=false when absent.
func (s *Store) Load(key string) ([]byte, bool, error) {
	if s == nil || s.db == nil {
		return nil, false, nil
	}
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM autosaves WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read autosave %s: %w", key, err)
	}
	return []byte(payload), true, nil
}

// LoadAll returns every stored payload keyed by autosave key.
func (s *Store) LoadAll() (map[string][]byte, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	rows, err := s.db.Query(`SELECT key, payload FROM autosaves`)
	if err != nil {
		return nil, fmt.Errorf("list autosaves: %w", err)
	}
	defer rows.Close()

	saves := make(map[string][]byte)
	for rows.Next() {
		var key, payload string
		if err := rows.Scan(&key, &payload); err != nil {
			return nil, fmt.Errorf("scan autosave row: %w", err)
		}
		saves[key] = []byte(payload)
	}
	return saves, rows.Err()
}

// Delete removes the payload stored under key. Missing keys are not an error.
func (s *Store) Delete(key string) error {
	if s == nil || s.db == nil {
		return nil
	}
	if _, err := s.db.Exec(`DELETE FROM autosaves WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete autosave %s: %w", key, err)
	}
	return nil
}
