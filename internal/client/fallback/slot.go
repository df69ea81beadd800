// Package fallback persists the client's shadow copy of the entry list.
//
// The cache is a single named slot holding the JSON array of entries. It is
// fully overwritten on every write and never merged with the server state.
package fallback

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"timeline-backend/internal/domains/entry/model"
)

// DefaultKey is the slot name used by the timeline client.
const DefaultKey = "timeline-entries"

// Slot is the local fallback cache.
type Slot interface {
	// Load returns the cached list; found is false when nothing was ever saved.
	Load(ctx context.Context) (entries []model.Entry, found bool, err error)
	// Save replaces the cached list.
	Save(ctx context.Context, entries []model.Entry) error
}

const schema = `
CREATE TABLE IF NOT EXISTS kv (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`

// SQLiteSlot stores the slot as one row of a key/value table.
type SQLiteSlot struct {
	db  *sql.DB
	key string
}

// Open opens (or creates) the SQLite file at path.
func Open(ctx context.Context, path string) (*SQLiteSlot, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open fallback cache: %w", err)
	}
	db.SetMaxOpenConns(1)

	slot, err := NewSQLiteSlot(ctx, db, DefaultKey)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return slot, nil
}

// NewSQLiteSlot binds a slot to an already open database and ensures the table exists.
func NewSQLiteSlot(ctx context.Context, db *sql.DB, key string) (*SQLiteSlot, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("init fallback cache: %w", err)
	}
	return &SQLiteSlot{db: db, key: key}, nil
}

func (s *SQLiteSlot) Load(ctx context.Context) ([]model.Entry, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read fallback cache[%s]: %w", s.key, err)
	}

	var entries []model.Entry
	if err := json.Unmarshal(value, &entries); err != nil {
		return nil, false, fmt.Errorf("decode fallback cache[%s]: %w", s.key, err)
	}
	if entries == nil {
		entries = []model.Entry{}
	}
	return entries, true, nil
}

func (s *SQLiteSlot) Save(ctx context.Context, entries []model.Entry) error {
	if entries == nil {
		entries = []model.Entry{}
	}

	value, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode fallback cache: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, s.key, value)
	if err != nil {
		return fmt.Errorf("write fallback cache[%s]: %w", s.key, err)
	}
	return nil
}

// Close releases the underlying database.
func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
