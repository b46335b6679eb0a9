package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure Go SQLite driver (no CGO)

	"github.com/fairshare-dev/fairshare/internal/model"
)

// Ensure SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)

const snapshotKey = "ledger"

// SQLiteStore keeps the JSON snapshot as a single blob in a key-value
// table. The database gives atomic replace semantics without the store
// having to know the snapshot's shape.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at dbPath and
// bootstraps the kv table.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating kv table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the snapshot blob. An absent row loads as an empty
// snapshot with both counters at 1.
func (s *SQLiteStore) Load() (model.Snapshot, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, snapshotKey).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return model.EmptySnapshot(), nil
	}
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("loading snapshot: %w", err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("parsing snapshot: %w", err)
	}
	if snap.NextParticipantID < 1 {
		snap.NextParticipantID = 1
	}
	if snap.NextPaymentID < 1 {
		snap.NextPaymentID = 1
	}
	return snap, nil
}

// Save replaces the snapshot blob.
func (s *SQLiteStore) Save(snap model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	if _, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		snapshotKey, data,
	); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}
