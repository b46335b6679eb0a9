package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fairshare-dev/fairshare/internal/model"
)

// FileStore keeps the snapshot as pretty-printed JSON in a single file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the snapshot. A missing file is a fresh start, not an
// error: it loads as an empty snapshot with both counters at 1.
func (s *FileStore) Load() (model.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.EmptySnapshot(), nil
	}
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("reading snapshot %s: %w", s.path, err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("parsing snapshot %s: %w", s.path, err)
	}
	if snap.NextParticipantID < 1 {
		snap.NextParticipantID = 1
	}
	if snap.NextPaymentID < 1 {
		snap.NextPaymentID = 1
	}
	return snap, nil
}

// Save writes the snapshot verbatim, creating parent directories as
// needed.
func (s *FileStore) Save(snap model.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating snapshot dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", s.path, err)
	}
	return nil
}
