package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-faster/errors"
)

var _ Store = (*FileStore)(nil)

// FileStore keeps one JSON file per slot under a data directory. Writes go to
// a temporary file first and are moved into place with os.Rename, so a
// process interruption leaves either the old document or the new one, never a
// torn file.
type FileStore struct {
	dir string

	// mu serializes read-modify-write cycles from concurrent HTTP handlers.
	// The workload is a single shop terminal; contention is not a concern.
	mu sync.Mutex
}

// NewFileStore creates the data directory if needed and returns a FileStore
// rooted at dir.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create data dir %s", dir)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(slot string) string {
	return filepath.Join(s.dir, slot+".json")
}

// Get implements Store. Unreadable or corrupt files are reported as
// ErrSlotNotFound so callers fall back to defaults.
func (s *FileStore) Get(_ context.Context, slot string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(slot))
	if err != nil {
		return ErrSlotNotFound
	}
	if err := json.Unmarshal(data, v); err != nil {
		return ErrSlotNotFound
	}
	return nil
}

// Put implements Store using a write-then-rename to keep the overwrite atomic.
func (s *FileStore) Put(_ context.Context, slot string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode slot %s", slot)
	}

	tmp, err := os.CreateTemp(s.dir, slot+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "create temp file for slot %s", slot)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "write slot %s", slot)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close temp file for slot %s", slot)
	}

	if err := os.Rename(tmp.Name(), s.path(slot)); err != nil {
		return errors.Wrapf(err, "replace slot %s", slot)
	}
	return nil
}

// Delete implements Store.
func (s *FileStore) Delete(_ context.Context, slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(slot)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "delete slot %s", slot)
	}
	return nil
}
