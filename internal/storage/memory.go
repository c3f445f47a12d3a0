package storage

import (
	"context"
	"encoding/json"
	"sync"
)

var _ Store = (*MemStore)(nil)

// MemStore is an in-memory Store for tests and ephemeral runs. Documents are
// kept as encoded JSON so Get/Put round-trip exactly like FileStore.
type MemStore struct {
	mu    sync.Mutex
	slots map[string][]byte
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{slots: make(map[string][]byte)}
}

// Get implements Store.
func (s *MemStore) Get(_ context.Context, slot string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.slots[slot]
	if !ok {
		return ErrSlotNotFound
	}
	if err := json.Unmarshal(data, v); err != nil {
		return ErrSlotNotFound
	}
	return nil
}

// Put implements Store.
func (s *MemStore) Put(_ context.Context, slot string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[slot] = data
	return nil
}

// Delete implements Store.
func (s *MemStore) Delete(_ context.Context, slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, slot)
	return nil
}
