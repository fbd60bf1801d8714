package storage

import (
	"context"
	"sync"

	portsrepo "github.com/moneynest/money_tracker_app/internal/core/ports/repositories"
)

// MemoryKVStore implements the KVStore port with an in-memory map. Used by
// tests and by the "memory" data backend.
type MemoryKVStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryKVStore creates an empty in-memory store.
func NewMemoryKVStore() *MemoryKVStore {
	return &MemoryKVStore{values: make(map[string][]byte)}
}

// Ensure MemoryKVStore implements the persistence port
var _ portsrepo.KVStore = (*MemoryKVStore)(nil)

func (s *MemoryKVStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, found := s.values[key]
	if !found {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (s *MemoryKVStore) Save(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.values[key] = stored
	return nil
}
