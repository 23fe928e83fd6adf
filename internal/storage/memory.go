package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps records in memory. Used in tests and as a fallback when
// no durable store is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func (s *MemoryStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.records[key]
	if !ok {
		return nil, false, nil
	}
	found := make([]byte, len(data))
	copy(found, data)
	return found, true, nil
}

func (s *MemoryStore) Save(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	s.records[key] = stored
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return nil
}
