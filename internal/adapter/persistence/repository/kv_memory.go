package repository

import (
	"context"
	"sync"

	"pharma_fieldops/internal/usecase/interfaces"
)

// MemoryKeyValueStore keeps every key in process memory. It backs local runs
// and tests; nothing survives a restart.
type MemoryKeyValueStore struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ interfaces.IKeyValueStore = (*MemoryKeyValueStore)(nil)

func NewMemoryKeyValueStore() *MemoryKeyValueStore {
	return &MemoryKeyValueStore{values: map[string]string{}}
}

func (s *MemoryKeyValueStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryKeyValueStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryKeyValueStore) SetMany(_ context.Context, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range values {
		s.values[k] = v
	}
	return nil
}
