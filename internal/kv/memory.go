package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/kbenhamou/souschef/internal/domain"
)

// Compile-time interface check.
var _ domain.KV = (*MemStore)(nil)

// MemStore is an in-memory key-value store. Values round-trip through JSON
// so it behaves exactly like FileStore, including pointer-field omission.
// Safe for concurrent access. Used by tests.
type MemStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailWrites makes every Set return an error, for exercising the
	// storage-failure paths.
	FailWrites bool
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

// Get reads the value stored under key into dest.
func (s *MemStore) Get(ctx context.Context, key string, dest any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.data[key]
	if !ok {
		return domain.ErrNotFound
	}
	return json.Unmarshal(data, dest)
}

// Set writes value under key.
func (s *MemStore) Set(ctx context.Context, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites {
		return fmt.Errorf("writing key %q: store unavailable", key)
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding key %q: %w", key, err)
	}
	s.data[key] = data
	return nil
}

// Delete removes the key.
func (s *MemStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
