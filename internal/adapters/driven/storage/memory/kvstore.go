// Package memory provides in-memory storage adapters, used as test
// doubles and for ephemeral runs.
package memory

import (
	"context"
	"sync"

	"github.com/docchat-labs/docchat-cli/internal/core/ports/driven"
)

// Ensure KeyValueStore implements the interface.
var _ driven.KeyValueStore = (*KeyValueStore)(nil)

// KeyValueStore is an in-memory implementation of driven.KeyValueStore.
type KeyValueStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewKeyValueStore creates an empty in-memory key-value store.
func NewKeyValueStore() *KeyValueStore {
	return &KeyValueStore{
		data: make(map[string]string),
	}
}

// Get returns the value for key, with presence.
func (s *KeyValueStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.data[key]
	return val, ok, nil
}

// Set stores value under key.
func (s *KeyValueStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Delete removes key. Absent keys are ignored.
func (s *KeyValueStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Len returns the number of stored keys. Test helper.
func (s *KeyValueStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
