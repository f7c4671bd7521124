// Package memory provides an in-process implementation of the local store.
package memory

import (
	"context"
	"sync"
)

// Store keeps local values in a map. It is used by tests and by the
// client when it runs without a database file.
type Store struct {
	values map[string]string
	mu     sync.RWMutex
}

// New creates an empty store
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// Get returns the value stored under key
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok, nil
}

// Set overwrites the value under key
func (s *Store) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Remove deletes key
func (s *Store) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}
