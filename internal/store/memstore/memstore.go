// Package memstore is an in-memory storage backend. It exists for tests
// and as a reference implementation of the store.Backend contract.
package memstore

import "sync"

// Store holds values in a map. The mutex keeps it safe for tests that
// poke at it from helper goroutines; the item service itself is
// single-threaded.
type Store struct {
	mu     sync.Mutex
	values map[string]string

	// WriteErr, when set, is returned by every Write. Lets tests exercise
	// the storage-failure path.
	WriteErr error
}

func New() *Store {
	return &Store{values: make(map[string]string)}
}

func (s *Store) Read(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *Store) Write(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.values[key] = value
	return nil
}

// Value returns the raw stored value for key, for assertions.
func (s *Store) Value(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}
