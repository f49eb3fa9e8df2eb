// Package jsonstore is the file-backed storage backend. One file per key,
// human-readable, portable. No locking for v1; fine for a local
// single-user CLI.
package jsonstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store keeps each key as a file under a root directory.
type Store struct {
	dir string
}

// New returns a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key)
}

// Read returns the stored value for key, or ok=false when the file has
// never been written.
func (s *Store) Read(key string) (string, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read file: %w", err)
	}
	return string(b), true, nil
}

// Write replaces the stored value for key wholesale.
func (s *Store) Write(key, value string) error {
	if err := os.WriteFile(s.path(key), []byte(value), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
