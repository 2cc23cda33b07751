// Package storage persists named record slots as JSON files under a single
// data directory. It is the on-disk equivalent of the browser's origin-scoped
// key-value storage: synchronous, whole-slot reads and writes, and degraded
// rather than failing reads.
package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Storage slot names used by the application.
const (
	KeyPatients     = "patients"
	KeyAppointments = "appointments"
	KeyServices     = "services"
	KeySessionUser  = "session-user"
)

// Store reads and writes named slots in a data directory. Slot key "patients"
// maps to <dir>/patients.json.
type Store struct {
	dir string
	mu  sync.Mutex
	log *slog.Logger
}

// Open prepares a store rooted at dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dir, err)
	}
	return &Store{dir: dir, log: slog.Default()}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Has reports whether the slot has ever been written. A slot holding an empty
// list is present; only a missing file counts as absent.
func (s *Store) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := os.Stat(s.path(key))
	return err == nil
}

// Clear removes the slot entirely. Used for the session slot on logout.
func (s *Store) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		s.log.Error("failed to clear storage slot", "key", key, "error", err)
	}
}

// read returns the raw slot contents, or false when the slot is absent or
// unreadable. Failures never reach the caller as errors.
func (s *Store) read(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// write replaces the slot contents. A write failure (disk full, permissions)
// is logged and swallowed; the in-memory value the caller holds is not rolled
// back.
func (s *Store) write(key string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		s.log.Error("failed to write storage slot", "key", key, "error", err)
	}
}

// GetList returns the list stored under key, or an empty slice when the slot
// is absent, unreadable, or malformed.
func GetList[T any](s *Store, key string) []T {
	data, ok := s.read(key)
	if !ok {
		return []T{}
	}
	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		return []T{}
	}
	if list == nil {
		return []T{}
	}
	return list
}

// SetList serializes the full list and replaces the slot contents.
func SetList[T any](s *Store, key string, list []T) {
	data, err := json.Marshal(list)
	if err != nil {
		s.log.Error("failed to encode list for storage", "key", key, "error", err)
		return
	}
	s.write(key, data)
}

// GetValue returns the single record stored under key, or false when the slot
// is absent, unreadable, or malformed.
func GetValue[T any](s *Store, key string) (T, bool) {
	var value T
	data, ok := s.read(key)
	if !ok {
		return value, false
	}
	if err := json.Unmarshal(data, &value); err != nil {
		var zero T
		return zero, false
	}
	return value, true
}

// SetValue serializes a single record and replaces the slot contents.
func SetValue[T any](s *Store, key string, value T) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Error("failed to encode value for storage", "key", key, "error", err)
		return
	}
	s.write(key, data)
}
