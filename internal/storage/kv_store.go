package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// KVStore is a string key/value map persisted as one JSON file. Values are
// opaque strings; callers serialize whatever they keep under a key.
type KVStore struct {
	mu       sync.RWMutex
	filePath string
}

// NewKVStore creates a store backed by dataDir/filename
func NewKVStore(dataDir, filename string) (*KVStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create %s: %w", dataDir, err)
	}

	return &KVStore{
		filePath: filepath.Join(dataDir, filename),
	}, nil
}

// Path returns the backing file
func (s *KVStore) Path() string {
	return s.filePath
}

// Get returns the value stored under key. A missing file or key is not an
// error.
func (s *KVStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := s.loadLocked()
	if err != nil {
		return "", false, err
	}
	v, ok := entries[key]
	return v, ok, nil
}

// Set stores value under key
func (s *KVStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadLocked()
	if err != nil {
		// an unreadable file is replaced rather than blocking writes
		entries = map[string]string{}
	}
	entries[key] = value
	return s.saveLocked(entries)
}

// Delete removes key. Deleting a missing key is a no-op.
func (s *KVStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadLocked()
	if err != nil {
		entries = map[string]string{}
	}
	if _, ok := entries[key]; !ok && err == nil {
		return nil
	}
	delete(entries, key)
	return s.saveLocked(entries)
}

func (s *KVStore) loadLocked() (map[string]string, error) {
	entries := map[string]string{}

	file, err := os.Open(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return entries, nil
		}
		return nil, fmt.Errorf("storage: open %s: %w", s.filePath, err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&entries); err != nil {
		return nil, fmt.Errorf("storage: decode %s: %w", s.filePath, err)
	}
	return entries, nil
}

// saveLocked writes through a temp file and renames it into place
func (s *KVStore) saveLocked(entries map[string]string) error {
	tempFile := s.filePath + ".tmp"
	file, err := os.Create(tempFile)
	if err != nil {
		return fmt.Errorf("storage: create %s: %w", tempFile, err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(entries); err != nil {
		file.Close()
		os.Remove(tempFile)
		return fmt.Errorf("storage: encode: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("storage: close %s: %w", tempFile, err)
	}

	return os.Rename(tempFile, s.filePath)
}
