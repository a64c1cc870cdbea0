// Package settings provides the flat key-value settings store. The core
// only interprets the root folder key; the remaining keys are owned by
// surfaces on top of it and pass through opaquely.
package settings

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Keys consumed by the core and its callers.
const (
	KeyRootFolder   = "rootFolderId"
	KeyGroups       = "groups"
	KeyDefaultGroup = "defaultGroup"
	KeyDisplay      = "displaySettings"
)

// Store is a flat string key-value store.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// FileStore implements Store using a JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore with the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the settings file path.
func (s *FileStore) Path() string {
	return s.path
}

// Get reads a single key. A missing file behaves like an empty store.
func (s *FileStore) Get(key string) (string, bool, error) {
	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set writes a single key, creating the file if needed.
func (s *FileStore) Set(key, value string) error {
	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	return s.save(values)
}

// Delete removes a key; deleting an absent key is a no-op.
func (s *FileStore) Delete(key string) error {
	values, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return s.save(values)
}

func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	if values == nil {
		values = map[string]string{}
	}
	return values, nil
}

func (s *FileStore) save(values map[string]string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// MemStore is an in-memory Store for tests.
type MemStore map[string]string

func (m MemStore) Get(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m MemStore) Set(key, value string) error {
	m[key] = value
	return nil
}

func (m MemStore) Delete(key string) error {
	delete(m, key)
	return nil
}

// DefaultPath returns the default settings path:
// ~/.config/mangamark/settings.json
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "mangamark", "settings.json"), nil
}
