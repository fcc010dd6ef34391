package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore is a directory-backed key/value store: one file per named key.
// The dataset snapshot slot and the per-product view counters both live here.
type LocalStore struct {
	dir string
}

// OpenLocal opens (creating if needed) a local store rooted at dir.
func OpenLocal(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

// Get returns the value stored under key. The second return value reports
// whether the key exists; a missing key is not an error.
func (s *LocalStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set overwrites the value stored under key.
func (s *LocalStore) Set(key string, value []byte) error {
	return os.WriteFile(s.path(key), value, 0o644)
}

// Delete removes key. Deleting a missing key is a no-op.
func (s *LocalStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

var keySanitizer = strings.NewReplacer("/", "_", "\\", "_", "..", "_")

func (s *LocalStore) path(key string) string {
	return filepath.Join(s.dir, keySanitizer.Replace(key)+".json")
}
