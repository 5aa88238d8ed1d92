package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when a requested file does not exist in the store.
var ErrNotFound = errors.New("file not found")

// LocalStore serves generated documents from a flat directory on disk. There
// is no index or manifest; the file name is the only key.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the output directory if it does not exist.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Dir returns the store's directory.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Path returns the full path a file name maps to.
func (s *LocalStore) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Save writes data under the given name, silently overwriting any existing
// file with that name.
func (s *LocalStore) Save(name string, data []byte) (string, error) {
	path := s.Path(name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}

// Read returns the contents of the named file. Names that resolve outside
// the store directory are treated as absent.
func (s *LocalStore) Read(name string) ([]byte, error) {
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) {
		return nil, ErrNotFound
	}
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}
