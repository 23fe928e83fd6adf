package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists each record as one JSON file under a directory. This is
// the default store for the client CLI.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cannot read record %s: %w", key, err)
	}
	return data, true, nil
}

func (s *FileStore) Save(ctx context.Context, key string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("cannot create storage dir: %w", err)
	}
	if err := os.WriteFile(s.path(key), data, 0o600); err != nil {
		return fmt.Errorf("cannot write record %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot delete record %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	// Keys are fixed storage names, but keep the filename safe anyway.
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(s.dir, safe+".json")
}
