// Package kv provides the persistence adapter implementations: generic
// key-value storage of JSON-serializable values.
package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kbenhamou/souschef/internal/domain"
	"github.com/kbenhamou/souschef/internal/logger"
)

// Compile-time interface check.
var _ domain.KV = (*FileStore)(nil)

// FileStore persists each key as a JSON file under its base directory.
// Writes go through a temp file and rename so a crash mid-write never
// leaves a truncated record behind.
type FileStore struct {
	dir string
	log *logger.Logger
}

// NewFileStore creates a file-backed store rooted at dir, creating the
// directory if needed.
func NewFileStore(dir string, log *logger.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir, log: log}, nil
}

// Get reads the value stored under key into dest. Returns
// domain.ErrNotFound when the key has never been written.
func (s *FileStore) Get(ctx context.Context, key string, dest any) error {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		s.log.Debug("kv: key %q not found", key)
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("reading key %q: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decoding key %q: %w", key, err)
	}
	return nil
}

// Set writes value under key, replacing any previous value.
func (s *FileStore) Set(ctx context.Context, key string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding key %q: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing key %q: %w", key, err)
	}

	s.log.Debug("kv: wrote key %q (%d bytes)", key, len(data))
	return nil
}

// Delete removes the key. Deleting a missing key is not an error.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting key %q: %w", key, err)
	}
	s.log.Debug("kv: deleted key %q", key)
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
