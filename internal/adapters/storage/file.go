package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
)

// FileKV stores each key as a JSON file in a directory. Writes go to a
// temporary file that is renamed over the target, so readers never observe
// a partial value.
type FileKV struct {
	dir string
}

// OpenFile prepares dir for use as a key-value store.
func OpenFile(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get returns the value stored under key, or domain.ErrNotFound.
func (f *FileKV) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading key %q: %w", key, err)
	}
	return data, nil
}

// Put stores value under key, replacing any previous value.
func (f *FileKV) Put(_ context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("syncing key %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing key %q: %w", key, err)
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		return fmt.Errorf("replacing key %q: %w", key, err)
	}
	return nil
}

// Name identifies the backend in health reports.
func (f *FileKV) Name() string {
	return "storage"
}

// HealthCheck verifies the directory is still present.
func (f *FileKV) HealthCheck(_ context.Context) error {
	info, err := os.Stat(f.dir)
	if err != nil {
		return fmt.Errorf("file storage: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("file storage: %s is not a directory", f.dir)
	}
	return nil
}

// Close is a no-op.
func (f *FileKV) Close() error {
	return nil
}
