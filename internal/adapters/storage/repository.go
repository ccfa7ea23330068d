package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/taskmaster/internal/domain/task"
	"github.com/jsamuelsen11/taskmaster/internal/platform/config"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// ErrCorrupt reports a stored value that cannot be decoded.
var ErrCorrupt = errors.New("stored tasks are corrupt")

// KV is the durable key-value contract the backends implement.
type KV interface {
	// Get returns domain.ErrNotFound when key was never written.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Name() string
	HealthCheck(ctx context.Context) error
	Close() error
}

// Compile-time interface checks.
var (
	_ ports.TaskRepository = (*Repository)(nil)
	_ ports.HealthChecker  = (*Repository)(nil)
	_ KV                   = (*SQLiteKV)(nil)
	_ KV                   = (*FileKV)(nil)
)

// Repository stores the task collection under one key of a KV.
type Repository struct {
	kv  KV
	key string
}

// NewRepository returns a Repository writing under key in kv.
func NewRepository(kv KV, key string) *Repository {
	return &Repository{kv: kv, key: key}
}

// Open builds the backend selected by cfg.
func Open(ctx context.Context, cfg config.StorageConfig) (*Repository, error) {
	var (
		kv  KV
		err error
	)
	switch cfg.Backend {
	case "sqlite":
		kv, err = OpenSQLite(ctx, cfg.Path)
	case "file":
		kv, err = OpenFile(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	return NewRepository(kv, cfg.Key), nil
}

// Load returns the saved collection in storage order. It returns
// domain.ErrNotFound when nothing was ever saved and an error wrapping
// ErrCorrupt when the stored value cannot be decoded.
func (r *Repository) Load(ctx context.Context) ([]task.Task, error) {
	data, err := r.kv.Get(ctx, r.key)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Save replaces the stored collection.
func (r *Repository) Save(ctx context.Context, tasks []task.Task) error {
	data, err := Encode(tasks)
	if err != nil {
		return err
	}
	return r.kv.Put(ctx, r.key, data)
}

// Name identifies the backend in health reports.
func (r *Repository) Name() string {
	return r.kv.Name()
}

// HealthCheck reports whether the backend is reachable.
func (r *Repository) HealthCheck(ctx context.Context) error {
	return r.kv.HealthCheck(ctx)
}

// Close releases the backend.
func (r *Repository) Close() error {
	return r.kv.Close()
}

// Shutdown closes the backend; it satisfies the container's shutdown hook.
func (r *Repository) Shutdown(_ context.Context) error {
	return r.Close()
}
