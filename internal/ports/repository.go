package ports

import (
	"context"

	"github.com/jsamuelsen11/taskmaster/internal/domain/task"
)

// TaskRepository is the durable key-value boundary for the task collection.
// The whole collection is stored under a single key and replaced on every
// save.
type TaskRepository interface {
	// Load returns the last saved collection in storage order.
	// Returns domain.ErrNotFound if nothing has ever been saved.
	Load(ctx context.Context) ([]task.Task, error)

	// Save replaces the stored collection with tasks.
	Save(ctx context.Context, tasks []task.Task) error
}
