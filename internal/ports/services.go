package ports

import (
	"context"

	"github.com/jsamuelsen11/taskmaster/internal/domain/task"
)

// TaskService defines the service port for the task list's action surface.
// Implemented by the application layer; called by inbound adapters (HTTP
// handlers and the CLI). Every method except RequestSuggestions completes
// synchronously against the local store.
//
// Operations on an unknown task ID are silent no-ops: they return the
// unchanged list and no error.
type TaskService interface {
	// List returns all tasks in display order.
	List(ctx context.Context) []task.Task

	// Add validates the draft and inserts a new task.
	// Returns domain.ErrValidation if the draft fails validation.
	Add(ctx context.Context, draft task.Draft) (task.Task, error)

	// AddMany validates every draft and inserts them as one atomic batch.
	// Nothing is inserted if any draft fails validation.
	AddMany(ctx context.Context, drafts []task.Draft) ([]task.Task, error)

	// Submit adds the form draft together with any accepted suggestion
	// titles. Suggestions inherit the draft's priority and get an empty
	// description.
	Submit(ctx context.Context, draft task.Draft, accepted []string) ([]task.Task, error)

	// Toggle flips the completion flag of the task with the given ID.
	Toggle(ctx context.Context, id string) []task.Task

	// SetPriority overwrites the priority of the task with the given ID.
	// Returns domain.ErrValidation if the priority is not recognized.
	SetPriority(ctx context.Context, id string, priority task.Priority) ([]task.Task, error)

	// Delete removes the task with the given ID.
	Delete(ctx context.Context, id string) []task.Task

	// RequestSuggestions asks the suggestion service for titles related to
	// title. Returns domain.ErrValidation for titles shorter than the
	// minimum, domain.ErrConflict while an identical request is in flight,
	// and domain.ErrUnavailable when the service cannot answer.
	RequestSuggestions(ctx context.Context, title string) ([]string, error)
}
