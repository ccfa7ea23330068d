package storage

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/domain/task"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// Persister applies the best-effort persistence contract over a
// TaskRepository: reads and writes never fail the caller, and failures are
// logged instead.
type Persister struct {
	repo   ports.TaskRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewPersister wraps repo. A nil logger discards output.
func NewPersister(repo ports.TaskRepository, logger *slog.Logger) *Persister {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Persister{repo: repo, logger: logger, now: time.Now}
}

// Load reads the stored collection. found is false only when nothing was
// ever saved. An unreadable or corrupt value is logged and yields
// (nil, true) so the caller starts empty without reseeding.
func (p *Persister) Load(ctx context.Context) (tasks []task.Task, found bool) {
	tasks, err := p.repo.Load(ctx)
	switch {
	case err == nil:
		return tasks, true
	case errors.Is(err, domain.ErrNotFound):
		return nil, false
	default:
		p.logger.ErrorContext(ctx, "failed to load tasks",
			slog.String("operation", "Persister.Load"),
			slog.Bool("corrupt", errors.Is(err, ErrCorrupt)),
			slog.Any("error", err),
		)
		return nil, true
	}
}

// Save writes tasks. A failure is logged and otherwise ignored; the
// in-memory state is not rolled back.
func (p *Persister) Save(ctx context.Context, tasks []task.Task) {
	if err := p.repo.Save(ctx, tasks); err != nil {
		p.logger.ErrorContext(ctx, "failed to persist tasks",
			slog.String("operation", "Persister.Save"),
			slog.Int("task_count", len(tasks)),
			slog.Any("error", err),
		)
	}
}

// Bootstrap returns the initial collection for the store. On first run it
// writes the seed tasks once and returns them; afterwards the stored
// collection wins, even when it is empty.
func (p *Persister) Bootstrap(ctx context.Context) []task.Task {
	if tasks, found := p.Load(ctx); found {
		p.logger.InfoContext(ctx, "loaded tasks", slog.Int("task_count", len(tasks)))
		return tasks
	}

	seed := task.SeedTasks(p.now().UnixMilli())
	p.logger.InfoContext(ctx, "seeding task list", slog.Int("task_count", len(seed)))
	p.Save(ctx, seed)
	return seed
}
