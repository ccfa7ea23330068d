package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/jsamuelsen11/taskmaster/internal/app/store"
	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/domain/task"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService on top of the task store and the
// SuggestionClient port. It validates drafts at the creation boundary, logs
// each action, and serves reads from a TaskView.
type TaskService struct {
	store       *store.Store
	view        *TaskView
	suggestions ports.SuggestionClient
	logger      *slog.Logger

	inflightMu sync.Mutex
	inflight   map[string]struct{}
}

// NewTaskService creates a TaskService over s. The client port provides
// access to the suggestion service. A nil logger discards output.
func NewTaskService(s *store.Store, client ports.SuggestionClient, logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskService{
		store:       s,
		view:        NewTaskView(s),
		suggestions: client,
		logger:      logger,
		inflight:    make(map[string]struct{}),
	}
}

// Shutdown detaches the service's view from the store.
func (s *TaskService) Shutdown() {
	s.view.Close()
}

// List returns all tasks in display order.
func (s *TaskService) List(_ context.Context) []task.Task {
	return s.view.Tasks()
}

// Add validates and inserts a single task.
func (s *TaskService) Add(ctx context.Context, draft task.Draft) (task.Task, error) {
	s.logger.InfoContext(ctx, "adding task", slog.String("title", draft.Title))

	if err := draft.Validate(); err != nil {
		return task.Task{}, err
	}

	return s.store.AddTask(ctx, draft.Normalize()), nil
}

// AddMany validates every draft and inserts them as one batch sharing a
// creation timestamp. Nothing is inserted when any draft is invalid.
func (s *TaskService) AddMany(ctx context.Context, drafts []task.Draft) ([]task.Task, error) {
	s.logger.InfoContext(ctx, "adding tasks", slog.Int("count", len(drafts)))

	if len(drafts) == 0 {
		return []task.Task{}, nil
	}

	normalized, err := validateDrafts("drafts", drafts)
	if err != nil {
		return nil, err
	}

	return s.store.AddTasks(ctx, normalized), nil
}

// Submit adds the form draft plus the accepted suggestion titles. The
// suggestions take the draft's priority and an empty description. Only the
// draft can fail the submission: a suggestion that is not a valid title is
// dropped and logged. A lone draft goes through Add; anything larger is one
// AddMany batch.
func (s *TaskService) Submit(ctx context.Context, draft task.Draft, accepted []string) ([]task.Task, error) {
	s.logger.InfoContext(ctx, "submitting task form",
		slog.String("title", draft.Title),
		slog.Int("accepted_suggestions", len(accepted)),
	)

	if err := draft.Validate(); err != nil {
		return nil, err
	}

	extra := make([]task.Draft, 0, len(accepted))
	for _, title := range accepted {
		sg := task.Draft{Title: title, Priority: draft.Priority}
		if err := sg.Validate(); err != nil {
			s.logger.DebugContext(ctx, "dropping accepted suggestion",
				slog.String("suggestion", title),
				slog.String("reason", err.Error()),
			)
			continue
		}
		extra = append(extra, sg.Normalize())
	}

	if len(extra) == 0 {
		return []task.Task{s.store.AddTask(ctx, draft.Normalize())}, nil
	}

	batch := append([]task.Draft{draft.Normalize()}, extra...)
	return s.store.AddTasks(ctx, batch), nil
}

// Toggle flips the completion flag of the task with the given ID.
func (s *TaskService) Toggle(ctx context.Context, id string) []task.Task {
	s.logger.InfoContext(ctx, "toggling task", slog.String("id", id))

	if !s.store.ToggleComplete(ctx, id) {
		s.logNotFound(ctx, "Toggle", id)
	}
	return s.view.Tasks()
}

// SetPriority overwrites the priority of the task with the given ID.
func (s *TaskService) SetPriority(ctx context.Context, id string, priority task.Priority) ([]task.Task, error) {
	s.logger.InfoContext(ctx, "setting task priority",
		slog.String("id", id),
		slog.String("priority", priority.String()),
	)

	if !priority.IsValid() {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"priority": fmt.Sprintf("invalid: %q", priority),
		}}
	}

	if !s.store.SetPriority(ctx, id, priority) {
		s.logNotFound(ctx, "SetPriority", id)
	}
	return s.view.Tasks(), nil
}

// Delete removes the task with the given ID.
func (s *TaskService) Delete(ctx context.Context, id string) []task.Task {
	s.logger.InfoContext(ctx, "deleting task", slog.String("id", id))

	if !s.store.DeleteTask(ctx, id) {
		s.logNotFound(ctx, "Delete", id)
	}
	return s.view.Tasks()
}

// RequestSuggestions asks the suggestion service for titles related to
// title. The outbound call is detached from ctx cancellation and bounded by
// the client's own timeout. A second request for the same title while one
// is pending fails with domain.ErrConflict.
func (s *TaskService) RequestSuggestions(ctx context.Context, title string) ([]string, error) {
	title = strings.TrimSpace(title)
	s.logger.InfoContext(ctx, "requesting suggestions", slog.String("title", title))

	if utf8.RuneCountInString(title) < task.MinTitleLength {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"title": fmt.Sprintf("too short: must be at least %d characters", task.MinTitleLength),
		}}
	}

	release, ok := s.acquire(title)
	if !ok {
		return nil, fmt.Errorf("%w: suggestions already pending for %q", domain.ErrConflict, title)
	}
	defer release()

	suggestions, err := s.suggestions.Suggest(context.WithoutCancel(ctx), title)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch suggestions",
			slog.String("operation", "RequestSuggestions"),
			slog.String("title", title),
			slog.Any("error", err),
		)
		return nil, err
	}

	out := make([]string, 0, len(suggestions))
	for _, sg := range suggestions {
		if sg = strings.TrimSpace(sg); sg != "" {
			out = append(out, sg)
		}
	}
	return out, nil
}

// acquire marks title as pending. The returned release must be called once
// the request finishes.
func (s *TaskService) acquire(title string) (release func(), ok bool) {
	key := strings.ToLower(title)

	s.inflightMu.Lock()
	defer s.inflightMu.Unlock()

	if _, busy := s.inflight[key]; busy {
		return nil, false
	}
	s.inflight[key] = struct{}{}

	return func() {
		s.inflightMu.Lock()
		delete(s.inflight, key)
		s.inflightMu.Unlock()
	}, true
}

func (s *TaskService) logNotFound(ctx context.Context, operation, id string) {
	s.logger.DebugContext(ctx, "task not found, ignoring",
		slog.String("operation", operation),
		slog.String("id", id),
	)
}

// validateDrafts validates each draft and returns the normalized copies.
// Field errors are keyed as "<prefix>[i].<field>".
func validateDrafts(prefix string, drafts []task.Draft) ([]task.Draft, error) {
	fields := make(map[string]string)
	normalized := make([]task.Draft, len(drafts))

	for i, d := range drafts {
		if err := d.Validate(); err != nil {
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				return nil, err
			}
			for field, msg := range verr.Fields {
				fields[fmt.Sprintf("%s[%d].%s", prefix, i, field)] = msg
			}
			continue
		}
		normalized[i] = d.Normalize()
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	return normalized, nil
}
