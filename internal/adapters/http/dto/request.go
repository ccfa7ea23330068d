package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/domain/task"
)

// Request size caps. Length rules for individual fields are enforced by
// task.Draft.Validate in the application layer.
const (
	MaxBatchSize        = 50
	MaxAcceptedSuggests = 20
)

// TaskDraftRequest carries the caller-supplied fields of one new task.
type TaskDraftRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// ToDraft converts the request to a domain Draft.
func (r *TaskDraftRequest) ToDraft() task.Draft {
	return task.Draft{
		Title:       r.Title,
		Description: r.Description,
		Priority:    task.Priority(r.Priority),
	}
}

func (r *TaskDraftRequest) validateInto(fields map[string]string, prefix string) {
	if strings.TrimSpace(r.Title) == "" {
		fields[prefix+"title"] = domain.MsgRequired
	}
	if r.Priority != "" && !task.Priority(r.Priority).IsValid() {
		fields[prefix+"priority"] = fmt.Sprintf("invalid: %q", r.Priority)
	}
}

// CreateTaskRequest represents the JSON body of the task form: one draft
// plus the suggestion titles the user accepted.
type CreateTaskRequest struct {
	TaskDraftRequest
	Suggestions []string `json:"suggestions,omitempty"`
}

// Validate checks that required fields are present and optional fields have
// valid values. Returns a *domain.ValidationError if any checks fail.
func (r *CreateTaskRequest) Validate() error {
	fields := make(map[string]string)

	r.validateInto(fields, "")
	if len(r.Suggestions) > MaxAcceptedSuggests {
		fields["suggestions"] = fmt.Sprintf("must contain at most %d items", MaxAcceptedSuggests)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// BatchCreateRequest represents the JSON body for adding several tasks at once.
type BatchCreateRequest struct {
	Tasks []TaskDraftRequest `json:"tasks"`
}

// Validate checks the batch bounds and every item.
// Returns a *domain.ValidationError if any checks fail.
func (r *BatchCreateRequest) Validate() error {
	fields := make(map[string]string)

	switch {
	case len(r.Tasks) == 0:
		fields["tasks"] = "must not be empty"
	case len(r.Tasks) > MaxBatchSize:
		fields["tasks"] = fmt.Sprintf("must contain at most %d items", MaxBatchSize)
	default:
		for i := range r.Tasks {
			r.Tasks[i].validateInto(fields, fmt.Sprintf("tasks[%d].", i))
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDrafts converts every item to a domain Draft, preserving order.
func (r *BatchCreateRequest) ToDrafts() []task.Draft {
	drafts := make([]task.Draft, len(r.Tasks))
	for i := range r.Tasks {
		drafts[i] = r.Tasks[i].ToDraft()
	}
	return drafts
}

// SetPriorityRequest represents the JSON body for changing a task's priority.
type SetPriorityRequest struct {
	Priority string `json:"priority"`
}

// Validate checks that the priority is present and recognized.
func (r *SetPriorityRequest) Validate() error {
	switch {
	case r.Priority == "":
		return &domain.ValidationError{Fields: map[string]string{"priority": domain.MsgRequired}}
	case !task.Priority(r.Priority).IsValid():
		return &domain.ValidationError{Fields: map[string]string{
			"priority": fmt.Sprintf("invalid: %q", r.Priority),
		}}
	}
	return nil
}

// SuggestionRequest represents the JSON body for requesting related task titles.
// The minimum title length is checked by the service before any network call.
type SuggestionRequest struct {
	Title string `json:"title"`
}

// Validate checks that a title was supplied.
func (r *SuggestionRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return &domain.ValidationError{Fields: map[string]string{"title": domain.MsgRequired}}
	}
	return nil
}
