// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/taskmaster/internal/domain/task"
)

// TaskResponse represents a single task in HTTP responses.
type TaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Priority    string `json:"priority"`
	// CreatedAt is Unix milliseconds; CreatedAtISO is the same instant in RFC 3339.
	CreatedAt    int64  `json:"created_at"`
	CreatedAtISO string `json:"created_at_iso"`
}

// ToTaskResponse converts a domain Task entity to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Completed:    t.Completed,
		Priority:     t.Priority.String(),
		CreatedAt:    t.CreatedAt,
		CreatedAtISO: time.UnixMilli(t.CreatedAt).UTC().Format(time.RFC3339),
	}
}

// TaskListResponse represents the display-ordered task list in HTTP responses.
type TaskListResponse struct {
	Tasks     []TaskResponse `json:"tasks"`
	Count     int            `json:"count"`
	Open      int            `json:"open"`
	Completed int            `json:"completed"`
}

// ToTaskListResponse converts a slice of domain Tasks to an HTTP list
// response DTO. The input order is kept.
func ToTaskListResponse(tasks []task.Task) TaskListResponse {
	items := make([]TaskResponse, len(tasks))
	for i := range tasks {
		items[i] = ToTaskResponse(&tasks[i])
	}
	open, completed := task.Counts(tasks)
	return TaskListResponse{
		Tasks:     items,
		Count:     len(items),
		Open:      open,
		Completed: completed,
	}
}

// SuggestionResponse lists related task titles returned by the suggestion
// service.
type SuggestionResponse struct {
	Title       string   `json:"title"`
	Suggestions []string `json:"suggestions"`
}

// ToSuggestionResponse builds a SuggestionResponse. A nil list is rendered
// as an empty JSON array.
func ToSuggestionResponse(title string, suggestions []string) SuggestionResponse {
	if suggestions == nil {
		suggestions = []string{}
	}
	return SuggestionResponse{Title: title, Suggestions: suggestions}
}
