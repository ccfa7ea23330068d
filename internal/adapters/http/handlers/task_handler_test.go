package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/taskmaster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskmaster/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/domain/task"
	"github.com/jsamuelsen11/taskmaster/mocks"
)

func newTaskHandler(t *testing.T) (*handlers.TaskHandler, *mocks.MockTaskService) {
	t.Helper()
	svc := mocks.NewMockTaskService(t)
	return handlers.NewTaskHandler(svc), svc
}

// --- ListTasks ---

func TestListTasks_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	done := validTask()
	done.ID = "task-2"
	done.Completed = true
	svc.EXPECT().List(mock.Anything).Return([]task.Task{validTask(), done})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	h.ListTasks(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskListResponse](t, rec)
	if resp.Count != 2 || resp.Open != 1 || resp.Completed != 1 {
		t.Errorf("Count, Open, Completed = %d, %d, %d, want 2, 1, 1", resp.Count, resp.Open, resp.Completed)
	}
	if resp.Tasks[0].ID != "task-1" {
		t.Errorf("Tasks[0].ID = %q, want service order kept", resp.Tasks[0].ID)
	}
}

func TestListTasks_Empty(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().List(mock.Anything).Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	h.ListTasks(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskListResponse](t, rec)
	if resp.Tasks == nil || resp.Count != 0 {
		t.Errorf("Tasks = %v, Count = %d, want empty array", resp.Tasks, resp.Count)
	}
}

// --- CreateTask ---

func TestCreateTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	created := validTask()
	svc.EXPECT().
		Submit(mock.Anything, task.Draft{Title: "Buy milk", Priority: task.PriorityHigh}, []string(nil)).
		Return([]task.Task{created}, nil)
	svc.EXPECT().List(mock.Anything).Return([]task.Task{created})

	body := jsonBody(t, map[string]any{"title": "Buy milk", "priority": "high"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", body)
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.TaskListResponse](t, rec)
	if resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
}

func TestCreateTask_WithAcceptedSuggestions(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	accepted := []string{"Book flights", "Reserve hotel"}
	svc.EXPECT().
		Submit(mock.Anything, task.Draft{Title: "Plan trip", Priority: task.PriorityLow}, accepted).
		Return([]task.Task{validTask(), validTask(), validTask()}, nil)
	svc.EXPECT().List(mock.Anything).Return([]task.Task{})

	body := jsonBody(t, map[string]any{
		"title":       "Plan trip",
		"priority":    "low",
		"suggestions": accepted,
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", body)
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusCreated)
}

func TestCreateTask_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", bytes.NewBufferString("{bad"))
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateTask_OversizedBody(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	title := strings.Repeat("a", 1<<20)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", jsonBody(t, map[string]string{"title": title}))
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.body" {
		t.Errorf("Errors = %+v, want one body error", resp.Errors)
	}
}

func TestCreateTask_ValidationError(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	body := jsonBody(t, map[string]any{"title": "", "priority": "urgent"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", body)
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 2 {
		t.Errorf("len(Errors) = %d, want 2: %+v", len(resp.Errors), resp.Errors)
	}
}

func TestCreateTask_ServiceValidationError(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().Submit(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &domain.ValidationError{Fields: map[string]string{"title": "must be at least 3 characters"}})

	body := jsonBody(t, map[string]any{"title": "ab"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", body)
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
}

// --- CreateTasks ---

func TestCreateTasks_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().
		AddMany(mock.Anything, []task.Draft{{Title: "Book flights"}, {Title: "Pack bags", Priority: task.PriorityLow}}).
		Return([]task.Task{validTask(), validTask()}, nil)
	svc.EXPECT().List(mock.Anything).Return([]task.Task{validTask()})

	body := jsonBody(t, map[string]any{"tasks": []map[string]string{
		{"title": "Book flights"},
		{"title": "Pack bags", "priority": "low"},
	}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/batch", body)
	h.CreateTasks(rec, req)

	requireStatus(t, rec, http.StatusCreated)
}

func TestCreateTasks_EmptyBatch(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	body := jsonBody(t, map[string]any{"tasks": []any{}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/batch", body)
	h.CreateTasks(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateTasks_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().AddMany(mock.Anything, mock.Anything).
		Return(nil, &domain.ValidationError{Fields: map[string]string{"drafts[0].title": "must be at least 3 characters"}})

	body := jsonBody(t, map[string]any{"tasks": []map[string]string{{"title": "ab"}}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/batch", body)
	h.CreateTasks(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.drafts[0].title" {
		t.Errorf("Errors = %+v, want body.drafts[0].title", resp.Errors)
	}
}

// --- ToggleTask ---

func TestToggleTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	toggled := validTask()
	toggled.Completed = true
	svc.EXPECT().Toggle(mock.Anything, "task-1").Return([]task.Task{toggled})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/task-1/toggle", nil)
	req = withChiParams(req, map[string]string{"id": "task-1"})
	h.ToggleTask(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskListResponse](t, rec)
	if resp.Completed != 1 {
		t.Errorf("Completed = %d, want 1", resp.Completed)
	}
}

func TestToggleTask_UnknownIDReturnsUnchangedList(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().Toggle(mock.Anything, "missing").Return([]task.Task{validTask()})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/missing/toggle", nil)
	req = withChiParams(req, map[string]string{"id": "missing"})
	h.ToggleTask(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestToggleTask_MissingID(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks//toggle", nil)
	req = withChiParams(req, map[string]string{"id": ""})
	h.ToggleTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestToggleTask_OversizedID(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	long := string(bytes.Repeat([]byte("x"), 65))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/x/toggle", nil)
	req = withChiParams(req, map[string]string{"id": long})
	h.ToggleTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- SetTaskPriority ---

func TestSetTaskPriority_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	updated := validTask()
	updated.Priority = task.PriorityHigh
	svc.EXPECT().SetPriority(mock.Anything, "task-1", task.PriorityHigh).Return([]task.Task{updated}, nil)

	body := jsonBody(t, map[string]string{"priority": "high"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/tasks/task-1/priority", body)
	req = withChiParams(req, map[string]string{"id": "task-1"})
	h.SetTaskPriority(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskListResponse](t, rec)
	if resp.Tasks[0].Priority != "high" {
		t.Errorf("Priority = %q, want high", resp.Tasks[0].Priority)
	}
}

func TestSetTaskPriority_InvalidPriority(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	body := jsonBody(t, map[string]string{"priority": "urgent"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/tasks/task-1/priority", body)
	req = withChiParams(req, map[string]string{"id": "task-1"})
	h.SetTaskPriority(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestSetTaskPriority_MissingIDSkipsBody(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/tasks//priority", bytes.NewBufferString("{bad"))
	req = withChiParams(req, map[string]string{"id": " "})
	h.SetTaskPriority(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.id" {
		t.Errorf("Errors = %+v, want id error", resp.Errors)
	}
}

// --- DeleteTask ---

func TestDeleteTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().Delete(mock.Anything, "task-1").Return([]task.Task{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/tasks/task-1", nil)
	req = withChiParams(req, map[string]string{"id": "task-1"})
	h.DeleteTask(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskListResponse](t, rec)
	if resp.Count != 0 {
		t.Errorf("Count = %d, want 0", resp.Count)
	}
}

func TestDeleteTask_MissingID(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/tasks/", nil)
	req = withChiParams(req, map[string]string{})
	h.DeleteTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}
