package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/taskmaster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskmaster/internal/domain/task"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// TaskHandler handles HTTP requests for the task list. Every mutation
// answers with the recomputed display-ordered list.
type TaskHandler struct {
	svc ports.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given service port.
func NewTaskHandler(svc ports.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// ListTasks handles GET /api/v1/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, dto.ToTaskListResponse(h.svc.List(r.Context())))
}

// CreateTask handles POST /api/v1/tasks. Accepted suggestion titles in the
// body are added in the same batch as the form task.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if !bindRequest(w, r, &req) {
		return
	}

	if _, err := h.svc.Submit(r.Context(), req.ToDraft(), req.Suggestions); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.writeList(w, r, http.StatusCreated)
}

// CreateTasks handles POST /api/v1/tasks/batch.
func (h *TaskHandler) CreateTasks(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchCreateRequest
	if !bindRequest(w, r, &req) {
		return
	}

	if _, err := h.svc.AddMany(r.Context(), req.ToDrafts()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.writeList(w, r, http.StatusCreated)
}

// ToggleTask handles POST /api/v1/tasks/{id}/toggle.
func (h *TaskHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToTaskListResponse(h.svc.Toggle(r.Context(), id)))
}

// SetTaskPriority handles PUT /api/v1/tasks/{id}/priority.
func (h *TaskHandler) SetTaskPriority(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SetPriorityRequest
	if !bindRequest(w, r, &req) {
		return
	}

	tasks, err := h.svc.SetPriority(r.Context(), id, task.Priority(req.Priority))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// DeleteTask handles DELETE /api/v1/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToTaskListResponse(h.svc.Delete(r.Context(), id)))
}

func (h *TaskHandler) writeList(w http.ResponseWriter, r *http.Request, status int) {
	respond(w, r, status, dto.ToTaskListResponse(h.svc.List(r.Context())))
}
