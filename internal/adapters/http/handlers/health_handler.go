package handlers

import (
	"errors"
	"net/http"

	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// checkOK reports a passing check, and a live process.
const checkOK = "ok"

// Readiness states.
const (
	stateReady    = "ready"
	stateDegraded = "degraded"
	stateNotReady = "not_ready"
)

type readinessBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler over registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. A running process is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, map[string]string{"status": checkOK})
}

// Readiness handles GET /health/ready. Any failed required check answers
// 503 not_ready. Failed optional checks, such as the suggestion service,
// answer 200 degraded: the task list still works without them.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	body := readinessBody{Status: stateReady, Checks: map[string]string{}}
	code := http.StatusOK

	for name, err := range h.registry.CheckAll(r.Context()) {
		if err == nil {
			body.Checks[name] = checkOK
			continue
		}
		body.Checks[name] = err.Error()
		if errors.Is(err, ports.ErrDegraded) {
			if body.Status == stateReady {
				body.Status = stateDegraded
			}
			continue
		}
		body.Status = stateNotReady
		code = http.StatusServiceUnavailable
	}

	respond(w, r, code, body)
}
