// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskmaster/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	taskHandler *handlers.TaskHandler,
	suggestionHandler *handlers.SuggestionHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Task list. Mutations answer with the display-ordered list.
		r.Get("/tasks", taskHandler.ListTasks)
		r.Post("/tasks", taskHandler.CreateTask)
		r.Post("/tasks/batch", taskHandler.CreateTasks)
		r.Post("/tasks/{id}/toggle", taskHandler.ToggleTask)
		r.Put("/tasks/{id}/priority", taskHandler.SetTaskPriority)
		r.Delete("/tasks/{id}", taskHandler.DeleteTask)

		// Suggestions never touch the store.
		r.Post("/suggestions", suggestionHandler.Suggest)
	})

	return r
}
