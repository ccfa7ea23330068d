package handlers

import (
	"net/http"
	"strings"

	"github.com/jsamuelsen11/taskmaster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// SuggestionHandler handles requests for related task titles.
type SuggestionHandler struct {
	svc ports.TaskService
}

// NewSuggestionHandler creates a new SuggestionHandler with the given service port.
func NewSuggestionHandler(svc ports.TaskService) *SuggestionHandler {
	return &SuggestionHandler{svc: svc}
}

// Suggest handles POST /api/v1/suggestions. The store is never touched;
// callers add chosen titles through POST /api/v1/tasks.
func (h *SuggestionHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req dto.SuggestionRequest
	if !bindRequest(w, r, &req) {
		return
	}

	suggestions, err := h.svc.RequestSuggestions(r.Context(), req.Title)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToSuggestionResponse(strings.TrimSpace(req.Title), suggestions))
}
