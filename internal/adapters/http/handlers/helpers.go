package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskmaster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/platform/logging"
)

const (
	// maxIDLength bounds the opaque task ID accepted from the path.
	maxIDLength = 64
	// maxBodyBytes caps JSON request bodies.
	maxBodyBytes = 1 << 20
)

// taskID reads the {id} path parameter. Only presence and size are checked;
// unknown IDs are the service's business.
func taskID(r *http.Request) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	switch {
	case id == "":
		return "", &domain.ValidationError{Fields: map[string]string{"id": domain.MsgRequired}}
	case len(id) > maxIDLength:
		return "", &domain.ValidationError{Fields: map[string]string{"id": "is too long"}}
	}
	return id, nil
}

// requestBody is a JSON request DTO that checks its own fields.
type requestBody interface {
	Validate() error
}

// bindRequest decodes the JSON body of r into dst and validates it. When the
// body is unusable it answers r with a problem and reports false.
func bindRequest[T requestBody](w http.ResponseWriter, r *http.Request, dst T) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if err != nil {
		err = &domain.ValidationError{Fields: map[string]string{"body": "invalid JSON"}}
	} else {
		err = dst.Validate()
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// respond answers r with v encoded as JSON.
func respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response failed",
			slog.Any("error", err))
	}
}
