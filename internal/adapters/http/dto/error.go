package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/platform/logging"
)

// ErrorResponse is an RFC 9457 problem body.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail names one rejected request field.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// SuggestionUnavailableDetail is the user-facing notice returned when the
// suggestion service cannot answer. Downstream error text is never exposed.
const SuggestionUnavailableDetail = "Could not fetch suggestions. Please try again later."

// problemStatus lists the errors the task API can surface. Anything else is
// a 500.
var problemStatus = []struct {
	target error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
}

// NewErrorResponse builds the problem body for err as an answer to r.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := statusFor(err)
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	switch {
	case status == http.StatusBadGateway:
		resp.Detail = SuggestionUnavailableDetail
	case errors.As(err, &verr):
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse answers r with the problem body for err.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding problem response failed",
			slog.Any("error", encErr))
	}
}

func statusFor(err error) int {
	for _, p := range problemStatus {
		if errors.Is(err, p.target) {
			return p.status
		}
	}
	return http.StatusInternalServerError
}

// fieldDetails turns validation fields into details ordered by location.
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	sort.Slice(details, func(i, j int) bool { return details[i].Location < details[j].Location })
	return details
}
