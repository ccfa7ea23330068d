package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/taskmaster/internal/platform/httpclient"
)

// Request metadata headers. Both are echoed on the response and forwarded
// on calls to the suggestion service.
const (
	headerRequestID     = "X-Request-ID"
	headerCorrelationID = "X-Correlation-ID"
)

// maxRequestIDLength caps caller-supplied request IDs; longer ones are
// replaced.
const maxRequestIDLength = 128

type idKey int

const (
	requestIDKey idKey = iota
	correlationIDKey
)

// WithRequestID stores id in ctx for handlers and for outbound calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return httpclient.WithRequestID(context.WithValue(ctx, requestIDKey, id), id)
}

// WithCorrelationID stores id in ctx for handlers and for outbound calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return httpclient.WithCorrelationID(context.WithValue(ctx, correlationIDKey, id), id)
}

// RequestIDFromContext returns the request ID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// CorrelationIDFromContext returns the correlation ID, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

// RequestID tags each request with the caller's X-Request-ID, or with a
// fresh UUID when the header is missing or oversized.
func RequestID() func(http.Handler) http.Handler {
	return tagRequests(headerRequestID, WithRequestID, func(_ *http.Request, id string) string {
		if id == "" || len(id) > maxRequestIDLength {
			return uuid.NewString()
		}
		return id
	})
}

// CorrelationID tags each request with the caller's X-Correlation-ID and
// falls back to the request ID, so it must run after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return tagRequests(headerCorrelationID, WithCorrelationID, func(r *http.Request, id string) string {
		if id == "" {
			return RequestIDFromContext(r.Context())
		}
		return id
	})
}

func tagRequests(
	header string,
	store func(context.Context, string) context.Context,
	choose func(r *http.Request, sent string) string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := choose(r, r.Header.Get(header))
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(store(r.Context(), id)))
		})
	}
}
