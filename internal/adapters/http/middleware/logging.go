package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/taskmaster/internal/platform/logging"
)

// Logging gives every request a logger tagged with its request and
// correlation IDs, available to handlers through logging.FromContext, and
// logs one line per finished request. Server errors log at error level.
// At debug level the incoming headers are logged too, credentials masked.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqLogger := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLogger)

			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				reqLogger.DebugContext(ctx, "request received",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Group("headers", headerAttrs(r.Header)...),
				)
			}

			rec := recordStatus(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			level := slog.LevelInfo
			if rec.Status() >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			reqLogger.LogAttrs(ctx, level, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(ctx)),
				slog.Int("status", rec.Status()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// headerAttrs renders headers in name order, multiple values comma-joined.
func headerAttrs(h http.Header) []any {
	attrs := make([]any, 0, len(h))
	for _, name := range slices.Sorted(maps.Keys(h)) {
		value := strings.Join(h[name], ",")
		if logging.IsSensitiveHeader(name) {
			value = "[REDACTED]"
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
