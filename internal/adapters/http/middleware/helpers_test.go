package middleware_test

import (
	"bytes"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/taskmaster/internal/platform/config"
	"github.com/jsamuelsen11/taskmaster/internal/platform/httpclient"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newSuggestionHTTPClient(baseURL string) *httpclient.Client {
	return httpclient.New(&config.ClientConfig{
		BaseURL: baseURL,
		Timeout: time.Second,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Minute,
			HalfOpenLimit: 1,
		},
	}, "suggestion-api", nil, slog.New(slog.DiscardHandler))
}
