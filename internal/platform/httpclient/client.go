// Package httpclient sends outbound requests to one downstream service.
//
// Every call is a single attempt. It passes the circuit breaker, waits for
// the optional rate limiter, gets request metadata and trace headers, and
// makes one round trip. A transport error or a 5xx answer counts against the
// breaker; any other answer is handed back to the caller untouched.
//
//	client := httpclient.New(&cfg.Suggestion.Client, "suggestion-api", metrics, logger)
//	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, client.URL("/suggest"), body)
//	resp, err := client.Do(ctx, req)
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/taskmaster/internal/platform/config"
	"github.com/jsamuelsen11/taskmaster/internal/platform/telemetry"
)

// maxStatusDetail caps how much of a 5xx body is kept in a StatusError.
const maxStatusDetail = 512

// Outcome labels recorded on the client request metrics.
const (
	resultSuccess  = "success"
	resultRejected = "rejected"
	resultFailed   = "failed"
	resultBreaker  = "circuit_open"
)

// StatusError reports a 5xx answer. The response body has already been read
// and closed.
type StatusError struct {
	Service string
	Code    int
	Detail  string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s answered %d", e.Service, e.Code)
	}
	return fmt.Sprintf("%s answered %d: %s", e.Service, e.Code, e.Detail)
}

// Client is a single-attempt HTTP client for one downstream service.
type Client struct {
	http    *http.Client
	baseURL string
	service string
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter // nil when rate limiting is off
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a Client for service from cfg. metrics may be nil.
func New(cfg *config.ClientConfig, service string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		service: service,
		metrics: metrics,
		logger:  logger,
	}

	maxFailures := cfg.CircuitBreaker.MaxFailures
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        service,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= maxFailures
		},
		IsExcluded: func(err error) bool {
			return errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	return c
}

// Do sends req once. On success the caller owns resp.Body. A 5xx answer is
// returned as a *StatusError with a nil response; a breaker rejection wraps
// gobreaker.ErrOpenState or gobreaker.ErrTooManyRequests.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		return c.send(ctx, req)
	})

	c.observe(ctx, req.Method, start, resp, err)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	return resp, nil
}

// URL joins path onto the base URL. A malformed base URL falls back to
// concatenation so the failure surfaces when the request is sent.
func (c *Client) URL(path string) string {
	joined, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return c.baseURL + path
	}
	return joined
}

// State returns the circuit breaker state.
func (c *Client) State() gobreaker.State {
	return c.breaker.State()
}

// Service returns the downstream service name used in spans and metrics.
func (c *Client) Service() string {
	return c.service
}

func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("waiting for rate limiter: %w", err)
		}
	}

	setMetadataHeaders(ctx, req.Header)

	ctx, span := otel.GetTracerProvider().Tracer("httpclient").Start(ctx,
		"HTTP "+req.Method+" "+c.service,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.service),
		),
	)
	defer span.End()
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req.WithContext(ctx))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode >= http.StatusInternalServerError {
		serr := &StatusError{Service: c.service, Code: resp.StatusCode, Detail: readDetail(resp)}
		span.SetStatus(codes.Error, serr.Error())
		// The caller never sees this response, so report the code for metrics.
		return &http.Response{StatusCode: resp.StatusCode}, serr
	}
	return resp, nil
}

func (c *Client) observe(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}

	result := resultSuccess
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = resultBreaker
	case err != nil:
		result = resultFailed
	case status >= http.StatusBadRequest:
		result = resultRejected
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.service),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// readDetail reads a short excerpt of the body and closes it.
func readDetail(resp *http.Response) string {
	defer resp.Body.Close()
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxStatusDetail))
	return strings.TrimSpace(string(b))
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
