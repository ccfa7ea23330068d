// Package acl is the anti-corruption layer in front of the suggestion
// service. Its wire format lives in the acl/suggestion subpackage; nothing
// the service says crosses into the domain except a list of titles or
// ErrSuggestionUnavailable.
package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/taskmaster/internal/adapters/clients/acl/suggestion"
	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/platform/httpclient"
	"github.com/jsamuelsen11/taskmaster/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// ErrSuggestionUnavailable is wrapped by every suggestion failure: network
// errors, non-200 answers, malformed bodies and missing fields alike.
var ErrSuggestionUnavailable = fmt.Errorf("suggestion service: %w", domain.ErrUnavailable)

const (
	// maxBodySize bounds how much of any answer is read.
	maxBodySize = 1 << 20
	// maxDetailSize bounds the excerpt of a rejected answer kept in errors.
	maxDetailSize = 256
)

// Outcome labels for taskmaster.suggestion.requests.
const (
	outcomeSuccess   = "success"
	outcomeError     = "error"
	outcomeMalformed = "malformed"
)

var (
	_ ports.SuggestionClient = (*SuggestionClient)(nil)
	_ ports.HealthChecker    = (*SuggestionClient)(nil)
)

// SuggestionClient implements [ports.SuggestionClient]. One Suggest call is
// one POST of {"taskName": title}; the answer must be a 200 carrying
// {"suggestions": [...]}.
type SuggestionClient struct {
	http    *httpclient.Client
	path    string
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewSuggestionClient creates a SuggestionClient posting to path through
// client. metrics may be nil.
func NewSuggestionClient(client *httpclient.Client, path string, metrics *telemetry.Metrics, logger *slog.Logger) *SuggestionClient {
	return &SuggestionClient{http: client, path: path, metrics: metrics, logger: logger}
}

// Suggest returns titles related to title. The list may be empty.
func (c *SuggestionClient) Suggest(ctx context.Context, title string) ([]string, error) {
	raw, err := c.post(ctx, suggestion.ToRequest(title))
	if err != nil {
		c.logger.WarnContext(ctx, "suggestion request failed",
			slog.String("title", title),
			slog.String("error", err.Error()),
		)
		c.record(ctx, outcomeError)
		return nil, fmt.Errorf("%w: %s", ErrSuggestionUnavailable, err)
	}

	var dto suggestion.ResponseDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		c.record(ctx, outcomeMalformed)
		return nil, fmt.Errorf("%w: decoding answer: %s", ErrSuggestionUnavailable, err)
	}
	titles, err := suggestion.ToDomain(dto)
	if err != nil {
		c.record(ctx, outcomeMalformed)
		return nil, fmt.Errorf("%w: %s", ErrSuggestionUnavailable, err)
	}

	c.record(ctx, outcomeSuccess)
	return titles, nil
}

// post sends body and returns the raw 200 answer. Any other status becomes
// an error carrying a short excerpt of what the service said.
func (c *SuggestionClient) post(ctx context.Context, body suggestion.RequestDTO) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.http.URL(c.path), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading answer: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, excerpt(raw))
	}
	return raw, nil
}

func (c *SuggestionClient) record(ctx context.Context, outcome string) {
	if c.metrics == nil {
		return
	}
	c.metrics.SuggestionRequestTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrResult.String(outcome)))
}

// excerpt returns the problem "detail" of an RFC 7807 body when there is
// one, otherwise the start of the raw body.
func excerpt(raw []byte) string {
	var problem struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(raw, &problem) == nil && problem.Detail != "" {
		return problem.Detail
	}
	text := strings.TrimSpace(string(raw))
	if len(text) > maxDetailSize {
		text = text[:maxDetailSize]
	}
	if text == "" {
		return "empty body"
	}
	return text
}
