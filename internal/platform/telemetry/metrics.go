package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// meterName scopes every instrument registered by NewMetrics.
const meterName = "github.com/jsamuelsen11/taskmaster"

// Metrics holds the application's instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// TaskMutationTotal counts applied task store mutations by operation.
	TaskMutationTotal metric.Int64Counter
	// SuggestionRequestTotal counts suggestion requests by result.
	SuggestionRequestTotal metric.Int64Counter
}

// NewMetrics registers the instruments on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(meterName)
	m := &Metrics{}

	histograms := []struct {
		dst  *metric.Float64Histogram
		name string
		desc string
	}{
		{&m.ServerRequestDuration, "http.server.request.duration", "Duration of task API requests"},
		{&m.ClientRequestDuration, "http.client.request.duration", "Duration of suggestion service calls"},
	}
	for _, h := range histograms {
		inst, err := meter.Float64Histogram(h.name, metric.WithDescription(h.desc), metric.WithUnit("s"))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", h.name, err)
		}
		*h.dst = inst
	}

	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
		unit string
	}{
		{&m.ServerRequestTotal, "http.server.request.total", "Task API requests", "{request}"},
		{&m.ClientRequestTotal, "http.client.request.total", "Suggestion service calls", "{request}"},
		{&m.TaskMutationTotal, "taskmaster.task.mutations", "Applied task store mutations", "{mutation}"},
		{&m.SuggestionRequestTotal, "taskmaster.suggestion.requests", "Suggestion requests by result", "{request}"},
	}
	for _, c := range counters {
		inst, err := meter.Int64Counter(c.name, metric.WithDescription(c.desc), metric.WithUnit(c.unit))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", c.name, err)
		}
		*c.dst = inst
	}

	return m, nil
}
