// Package bootstrap wires the service graph with samber/do. Both the HTTP
// server and the taskctl CLI build their dependencies here so that they
// share one store, one persistence hook and one suggestion client setup.
package bootstrap

import (
	"context"
	"log/slog"
	nethttp "net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/samber/do/v2"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/taskmaster/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/taskmaster/internal/adapters/http"
	"github.com/jsamuelsen11/taskmaster/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskmaster/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/taskmaster/internal/adapters/storage"
	"github.com/jsamuelsen11/taskmaster/internal/app"
	"github.com/jsamuelsen11/taskmaster/internal/app/store"
	"github.com/jsamuelsen11/taskmaster/internal/platform/config"
	"github.com/jsamuelsen11/taskmaster/internal/platform/health"
	"github.com/jsamuelsen11/taskmaster/internal/platform/httpclient"
	"github.com/jsamuelsen11/taskmaster/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// SuggestionServiceName labels the suggestion client in logs, metrics,
// spans and health reports.
const SuggestionServiceName = "suggestion-api"

// New creates a root injector holding cfg, logger and metrics. metrics may
// be nil when telemetry is disabled.
func New(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)

	return injector
}

// RegisterCore registers storage, the task store, the suggestion client and
// the task service. ctx bounds the initial load from storage.
func RegisterCore(ctx context.Context, injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*storage.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return storage.Open(ctx, cfg.Storage)
	})

	do.Provide(injector, func(i do.Injector) (*storage.Persister, error) {
		repo := do.MustInvoke[*storage.Repository](i)
		logger := do.MustInvoke[*slog.Logger](i)
		return storage.NewPersister(repo, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*store.Store, error) {
		persister := do.MustInvoke[*storage.Persister](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return NewStore(ctx, persister, metrics), nil
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		logger := do.MustInvoke[*slog.Logger](i)
		return httpclient.New(&cfg.Suggestion.Client, SuggestionServiceName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.SuggestionClient, error) {
		cfg := do.MustInvoke[*config.Config](i)
		client := do.MustInvoke[*httpclient.Client](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		logger := do.MustInvoke[*slog.Logger](i)
		return acl.NewSuggestionClient(client, cfg.Suggestion.Path, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SuggestionClient, error) {
		return do.MustInvoke[*acl.SuggestionClient](i), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.TaskService, error) {
		s := do.MustInvoke[*store.Store](i)
		client := do.MustInvoke[ports.SuggestionClient](i)
		logger := do.MustInvoke[*slog.Logger](i)
		return app.NewTaskService(s, client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		return do.MustInvoke[*app.TaskService](i), nil
	})
}

// RegisterHTTP registers the health registry, handlers, router and server.
// RegisterCore must have been called on the same injector.
func RegisterHTTP(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvoke[*storage.Repository](i))
		registry.RegisterOptional(do.MustInvoke[*acl.SuggestionClient](i))
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TaskHandler, error) {
		return handlers.NewTaskHandler(do.MustInvoke[ports.TaskService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.SuggestionHandler, error) {
		return handlers.NewSuggestionHandler(do.MustInvoke[ports.TaskService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		logger := do.MustInvoke[*slog.Logger](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(
			do.MustInvoke[*handlers.TaskHandler](i),
			do.MustInvoke[*handlers.SuggestionHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			chimw.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		logger := do.MustInvoke[*slog.Logger](i)
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}

// NewStore loads the initial collection through persister (seeding on first
// run) and registers the write-through hooks: every mutation is saved, then
// counted when metrics is non-nil. Saves ignore caller cancellation so a
// dropped request cannot lose a committed mutation.
func NewStore(ctx context.Context, persister *storage.Persister, metrics *telemetry.Metrics) *store.Store {
	s := store.New(persister.Bootstrap(ctx))

	s.OnMutation(func(ctx context.Context, m store.Mutation) {
		persister.Save(context.WithoutCancel(ctx), m.Tasks)
	})
	if metrics != nil {
		s.OnMutation(func(ctx context.Context, m store.Mutation) {
			metrics.TaskMutationTotal.Add(ctx, 1,
				metric.WithAttributes(telemetry.AttrOperation.String(m.Op.String())))
		})
	}

	return s
}
