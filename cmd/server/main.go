// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/taskmaster/internal/adapters/http"
	"github.com/jsamuelsen11/taskmaster/internal/bootstrap"
	"github.com/jsamuelsen11/taskmaster/internal/platform/config"
	"github.com/jsamuelsen11/taskmaster/internal/platform/logging"
	"github.com/jsamuelsen11/taskmaster/internal/platform/telemetry"
)

const (
	serverShutdownTimeout    = 15 * time.Second
	containerShutdownTimeout = 5 * time.Second
	otelShutdownTimeout      = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	tel, err := telemetry.Start(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := bootstrap.New(cfg, logger, tel.Metrics)
	bootstrap.RegisterCore(ctx, injector)
	bootstrap.RegisterHTTP(injector)

	// Resolve the server (eagerly wires the full graph, loading or seeding
	// the task list).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	logger.Info("starting taskmaster",
		slog.String("profile", profile),
		slog.String("storage_backend", cfg.Storage.Backend),
		slog.String("suggestion_base_url", cfg.Suggestion.Client.BaseURL),
	)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Release the store subscription and close storage.
	containerCtx, containerCancel := context.WithTimeout(context.Background(), containerShutdownTimeout)
	defer containerCancel()

	if report := injector.ShutdownWithContext(containerCtx); report != nil && len(report.Errors) > 0 {
		logger.Error("container shutdown error", slog.String("error", report.Error()))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := tel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}
