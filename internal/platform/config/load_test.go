package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskmaster/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Storage.Backend != "file" {
		t.Errorf("Storage.Backend = %q, want \"file\" for local", cfg.Storage.Backend)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("Storage.Backend = %q, want \"sqlite\"", cfg.Storage.Backend)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Suggestion.Client.RateLimit.RequestsPerSecond != 2 {
		t.Errorf("Suggestion.Client.RateLimit.RequestsPerSecond = %v, want 2",
			cfg.Suggestion.Client.RateLimit.RequestsPerSecond)
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Suggestion.Path != "/suggest" {
		t.Errorf("Suggestion.Path = %q, want \"/suggest\" (from base)", cfg.Suggestion.Path)
	}
	if cfg.Suggestion.Client.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Suggestion.Client.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Suggestion.Client.CircuitBreaker.MaxFailures)
	}
	if cfg.Storage.Key != "tasks" {
		t.Errorf("Storage.Key = %q, want \"tasks\" (from base)", cfg.Storage.Key)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: warn\n")
	writeFile(t, filepath.Join(dir, "mini.yaml"), "storage:\n  backend: file\n")

	cfg, err := config.Load("mini", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\"", cfg.Log.Level)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 5s (default)", cfg.Server.ReadTimeout)
	}
	if cfg.Suggestion.Client.Timeout != 20*time.Second {
		t.Errorf("Suggestion.Client.Timeout = %v, want 20s (default)", cfg.Suggestion.Client.Timeout)
	}
	if cfg.Storage.Backend != "file" {
		t.Errorf("Storage.Backend = %q, want \"file\"", cfg.Storage.Backend)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SUGGESTION_CLIENT_CIRCUIT_BREAKER_MAX_FAILURES", "3")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Suggestion.Client.CircuitBreaker.MaxFailures != 3 {
		t.Errorf("Suggestion.Client.CircuitBreaker.MaxFailures = %d, want 3 (env override)",
			cfg.Suggestion.Client.CircuitBreaker.MaxFailures)
	}
}

func TestLoad_IgnoresRetrySettings(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SUGGESTION_CLIENT_RETRY_MAX_ATTEMPTS", "3")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	// The suggestion client has no retry knob; the stray variable must not
	// break loading either.
	if cfg.Suggestion.Client.Timeout != 20*time.Second {
		t.Errorf("Suggestion.Client.Timeout = %v, want 20s", cfg.Suggestion.Client.Timeout)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_RejectsUnsafeProfile(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", `a\b`, "x..y"} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "valid config", mutate: func(*config.Config) {}},
		{name: "invalid port", mutate: func(c *config.Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "invalid log level", mutate: func(c *config.Config) { c.Log.Level = "verbose" }, wantErr: true},
		{name: "suggestion path without slash", mutate: func(c *config.Config) { c.Suggestion.Path = "suggest" }, wantErr: true},
		{name: "missing base url", mutate: func(c *config.Config) { c.Suggestion.Client.BaseURL = "" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *config.Config) { c.Suggestion.Client.Timeout = 0 }, wantErr: true},
		{name: "zero breaker failures", mutate: func(c *config.Config) { c.Suggestion.Client.CircuitBreaker.MaxFailures = 0 }, wantErr: true},
		{
			name: "rate limit without burst",
			mutate: func(c *config.Config) {
				c.Suggestion.Client.RateLimit = config.RateLimitConfig{RequestsPerSecond: 1}
			},
			wantErr: true,
		},
		{name: "unknown storage backend", mutate: func(c *config.Config) { c.Storage.Backend = "redis" }, wantErr: true},
		{name: "storage key with separator", mutate: func(c *config.Config) { c.Storage.Key = "a/b" }, wantErr: true},
		{
			name: "otlp without endpoint",
			mutate: func(c *config.Config) {
				c.Telemetry = config.TelemetryConfig{Enabled: true, Exporter: "otlp", ServiceName: "taskmaster"}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Suggestion: config.SuggestionConfig{
			Path: "/suggest",
			Client: config.ClientConfig{
				BaseURL: "http://localhost:3400",
				Timeout: 20 * time.Second,
				CircuitBreaker: config.CircuitBreakerConfig{
					MaxFailures:   5,
					Timeout:       30 * time.Second,
					HalfOpenLimit: 1,
				},
			},
		},
		Storage: config.StorageConfig{
			Backend: "sqlite",
			Path:    "data/taskmaster.db",
			Key:     "tasks",
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}
