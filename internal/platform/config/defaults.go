package config

const (
	defaultServerPort = 8080

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "30s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"suggestion.path":                                   "/suggest",
		"suggestion.client.base_url":                        "http://localhost:3400",
		"suggestion.client.timeout":                         "20s",
		"suggestion.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"suggestion.client.circuit_breaker.timeout":         "30s",
		"suggestion.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"suggestion.client.rate_limit.requests_per_second":  0,
		"suggestion.client.rate_limit.burst_size":           defaultRateLimitBurst,

		"storage.backend": "sqlite",
		"storage.path":    "data/taskmaster.db",
		"storage.key":     "tasks",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "taskmaster",
	}
}
