package ports

import (
	"context"
	"errors"
)

// ErrDegraded marks a failed check on a dependency the task list can work
// without. The service stays ready while only such checks fail.
var ErrDegraded = errors.New("degraded")

// HealthChecker reports whether one dependency of the task API is usable.
type HealthChecker interface {
	// Name labels the check in readiness reports, e.g. "storage".
	Name() string
	// HealthCheck returns nil when the dependency is usable.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs the registered checks for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll returns one result per checker name, nil when healthy and
	// wrapping ErrDegraded when only an optional dependency failed.
	CheckAll(ctx context.Context) map[string]error
}
