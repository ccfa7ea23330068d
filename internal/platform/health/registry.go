// Package health runs the readiness checks of the task API: storage must
// be reachable, while the suggestion service is optional.
package health

import (
	"context"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/taskmaster/internal/platform/fanout"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// maxConcurrentChecks bounds how many checks run at once.
const maxConcurrentChecks = 4

var _ ports.HealthRegistry = (*Registry)(nil)

type entry struct {
	checker  ports.HealthChecker
	optional bool
}

// Registry implements [ports.HealthRegistry]. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries []entry
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a dependency the service cannot be ready without.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.add(entry{checker: checker})
}

// RegisterOptional adds a dependency whose failure only degrades the
// service. Its failed results wrap ports.ErrDegraded.
func (r *Registry) RegisterOptional(checker ports.HealthChecker) {
	r.add(entry{checker: checker, optional: true})
}

func (r *Registry) add(e entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

// CheckAll runs every check concurrently and keys the results by checker
// name. When two checkers share a name, the later registration wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	entries := append([]entry(nil), r.entries...)
	r.mu.RUnlock()

	outcomes := fanout.Run(ctx, maxConcurrentChecks, entries,
		func(ctx context.Context, e entry) (struct{}, error) {
			return struct{}{}, e.checker.HealthCheck(ctx)
		})

	results := make(map[string]error, len(entries))
	for i, e := range entries {
		err := outcomes[i].Err
		if err != nil && e.optional {
			err = fmt.Errorf("%w: %w", ports.ErrDegraded, err)
		}
		results[e.checker.Name()] = err
	}
	return results
}
