package acl

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker/v2"
)

// Name identifies the client in the health registry. It is also the
// service name given to the underlying httpclient.
func (c *SuggestionClient) Name() string {
	return c.http.Service()
}

// HealthCheck reports the suggestion breaker without calling the service.
// A half-open breaker is reported as healthy: it is already letting a trial
// request through, and tasks stay usable either way.
func (c *SuggestionClient) HealthCheck(_ context.Context) error {
	if state := c.http.State(); state == gobreaker.StateOpen {
		return fmt.Errorf("%s: circuit breaker open, suggestions are failing fast", c.Name())
	}
	return nil
}
