package ports

import "context"

// SuggestionClient defines the client port for the external suggestion
// service. Implemented by the ACL adapter; called by the application layer.
type SuggestionClient interface {
	// Suggest returns task titles related to title. The list may be empty.
	// Every failure (network, non-success status, malformed body) is
	// reported as an error wrapping domain.ErrUnavailable.
	Suggest(ctx context.Context, title string) ([]string, error)
}
