// Package suggestion implements the Anti-Corruption Layer translators for
// the downstream suggestion service.
package suggestion

// RequestDTO matches the suggestion service's request body.
type RequestDTO struct {
	TaskName string `json:"taskName"`
}

// ResponseDTO matches the suggestion service's response body. Suggestions
// is a pointer so a missing or null field can be told apart from an empty
// list.
type ResponseDTO struct {
	Suggestions *[]string `json:"suggestions"`
}
