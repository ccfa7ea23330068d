package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Is(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{Fields: map[string]string{"title": MsgRequired}}
	wrapped := fmt.Errorf("adding task: %w", verr)

	if !errors.Is(wrapped, ErrValidation) {
		t.Errorf("errors.Is(wrapped, ErrValidation) = false, want true")
	}
	if errors.Is(wrapped, ErrNotFound) {
		t.Errorf("errors.Is(wrapped, ErrNotFound) = true, want false")
	}
}

func TestValidationError_As(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("outer: %w", &ValidationError{Fields: map[string]string{
		"title":       MsgRequired,
		"description": "must be at most 500 characters",
	}})

	var verr *ValidationError
	if !errors.As(wrapped, &verr) {
		t.Fatal("errors.As(wrapped, *ValidationError) = false, want true")
	}
	if len(verr.Fields) != 2 {
		t.Errorf("len(Fields) = %d, want 2", len(verr.Fields))
	}
	if verr.Fields["title"] != MsgRequired {
		t.Errorf("Fields[\"title\"] = %q, want %q", verr.Fields["title"], MsgRequired)
	}
}

func TestValidationError_ErrorIsDeterministic(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{Fields: map[string]string{
		"title":    "b",
		"priority": "a",
	}}

	want := "validation error: priority: a; title: b"
	for range 5 {
		if got := verr.Error(); got != want {
			t.Fatalf("Error() = %q, want %q", got, want)
		}
	}
}
