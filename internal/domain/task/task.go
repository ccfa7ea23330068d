// Package task holds the Task entity, the Draft input used to create tasks,
// and the pure display-order policy applied to task collections.
package task

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
)

// Title and description limits enforced at the creation boundary.
const (
	MinTitleLength       = 3
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

// Task is a single to-do item. ID and CreatedAt are assigned by the store
// and never change afterwards.
type Task struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	Priority    Priority
	// CreatedAt is a Unix timestamp in milliseconds.
	CreatedAt int64
}

// Draft carries the caller-supplied fields of a new Task.
type Draft struct {
	Title       string
	Description string
	Priority    Priority
}

// Normalize returns a copy of the draft with the title trimmed and the
// default priority applied when none was given.
func (d Draft) Normalize() Draft {
	d.Title = strings.TrimSpace(d.Title)
	if d.Priority == "" {
		d.Priority = DefaultPriority
	}
	return d
}

// Validate checks the creation rules for a Draft.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass. Callers validate before handing drafts to the store.
func (d *Draft) Validate() error {
	fields := make(map[string]string)

	title := strings.TrimSpace(d.Title)
	switch n := utf8.RuneCountInString(title); {
	case n == 0:
		fields["title"] = domain.MsgRequired
	case n < MinTitleLength:
		fields["title"] = fmt.Sprintf("must be at least %d characters", MinTitleLength)
	case n > MaxTitleLength:
		fields["title"] = fmt.Sprintf("must be at most %d characters", MaxTitleLength)
	}
	if utf8.RuneCountInString(d.Description) > MaxDescriptionLength {
		fields["description"] = fmt.Sprintf("must be at most %d characters", MaxDescriptionLength)
	}
	if d.Priority != "" && !d.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", d.Priority)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
