package task

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
)

// requireValidationField is a test helper that asserts err wraps domain.ErrValidation
// and the resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestPriority_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		priority Priority
		want     bool
	}{
		{name: "high is valid", priority: PriorityHigh, want: true},
		{name: "medium is valid", priority: PriorityMedium, want: true},
		{name: "low is valid", priority: PriorityLow, want: true},
		{name: "empty string is invalid", priority: "", want: false},
		{name: "unknown value is invalid", priority: "urgent", want: false},
		{name: "case sensitive", priority: "High", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.priority.IsValid(); got != tt.want {
				t.Errorf("Priority(%q).IsValid() = %v, want %v", tt.priority, got, tt.want)
			}
		})
	}
}

func TestPriority_Rank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		priority Priority
		want     int
	}{
		{PriorityHigh, 0},
		{PriorityMedium, 1},
		{PriorityLow, 2},
		{"bogus", 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			t.Parallel()
			if got := tt.priority.Rank(); got != tt.want {
				t.Errorf("Priority(%q).Rank() = %d, want %d", tt.priority, got, tt.want)
			}
		})
	}
}

func TestPriorities_OrderedByRank(t *testing.T) {
	t.Parallel()

	for i, p := range Priorities {
		if p.Rank() != i {
			t.Errorf("Priorities[%d] = %q has rank %d, want %d", i, p, p.Rank(), i)
		}
	}
}

func TestDraft_Normalize(t *testing.T) {
	t.Parallel()

	got := Draft{Title: "  Buy milk \n", Description: " keep "}.Normalize()

	if got.Title != "Buy milk" {
		t.Errorf("Title = %q, want %q", got.Title, "Buy milk")
	}
	if got.Priority != PriorityMedium {
		t.Errorf("Priority = %q, want %q", got.Priority, PriorityMedium)
	}
	if got.Description != " keep " {
		t.Errorf("Description = %q, want it untouched", got.Description)
	}

	kept := Draft{Title: "Ship it", Priority: PriorityLow}.Normalize()
	if kept.Priority != PriorityLow {
		t.Errorf("Priority = %q, want explicit %q kept", kept.Priority, PriorityLow)
	}
}

func TestDraft_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid draft passes", func(t *testing.T) {
		t.Parallel()
		d := Draft{Title: "Buy milk", Description: "2 litres", Priority: PriorityHigh}
		if err := d.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("empty priority is allowed", func(t *testing.T) {
		t.Parallel()
		d := Draft{Title: "Buy milk"}
		if err := d.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("boundary lengths pass", func(t *testing.T) {
		t.Parallel()
		d := Draft{
			Title:       strings.Repeat("a", MaxTitleLength),
			Description: strings.Repeat("d", MaxDescriptionLength),
		}
		if err := d.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
		short := Draft{Title: "  abc  "}
		if err := short.Validate(); err != nil {
			t.Errorf("Validate() on trimmed 3-char title = %v, want nil", err)
		}
	})

	tests := []struct {
		name  string
		draft Draft
		field string
	}{
		{name: "empty title", draft: Draft{Title: ""}, field: "title"},
		{name: "whitespace title", draft: Draft{Title: "    "}, field: "title"},
		{name: "short title after trim", draft: Draft{Title: " ab "}, field: "title"},
		{name: "long title", draft: Draft{Title: strings.Repeat("x", MaxTitleLength+1)}, field: "title"},
		{
			name:  "long description",
			draft: Draft{Title: "Valid", Description: strings.Repeat("y", MaxDescriptionLength+1)},
			field: "description",
		},
		{name: "invalid priority", draft: Draft{Title: "Valid", Priority: "urgent"}, field: "priority"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			requireValidationField(t, tt.draft.Validate(), tt.field)
		})
	}
}

func TestDraft_ValidateCountsRunes(t *testing.T) {
	t.Parallel()

	// Three multi-byte characters are a valid 3-character title.
	d := Draft{Title: "日本語"}
	if err := d.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestSeedTasks(t *testing.T) {
	t.Parallel()

	const now = int64(1_700_000_000_000)
	seed := SeedTasks(now)

	if len(seed) != 4 {
		t.Fatalf("len(SeedTasks) = %d, want 4", len(seed))
	}

	ids := make(map[string]bool, len(seed))
	for _, tk := range seed {
		if ids[tk.ID] {
			t.Errorf("duplicate seed id %q", tk.ID)
		}
		ids[tk.ID] = true
		if !tk.Priority.IsValid() {
			t.Errorf("seed %q has invalid priority %q", tk.ID, tk.Priority)
		}
	}

	open, completed := Counts(seed)
	if open != 2 || completed != 2 {
		t.Errorf("Counts(seed) = (%d, %d), want (2, 2)", open, completed)
	}
}
