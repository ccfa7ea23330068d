package task

import (
	"cmp"
	"slices"
)

// OrderForDisplay returns the tasks in display order without modifying the
// input:
//
//  1. incomplete tasks before completed tasks;
//  2. incomplete tasks by ascending priority rank (high, medium, low);
//  3. then newest CreatedAt first.
//
// Completed tasks skip rule 2. Remaining ties keep their relative input
// order, so batch-added tasks sharing a timestamp stay in the order they
// were submitted. The result is idempotent.
func OrderForDisplay(tasks []Task) []Task {
	ordered := slices.Clone(tasks)
	slices.SortStableFunc(ordered, compareForDisplay)
	return ordered
}

func compareForDisplay(a, b Task) int {
	if a.Completed != b.Completed {
		if a.Completed {
			return 1
		}
		return -1
	}
	if !a.Completed {
		if c := cmp.Compare(a.Priority.Rank(), b.Priority.Rank()); c != 0 {
			return c
		}
	}
	return cmp.Compare(b.CreatedAt, a.CreatedAt)
}

// Counts reports how many tasks are open and how many are completed.
func Counts(tasks []Task) (open, completed int) {
	for i := range tasks {
		if tasks[i].Completed {
			completed++
		} else {
			open++
		}
	}
	return open, completed
}
