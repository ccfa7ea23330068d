package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/jsamuelsen11/taskmaster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskmaster/internal/domain/task"
)

// shortIDLength is how many ID characters list prints. Any unique prefix
// is accepted back by toggle, delete and priority.
const shortIDLength = 8

func (c *cli) printTasks(tasks []task.Task) error {
	if c.jsonOut {
		return c.printJSON(dto.ToTaskListResponse(tasks))
	}

	if len(tasks) == 0 {
		_, err := fmt.Fprintln(c.out, "No tasks.")
		return err
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDONE\tPRIORITY\tCREATED\tTITLE")
	for i := range tasks {
		t := &tasks[i]
		done := "[ ]"
		if t.Completed {
			done = "[x]"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			shortID(t.ID), done, t.Priority, time.UnixMilli(t.CreatedAt).Format("2006-01-02 15:04"), t.Title)
	}

	open, completed := task.Counts(tasks)
	fmt.Fprintf(w, "\n%d open, %d completed\n", open, completed)
	return w.Flush()
}

func (c *cli) printSuggestions(title string, suggestions []string) error {
	if c.jsonOut {
		return c.printJSON(dto.ToSuggestionResponse(title, suggestions))
	}

	if len(suggestions) == 0 {
		_, err := fmt.Fprintf(c.out, "No suggestions for %q.\n", title)
		return err
	}

	fmt.Fprintf(c.out, "Suggestions for %q:\n", title)
	for i, s := range suggestions {
		fmt.Fprintf(c.out, "  %d. %s\n", i+1, s)
	}
	_, err := fmt.Fprintln(c.out, "Add them with --accept 1,2 or --all.")
	return err
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func shortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength]
}
