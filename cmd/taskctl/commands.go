package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/domain/task"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

func listCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show tasks in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, svc ports.TaskService) error {
				return c.printTasks(svc.List(ctx))
			})
		},
	}
}

func addCmd(c *cli) *cobra.Command {
	var description, priority string

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := task.Draft{
				Title:       strings.Join(args, " "),
				Description: description,
				Priority:    task.Priority(priority),
			}
			return c.run(cmd.Context(), func(ctx context.Context, svc ports.TaskService) error {
				if _, err := svc.Add(ctx, draft); err != nil {
					return err
				}
				return c.printTasks(svc.List(ctx))
			})
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Optional description")
	cmd.Flags().StringVarP(&priority, "priority", "P", "", "Priority (high, medium, low); defaults to medium")

	return cmd
}

func toggleCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle [id]",
		Short: "Mark a task done or not done",
		Long:  "Flip a task's completion. The ID may be any unique prefix shown by list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, svc ports.TaskService) error {
				id, err := resolveID(svc.List(ctx), args[0])
				if err != nil {
					return err
				}
				return c.printTasks(svc.Toggle(ctx, id))
			})
		},
	}
}

func deleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "delete [id]",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, svc ports.TaskService) error {
				id, err := resolveID(svc.List(ctx), args[0])
				if err != nil {
					return err
				}
				return c.printTasks(svc.Delete(ctx, id))
			})
		},
	}
}

func priorityCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:       "priority [id] [high|medium|low]",
		Short:     "Change a task's priority",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"high", "medium", "low"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, svc ports.TaskService) error {
				id, err := resolveID(svc.List(ctx), args[0])
				if err != nil {
					return err
				}
				tasks, err := svc.SetPriority(ctx, id, task.Priority(strings.ToLower(args[1])))
				if err != nil {
					return err
				}
				return c.printTasks(tasks)
			})
		},
	}
}

func suggestCmd(c *cli) *cobra.Command {
	var (
		accept    []int
		acceptAll bool
		priority  string
	)

	cmd := &cobra.Command{
		Use:   "suggest [title]",
		Short: "Ask the suggestion service for related tasks",
		Long: `Ask the suggestion service for tasks related to a title.

With --accept or --all, the title itself is added together with the chosen
suggestions in one batch, all sharing --priority.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			return c.run(cmd.Context(), func(ctx context.Context, svc ports.TaskService) error {
				suggestions, err := svc.RequestSuggestions(ctx, title)
				if err != nil {
					return err
				}

				chosen, err := pickSuggestions(suggestions, accept, acceptAll)
				if err != nil {
					return err
				}
				if chosen == nil {
					return c.printSuggestions(title, suggestions)
				}

				draft := task.Draft{Title: title, Priority: task.Priority(priority)}
				if _, err := svc.Submit(ctx, draft, chosen); err != nil {
					return err
				}
				return c.printTasks(svc.List(ctx))
			})
		},
	}

	cmd.Flags().IntSliceVarP(&accept, "accept", "a", nil, "Add the title and the suggestions at these 1-based positions")
	cmd.Flags().BoolVar(&acceptAll, "all", false, "Add the title and every suggestion")
	cmd.Flags().StringVarP(&priority, "priority", "P", "", "Priority for the added tasks; defaults to medium")
	cmd.MarkFlagsMutuallyExclusive("accept", "all")

	return cmd
}

// pickSuggestions returns the accepted suggestion titles, or nil when
// nothing was requested.
func pickSuggestions(suggestions []string, positions []int, all bool) ([]string, error) {
	if all {
		if len(suggestions) == 0 {
			return []string{}, nil
		}
		return suggestions, nil
	}
	if len(positions) == 0 {
		return nil, nil
	}

	chosen := make([]string, 0, len(positions))
	seen := make(map[int]bool, len(positions))
	for _, pos := range positions {
		if pos < 1 || pos > len(suggestions) {
			return nil, &domain.ValidationError{Fields: map[string]string{
				"accept": fmt.Sprintf("position %d out of range 1-%d", pos, len(suggestions)),
			}}
		}
		if seen[pos] {
			continue
		}
		seen[pos] = true
		chosen = append(chosen, suggestions[pos-1])
	}
	return chosen, nil
}

// resolveID maps an exact ID or a unique ID prefix to a task ID. A value
// matching nothing is passed through unchanged so the service treats it as
// an unknown ID.
func resolveID(tasks []task.Task, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", &domain.ValidationError{Fields: map[string]string{"id": domain.MsgRequired}}
	}

	var matches []string
	for i := range tasks {
		if tasks[i].ID == ref {
			return ref, nil
		}
		if strings.HasPrefix(tasks[i].ID, ref) {
			matches = append(matches, tasks[i].ID)
		}
	}

	switch len(matches) {
	case 0:
		return ref, nil
	case 1:
		return matches[0], nil
	default:
		return "", &domain.ValidationError{Fields: map[string]string{
			"id": fmt.Sprintf("prefix %q matches %d tasks", ref, len(matches)),
		}}
	}
}
