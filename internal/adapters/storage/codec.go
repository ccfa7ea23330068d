package storage

import (
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen11/taskmaster/internal/domain/task"
)

// record is the stored shape of one task. Field names are part of the
// on-disk contract and must not change.
type record struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
	Priority    string `json:"priority"`
	CreatedAt   int64  `json:"createdAt"`
}

// Encode serializes tasks in storage order.
func Encode(tasks []task.Task) ([]byte, error) {
	recs := make([]record, len(tasks))
	for i, t := range tasks {
		recs[i] = record{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Completed:   t.Completed,
			Priority:    string(t.Priority),
			CreatedAt:   t.CreatedAt,
		}
	}

	data, err := json.Marshal(recs)
	if err != nil {
		return nil, fmt.Errorf("encoding tasks: %w", err)
	}
	return data, nil
}

// Decode parses a stored collection. A JSON null decodes to an empty list.
func Decode(data []byte) ([]task.Task, error) {
	var recs []record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	tasks := make([]task.Task, len(recs))
	for i, r := range recs {
		if r.ID == "" {
			return nil, fmt.Errorf("%w: record %d has no id", ErrCorrupt, i)
		}
		tasks[i] = task.Task{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Completed:   r.Completed,
			Priority:    task.Priority(r.Priority),
			CreatedAt:   r.CreatedAt,
		}
	}
	return tasks, nil
}
