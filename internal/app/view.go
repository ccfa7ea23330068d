package app

import (
	"sync"

	"github.com/jsamuelsen11/taskmaster/internal/app/store"
	"github.com/jsamuelsen11/taskmaster/internal/domain/task"
)

// TaskView holds the display-ordered projection of a store. It subscribes
// to the store and recomputes the order on every notification, so a read
// after a mutation returns always reflects that mutation.
type TaskView struct {
	mu      sync.RWMutex
	ordered []task.Task
	version uint64
	cancel  func()
}

// NewTaskView builds the initial projection of s and follows it from there.
func NewTaskView(s *store.Store) *TaskView {
	v := &TaskView{}
	v.cancel = s.SubscribeWithSnapshot(v.refresh)
	return v
}

func (v *TaskView) refresh(tasks []task.Task) {
	ordered := task.OrderForDisplay(tasks)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.ordered = ordered
	v.version++
}

// Tasks returns a copy of the ordered tasks.
func (v *TaskView) Tasks() []task.Task {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]task.Task, len(v.ordered))
	copy(out, v.ordered)
	return out
}

// Version counts recomputations, starting at 1 for the initial build.
func (v *TaskView) Version() uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.version
}

// Close stops following the store. The last projection stays readable.
func (v *TaskView) Close() {
	v.cancel()
}
