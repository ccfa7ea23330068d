// Package store holds the authoritative task collection.
//
// A Store is an explicitly owned state container: callers construct one with
// the collection loaded at startup and pass it to whoever needs it. All
// mutations go through its methods:
//
//	s := store.New(initial)
//	s.OnMutation(persist)          // write-through hook
//	cancel := s.SubscribeWithSnapshot(render)  // derived views
//	defer cancel()
//
//	t := s.AddTask(ctx, task.Draft{Title: "Buy milk"})
//	s.ToggleComplete(ctx, t.ID)
//
// The store performs no validation. Drafts are validated by the caller
// before they reach it.
package store

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/taskmaster/internal/domain/task"
)

// Op names a kind of store mutation.
type Op string

const (
	OpAdd         Op = "add"
	OpAddMany     Op = "add_many"
	OpToggle      Op = "toggle"
	OpSetPriority Op = "set_priority"
	OpDelete      Op = "delete"
)

// String implements fmt.Stringer.
func (o Op) String() string {
	return string(o)
}

// Mutation describes a committed change. Tasks is a snapshot of the whole
// collection after the change, in storage order.
type Mutation struct {
	Op    Op
	Tasks []task.Task
}

// MutationHook runs once after every successful mutation, before
// subscribers are notified. Hooks must not mutate the store.
type MutationHook func(ctx context.Context, m Mutation)

// Subscriber is notified with the new collection after every successful
// mutation. Subscribers may read the store but must not mutate it.
type Subscriber func(tasks []task.Task)

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator replaces the task ID generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// Store is the single source of truth for the task collection. It is safe
// for concurrent use; mutations are serialized so that hooks observe them
// in the order they were applied.
type Store struct {
	tasks *guarded[[]task.Task]

	// writeMu serializes mutations together with their hooks and
	// subscriber notifications.
	writeMu sync.Mutex

	hooksMu sync.RWMutex
	hooks   []MutationHook
	subs    map[uint64]Subscriber
	nextSub uint64

	now   func() time.Time
	newID func() string
}

// New creates a Store holding a copy of initial in storage order.
func New(initial []task.Task, opts ...Option) *Store {
	s := &Store{
		tasks: newGuarded(slices.Clone(initial)),
		subs:  make(map[uint64]Subscriber),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnMutation registers a hook that runs after every successful mutation.
func (s *Store) OnMutation(hook MutationHook) {
	s.hooksMu.Lock()
	defer s.hooksMu.Unlock()
	s.hooks = append(s.hooks, hook)
}

// Subscribe registers fn for change notifications and returns a function
// that removes the subscription.
func (s *Store) Subscribe(fn Subscriber) (cancel func()) {
	return s.subscribe(fn)
}

// SubscribeWithSnapshot hands fn the current collection and then registers
// it for change notifications. No mutation can land between the two, so fn
// sees every version of the collection from now on, oldest first.
func (s *Store) SubscribeWithSnapshot(fn Subscriber) (cancel func()) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	fn(s.Snapshot())
	return s.subscribe(fn)
}

func (s *Store) subscribe(fn Subscriber) func() {
	s.hooksMu.Lock()
	defer s.hooksMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.hooksMu.Lock()
			defer s.hooksMu.Unlock()
			delete(s.subs, id)
		})
	}
}

// Snapshot returns a copy of the collection in storage order.
func (s *Store) Snapshot() []task.Task {
	return slices.Clone(s.tasks.Load())
}

// Len returns the number of tasks held.
func (s *Store) Len() int {
	return len(s.tasks.Load())
}

// AddTask creates a task from draft and inserts it at the front of the
// collection. The draft is taken as-is; an empty priority becomes the
// default.
func (s *Store) AddTask(ctx context.Context, draft task.Draft) task.Task {
	created := s.AddTasks(ctx, []task.Draft{draft})
	return created[0]
}

// AddTasks creates one task per draft and inserts them at the front of the
// collection in input order, all sharing one creation timestamp. The batch
// becomes visible to readers at once. An empty batch is a no-op.
func (s *Store) AddTasks(ctx context.Context, drafts []task.Draft) []task.Task {
	if len(drafts) == 0 {
		return []task.Task{}
	}

	op := OpAddMany
	if len(drafts) == 1 {
		op = OpAdd
	}

	var created []task.Task
	s.mutate(ctx, op, func(tasks *[]task.Task) bool {
		createdAt := s.now().UnixMilli()
		created = make([]task.Task, len(drafts))
		for i, d := range drafts {
			created[i] = task.Task{
				ID:          s.newID(),
				Title:       d.Title,
				Description: d.Description,
				Priority:    priorityOrDefault(d.Priority),
				CreatedAt:   createdAt,
			}
		}
		next := make([]task.Task, 0, len(created)+len(*tasks))
		next = append(next, created...)
		next = append(next, *tasks...)
		*tasks = next
		return true
	})
	return created
}

// ToggleComplete flips the completion flag of the task with the given ID.
// Returns false, without touching the collection, if no such task exists.
func (s *Store) ToggleComplete(ctx context.Context, id string) bool {
	return s.mutate(ctx, OpToggle, func(tasks *[]task.Task) bool {
		i := indexOf(*tasks, id)
		if i < 0 {
			return false
		}
		next := slices.Clone(*tasks)
		next[i].Completed = !next[i].Completed
		*tasks = next
		return true
	})
}

// SetPriority overwrites the priority of the task with the given ID.
// Returns false if no such task exists.
func (s *Store) SetPriority(ctx context.Context, id string, priority task.Priority) bool {
	return s.mutate(ctx, OpSetPriority, func(tasks *[]task.Task) bool {
		i := indexOf(*tasks, id)
		if i < 0 {
			return false
		}
		next := slices.Clone(*tasks)
		next[i].Priority = priority
		*tasks = next
		return true
	})
}

// DeleteTask removes the task with the given ID. Returns false if no such
// task exists.
func (s *Store) DeleteTask(ctx context.Context, id string) bool {
	return s.mutate(ctx, OpDelete, func(tasks *[]task.Task) bool {
		i := indexOf(*tasks, id)
		if i < 0 {
			return false
		}
		*tasks = slices.Delete(slices.Clone(*tasks), i, i+1)
		return true
	})
}

// mutate applies fn under the write lock. Successful mutations replace the
// collection with a new slice so that snapshots handed out earlier are never
// modified, then run hooks and notify subscribers in order.
func (s *Store) mutate(ctx context.Context, op Op, fn func(*[]task.Task) bool) bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var changed bool
	var after []task.Task
	s.tasks.Update(func(tasks *[]task.Task) {
		changed = fn(tasks)
		after = *tasks
	})
	if !changed {
		return false
	}

	s.hooksMu.RLock()
	hooks := slices.Clone(s.hooks)
	subs := make([]Subscriber, 0, len(s.subs))
	for _, id := range slices.Sorted(maps.Keys(s.subs)) {
		subs = append(subs, s.subs[id])
	}
	s.hooksMu.RUnlock()

	for _, h := range hooks {
		h(ctx, Mutation{Op: op, Tasks: slices.Clone(after)})
	}
	for _, sub := range subs {
		sub(slices.Clone(after))
	}
	return true
}

func indexOf(tasks []task.Task, id string) int {
	return slices.IndexFunc(tasks, func(t task.Task) bool { return t.ID == id })
}

func priorityOrDefault(p task.Priority) task.Priority {
	if p == "" {
		return task.DefaultPriority
	}
	return p
}
