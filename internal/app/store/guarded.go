package store

import "sync"

// guarded provides thread-safe access to a mutable value. Reads take a
// shared lock and writes an exclusive one, so concurrent readers never
// observe a half-applied update.
type guarded[T any] struct {
	mu  sync.RWMutex
	val T
}

func newGuarded[T any](val T) *guarded[T] {
	return &guarded[T]{val: val}
}

// Load returns the current value under a read lock.
func (g *guarded[T]) Load() T {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.val
}

// Update applies fn to the value under a write lock. The function receives
// a pointer to the value; its changes become visible atomically.
func (g *guarded[T]) Update(fn func(*T)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(&g.val)
}
