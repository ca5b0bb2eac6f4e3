package mutation

import "sync"

// SafeRef provides thread-safe concurrent access to a mutable value.
// Multiple goroutines can safely read and write through the same reference.
//
// SafeRef uses a sync.RWMutex internally: reads (Get, View) acquire a shared
// read lock, while writes (Set, Update) acquire an exclusive write lock.
//
// Use Get for simple reads (returns a value copy), View to inspect a value
// that holds slices or maps without copying it, Set to replace the value,
// and Update for atomic in-place mutations.
type SafeRef[T any] struct {
	mu  sync.RWMutex
	val T
}

// NewRef creates a SafeRef initialized with the given value.
func NewRef[T any](val T) *SafeRef[T] {
	return &SafeRef[T]{val: val}
}

// Get returns a copy of the current value under a read lock.
// Slices and maps inside the value are shared; use View to read them.
func (r *SafeRef[T]) Get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.val
}

// View calls fn with the value under a read lock. fn must not retain
// references into the value after it returns.
func (r *SafeRef[T]) View(fn func(*T)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn(&r.val)
}

// Set replaces the current value under a write lock.
func (r *SafeRef[T]) Set(val T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.val = val
}

// Update applies fn to the value under a write lock, allowing atomic
// in-place mutations. Modifications are visible to subsequent reads.
func (r *SafeRef[T]) Update(fn func(*T)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.val)
}
