// Package registry implements the opaque, refcounted handle registry
// described in spec §4.6: external callers address a container by an
// opaque [Handle] rather than holding a direct pointer to it, mirroring how
// a host runtime (Erlang/Elixir's NIF resource objects, per spec §6.2)
// would track a native resource's lifetime via reference counting and a
// finalizer callback.
package registry

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Handle opaquely identifies a registered container. Handles are
// process-wide unique and carry no information about the container they
// name.
type Handle uuid.UUID

// String renders h as its canonical UUID text form.
func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// ErrNotRegistered is returned by [Registry.Resolve], [Registry.Retain],
// and [Registry.Release] when called with a Handle the Registry does not
// hold, including one it already fully released.
var ErrNotRegistered = errors.New("registry: handle is not registered")

type entry[T any] struct {
	value    T
	refCount int
}

// Registry maps opaque [Handle]s to values of type T, keeping each alive
// for as long as its reference count is positive.
//
// A Registry's own bookkeeping lock (mu) is distinct from any lock T itself
// carries (such as a [concurrency.Guard] wrapping a container): registry
// mutations are rare and brief — register, retain, release — while
// contention on the container itself is the hot path spec §4.5 optimizes
// for. Holding mu across a container operation would needlessly serialize
// unrelated containers.
type Registry[T any] struct {
	mu      sync.RWMutex
	entries map[Handle]*entry[T]
}

// New returns an empty Registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{
		entries: make(map[Handle]*entry[T]),
	}
}

// Register adds value to the registry with an initial reference count of
// one and returns the Handle it was assigned.
func (r *Registry[T]) Register(value T) Handle {
	h := Handle(uuid.New())

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[h] = &entry[T]{value: value, refCount: 1}
	return h
}

// Resolve returns the value registered under h.
func (r *Registry[T]) Resolve(h Handle) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[h]
	if !ok {
		var zero T
		return zero, ErrNotRegistered
	}
	return e.value, nil
}

// Retain increments h's reference count, modeling a host runtime taking a
// new reference to the same underlying container.
func (r *Registry[T]) Retain(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[h]
	if !ok {
		return ErrNotRegistered
	}
	e.refCount++
	return nil
}

// Release decrements h's reference count and removes the entry once it
// reaches zero. It reports whether the entry was removed.
func (r *Registry[T]) Release(h Handle) (removed bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[h]
	if !ok {
		return false, ErrNotRegistered
	}

	e.refCount--
	if e.refCount <= 0 {
		delete(r.entries, h)
		return true, nil
	}
	return false, nil
}

// Len reports the number of currently registered handles.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}
