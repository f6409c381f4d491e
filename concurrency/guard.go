// Package concurrency implements the non-blocking single-exclusive-lock
// wrapper described in spec §4.5: an operation either acquires the guarded
// value's lock immediately, or fails fast with [ErrLockFail]. It never
// blocks, queues, or retries, since spec §5 forbids suspension points
// inside the critical section.
package concurrency

import (
	"errors"

	"github.com/discord/sorted-set-nif/internal/syncx"
)

// ErrLockFail is returned by [Guard.Try] when the guarded value's lock is
// already held by another caller.
var ErrLockFail = errors.New("concurrency: lock is currently held")

// Guard serializes access to a value of type T behind a single
// non-blocking exclusive lock. A Guard must not be copied after first use.
type Guard[T any] struct {
	mu    syncx.TryMutex
	value T
}

// NewGuard returns a Guard wrapping value.
func NewGuard[T any](value T) *Guard[T] {
	return &Guard[T]{value: value}
}

// Try attempts to acquire the guard's lock without blocking and, on
// success, runs fn with exclusive access to the guarded value. If the lock
// is already held, Try returns [ErrLockFail] without running fn and
// without waiting.
func (g *Guard[T]) Try(fn func(T) error) error {
	if !g.mu.TryAcquire() {
		return ErrLockFail
	}
	defer g.mu.Release()

	return fn(g.value)
}
