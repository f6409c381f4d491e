// Package syncx holds small synchronization primitives shared across the
// module that sync.Mutex and sync.Once don't quite provide on their own.
package syncx

import "sync"

// TryMutex is a [sync.Mutex] restricted to non-blocking acquisition. It
// exists as a named type, rather than calling (*sync.Mutex).TryLock
// directly, so [concurrency.Guard] has one narrow seam to depend on instead
// of the full Locker surface (Lock/Unlock would let a caller block, which
// the container's concurrency model forbids).
type TryMutex struct {
	m sync.Mutex
}

// TryAcquire attempts to acquire the lock without blocking. It reports
// whether the lock was acquired.
func (t *TryMutex) TryAcquire() bool {
	return t.m.TryLock()
}

// Release releases the lock. It must only be called by the goroutine that
// last acquired it via a successful TryAcquire.
func (t *TryMutex) Release() {
	t.m.Unlock()
}
