package registry

import "go.uber.org/multierr"

// Closer is implemented by values a Registry holds that need explicit
// teardown when the registry itself is torn down in bulk.
type Closer interface {
	Close() error
}

// Close forcibly releases every handle still registered, regardless of its
// reference count, calling Close on each value that implements [Closer].
// It has no analogue in spec.md — the spec has no process-wide shutdown
// operation — but a long-lived Registry still needs a bulk teardown path,
// and a single failing Close must not prevent the others from running.
// multierr aggregates every failure into one returned error instead of
// stopping at the first.
func Close[T any](r *Registry[T]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	for h, e := range r.entries {
		if closer, ok := any(e.value).(Closer); ok {
			err = multierr.Append(err, closer.Close())
		}
		delete(r.entries, h)
	}
	return err
}
