// Package boundary is the dispatch layer spec §6 describes: it accepts
// opaque handles and raw, not-yet-admitted Go values, and maps them onto
// typed [sortedset.SortedSet] operations, shaping results and errors into
// the taxonomy of spec §7. It plays the role an FFI/host-runtime boundary
// (Elixir/Rustler, in the system this module is modeled on) would play in
// a real deployment; [registry.Registry] stands in for that host's
// resource-lifecycle bookkeeping.
package boundary

import (
	"errors"

	"github.com/discord/sorted-set-nif/concurrency"
	"github.com/discord/sorted-set-nif/internal/errorx"
	"github.com/discord/sorted-set-nif/registry"
	"github.com/discord/sorted-set-nif/sortedset"
	"github.com/discord/sorted-set-nif/term"
)

// Handle opaquely identifies a container registered with a Dispatcher.
type Handle = registry.Handle

// ErrBadReference is returned by every operation taking a Handle when that
// Handle does not resolve to a live container — either it was never
// issued, or its container has already been released.
var ErrBadReference = errors.New("boundary: handle does not resolve to a live container")

// ErrLockFail is re-exported from [concurrency] so callers need not import
// that package solely to check errors.Is against dispatched operations.
var ErrLockFail = concurrency.ErrLockFail

// container is what the registry actually stores: a [sortedset.SortedSet]
// behind its own non-blocking [concurrency.Guard], per spec §4.5/§4.6.
type container = concurrency.Guard[*sortedset.SortedSet]

// Dispatcher implements every operation of spec §6.1. The zero Dispatcher
// is not usable; construct one with [NewDispatcher].
type Dispatcher struct {
	containers *registry.Registry[*container]
}

// NewDispatcher returns an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{containers: registry.New[*container]()}
}

// New registers a new, empty container seeded with one empty bucket (spec
// §3.4's "new" constructor) and returns its handle.
func (d *Dispatcher) New(config sortedset.Configuration) Handle {
	set := sortedset.New(config)
	return d.containers.Register(concurrency.NewGuard(set))
}

// Empty registers a new, empty container with no buckets at all (spec
// §3.4's "empty" constructor, intended for a subsequent trusted
// [Dispatcher.AppendBucket] bulk load) and returns its handle.
func (d *Dispatcher) Empty(config sortedset.Configuration) Handle {
	set := sortedset.Empty(config)
	return d.containers.Register(concurrency.NewGuard(set))
}

// Release drops the caller's reference to h, freeing the underlying
// container once no references remain. It models the host runtime's
// resource-finalizer callback firing.
func (d *Dispatcher) Release(h Handle) error {
	if _, err := d.containers.Release(h); err != nil {
		return ErrBadReference
	}
	return nil
}

// resolve resolves h to its guarded container, translating a registry miss
// into the boundary's own [ErrBadReference].
func (d *Dispatcher) resolve(h Handle) (*container, error) {
	g, err := d.containers.Resolve(h)
	if err != nil {
		return nil, ErrBadReference
	}
	return g, nil
}

// AddOutcome reports the result of [Dispatcher.Add]: the term's global
// index, and whether it was newly Added (false means it was already
// present, a Duplicate, at Index).
type AddOutcome struct {
	Index int
	Added bool
}

// Add admits raw and adds it to the container named by h.
func (d *Dispatcher) Add(h Handle, raw any) (AddOutcome, error) {
	t, err := term.Admit(raw)
	if err != nil {
		return AddOutcome{}, err
	}

	g, err := d.resolve(h)
	if err != nil {
		return AddOutcome{}, err
	}

	var out AddOutcome
	err = g.Try(func(s *sortedset.SortedSet) error {
		o := s.Add(t)
		out = AddOutcome{Index: o.Index, Added: o.Added}
		return nil
	})
	errorx.Wrap(&err, "boundary: add %s", h)
	return out, err
}

// RemoveOutcome reports the result of [Dispatcher.Remove]: the removed
// term's former global index, and whether it was actually Removed (false
// means NotFound, and Index is meaningless).
type RemoveOutcome struct {
	Index   int
	Removed bool
}

// Remove admits raw and removes it from the container named by h, if
// present.
func (d *Dispatcher) Remove(h Handle, raw any) (RemoveOutcome, error) {
	t, err := term.Admit(raw)
	if err != nil {
		return RemoveOutcome{}, err
	}

	g, err := d.resolve(h)
	if err != nil {
		return RemoveOutcome{}, err
	}

	var out RemoveOutcome
	err = g.Try(func(s *sortedset.SortedSet) error {
		o := s.Remove(t)
		out = RemoveOutcome{Index: o.Index, Removed: o.Removed}
		return nil
	})
	errorx.Wrap(&err, "boundary: remove %s", h)
	return out, err
}

// At returns the term at the given zero-based global index within the
// container named by h. found is false if index is out of bounds, per spec
// §7's treatment of OutOfBounds as an ordinary result, not an error.
func (d *Dispatcher) At(h Handle, index int) (t term.Term, found bool, err error) {
	g, err := d.resolve(h)
	if err != nil {
		return term.Term{}, false, err
	}

	err = g.Try(func(s *sortedset.SortedSet) error {
		t, found = s.At(index)
		if found {
			t = term.Clone(t)
		}
		return nil
	})
	return t, found, err
}

// Slice returns up to amount consecutive terms starting at the given
// zero-based global index within the container named by h.
func (d *Dispatcher) Slice(h Handle, start, amount int) ([]term.Term, error) {
	g, err := d.resolve(h)
	if err != nil {
		return nil, err
	}

	var out []term.Term
	err = g.Try(func(s *sortedset.SortedSet) error {
		out = term.CloneSlice(s.Slice(start, amount))
		return nil
	})
	return out, err
}

// FindIndex admits raw and returns its global index within the container
// named by h, if present.
func (d *Dispatcher) FindIndex(h Handle, raw any) (index int, found bool, err error) {
	t, err := term.Admit(raw)
	if err != nil {
		return 0, false, err
	}

	g, err := d.resolve(h)
	if err != nil {
		return 0, false, err
	}

	err = g.Try(func(s *sortedset.SortedSet) error {
		index, found = s.FindIndex(t)
		return nil
	})
	return index, found, err
}

// Size returns the number of terms in the container named by h.
func (d *Dispatcher) Size(h Handle) (int, error) {
	g, err := d.resolve(h)
	if err != nil {
		return 0, err
	}

	var size int
	err = g.Try(func(s *sortedset.SortedSet) error {
		size = s.Size()
		return nil
	})
	return size, err
}

// ToList returns every term in the container named by h, in order.
func (d *Dispatcher) ToList(h Handle) ([]term.Term, error) {
	g, err := d.resolve(h)
	if err != nil {
		return nil, err
	}

	var out []term.Term
	err = g.Try(func(s *sortedset.SortedSet) error {
		out = term.CloneSlice(s.ToList())
		return nil
	})
	return out, err
}

// AppendBucket is the trusted bulk-construction fast path of spec §4.4.4.
// raws must already be sorted, deduplicated, and admissible; AppendBucket
// admits each one (failing the whole call with [term.ErrUnsupportedType] on
// the first rejection) but does not re-sort or re-deduplicate them.
func (d *Dispatcher) AppendBucket(h Handle, raws []any) error {
	terms := make([]term.Term, len(raws))
	for i, raw := range raws {
		t, err := term.Admit(raw)
		if err != nil {
			return err
		}
		terms[i] = t
	}

	g, err := d.resolve(h)
	if err != nil {
		return err
	}

	err = g.Try(func(s *sortedset.SortedSet) error {
		return s.AppendBucket(terms)
	})
	errorx.Wrap(&err, "boundary: append_bucket %s", h)
	return err
}

// Shutdown forcibly releases every handle the Dispatcher still holds,
// regardless of outstanding reference counts, and discards them. It models
// the host runtime tearing down its entire NIF resource table on unload —
// spec.md has no equivalent per-container operation, since no single
// Handle's lifetime reaches across the whole registry.
func (d *Dispatcher) Shutdown() error {
	return registry.Close(d.containers)
}

// Debug renders the container named by h for introspection. Its format
// carries no stability guarantee across versions.
func (d *Dispatcher) Debug(h Handle) (string, error) {
	g, err := d.resolve(h)
	if err != nil {
		return "", err
	}

	var out string
	err = g.Try(func(s *sortedset.SortedSet) error {
		out = s.Debug()
		return nil
	})
	return out, err
}
