package boundary

import (
	"sync/atomic"

	"github.com/discord/sorted-set-nif/sortedset"
	"github.com/discord/sorted-set-nif/term"
)

// Interceptor defines functions that are invoked around a [Dispatch]'s Add
// and Remove operations, mirroring the teacher's set.Interceptor shape.
// Every setter is safe to call concurrently with dispatched operations.
type Interceptor struct {
	beforeAdd    atomic.Pointer[func(Handle, term.Term) error]
	afterAdd     atomic.Pointer[func(Handle, term.Term, AddOutcome) error]
	beforeRemove atomic.Pointer[func(Handle, term.Term) error]
	afterRemove  atomic.Pointer[func(Handle, term.Term, RemoveOutcome) error]
}

// BeforeAdd sets the function invoked before a term is added.
func (i *Interceptor) BeforeAdd(fn func(h Handle, t term.Term) error) {
	i.beforeAdd.Store(&fn)
}

// AfterAdd sets the function invoked after a term is successfully added.
func (i *Interceptor) AfterAdd(fn func(h Handle, t term.Term, outcome AddOutcome) error) {
	i.afterAdd.Store(&fn)
}

// BeforeRemove sets the function invoked before a term is removed.
func (i *Interceptor) BeforeRemove(fn func(h Handle, t term.Term) error) {
	i.beforeRemove.Store(&fn)
}

// AfterRemove sets the function invoked after a term is successfully
// removed.
func (i *Interceptor) AfterRemove(fn func(h Handle, t term.Term, outcome RemoveOutcome) error) {
	i.afterRemove.Store(&fn)
}

// WithInterceptor returns a [Dispatch] that invokes in's hooks around d's
// Add and Remove operations. If in is nil, d is returned unwrapped.
func WithInterceptor(d Dispatch, in *Interceptor) Dispatch {
	if in == nil {
		return d
	}
	return &interceptedDispatch{Next: d, Interceptor: in}
}

type interceptedDispatch struct {
	Next        Dispatch
	Interceptor *Interceptor
}

func (d *interceptedDispatch) New(config sortedset.Configuration) Handle { return d.Next.New(config) }

func (d *interceptedDispatch) Empty(config sortedset.Configuration) Handle {
	return d.Next.Empty(config)
}

func (d *interceptedDispatch) Release(h Handle) error { return d.Next.Release(h) }

func (d *interceptedDispatch) Shutdown() error { return d.Next.Shutdown() }

func (d *interceptedDispatch) AppendBucket(h Handle, raws []any) error {
	return d.Next.AppendBucket(h, raws)
}

func (d *interceptedDispatch) Add(h Handle, raw any) (AddOutcome, error) {
	t, err := term.Admit(raw)
	if err != nil {
		return AddOutcome{}, err
	}

	if fn := d.Interceptor.beforeAddFn(); fn != nil {
		if err := fn(h, t); err != nil {
			return AddOutcome{}, err
		}
	}

	outcome, err := d.Next.Add(h, raw)
	if err != nil {
		return outcome, err
	}

	if fn := d.Interceptor.afterAddFn(); fn != nil {
		if err := fn(h, t, outcome); err != nil {
			return outcome, err
		}
	}

	return outcome, nil
}

func (d *interceptedDispatch) Remove(h Handle, raw any) (RemoveOutcome, error) {
	t, err := term.Admit(raw)
	if err != nil {
		return RemoveOutcome{}, err
	}

	if fn := d.Interceptor.beforeRemoveFn(); fn != nil {
		if err := fn(h, t); err != nil {
			return RemoveOutcome{}, err
		}
	}

	outcome, err := d.Next.Remove(h, raw)
	if err != nil {
		return outcome, err
	}

	if fn := d.Interceptor.afterRemoveFn(); fn != nil {
		if err := fn(h, t, outcome); err != nil {
			return outcome, err
		}
	}

	return outcome, nil
}

func (d *interceptedDispatch) At(h Handle, index int) (term.Term, bool, error) {
	return d.Next.At(h, index)
}

func (d *interceptedDispatch) Slice(h Handle, start, amount int) ([]term.Term, error) {
	return d.Next.Slice(h, start, amount)
}

func (d *interceptedDispatch) FindIndex(h Handle, raw any) (int, bool, error) {
	return d.Next.FindIndex(h, raw)
}

func (d *interceptedDispatch) Size(h Handle) (int, error) { return d.Next.Size(h) }

func (d *interceptedDispatch) ToList(h Handle) ([]term.Term, error) { return d.Next.ToList(h) }

func (d *interceptedDispatch) Debug(h Handle) (string, error) { return d.Next.Debug(h) }

func (i *Interceptor) beforeAddFn() func(Handle, term.Term) error {
	if i == nil {
		return nil
	}
	if fn := i.beforeAdd.Load(); fn != nil {
		return *fn
	}
	return nil
}

func (i *Interceptor) afterAddFn() func(Handle, term.Term, AddOutcome) error {
	if i == nil {
		return nil
	}
	if fn := i.afterAdd.Load(); fn != nil {
		return *fn
	}
	return nil
}

func (i *Interceptor) beforeRemoveFn() func(Handle, term.Term) error {
	if i == nil {
		return nil
	}
	if fn := i.beforeRemove.Load(); fn != nil {
		return *fn
	}
	return nil
}

func (i *Interceptor) afterRemoveFn() func(Handle, term.Term, RemoveOutcome) error {
	if i == nil {
		return nil
	}
	if fn := i.afterRemove.Load(); fn != nil {
		return *fn
	}
	return nil
}
