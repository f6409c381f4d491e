package registry_test

import (
	"errors"
	"testing"

	. "github.com/discord/sorted-set-nif/registry"
)

func TestRegistry_RegisterAndResolve(t *testing.T) {
	t.Parallel()

	r := New[int]()
	h := r.Register(42)

	got, err := r.Resolve(h)
	if err != nil {
		t.Fatalf("Resolve() = %v", err)
	}
	if got != 42 {
		t.Fatalf("Resolve() = %d, want 42", got)
	}
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
}

func TestRegistry_ResolveUnknownHandle(t *testing.T) {
	t.Parallel()

	r := New[int]()
	other := New[int]()
	stale := other.Register(1)

	if _, err := r.Resolve(stale); !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("Resolve() = %v, want ErrNotRegistered", err)
	}
}

func TestRegistry_RetainAndReleaseLifecycle(t *testing.T) {
	t.Parallel()

	r := New[int]()
	h := r.Register(7)

	if err := r.Retain(h); err != nil {
		t.Fatalf("Retain() = %v", err)
	}

	removed, err := r.Release(h)
	if err != nil {
		t.Fatalf("first Release() = %v", err)
	}
	if removed {
		t.Fatal("first Release() should not have removed the entry, refcount was 2")
	}

	removed, err = r.Release(h)
	if err != nil {
		t.Fatalf("second Release() = %v", err)
	}
	if !removed {
		t.Fatal("second Release() should have removed the entry, refcount reached 0")
	}

	if _, err := r.Resolve(h); !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("Resolve() after full release = %v, want ErrNotRegistered", err)
	}
}

func TestRegistry_ReleaseUnknownHandle(t *testing.T) {
	t.Parallel()

	r := New[int]()
	if _, err := r.Release(Handle{}); !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("Release() = %v, want ErrNotRegistered", err)
	}
}

type fakeCloser struct {
	closed bool
	err    error
}

func (f *fakeCloser) Close() error {
	f.closed = true
	return f.err
}

func TestClose_ClosesEveryEntryAndAggregatesErrors(t *testing.T) {
	t.Parallel()

	r := New[*fakeCloser]()

	ok := &fakeCloser{}
	failing := &fakeCloser{err: errors.New("boom")}

	r.Register(ok)
	r.Register(failing)

	err := Close(r)
	if err == nil {
		t.Fatal("Close() = nil, want aggregated error")
	}
	if !ok.closed || !failing.closed {
		t.Fatal("Close() did not close every entry")
	}
	if r.Len() != 0 {
		t.Fatalf("Len() after Close() = %d, want 0", r.Len())
	}
}
