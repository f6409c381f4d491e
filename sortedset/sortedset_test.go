package sortedset_test

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/discord/sorted-set-nif/sortedset"
	"github.com/discord/sorted-set-nif/term"
)

func integer(n int64) term.Term {
	return term.NewInteger(big.NewInt(n))
}

func integers(ns ...int64) []term.Term {
	ts := make([]term.Term, len(ns))
	for i, n := range ns {
		ts[i] = integer(n)
	}
	return ts
}

func termEqual(a, b term.Term) bool {
	return term.Compare(a, b) == 0
}

// TestBasicInsertAndOrder covers spec §8.2 scenario 1.
func TestBasicInsertAndOrder(t *testing.T) {
	t.Parallel()

	s := New(NewConfiguration(2, 2))

	s.Add(integer(1))
	s.Add(integer(3))
	s.Add(integer(2))

	if diff := cmp.Diff(integers(1, 2, 3), s.ToList(), cmp.Comparer(termEqual)); diff != "" {
		t.Fatalf("ToList() mismatch (-want +got):\n%s", diff)
	}
	if s.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", s.Size())
	}

	idx, found := s.FindIndex(integer(2))
	if !found || idx != 1 {
		t.Fatalf("FindIndex(2) = (%d, %v), want (1, true)", idx, found)
	}
}

// TestDuplicateHandling covers spec §8.2 scenario 2.
func TestDuplicateHandling(t *testing.T) {
	t.Parallel()

	s := New(DefaultConfiguration())

	first := s.Add(integer(5))
	if !first.Added || first.Index != 0 {
		t.Fatalf("first Add(5) = %+v, want Added(0)", first)
	}

	second := s.Add(integer(5))
	if second.Added || second.Index != 0 {
		t.Fatalf("second Add(5) = %+v, want Duplicate(0)", second)
	}

	if s.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", s.Size())
	}
}

// TestCrossTypeOrdering covers spec §8.2 scenario 3.
func TestCrossTypeOrdering(t *testing.T) {
	t.Parallel()

	s := New(DefaultConfiguration())

	s.Add(integer(1))
	s.Add(term.NewBitstring([]byte("a")))
	s.Add(term.NewAtom("atom"))
	s.Add(term.NewList([]term.Term{integer(1)}))
	s.Add(term.NewTuple([]term.Term{integer(1)}))

	want := []term.Term{
		integer(1),
		term.NewAtom("atom"),
		term.NewBitstring([]byte("a")),
		term.NewList([]term.Term{integer(1)}),
		term.NewTuple([]term.Term{integer(1)}),
	}

	if diff := cmp.Diff(want, s.ToList(), cmp.Comparer(termEqual)); diff != "" {
		t.Fatalf("ToList() mismatch (-want +got):\n%s", diff)
	}
}

// bulkLoaded builds the [[2,4],[6,8],[10,12],[14,16,18]] layout used by
// spec §8.2 scenarios 4 and 5.
func bulkLoaded(t *testing.T) *SortedSet {
	t.Helper()

	s := Empty(NewConfiguration(1, 5))

	chunks := [][]int64{{2, 4}, {6, 8}, {10, 12}, {14, 16, 18}}
	for _, chunk := range chunks {
		if err := s.AppendBucket(integers(chunk...)); err != nil {
			t.Fatalf("AppendBucket(%v) failed: %v", chunk, err)
		}
	}

	return s
}

// TestRemovalWithIndex covers spec §8.2 scenario 4.
func TestRemovalWithIndex(t *testing.T) {
	t.Parallel()

	s := bulkLoaded(t)

	outcome := s.Remove(integer(10))
	if !outcome.Removed || outcome.Index != 4 {
		t.Fatalf("Remove(10) = %+v, want Removed(4)", outcome)
	}

	want := integers(2, 4, 6, 8, 12, 14, 16, 18)
	if diff := cmp.Diff(want, s.ToList(), cmp.Comparer(termEqual)); diff != "" {
		t.Fatalf("ToList() mismatch (-want +got):\n%s", diff)
	}
	if s.Size() != 8 {
		t.Fatalf("Size() = %d, want 8", s.Size())
	}
}

// TestSliceAcrossBuckets covers spec §8.2 scenario 5.
func TestSliceAcrossBuckets(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		start, count int
		want         []term.Term
	}{
		{"mid-range across three buckets", 1, 4, integers(4, 6, 8, 10)},
		{"over-exhausted from non-terminal", 3, 10, integers(8, 10, 12, 14, 16, 18)},
		{"start beyond size", 15, 15, integers()},
		{"negative start", -1, 4, integers()},
		{"negative amount", 1, -1, integers()},
		{"negative start and amount", -5, -5, integers()},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			s := bulkLoaded(t)
			got := s.Slice(c.start, c.count)

			if diff := cmp.Diff(c.want, got, cmp.Comparer(termEqual)); diff != "" {
				t.Fatalf("Slice(%d, %d) mismatch (-want +got):\n%s", c.start, c.count, diff)
			}
		})
	}
}

func TestAdd_SplitsBucketOnOverflow(t *testing.T) {
	t.Parallel()

	s := New(NewConfiguration(2, 2))

	s.Add(integer(1))
	s.Add(integer(3))
	third := s.Add(integer(2))

	if !third.Added || third.Index != 1 {
		t.Fatalf("Add(2) = %+v, want Added(1)", third)
	}
	if diff := cmp.Diff(integers(1, 2, 3), s.ToList(), cmp.Comparer(termEqual)); diff != "" {
		t.Fatalf("ToList() mismatch (-want +got):\n%s", diff)
	}
}

func TestRemove_DropsEmptyBucketExceptTheSoleOne(t *testing.T) {
	t.Parallel()

	s := New(NewConfiguration(1, 2))
	s.Add(integer(1))

	outcome := s.Remove(integer(1))
	if !outcome.Removed {
		t.Fatalf("Remove(1) = %+v, want Removed", outcome)
	}
	if s.Size() != 0 {
		t.Fatalf("Size() = %d, want 0", s.Size())
	}

	// Removing again, and adding again, must both still work: the empty
	// set must still be internally represented by a single bucket.
	if outcome := s.Remove(integer(1)); outcome.Removed {
		t.Fatalf("Remove(1) on empty set = %+v, want NotFound", outcome)
	}

	added := s.Add(integer(9))
	if !added.Added || added.Index != 0 {
		t.Fatalf("Add(9) after emptying = %+v, want Added(0)", added)
	}
}

func TestAt_OutOfBounds(t *testing.T) {
	t.Parallel()

	s := New(DefaultConfiguration())
	s.Add(integer(1))

	if _, ok := s.At(-1); ok {
		t.Fatal("At(-1) should report false")
	}
	if _, ok := s.At(1); ok {
		t.Fatal("At(1) on a set of size 1 should report false")
	}

	v, ok := s.At(0)
	if !ok || term.Compare(v, integer(1)) != 0 {
		t.Fatalf("At(0) = (%v, %v), want (1, true)", v, ok)
	}
}

func TestAppendBucket_RejectsOversizedInput(t *testing.T) {
	t.Parallel()

	s := Empty(NewConfiguration(1, 3))

	err := s.AppendBucket(integers(1, 2, 3))
	if err == nil {
		t.Fatal("expected ErrMaxBucketSizeExceeded")
	}
}

func TestAppendBucket_MergesIntoSoleEmptyBucket(t *testing.T) {
	t.Parallel()

	s := New(NewConfiguration(1, 10))

	if err := s.AppendBucket(integers(1, 2, 3)); err != nil {
		t.Fatalf("AppendBucket failed: %v", err)
	}

	if s.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", s.Size())
	}
	if diff := cmp.Diff(integers(1, 2, 3), s.ToList(), cmp.Comparer(termEqual)); diff != "" {
		t.Fatalf("ToList() mismatch (-want +got):\n%s", diff)
	}
}

func TestDebug_DoesNotPanic(t *testing.T) {
	t.Parallel()

	s := New(NewConfiguration(1, 2))
	s.Add(integer(1))
	s.Add(integer(2))
	s.Add(integer(3))

	if s.Debug() == "" {
		t.Fatal("Debug() should not be empty")
	}
}
