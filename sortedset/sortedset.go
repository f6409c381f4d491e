// Package sortedset implements the two-level bucketed ordered-set
// container described in spec §3.3–§4.4: an outer ordered sequence of inner
// ordered [bucket.Bucket]s, routed to by [locator.Locate], rebalanced by
// splitting on overflow and dropping empty buckets on underflow.
package sortedset

import (
	"fmt"
	"slices"
	"strings"

	"github.com/discord/sorted-set-nif/bucket"
	"github.com/discord/sorted-set-nif/locator"
	"github.com/discord/sorted-set-nif/term"
)

// SortedSet is an in-memory, ordered, unique collection of [term.Term]
// values. It is not safe for concurrent use; callers needing concurrency
// safety should guard it with a [concurrency.Guard].
type SortedSet struct {
	config  Configuration
	buckets []*bucket.Bucket
	size    int
}

// New returns an empty SortedSet containing a single empty bucket, per the
// "new" constructor path of spec §3.4. The outer sequence preallocates
// config.InitialCapacity bucket slots.
func New(config Configuration) *SortedSet {
	s := Empty(config)
	s.buckets = append(s.buckets, bucket.New(nil))
	return s
}

// Empty returns an empty SortedSet containing no buckets at all, per the
// "empty" constructor path of spec §3.4, intended to be followed by one or
// more trusted [SortedSet.AppendBucket] calls during bulk construction.
func Empty(config Configuration) *SortedSet {
	return &SortedSet{
		config:  config,
		buckets: make([]*bucket.Bucket, 0, config.InitialCapacity),
	}
}

// Size returns the total number of terms in the set.
func (s *SortedSet) Size() int {
	return s.size
}

// AddOutcome reports the result of [SortedSet.Add]: either the term was
// newly Added at Index, or it was already present (a Duplicate) at Index.
type AddOutcome struct {
	Index int
	Added bool
}

// Add inserts t into the set if it is not already present, splitting the
// owning bucket if it overflows the configured capacity. t must already be
// admitted (see [term.Admit]) — Add performs no admission checking.
func (s *SortedSet) Add(t term.Term) AddOutcome {
	s.ensureNotEmptyRepresentation()

	bucketIdx, _, _ := locator.Locate(s.buckets, t)
	b := s.buckets[bucketIdx]

	offset, inserted := b.Insert(t)
	if !inserted {
		return AddOutcome{Index: s.effectiveIndex(bucketIdx, offset), Added: false}
	}

	s.size++

	if b.Len() > s.config.BucketCapacity {
		right := b.SplitAtMidpoint()
		s.buckets = slices.Insert(s.buckets, bucketIdx+1, right)

		if offset >= b.Len() {
			bucketIdx++
			offset -= b.Len()
		}
	}

	return AddOutcome{Index: s.effectiveIndex(bucketIdx, offset), Added: true}
}

// RemoveOutcome reports the result of [SortedSet.Remove]: either the term
// was Removed from Index, or it was NotFound (Removed is false and Index is
// meaningless).
type RemoveOutcome struct {
	Index   int
	Removed bool
}

// Remove deletes t from the set if present.
func (s *SortedSet) Remove(t term.Term) RemoveOutcome {
	if s.size == 0 {
		return RemoveOutcome{}
	}

	bucketIdx, offset, found := locator.Locate(s.buckets, t)
	if !found {
		return RemoveOutcome{}
	}

	index := s.effectiveIndex(bucketIdx, offset)

	b := s.buckets[bucketIdx]
	b.Remove(t)
	s.size--

	if b.Len() == 0 && len(s.buckets) > 1 {
		s.buckets = slices.Delete(s.buckets, bucketIdx, bucketIdx+1)
	}

	return RemoveOutcome{Index: index, Removed: true}
}

// At returns the term at the given zero-based global index.
func (s *SortedSet) At(index int) (term.Term, bool) {
	if index < 0 || index >= s.size {
		return term.Term{}, false
	}

	for _, b := range s.buckets {
		if index < b.Len() {
			return b.At(index)
		}
		index -= b.Len()
	}

	return term.Term{}, false
}

// Slice returns up to amount consecutive terms starting at the given
// zero-based global index, preserving order. If start is negative, at or
// beyond the set's size, or amount is not positive, it returns an empty
// (non-nil) slice.
func (s *SortedSet) Slice(start, amount int) []term.Term {
	if start < 0 || start >= s.size || amount <= 0 {
		return []term.Term{}
	}

	result := make([]term.Term, 0, min(amount, s.size-start))

	index := start
	bucketIdx := 0

	for bucketIdx < len(s.buckets) && index >= s.buckets[bucketIdx].Len() {
		index -= s.buckets[bucketIdx].Len()
		bucketIdx++
	}

	for bucketIdx < len(s.buckets) && amount > 0 {
		b := s.buckets[bucketIdx]
		terms := b.Terms()[index:]

		if len(terms) > amount {
			terms = terms[:amount]
		}

		result = append(result, terms...)
		amount -= len(terms)

		index = 0
		bucketIdx++
	}

	return result
}

// FindIndex returns the global index of t, if present.
func (s *SortedSet) FindIndex(t term.Term) (index int, found bool) {
	bucketIdx, offset, found := locator.Locate(s.buckets, t)
	if !found {
		return 0, false
	}
	return s.effectiveIndex(bucketIdx, offset), true
}

// ToList returns every term in the set, in order.
func (s *SortedSet) ToList() []term.Term {
	result := make([]term.Term, 0, s.size)
	for _, b := range s.buckets {
		result = append(result, b.Terms()...)
	}
	return result
}

// AppendBucket is the trusted bulk-construction fast path described in
// spec §4.4.4. The caller must guarantee terms are sorted under
// [term.Compare], free of duplicates, already admitted, and strictly
// greater than the set's current last term — AppendBucket does not
// validate any of that and misuse corrupts the set's invariants.
//
// It fails with [ErrMaxBucketSizeExceeded] if len(terms) is at least the
// configured bucket capacity.
func (s *SortedSet) AppendBucket(terms []term.Term) error {
	if len(terms) >= s.config.BucketCapacity {
		return ErrMaxBucketSizeExceeded
	}

	if len(s.buckets) == 1 && s.buckets[0].Len() == 0 {
		s.buckets[0] = bucket.New(terms)
	} else {
		s.buckets = append(s.buckets, bucket.New(terms))
	}

	s.size += len(terms)
	return nil
}

// Debug renders the outer/inner layout of the set for introspection. Its
// format carries no stability guarantee across versions, per spec §4.4.5.
func (s *SortedSet) Debug() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SortedSet{size: %d, buckets: %d, capacity: %d}[\n", s.size, len(s.buckets), s.config.BucketCapacity)
	for i, b := range s.buckets {
		fmt.Fprintf(&sb, "  [%d] len=%d: [", i, b.Len())
		for j, t := range b.Terms() {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(t.String())
		}
		sb.WriteString("]\n")
	}
	sb.WriteString("]")
	return sb.String()
}

// ensureNotEmptyRepresentation gives a set with zero buckets (as built by
// [Empty]) a single empty bucket before any insertion is attempted, so Add
// always has an owning bucket to insert into. Both layouts denote an empty
// set under spec §3.3 (3).
func (s *SortedSet) ensureNotEmptyRepresentation() {
	if len(s.buckets) == 0 {
		s.buckets = append(s.buckets, bucket.New(nil))
	}
}

func (s *SortedSet) effectiveIndex(bucketIdx, offset int) int {
	index := offset
	for i := 0; i < bucketIdx; i++ {
		index += s.buckets[i].Len()
	}
	return index
}
