// Package bucket implements the inner, bounded-length ordered sequence of
// terms that a [sortedset.SortedSet] partitions its contents into.
package bucket

import (
	"slices"

	"github.com/discord/sorted-set-nif/term"
)

// Bucket is an ordered, duplicate-free sequence of terms. It does not
// enforce its own capacity bound — the owning [sortedset.SortedSet] decides
// when a Bucket has grown too large and splits it — but every method that
// could produce a bucket longer than its caller intends leaves that
// decision to the caller.
type Bucket struct {
	terms []term.Term
}

// New returns a Bucket initialized with the given terms, which must already
// be sorted under [term.Compare] and free of duplicates. New does not
// validate this precondition; misuse corrupts the bucket's invariants.
func New(terms []term.Term) *Bucket {
	cp := make([]term.Term, len(terms))
	copy(cp, terms)
	return &Bucket{terms: cp}
}

// Len returns the number of terms in the bucket.
func (b *Bucket) Len() int {
	return len(b.terms)
}

// First returns the smallest term in the bucket.
func (b *Bucket) First() (term.Term, bool) {
	if len(b.terms) == 0 {
		return term.Term{}, false
	}
	return b.terms[0], true
}

// Last returns the largest term in the bucket.
func (b *Bucket) Last() (term.Term, bool) {
	if len(b.terms) == 0 {
		return term.Term{}, false
	}
	return b.terms[len(b.terms)-1], true
}

// At returns the term at the given offset within the bucket.
func (b *Bucket) At(offset int) (term.Term, bool) {
	if offset < 0 || offset >= len(b.terms) {
		return term.Term{}, false
	}
	return b.terms[offset], true
}

// Terms returns the bucket's contents in order. The returned slice must not
// be mutated by the caller.
func (b *Bucket) Terms() []term.Term {
	return b.terms
}

// Find performs a binary search for t. If found, it returns t's offset and
// true. Otherwise it returns the offset at which t would need to be
// inserted to preserve order, and false.
func (b *Bucket) Find(t term.Term) (offset int, found bool) {
	return slices.BinarySearchFunc(b.terms, t, term.Compare)
}

// Insert adds t to the bucket if it is not already present. It returns the
// term's offset and true if it was inserted, or its existing offset and
// false if t was already a member (a "Duplicate" result, per spec §4.2).
func (b *Bucket) Insert(t term.Term) (offset int, inserted bool) {
	offset, found := b.Find(t)
	if found {
		return offset, false
	}

	b.terms = slices.Insert(b.terms, offset, t)
	return offset, true
}

// Remove removes t from the bucket if present. It returns the term's
// former offset and true if it was removed, or zero and false if t was not
// a member.
func (b *Bucket) Remove(t term.Term) (offset int, removed bool) {
	offset, found := b.Find(t)
	if !found {
		return 0, false
	}

	b.terms = slices.Delete(b.terms, offset, offset+1)
	return offset, true
}

// SplitAtMidpoint truncates the bucket to its first half and returns a new
// Bucket containing the second half. The left half remains in b; the
// caller is responsible for inserting the returned right half immediately
// after b in the owning container's outer sequence.
func (b *Bucket) SplitAtMidpoint() (right *Bucket) {
	mid := len(b.terms) / 2

	rightTerms := make([]term.Term, len(b.terms)-mid)
	copy(rightTerms, b.terms[mid:])

	b.terms = b.terms[:mid:mid]

	return &Bucket{terms: rightTerms}
}
