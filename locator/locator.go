// Package locator implements the algorithm that maps a term to the
// coordinates — bucket index and in-bucket offset — at which it resides, or
// would need to be inserted, within a [sortedset.SortedSet].
package locator

import (
	"github.com/discord/sorted-set-nif/bucket"
	"github.com/discord/sorted-set-nif/term"
)

// Locate finds the owning bucket for t among buckets, using a left-to-right
// linear scan, then performs an inner binary search within that bucket.
//
// The outer scan is linear rather than a binary search by deliberate
// choice: bucket counts are small relative to the total element count at a
// realistic bucket capacity (~500), keeping the scan cache-friendly, and
// workloads biased toward append-near-end or delete-near-beginning access
// patterns short-circuit quickly in a linear scan. See spec §4.3 and §9.
//
// If buckets is empty, Locate reports bucket index 0, offset 0, and
// found=false — the caller is responsible for ensuring a single empty
// bucket exists before inserting into an empty container.
func Locate(buckets []*bucket.Bucket, t term.Term) (bucketIdx, offset int, found bool) {
	if len(buckets) == 0 {
		return 0, 0, false
	}

	bucketIdx = len(buckets) - 1
	for i, b := range buckets {
		last, ok := b.Last()
		if !ok || term.Compare(t, last) <= 0 {
			bucketIdx = i
			break
		}
	}

	offset, found = buckets[bucketIdx].Find(t)
	return bucketIdx, offset, found
}
