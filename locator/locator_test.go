package locator_test

import (
	"math/big"
	"testing"

	"github.com/discord/sorted-set-nif/bucket"
	. "github.com/discord/sorted-set-nif/locator"
	"github.com/discord/sorted-set-nif/term"
)

func integer(n int64) term.Term {
	return term.NewInteger(big.NewInt(n))
}

// buildBuckets constructs the four-bucket layout documented in
// spec §4.3's source tests: [[2,4],[6,8],[10,12],[14,16,18]].
func buildBuckets() []*bucket.Bucket {
	layout := [][]int64{
		{2, 4},
		{6, 8},
		{10, 12},
		{14, 16, 18},
	}

	buckets := make([]*bucket.Bucket, len(layout))
	for i, values := range layout {
		terms := make([]term.Term, len(values))
		for j, v := range values {
			terms[j] = integer(v)
		}
		buckets[i] = bucket.New(terms)
	}
	return buckets
}

func TestLocate_EmptyContainer(t *testing.T) {
	t.Parallel()

	bucketIdx, offset, found := Locate(nil, integer(10))
	if bucketIdx != 0 || offset != 0 || found {
		t.Fatalf("Locate on empty container = (%d, %d, %v), want (0, 0, false)", bucketIdx, offset, found)
	}
}

func TestLocate_AcrossBuckets(t *testing.T) {
	t.Parallel()

	buckets := buildBuckets()

	cases := []struct {
		name       string
		value      int64
		wantBucket int
		wantFound  bool
	}{
		{"less than first item", 0, 0, false},
		{"equal to first item", 2, 0, true},
		{"unique in first bucket", 3, 0, false},
		{"duplicate in first bucket", 4, 0, true},
		{"between buckets selects right-hand bucket", 5, 1, false},
		{"unique in interior bucket", 7, 1, false},
		{"duplicate in interior bucket", 8, 1, true},
		{"unique in last bucket", 15, 3, false},
		{"duplicate in last bucket", 16, 3, true},
		{"equal to last item", 18, 3, true},
		{"greater than last item", 21, 3, false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			bucketIdx, _, found := Locate(buckets, integer(c.value))
			if bucketIdx != c.wantBucket || found != c.wantFound {
				t.Fatalf(
					"Locate(%d) = (bucket=%d, found=%v), want (bucket=%d, found=%v)",
					c.value, bucketIdx, found, c.wantBucket, c.wantFound,
				)
			}
		})
	}
}
