package sortedset

import "errors"

// ErrMaxBucketSizeExceeded is returned by [SortedSet.AppendBucket] when the
// supplied terms would exceed the configured bucket capacity.
var ErrMaxBucketSizeExceeded = errors.New("sortedset: terms exceed max bucket size")
