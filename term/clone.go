package term

import "github.com/dogmatiq/dyad"

// Clone returns a deep copy of t, so that a caller holding a Term returned
// from a [sortedset.SortedSet] read cannot observe or corrupt the
// container's own backing slices for List/Tuple elements or Bitstring
// bytes.
func Clone(t Term) Term {
	return dyad.Clone(t, dyad.WithUnexportedFieldStrategy(dyad.CloneUnexportedFields))
}

// CloneSlice returns a deep copy of each Term in ts.
func CloneSlice(ts []Term) []Term {
	cp := make([]Term, len(ts))
	for i, t := range ts {
		cp[i] = Clone(t)
	}
	return cp
}
