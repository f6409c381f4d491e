package term

// Size approximates t's encoded size in bytes: the magnitude of an Integer,
// the length of an Atom's name or a Bitstring's bytes, or the sum of a
// List's or Tuple's elements, recursively. It carries no wire-format
// guarantee and exists only to give telemetry a size metric to histogram.
func (t Term) Size() int {
	switch t.kind {
	case KindInteger:
		return len(t.integer.Bytes())
	case KindAtom:
		return len(t.atom)
	case KindBitstring:
		return len(t.bitstring)
	case KindList, KindTuple:
		n := 0
		for _, e := range t.elements {
			n += e.Size()
		}
		return n
	default:
		return 0
	}
}
