// Package term defines the closed variant set of values that may be stored
// in a [sortedset.SortedSet], and the total order over them.
package term

import "math/big"

// Kind identifies which variant of the admissible term universe a [Term]
// belongs to.
type Kind uint8

// The term kinds, in their §3.2 cross-type order: Integer < Atom <
// Bitstring < List < Tuple.
const (
	KindInteger Kind = iota
	KindAtom
	KindBitstring
	KindList
	KindTuple
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindAtom:
		return "Atom"
	case KindBitstring:
		return "Bitstring"
	case KindList:
		return "List"
	case KindTuple:
		return "Tuple"
	default:
		return "Unknown"
	}
}

// Atom is an interned symbolic name. It is distinguished from a Bitstring by
// type alone, since the host boundary that decodes raw values has already
// made that distinction by the time [Admit] sees it.
type Atom string

// RawTuple marks a slice of raw values as a Tuple rather than a List when
// passed to [Admit]. Without this marker, a bare []any is admitted as a
// List, since Go has no native fixed-arity heterogeneous sequence type.
type RawTuple []any

// Term is an admitted, immutable value drawn from the variant set described
// in spec §3.1. The zero value is not a valid Term; use a constructor or
// [Admit].
type Term struct {
	kind      Kind
	integer   *big.Int
	atom      string
	bitstring []byte
	elements  []Term
}

// Kind returns the variant this term belongs to.
func (t Term) Kind() Kind { return t.kind }

// Integer returns the underlying integer and true if t is an Integer term.
func (t Term) Integer() (*big.Int, bool) {
	if t.kind != KindInteger {
		return nil, false
	}
	return t.integer, true
}

// AtomName returns the underlying name and true if t is an Atom term.
func (t Term) AtomName() (string, bool) {
	if t.kind != KindAtom {
		return "", false
	}
	return t.atom, true
}

// Bitstring returns the underlying bytes and true if t is a Bitstring term.
func (t Term) Bitstring() ([]byte, bool) {
	if t.kind != KindBitstring {
		return nil, false
	}
	return t.bitstring, true
}

// Elements returns the underlying element sequence and true if t is a List
// or Tuple term.
func (t Term) Elements() ([]Term, bool) {
	if t.kind != KindList && t.kind != KindTuple {
		return nil, false
	}
	return t.elements, true
}

// NewInteger constructs an Integer term.
func NewInteger(v *big.Int) Term {
	if v == nil {
		v = new(big.Int)
	}
	return Term{kind: KindInteger, integer: new(big.Int).Set(v)}
}

// NewAtom constructs an Atom term.
func NewAtom(name string) Term {
	return Term{kind: KindAtom, atom: name}
}

// NewBitstring constructs a Bitstring term.
func NewBitstring(data []byte) Term {
	cp := make([]byte, len(data))
	copy(cp, data)
	return Term{kind: KindBitstring, bitstring: cp}
}

// NewList constructs a List term from already-admitted elements.
func NewList(elements []Term) Term {
	cp := make([]Term, len(elements))
	copy(cp, elements)
	return Term{kind: KindList, elements: cp}
}

// NewTuple constructs a Tuple term from already-admitted elements.
func NewTuple(elements []Term) Term {
	cp := make([]Term, len(elements))
	copy(cp, elements)
	return Term{kind: KindTuple, elements: cp}
}

// String renders a human-readable (but not parseable, not stable) form of
// t, used only by [sortedset.SortedSet.Debug] and test failure output.
func (t Term) String() string {
	switch t.kind {
	case KindInteger:
		return t.integer.String()
	case KindAtom:
		return ":" + t.atom
	case KindBitstring:
		return string(t.bitstring)
	case KindList:
		return joinElements("[", "]", t.elements)
	case KindTuple:
		return joinElements("{", "}", t.elements)
	default:
		return "<invalid term>"
	}
}

func joinElements(open, close string, elements []Term) string {
	s := open
	for i, e := range elements {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + close
}
