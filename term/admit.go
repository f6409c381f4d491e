package term

import "math/big"

// Admit deep-checks raw and, if every leaf belongs to the admissible
// variant set of spec §3.1, constructs the corresponding [Term]. It has no
// side effects; on failure it returns [ErrUnsupportedType] and the caller's
// state (in particular, any [sortedset.SortedSet]) is left untouched,
// because the check runs before any mutation is attempted.
//
// Admit accepts a fixed set of native Go shapes standing in for values that
// a real host-runtime decoder (an external collaborator per spec §6.2) has
// already produced:
//
//   - int, int32, int64, *big.Int  -> Integer
//   - bool                         -> Atom ("true" / "false", as in Erlang)
//   - Atom                         -> Atom
//   - string, []byte               -> Bitstring
//   - RawTuple ([]any)             -> Tuple
//   - []any (not RawTuple)         -> List
//
// Anything else — including float32/64, complex64/128, channels, funcs,
// uintptr, unsafe.Pointer, and nil — is rejected. Rejection is deep: a
// RawTuple or []any transitively containing a rejected leaf is rejected as
// a whole, regardless of depth.
func Admit(raw any) (Term, error) {
	switch v := raw.(type) {
	case int:
		return NewInteger(big.NewInt(int64(v))), nil
	case int32:
		return NewInteger(big.NewInt(int64(v))), nil
	case int64:
		return NewInteger(big.NewInt(v)), nil
	case *big.Int:
		if v == nil {
			return Term{}, ErrUnsupportedType
		}
		return NewInteger(v), nil
	case bool:
		if v {
			return NewAtom("true"), nil
		}
		return NewAtom("false"), nil
	case Atom:
		return NewAtom(string(v)), nil
	case string:
		return NewBitstring([]byte(v)), nil
	case []byte:
		return NewBitstring(v), nil
	case RawTuple:
		elements, err := admitElements(v)
		if err != nil {
			return Term{}, err
		}
		return NewTuple(elements), nil
	case []any:
		elements, err := admitElements(v)
		if err != nil {
			return Term{}, err
		}
		return NewList(elements), nil
	default:
		return Term{}, ErrUnsupportedType
	}
}

func admitElements(raw []any) ([]Term, error) {
	elements := make([]Term, len(raw))
	for i, r := range raw {
		e, err := Admit(r)
		if err != nil {
			return nil, err
		}
		elements[i] = e
	}
	return elements, nil
}
