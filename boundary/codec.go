package boundary

import (
	"math/big"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/discord/sorted-set-nif/term"
)

// DecodeStructValue turns v — the shape a real host/FFI boundary speaking
// Protocol Buffers would hand this module over the wire (spec §6.2's
// "external collaborator") — into a [term.Term], reusing [term.Admit]'s
// rejection rules.
//
// structpb.Value's own variant set maps onto spec §3.1's admissible terms
// as follows: NullValue and NumberValue (a float64, which spec §3.1 does
// not admit) are always rejected; BoolValue and StringValue become Atom
// and Bitstring respectively; ListValue recurses into a List; StructValue
// has no sensible admissible mapping (its fields are unordered, named
// key/value pairs, not a sequence) and is rejected.
func DecodeStructValue(v *structpb.Value) (term.Term, error) {
	if v == nil {
		return term.Term{}, term.ErrUnsupportedType
	}

	switch k := v.GetKind().(type) {
	case *structpb.Value_BoolValue:
		return term.Admit(k.BoolValue)
	case *structpb.Value_StringValue:
		return term.Admit(k.StringValue)
	case *structpb.Value_ListValue:
		elements := make([]any, len(k.ListValue.GetValues()))
		for i, ev := range k.ListValue.GetValues() {
			e, err := DecodeStructValue(ev)
			if err != nil {
				return term.Term{}, err
			}
			elements[i] = rawFromTerm(e)
		}
		return term.Admit(elements)
	default:
		return term.Term{}, term.ErrUnsupportedType
	}
}

// rawFromTerm recovers a raw value [term.Admit] accepts from an
// already-admitted Term, so DecodeStructValue's recursive List decoding
// can delegate back into Admit instead of duplicating its constructors.
func rawFromTerm(t term.Term) any {
	switch t.Kind() {
	case term.KindInteger:
		v, _ := t.Integer()
		return new(big.Int).Set(v)
	case term.KindAtom:
		name, _ := t.AtomName()
		return term.Atom(name)
	case term.KindBitstring:
		data, _ := t.Bitstring()
		return data
	case term.KindList:
		elements, _ := t.Elements()
		raws := make([]any, len(elements))
		for i, e := range elements {
			raws[i] = rawFromTerm(e)
		}
		return raws
	case term.KindTuple:
		elements, _ := t.Elements()
		raws := make(term.RawTuple, len(elements))
		for i, e := range elements {
			raws[i] = rawFromTerm(e)
		}
		return raws
	default:
		return nil
	}
}
