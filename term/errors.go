package term

import "errors"

// ErrUnsupportedType is returned by [Admit] when raw contains a leaf value
// (at any depth, including the top level) that is not part of the
// admissible variant set of spec §3.1.
var ErrUnsupportedType = errors.New("term: unsupported type")
