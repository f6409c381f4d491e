package boundary

import (
	"github.com/discord/sorted-set-nif/sortedset"
	"github.com/discord/sorted-set-nif/term"
)

// Dispatch is the operation surface of spec §6.1. [Dispatcher] is the base
// implementation; [WithTelemetry] and [WithInterceptor] wrap a Dispatch to
// add ambient behavior around it, exactly as the teacher's BinaryStore
// decorators wrap a BinaryStore.
type Dispatch interface {
	New(config sortedset.Configuration) Handle
	Empty(config sortedset.Configuration) Handle
	Release(h Handle) error
	Shutdown() error
	AppendBucket(h Handle, raws []any) error
	Add(h Handle, raw any) (AddOutcome, error)
	Remove(h Handle, raw any) (RemoveOutcome, error)
	At(h Handle, index int) (term.Term, bool, error)
	Slice(h Handle, start, amount int) ([]term.Term, error)
	FindIndex(h Handle, raw any) (int, bool, error)
	Size(h Handle) (int, error)
	ToList(h Handle) ([]term.Term, error)
	Debug(h Handle) (string, error)
}

var _ Dispatch = (*Dispatcher)(nil)
