// Package errorx adds context to errors returned across the boundary
// package's dispatch methods without double-wrapping a recognized sentinel.
package errorx

import (
	"errors"
	"fmt"

	"github.com/discord/sorted-set-nif/concurrency"
	"github.com/discord/sorted-set-nif/sortedset"
	"github.com/discord/sorted-set-nif/term"
)

// Wrap adds context to *err, typically via defer. It leaves *err untouched
// if it is nil or already one of the module's recognized sentinel errors,
// since those are meant to be matched with errors.Is by callers and gain
// nothing from an extra layer of formatting.
//
// boundary.ErrBadReference is not checked here: boundary is the one package
// that both raises that sentinel and calls Wrap, and recognizing it here
// would require importing boundary, which imports this package. boundary
// returns ErrBadReference directly, ahead of any Wrap call, so the cycle
// never needs breaking.
func Wrap(err *error, format string, args ...any) {
	if err == nil {
		panic("err must not be nil")
	}

	if *err == nil || isSentinel(*err) {
		return
	}

	*err = fmt.Errorf(format+": %w", append(args, *err)...)
}

func isSentinel(err error) bool {
	return errors.Is(err, term.ErrUnsupportedType) ||
		errors.Is(err, sortedset.ErrMaxBucketSizeExceeded) ||
		errors.Is(err, concurrency.ErrLockFail)
}
