// SPDX-License-Identifier: MIT

package gcs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the fault taxonomy every container in this module
// raises at its boundary. Fatal kinds panic with a *Fault; non-fatal
// kinds are logged through Logger and return normally.
type Kind int

const (
	// NullArgument: a required reference argument was nil. Fatal.
	NullArgument Kind = iota
	// IndexOutOfBounds: an index was >= size. Fatal.
	IndexOutOfBounds
	// OutOfRange: a cursor stepped past end or before begin. Fatal.
	OutOfRange
	// InconsistentIteratorPair: two cursors refer to different
	// containers. Fatal.
	InconsistentIteratorPair
	// AllocationFailure: the backing allocator could not grow storage.
	// Fatal.
	AllocationFailure
	// InvalidSize: Reserve(n) with n <= current capacity, or
	// Resize(0). Non-fatal: warn and return. A negative size or
	// capacity passed to gcs/seq (Reserved, Fill, Resize, ResizeFill,
	// InsertFill) is the exception: it panics with a *Fault of this
	// Kind, even though Fatal reports false.
	InvalidSize
	// DuplicateKey: insert-unique on an existing tree key. Non-fatal:
	// warn and no-op.
	DuplicateKey
)

func (k Kind) String() string {
	switch k {
	case NullArgument:
		return "NullArgument"
	case IndexOutOfBounds:
		return "IndexOutOfBounds"
	case OutOfRange:
		return "OutOfRange"
	case InconsistentIteratorPair:
		return "InconsistentIteratorPair"
	case AllocationFailure:
		return "AllocationFailure"
	case InvalidSize:
		return "InvalidSize"
	case DuplicateKey:
		return "DuplicateKey"
	default:
		return "Unknown"
	}
}

// Fatal reports whether a fault of this Kind aborts the calling goroutine
// (via panic) rather than being logged and returned from.
func (k Kind) Fatal() bool {
	switch k {
	case InvalidSize, DuplicateKey:
		return false
	default:
		return true
	}
}

// Fault is the error value every fatal operation panics with, and that
// InvalidSize/DuplicateKey diagnostics carry to Logger. It wraps a
// stack-annotated cause from github.com/pkg/errors so a recovering caller
// (a test, or a long-running host) can log the full origin of an abort.
type Fault struct {
	Kind Kind
	Op   string
	Msg  string
	err  error
}

func (f *Fault) Error() string {
	if f.Msg == "" {
		return fmt.Sprintf("gcs: %s: %s", f.Op, f.Kind)
	}
	return fmt.Sprintf("gcs: %s: %s: %s", f.Op, f.Kind, f.Msg)
}

// Unwrap exposes the stack-annotated cause for errors.As/errors.Is.
func (f *Fault) Unwrap() error { return f.err }

func newFault(kind Kind, op, msg string) *Fault {
	return &Fault{
		Kind: kind,
		Op:   op,
		Msg:  msg,
		err:  errors.WithStack(fmt.Errorf("%s: %s", op, kind)),
	}
}

// Abort raises a fatal fault: it panics with a *Fault built from kind,
// the operation name op, and an optional message msg. Callers in gcs/seq
// and gcs/tree use this for NullArgument, IndexOutOfBounds, OutOfRange,
// InconsistentIteratorPair, and AllocationFailure.
func Abort(kind Kind, op, msg string) {
	panic(newFault(kind, op, msg))
}

// Warn raises a non-fatal fault: it logs a warning via Logger and
// returns. Callers use this for InvalidSize and DuplicateKey.
func Warn(kind Kind, op, msg string) {
	f := newFault(kind, op, msg)
	Logger.Warnw(f.Error(), "kind", kind.String(), "op", op)
}
