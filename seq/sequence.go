// SPDX-License-Identifier: MIT

package seq

import "github.com/galudino/gcs"

// Sequence is a contiguous, type-generic growable array. The zero value
// is not directly usable (its element policy would be unknown); build one
// with [New], [Reserved], [Fill], [FillRef], [FromRange], [CopyOf],
// [MoveFrom], [FromSlice], or [WrapSlice].
//
// data is the backing storage: data[:length] are the live elements, and
// data[length:cap(data)] is uninitialised reserved capacity in spirit
// (Go zero-values it, but no element there has been constructed via the
// policy). This maps the source's start/finish/end_of_storage trio onto
// a single owning slice, per DESIGN NOTES: keep the uninitialised-tail
// semantics even though the representation changed.
type Sequence[T any] struct {
	data   []T
	length int
	policy gcs.Policy[T]
}

func nilCheck[T any](s *Sequence[T], fn string) {
	if s == nil {
		gcs.Abort(gcs.NullArgument, fn, "nil *Sequence receiver")
	}
}

// New returns an empty Sequence with [gcs.DefaultCapacity] capacity.
func New[T any](policy gcs.Policy[T]) *Sequence[T] {
	return Reserved[T](gcs.DefaultCapacity, policy)
}

// Reserved returns an empty Sequence with capacity max(n, 1). n == 0 is
// coerced to 1 with a warning, matching the source's reserved(n)
// constructor.
func Reserved[T any](n int, policy gcs.Policy[T]) *Sequence[T] {
	if n == 0 {
		gcs.Warn(gcs.InvalidSize, "Reserved", "n == 0, coercing to capacity 1")
		n = 1
	} else if n < 0 {
		gcs.Abort(gcs.InvalidSize, "Reserved", "negative capacity")
	}
	return &Sequence[T]{
		data:   make([]T, 0, n),
		policy: policy,
	}
}

// Fill returns a length-n Sequence, each element initialized from v via
// policy.Copy (or a plain assignment if Copy is nil).
func Fill[T any](n int, v T, policy gcs.Policy[T]) *Sequence[T] {
	if n < 0 {
		gcs.Abort(gcs.InvalidSize, "Fill", "negative length")
	}
	s := Reserved[T](max(n, 1), policy)
	s.data = s.data[:n]
	s.length = n
	copyFn := resolveCopy(policy)
	for i := range s.data {
		copyFn(&s.data[i], v)
	}
	return s
}

// FillRef is Fill taking v by reference, matching the source's
// fill_by_ref constructor; it is otherwise identical to Fill.
func FillRef[T any](n int, v *T, policy gcs.Policy[T]) *Sequence[T] {
	if v == nil {
		gcs.Abort(gcs.NullArgument, "FillRef", "nil v")
	}
	return Fill(n, *v, policy)
}

// CopyOf returns a length-size(other), capacity-capacity(other) Sequence
// with every element deep-copied per other's policy.
func CopyOf[T any](other *Sequence[T]) *Sequence[T] {
	nilCheck(other, "CopyOf")
	s := Reserved[T](other.Cap(), other.policy)
	s.data = s.data[:other.length]
	s.length = other.length
	copyFn := resolveCopy(other.policy)
	for i := range s.data {
		copyFn(&s.data[i], other.data[i])
	}
	return s
}

// MoveFrom adopts other's backing storage. other is left usable, reset to
// a freshly allocated capacity-1 Sequence sharing its former policy,
// matching the source's move constructor: the moved-from side is
// reinitialized, never left invalid.
func MoveFrom[T any](other *Sequence[T]) *Sequence[T] {
	nilCheck(other, "MoveFrom")
	s := &Sequence[T]{
		data:   other.data,
		length: other.length,
		policy: other.policy,
	}
	other.data = make([]T, 0, 1)
	other.length = 0
	return s
}

// FromSlice returns a new Sequence of len(base) elements, each copied
// from base per policy.
func FromSlice[T any](base []T, policy gcs.Policy[T]) *Sequence[T] {
	s := Reserved[T](max(len(base), 1), policy)
	s.data = s.data[:len(base)]
	s.length = len(base)
	copyFn := resolveCopy(policy)
	for i := range base {
		copyFn(&s.data[i], base[i])
	}
	return s
}

// FromRange returns a new Sequence built from the half-open cursor range
// [first, last), each element copied per policy. first and last must
// refer to the same container.
func FromRange[T any](first, last Cursor[T], policy gcs.Policy[T]) *Sequence[T] {
	checkPair(first, last, "FromRange")
	delta := Distance(first, last)
	if delta < 0 {
		gcs.Abort(gcs.OutOfRange, "FromRange", "last precedes first")
	}
	src := first.seq
	s := Reserved[T](max(delta, 1), policy)
	s.data = s.data[:delta]
	s.length = delta
	copyFn := resolveCopy(policy)
	for i := 0; i < delta; i++ {
		copyFn(&s.data[i], src.data[first.idx+i])
	}
	return s
}

// WrapSlice adopts base directly: the first length elements are treated
// as live, the remaining cap(base)-length as reserved capacity. Ownership
// of base transfers to the Sequence; the caller must not mutate or reuse
// base independently afterward, matching the source's wrap_pointer
// adoption.
func WrapSlice[T any](base []T, length int, policy gcs.Policy[T]) *Sequence[T] {
	if length < 0 || length > cap(base) {
		gcs.Abort(gcs.IndexOutOfBounds, "WrapSlice", "length exceeds cap(base)")
	}
	return &Sequence[T]{
		data:   base[:cap(base)][:length],
		length: length,
		policy: policy,
	}
}

func resolveCopy[T any](p gcs.Policy[T]) func(dst *T, src T) {
	if p.Copy != nil {
		return p.Copy
	}
	return func(dst *T, src T) { *dst = src }
}

func resolveSwap[T any](p gcs.Policy[T]) func(a, b *T) {
	if p.Swap != nil {
		return p.Swap
	}
	return func(a, b *T) { *a, *b = *b, *a }
}

func resolveCompare[T any](p gcs.Policy[T]) func(a, b T) int {
	if p.Compare != nil {
		return p.Compare
	}
	return gcs.Void[T]().Compare
}
