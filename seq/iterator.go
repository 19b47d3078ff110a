// SPDX-License-Identifier: MIT

package seq

import "github.com/galudino/gcs"

// Cursor is the sequence's iterator: a value type carrying the container
// it was obtained from and an index position. idx ranges over
// [0, seq.Len()] inclusive of the end sentinel. A Cursor is invalidated
// by any operation on its Sequence that may reallocate or shift storage
// (Insert, Erase, Resize, Reserve, ShrinkToFit, Clear, growth-triggering
// PushBack, ...); using an invalidated Cursor is undefined behavior, as
// in the source.
type Cursor[T any] struct {
	seq *Sequence[T]
	idx int
}

func checkCursor[T any](c Cursor[T], op string) {
	if c.seq == nil {
		gcs.Abort(gcs.NullArgument, op, "zero-value cursor")
	}
}

func checkPair[T any](a, b Cursor[T], op string) {
	checkCursor(a, op)
	checkCursor(b, op)
	if a.seq != b.seq {
		gcs.Abort(gcs.InconsistentIteratorPair, op, "cursors refer to different containers")
	}
}

// Begin returns a Cursor positioned at the first element, or at End if
// the Sequence is empty.
func Begin[T any](s *Sequence[T]) Cursor[T] {
	nilCheck(s, "Begin")
	return Cursor[T]{seq: s, idx: 0}
}

// End returns a Cursor positioned one past the last element.
func End[T any](s *Sequence[T]) Cursor[T] {
	nilCheck(s, "End")
	return Cursor[T]{seq: s, idx: s.length}
}

// Next returns a Cursor shifted forward by one. Fails with OutOfRange if
// it steps past end.
func Next[T any](c Cursor[T]) Cursor[T] {
	return NextN(c, 1)
}

// Prev returns a Cursor shifted backward by one. Fails with OutOfRange
// if it steps before begin.
func Prev[T any](c Cursor[T]) Cursor[T] {
	return PrevN(c, 1)
}

// NextN returns a Cursor shifted forward by n. Fails with OutOfRange if
// the target lies outside [0, Len()].
func NextN[T any](c Cursor[T], n int) Cursor[T] {
	checkCursor(c, "NextN")
	target := c.idx + n
	if target < 0 || target > c.seq.length {
		gcs.Abort(gcs.OutOfRange, "NextN", "target position outside [start, finish]")
	}
	return Cursor[T]{seq: c.seq, idx: target}
}

// PrevN returns a Cursor shifted backward by n. Negative n is defined
// only through NextN; PrevN(c, n) == NextN(c, -n).
func PrevN[T any](c Cursor[T], n int) Cursor[T] {
	return NextN(c, -n)
}

// Advance mutates *c in place by n positions.
func Advance[T any](c *Cursor[T], n int) {
	if c == nil {
		gcs.Abort(gcs.NullArgument, "Advance", "nil *Cursor")
	}
	*c = NextN(*c, n)
}

// Increment mutates *c in place by one position forward.
func Increment[T any](c *Cursor[T]) { Advance(c, 1) }

// Decrement mutates *c in place by one position backward.
func Decrement[T any](c *Cursor[T]) { Advance(c, -1) }

// Current returns a pointer to the element at the cursor. Fails with
// OutOfRange if the cursor is at End.
func Current[T any](c Cursor[T]) *T {
	checkCursor(c, "Current")
	if c.idx < 0 || c.idx >= c.seq.length {
		gcs.Abort(gcs.OutOfRange, "Current", "cursor at or past end")
	}
	return &c.seq.data[c.idx]
}

// Start returns a Cursor at the container's start sentinel (Begin).
func Start[T any](c Cursor[T]) Cursor[T] {
	checkCursor(c, "Start")
	return Begin(c.seq)
}

// Finish returns a Cursor at the container's end sentinel (End).
func Finish[T any](c Cursor[T]) Cursor[T] {
	checkCursor(c, "Finish")
	return End(c.seq)
}

// Distance returns the signed element-count difference between last and
// first (last - first). If exactly one of the pair is the zero Cursor,
// Distance returns the absolute cursor index of the non-zero one from
// its container's start — the overload callers use to read back a
// cursor's numeric index.
func Distance[T any](first, last Cursor[T]) int {
	firstZero := first.seq == nil
	lastZero := last.seq == nil
	switch {
	case firstZero && lastZero:
		gcs.Abort(gcs.NullArgument, "Distance", "both cursors are zero-valued")
	case firstZero:
		return last.idx
	case lastZero:
		return first.idx
	}
	checkPair(first, last, "Distance")
	return last.idx - first.idx
}

// HasNext reports whether advancing c by one is legal.
func HasNext[T any](c Cursor[T]) bool {
	checkCursor(c, "HasNext")
	return c.idx < c.seq.length
}

// HasPrev reports whether retreating c by one is legal.
func HasPrev[T any](c Cursor[T]) bool {
	checkCursor(c, "HasPrev")
	return c.idx > 0
}

// Ttbl returns the policy of the container c iterates.
func Ttbl[T any](c Cursor[T]) gcs.Policy[T] {
	checkCursor(c, "Ttbl")
	return c.seq.policy
}

// Index returns the cursor's position, equivalent to Distance(Cursor[T]{}, c).
func (c Cursor[T]) Index() int { return c.idx }

// All returns a Go 1.23 range-over-func iterator over (index, element)
// pairs, a read-only convenience additive to the Cursor API (grounded in
// the teacher's iter.Seq2-returning methods). It does not participate in
// Cursor invalidation tracking beyond what range-over-func already
// guarantees: mutating s mid-range is as undefined as mutating any slice
// mid-range.
func (s *Sequence[T]) All() func(yield func(int, T) bool) {
	nilCheck(s, "All")
	return func(yield func(int, T) bool) {
		for i := 0; i < s.length; i++ {
			if !yield(i, s.data[i]) {
				return
			}
		}
	}
}
