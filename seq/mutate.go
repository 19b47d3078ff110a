// SPDX-License-Identifier: MIT

package seq

import "github.com/galudino/gcs"

// growForPush doubles capacity (new capacity = 2 * old capacity, or 1 if
// currently zero), the amortized-O(1) rear-insertion growth policy.
func (s *Sequence[T]) growForPush() {
	newCap := cap(s.data) * 2
	if newCap == 0 {
		newCap = 1
	}
	s.Resize(newCap)
}

// makeRoom grows if needed to 2*(Cap()+delta) and shifts the live tail
// starting at pos right by delta positions via pairwise policy swaps,
// walking from the right. It leaves the delta slots at
// [pos, pos+delta) uninitialized-in-spirit (Go zero-valued) ready for
// the caller to fill. Inserting at the tail (pos == old length) falls
// out of the same loop as a zero-iteration shift, which is how this port
// collapses the source's separate "tail push-back loop" branch into one
// code path.
func (s *Sequence[T]) makeRoom(pos, delta int) {
	oldLen := s.length
	if oldLen+delta > cap(s.data) {
		s.Resize(2 * (cap(s.data) + delta))
	}
	s.data = s.data[:oldLen+delta]
	if pos < oldLen {
		swapFn := resolveSwap(s.policy)
		for i := oldLen + delta - 1; i >= pos+delta; i-- {
			swapFn(&s.data[i], &s.data[i-delta])
		}
	}
	s.length = oldLen + delta
}

// PushBack appends v to the rear, growing via growForPush if the
// backing storage is full.
func (s *Sequence[T]) PushBack(v T) {
	nilCheck(s, "PushBack")
	if s.length == cap(s.data) {
		s.growForPush()
	}
	s.data = s.data[:s.length+1]
	resolveCopy(s.policy)(&s.data[s.length], v)
	s.length++
}

// PushBackRef is PushBack taking v by reference.
func (s *Sequence[T]) PushBackRef(v *T) {
	if v == nil {
		gcs.Abort(gcs.NullArgument, "PushBackRef", "nil v")
	}
	s.PushBack(*v)
}

// PopBack is a no-op on an empty Sequence; otherwise it destroys (if
// Destroy is defined) and retires the last live element.
func (s *Sequence[T]) PopBack() {
	nilCheck(s, "PopBack")
	if s.length == 0 {
		return
	}
	idx := s.length - 1
	if s.policy.Destroy != nil {
		s.policy.Destroy(&s.data[idx])
	}
	var zero T
	s.data[idx] = zero
	s.data = s.data[:idx]
	s.length = idx
}

// Insert writes v at the rear, then walks it backward into pos via
// pairwise swaps so the rest of the tail shifts right by one. Returns a
// Cursor to the inserted position.
func (s *Sequence[T]) Insert(pos Cursor[T], v T) Cursor[T] {
	nilCheck(s, "Insert")
	checkCursor(pos, "Insert")
	idx := pos.idx
	if idx < 0 || idx > s.length {
		gcs.Abort(gcs.IndexOutOfBounds, "Insert", "pos out of range")
	}
	if s.length == cap(s.data) {
		s.growForPush()
	}
	s.data = s.data[:s.length+1]
	resolveCopy(s.policy)(&s.data[s.length], v)
	swapFn := resolveSwap(s.policy)
	for i := s.length; i > idx; i-- {
		swapFn(&s.data[i], &s.data[i-1])
	}
	s.length++
	return Cursor[T]{seq: s, idx: idx}
}

// InsertRef is Insert taking v by reference.
func (s *Sequence[T]) InsertRef(pos Cursor[T], v *T) Cursor[T] {
	if v == nil {
		gcs.Abort(gcs.NullArgument, "InsertRef", "nil v")
	}
	return s.Insert(pos, *v)
}

// InsertFill inserts n copies of v at pos, shifting the existing tail
// right by n via makeRoom.
func (s *Sequence[T]) InsertFill(pos Cursor[T], n int, v T) Cursor[T] {
	nilCheck(s, "InsertFill")
	checkCursor(pos, "InsertFill")
	idx := pos.idx
	if idx < 0 || idx > s.length {
		gcs.Abort(gcs.IndexOutOfBounds, "InsertFill", "pos out of range")
	}
	if n < 0 {
		gcs.Abort(gcs.InvalidSize, "InsertFill", "negative n")
	}
	if n == 0 {
		return Cursor[T]{seq: s, idx: idx}
	}
	s.makeRoom(idx, n)
	copyFn := resolveCopy(s.policy)
	for i := 0; i < n; i++ {
		copyFn(&s.data[idx+i], v)
	}
	return Cursor[T]{seq: s, idx: idx}
}

// InsertFillRef is InsertFill taking v by reference.
func (s *Sequence[T]) InsertFillRef(pos Cursor[T], n int, v *T) Cursor[T] {
	if v == nil {
		gcs.Abort(gcs.NullArgument, "InsertFillRef", "nil v")
	}
	return s.InsertFill(pos, n, *v)
}

// InsertRange inserts a copy of every element in [first, last) at pos.
// first and last must refer to the same (possibly different-from-s)
// container.
func (s *Sequence[T]) InsertRange(pos Cursor[T], first, last Cursor[T]) Cursor[T] {
	nilCheck(s, "InsertRange")
	checkCursor(pos, "InsertRange")
	checkPair(first, last, "InsertRange")
	idx := pos.idx
	if idx < 0 || idx > s.length {
		gcs.Abort(gcs.IndexOutOfBounds, "InsertRange", "pos out of range")
	}
	delta := Distance(first, last)
	if delta < 0 {
		gcs.Abort(gcs.OutOfRange, "InsertRange", "last precedes first")
	}
	if delta == 0 {
		return Cursor[T]{seq: s, idx: idx}
	}
	src := first.seq
	srcStart := first.idx
	s.makeRoom(idx, delta)
	copyFn := resolveCopy(s.policy)
	for i := 0; i < delta; i++ {
		copyFn(&s.data[idx+i], src.data[srcStart+i])
	}
	return Cursor[T]{seq: s, idx: idx}
}

// InsertMove move-exchanges *src into a temporary (when the policy
// defines Swap) and inserts that temporary at pos; otherwise it behaves
// exactly like Insert.
func (s *Sequence[T]) InsertMove(pos Cursor[T], src *T) Cursor[T] {
	nilCheck(s, "InsertMove")
	if src == nil {
		gcs.Abort(gcs.NullArgument, "InsertMove", "nil src")
	}
	if s.policy.Swap != nil {
		var tmp T
		s.policy.Swap(src, &tmp)
		return s.Insert(pos, tmp)
	}
	return s.Insert(pos, *src)
}

// Erase removes the element at pos. If pos is the last element, this
// delegates to PopBack; otherwise the element is destroyed (if Destroy
// is defined) and the tail is left-shifted into its place by pairwise
// swaps. Returns a Cursor to the position now occupied by the former
// successor.
func (s *Sequence[T]) Erase(pos Cursor[T]) Cursor[T] {
	nilCheck(s, "Erase")
	checkCursor(pos, "Erase")
	idx := pos.idx
	if idx < 0 || idx >= s.length {
		gcs.Abort(gcs.IndexOutOfBounds, "Erase", "pos does not reference a live element")
	}
	if idx == s.length-1 {
		s.PopBack()
		return Cursor[T]{seq: s, idx: s.length}
	}
	if s.policy.Destroy != nil {
		s.policy.Destroy(&s.data[idx])
	}
	swapFn := resolveSwap(s.policy)
	for i := idx; i < s.length-1; i++ {
		swapFn(&s.data[i], &s.data[i+1])
	}
	var zero T
	s.data[s.length-1] = zero
	s.data = s.data[:s.length-1]
	s.length--
	return Cursor[T]{seq: s, idx: idx}
}

// EraseRange removes every element in [pos, last), destroying each (if
// Destroy is defined) and left-shifting the trailing segment by
// pairwise swaps.
func (s *Sequence[T]) EraseRange(pos, last Cursor[T]) Cursor[T] {
	nilCheck(s, "EraseRange")
	checkPair(pos, last, "EraseRange")
	p, l := pos.idx, last.idx
	if p < 0 || l > s.length || p > l {
		gcs.Abort(gcs.IndexOutOfBounds, "EraseRange", "range outside [start, finish]")
	}
	delta := l - p
	if delta == 0 {
		return Cursor[T]{seq: s, idx: p}
	}
	if s.policy.Destroy != nil {
		for i := p; i < l; i++ {
			s.policy.Destroy(&s.data[i])
		}
	}
	swapFn := resolveSwap(s.policy)
	for i := p; i < s.length-delta; i++ {
		swapFn(&s.data[i], &s.data[i+delta])
	}
	var zero T
	for i := s.length - delta; i < s.length; i++ {
		s.data[i] = zero
	}
	s.data = s.data[:s.length-delta]
	s.length -= delta
	return Cursor[T]{seq: s, idx: p}
}

// InsertAt is Insert keyed by index instead of Cursor.
func (s *Sequence[T]) InsertAt(i int, v T) {
	nilCheck(s, "InsertAt")
	if i < 0 || i > s.length {
		gcs.Abort(gcs.IndexOutOfBounds, "InsertAt", "index out of range")
	}
	s.Insert(Cursor[T]{seq: s, idx: i}, v)
}

// EraseAt is Erase keyed by index instead of Cursor.
func (s *Sequence[T]) EraseAt(i int) {
	nilCheck(s, "EraseAt")
	if i < 0 || i >= s.length {
		gcs.Abort(gcs.IndexOutOfBounds, "EraseAt", "index out of range")
	}
	s.Erase(Cursor[T]{seq: s, idx: i})
}

// ReplaceAt destroys (if Destroy is defined) and overwrites the element
// at index i with a copy of v.
func (s *Sequence[T]) ReplaceAt(i int, v T) {
	nilCheck(s, "ReplaceAt")
	if i < 0 || i >= s.length {
		gcs.Abort(gcs.IndexOutOfBounds, "ReplaceAt", "index out of range")
	}
	if s.policy.Destroy != nil {
		s.policy.Destroy(&s.data[i])
	}
	resolveCopy(s.policy)(&s.data[i], v)
}

// SwapElements exchanges the elements at indices i and j via the
// policy's Swap.
func (s *Sequence[T]) SwapElements(i, j int) {
	nilCheck(s, "SwapElements")
	if i < 0 || i >= s.length || j < 0 || j >= s.length {
		gcs.Abort(gcs.IndexOutOfBounds, "SwapElements", "index out of range")
	}
	resolveSwap(s.policy)(&s.data[i], &s.data[j])
}

// Remove erases every element comparing equal to v per the policy's
// Compare.
func (s *Sequence[T]) Remove(v T) {
	nilCheck(s, "Remove")
	cmp := resolveCompare(s.policy)
	for i := 0; i < s.length; {
		if cmp(s.data[i], v) == 0 {
			s.Erase(Cursor[T]{seq: s, idx: i})
			continue
		}
		i++
	}
}

// RemoveIf erases every element for which pred reports true.
func (s *Sequence[T]) RemoveIf(pred func(T) bool) {
	nilCheck(s, "RemoveIf")
	if pred == nil {
		gcs.Abort(gcs.NullArgument, "RemoveIf", "nil predicate")
	}
	for i := 0; i < s.length; {
		if pred(s.data[i]) {
			s.Erase(Cursor[T]{seq: s, idx: i})
			continue
		}
		i++
	}
}

// SwapContainers exchanges the entirety of a and b (storage, length, and
// policy) through a temporary. This is the corrected three-way swap per
// the source's REDESIGN FLAG: the source's swap_containers overwrote the
// destination's storage pointers before saving them, losing the
// original destination's storage; a Go struct assignment through a local
// temporary cannot exhibit that bug.
//
// Unlike the source, this swap is only possible between two Sequence[T]
// of the identical element type T: Go's generics are resolved at compile
// time, so there is no single SwapContainers that could additionally
// swap a Sequence[int] with a Sequence[string] the way an untyped void*
// swap could.
func SwapContainers[T any](a, b *Sequence[T]) {
	if a == nil || b == nil {
		gcs.Abort(gcs.NullArgument, "SwapContainers", "nil sequence")
	}
	*a, *b = *b, *a
}

// Clear destroys (if Destroy is defined) every live element right-to-
// left, zeroes the storage, and resets Len() to 0. Cap() is preserved.
func (s *Sequence[T]) Clear() {
	nilCheck(s, "Clear")
	if s.policy.Destroy != nil {
		for i := s.length - 1; i >= 0; i-- {
			s.policy.Destroy(&s.data[i])
		}
	}
	var zero T
	for i := 0; i < s.length; i++ {
		s.data[i] = zero
	}
	s.data = s.data[:0]
	s.length = 0
}

// Merge appends other's live elements onto the rear of s. If both s and
// other define Copy, elements are deep-copied; otherwise a plain
// assignment is used. other is left empty (Len() == 0) but keeps its
// capacity.
func (s *Sequence[T]) Merge(other *Sequence[T]) {
	nilCheck(s, "Merge")
	nilCheck(other, "Merge")
	delta := other.length
	if delta == 0 {
		return
	}
	oldLen := s.length
	if oldLen+delta > cap(s.data) {
		s.Resize(2 * (cap(s.data) + delta))
	}
	s.data = s.data[:oldLen+delta]

	copyFn := func(dst *T, src T) { *dst = src }
	if s.policy.Copy != nil && other.policy.Copy != nil {
		copyFn = s.policy.Copy
	}
	for i := 0; i < delta; i++ {
		copyFn(&s.data[oldLen+i], other.data[i])
	}
	s.length = oldLen + delta

	var zero T
	for i := 0; i < other.length; i++ {
		other.data[i] = zero
	}
	other.data = other.data[:0]
	other.length = 0
}

// Reverse swap-walks from both ends toward the middle.
func (s *Sequence[T]) Reverse() {
	nilCheck(s, "Reverse")
	swapFn := resolveSwap(s.policy)
	for i, j := 0, s.length-1; i < j; i, j = i+1, j-1 {
		swapFn(&s.data[i], &s.data[j])
	}
}
