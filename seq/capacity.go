// SPDX-License-Identifier: MIT

package seq

import (
	"math"
	"unsafe"

	"github.com/galudino/gcs"
)

// Len returns the number of live elements.
func (s *Sequence[T]) Len() int {
	nilCheck(s, "Len")
	return s.length
}

// Cap returns the reserved capacity.
func (s *Sequence[T]) Cap() int {
	nilCheck(s, "Cap")
	return cap(s.data)
}

// Empty reports whether Len() == 0.
func (s *Sequence[T]) Empty() bool {
	nilCheck(s, "Empty")
	return s.length == 0
}

// MaxSize returns the theoretical maximum length this Sequence could ever
// reach, derived from the host's int width and the element width. It
// quantifies a limit, not a reservation.
func (s *Sequence[T]) MaxSize() int {
	nilCheck(s, "MaxSize")
	width := s.policy.Width
	if width == 0 {
		width = int(unsafe.Sizeof(*new(T)))
	}
	if width == 0 {
		return math.MaxInt
	}
	return math.MaxInt / width
}

// Resize grows or shrinks capacity to exactly n. If n < Len() and the
// policy defines Destroy, the trailing Len()-n elements are destroyed
// back-to-front before the backing storage is reallocated. Len() becomes
// min(old length, n); Cap() becomes n. n == 0 warns (InvalidSize) and
// returns without modifying the Sequence; n == Cap() is a no-op.
func (s *Sequence[T]) Resize(n int) {
	nilCheck(s, "Resize")
	if n == 0 {
		gcs.Warn(gcs.InvalidSize, "Resize", "n == 0")
		return
	}
	if n < 0 {
		gcs.Abort(gcs.InvalidSize, "Resize", "negative n")
	}
	if n == cap(s.data) {
		return
	}

	if n < s.length && s.policy.Destroy != nil {
		for i := s.length - 1; i >= n; i-- {
			s.policy.Destroy(&s.data[i])
		}
	}

	newLen := min(s.length, n)
	newData := make([]T, newLen, n)
	copy(newData, s.data[:newLen])
	s.data = newData
	s.length = newLen
}

// ResizeFill resizes to n and fills newly-exposed or all slots with
// copies of v. If n > Cap(), it resizes up and fills [old length, n)
// with copies of v (the live prefix is preserved). Otherwise every live
// element is destroyed (if Destroy is defined), storage is reallocated at
// n, and all n slots are filled with copies of v.
func (s *Sequence[T]) ResizeFill(n int, v T) {
	nilCheck(s, "ResizeFill")
	if n < 0 {
		gcs.Abort(gcs.InvalidSize, "ResizeFill", "negative n")
	}

	copyFn := resolveCopy(s.policy)

	if n > cap(s.data) {
		oldLen := s.length
		newData := make([]T, n, n)
		copy(newData, s.data[:oldLen])
		s.data = newData
		for i := oldLen; i < n; i++ {
			copyFn(&s.data[i], v)
		}
		s.length = n
		return
	}

	if s.policy.Destroy != nil {
		for i := s.length - 1; i >= 0; i-- {
			s.policy.Destroy(&s.data[i])
		}
	}
	s.data = make([]T, n, n)
	for i := 0; i < n; i++ {
		copyFn(&s.data[i], v)
	}
	s.length = n
}

// Reserve grows capacity to n, failing with InvalidSize (warn, no-op) if
// n <= Cap().
func (s *Sequence[T]) Reserve(n int) {
	nilCheck(s, "Reserve")
	if n <= cap(s.data) {
		gcs.Warn(gcs.InvalidSize, "Reserve", "n <= current capacity")
		return
	}
	s.Resize(n)
}

// ShrinkToFit reallocates capacity down to Len(), when non-empty and
// there is reserved slack to drop.
func (s *Sequence[T]) ShrinkToFit() {
	nilCheck(s, "ShrinkToFit")
	if s.length == 0 || s.length == cap(s.data) {
		return
	}
	s.Resize(s.length)
}
