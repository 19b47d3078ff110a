// SPDX-License-Identifier: MIT

package seq

import "github.com/galudino/gcs"

// At returns a pointer to the element at index i, bounds-checked.
// Fails with IndexOutOfBounds if i >= Len(). Fast paths exist for i == 0
// and i == Len()-1.
func (s *Sequence[T]) At(i int) *T {
	nilCheck(s, "At")
	if i == 0 {
		return s.Front()
	}
	if i == s.length-1 {
		return s.Back()
	}
	if i < 0 || i >= s.length {
		gcs.Abort(gcs.IndexOutOfBounds, "At", "index out of range")
	}
	return &s.data[i]
}

// AtValue is the read-only variant of At: it returns the element by
// value instead of a mutable pointer.
func (s *Sequence[T]) AtValue(i int) T {
	return *s.At(i)
}

// Front returns a pointer to the first element. Fails with
// IndexOutOfBounds if the Sequence is empty.
func (s *Sequence[T]) Front() *T {
	nilCheck(s, "Front")
	if s.length == 0 {
		gcs.Abort(gcs.IndexOutOfBounds, "Front", "empty sequence")
	}
	return &s.data[0]
}

// FrontValue is the read-only variant of Front.
func (s *Sequence[T]) FrontValue() T {
	return *s.Front()
}

// Back returns a pointer to the last element. Fails with
// IndexOutOfBounds if the Sequence is empty.
func (s *Sequence[T]) Back() *T {
	nilCheck(s, "Back")
	if s.length == 0 {
		gcs.Abort(gcs.IndexOutOfBounds, "Back", "empty sequence")
	}
	return &s.data[s.length-1]
}

// BackValue is the read-only variant of Back.
func (s *Sequence[T]) BackValue() T {
	return *s.Back()
}

// Data returns the live elements as a slice sharing the Sequence's
// backing storage. Mutating through it bypasses the policy's Copy/
// Destroy/Swap; callers that need policy-respecting mutation should use
// the Sequence's own methods instead.
func (s *Sequence[T]) Data() []T {
	nilCheck(s, "Data")
	return s.data[:s.length]
}

// DataValue is the read-only variant of Data: it returns a freshly
// allocated copy of the live elements, safe to mutate without affecting
// the Sequence.
func (s *Sequence[T]) DataValue() []T {
	nilCheck(s, "DataValue")
	out := make([]T, s.length)
	copy(out, s.data[:s.length])
	return out
}

// Policy returns the element-type policy this Sequence was built with.
func (s *Sequence[T]) Policy() gcs.Policy[T] {
	nilCheck(s, "Policy")
	return s.policy
}
