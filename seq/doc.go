// SPDX-License-Identifier: MIT

// Package seq implements the contiguous dynamic sequence engine: a
// type-generic growable array ([Sequence]) plus its iteration abstraction
// ([Cursor]).
//
// A Sequence owns a single backing slice split into a live prefix
// (length elements) and reserved, zero-valued tail capacity. Every
// mutating operation that touches element lifetime (copy, destroy,
// swap) consults the [gcs.Policy] the Sequence was built with; a
// Sequence built with the zero Policy falls back to plain Go
// assignment, a no-op release, and a raw value swap.
//
// Sequences are not safe for concurrent use. Any operation that may
// grow or shrink the backing slice (Insert, Erase, Resize, Reserve,
// ShrinkToFit, Clear, PushBack past capacity, ...) invalidates every
// previously obtained [Cursor] into that Sequence.
package seq
