// SPDX-License-Identifier: MIT

package gcs

import (
	"cmp"
	"fmt"
	"io"
	"unsafe"
)

// DefaultCapacity is the capacity a Sequence is given when constructed
// without an explicit size.
const DefaultCapacity = 16

// MaxPrintBuffer bounds the scratch buffer formatted-output operations may
// build up on the stack before falling back to streaming writes.
const MaxPrintBuffer = 16384

// Policy bundles the per-element-type operations a container needs beyond
// plain Go assignment: Copy, Destroy, Swap, Compare, and Print. Every field
// besides Width is optional; a nil field means "this element type needs no
// special handling for this operation" and the container falls back to a
// shallow Go copy, a no-op, or a raw swap as appropriate.
//
// Policy is an immutable value once built: containers store it by value
// and never mutate it.
type Policy[T any] struct {
	// Width is the element's size in bytes, informational only (printed
	// by Sequence.PrintDiagnostic, and used by Sequence.MaxSize). The
	// constructors in this package fill it in; a hand-built Policy that
	// leaves it zero is printed as width=0, while MaxSize falls back to
	// the element's own size.
	Width int

	// Copy initializes dst from src. If nil, the container copies via a
	// plain Go assignment (*dst = src).
	Copy func(dst *T, src T)

	// Destroy releases any owned sub-resources of elem. Called before a
	// live slot is overwritten or goes out of scope (PopBack, Erase,
	// Clear, Resize shrink). If nil, no release step runs.
	Destroy func(elem *T)

	// Swap exchanges the logical values at a and b, including ownership
	// of any sub-resources. If nil, the container swaps via *a, *b =
	// *b, *a.
	Swap func(a, b *T)

	// Compare is a total-order comparator returning negative/zero/
	// positive. If nil, Void's fallback lexical comparison is used.
	Compare func(a, b T) int

	// Print appends a textual rendering of elem to sink. If nil, Void's
	// fallback "%v" rendering is used.
	Print func(elem T, sink io.Writer)
}

func widthOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Void returns the library's fallback policy: Compare and Print are
// filled in with safe, generic defaults; Copy, Destroy, and Swap stay nil
// (plain assignment, no-op, raw swap). This is the Go analogue of the
// source's void_ptr policy, whose Compare is a byte compare and whose
// Print is an address-hex dump — here there is no portable byte view or
// stable address for an arbitrary T, so Compare/Print fall back to the
// element's formatted representation instead.
func Void[T any]() Policy[T] {
	return Policy[T]{
		Width: widthOf[T](),
		Compare: func(a, b T) int {
			as, bs := fmt.Sprint(a), fmt.Sprint(b)
			switch {
			case as < bs:
				return -1
			case as > bs:
				return 1
			default:
				return 0
			}
		},
		Print: func(elem T, sink io.Writer) {
			fmt.Fprintf(sink, "%v", elem)
		},
	}
}

// Ordered returns a policy for any cmp.Ordered type (every signed/unsigned
// integer width, every float width, string), replacing the source's
// per-width primitive-policy instantiation files with a single generic
// constructor.
func Ordered[T cmp.Ordered]() Policy[T] {
	return Policy[T]{
		Width:   widthOf[T](),
		Compare: cmp.Compare[T],
		Print: func(elem T, sink io.Writer) {
			fmt.Fprint(sink, elem)
		},
	}
}
