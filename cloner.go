// SPDX-License-Identifier: MIT

package gcs

// Cloner is implemented by element types that know how to deep-copy
// themselves. [FromCloner] builds a [Policy] whose Copy operation calls
// Clone, for resource-owning element types that would otherwise only get
// a shallow Go assignment.
type Cloner[T any] interface {
	Clone() T
}

// FromCloner builds a Policy for a type implementing [Cloner]. Destroy is
// left nil: Go element types release their own sub-resources through
// finalizers or explicit Close calls, not through a policy callback, so
// there is nothing generic to wire here unless the caller supplies one
// via Policy.Destroy directly.
func FromCloner[T Cloner[T]]() Policy[T] {
	return Policy[T]{
		Width: widthOf[T](),
		Copy: func(dst *T, src T) {
			*dst = src.Clone()
		},
	}
}
