// SPDX-License-Identifier: MIT

// Package tree implements the ordered tree engine: a left-leaning
// red-black tree ([Tree]) offering ordered insertion, lookup, min/max/
// successor/predecessor, bounded-order erasure, and four traversal
// orders each exposed as a recursive callback, an iterative callback,
// and a buffer-materializing form. [Tree.BeginTraversal] wraps the
// materializing form in a gcs/seq.Cursor.
//
// Like gcs/seq.Sequence, a Tree is parametrised by a gcs.Policy[T] and
// is not safe for concurrent use.
package tree
