// SPDX-License-Identifier: MIT

// Package gcs provides the shared type-policy mechanism for the gcs
// container family.
//
// A [Policy] is a small bundle of optional per-element-type operations
// (copy, destroy, swap, compare, print) that the growable sequence in
// github.com/galudino/gcs/seq and the ordered tree in
// github.com/galudino/gcs/tree consult whenever they need to duplicate,
// release, reorder, or render an element. Most callers never build a
// Policy by hand: [Ordered] covers every comparable primitive type,
// [Void] is the zero-behavior fallback, and [FromCloner]/[FromEqualer]
// adapt a type's own Clone/Equal methods.
//
// gcs itself holds no container state; it is pure data plus the fault
// taxonomy ([Fault]) that the sequence and tree packages raise at their
// boundaries.
package gcs
