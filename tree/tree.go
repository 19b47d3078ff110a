// SPDX-License-Identifier: MIT

package tree

import "github.com/galudino/gcs"

const (
	red   = false
	black = true
)

// Node is a left-leaning red-black tree node. It stores only child
// pointers, no parent pointer — the source's choice, kept here because it
// avoids ownership cycles entirely (DESIGN NOTES).
type Node[T any] struct {
	Val   T
	Left  *Node[T]
	Right *Node[T]
	Color bool
}

func isRed[T any](n *Node[T]) bool {
	if n == nil {
		return false
	}
	return n.Color == red
}

// Tree is a left-leaning red-black tree over elements of type T, ordered
// by the policy's Compare. The zero value is not directly usable; build
// one with [New] or [CopyOf].
type Tree[T any] struct {
	root   *Node[T]
	policy gcs.Policy[T]
	size   int
	pool   *pool[T]
}

func nilCheck[T any](t *Tree[T], fn string) {
	if t == nil {
		gcs.Abort(gcs.NullArgument, fn, "nil *Tree receiver")
	}
}

func resolveCompare[T any](p gcs.Policy[T]) func(a, b T) int {
	if p.Compare != nil {
		return p.Compare
	}
	return gcs.Void[T]().Compare
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

// New returns an empty Tree using policy for ordering, duplication, and
// release.
func New[T any](policy gcs.Policy[T]) *Tree[T] {
	return &Tree[T]{policy: policy, pool: newPool[T]()}
}

// CopyOf returns a Tree with the same shape as other, every node
// recursively duplicated via other's policy.Copy (or a plain assignment
// if Copy is nil).
func CopyOf[T any](other *Tree[T]) *Tree[T] {
	nilCheck(other, "CopyOf")
	t := New[T](other.policy)
	copyFn := resolveCopy(other.policy)
	t.root = copyNodeRec(other.root, copyFn, t.pool)
	t.size = other.size
	return t
}

func copyNodeRec[T any](n *Node[T], copyFn func(dst *T, src T), pool *pool[T]) *Node[T] {
	if n == nil {
		return nil
	}
	dup := pool.get()
	dup.Color = n.Color
	copyFn(&dup.Val, n.Val)
	dup.Left = copyNodeRec(n.Left, copyFn, pool)
	dup.Right = copyNodeRec(n.Right, copyFn, pool)
	return dup
}

// Len returns the number of elements currently stored. Unlike the
// source's recursive size(n), Len is maintained incrementally (an
// allowed strengthening: nothing in the Non-goals forbids O(1) size).
func (t *Tree[T]) Len() int {
	nilCheck(t, "Len")
	return t.size
}

// Empty reports whether Len() == 0.
func (t *Tree[T]) Empty() bool {
	nilCheck(t, "Empty")
	return t.root == nil
}

// Policy returns the element-type policy this Tree was built with.
func (t *Tree[T]) Policy() gcs.Policy[T] {
	nilCheck(t, "Policy")
	return t.policy
}

// destroyRec releases every node's element via policy.Destroy (if
// defined), post-order, matching the source's recursive destructor.
func destroyRec[T any](n *Node[T], destroy func(*T)) {
	if n == nil {
		return
	}
	destroyRec(n.Left, destroy)
	destroyRec(n.Right, destroy)
	if destroy != nil {
		destroy(&n.Val)
	}
}

// Clear releases every element (via policy.Destroy, if defined) and
// empties the tree.
func (t *Tree[T]) Clear() {
	nilCheck(t, "Clear")
	destroyRec(t.root, t.policy.Destroy)
	t.root = nil
	t.size = 0
}
