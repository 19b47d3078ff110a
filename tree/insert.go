// SPDX-License-Identifier: MIT

package tree

import "github.com/galudino/gcs"

func rotateLeft[T any](h *Node[T]) *Node[T] {
	x := h.Right
	h.Right = x.Left
	x.Left = h
	x.Color = h.Color
	h.Color = red
	return x
}

func rotateRight[T any](h *Node[T]) *Node[T] {
	x := h.Left
	h.Left = x.Right
	x.Right = h
	x.Color = h.Color
	h.Color = red
	return x
}

func flipColors[T any](h *Node[T]) {
	h.Color = !h.Color
	h.Left.Color = !h.Left.Color
	h.Right.Color = !h.Right.Color
}

// Insert adds v to the tree via standard BST insertion driven by the
// policy's Compare, with LLRB maintenance applied on the way back up
// every recursive frame: a color-flip pre-step on the way down when both
// children are RED, then (after recursing) a left rotation to fix a
// right-leaning red link, a right rotation to fix two consecutive
// left-leaning red links, and a color flip when both children are RED, so
// no node is left with a red right child. Duplicates (Compare == 0) route right, so
// Insert never rejects a key already present; see InsertUnique for
// reject-on-duplicate semantics.
func (t *Tree[T]) Insert(v T) {
	nilCheck(t, "Insert")
	cmp := resolveCompare(t.policy)
	copyFn := resolveCopy(t.policy)
	t.root = t.insertRec(t.root, v, cmp, copyFn)
	t.root.Color = black
}

func (t *Tree[T]) insertRec(h *Node[T], v T, cmp func(a, b T) int, copyFn func(dst *T, src T)) *Node[T] {
	if h == nil {
		n := t.pool.get()
		copyFn(&n.Val, v)
		n.Color = red
		t.size++
		return n
	}

	if isRed(h.Left) && isRed(h.Right) {
		flipColors(h)
	}

	if cmp(v, h.Val) < 0 {
		h.Left = t.insertRec(h.Left, v, cmp, copyFn)
	} else {
		h.Right = t.insertRec(h.Right, v, cmp, copyFn)
	}

	if isRed(h.Right) && !isRed(h.Left) {
		h = rotateLeft(h)
	}
	if isRed(h.Left) && isRed(h.Left.Left) {
		h = rotateRight(h)
	}
	if isRed(h.Left) && isRed(h.Right) {
		flipColors(h)
	}

	return h
}

// InsertUnique inserts v only if no element currently compares equal to
// it. If a match exists, it raises DuplicateKey (warn and no-op, per the
// source's insert_unique) and returns false; otherwise it inserts and
// returns true.
//
// The source's insert_unique erase path prints a stray "]\n" to standard
// output when erasing a node with no right child — an apparent leftover
// debug statement the spec calls out as an Open Question. This port
// omits it, per the spec's own instruction.
func (t *Tree[T]) InsertUnique(v T) bool {
	nilCheck(t, "InsertUnique")
	if _, ok := t.Find(v); ok {
		gcs.Warn(gcs.DuplicateKey, "InsertUnique", "key already present")
		return false
	}
	t.Insert(v)
	return true
}
