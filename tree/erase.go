// SPDX-License-Identifier: MIT

package tree

// moveRedLeft flips colors, then, if h.Right.Left is RED, right-rotates
// h.Right, left-rotates h, and flips again. It restores the invariant
// "the current node or one of its children is RED" before a descent into
// h.Left during erasure.
func moveRedLeft[T any](h *Node[T]) *Node[T] {
	flipColors(h)
	if isRed(h.Right.Left) {
		h.Right = rotateRight(h.Right)
		h = rotateLeft(h)
		flipColors(h)
	}
	return h
}

// moveRedRight is moveRedLeft's mirror, for a descent into h.Right.
func moveRedRight[T any](h *Node[T]) *Node[T] {
	flipColors(h)
	if isRed(h.Left.Left) {
		h = rotateRight(h)
		flipColors(h)
	}
	return h
}

// fixup restores LLRB color and rotation invariants at a single node on
// the way back up a recursive erase call: left-rotate a right-leaning
// red, right-rotate two consecutive left-leaning reds, then flip colors
// if both children ended up RED.
func fixup[T any](h *Node[T]) *Node[T] {
	if isRed(h.Right) {
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

func (t *Tree[T]) free(h *Node[T]) {
	if t.policy.Destroy != nil {
		t.policy.Destroy(&h.Val)
	}
	t.pool.put(h)
	t.size--
}

// eraseMinRec removes the minimum node of the subtree rooted at h,
// applying move_red_left on the way down and fixup on the way back up.
func (t *Tree[T]) eraseMinRec(h *Node[T]) *Node[T] {
	if h.Left == nil {
		t.free(h)
		return nil
	}
	if !isRed(h.Left) && !isRed(h.Left.Left) {
		h = moveRedLeft(h)
	}
	h.Left = t.eraseMinRec(h.Left)
	return fixup(h)
}

// EraseMin removes the smallest element. No-op on an empty tree.
func (t *Tree[T]) EraseMin() {
	nilCheck(t, "EraseMin")
	if t.root == nil {
		return
	}
	if !isRed(t.root.Left) && !isRed(t.root.Right) {
		t.root.Color = red
	}
	t.root = t.eraseMinRec(t.root)
	if t.root != nil {
		t.root.Color = black
	}
}

// eraseMaxRec removes the maximum node of the subtree rooted at h.
func (t *Tree[T]) eraseMaxRec(h *Node[T]) *Node[T] {
	if isRed(h.Left) {
		h = rotateRight(h)
	}
	if h.Right == nil {
		t.free(h)
		return nil
	}
	if !isRed(h.Right) && !isRed(h.Right.Left) {
		h = moveRedRight(h)
	}
	h.Right = t.eraseMaxRec(h.Right)
	return fixup(h)
}

// EraseMax removes the largest element. No-op on an empty tree.
func (t *Tree[T]) EraseMax() {
	nilCheck(t, "EraseMax")
	if t.root == nil {
		return
	}
	if !isRed(t.root.Left) && !isRed(t.root.Right) {
		t.root.Color = red
	}
	t.root = t.eraseMaxRec(t.root)
	if t.root != nil {
		t.root.Color = black
	}
}

// eraseRec removes the node matching key from the subtree rooted at h,
// assuming (as a precondition established by Erase) that key is present
// somewhere in that subtree.
func (t *Tree[T]) eraseRec(h *Node[T], key T, cmp func(a, b T) int, swapFn func(a, b *T)) *Node[T] {
	if cmp(key, h.Val) < 0 {
		if !isRed(h.Left) && !isRed(h.Left.Left) {
			h = moveRedLeft(h)
		}
		h.Left = t.eraseRec(h.Left, key, cmp, swapFn)
	} else {
		if isRed(h.Left) {
			h = rotateRight(h)
		}
		if cmp(key, h.Val) == 0 && h.Right == nil {
			t.free(h)
			return nil
		}
		if !isRed(h.Right) && !isRed(h.Right.Left) {
			h = moveRedRight(h)
		}
		if cmp(key, h.Val) == 0 {
			// Swap this node's value with its in-order successor
			// (the minimum of the right subtree), then erase that
			// minimum node from the right subtree — which now holds
			// the value being removed.
			m := h.Right
			for m.Left != nil {
				m = m.Left
			}
			swapFn(&h.Val, &m.Val)
			h.Right = t.eraseMinRec(h.Right)
		} else {
			h.Right = t.eraseRec(h.Right, key, cmp, swapFn)
		}
	}
	return fixup(h)
}

// Erase removes the element matching key, reporting whether a match was
// found. A missing key is a no-op returning false; this is a Go-specific
// addition (the source only documents the found case) that avoids
// running the move-red-left/move-red-right descent over a key known in
// advance not to exist.
func (t *Tree[T]) Erase(key T) bool {
	nilCheck(t, "Erase")
	if t.root == nil {
		return false
	}
	if _, ok := t.Find(key); !ok {
		return false
	}

	cmp := resolveCompare(t.policy)
	swapFn := resolveSwap(t.policy)

	if !isRed(t.root.Left) && !isRed(t.root.Right) {
		t.root.Color = red
	}
	t.root = t.eraseRec(t.root, key, cmp, swapFn)
	if t.root != nil {
		t.root.Color = black
	}
	return true
}
