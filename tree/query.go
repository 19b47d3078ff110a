// SPDX-License-Identifier: MIT

package tree

// Find returns the element comparing equal to key and true, or the zero
// value and false if no such element exists. It is a standard iterative
// BST search driven by the policy's Compare.
func (t *Tree[T]) Find(key T) (T, bool) {
	nilCheck(t, "Find")
	cmp := resolveCompare(t.policy)
	n := t.root
	for n != nil {
		switch c := cmp(key, n.Val); {
		case c < 0:
			n = n.Left
		case c > 0:
			n = n.Right
		default:
			return n.Val, true
		}
	}
	var zero T
	return zero, false
}

// Min returns the smallest element and true, or the zero value and
// false if the tree is empty.
func (t *Tree[T]) Min() (T, bool) {
	nilCheck(t, "Min")
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.Left != nil {
		n = n.Left
	}
	return n.Val, true
}

// Max returns the largest element and true, or the zero value and false
// if the tree is empty.
func (t *Tree[T]) Max() (T, bool) {
	nilCheck(t, "Max")
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.Right != nil {
		n = n.Right
	}
	return n.Val, true
}

// Predecessor returns the in-order predecessor of the element matching
// key, and true. When the matching node has a left subtree, that is its
// maximum; otherwise the predecessor is the closest ancestor from which
// the descent to key turned right, since there are no parent links to
// walk back up through. Calling Predecessor with a key not present in
// the tree is a defect (as in the source): the result is the zero value
// and false, but the caller is responsible for having verified existence
// first via Find.
func (t *Tree[T]) Predecessor(key T) (T, bool) {
	nilCheck(t, "Predecessor")
	cmp := resolveCompare(t.policy)
	n := t.root
	var lastRightTurn *Node[T]
	var lastRightTurnSet bool
	for n != nil {
		if c := cmp(key, n.Val); c == 0 {
			break
		} else if c < 0 {
			n = n.Left
		} else {
			lastRightTurn = n
			lastRightTurnSet = true
			n = n.Right
		}
	}
	if n == nil {
		var zero T
		return zero, false
	}
	if n.Left != nil {
		m := n.Left
		for m.Right != nil {
			m = m.Right
		}
		return m.Val, true
	}
	if lastRightTurnSet {
		return lastRightTurn.Val, true
	}
	var zero T
	return zero, false
}

// Successor returns the in-order successor of the element matching key,
// and true. When the matching node has a right subtree, that subtree's
// minimum is its successor; otherwise the successor is the closest
// ancestor from which the descent to key turned left, since there are no
// parent links to walk back up through. As with Predecessor, calling it
// on a missing key is a defect the caller must avoid.
func (t *Tree[T]) Successor(key T) (T, bool) {
	nilCheck(t, "Successor")
	cmp := resolveCompare(t.policy)
	n := t.root
	var lastLeftTurn *Node[T]
	var lastLeftTurnSet bool
	for n != nil {
		if c := cmp(key, n.Val); c == 0 {
			break
		} else if c < 0 {
			lastLeftTurn = n
			lastLeftTurnSet = true
			n = n.Left
		} else {
			n = n.Right
		}
	}
	if n == nil {
		var zero T
		return zero, false
	}
	if n.Right != nil {
		m := n.Right
		for m.Left != nil {
			m = m.Left
		}
		return m.Val, true
	}
	if lastLeftTurnSet {
		return lastLeftTurn.Val, true
	}
	var zero T
	return zero, false
}
