// SPDX-License-Identifier: MIT

package tree

import (
	"fmt"
	"io"
	"strings"
)

// String returns Print's output, or a one-line error message if Print
// itself fails, just a wrapper for [Tree.Print].
func (t *Tree[T]) String() string {
	nilCheck(t, "String")
	w := new(strings.Builder)
	if err := t.Print(w); err != nil {
		return fmt.Sprintf("<tree: %v>", err)
	}
	return w.String()
}

// Print writes a summary line (size, height, leaf count, min, max) followed
// by a hierarchical diagram of the tree to w, each node annotated with its
// color.
//
//	size: 3  height: 1  leaves: 2  min: 1  max: 3
//	▼
//	2 (black)
//	├─ 1 (black)
//	└─ 3 (black)
func (t *Tree[T]) Print(w io.Writer) error {
	nilCheck(t, "Print")

	lo, hasLo := t.Min()
	hi, hasHi := t.Max()
	minStr, maxStr := "-", "-"
	if hasLo {
		minStr = fmt.Sprint(lo)
	}
	if hasHi {
		maxStr = fmt.Sprint(hi)
	}

	if _, err := fmt.Fprintf(
		w, "size: %d  height: %d  leaves: %d  min: %s  max: %s\n",
		t.size, t.Height(), t.LeafCount(), minStr, maxStr,
	); err != nil {
		return err
	}

	if t.root == nil {
		_, err := fmt.Fprint(w, "▼ (empty)\n")
		return err
	}

	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}
	return printRootRec(w, t.root, "", t.policy.Print)
}

func nodeLabel[T any](n *Node[T], print func(elem T, sink io.Writer), w io.Writer) error {
	color := "red"
	if n.Color == black {
		color = "black"
	}
	if print != nil {
		print(n.Val, w)
		_, err := fmt.Fprintf(w, " (%s)\n", color)
		return err
	}
	_, err := fmt.Fprintf(w, "%v (%s)\n", n.Val, color)
	return err
}

// printRootRec renders n (with no leading glyph, since it is either the
// tree's root or has already had its glyph written by its caller) and
// recurses into its children, using "├─ "/"└─ " for a child with a
// following sibling vs. the last child, and "│  "/"   " for the padding
// carried into their respective subtrees.
func printRootRec[T any](w io.Writer, n *Node[T], pad string, print func(elem T, sink io.Writer)) error {
	if err := nodeLabel(n, print, w); err != nil {
		return err
	}

	children := make([]*Node[T], 0, 2)
	if n.Left != nil {
		children = append(children, n.Left)
	}
	if n.Right != nil {
		children = append(children, n.Right)
	}

	glyph, spacer := "├─ ", "│  "
	for i, c := range children {
		if i == len(children)-1 {
			glyph, spacer = "└─ ", "   "
		}
		if _, err := fmt.Fprint(w, pad+glyph); err != nil {
			return err
		}
		if err := printRootRec(w, c, pad+spacer, print); err != nil {
			return err
		}
	}
	return nil
}

// PrintDiagnostic writes a single-line diagnostic dump (no tree body),
// matching the source's lighter-weight summary used for quick sanity
// checks.
func (t *Tree[T]) PrintDiagnostic(w io.Writer) error {
	nilCheck(t, "PrintDiagnostic")
	_, err := fmt.Fprintf(w, "tree{size=%d height=%d leaves=%d}\n", t.size, t.Height(), t.LeafCount())
	return err
}
