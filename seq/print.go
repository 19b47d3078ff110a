// SPDX-License-Identifier: MIT

package seq

import (
	"fmt"
	"io"
	"strings"

	"github.com/galudino/gcs"
)

// Print writes before, then every element rendered by the policy's
// Print, separated by sep, breaking a line every lineBreakInterval
// elements (0 means never), then after. If the Sequence is empty, it
// writes empty instead of the element list.
func (s *Sequence[T]) Print(w io.Writer, before, after, sep, empty string, lineBreakInterval int) error {
	nilCheck(s, "Print")
	if w == nil {
		gcs.Abort(gcs.NullArgument, "Print", "nil sink")
	}

	if _, err := io.WriteString(w, before); err != nil {
		return err
	}

	if s.length == 0 {
		if _, err := io.WriteString(w, empty); err != nil {
			return err
		}
	} else {
		printFn := s.policy.Print
		if printFn == nil {
			printFn = gcs.Void[T]().Print
		}
		for i := 0; i < s.length; i++ {
			printFn(s.data[i], w)
			if i != s.length-1 {
				if _, err := io.WriteString(w, sep); err != nil {
					return err
				}
			}
			if lineBreakInterval > 0 && (i+1)%lineBreakInterval == 0 && i != s.length-1 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
		}
	}

	_, err := io.WriteString(w, after)
	return err
}

// PrintDiagnostic writes a header/footer summarizing Len(), Cap(), and
// the policy's element Width around the same element listing Print
// produces.
func (s *Sequence[T]) PrintDiagnostic(w io.Writer) error {
	nilCheck(s, "PrintDiagnostic")
	if w == nil {
		gcs.Abort(gcs.NullArgument, "PrintDiagnostic", "nil sink")
	}

	width := s.policy.Width
	if _, err := fmt.Fprintf(w, "sequence: len=%d cap=%d width=%d\n[", s.length, cap(s.data), width); err != nil {
		return err
	}
	if err := s.Print(w, "", "", ", ", "(empty)", 0); err != nil {
		return err
	}
	_, err := fmt.Fprint(w, "]\n")
	return err
}

// String renders the Sequence with default delimiters, matching the
// teacher's String() convenience wrapper around its Fprint (stringify.go)
// family. It panics if the underlying Print ever returns an error, which
// cannot happen when writing to a strings.Builder.
func (s *Sequence[T]) String() string {
	var b strings.Builder
	if err := s.Print(&b, "[", "]", " ", "[]", 0); err != nil {
		panic(err)
	}
	return b.String()
}
