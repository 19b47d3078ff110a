// SPDX-License-Identifier: MIT

package seq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/galudino/gcs"
)

func TestPrintEmptyUsesEmptyString(t *testing.T) {
	s := New(gcs.Ordered[int]())
	var b strings.Builder
	err := s.Print(&b, "[", "]", ", ", "(empty)", 0)
	assert.NoError(t, err)
	assert.Equal(t, "[(empty)]", b.String())
}

func TestPrintJoinsWithSeparator(t *testing.T) {
	s := FromSlice([]int{1, 2, 3}, gcs.Ordered[int]())
	var b strings.Builder
	err := s.Print(&b, "[", "]", ", ", "(empty)", 0)
	assert.NoError(t, err)
	assert.Equal(t, "[1, 2, 3]", b.String())
}

func TestStringMatchesDefaultPrint(t *testing.T) {
	s := FromSlice([]int{1, 2}, gcs.Ordered[int]())
	assert.Equal(t, "[1 2]", s.String())
}

func TestPrintDiagnosticIncludesLenCapWidth(t *testing.T) {
	s := FromSlice([]int{1, 2}, gcs.Ordered[int]())
	var b strings.Builder
	err := s.PrintDiagnostic(&b)
	assert.NoError(t, err)
	out := b.String()
	assert.Contains(t, out, "len=2")
	assert.Contains(t, out, "cap=2")
	assert.Contains(t, out, "width=8")
}
