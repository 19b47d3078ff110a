// SPDX-License-Identifier: MIT

package tree

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galudino/gcs"
)

func TestPrintEmptyTree(t *testing.T) {
	tr := New(gcs.Ordered[int]())
	var b strings.Builder
	require.NoError(t, tr.Print(&b))
	assert.Contains(t, b.String(), "size: 0")
	assert.Contains(t, b.String(), "(empty)")
}

func TestPrintIncludesSummaryAndNodes(t *testing.T) {
	tr := buildTestTree()
	var b strings.Builder
	require.NoError(t, tr.Print(&b))
	out := b.String()
	assert.Contains(t, out, "size: 7")
	assert.Contains(t, out, "min: 1")
	assert.Contains(t, out, "max: 9")
	assert.Contains(t, out, "▼")
	assert.Contains(t, out, "(black)")
}

func TestStringWrapsPrint(t *testing.T) {
	tr := buildTestTree()
	assert.Equal(t, tr.String(), func() string {
		var b strings.Builder
		_ = tr.Print(&b)
		return b.String()
	}())
}

func TestPrintDiagnosticOneLine(t *testing.T) {
	tr := buildTestTree()
	var b strings.Builder
	require.NoError(t, tr.PrintDiagnostic(&b))
	want := fmt.Sprintf("tree{size=%d height=%d leaves=%d}\n", tr.Len(), tr.Height(), tr.LeafCount())
	assert.Equal(t, want, b.String())
}
