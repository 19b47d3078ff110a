// SPDX-License-Identifier: MIT

package gcs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedCompare(t *testing.T) {
	p := Ordered[int]()
	assert.Negative(t, p.Compare(1, 2))
	assert.Zero(t, p.Compare(2, 2))
	assert.Positive(t, p.Compare(3, 2))
	assert.Equal(t, 8, p.Width)
}

func TestOrderedPrint(t *testing.T) {
	p := Ordered[int]()
	var b strings.Builder
	p.Print(42, &b)
	assert.Equal(t, "42", b.String())
}

func TestVoidCompareFallsBackToFormattedRepr(t *testing.T) {
	type point struct{ X, Y int }
	p := Void[point]()
	require.NotNil(t, p.Compare)
	a, b := point{1, 1}, point{1, 2}
	assert.NotZero(t, p.Compare(a, b))
	assert.Zero(t, p.Compare(a, a))
}

func TestVoidPrint(t *testing.T) {
	p := Void[int]()
	var b strings.Builder
	p.Print(7, &b)
	assert.Equal(t, "7", b.String())
}

type cloneable struct{ tag string }

func (c cloneable) Clone() cloneable { return cloneable{tag: c.tag + "-clone"} }

func TestFromCloner(t *testing.T) {
	p := FromCloner[cloneable]()
	var dst cloneable
	p.Copy(&dst, cloneable{tag: "x"})
	assert.Equal(t, "x-clone", dst.tag)
	assert.Nil(t, p.Destroy)
}

type equaler struct{ n int }

func (e equaler) Equal(other equaler) bool { return e.n == other.n }

func TestFromEqualer(t *testing.T) {
	p := FromEqualer(Void[equaler]())
	assert.Zero(t, p.Compare(equaler{1}, equaler{1}))
	assert.NotZero(t, p.Compare(equaler{1}, equaler{2}))
}
