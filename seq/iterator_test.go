// SPDX-License-Identifier: MIT

package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galudino/gcs"
)

func TestBeginEndCurrent(t *testing.T) {
	s := FromSlice([]int{1, 2, 3}, gcs.Ordered[int]())
	b := Begin(s)
	require.Equal(t, 0, b.Index())
	assert.Equal(t, 1, *Current(b))

	e := End(s)
	assert.Equal(t, 3, e.Index())
}

func TestNextPrevWalkSequence(t *testing.T) {
	s := FromSlice([]int{10, 20, 30}, gcs.Ordered[int]())
	c := Begin(s)
	c = Next(c)
	assert.Equal(t, 20, *Current(c))
	c = Next(c)
	assert.Equal(t, 30, *Current(c))
	c = Prev(c)
	assert.Equal(t, 20, *Current(c))
}

func TestNextNPastEndAborts(t *testing.T) {
	s := FromSlice([]int{1, 2}, gcs.Ordered[int]())
	assert.Panics(t, func() { NextN(End(s), 1) })
}

func TestPrevNBeforeBeginAborts(t *testing.T) {
	s := FromSlice([]int{1, 2}, gcs.Ordered[int]())
	assert.Panics(t, func() { PrevN(Begin(s), 1) })
}

func TestHasNextHasPrev(t *testing.T) {
	s := FromSlice([]int{1, 2}, gcs.Ordered[int]())
	b := Begin(s)
	assert.True(t, HasNext(b))
	assert.False(t, HasPrev(b))
	e := End(s)
	assert.False(t, HasNext(e))
	assert.True(t, HasPrev(e))
}

func TestDistance(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4}, gcs.Ordered[int]())
	b, e := Begin(s), End(s)
	assert.Equal(t, 4, Distance(b, e))
}

func TestDistanceOneZeroCursorReturnsAbsoluteIndex(t *testing.T) {
	s := FromSlice([]int{1, 2, 3}, gcs.Ordered[int]())
	c := Begin(s)
	Advance(&c, 2)
	assert.Equal(t, 2, Distance(Cursor[int]{}, c))
	assert.Equal(t, 2, Distance(c, Cursor[int]{}))
}

func TestDistanceBothZeroAborts(t *testing.T) {
	assert.Panics(t, func() { Distance(Cursor[int]{}, Cursor[int]{}) })
}

func TestInconsistentIteratorPairAborts(t *testing.T) {
	a := FromSlice([]int{1, 2}, gcs.Ordered[int]())
	b := FromSlice([]int{3, 4}, gcs.Ordered[int]())
	assert.Panics(t, func() { Distance(Begin(a), Begin(b)) })
}

func TestAllRangeOverFunc(t *testing.T) {
	s := FromSlice([]int{1, 2, 3}, gcs.Ordered[int]())
	var got []int
	for i, v := range s.All() {
		got = append(got, i*100+v)
	}
	assert.Equal(t, []int{1, 102, 203}, got)
}
