// SPDX-License-Identifier: MIT

package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galudino/gcs"
)

func TestNewHasDefaultCapacity(t *testing.T) {
	s := New(gcs.Ordered[int]())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, gcs.DefaultCapacity, s.Cap())
}

func TestReservedCoercesZeroToOne(t *testing.T) {
	s := Reserved[int](0, gcs.Ordered[int]())
	assert.Equal(t, 1, s.Cap())
	assert.Equal(t, 0, s.Len())
}

func TestFill(t *testing.T) {
	s := Fill(5, 9, gcs.Ordered[int]())
	require.Equal(t, 5, s.Len())
	for _, v := range s.Data() {
		assert.Equal(t, 9, v)
	}
}

func TestFillRef(t *testing.T) {
	v := 3
	s := FillRef(4, &v, gcs.Ordered[int]())
	assert.Equal(t, []int{3, 3, 3, 3}, s.Data())
}

func TestCopyOfIsIndependent(t *testing.T) {
	src := FromSlice([]int{1, 2, 3}, gcs.Ordered[int]())
	dup := CopyOf(src)
	dup.PushBack(4)
	assert.Equal(t, []int{1, 2, 3}, src.Data())
	assert.Equal(t, []int{1, 2, 3, 4}, dup.Data())
}

func TestMoveFromResetsSource(t *testing.T) {
	src := FromSlice([]int{1, 2, 3}, gcs.Ordered[int]())
	dst := MoveFrom(src)
	assert.Equal(t, []int{1, 2, 3}, dst.Data())
	assert.Equal(t, 0, src.Len())
	assert.Equal(t, 1, src.Cap())
}

func TestFromSliceCopiesIndependently(t *testing.T) {
	base := []int{1, 2, 3}
	s := FromSlice(base, gcs.Ordered[int]())
	base[0] = 99
	assert.Equal(t, 1, s.Data()[0])
}

func TestWrapSliceAdoptsBacking(t *testing.T) {
	base := make([]int, 3, 8)
	base[0], base[1], base[2] = 1, 2, 3
	s := WrapSlice(base, 3, gcs.Ordered[int]())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 8, s.Cap())
}

func TestFromRangeCopiesHalfOpenSlice(t *testing.T) {
	src := FromSlice([]int{1, 2, 3, 4, 5}, gcs.Ordered[int]())
	first := NextN(Begin(src), 1)
	last := NextN(Begin(src), 4)
	s := FromRange(first, last, gcs.Ordered[int]())
	assert.Equal(t, []int{2, 3, 4}, s.Data())

	src.ReplaceAt(1, 99)
	assert.Equal(t, 2, s.Data()[0], "FromRange must copy, not share storage")
}

func TestFromRangeEmptyWhenFirstEqualsLast(t *testing.T) {
	src := FromSlice([]int{1, 2, 3}, gcs.Ordered[int]())
	c := NextN(Begin(src), 1)
	s := FromRange(c, c, gcs.Ordered[int]())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 1, s.Cap())
}
