// SPDX-License-Identifier: MIT

package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/galudino/gcs"
)

func TestResizeShrinkDestroysTrailing(t *testing.T) {
	var destroyed []int
	policy := gcs.Ordered[int]()
	policy.Destroy = func(v *int) { destroyed = append(destroyed, *v) }
	s := FromSlice([]int{1, 2, 3, 4}, policy)
	s.Resize(2)
	assert.Equal(t, []int{1, 2}, s.Data())
	assert.ElementsMatch(t, []int{3, 4}, destroyed)
}

func TestResizeZeroWarnsAndNoops(t *testing.T) {
	s := FromSlice([]int{1, 2}, gcs.Ordered[int]())
	oldCap := s.Cap()
	s.Resize(0)
	assert.Equal(t, oldCap, s.Cap())
	assert.Equal(t, 2, s.Len())
}

func TestResizeGrowPreservesElements(t *testing.T) {
	s := FromSlice([]int{1, 2}, gcs.Ordered[int]())
	s.Resize(10)
	assert.Equal(t, 10, s.Cap())
	assert.Equal(t, []int{1, 2}, s.Data())
}

func TestResizeFillGrows(t *testing.T) {
	s := FromSlice([]int{1, 2}, gcs.Ordered[int]())
	s.ResizeFill(5, 7)
	assert.Equal(t, []int{1, 2, 7, 7, 7}, s.Data())
}

func TestResizeFillShrinksAndRefills(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4}, gcs.Ordered[int]())
	s.ResizeFill(2, 9)
	assert.Equal(t, []int{9, 9}, s.Data())
}

func TestReserveRejectsSmallerOrEqual(t *testing.T) {
	s := Reserved[int](8, gcs.Ordered[int]())
	s.Reserve(8)
	assert.Equal(t, 8, s.Cap())
	s.Reserve(16)
	assert.Equal(t, 16, s.Cap())
}

func TestShrinkToFit(t *testing.T) {
	s := Reserved[int](16, gcs.Ordered[int]())
	s.PushBack(1)
	s.PushBack(2)
	s.ShrinkToFit()
	assert.Equal(t, 2, s.Cap())
}

func TestMaxSize(t *testing.T) {
	s := New(gcs.Ordered[int]())
	assert.Positive(t, s.MaxSize())
}
