// SPDX-License-Identifier: MIT

package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/galudino/gcs"
)

func TestAtFrontBack(t *testing.T) {
	s := FromSlice([]int{10, 20, 30}, gcs.Ordered[int]())
	assert.Equal(t, 10, *s.At(0))
	assert.Equal(t, 20, *s.At(1))
	assert.Equal(t, 30, *s.At(2))
	assert.Equal(t, 10, s.FrontValue())
	assert.Equal(t, 30, s.BackValue())
}

func TestAtOutOfBoundsAborts(t *testing.T) {
	s := FromSlice([]int{1}, gcs.Ordered[int]())
	assert.Panics(t, func() { s.At(5) })
}

func TestFrontBackOnEmptyAborts(t *testing.T) {
	s := New(gcs.Ordered[int]())
	assert.Panics(t, func() { s.Front() })
	assert.Panics(t, func() { s.Back() })
}

func TestDataSharesBackingStorage(t *testing.T) {
	s := FromSlice([]int{1, 2, 3}, gcs.Ordered[int]())
	d := s.Data()
	d[0] = 99
	assert.Equal(t, 99, s.AtValue(0))
}

func TestDataValueIsIndependentCopy(t *testing.T) {
	s := FromSlice([]int{1, 2, 3}, gcs.Ordered[int]())
	d := s.DataValue()
	d[0] = 99
	assert.Equal(t, 1, s.AtValue(0))
}
