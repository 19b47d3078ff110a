// SPDX-License-Identifier: MIT

package seq

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/galudino/gcs"
)

func TestSearchFindsFirstMatch(t *testing.T) {
	s := FromSlice([]int{5, 3, 3, 8}, gcs.Ordered[int]())
	assert.Equal(t, 1, s.Search(3))
	assert.Equal(t, -1, s.Search(99))
}

func TestSortAgainstGoldSliceStable(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	vals := make([]int, 500)
	for i := range vals {
		vals[i] = rng.Intn(50)
	}
	gold := make([]int, len(vals))
	copy(gold, vals)
	sort.SliceStable(gold, func(i, j int) bool { return gold[i] < gold[j] })

	s := FromSlice(vals, gcs.Ordered[int]())
	s.Sort()
	assert.Equal(t, gold, s.Data())
}
