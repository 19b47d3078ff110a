// SPDX-License-Identifier: MIT

package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/galudino/gcs"
)

func TestPoolStatsTracksLiveNodes(t *testing.T) {
	tr := New(gcs.Ordered[int]())
	for _, v := range []int{1, 2, 3} {
		tr.Insert(v)
	}
	live, total := tr.PoolStats()
	assert.Equal(t, int64(3), live)
	assert.GreaterOrEqual(t, total, int64(3))

	tr.EraseMin()
	live, _ = tr.PoolStats()
	assert.Equal(t, int64(2), live)
}
