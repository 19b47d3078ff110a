// SPDX-License-Identifier: MIT

package tree

import (
	"sync"
	"sync/atomic"
)

// pool recycles the Node allocations that erase() retires, so a
// subsequent Insert can reuse storage rather than hit the allocator on
// every call. It tracks two counters on top of sync.Pool, since the
// pool itself forgets an item the instant it's handed back out.
type pool[T any] struct {
	sync.Pool

	totalAllocated atomic.Int64 // every node this pool has ever minted
	currentLive    atomic.Int64 // nodes currently checked out, not sitting in the pool
}

// newPool builds an empty pool, wiring its New func to count each
// allocation it backstops.
func newPool[T any]() *pool[T] {
	p := &pool[T]{}
	p.New = func() any {
		p.totalAllocated.Add(1)
		return new(Node[T])
	}
	return p
}

// get checks out a node, pulling from the pool's free list first and
// falling back to a fresh allocation. A nil receiver (pooling disabled)
// just allocates, untracked.
func (p *pool[T]) get() *Node[T] {
	if p == nil {
		return new(Node[T])
	}
	p.currentLive.Add(1)
	return p.Pool.Get().(*Node[T])
}

// put checks n back in. Its fields are zeroed first so a future get()
// never hands back a node still wired to its old children or carrying a
// stale element. A nil receiver drops n on the floor.
func (p *pool[T]) put(n *Node[T]) {
	if p == nil {
		return
	}
	p.currentLive.Add(-1)

	var zero Node[T]
	*n = zero
	p.Pool.Put(n)
}

// stats reports how many nodes are currently checked out and how many
// this pool has allocated in its lifetime.
func (p *pool[T]) stats() (live, total int64) {
	if p == nil {
		return 0, 0
	}
	return p.currentLive.Load(), p.totalAllocated.Load()
}

// PoolStats exposes node-pool allocation/reuse statistics for debugging
// and performance tuning, grounded in the teacher's own pool
// instrumentation.
func (t *Tree[T]) PoolStats() (live, total int64) {
	nilCheck(t, "PoolStats")
	return t.pool.stats()
}
