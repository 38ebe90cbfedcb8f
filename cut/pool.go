package cut

import (
	"sync"
	"sync/atomic"
)

// pool is a type-safe wrapper around sync.Pool specialized for *Cut
// instances, mirroring gaissmai-bart's node pool: it recycles a cut's
// backing Leaves slice across invalidation cycles instead of letting the
// garbage collector reclaim it, since per-node cut computation allocates
// and discards many short-lived candidate cuts per pass (spec §3's
// Lifetimes note: "cuts are recycled to a fixed-size pool on
// invalidation").
type pool struct {
	sync.Pool

	totalAllocated atomic.Int64 // total number of *Cut ever allocated
	currentLive    atomic.Int64 // number of cuts currently checked out
}

func newPool() *pool {
	p := &pool{}
	p.New = func() any {
		p.totalAllocated.Add(1)
		return new(Cut)
	}
	return p
}

// Get retrieves a *Cut from the pool, or allocates a new one.
func (p *pool) Get() *Cut {
	if p == nil {
		return new(Cut)
	}
	p.currentLive.Add(1)
	return p.Pool.Get().(*Cut)
}

// Put resets and returns c to the pool for reuse.
func (p *pool) Put(c *Cut) {
	if p == nil {
		return
	}
	p.currentLive.Add(-1)
	c.reset()
	p.Pool.Put(c)
}

// Stats reports the pool's live/total allocation counters, exposed for
// logx-level pass statistics (spec §6's per-pass counters).
func (p *pool) Stats() (live, total int64) {
	if p == nil {
		return 0, 0
	}
	return p.currentLive.Load(), p.totalAllocated.Load()
}
