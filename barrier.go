// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaps

import "sync/atomic"

// barrierIdle marks a slot whose worker holds no block. Published bounds
// are exclusive upper bounds on parent indices, hence always positive.
const barrierIdle = 0

// rollingBarrier lets a set of cooperating workers publish how deep into
// the parent-index range each may still be sifting, so that a worker can
// wait for just the region it depends on rather than for a global step.
// Each worker owns one slot holding an exclusive upper bound on the parent
// indices it may still sift, or barrierIdle. Slots are independent atomics;
// no worker ever blocks another by publishing or polling.
type rollingBarrier struct {
	slots []atomic.Int64
}

// newRollingBarrier returns a barrier for n workers with every slot set to
// bound. Starting from the maximal bound rather than idle ensures a worker
// that has yet to publish its first claim is never mistaken for a finished
// one.
func newRollingBarrier(n int, bound int64) *rollingBarrier {
	b := &rollingBarrier{slots: make([]atomic.Int64, n)}
	for i := range b.slots {
		b.slots[i].Store(bound)
	}
	return b
}

func (b *rollingBarrier) set(slot int, bound int64) {
	b.slots[slot].Store(bound)
}

// poll reports whether no worker other than slot may still sift a parent
// index at or beyond bound. While a worker's slot value is above bound the
// region at and beyond bound cannot be assumed finalized.
func (b *rollingBarrier) poll(slot int, bound int64) bool {
	for i := range b.slots {
		if i == slot {
			continue
		}
		if b.slots[i].Load() > bound {
			return false
		}
	}
	return true
}
