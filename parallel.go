// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaps

import (
	"cmp"
	"fmt"
	"runtime"
	"sync/atomic"

	"cloudeng.io/errors"
	"cloudeng.io/sync/errgroup"
)

// MakeParallel is Make using multiple goroutines, for large slices. The
// parent-index range is split into blocks of blockSize indices which are
// claimed deepest-first by up to maxWorkers goroutines; a block is never
// sifted until every parent in its dependent subtrees has been finalized.
// blockSize below 1 is treated as 1. maxWorkers of 0 or less selects
// max(runtime.NumCPU(), 2). All goroutines are joined before MakeParallel
// returns, on every path.
//
// The returned error is nil unless a worker failed, in which case the
// elements of s are an unspecified permutation of the input.
func MakeParallel[T cmp.Ordered](s []T, blockSize, maxWorkers int) error {
	return makeParallel(s, cmp.Less[T], nil, blockSize, maxWorkers)
}

// MakeParallelFunc is MakeParallel with an explicit comparator.
func MakeParallelFunc[T any](s []T, less LessFunc[T], blockSize, maxWorkers int) error {
	return makeParallel(s, less, nil, blockSize, maxWorkers)
}

// MakeParallelTracked is MakeParallelFunc with move notification. The
// observer is invoked from multiple goroutines, concurrently, and must be
// safe for that.
func MakeParallelTracked[T any](s []T, less LessFunc[T], moved MoveFunc[T], blockSize, maxWorkers int) error {
	return makeParallel(s, less, moved, blockSize, maxWorkers)
}

// builder holds the shared state of one parallel construction. The slice is
// shared by all workers but each worker only writes within the subtrees of
// its currently claimed block; remaining and barrier are the only
// concurrently mutated state.
type builder[T any] struct {
	s         []T
	less      LessFunc[T]
	moved     MoveFunc[T]
	blockSize int
	parentEnd int // one past the deepest parent index, len(s)/2
	remaining atomic.Int64
	barrier   *rollingBarrier
}

func makeParallel[T any](s []T, less LessFunc[T], moved MoveFunc[T], blockSize, maxWorkers int) error {
	parentEnd := len(s) / 2
	if parentEnd == 0 {
		return nil
	}
	if blockSize < 1 {
		blockSize = 1
	}
	nblocks := (parentEnd + blockSize - 1) / blockSize
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
		if maxWorkers < 2 {
			maxWorkers = 2
		}
	}
	nworkers := min(nblocks, maxWorkers)

	b := &builder[T]{
		s:         s,
		less:      less,
		moved:     moved,
		blockSize: blockSize,
		parentEnd: parentEnd,
		barrier:   newRollingBarrier(nworkers, int64(parentEnd)),
	}
	b.remaining.Store(int64(nblocks))

	// The calling goroutine claims the deepest block before the others
	// start. It may be partial and is the only block with no deeper
	// dependency, so it is sifted without polling.
	self := nworkers - 1
	front := int(b.remaining.Add(-1)) * blockSize

	var g errgroup.T
	for i := 0; i < self; i++ {
		id := i
		g.Go(func() error {
			return b.worker(id)
		})
	}

	errs := errors.M{}
	errs.Append(b.lead(self, front))
	errs.Append(g.Wait())
	return errs.Err()
}

// lead runs the calling goroutine's share: the pre-claimed deepest block,
// then the common claim loop.
func (b *builder[T]) lead(id, front int) (err error) {
	defer b.recoverWorker(id, &err)
	b.siftBlock(front, b.parentEnd)
	b.barrier.set(id, barrierIdle)
	b.claimLoop(id)
	return nil
}

func (b *builder[T]) worker(id int) (err error) {
	defer b.recoverWorker(id, &err)
	b.claimLoop(id)
	return nil
}

// recoverWorker converts a worker panic (from the comparator or the move
// observer) into an error and idles the worker's barrier slot so the
// remaining workers cannot poll forever.
func (b *builder[T]) recoverWorker(id int, err *error) {
	if r := recover(); r != nil {
		b.barrier.set(id, barrierIdle)
		*err = fmt.Errorf("heaps: construction worker %v: %v", id, r)
	}
}

// claimLoop claims and sifts blocks until none remain. Blocks are numbered
// so that higher numbers lie deeper in the tree; the countdown counter
// hands them out deepest-first, preserving the bottom-up dependency at
// block granularity regardless of scheduling.
func (b *builder[T]) claimLoop(id int) {
	for {
		// Republish the maximal bound before claiming so that the window
		// between claiming a block and publishing its bound is covered.
		b.barrier.set(id, int64(b.parentEnd))
		blk := b.remaining.Add(-1)
		if blk < 0 {
			b.barrier.set(id, barrierIdle)
			return
		}
		front := int(blk) * b.blockSize
		end := min(front+b.blockSize, b.parentEnd)
		b.barrier.set(id, int64(end))

		// Sifting a parent in this block touches only that parent and its
		// descendants, all of which lie at or beyond the block's first
		// child. Wait until no other worker may still sift a parent there.
		firstChild := int64(2*front + 1)
		for !b.barrier.poll(id, firstChild) {
			runtime.Gosched()
		}

		b.siftBlock(front, end)
		b.barrier.set(id, barrierIdle)
	}
}

// siftBlock sifts down every parent in [front, end), deepest first,
// mirroring the order of the sequential sweep within the block.
func (b *builder[T]) siftBlock(front, end int) {
	n := len(b.s)
	if b.moved != nil {
		for p := end - 1; p >= front; p-- {
			siftDownMoved(b.s, n, p, b.s[p], p, b.less, b.moved)
		}
		return
	}
	for p := end - 1; p >= front; p-- {
		siftDown(b.s, n, p, b.s[p], b.less)
	}
}
