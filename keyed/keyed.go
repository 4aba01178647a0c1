// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package keyed provides a priority queue whose entries are addressable by
// a unique key, so that priorities can be raised or lowered in place and
// entries removed without first popping everything above them. The key to
// index mapping is maintained entirely from the move notifications emitted
// by the cloudeng.io/heaps Tracked operations.
package keyed

import (
	"sync"

	"cloudeng.io/heaps"
)

type entry[K comparable, P any] struct {
	key K
	pri P
}

// Queue implements a keyed priority queue. The entry whose priority orders
// last under the queue's comparator is popped first; supply an inverted
// comparator for a min-queue. Queue is safe for concurrent use.
type Queue[K comparable, P any] struct {
	mu      sync.Mutex
	entries []entry[K, P]
	index   map[K]int
	less    heaps.LessFunc[entry[K, P]]
	moved   heaps.MoveFunc[entry[K, P]]
}

// NewQueue returns a new queue ordered by less over priorities, with
// less(a, b) true when a has lower priority than b.
func NewQueue[K comparable, P any](less heaps.LessFunc[P]) *Queue[K, P] {
	q := &Queue[K, P]{
		index: map[K]int{},
		less: func(a, b entry[K, P]) bool {
			return less(a.pri, b.pri)
		},
	}
	q.moved = func(e entry[K, P], _, to int) {
		q.index[e.key] = to
	}
	return q
}

// Len returns the number of entries in the queue.
func (q *Queue[K, P]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Set inserts key with the given priority, or updates key's priority in
// place if it is already present.
func (q *Queue[K, P]) Set(key K, pri P) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if i, ok := q.index[key]; ok {
		q.entries[i].pri = pri
		heaps.FixTracked(q.entries, i, q.less, q.moved)
		return
	}
	q.entries = append(q.entries, entry[K, P]{key: key, pri: pri})
	q.index[key] = len(q.entries) - 1
	heaps.PushTracked(q.entries, q.less, q.moved)
}

// Get returns the priority currently associated with key.
func (q *Queue[K, P]) Get(key K) (P, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	i, ok := q.index[key]
	if !ok {
		var zero P
		return zero, false
	}
	return q.entries[i].pri, true
}

// Index returns key's current position in the queue's heap ordering, with
// 0 the next entry to be popped. The position is only meaningful while the
// queue is otherwise quiescent.
func (q *Queue[K, P]) Index(key K) (int, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	i, ok := q.index[key]
	return i, ok
}

// Peek returns the highest priority entry without removing it.
func (q *Queue[K, P]) Peek() (K, P, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.entries) == 0 {
		var k K
		var p P
		return k, p, false
	}
	return q.entries[0].key, q.entries[0].pri, true
}

// Pop removes and returns the highest priority entry.
func (q *Queue[K, P]) Pop() (K, P, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := len(q.entries)
	if n == 0 {
		var k K
		var p P
		return k, p, false
	}
	heaps.PopTracked(q.entries, q.less, q.moved)
	e := q.entries[n-1]
	q.entries = q.entries[:n-1]
	delete(q.index, e.key)
	return e.key, e.pri, true
}

// Remove removes key from the queue, returning the priority it held.
func (q *Queue[K, P]) Remove(key K) (P, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	i, ok := q.index[key]
	if !ok {
		var zero P
		return zero, false
	}
	n := len(q.entries)
	heaps.PopAtTracked(q.entries, i, q.less, q.moved)
	e := q.entries[n-1]
	q.entries = q.entries[:n-1]
	delete(q.index, key)
	return e.pri, true
}
