// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heaps implements binary max-heap algorithms over caller-owned
// slices: construction, insertion, removal at the root or at an arbitrary
// known position, re-ordering after an external priority change, heap-sort
// and validity checks. The slice is always mutated in place and is never
// grown or shrunk; callers append before Push and re-slice after Pop.
//
// Every operation comes in three forms: an operator form for ordered types
// (Make, Push, ...), a comparator form (MakeFunc, PushFunc, ...) and a
// move-notification form (MakeTracked, PushTracked, ...) that reports every
// element relocation to a caller-supplied observer so that an external
// identity to index mapping can be kept consistent (see the keyed
// subpackage). A min-heap is obtained by inverting the comparator.
//
// MakeParallel and its variants build large heaps using multiple
// goroutines.
package heaps

import "cmp"

// LessFunc is a strict weak ordering over T, returning true when a is
// ordered before b, that is, when a has lower priority. The heap invariant
// maintained by this package is that no parent is Less than either of its
// children, so the root holds the maximum.
type LessFunc[T any] func(a, b T) bool

// MoveFunc observes element relocations. It is called with the value now
// occupying index to, having been moved from index from. Operations that
// logically relocate an element to the slot it already occupies report a
// stationary move with from == to, so that an observer tracking indices
// always learns every element's final resting index.
type MoveFunc[T any] func(v T, from, to int)

// Make arranges s into a max-heap.
func Make[T cmp.Ordered](s []T) {
	MakeFunc(s, cmp.Less[T])
}

// Push restores the heap invariant after a new element has been appended
// at s[len(s)-1], with s[:len(s)-1] already a valid heap.
func Push[T cmp.Ordered](s []T) {
	PushFunc(s, cmp.Less[T])
}

// Pop moves the maximum to s[len(s)-1] and restores the heap invariant
// over s[:len(s)-1].
func Pop[T cmp.Ordered](s []T) {
	PopFunc(s, cmp.Less[T])
}

// PopAt removes the element at pos, moving it to s[len(s)-1] and restoring
// the heap invariant over s[:len(s)-1].
func PopAt[T cmp.Ordered](s []T, pos int) {
	PopAtFunc(s, pos, cmp.Less[T])
}

// Sort sorts a valid heap into ascending order.
func Sort[T cmp.Ordered](s []T) {
	SortFunc(s, cmp.Less[T])
}

// Fix restores the heap invariant after the value at pos has been changed
// in place.
func Fix[T cmp.Ordered](s []T, pos int) {
	FixFunc(s, pos, cmp.Less[T])
}

// IsHeapUntil returns the index of the first element that violates the
// heap invariant, or len(s) if there is none.
func IsHeapUntil[T cmp.Ordered](s []T) int {
	return IsHeapUntilFunc(s, cmp.Less[T])
}

// IsHeap returns true if s is a valid max-heap.
func IsHeap[T cmp.Ordered](s []T) bool {
	return IsHeapFunc(s, cmp.Less[T])
}
