// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaps

// MakeFunc arranges s into a max-heap under less, sifting down every parent
// starting with the deepest. O(len(s)).
func MakeFunc[T any](s []T, less LessFunc[T]) {
	n := len(s)
	for p := n/2 - 1; p >= 0; p-- {
		siftDown(s, n, p, s[p], less)
	}
}

// PushFunc restores the heap invariant after a new element has been
// appended at s[len(s)-1], with s[:len(s)-1] already a valid heap. The new
// element is sifted up only if its parent is ordered before it. O(log n).
func PushFunc[T any](s []T, less LessFunc[T]) {
	pos := len(s) - 1
	if pos <= 0 {
		return
	}
	if parent := (pos - 1) / 2; less(s[parent], s[pos]) {
		siftUp(s, pos, s[pos], less)
	}
}

// PopFunc moves the maximum to s[len(s)-1] and restores the heap invariant
// over s[:len(s)-1]. It is a no-op when len(s) <= 1.
func PopFunc[T any](s []T, less LessFunc[T]) {
	if len(s) <= 1 {
		return
	}
	n := len(s) - 1
	v := s[n]
	s[n] = s[0]
	siftDown(s, n, 0, v, less)
}

// PopAtFunc removes the element at pos, moving it to s[len(s)-1] and
// restoring the heap invariant over s[:len(s)-1]. The displaced last element
// fills the hole at pos and moves either up or down, never both. It is a
// no-op when pos is the last index.
func PopAtFunc[T any](s []T, pos int, less LessFunc[T]) {
	n := len(s) - 1
	if pos >= n {
		return
	}
	v := s[n]
	s[n] = s[pos]
	if pos > 0 && less(s[(pos-1)/2], v) {
		siftUp(s, pos, v, less)
	} else {
		siftDown(s, n, pos, v, less)
	}
}

// SortFunc sorts a valid heap into ascending order under less by repeatedly
// popping the maximum into the shrinking tail. O(n log n).
func SortFunc[T any](s []T, less LessFunc[T]) {
	for n := len(s) - 1; n > 0; n-- {
		v := s[n]
		s[n] = s[0]
		siftDown(s, n, 0, v, less)
	}
}

// FixFunc restores the heap invariant after the value at pos has been
// changed in place. The element is sifted up if its parent is ordered before
// it and sifted down otherwise; the two cannot both apply. O(log n).
func FixFunc[T any](s []T, pos int, less LessFunc[T]) {
	if pos > 0 && less(s[(pos-1)/2], s[pos]) {
		siftUp(s, pos, s[pos], less)
	} else {
		siftDown(s, len(s), pos, s[pos], less)
	}
}

// IsHeapUntilFunc returns the index of the first element that is ordered
// after its parent, or len(s) if s is a valid max-heap.
func IsHeapUntilFunc[T any](s []T, less LessFunc[T]) int {
	n := len(s)
	parent := 0
	for child := 1; child < n; child++ {
		if less(s[parent], s[child]) {
			return child
		}
		child++
		if child < n && less(s[parent], s[child]) {
			return child
		}
		parent++
	}
	return n
}

// IsHeapFunc returns true if s is a valid max-heap under less.
func IsHeapFunc[T any](s []T, less LessFunc[T]) bool {
	return IsHeapUntilFunc(s, less) == len(s)
}
