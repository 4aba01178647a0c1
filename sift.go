// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaps

// siftUp fills the hole at pos with v, first sliding every parent that is
// ordered before v down into the hole. The hole never moves past the root.
func siftUp[T any](s []T, pos int, v T, less LessFunc[T]) {
	for pos > 0 {
		parent := (pos - 1) / 2
		if !less(s[parent], v) {
			break
		}
		s[pos] = s[parent]
		pos = parent
	}
	s[pos] = v
}

// siftDown fills the hole at hole with v, first sliding the larger child up
// into the hole while that child is not ordered before v. Only indices below
// length are considered part of the heap.
func siftDown[T any](s []T, length, hole int, v T, less LessFunc[T]) {
	for {
		child := 2*hole + 1
		if child >= length {
			break
		}
		if child+1 < length && less(s[child], s[child+1]) {
			child++
		}
		if less(s[child], v) {
			break
		}
		s[hole] = s[child]
		hole = child
	}
	s[hole] = v
}

// siftUpMoved is siftUp with every relocation reported to moved. The final
// placement of v is reported against ppos, the index v originally came from,
// and is reported even when v does not move.
func siftUpMoved[T any](s []T, pos int, v T, ppos int, less LessFunc[T], moved MoveFunc[T]) {
	for pos > 0 {
		parent := (pos - 1) / 2
		if !less(s[parent], v) {
			break
		}
		s[pos] = s[parent]
		moved(s[pos], parent, pos)
		pos = parent
	}
	s[pos] = v
	moved(v, ppos, pos)
}

// siftDownMoved is siftDown with every relocation reported to moved, with
// the same final-placement contract as siftUpMoved.
func siftDownMoved[T any](s []T, length, hole int, v T, ppos int, less LessFunc[T], moved MoveFunc[T]) {
	for {
		child := 2*hole + 1
		if child >= length {
			break
		}
		if child+1 < length && less(s[child], s[child+1]) {
			child++
		}
		if less(s[child], v) {
			break
		}
		s[hole] = s[child]
		moved(s[hole], child, hole)
		hole = child
	}
	s[hole] = v
	moved(v, ppos, hole)
}
