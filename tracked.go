// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaps

// The Tracked variants behave exactly like their Func counterparts but
// additionally report every element relocation to moved. An operation that
// performs k physical relocations invokes moved exactly k times, plus the
// stationary settle reports documented per operation; reports are not
// emitted in index order but the last report for any element always gives
// its true final index. Replaying the reports in order onto a snapshot of
// the slice reproduces its final state.

// MakeTracked is MakeFunc with move notification. Every parent receives a
// settle report, stationary if it never moved; leaves that are never
// displaced are not reported.
func MakeTracked[T any](s []T, less LessFunc[T], moved MoveFunc[T]) {
	n := len(s)
	for p := n/2 - 1; p >= 0; p-- {
		siftDownMoved(s, n, p, s[p], p, less, moved)
	}
}

// PushTracked is PushFunc with move notification. The appended element's
// settling index is always reported, as a stationary move when it does not
// leave s[len(s)-1].
func PushTracked[T any](s []T, less LessFunc[T], moved MoveFunc[T]) {
	pos := len(s) - 1
	if pos < 0 {
		return
	}
	if parent := (pos - 1) / 2; pos > 0 && less(s[parent], s[pos]) {
		siftUpMoved(s, pos, s[pos], pos, less, moved)
	} else {
		moved(s[pos], pos, pos)
	}
}

// PopTracked is PopFunc with move notification. The former maximum's
// relocation to s[len(s)-1] is always reported, stationary on a singleton.
func PopTracked[T any](s []T, less LessFunc[T], moved MoveFunc[T]) {
	n := len(s)
	if n == 0 {
		return
	}
	if n > 1 {
		v := s[n-1]
		s[n-1] = s[0]
		siftDownMoved(s, n-1, 0, v, n-1, less, moved)
	}
	moved(s[n-1], 0, n-1)
}

// PopAtTracked is PopAtFunc with move notification. The removed element's
// relocation from pos to s[len(s)-1] is always reported, stationary when
// pos is already the last index.
func PopAtTracked[T any](s []T, pos int, less LessFunc[T], moved MoveFunc[T]) {
	n := len(s)
	if n == 0 {
		return
	}
	if end := n - 1; pos < end {
		v := s[end]
		s[end] = s[pos]
		if pos > 0 && less(s[(pos-1)/2], v) {
			siftUpMoved(s, pos, v, end, less, moved)
		} else {
			siftDownMoved(s, end, pos, v, end, less, moved)
		}
	}
	moved(s[n-1], pos, n-1)
}

// SortTracked is SortFunc with move notification. Each popped maximum's
// relocation into the tail is reported.
func SortTracked[T any](s []T, less LessFunc[T], moved MoveFunc[T]) {
	for n := len(s) - 1; n > 0; n-- {
		v := s[n]
		s[n] = s[0]
		siftDownMoved(s, n, 0, v, n, less, moved)
		moved(s[n], 0, n)
	}
}

// FixTracked is FixFunc with move notification. The element at pos always
// receives a settle report, stationary if it did not move.
func FixTracked[T any](s []T, pos int, less LessFunc[T], moved MoveFunc[T]) {
	if pos > 0 && less(s[(pos-1)/2], s[pos]) {
		siftUpMoved(s, pos, s[pos], pos, less, moved)
	} else {
		siftDownMoved(s, len(s), pos, s[pos], pos, less, moved)
	}
}
