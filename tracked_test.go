// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaps_test

import (
	"math/rand"
	"reflect"
	"testing"

	"cloudeng.io/heaps"
)

type move struct {
	v        int
	from, to int
}

type recorder struct {
	moves []move
}

func (r *recorder) observe(v, from, to int) {
	r.moves = append(r.moves, move{v, from, to})
}

// replay applies the recorded moves, in order, to a snapshot taken before
// the operation. The result must equal the slice's final state: the
// notification stream is complete and each report is individually correct.
func (r *recorder) replay(snapshot []int) []int {
	s := make([]int, len(snapshot))
	copy(s, snapshot)
	for _, m := range r.moves {
		s[m.to] = m.v
	}
	return s
}

func assertReplay(t *testing.T, r *recorder, before, after []int) {
	t.Helper()
	if got, want := r.replay(before), after; !reflect.DeepEqual(got, want) {
		t.Errorf("replayed %v, want %v (moves %v)", got, want, r.moves)
	}
}

func snapshot(s []int) []int {
	c := make([]int, len(s))
	copy(c, s)
	return c
}

func intLess(a, b int) bool { return a < b }

func TestTrackedReplay(t *testing.T) {
	input := uniformRand(11, 128)
	s := snapshot(input)

	r := &recorder{}
	heaps.MakeTracked(s, intLess, r.observe)
	assertReplay(t, r, input, s)
	if got, want := heaps.IsHeap(s), true; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	before := snapshot(s)
	s = append(s, 20000)
	r = &recorder{}
	heaps.PushTracked(s, intLess, r.observe)
	assertReplay(t, r, append(before, 20000), s)

	before = snapshot(s)
	r = &recorder{}
	heaps.PopTracked(s, intLess, r.observe)
	assertReplay(t, r, before, s)
	s = s[:len(s)-1]

	before = snapshot(s)
	r = &recorder{}
	heaps.PopAtTracked(s, 17, intLess, r.observe)
	assertReplay(t, r, before, s)
	s = s[:len(s)-1]

	before = snapshot(s)
	r = &recorder{}
	heaps.FixTracked(s, 9, intLess, r.observe)
	assertReplay(t, r, before, s)

	before = snapshot(s)
	r = &recorder{}
	heaps.SortTracked(s, intLess, r.observe)
	assertReplay(t, r, before, s)
}

func TestTrackedPushCounts(t *testing.T) {
	// A perfect 7 element max-heap; an appended 8 bubbles all the way up:
	// three parents slide down plus the terminal placement.
	s := []int{7, 5, 6, 3, 4, 1, 2, 8}
	r := &recorder{}
	heaps.PushTracked(s, intLess, r.observe)
	want := []move{{3, 3, 7}, {5, 1, 3}, {7, 0, 1}, {8, 7, 0}}
	if got := r.moves; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// An appended 0 stays put but its settling index is still reported.
	s = []int{7, 5, 6, 3, 4, 1, 2, 0}
	r = &recorder{}
	heaps.PushTracked(s, intLess, r.observe)
	want = []move{{0, 7, 7}}
	if got := r.moves; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTrackedPopReportsMaximum(t *testing.T) {
	s := []int{3, 1, 4, 1, 5, 9, 2, 6}
	heaps.MakeFunc(s, intLess)
	r := &recorder{}
	heaps.PopTracked(s, intLess, r.observe)
	last := r.moves[len(r.moves)-1]
	if got, want := last, (move{9, 0, 7}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Singleton: a stationary report keeps external maps total.
	s = []int{42}
	r = &recorder{}
	heaps.PopTracked(s, intLess, r.observe)
	if got, want := r.moves, []move{{42, 0, 0}}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// TestTrackedIndexMap drives every tracked operation over distinct values
// and checks that an index map maintained purely from the notifications
// always matches a direct scan of the slice.
func TestTrackedIndexMap(t *testing.T) {
	const n = 64
	rnd := rand.New(rand.NewSource(5)) // #nosec: G404
	s := rnd.Perm(n)

	idx := map[int]int{}
	for i, v := range s {
		idx[v] = i
	}
	observe := func(v, _, to int) {
		idx[v] = to
	}
	assertIndexed := func(op string) {
		t.Helper()
		for i, v := range s {
			if got, want := idx[v], i; got != want {
				t.Errorf("%v: index of %v: got %v, want %v", op, v, got, want)
			}
		}
	}

	heaps.MakeTracked(s, intLess, observe)
	assertIndexed("make")

	s = append(s, n)
	idx[n] = len(s) - 1
	heaps.PushTracked(s, intLess, observe)
	assertIndexed("push")

	heaps.FixTracked(s, 20, intLess, observe)
	assertIndexed("fix")

	heaps.PopAtTracked(s, 5, intLess, observe)
	assertIndexed("popat")
	delete(idx, s[len(s)-1])
	s = s[:len(s)-1]
	heaps.FixTracked(s, 5, intLess, observe)
	assertIndexed("refix")

	heaps.PopTracked(s, intLess, observe)
	assertIndexed("pop")
	delete(idx, s[len(s)-1])
	s = s[:len(s)-1]

	heaps.SortTracked(s, intLess, observe)
	assertIndexed("sort")
}
