// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"slices"
	"testing"

	"github.com/pkg/errors"

	"bspview/math/vec"
)

func drain(t *testing.T, it *Iterator) []*Segment {
	t.Helper()
	var r []*Segment
	for it.HasNext() {
		s, err := it.Next()
		if err != nil {
			t.Fatalf("Next() with HasNext() true: %v", err)
		}
		r = append(r, s)
	}
	return r
}

func TestIteratorEmpty(t *testing.T) {
	tree, err := Build(nil)
	if err != nil {
		t.Fatal(err)
	}
	it := tree.Iterator()
	if it.HasNext() {
		t.Errorf("iterator over empty tree HasNext() = true")
	}
	if _, err := it.Next(); !errors.Is(err, ErrExhausted) {
		t.Errorf("Next() on empty tree: err = %v, want %v", err, ErrExhausted)
	}
}

func TestIteratorExhausted(t *testing.T) {
	tree, err := Build(abc(t))
	if err != nil {
		t.Fatal(err)
	}
	it := tree.IteratorFrom(vec.Vec2{3, 3})
	if got := len(drain(t, it)); got != 4 {
		t.Errorf("iterator returned %d segments, want 4", got)
	}
	for i := 0; i < 2; i++ {
		if s, err := it.Next(); !errors.Is(err, ErrExhausted) || s != nil {
			t.Errorf("Next() after the end = %v, %v, want nil, %v", s, err, ErrExhausted)
		}
	}
}

func TestIteratorABC(t *testing.T) {
	tree, err := Build(abc(t))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := names(drain(t, tree.Iterator())), []string{"B", "C_2", "A", "C_1"}; !equalNames(got, want) {
		t.Errorf("Iterator() = %v, want %v", got, want)
	}
	for _, tc := range []struct {
		v    vec.Vec2
		want []string
	}{
		{vec.Vec2{5, -5}, []string{"C_1", "A", "C_2", "B"}},
		{vec.Vec2{0, 5}, []string{"C_1", "B", "C_2", "A"}},
		{vec.Vec2{0, 0}, []string{"C_1", "C_2", "B", "A"}},
	} {
		got := names(drain(t, tree.IteratorFrom(tc.v)))
		if !equalNames(got, tc.want) {
			t.Errorf("IteratorFrom(%v) = %v, want %v", tc.v, got, tc.want)
		}
	}
}

func TestIteratorMatchesWalk(t *testing.T) {
	for seed := int64(1); seed <= 15; seed++ {
		tree, err := Build(randomSegments(t, seed, 30, 10))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if got := drain(t, tree.Iterator()); !slices.Equal(got, tree.Segments()) {
			t.Errorf("seed %d: Iterator() = %v, want %v", seed, names(got), names(tree.Segments()))
		}
		for _, v := range viewpoints() {
			got := drain(t, tree.IteratorFrom(v))
			if want := tree.BackToFront(v); !slices.Equal(got, want) {
				t.Errorf("seed %d: IteratorFrom(%v) differs from BackToFront", seed, v)
			}
		}
	}
}

// A pivot with everything on its own plane gives a node without children
// holding several segments.
func TestIteratorSharedPlane(t *testing.T) {
	tree, err := Build([]*Segment{
		mustSegment(t, "A", 0, 0, 1, 0),
		mustSegment(t, "B", 0, 1, 1, 1),
		mustSegment(t, "C", 2, 0, 3, 0),
		mustSegment(t, "D", 0, -1, 1, -1),
		mustSegment(t, "E", 5, 0, 4, 0),
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []vec.Vec2{{0, 5}, {0, -5}, {-7, 0}} {
		got := names(drain(t, tree.IteratorFrom(v)))
		want := names(tree.BackToFront(v))
		if !equalNames(got, want) {
			t.Errorf("IteratorFrom(%v) = %v, want %v", v, got, want)
		}
	}
	if got, want := names(tree.BackToFront(vec.Vec2{-7, 0})), []string{"B", "D", "A", "C", "E"}; !equalNames(got, want) {
		t.Errorf("BackToFront on the shared plane = %v, want %v", got, want)
	}
}
