// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"bspview/math/vec"
)

// abc is the default scene: C gets split by the plane of A.
func abc(t *testing.T) []*Segment {
	return []*Segment{
		mustSegment(t, "A", 0, 0, 0, 1),
		mustSegment(t, "B", 0, 0, 1, 0),
		mustSegment(t, "C", -1, -1, 1, 1),
	}
}

// randomSegments returns n horizontal or vertical segments with integer
// coordinates in [-size,size]. Axis aligned input keeps every classification
// exact, even for split pieces.
func randomSegments(t *testing.T, seed int64, n, size int) []*Segment {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	c := func() float32 {
		return float32(r.Intn(2*size+1) - size)
	}
	var segs []*Segment
	for len(segs) < n {
		a := vec.Vec2{c(), c()}
		b := a
		if r.Intn(2) == 0 {
			b.X = c()
		} else {
			b.Y = c()
		}
		if vec.Equal(a, b) {
			continue
		}
		s, err := NewSegment("", a, b)
		if err != nil {
			t.Fatal(err)
		}
		segs = append(segs, s)
	}
	return segs
}

func names(segs []*Segment) []string {
	r := make([]string, len(segs))
	for i, s := range segs {
		r[i] = s.Name()
	}
	return r
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuildEmpty(t *testing.T) {
	tree, err := Build(nil)
	if err != nil {
		t.Fatal(err)
	}
	if tree.Root() != nil {
		t.Errorf("empty tree has root %v", tree.Root())
	}
	if tree.Count() != 0 {
		t.Errorf("empty tree Count() = %d", tree.Count())
	}
	if got := tree.BackToFront(vec.Vec2{1, 1}); len(got) != 0 {
		t.Errorf("empty tree BackToFront = %v", got)
	}
	if got := tree.Segments(); len(got) != 0 {
		t.Errorf("empty tree Segments = %v", got)
	}
}

func TestBuildDegenerate(t *testing.T) {
	segs := abc(t)
	segs = append(segs, &Segment{name: "dot", start: vec.Vec2{2, 2}, end: vec.Vec2{2, 2}})
	if _, err := Build(segs); !errors.Is(err, ErrDegenerate) {
		t.Errorf("Build with zero length segment: err = %v, want %v", err, ErrDegenerate)
	}
	if _, err := Build([]*Segment{nil}); !errors.Is(err, ErrDegenerate) {
		t.Errorf("Build with nil segment: err = %v, want %v", err, ErrDegenerate)
	}
	// a NaN pivot would classify everything as front and never split
	nan := &Segment{name: "X", start: vec.Vec2{math32.NaN(), 0}, end: vec.Vec2{1, 1}, normal: vec.Vec2{math32.NaN(), math32.NaN()}}
	if _, err := Build([]*Segment{nan, mustSegment(t, "C", 0, -1, 0, 1)}); !errors.Is(err, ErrDegenerate) {
		t.Errorf("Build with NaN pivot: err = %v, want %v", err, ErrDegenerate)
	}
}

func TestBuildABC(t *testing.T) {
	segs := abc(t)
	tree, err := Build(segs)
	if err != nil {
		t.Fatal(err)
	}
	want := Stats{Input: 3, Retained: 4, Splits: 1, Nodes: 4, Depth: 3}
	if got := tree.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
	root := tree.Root()
	if root.Segments()[0].Name() != "A" {
		t.Fatalf("root pivot = %v, want A", root.Segments()[0])
	}
	if root.Parent() != nil {
		t.Errorf("root has parent %v", root.Parent())
	}
	b := root.Behind()
	if b == nil || b.Segments()[0].Name() != "B" || b.Parent() != root {
		t.Fatalf("root.Behind() = %v, want node B", b)
	}
	if f := root.Front(); f == nil || f.Segments()[0].Name() != "C_1" || f.Parent() != root {
		t.Errorf("root.Front() = %v, want node C_1", f)
	}
	if f := b.Front(); f == nil || f.Segments()[0].Name() != "C_2" || f.Parent() != b {
		t.Errorf("B.Front() = %v, want node C_2", f)
	}
	if b.Behind() != nil {
		t.Errorf("B.Behind() = %v, want nil", b.Behind())
	}

	// every piece stays inside the bounding box of the input
	lo, hi := vec.Vec2{-1, -1}, vec.Vec2{1, 1}
	for _, s := range tree.Segments() {
		for _, p := range []vec.Vec2{s.Start(), s.End()} {
			if p.X < lo.X || p.Y < lo.Y || p.X > hi.X || p.Y > hi.Y {
				t.Errorf("%v lies outside %v-%v", s, lo, hi)
			}
		}
	}
}

func TestBuildOnPlane(t *testing.T) {
	segs := []*Segment{
		mustSegment(t, "A", 0, 0, 1, 0),
		mustSegment(t, "B", 3, 0, 5, 0),
		mustSegment(t, "Back", 8, 0, 6, 0),
		mustSegment(t, "D", 0, 2, 1, 2),
	}
	tree, err := Build(segs)
	if err != nil {
		t.Fatal(err)
	}
	got := names(tree.Root().Segments())
	want := []string{"A", "B", "Back"}
	if !equalNames(got, want) {
		t.Errorf("root segments = %v, want %v", got, want)
	}
	if tree.Count() != 4 {
		t.Errorf("Count() = %d, want 4", tree.Count())
	}
}

func TestBuildDoesNotModifyInput(t *testing.T) {
	segs := abc(t)
	in := names(segs)
	if _, err := Build(segs); err != nil {
		t.Fatal(err)
	}
	if got := names(segs); !equalNames(got, in) {
		t.Errorf("Build changed its input to %v", got)
	}
}

func TestBuildIDs(t *testing.T) {
	t1, err := Build(abc(t))
	if err != nil {
		t.Fatal(err)
	}
	t2, err := Build(abc(t))
	if err != nil {
		t.Fatal(err)
	}
	if t1.ID() == t2.ID() {
		t.Errorf("two builds share the id %v", t1.ID())
	}
}

func countNodes(n *Node) int {
	if n == nil {
		return 0
	}
	return len(n.segments) + countNodes(n.behind) + countNodes(n.front)
}

func TestCount(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		segs := randomSegments(t, seed, 30, 8)
		tree, err := Build(segs)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		st := tree.Stats()
		if got := countNodes(tree.Root()); got != tree.Count() {
			t.Errorf("seed %d: nodes hold %d segments, Count() = %d", seed, got, tree.Count())
		}
		if st.Retained != st.Input+st.Splits {
			t.Errorf("seed %d: %+v: retained != input + splits", seed, st)
		}
		if got := len(tree.Segments()); got != tree.Count() {
			t.Errorf("seed %d: len(Segments()) = %d, Count() = %d", seed, got, tree.Count())
		}
	}
}

// split points carry rounding errors, so the sides are checked with a
// small tolerance
const sideTolerance = 1e-4

func checkSide(t *testing.T, n *Node, ancestors []*Node, sides []Position) {
	t.Helper()
	if n == nil {
		return
	}
	for _, s := range n.segments {
		for i, a := range ancestors {
			for _, p := range []vec.Vec2{s.start, s.end} {
				d := a.plane.Distance(p)
				if sides[i] == Behind && d > sideTolerance {
					t.Errorf("%v is in the behind subtree of %v but %v is in front (%v)", s, a.plane, p, d)
				}
				if sides[i] == Front && d < -sideTolerance {
					t.Errorf("%v is in the front subtree of %v but %v is behind (%v)", s, a.plane, p, d)
				}
			}
		}
		if ClassifySegment(n.plane, s) != On {
			t.Errorf("%v stored in node with %v but not on it", s, n.plane)
		}
	}
	anc := append(ancestors[:len(ancestors):len(ancestors)], n)
	checkSide(t, n.behind, anc, append(sides[:len(sides):len(sides)], Behind))
	checkSide(t, n.front, anc, append(sides[:len(sides):len(sides)], Front))
}

func TestPartition(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		tree, err := Build(randomSegments(t, seed, 25, 10))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		checkSide(t, tree.Root(), nil, nil)
	}
}
