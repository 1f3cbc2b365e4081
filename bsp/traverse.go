// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"iter"
	"slices"

	"bspview/math/vec"
)

// visit describes how one node is walked: first subtree, second subtree and
// whether the node's own segments come after both subtrees instead of between
// them.
type visit struct {
	first, second *Node
	last          bool
}

// arbitrary is the in-order walk behind, node, front.
func arbitrary(n *Node) visit {
	return visit{first: n.behind, second: n.front}
}

// backToFront orders n for a viewer at v. If v lies on the plane of n the
// subtrees are walked front first and the node's segments, which are seen
// edge on, come last.
func backToFront(v vec.Vec2) func(n *Node) visit {
	return func(n *Node) visit {
		switch ClassifyPoint(n.plane, v) {
		case Front:
			return visit{first: n.behind, second: n.front}
		case Behind:
			return visit{first: n.front, second: n.behind}
		default:
			return visit{first: n.front, second: n.behind, last: true}
		}
	}
}

func walk(n *Node, order func(*Node) visit, yield func(*Segment) bool) bool {
	if n == nil {
		return true
	}
	o := order(n)
	if !walk(o.first, order, yield) {
		return false
	}
	if !o.last {
		for _, s := range n.segments {
			if !yield(s) {
				return false
			}
		}
	}
	if !walk(o.second, order, yield) {
		return false
	}
	if o.last {
		for _, s := range n.segments {
			if !yield(s) {
				return false
			}
		}
	}
	return true
}

func (t *Tree) collect(order func(*Node) visit) []*Segment {
	r := make([]*Segment, 0, t.stats.Retained)
	walk(t.root, order, func(s *Segment) bool {
		r = append(r, s)
		return true
	})
	return r
}

// Segments returns every retained segment exactly once in an arbitrary but
// stable order.
func (t *Tree) Segments() []*Segment {
	return t.collect(arbitrary)
}

// BackToFront returns all segments ordered for painting from viewpoint v:
// segments farther away come first.
func (t *Tree) BackToFront(v vec.Vec2) []*Segment {
	return t.collect(backToFront(v))
}

// FrontToBack is the reverse of BackToFront.
func (t *Tree) FrontToBack(v vec.Vec2) []*Segment {
	r := t.BackToFront(v)
	slices.Reverse(r)
	return r
}

// All iterates the segments in the order of Segments without allocating the
// full list.
func (t *Tree) All() iter.Seq[*Segment] {
	return func(yield func(*Segment) bool) {
		walk(t.root, arbitrary, yield)
	}
}

// Ordered iterates the segments in the order of BackToFront.
func (t *Tree) Ordered(v vec.Vec2) iter.Seq[*Segment] {
	return func(yield func(*Segment) bool) {
		walk(t.root, backToFront(v), yield)
	}
}
