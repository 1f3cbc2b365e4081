// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"bspview/math/vec"
)

// Iterator walks a tree one segment at a time. It keeps no stack, moving
// between nodes over the child and parent links only. Each Iterator is owned
// by one goroutine; separate Iterators over the same tree are independent.
type Iterator struct {
	order func(*Node) visit
	node  *Node // nil once exhausted
	idx   int   // next segment of node
}

// Iterator returns an Iterator in the order of Segments.
func (t *Tree) Iterator() *Iterator {
	return newIterator(t.root, arbitrary)
}

// IteratorFrom returns an Iterator in the order of BackToFront(v).
func (t *Tree) IteratorFrom(v vec.Vec2) *Iterator {
	return newIterator(t.root, backToFront(v))
}

func newIterator(root *Node, order func(*Node) visit) *Iterator {
	it := &Iterator{order: order}
	if root != nil {
		it.enter(root)
	}
	return it
}

// HasNext reports whether Next will return a segment.
func (it *Iterator) HasNext() bool {
	return it.node != nil
}

// Next returns the next segment or ErrExhausted.
func (it *Iterator) Next() (*Segment, error) {
	if it.node == nil {
		return nil, ErrExhausted
	}
	s := it.node.segments[it.idx]
	it.idx++
	if it.idx == len(it.node.segments) {
		it.advance()
	}
	return s, nil
}

// enter positions the iterator at the first segment of the subtree n.
func (it *Iterator) enter(n *Node) {
	for {
		o := it.order(n)
		switch {
		case o.first != nil:
			n = o.first
		case !o.last || o.second == nil:
			it.at(n)
			return
		default:
			n = o.second
		}
	}
}

func (it *Iterator) at(n *Node) {
	it.node = n
	it.idx = 0
}

// advance is called once all segments of the current node are emitted.
func (it *Iterator) advance() {
	n := it.node
	if o := it.order(n); !o.last && o.second != nil {
		it.enter(o.second)
		return
	}
	// the whole subtree of n is done, find the next ancestor with work left
	for {
		p := n.parent
		if p == nil {
			it.node = nil
			return
		}
		o := it.order(p)
		if n == o.first {
			switch {
			case !o.last:
				it.at(p)
			case o.second != nil:
				it.enter(o.second)
			default:
				it.at(p)
			}
			return
		}
		// n was the second child
		if o.last {
			it.at(p)
			return
		}
		n = p
	}
}
