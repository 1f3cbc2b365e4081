// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Node is one partition step. The first segment is the pivot the plane was
// derived from, the others lie on the same plane.
type Node struct {
	plane    Plane
	segments []*Segment
	behind   *Node
	front    *Node
	parent   *Node // back link for the iterator, nil at the root
}

func (n *Node) Plane() Plane {
	return n.plane
}

func (n *Node) Segments() []*Segment {
	return n.segments
}

func (n *Node) Behind() *Node {
	return n.behind
}

func (n *Node) Front() *Node {
	return n.front
}

func (n *Node) Parent() *Node {
	return n.parent
}

// Stats describes the shape of a built tree.
type Stats struct {
	Input    int // segments passed to Build
	Retained int // segments stored in the tree after splitting
	Splits   int
	Nodes    int
	Depth    int
}

// Tree is a BSP tree over 2D segments. It is immutable once Build returns and
// may be traversed from multiple goroutines.
type Tree struct {
	id    uuid.UUID
	root  *Node
	stats Stats
}

// Build partitions segs. The first segment of every subset becomes the pivot
// of its subtree, so the order of segs changes the shape of the tree but never
// the correctness of its traversals. segs is not modified.
func Build(segs []*Segment) (*Tree, error) {
	for i, s := range segs {
		if s.degenerate() {
			return nil, errors.Wrapf(ErrDegenerate, "segment %d (%v)", i, s)
		}
	}
	t := &Tree{
		id: uuid.Must(uuid.NewV7()),
	}
	t.stats.Input = len(segs)
	q := make([]*Segment, len(segs))
	copy(q, segs)
	root, err := t.build(q, 1)
	if err != nil {
		return nil, err
	}
	t.root = root
	slog.Debug("bsp: built tree",
		"id", t.id,
		"input", t.stats.Input,
		"retained", t.stats.Retained,
		"splits", t.stats.Splits,
		"nodes", t.stats.Nodes,
		"depth", t.stats.Depth)
	return t, nil
}

func (t *Tree) build(q []*Segment, depth int) (*Node, error) {
	if len(q) == 0 {
		return nil, nil
	}
	pivot := q[0]
	node := &Node{
		plane:    PlaneOf(pivot),
		segments: []*Segment{pivot},
	}
	t.stats.Nodes++
	t.stats.Depth = max(t.stats.Depth, depth)

	var behind, front []*Segment
	for _, s := range q[1:] {
		switch ClassifySegment(node.plane, s) {
		case Behind:
			behind = append(behind, s)
		case Front:
			front = append(front, s)
		case On:
			node.segments = append(node.segments, s)
		case Intersecting:
			b, f, err := s.Split(node.plane)
			if err != nil {
				return nil, err
			}
			t.stats.Splits++
			behind = append(behind, b)
			front = append(front, f)
		}
	}
	t.stats.Retained += len(node.segments)

	var err error
	if node.behind, err = t.build(behind, depth+1); err != nil {
		return nil, err
	}
	if node.behind != nil {
		node.behind.parent = node
	}
	if node.front, err = t.build(front, depth+1); err != nil {
		return nil, err
	}
	if node.front != nil {
		node.front.parent = node
	}
	return node, nil
}

// ID identifies this build. A new tree gets a new ID even for the same input.
func (t *Tree) ID() uuid.UUID {
	return t.id
}

// Root returns the root node or nil for an empty tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Count returns the number of segments stored in the tree. It is larger than
// the input count if segments had to be split.
func (t *Tree) Count() int {
	return t.stats.Retained
}

func (t *Tree) Stats() Stats {
	return t.stats
}
