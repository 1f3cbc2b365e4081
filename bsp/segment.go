// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"

	"bspview/math/vec"
)

// Segment is a directed line piece. Its normal is the direction rotated by
// 90 degrees counter clockwise. Segments are never modified after creation.
type Segment struct {
	name   string
	start  vec.Vec2
	end    vec.Vec2
	normal vec.Vec2
}

// NewSegment creates the segment start->end. The name is optional and only
// used for diagnostics.
func NewSegment(name string, start, end vec.Vec2) (*Segment, error) {
	if !start.IsFinite() || !end.IsFinite() {
		return nil, errors.Wrapf(ErrDegenerate, "segment %q from %v to %v is not finite", name, start, end)
	}
	if vec.Equal(start, end) {
		return nil, errors.Wrapf(ErrDegenerate, "segment %q has zero length at %v", name, start)
	}
	// an overflowing or underflowing length leaves no usable direction
	n := vec.Sub(end, start).Normalize().Rotate90()
	if !n.IsFinite() || n.IsNull() {
		return nil, errors.Wrapf(ErrDegenerate, "segment %q from %v to %v has no normal", name, start, end)
	}
	return &Segment{
		name:   name,
		start:  start,
		end:    end,
		normal: n,
	}, nil
}

func (s *Segment) Name() string {
	return s.name
}

func (s *Segment) Start() vec.Vec2 {
	return s.start
}

func (s *Segment) End() vec.Vec2 {
	return s.end
}

func (s *Segment) Normal() vec.Vec2 {
	return s.normal
}

// Mid returns the midpoint of the segment.
func (s *Segment) Mid() vec.Vec2 {
	return vec.Lerp(s.start, s.end, 0.5)
}

func (s *Segment) Length() float32 {
	return vec.Sub(s.end, s.start).Length()
}

func (s *Segment) String() string {
	return fmt.Sprintf("Segment[name=%q, %v -> %v, normal=%v]", s.name, s.start, s.end, s.normal)
}

func (s *Segment) degenerate() bool {
	return s == nil || vec.Equal(s.start, s.end) ||
		!s.start.IsFinite() || !s.end.IsFinite() ||
		!s.normal.IsFinite() || s.normal.IsNull()
}

type IntersectionKind int

const (
	// NoIntersection: parallel to the plane or crossing it outside the segment.
	NoIntersection IntersectionKind = iota
	// Contained: the start point lies on the plane.
	Contained
	// At: the segment crosses the plane at Point.
	At
)

func (k IntersectionKind) String() string {
	switch k {
	case NoIntersection:
		return "none"
	case Contained:
		return "contained"
	case At:
		return "at"
	}
	return "unknown"
}

type Intersection struct {
	Kind  IntersectionKind
	Point vec.Vec2 // only valid for At
}

// Intersection computes where s crosses p, treating s as
// start + d*(end-start) with d in [0,1].
func (s *Segment) Intersection(p Plane) Intersection {
	dir := vec.Sub(s.end, s.start)

	denom := vec.Dot(dir, p.normal)
	if denom == 0 {
		// parallel, also when lying on the plane
		return Intersection{Kind: NoIntersection}
	}

	numer := vec.Dot(vec.Sub(p.origin, s.start), p.normal)
	if numer == 0 {
		return Intersection{Kind: Contained}
	}

	d := numer / denom
	if d < 0 || d > 1 {
		return Intersection{Kind: NoIntersection}
	}
	return Intersection{
		Kind:  At,
		Point: vec.Add(s.start, dir.Scale(d)),
	}
}

// Split cuts s at its intersection with p and returns the piece behind p and
// the piece in front of it. The pieces are named after s with suffix _1 and _2.
// Split must only be called for segments classified as Intersecting.
func (s *Segment) Split(p Plane) (*Segment, *Segment, error) {
	is := s.Intersection(p)
	if is.Kind != At {
		return nil, nil, errors.Wrapf(ErrInvariant, "split %v by %v: intersection is %v", s, p, is.Kind)
	}
	first, err := NewSegment(s.name+"_1", s.start, is.Point)
	if err != nil {
		return nil, nil, errors.Wrapf(ErrInvariant, "split %v by %v: %v", s, p, err)
	}
	second, err := NewSegment(s.name+"_2", is.Point, s.end)
	if err != nil {
		return nil, nil, errors.Wrapf(ErrInvariant, "split %v by %v: %v", s, p, err)
	}

	side := ClassifySegment(p, first)
	if side != Front && side != Behind {
		// rounding moved the intersection off the plane; start decides
		side = ClassifyPoint(p, s.start)
	}
	slog.Debug("bsp: split segment", "segment", s.name, "at", is.Point, "first", side)
	if side == Front {
		return second, first, nil
	}
	return first, second, nil
}
