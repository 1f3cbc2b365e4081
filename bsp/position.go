// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"bspview/math/vec"
)

// Position is the location of a point or segment relative to a plane.
type Position int

const (
	Behind Position = iota
	Front
	Intersecting
	On
)

func (p Position) String() string {
	switch p {
	case Behind:
		return "behind"
	case Front:
		return "front"
	case Intersecting:
		return "intersecting"
	case On:
		return "on"
	}
	return "unknown"
}

// ClassifyPoint returns On, Behind or Front. There is no epsilon, a point is
// only On the plane if the dot product is exactly zero.
func ClassifyPoint(p Plane, point vec.Vec2) Position {
	d := vec.Dot(p.normal, vec.Sub(point, p.origin))
	switch {
	case d == 0:
		return On
	case d < 0:
		return Behind
	default:
		return Front
	}
}

// ClassifySegment classifies both endpoints of s. A segment touching the
// plane with one end is on the side of its other end.
func ClassifySegment(p Plane, s *Segment) Position {
	start := ClassifyPoint(p, s.start)
	end := ClassifyPoint(p, s.end)
	switch {
	case start == end:
		return start
	case start == On:
		return end
	case end == On:
		return start
	default:
		return Intersecting
	}
}
