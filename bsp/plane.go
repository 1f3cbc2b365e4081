// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"fmt"

	"github.com/pkg/errors"

	"bspview/math/vec"
)

// Plane is an oriented line. It contains every point p with
// dot(p - origin, normal) == 0.
type Plane struct {
	origin vec.Vec2
	normal vec.Vec2 // always unit length
}

// NewPlane returns the plane through origin with the given normal. The normal
// gets normalized, the null vector is rejected.
func NewPlane(origin, normal vec.Vec2) (Plane, error) {
	if !origin.IsFinite() || !normal.IsFinite() {
		return Plane{}, errors.Wrapf(ErrDegenerate, "plane at %v with normal %v is not finite", origin, normal)
	}
	n := normal.Normalize()
	if !n.IsFinite() || n.IsNull() {
		return Plane{}, errors.Wrapf(ErrDegenerate, "plane at %v has no usable normal %v", origin, normal)
	}
	return Plane{
		origin: origin,
		normal: n,
	}, nil
}

// PlaneOf returns the plane s lies on, facing the same way as s.
func PlaneOf(s *Segment) Plane {
	return Plane{
		origin: s.start,
		normal: s.normal,
	}
}

func (p Plane) Origin() vec.Vec2 {
	return p.origin
}

func (p Plane) Normal() vec.Vec2 {
	return p.normal
}

// Distance returns the signed distance of point to the plane.
func (p Plane) Distance(point vec.Vec2) float32 {
	return vec.Dot(p.normal, vec.Sub(point, p.origin))
}

func (p Plane) String() string {
	return fmt.Sprintf("Plane[origin=%v,normal=%v]", p.origin, p.normal)
}
