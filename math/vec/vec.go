// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"fmt"

	"github.com/chewxy/math32"

	"bspview/math"
)

// Vec2 is a point or direction in the plane.
type Vec2 struct {
	X, Y float32
}

func VFromA(a [2]float32) Vec2 {
	return Vec2{a[0], a[1]}
}

func (v Vec2) Array() [2]float32 {
	return [2]float32{v.X, v.Y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", v.X, v.Y)
}

// Length returns the length of the vector
func (v Vec2) Length() float32 {
	return math32.Sqrt(Dot(v, v))
}

// Add returns a + b
func Add(a, b Vec2) Vec2 {
	return Vec2{
		X: a.X + b.X,
		Y: a.Y + b.Y,
	}
}

// Sub returns a - b
func Sub(a, b Vec2) Vec2 {
	return Vec2{
		X: a.X - b.X,
		Y: a.Y - b.Y,
	}
}

// Scale returns the vector multiplied by the skalar s
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{
		X: v.X * s,
		Y: v.Y * s,
	}
}

// Normalize returns the normalized vector. The null vector stays null.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// Rotate90 returns v rotated by 90 degrees counter clockwise.
// Unlike Rotate(90) the result is exact.
func (v Vec2) Rotate90() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Rotate returns v rotated counter clockwise by deg degrees.
func (v Vec2) Rotate(deg float32) Vec2 {
	switch math.AngleMod32(deg) {
	case 0:
		return v
	case 90:
		return v.Rotate90()
	case 180:
		return Vec2{-v.X, -v.Y}
	case 270:
		return Vec2{v.Y, -v.X}
	}
	s, c := math32.Sincos(math.Radians32(deg))
	return Vec2{
		X: c*v.X - s*v.Y,
		Y: s*v.X + c*v.Y,
	}
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vec2) IsFinite() bool {
	return !math32.IsNaN(v.X) && !math32.IsNaN(v.Y) &&
		!math32.IsInf(v.X, 0) && !math32.IsInf(v.Y, 0)
}

// IsNull reports whether v is the null vector
func (v Vec2) IsNull() bool {
	return v.X == 0 && v.Y == 0
}

// Dot returns a dot b
func Dot(a, b Vec2) float32 {
	return a.X*b.X + a.Y*b.Y
}

// Lerp computes a weighted average between two points
func Lerp(a, b Vec2, frac float32) Vec2 {
	fi := 1 - frac
	return Vec2{
		fi*a.X + frac*b.X,
		fi*a.Y + frac*b.Y,
	}
}

// Equal returns a == b
func Equal(a, b Vec2) bool {
	return a.X == b.X && a.Y == b.Y
}

func minmax(a, b float32) (float32, float32) {
	if a < b {
		return a, b
	}
	return b, a
}

// MinMax returns the componentwise minimum and maximum of a and b.
func MinMax(a, b Vec2) (Vec2, Vec2) {
	var r, s Vec2
	r.X, s.X = minmax(a.X, b.X)
	r.Y, s.Y = minmax(a.Y, b.Y)
	return r, s
}
