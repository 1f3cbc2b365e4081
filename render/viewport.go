// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"image"

	"bspview/math/vec"
)

// Viewport maps world coordinates onto a Width x Height pixel area. World y
// grows upwards, pixel y downwards.
type Viewport struct {
	Min, Max      vec.Vec2
	Width, Height int
}

// margin is the share of the world extent added on every side.
const margin = 0.1

// MinSize is the smallest width or height a viewport can map onto.
const MinSize = 2

// NewViewport returns a viewport showing the box min-max with some room
// around it. Boxes without extent along an axis get a unit extent, sizes
// below MinSize are raised to it.
func NewViewport(min, max vec.Vec2, width, height int) Viewport {
	if width < MinSize {
		width = MinSize
	}
	if height < MinSize {
		height = MinSize
	}
	min, max = vec.MinMax(min, max)
	grow := func(lo, hi float32) (float32, float32) {
		if hi-lo == 0 {
			return lo - 0.5, hi + 0.5
		}
		d := (hi - lo) * margin
		return lo - d, hi + d
	}
	min.X, max.X = grow(min.X, max.X)
	min.Y, max.Y = grow(min.Y, max.Y)
	return Viewport{
		Min:    min,
		Max:    max,
		Width:  width,
		Height: height,
	}
}

func (v Viewport) scale() (float32, float32) {
	return float32(v.Width-1) / (v.Max.X - v.Min.X), float32(v.Height-1) / (v.Max.Y - v.Min.Y)
}

// ToPixel returns the pixel nearest to p.
func (v Viewport) ToPixel(p vec.Vec2) image.Point {
	sx, sy := v.scale()
	x := (p.X - v.Min.X) * sx
	y := float32(v.Height-1) - (p.Y-v.Min.Y)*sy
	return image.Pt(round(x), round(y))
}

// ToWorld returns the world position of the pixel pt.
func (v Viewport) ToWorld(pt image.Point) vec.Vec2 {
	sx, sy := v.scale()
	return vec.Vec2{
		X: v.Min.X + float32(pt.X)/sx,
		Y: v.Min.Y + float32(v.Height-1-pt.Y)/sy,
	}
}

func round(f float32) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}
