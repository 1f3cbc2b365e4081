// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"image"
	"image/color"
	"image/draw"

	"bspview/math"
)

// Canvas draws primitives onto an RGBA image. Pixels outside the image are
// dropped.
type Canvas struct {
	img *image.RGBA
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Clear(col color.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
}

func (c *Canvas) set(x, y int, col color.RGBA) {
	if !(image.Point{x, y}).In(c.img.Bounds()) {
		return
	}
	offset := c.img.PixOffset(x, y)
	c.img.Pix[offset] = col.R
	c.img.Pix[offset+1] = col.G
	c.img.Pix[offset+2] = col.B
	c.img.Pix[offset+3] = col.A
}

// Line draws from a to b including both ends using Bresenham's algorithm.
func (c *Canvas) Line(a, b image.Point, col color.RGBA) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := sign(b.X-a.X), sign(b.Y-a.Y)
	e := dx + dy
	x, y := a.X, a.Y
	for {
		c.set(x, y, col)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// Dot fills the square of side 2r+1 around p.
func (c *Canvas) Dot(p image.Point, r int, col color.RGBA) {
	b := image.Rect(p.X-r, p.Y-r, p.X+r+1, p.Y+r+1).Intersect(c.img.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c.set(x, y, col)
		}
	}
}

// OrderColor returns the paint color of the i-th of n segments in painter's
// order: the farthest is blue, the nearest red.
func OrderColor(i, n int) color.RGBA {
	t := float32(1)
	if n > 1 {
		t = math.Clamp(0, float32(i)/float32(n-1), 1)
	}
	return color.RGBA{
		R: uint8(255 * t),
		G: 0,
		B: uint8(255 * (1 - t)),
		A: 255,
	}
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func sign(a int) int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	}
	return 0
}
