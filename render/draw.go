// SPDX-License-Identifier: GPL-2.0-or-later

// Package render paints segments in the order a tree hands them out. It
// never compares depths; later segments simply overpaint earlier ones.
package render

import (
	"image"
	"image/color"

	"bspview/bsp"
	"bspview/math/vec"
)

var (
	Background = color.RGBA{255, 255, 255, 255}
	NormalCol  = color.RGBA{0, 160, 0, 255}
	PointCol   = color.RGBA{0, 0, 0, 255}
	ViewCol    = color.RGBA{255, 160, 0, 255}
)

// NormalLength is the length of the normal tick in pixels.
const NormalLength = 12

// Segment is the pixel geometry of one segment.
type Segment struct {
	Start, End image.Point
	Mid        image.Point
	NormalEnd  image.Point // tip of the normal tick starting at Mid
	Col        color.RGBA
}

// Layout maps segs, already in paint order, into pixel space.
func Layout(vp Viewport, segs []*bsp.Segment) []Segment {
	r := make([]Segment, len(segs))
	for i, s := range segs {
		mid := vp.ToPixel(s.Mid())
		// the viewport flips y, so does the normal
		n := vec.Vec2{s.Normal().X, -s.Normal().Y}.Normalize().Scale(NormalLength)
		r[i] = Segment{
			Start:     vp.ToPixel(s.Start()),
			End:       vp.ToPixel(s.End()),
			Mid:       mid,
			NormalEnd: mid.Add(image.Pt(round(n.X), round(n.Y))),
			Col:       OrderColor(i, len(segs)),
		}
	}
	return r
}

// Draw clears c and paints segs in order followed by the viewpoint.
func Draw(c *Canvas, vp Viewport, segs []*bsp.Segment, view vec.Vec2) {
	c.Clear(Background)
	for _, s := range Layout(vp, segs) {
		c.Line(s.Start, s.End, s.Col)
		c.Line(s.Mid, s.NormalEnd, NormalCol)
		c.Dot(s.Start, 2, PointCol)
		c.Dot(s.End, 2, PointCol)
	}
	c.Dot(vp.ToPixel(view), 4, ViewCol)
}
