// SPDX-License-Identifier: GPL-2.0-or-later

// Package window shows a tree interactively. The viewpoint follows the mouse
// and every frame repaints the segments in back to front order.
package window

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/gopxl/mainthread/v2"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"bspview/bsp"
	"bspview/math/vec"
	"bspview/render"
)

const frameTime = time.Second / 60

type viewer struct {
	tree   *bsp.Tree
	vp     render.Viewport
	view   vec.Vec2
	dirty  bool
	window *sdl.Window
	ren    *sdl.Renderer
}

// Run opens a window of the viewport size and blocks until it is closed or
// Escape is pressed. It has to be called from within mainthread.Run.
func Run(tree *bsp.Tree, vp render.Viewport, view vec.Vec2) error {
	v := &viewer{
		tree:  tree,
		vp:    vp,
		view:  view,
		dirty: true,
	}
	if err := mainthread.CallErr(v.open); err != nil {
		return err
	}
	defer mainthread.Call(v.close)

	for {
		var quit bool
		mainthread.Call(func() { quit = v.poll() })
		if quit {
			return nil
		}
		if v.dirty {
			v.dirty = false
			segs := tree.BackToFront(v.view)
			if err := mainthread.CallErr(func() error { return v.draw(segs) }); err != nil {
				return err
			}
		}
		time.Sleep(frameTime)
	}
}

func (v *viewer) title() string {
	return fmt.Sprintf("bspview %v, view %v", v.tree.ID(), v.view)
}

func (v *viewer) open() error {
	ver := sdl.Version{}
	sdl.GetVersion(&ver)
	slog.Debug("window: found SDL", "major", ver.Major, "minor", ver.Minor, "patch", ver.Patch)
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errors.Wrap(err, "sdl init")
	}
	w, err := sdl.CreateWindow(v.title(), sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(v.vp.Width), int32(v.vp.Height), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return errors.Wrap(err, "couldn't create window")
	}
	v.window = w
	r, err := sdl.CreateRenderer(w, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		slog.Debug("window: falling back to software renderer", "err", err)
		r, err = sdl.CreateRenderer(w, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		w.Destroy()
		sdl.Quit()
		return errors.Wrap(err, "couldn't create renderer")
	}
	v.ren = r
	return nil
}

func (v *viewer) close() {
	if err := v.ren.Destroy(); err != nil {
		slog.Warn("window: destroy renderer", "err", err)
	}
	if err := v.window.Destroy(); err != nil {
		slog.Warn("window: destroy window", "err", err)
	}
	sdl.Quit()
}

// poll drains the event queue and reports whether the viewer should quit.
func (v *viewer) poll() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true
		case *sdl.KeyboardEvent:
			if e.State == sdl.PRESSED && e.Keysym.Sym == sdl.K_ESCAPE {
				return true
			}
		case *sdl.MouseMotionEvent:
			v.move(image.Pt(int(e.X), int(e.Y)))
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_EXPOSED {
				v.dirty = true
			}
		}
	}
	return false
}

func (v *viewer) move(pt image.Point) {
	view := v.vp.ToWorld(pt)
	if vec.Equal(view, v.view) {
		return
	}
	v.view = view
	v.dirty = true
	v.window.SetTitle(v.title())
}

func (v *viewer) setColor(c color.RGBA) error {
	return v.ren.SetDrawColor(c.R, c.G, c.B, c.A)
}

func (v *viewer) line(a, b image.Point) error {
	return v.ren.DrawLine(int32(a.X), int32(a.Y), int32(b.X), int32(b.Y))
}

func (v *viewer) dot(p image.Point, r int) error {
	return v.ren.FillRect(&sdl.Rect{
		X: int32(p.X - r),
		Y: int32(p.Y - r),
		W: int32(2*r + 1),
		H: int32(2*r + 1),
	})
}

// draw mirrors render.Draw on the SDL renderer.
func (v *viewer) draw(segs []*bsp.Segment) error {
	if err := v.setColor(render.Background); err != nil {
		return err
	}
	if err := v.ren.Clear(); err != nil {
		return err
	}
	for _, s := range render.Layout(v.vp, segs) {
		if err := v.setColor(s.Col); err != nil {
			return err
		}
		if err := v.line(s.Start, s.End); err != nil {
			return err
		}
		if err := v.setColor(render.NormalCol); err != nil {
			return err
		}
		if err := v.line(s.Mid, s.NormalEnd); err != nil {
			return err
		}
		if err := v.setColor(render.PointCol); err != nil {
			return err
		}
		if err := v.dot(s.Start, 2); err != nil {
			return err
		}
		if err := v.dot(s.End, 2); err != nil {
			return err
		}
	}
	if err := v.setColor(render.ViewCol); err != nil {
		return err
	}
	if err := v.dot(v.vp.ToPixel(v.view), 4); err != nil {
		return err
	}
	v.ren.Present()
	return nil
}
