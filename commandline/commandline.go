// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"bspview/math/vec"
)

var (
	debug  bool
	window bool

	view = vecFlag{}

	height = sizeFlag(500)
	width  = sizeFlag(500)

	format string
	png    string
	scene  string
)

// vecFlag accepts "x,y".
type vecFlag struct {
	set bool
	v   vec.Vec2
}

func (f *vecFlag) Set(s string) error {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("want x,y, got %q", s)
	}
	fx, err := strconv.ParseFloat(strings.TrimSpace(x), 32)
	if err != nil {
		return err
	}
	fy, err := strconv.ParseFloat(strings.TrimSpace(y), 32)
	if err != nil {
		return err
	}
	f.set = true
	f.v = vec.Vec2{X: float32(fx), Y: float32(fy)}
	return nil
}

func (f *vecFlag) String() string {
	return fmt.Sprintf("%g,%g", f.v.X, f.v.Y)
}

// sizeFlag is a pixel count of at least two.
type sizeFlag int

func (f *sizeFlag) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v < 2 {
		return fmt.Errorf("want at least 2 pixels, got %d", v)
	}
	*f = sizeFlag(v)
	return nil
}

func (f *sizeFlag) String() string {
	return strconv.Itoa(int(*f))
}

// formatFlag restricts a string flag to a fixed set of values.
type formatFlag struct {
	dst     *string
	allowed []string
}

func (f formatFlag) Set(s string) error {
	for _, a := range f.allowed {
		if s == a {
			*f.dst = s
			return nil
		}
	}
	return fmt.Errorf("want one of %s", strings.Join(f.allowed, "|"))
}

func (f formatFlag) String() string {
	if f.dst == nil {
		return ""
	}
	return *f.dst
}

func init() {
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.BoolVar(&window, "window", false, "open the interactive viewer")
	flag.BoolVar(&window, "w", false, "")

	flag.Var(&view, "view", "viewpoint as x,y")

	flag.Var(&height, "height", "picture and window height")
	flag.Var(&width, "width", "picture and window width")

	format = "text"
	flag.Var(formatFlag{&format, []string{"text", "json", "proto"}}, "format", "ordering output: text|json|proto")
	flag.StringVar(&png, "png", "", "write the painter's order picture to this file")
	flag.StringVar(&scene, "scene", "", "scene file, archive.pak:entry reads from a pak, empty is the built-in scene")
}

func Debug() bool {
	return debug
}

func Window() bool {
	return window
}

// View returns the viewpoint and whether it was set at all.
func View() (vec.Vec2, bool) {
	return view.v, view.set
}

func Height() int {
	return int(height)
}

func Width() int {
	return int(width)
}

func Format() string {
	return format
}

func PNG() string {
	return png
}

func Scene() string {
	return scene
}
