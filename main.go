// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gopxl/mainthread/v2"

	"bspview/bsp"
	cmdl "bspview/commandline"
	"bspview/conlog"
	"bspview/drawlist"
	"bspview/math/vec"
	"bspview/render"
	"bspview/scene"
	"bspview/window"
)

func loadWorld() (*scene.World, error) {
	if cmdl.Scene() == "" {
		return scene.Default(), nil
	}
	return scene.LoadFile(cmdl.Scene())
}

func printOrder(tree *bsp.Tree, view vec.Vec2, set bool) error {
	switch cmdl.Format() {
	case "json":
		b, err := drawlist.New(tree, view).MarshalJSON()
		if err != nil {
			return err
		}
		conlog.Printf("%s\n", b)
	case "proto":
		b, err := drawlist.New(tree, view).Marshal()
		if err != nil {
			return err
		}
		return conlog.Write(b)
	default:
		segs := tree.Segments()
		if set {
			conlog.Printf("Back to front from %v:\n", view)
			segs = tree.BackToFront(view)
		}
		for _, s := range segs {
			conlog.Printf("  %v\n", s)
		}
	}
	return nil
}

func run() error {
	w, err := loadWorld()
	if err != nil {
		return err
	}
	tree, err := bsp.Build(w.Segments)
	if err != nil {
		return err
	}
	st := tree.Stats()
	if cmdl.Format() == "text" {
		conlog.Printf("World segments: %d Partitioned segments: %d\n", st.Input, st.Retained)
		conlog.Printf("Nodes: %d Depth: %d Splits: %d\n", st.Nodes, st.Depth, st.Splits)
	}

	view, set := cmdl.View()
	if !set {
		view = vec.Lerp(w.Min, w.Max, 0.5)
	}
	if err := printOrder(tree, view, set); err != nil {
		return err
	}

	vp := render.NewViewport(w.Min, w.Max, cmdl.Width(), cmdl.Height())
	if name := cmdl.PNG(); name != "" {
		c := render.NewCanvas(vp.Width, vp.Height)
		render.Draw(c, vp, tree.BackToFront(view), view)
		if err := render.WritePNG(name, c.Image()); err != nil {
			return err
		}
	}
	if cmdl.Window() {
		return window.Run(tree, vp, view)
	}
	return nil
}

func main() {
	flag.Parse()
	level := slog.LevelInfo
	if cmdl.Debug() {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	mainthread.Run(func() {
		if err := run(); err != nil {
			log.Fatalf("bspview: %v", err)
		}
	})
}
