// SPDX-License-Identifier: GPL-2.0-or-later

// Package scene loads the segments a tree is built from.
//
// A scene file holds one segment per line:
//
//	x0 y0 x1 y1 [name]
//
// Empty lines and comments starting with '#' or '//' are skipped. Names
// containing spaces can be quoted.
package scene

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"

	"bspview/bsp"
	"bspview/math/vec"
	"bspview/pack"
)

// World is a loaded scene.
type World struct {
	Segments []*bsp.Segment
	Min, Max vec.Vec2 // bounds of all endpoints
}

// NewWorld computes the bounds of segs.
func NewWorld(segs []*bsp.Segment) *World {
	w := &World{Segments: segs}
	for i, s := range segs {
		lo, hi := vec.MinMax(s.Start(), s.End())
		if i == 0 {
			w.Min, w.Max = lo, hi
			continue
		}
		w.Min, _ = vec.MinMax(w.Min, lo)
		_, w.Max = vec.MinMax(w.Max, hi)
	}
	return w
}

// Default returns the three segment scene A, B, C where C crosses A.
func Default() *World {
	mk := func(name string, x0, y0, x1, y1 float32) *bsp.Segment {
		s, err := bsp.NewSegment(name, vec.Vec2{x0, y0}, vec.Vec2{x1, y1})
		if err != nil {
			panic(err)
		}
		return s
	}
	return NewWorld([]*bsp.Segment{
		mk("A", 0, 0, 0, 1),
		mk("B", 0, 0, 1, 0),
		mk("C", -1, -1, 1, 1),
	})
}

// Parse reads a scene. Malformed lines are logged and skipped, a zero length
// or non finite segment fails the whole scene with bsp.ErrDegenerate.
func Parse(r io.Reader) (*World, error) {
	var segs []*bsp.Segment
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		f, err := fields(line)
		if err != nil {
			slog.Warn("scene: malformed line", "line", n, "text", line, "err", err)
			continue
		}
		if len(f) == 0 {
			continue
		}
		if len(f) < 4 {
			slog.Warn("scene: malformed line", "line", n, "text", line)
			continue
		}
		var c [4]float32
		for i := range c {
			if c[i], err = f[i].Float32(); err != nil {
				break
			}
		}
		if err != nil {
			slog.Warn("scene: malformed line", "line", n, "text", line, "err", err)
			continue
		}
		name := ""
		if len(f) > 4 {
			name = f[4].String()
		}
		s, err := bsp.NewSegment(name, vec.Vec2{c[0], c[1]}, vec.Vec2{c[2], c[3]})
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
		segs = append(segs, s)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading scene")
	}
	return NewWorld(segs), nil
}

// LoadFile reads the scene at path. A path of the form "archive.pak:entry"
// reads entry from a pak archive.
func LoadFile(path string) (*World, error) {
	if archive, entry, ok := splitPak(path); ok {
		p, err := pack.Open(archive)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s", archive)
		}
		defer p.Close()
		r, err := p.Open(entry)
		if err != nil {
			return nil, errors.Wrapf(err, "%s in %s", entry, archive)
		}
		w, err := Parse(r)
		return w, errors.Wrap(err, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	w, err := Parse(f)
	return w, errors.Wrap(err, path)
}

func splitPak(path string) (string, string, bool) {
	i := strings.Index(strings.ToLower(path), ".pak:")
	if i < 0 {
		return "", "", false
	}
	return path[:i+4], path[i+5:], true
}
