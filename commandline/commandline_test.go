// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"io"
	"testing"

	"bspview/math/vec"
)

func TestVecFlag(t *testing.T) {
	var flags flag.FlagSet
	flags.Init("test", flag.ContinueOnError)
	a := vecFlag{}
	b := vecFlag{}
	c := vecFlag{true, vec.Vec2{X: 1, Y: 2}}
	flags.Var(&a, "a", "usage")
	flags.Var(&b, "b", "usage")
	flags.Var(&c, "c", "usage")
	if err := flags.Parse([]string{"-a", "3,-4.5", "-b= 0.25 , 7"}); err != nil {
		t.Error(err)
	}
	if a.set != true {
		t.Errorf("a.set = %v", a.set)
	}
	if a.v != (vec.Vec2{X: 3, Y: -4.5}) {
		t.Errorf("a.v = %v", a.v)
	}
	if b.v != (vec.Vec2{X: 0.25, Y: 7}) {
		t.Errorf("b.v = %v", b.v)
	}
	if c.set != true || c.v != (vec.Vec2{X: 1, Y: 2}) {
		t.Errorf("c = %v", c)
	}
	if got := a.String(); got != "3,-4.5" {
		t.Errorf("a.String() = %q", got)
	}
}

func TestVecFlagErrors(t *testing.T) {
	for _, s := range []string{"", "1", "1;2", "x,2", "1,y"} {
		var f vecFlag
		if err := f.Set(s); err == nil {
			t.Errorf("Set(%q) = nil, want error", s)
		}
		if f.set {
			t.Errorf("Set(%q) marked the flag as set", s)
		}
	}
}

func TestFormatFlag(t *testing.T) {
	var flags flag.FlagSet
	flags.Init("test", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	v := "text"
	flags.Var(formatFlag{&v, []string{"text", "json"}}, "f", "usage")
	if err := flags.Parse([]string{"-f", "json"}); err != nil {
		t.Error(err)
	}
	if v != "json" {
		t.Errorf("v = %q, want json", v)
	}
	if err := flags.Parse([]string{"-f", "xml"}); err == nil {
		t.Errorf("Parse(-f xml) = nil, want error")
	}
	if v != "json" {
		t.Errorf("v = %q after rejected value, want json", v)
	}
}

func TestSizeFlag(t *testing.T) {
	var flags flag.FlagSet
	flags.Init("test", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	w := sizeFlag(500)
	flags.Var(&w, "w", "usage")
	if err := flags.Parse([]string{"-w", "640"}); err != nil {
		t.Error(err)
	}
	if w != 640 {
		t.Errorf("w = %v, want 640", w)
	}
	for _, arg := range []string{"1", "0", "-5", "x"} {
		if err := flags.Parse([]string{"-w", arg}); err == nil {
			t.Errorf("Parse(-w %s) = nil, want error", arg)
		}
		if w != 640 {
			t.Errorf("w = %v after rejected %s, want 640", w, arg)
		}
	}
}
