// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog is the sink for user facing output.
package conlog

import (
	"fmt"
	"os"
)

var (
	p = func(format string, v ...interface{}) {
		fmt.Fprintf(os.Stdout, format, v...)
	}
	w = func(b []byte) (int, error) {
		return os.Stdout.Write(b)
	}
)

func SetPrintf(f func(string, ...interface{})) {
	p = f
}

// SetWriter replaces the sink used for raw output.
func SetWriter(f func([]byte) (int, error)) {
	w = f
}

func Printf(format string, v ...interface{}) {
	p(format, v...)
}

// Write sends b unchanged, used for binary output.
func Write(b []byte) error {
	_, err := w(b)
	return err
}
