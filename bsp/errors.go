// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"github.com/pkg/errors"
)

var (
	// ErrDegenerate is returned for zero length segments and null normals.
	ErrDegenerate = errors.New("degenerate geometry")
	// ErrInvariant is returned when a segment classified as intersecting a
	// plane could not be split by it. It indicates a bug.
	ErrInvariant = errors.New("bsp invariant violated")
	// ErrExhausted is returned by Iterator.Next after the last segment.
	ErrExhausted = errors.New("no more segments")
)
