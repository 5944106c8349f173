// Copyright 2023 The postgis (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package postgis

import (
	"math"
	"strconv"
	"strings"
)

// A Box is an axis-aligned bounding rectangle in the XY plane. It is
// the result type of Geometry.Bounds.
type Box struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// EmptyBox is the empty box. It is the identity value for Expand: the
// minimums are positive infinity and the maximums are negative
// infinity, so expanding it by any point yields that point's box.
var EmptyBox = Box{
	XMin: math.Inf(1),
	YMin: math.Inf(1),
	XMax: math.Inf(-1),
	YMax: math.Inf(-1),
}

// Width returns the horizontal extent of the box.
func (b *Box) Width() float64 {
	return b.XMax - b.XMin
}

// Height returns the vertical extent of the box.
func (b *Box) Height() float64 {
	return b.YMax - b.YMin
}

// Expand grows the box to cover another box.
func (b *Box) Expand(c *Box) {
	if c.XMin < b.XMin {
		b.XMin = c.XMin
	}
	if c.YMin < b.YMin {
		b.YMin = c.YMin
	}
	if c.XMax > b.XMax {
		b.XMax = c.XMax
	}
	if c.YMax > b.YMax {
		b.YMax = c.YMax
	}
}

// ExpandXY grows the box to cover a point.
func (b *Box) ExpandXY(x, y float64) {
	if x < b.XMin {
		b.XMin = x
	}
	if y < b.YMin {
		b.YMin = y
	}
	if x > b.XMax {
		b.XMax = x
	}
	if y > b.YMax {
		b.YMax = y
	}
}

// String returns a summary of the box in [xmin,ymin,xmax,ymax] form.
func (b Box) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(strconv.FormatFloat(b.XMin, 'g', 8, 64))
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatFloat(b.YMin, 'g', 8, 64))
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatFloat(b.XMax, 'g', 8, 64))
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatFloat(b.YMax, 'g', 8, 64))
	sb.WriteByte(']')
	return sb.String()
}
