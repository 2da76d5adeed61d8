// seehuhn.de/go/contour - isolines of scalar grids
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package contour

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour/stitch"
)

// CloseGap selects how contours which reach the outer border of the grid
// are closed.
type CloseGap int

const (
	// CloseNone leaves contours open where they reach the border.
	CloseNone CloseGap = iota

	// CloseAbove adds the parts of the border where the field is at or
	// above the level, so that contours enclose the high regions.
	CloseAbove

	// CloseBelow adds the parts of the border where the field is at or
	// below the level, so that contours enclose the low regions.
	CloseBelow
)

func (c CloseGap) String() string {
	switch c {
	case CloseNone:
		return "none"
	case CloseAbove:
		return "above"
	case CloseBelow:
		return "below"
	default:
		return fmt.Sprintf("CloseGap(%d)", int(c))
	}
}

// covers reports whether a node with value v lies on the closed side of
// the level.
func (c CloseGap) covers(v, level float64) bool {
	switch c {
	case CloseAbove:
		return v >= level
	case CloseBelow:
		return v <= level
	default:
		return false
	}
}

// borderCloser appends the border segments for one detection run.
type borderCloser struct {
	field Field
	mode  CloseGap
	level float64
	eps   float64
}

// appendBorder walks along the four sides of the grid (left column and
// right column top to bottom, then top row and bottom row left to right)
// and appends the segments on the closed side of the level to segs.
func (bc *borderCloser) appendBorder(segs []stitch.Segment) ([]stitch.Segment, error) {
	cols, rows := bc.field.Dims()
	var err error

	for _, x := range []int{0, cols - 1} {
		for y := range rows - 1 {
			segs, err = bc.appendEdge(segs, x, y, x, y+1)
			if err != nil {
				return nil, err
			}
		}
	}
	for _, y := range []int{0, rows - 1} {
		for x := range cols - 1 {
			segs, err = bc.appendEdge(segs, x, y, x+1, y)
			if err != nil {
				return nil, err
			}
		}
	}
	return segs, nil
}

// appendEdge handles the border edge between nodes (x0, y0) and (x1, y1).
// If both nodes are on the closed side, the whole edge is appended.  If
// only one of them is, the part from this node to the crossing point is
// appended.
func (bc *borderCloser) appendEdge(segs []stitch.Segment, x0, y0, x1, y1 int) ([]stitch.Segment, error) {
	v0 := bc.field.ValueAt(x0, y0)
	if math.IsNaN(v0) {
		return nil, &NodeError{X: x0, Y: y0, Err: ErrUndefinedValue}
	}
	v1 := bc.field.ValueAt(x1, y1)
	if math.IsNaN(v1) {
		return nil, &NodeError{X: x1, Y: y1, Err: ErrUndefinedValue}
	}

	p0 := vec.Vec2{X: float64(x0), Y: float64(y0)}
	p1 := vec.Vec2{X: float64(x1), Y: float64(y1)}
	in0 := bc.mode.covers(v0, bc.level)
	in1 := bc.mode.covers(v1, bc.level)
	switch {
	case in0 && in1:
		segs = append(segs, stitch.Segment{A: p0, B: p1})
	case in0:
		if c, ok := crossing(p0, p1, v0, v1, bc.level); ok && c.Sub(p0).Length() > bc.eps {
			segs = append(segs, stitch.Segment{A: p0, B: c})
		}
	case in1:
		if c, ok := crossing(p0, p1, v0, v1, bc.level); ok && c.Sub(p1).Length() > bc.eps {
			segs = append(segs, stitch.Segment{A: p1, B: c})
		}
	}
	return segs, nil
}
