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

// Package stitch assembles unordered line segments into connected paths.
//
// The algorithm in [DetectPaths] works on any collection of values which
// implement [PathSegment]; it is used by the contour detector, but does not
// depend on it.
package stitch

import (
	"seehuhn.de/go/geom/vec"
)

// PathSegment is a directed piece of a path.
type PathSegment interface {
	// Start returns the first point of the segment.
	Start() vec.Vec2

	// End returns the last point of the segment.
	End() vec.Vec2

	// Clone returns an independent copy of the segment.
	Clone() PathSegment

	// Reversed returns a copy of the segment which runs from End to Start.
	// The receiver is not modified.
	Reversed() PathSegment
}

// Segment is a straight line segment from A to B.
type Segment struct {
	A, B vec.Vec2
}

// Start implements the [PathSegment] interface.
func (s Segment) Start() vec.Vec2 { return s.A }

// End implements the [PathSegment] interface.
func (s Segment) End() vec.Vec2 { return s.B }

// Clone implements the [PathSegment] interface.
func (s Segment) Clone() PathSegment { return s }

// Reversed implements the [PathSegment] interface.
func (s Segment) Reversed() PathSegment { return Segment{A: s.B, B: s.A} }

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.B.Sub(s.A).Length()
}

// touches reports whether p and q are at most eps apart.
func touches(p, q vec.Vec2, eps float64) bool {
	return p.Sub(q).Length() <= eps
}
