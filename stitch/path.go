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

package stitch

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrDisconnected is returned by [NewPath] when two consecutive segments
// do not meet.
var ErrDisconnected = errors.New("segments are not connected")

// Path is a sequence of connected segments.
//
// For every pair of consecutive segments, the end point of the first one
// is within the epsilon used at construction time of the start point of
// the second one.  Paths are only created by [NewPath] and [DetectPaths],
// both of which establish this condition.
//
// A Path is itself a [PathSegment], running from the start of its first
// segment to the end of its last segment.
type Path struct {
	segs []PathSegment
}

// NewPath returns a path consisting of the given segments, in order.
// An error wrapping [ErrDisconnected] is returned if a segment does not start
// within eps of the end of its predecessor.
func NewPath(eps float64, segs ...PathSegment) (*Path, error) {
	for i := 1; i < len(segs); i++ {
		if !touches(segs[i-1].End(), segs[i].Start(), eps) {
			return nil, fmt.Errorf("segment %d: %w", i, ErrDisconnected)
		}
	}
	p := &Path{segs: make([]PathSegment, len(segs))}
	copy(p.segs, segs)
	return p, nil
}

// Len returns the number of segments in the path.
func (p *Path) Len() int {
	return len(p.segs)
}

// Segments returns the segments of the path, in order.
// The returned slice must not be modified.
func (p *Path) Segments() []PathSegment {
	return p.segs
}

// Start implements the [PathSegment] interface.
// For an empty path, the zero vector is returned.
func (p *Path) Start() vec.Vec2 {
	if len(p.segs) == 0 {
		return vec.Vec2{}
	}
	return p.segs[0].Start()
}

// End implements the [PathSegment] interface.
// For an empty path, the zero vector is returned.
func (p *Path) End() vec.Vec2 {
	if len(p.segs) == 0 {
		return vec.Vec2{}
	}
	return p.segs[len(p.segs)-1].End()
}

// Clone implements the [PathSegment] interface.
func (p *Path) Clone() PathSegment {
	res := &Path{segs: make([]PathSegment, len(p.segs))}
	for i, s := range p.segs {
		res.segs[i] = s.Clone()
	}
	return res
}

// Reversed implements the [PathSegment] interface.
// The result visits the segments in the opposite order, each of them
// reversed.
func (p *Path) Reversed() PathSegment {
	n := len(p.segs)
	res := &Path{segs: make([]PathSegment, n)}
	for i, s := range p.segs {
		res.segs[n-1-i] = s.Reversed()
	}
	return res
}

// IsClosed reports whether the path ends within eps of its start.
// Empty paths are not closed.
func (p *Path) IsClosed(eps float64) bool {
	if len(p.segs) == 0 {
		return false
	}
	return touches(p.Start(), p.End(), eps)
}

// Length returns the total length of the path.
// Segments other than [Segment] and [*Path] are measured from start to end.
func (p *Path) Length() float64 {
	var total float64
	for _, s := range p.segs {
		switch s := s.(type) {
		case Segment:
			total += s.Length()
		case *Path:
			total += s.Length()
		default:
			total += s.End().Sub(s.Start()).Length()
		}
	}
	return total
}

// Points returns the vertices of the path: the start point, followed by
// the end point of every segment.  Nested paths contribute all of their
// vertices.
func (p *Path) Points() []vec.Vec2 {
	if len(p.segs) == 0 {
		return nil
	}
	pts := make([]vec.Vec2, 0, len(p.segs)+1)
	pts = append(pts, p.Start())
	return p.appendPoints(pts)
}

// appendPoints appends all vertices after the start point to pts.
func (p *Path) appendPoints(pts []vec.Vec2) []vec.Vec2 {
	for _, s := range p.segs {
		if sub, ok := s.(*Path); ok {
			pts = sub.appendPoints(pts)
		} else {
			pts = append(pts, s.End())
		}
	}
	return pts
}

// BBox returns the smallest rectangle containing all vertices of the path.
// For an empty path, the zero rectangle is returned.
func (p *Path) BBox() rect.Rect {
	pts := p.Points()
	if len(pts) == 0 {
		return rect.Rect{}
	}
	bbox := rect.Rect{
		LLx: math.Inf(1),
		LLy: math.Inf(1),
		URx: math.Inf(-1),
		URy: math.Inf(-1),
	}
	for _, pt := range pts {
		bbox.LLx = min(bbox.LLx, pt.X)
		bbox.LLy = min(bbox.LLy, pt.Y)
		bbox.URx = max(bbox.URx, pt.X)
		bbox.URy = max(bbox.URy, pt.Y)
	}
	return bbox
}

// Iter returns the path as a polyline: one MoveTo followed by a LineTo for
// every vertex.  No ClosePath is emitted, closed paths end on their start
// point instead.
func (p *Path) Iter() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		pts := p.Points()
		if len(pts) == 0 {
			return
		}

		var buf [1]vec.Vec2 // reused for each yield
		buf[0] = pts[0]
		if !yield(path.CmdMoveTo, buf[:]) {
			return
		}
		for _, pt := range pts[1:] {
			buf[0] = pt
			if !yield(path.CmdLineTo, buf[:]) {
				return
			}
		}
	}
}
