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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour/stitch"
)

// faceIntersector finds the contour segment within a single quad or
// triangle.  One value is used for all cells of one detection run.
type faceIntersector struct {
	level float64
	eps   float64 // points closer than this are merged
	debug bool    // log degenerate cells

	pts []vec.Vec2 // scratch buffer, reused for every face
}

// appendQuad appends the contour segment of the cell with top-left
// corner (x, y), if any, to segs.
func (fi *faceIntersector) appendQuad(segs []stitch.Segment, x, y int, face *Face4) []stitch.Segment {
	a, b, c, d := face[0][0], face[0][1], face[1][1], face[1][0]
	if a > fi.level && b > fi.level && c > fi.level && d > fi.level {
		return segs
	}
	if a < fi.level && b < fi.level && c < fi.level && d < fi.level {
		return segs
	}

	fx, fy := float64(x), float64(y)
	pos := [4]vec.Vec2{
		{X: fx, Y: fy},
		{X: fx + 1, Y: fy},
		{X: fx + 1, Y: fy + 1},
		{X: fx, Y: fy + 1},
	}
	val := [4]float64{a, b, c, d}
	if s, ok := fi.face(x, y, pos[:], val[:]); ok {
		segs = append(segs, s)
	}
	return segs
}

// appendTriangles splits the cell with top-left corner (x, y) along the
// diagonal from A to C, and appends the contour segments of the lower-left
// and the upper-right triangle, in this order.
func (fi *faceIntersector) appendTriangles(segs []stitch.Segment, x, y int, face *Face4) []stitch.Segment {
	fx, fy := float64(x), float64(y)
	pa := vec.Vec2{X: fx, Y: fy}
	pb := vec.Vec2{X: fx + 1, Y: fy}
	pc := vec.Vec2{X: fx + 1, Y: fy + 1}
	pd := vec.Vec2{X: fx, Y: fy + 1}
	a, b, c, d := face[0][0], face[0][1], face[1][1], face[1][0]

	lower := [3]vec.Vec2{pa, pc, pd}
	if s, ok := fi.face(x, y, lower[:], []float64{a, c, d}); ok {
		segs = append(segs, s)
	}
	upper := [3]vec.Vec2{pa, pb, pc}
	if s, ok := fi.face(x, y, upper[:], []float64{a, b, c}); ok {
		segs = append(segs, s)
	}
	return segs
}

// face computes where the polygon with corners pos and corner values val
// crosses the level.  If exactly two distinct crossing points are found,
// the segment joining them is returned.  If more points are found, the
// first two are used.
func (fi *faceIntersector) face(x, y int, pos []vec.Vec2, val []float64) (stitch.Segment, bool) {
	fi.pts = fi.pts[:0]
	n := len(pos)
	for i := range n {
		j := (i + 1) % n
		if p, ok := crossing(pos[i], pos[j], val[i], val[j], fi.level); ok {
			fi.pts = append(fi.pts, p)
		}
	}
	fi.pts = Dedupe(fi.pts, fi.eps)

	switch len(fi.pts) {
	case 0:
		return stitch.Segment{}, false
	case 1:
		if fi.debug {
			Logger().Debug("contour touches a single corner",
				"x", x, "y", y, "corners", n, "point", fi.pts[0])
		}
		return stitch.Segment{}, false
	case 2:
		// the common case
	default:
		if fi.debug {
			Logger().Debug("ambiguous cell, extra crossings ignored",
				"x", x, "y", y, "corners", n, "crossings", len(fi.pts))
		}
	}
	return stitch.Segment{A: fi.pts[0], B: fi.pts[1]}, true
}

// crossing returns the point on the edge from p0 to p1 where the linearly
// interpolated value equals level.  The second return value is false if
// level is not between v0 and v1.  If v0 == v1 == level, p0 is returned.
func crossing(p0, p1 vec.Vec2, v0, v1, level float64) (vec.Vec2, bool) {
	if (level < v0 || level > v1) && (level < v1 || level > v0) {
		return vec.Vec2{}, false
	}
	if v0 == v1 {
		return p0, true
	}
	t := (level - v0) / (v1 - v0)
	return p0.Add(p1.Sub(p0).Mul(t)), true
}
