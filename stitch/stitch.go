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

import "seehuhn.de/go/geom/vec"

// DefaultEpsilon is the distance below which two end points are considered
// to coincide, unless the caller specifies a different value.
const DefaultEpsilon = 1e-7

// candidate is the bookkeeping record for one input segment.
type candidate struct {
	seg            PathSegment // possibly reversed copy of the input segment
	visited        bool        // already part of an output path
	hasPredecessor bool        // some other segment touches seg.Start()
	hasSuccessor   bool        // some other segment touches seg.End()
}

// DetectPaths assembles the given segments into maximal connected paths.
//
// Two segments are joined when an end point of one lies within eps of an end
// point of the other; segments are reversed where needed, so that every
// output path runs in a consistent direction.  Paths with a free end start
// there; segments which only form closed loops are assembled starting from
// the first unused segment.  Where more than one segment could continue a
// path, the one which comes first in segs is used.
//
// Every input segment appears in exactly one output path.  The input slice
// is not modified, and the output does not share segment values with it.
// The running time is quadratic in len(segs).
func DetectPaths[S PathSegment](segs []S, eps float64) []*Path {
	n := len(segs)
	if n == 0 {
		return nil
	}

	cand := make([]candidate, n)
	for i, s := range segs {
		cand[i].seg = s.Clone()
	}
	orient(cand, eps)

	var paths []*Path
	remaining := n
	steps, maxSteps := 0, 2*n
	for remaining > 0 && steps < maxSteps {
		seed := pickSeed(cand)
		cand[seed].visited = true
		remaining--

		p := &Path{segs: []PathSegment{cand[seed].seg}}
		end := cand[seed].seg.End()
		for steps < maxSteps {
			steps++
			next, seg := findSuccessor(cand, end, eps)
			if next < 0 {
				break
			}
			cand[next].visited = true
			remaining--
			p.segs = append(p.segs, seg)
			end = seg.End()
		}
		paths = append(paths, p)
	}
	return paths
}

// orient determines, for every candidate, whether other segments touch its
// start and end points.  Segments which are only connected at their end
// point are reversed, so that they can start a path.
func orient(cand []candidate, eps float64) {
	for i := range cand {
		c := &cand[i]
		start, end := c.seg.Start(), c.seg.End()
		for j := range cand {
			if j == i {
				continue
			}
			other := cand[j].seg
			oStart, oEnd := other.Start(), other.End()
			if touches(start, oStart, eps) || touches(start, oEnd, eps) {
				c.hasPredecessor = true
			}
			if touches(end, oStart, eps) || touches(end, oEnd, eps) {
				c.hasSuccessor = true
			}
			if c.hasPredecessor && c.hasSuccessor {
				break
			}
		}

		if c.hasPredecessor && !c.hasSuccessor {
			c.seg = c.seg.Reversed()
			c.hasPredecessor, c.hasSuccessor = false, true
		}
	}
}

// pickSeed returns the index of the segment to start the next path with.
// Unvisited segments without a predecessor are preferred.  At least one
// candidate must be unvisited.
func pickSeed(cand []candidate) int {
	seed := -1
	for i := range cand {
		if cand[i].visited {
			continue
		}
		if !cand[i].hasPredecessor {
			return i
		}
		if seed < 0 {
			seed = i
		}
	}
	return seed
}

// findSuccessor returns the first unvisited segment which touches pt,
// oriented so that it starts near pt.  If there is no such segment,
// -1 is returned.
func findSuccessor(cand []candidate, pt vec.Vec2, eps float64) (int, PathSegment) {
	for j := range cand {
		if cand[j].visited {
			continue
		}
		s := cand[j].seg
		if touches(pt, s.Start(), eps) {
			return j, s
		}
		if touches(pt, s.End(), eps) {
			return j, s.Reversed()
		}
	}
	return -1, nil
}
