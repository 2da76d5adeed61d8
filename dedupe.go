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

import "seehuhn.de/go/geom/vec"

// Dedupe removes points which lie within eps of an earlier point of pts.
// The remaining points keep their order.  The result reuses the storage
// of pts.
//
// Applying Dedupe to its own result with the same eps returns the points
// unchanged.
func Dedupe(pts []vec.Vec2, eps float64) []vec.Vec2 {
	out := pts[:0]
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if p.Sub(q).Length() <= eps {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}
