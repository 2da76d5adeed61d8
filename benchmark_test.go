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
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/contour/stitch"
	"seehuhn.de/go/contour/testcases"
)

// BenchmarkDetect benchmarks contour detection on a field with many
// closed and open isolines.
func BenchmarkDetect(b *testing.B) {
	sizes := []int{20, 200, 1000}

	for _, size := range sizes {
		g := SampleGrid(size, size, func(x, y float64) float64 {
			return math.Sin(x/7) * math.Cos(y/5)
		})
		for _, triangles := range []bool{false, true} {
			name := fmt.Sprintf("%dx%d/quad", size, size)
			if triangles {
				name = fmt.Sprintf("%dx%d/triangles", size, size)
			}
			b.Run(name, func(b *testing.B) {
				d := NewDetector(g)
				d.UseTriangles = triangles

				b.ReportAllocs()
				for b.Loop() {
					if _, err := d.DetectContourPaths(0.3); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkStitch measures path stitching alone, on the raw segments
// of a single large ring.
func BenchmarkStitch(b *testing.B) {
	sizes := []int{50, 200, 500}

	for _, size := range sizes {
		c := float64(size-1) / 2
		g := SampleGrid(size, size, func(x, y float64) float64 {
			return math.Hypot(x-c, y-c)
		})
		var raw []stitch.Segment
		d := NewDetector(g)
		d.OnRawSegments = func(segs []stitch.Segment) { raw = segs }
		if _, err := d.DetectContourPaths(c * 0.8); err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("%dsegs", len(raw)), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				stitch.DetectPaths(raw, stitch.DefaultEpsilon)
			}
		})
	}
}

// BenchmarkAllCases runs detection over the full test case collection.
func BenchmarkAllCases(b *testing.B) {
	var ds []*Detector
	var levels []float64
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			ds = append(ds, detectorFor(b, tc))
			levels = append(levels, tc.Level)
		}
	}

	b.ReportAllocs()
	for b.Loop() {
		for i, d := range ds {
			if _, err := d.DetectContourPaths(levels[i]); err != nil {
				b.Fatal(err)
			}
		}
	}
}
