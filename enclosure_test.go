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
	"image"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/contour/stitch"
)

// fillPaths rasterizes closed contour paths into an alpha mask.
// Grid coordinates are multiplied by scale.
func fillPaths(paths []*stitch.Path, w, h int, scale float32) *image.Alpha {
	r := vector.NewRasterizer(w, h)
	for _, p := range paths {
		for cmd, pts := range p.Iter() {
			x, y := float32(pts[0].X)*scale, float32(pts[0].Y)*scale
			switch cmd {
			case path.CmdMoveTo:
				r.MoveTo(x, y)
			case path.CmdLineTo:
				r.LineTo(x, y)
			}
		}
		r.ClosePath()
	}
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

func TestContourEnclosesPeak(t *testing.T) {
	g := SampleGrid(21, 21, func(x, y float64) float64 {
		dx, dy := x-10, y-10
		return math.Exp(-(dx*dx + dy*dy) / 20)
	})

	for _, triangles := range []bool{false, true} {
		d := NewDetector(g)
		d.UseTriangles = triangles
		paths, err := d.DetectContourPaths(0.5)
		if err != nil {
			t.Fatal(err)
		}
		if len(paths) != 1 || !paths[0].IsClosed(d.PathEpsilon) {
			t.Fatalf("triangles=%t: expected a single closed path", triangles)
		}

		const scale = 10
		mask := fillPaths(paths, 200, 200, scale)

		// The contour is close to a circle of radius sqrt(20*ln(2)) around
		// the peak at (10, 10).
		radius := math.Sqrt(20 * math.Ln2)
		inside := []image.Point{{100, 100}, {100 + int(scale*(radius-0.5)), 100}, {100, 100 - int(scale*(radius-0.5))}}
		outside := []image.Point{{5, 5}, {100 + int(scale*(radius+0.5)), 100}, {195, 195}}
		for _, pt := range inside {
			if a := mask.AlphaAt(pt.X, pt.Y).A; a < 200 {
				t.Errorf("triangles=%t: pixel %v has coverage %d, want inside", triangles, pt, a)
			}
		}
		for _, pt := range outside {
			if a := mask.AlphaAt(pt.X, pt.Y).A; a > 50 {
				t.Errorf("triangles=%t: pixel %v has coverage %d, want outside", triangles, pt, a)
			}
		}
	}
}

func TestCloseAboveEnclosesHighRegion(t *testing.T) {
	g := SampleGrid(5, 2, func(x, _ float64) float64 { return x })

	d := NewDetector(g)
	d.CloseGap = CloseAbove
	paths, err := d.DetectContourPaths(2.5)
	if err != nil {
		t.Fatal(err)
	}

	const scale = 10
	mask := fillPaths(paths, 40, 10, scale)
	if a := mask.AlphaAt(35, 5).A; a < 200 {
		t.Errorf("high region not covered: %d", a)
	}
	if a := mask.AlphaAt(15, 5).A; a != 0 {
		t.Errorf("low region covered: %d", a)
	}

	d.CloseGap = CloseBelow
	paths, err = d.DetectContourPaths(2.5)
	if err != nil {
		t.Fatal(err)
	}
	mask = fillPaths(paths, 40, 10, scale)
	if a := mask.AlphaAt(15, 5).A; a < 200 {
		t.Errorf("low region not covered: %d", a)
	}
	if a := mask.AlphaAt(35, 5).A; a != 0 {
		t.Errorf("high region covered: %d", a)
	}
}
