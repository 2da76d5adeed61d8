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

// Command genpdf draws the contours of all test cases for visual inspection.
// It creates a PDF for each case and renders it to PNG using Ghostscript.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/testcases"
)

const outDir = "testdata/contours"

const (
	pageSize = 400.0 // longest side of the grid area, in points
	margin   = 12.0
)

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			pngPath := filepath.Join(outDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	g, err := contour.GridFromRows(tc.Values)
	if err != nil {
		return err
	}
	d := contour.NewDetector(g)
	d.UseTriangles = tc.Triangles
	switch tc.Close {
	case testcases.CloseAbove:
		d.CloseGap = contour.CloseAbove
	case testcases.CloseBelow:
		d.CloseGap = contour.CloseBelow
	}
	paths, err := d.DetectContourPaths(tc.Level)
	if err != nil {
		return err
	}

	bounds := g.Bounds()
	w, h := bounds.URx-bounds.LLx, bounds.URy-bounds.LLy
	scale := pageSize / max(w, h, 1)

	paper := &pdf.Rectangle{
		URx: w*scale + 2*margin,
		URy: h*scale + 2*margin,
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Grid coordinates have y pointing down; PDF has y pointing up.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, margin, paper.URy - margin})

	// mark the nodes at or above the level
	page.SetFillColor(color.DeviceGray(0.7))
	r := 0.06
	marked := false
	for y := range g.Rows {
		for x := range g.Cols {
			if g.ValueAt(x, y) >= tc.Level {
				page.Rectangle(float64(x)-r, float64(y)-r, 2*r, 2*r)
				marked = true
			}
		}
	}
	if marked {
		page.Fill()
	}

	page.SetLineWidth(1 / scale)
	page.SetStrokeColor(color.DeviceGray(0.5))
	page.Rectangle(bounds.LLx, bounds.LLy, w, h)
	page.Stroke()

	if len(paths) == 0 {
		return page.Close()
	}

	page.SetLineWidth(2 / scale)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	page.SetStrokeColor(color.DeviceGray(0))
	for _, p := range paths {
		for cmd, pts := range p.Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			}
		}
		if p.IsClosed(d.PathEpsilon) {
			page.ClosePath()
		}
	}
	page.Stroke()

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
