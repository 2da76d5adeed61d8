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

package testcases

// TestCase defines a single contour detection test.
type TestCase struct {
	Name      string      // lowercase a-z and _ only
	Values    [][]float64 // node values, one slice per grid row
	Level     float64     // the contour level
	Close     Closing     // how contours are closed at the grid border
	Triangles bool        // split cells into triangles

	Paths  int // expected number of paths, or -1 if not checked
	Closed int // expected number of closed paths, or -1 if not checked
}

// Closing specifies how contours are closed at the grid border.
type Closing int

const (
	CloseNone Closing = iota
	CloseAbove
	CloseBelow
)

// sample evaluates f at the nodes of a cols x rows grid.
func sample(cols, rows int, f func(x, y float64) float64) [][]float64 {
	values := make([][]float64, rows)
	for y := range rows {
		values[y] = make([]float64, cols)
		for x := range cols {
			values[y][x] = f(float64(x), float64(y))
		}
	}
	return values
}

// ramp returns a grid with two rows, where the value of each node equals
// its x coordinate.
func ramp(cols int) [][]float64 {
	return sample(cols, 2, func(x, _ float64) float64 { return x })
}
