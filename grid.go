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

	"seehuhn.de/go/geom/rect"
)

// Field is a rectangular grid of scalar samples, for example terrain heights.
//
// Nodes are addressed by integer coordinates (x, y) with 0 <= x < cols and
// 0 <= y < rows, where x grows to the right and y grows downwards.  The
// cell with top-left corner (x, y) is bounded by the four nodes (x, y),
// (x+1, y), (x+1, y+1) and (x, y+1).
//
// Values must not be NaN.  The contour detector only reads from a Field,
// so a Field which is not modified can be shared between goroutines.
type Field interface {
	// Dims returns the number of nodes along the x and y axes.
	Dims() (cols, rows int)

	// ValueAt returns the value of node (x, y).
	ValueAt(x, y int) float64

	// Face4At stores the corner values of the cell with top-left corner
	// (x, y) in buf.
	Face4At(x, y int, buf *Face4)
}

// Face4 holds the corner values of one grid cell, indexed as [row][col].
// The corners A (top-left), B (top-right), C (bottom-right) and
// D (bottom-left) are stored at [0][0], [0][1], [1][1] and [1][0].
type Face4 [2][2]float64

// Grid is a [Field] which stores its values in memory, in row-major order.
type Grid struct {
	Cols, Rows int
	Values     []float64 // len(Values) == Cols*Rows
}

// NewGrid allocates a grid with all values set to zero.
func NewGrid(cols, rows int) *Grid {
	if cols < 0 || rows < 0 {
		panic(fmt.Sprintf("contour: invalid grid size %dx%d", cols, rows))
	}
	return &Grid{
		Cols:   cols,
		Rows:   rows,
		Values: make([]float64, cols*rows),
	}
}

// GridFromRows builds a grid from a slice of rows.
// All rows must have the same length.
func GridFromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 {
		return NewGrid(0, 0), nil
	}
	cols := len(rows[0])
	g := NewGrid(cols, len(rows))
	for y, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d values, expected %d", y, len(row), cols)
		}
		copy(g.Values[y*cols:], row)
	}
	return g, nil
}

// SampleGrid builds a grid by evaluating f at every node.
func SampleGrid(cols, rows int, f func(x, y float64) float64) *Grid {
	g := NewGrid(cols, rows)
	for y := range rows {
		for x := range cols {
			g.Values[y*cols+x] = f(float64(x), float64(y))
		}
	}
	return g
}

// Dims implements the [Field] interface.
func (g *Grid) Dims() (cols, rows int) {
	return g.Cols, g.Rows
}

// ValueAt implements the [Field] interface.
func (g *Grid) ValueAt(x, y int) float64 {
	return g.Values[y*g.Cols+x]
}

// Face4At implements the [Field] interface.
func (g *Grid) Face4At(x, y int, buf *Face4) {
	i := y*g.Cols + x
	buf[0][0] = g.Values[i]
	buf[0][1] = g.Values[i+1]
	buf[1][0] = g.Values[i+g.Cols]
	buf[1][1] = g.Values[i+g.Cols+1]
}

// Set changes the value of node (x, y).
func (g *Grid) Set(x, y int, v float64) {
	if x < 0 || x >= g.Cols || y < 0 || y >= g.Rows {
		panic(fmt.Sprintf("contour: node (%d,%d) outside %dx%d grid", x, y, g.Cols, g.Rows))
	}
	g.Values[y*g.Cols+x] = v
}

// Bounds returns the rectangle covered by the grid, in grid coordinates.
func (g *Grid) Bounds() rect.Rect {
	return gridBounds(g)
}

// Range returns the smallest and largest value of the grid.
// See [FieldRange].
func (g *Grid) Range() (lo, hi float64, err error) {
	return FieldRange(g)
}

// FieldRange returns the smallest and largest node value of f.
// If a node value is NaN, an error wrapping [ErrUndefinedValue] is returned.
// For a field without nodes, lo is +Inf and hi is -Inf.
func FieldRange(f Field) (lo, hi float64, err error) {
	cols, rows := f.Dims()
	lo, hi = math.Inf(1), math.Inf(-1)
	for y := range rows {
		for x := range cols {
			v := f.ValueAt(x, y)
			if math.IsNaN(v) {
				return 0, 0, &NodeError{X: x, Y: y, Err: ErrUndefinedValue}
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	return lo, hi, nil
}

func gridBounds(f Field) rect.Rect {
	cols, rows := f.Dims()
	return rect.Rect{
		URx: float64(max(cols-1, 0)),
		URy: float64(max(rows-1, 0)),
	}
}
