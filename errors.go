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
	"errors"
	"fmt"
)

// ErrUndefinedValue indicates that a [Field] returned NaN for a node.
// This is a bug in the Field implementation.
var ErrUndefinedValue = errors.New("undefined grid value")

// CellError is returned when the corner values of a grid cell cannot be
// used.  The cell is identified by its top-left node.
type CellError struct {
	X, Y int
	Err  error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("contour: cell (%d,%d): %v", e.X, e.Y, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// NodeError is returned when the value of a single grid node cannot be used.
type NodeError struct {
	X, Y int
	Err  error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("contour: node (%d,%d): %v", e.X, e.Y, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}
