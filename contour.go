// Package contour extracts isolines from rectangular grids of scalar values.
//
// The grid is scanned cell by cell, marching-squares style, to find short
// line segments where the field crosses a given level.  Optionally, the
// segments are completed along the outer border of the grid.  Finally, the
// segments are joined into maximal paths using [stitch.DetectPaths].
package contour

import "seehuhn.de/go/contour/stitch"

// DetectContourPaths returns the contour lines of f at the given level,
// using the default options of [NewDetector].
func DetectContourPaths(f Field, level float64) ([]*stitch.Path, error) {
	return NewDetector(f).DetectContourPaths(level)
}
