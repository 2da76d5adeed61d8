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
	"slices"

	"seehuhn.de/go/contour/stitch"
)

// Detector finds the contour lines of a scalar field.
//
// A Detector only holds configuration.  Every call to DetectContourPaths
// uses its own buffers, so one Detector can be used by several goroutines
// at the same time, provided that neither the Detector nor the Field is
// modified concurrently.
type Detector struct {
	// Field is the grid to trace.
	Field Field

	// CloseGap selects whether, and how, contours are closed along the
	// outer border of the grid.  The default is CloseNone.
	CloseGap CloseGap

	// UseTriangles splits every grid cell into two triangles along the
	// diagonal from the top-left to the bottom-right corner.  This avoids
	// ambiguous saddle cells, at the cost of a diagonal choice which does
	// not depend on the data.
	UseTriangles bool

	// PointEpsilon is the distance below which two crossing points of the
	// same cell are merged.  Values <= 0 select the default 1e-7.
	PointEpsilon float64

	// PathEpsilon is the distance below which segment end points are
	// joined into paths.  Values <= 0 select the default 1e-7.
	PathEpsilon float64

	// OnRawSegments, if not nil, is called with a copy of all segments
	// found by the cell scan and the border pass, before they are joined
	// into paths.  It is not called if no contour exists at the level.
	OnRawSegments func(segs []stitch.Segment)

	// Debug enables logging of degenerate grid cells, see [SetLogger].
	Debug bool
}

const (
	defaultPointEpsilon = 1e-7
	defaultPathEpsilon  = stitch.DefaultEpsilon

	// minSingleSegmentLength is the length, in grid units, up to which
	// paths consisting of a single segment are discarded.
	minSingleSegmentLength = 0.1
)

// NewDetector returns a Detector for the given field, with default
// values for all options.
func NewDetector(f Field) *Detector {
	return &Detector{
		Field:        f,
		CloseGap:     CloseNone,
		PointEpsilon: defaultPointEpsilon,
		PathEpsilon:  defaultPathEpsilon,
	}
}

// DetectContourPaths returns the paths along which the field crosses the
// given level.
//
// If the level is outside the range of values in the field, the result is
// empty.  If the field contains a NaN value, an error wrapping
// [ErrUndefinedValue] is returned, which identifies the offending cell.
func (d *Detector) DetectContourPaths(level float64) ([]*stitch.Path, error) {
	raw, err := d.rawSegments(level)
	if err != nil || raw == nil {
		return nil, err
	}

	if d.OnRawSegments != nil {
		d.OnRawSegments(slices.Clone(raw))
	}

	paths := stitch.DetectPaths(raw, positiveOr(d.PathEpsilon, defaultPathEpsilon))

	stitched := 0
	for _, p := range paths {
		stitched += p.Len()
	}
	if stitched != len(raw) {
		Logger().Warn("segments lost while joining paths",
			"level", level, "raw", len(raw), "stitched", stitched)
	}

	res := paths[:0]
	for _, p := range paths {
		if p.Len() == 1 && p.Length() <= minSingleSegmentLength {
			continue
		}
		res = append(res, p)
	}

	Logger().Debug("contour paths detected",
		"level", level,
		"segments", len(raw),
		"paths", len(res),
		"discarded", len(paths)-len(res))
	return res, nil
}

// DetectLevels runs DetectContourPaths for every level in turn.
// The i-th element of the result holds the paths for levels[i].
func (d *Detector) DetectLevels(levels []float64) ([][]*stitch.Path, error) {
	res := make([][]*stitch.Path, len(levels))
	for i, level := range levels {
		paths, err := d.DetectContourPaths(level)
		if err != nil {
			return nil, fmt.Errorf("level %g: %w", level, err)
		}
		res[i] = paths
	}
	return res, nil
}

// rawSegments scans all grid cells in row-major order and collects the
// contour segments, followed by the border segments if CloseGap is set.
// If the level is outside the range of field values, nil is returned.
func (d *Detector) rawSegments(level float64) ([]stitch.Segment, error) {
	cols, rows := d.Field.Dims()
	if cols < 2 || rows < 2 {
		return nil, nil
	}

	fi := &faceIntersector{
		level: level,
		eps:   positiveOr(d.PointEpsilon, defaultPointEpsilon),
		debug: d.Debug,
	}

	var segs []stitch.Segment
	var face Face4
	lo, hi := math.Inf(1), math.Inf(-1)
	for y := range rows - 1 {
		for x := range cols - 1 {
			d.Field.Face4At(x, y, &face)
			for _, row := range face {
				for _, v := range row {
					if math.IsNaN(v) {
						return nil, &CellError{X: x, Y: y, Err: ErrUndefinedValue}
					}
					lo = min(lo, v)
					hi = max(hi, v)
				}
			}

			if d.UseTriangles {
				segs = fi.appendTriangles(segs, x, y, &face)
			} else {
				segs = fi.appendQuad(segs, x, y, &face)
			}
		}
	}

	if level < lo || level > hi {
		return nil, nil
	}

	if d.CloseGap != CloseNone {
		bc := &borderCloser{
			field: d.Field,
			mode:  d.CloseGap,
			level: level,
			eps:   fi.eps,
		}
		var err error
		segs, err = bc.appendBorder(segs)
		if err != nil {
			return nil, err
		}
	}
	if segs == nil {
		segs = []stitch.Segment{}
	}
	return segs, nil
}

func positiveOr(x, def float64) float64 {
	if x > 0 {
		return x
	}
	return def
}
