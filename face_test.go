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
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour/stitch"
)

func TestCrossing(t *testing.T) {
	p0 := vec.Vec2{X: 2, Y: 3}
	p1 := vec.Vec2{X: 2, Y: 4}

	cases := []struct {
		v0, v1, level float64
		want          vec.Vec2
		ok            bool
	}{
		{0, 1, 0.5, vec.Vec2{X: 2, Y: 3.5}, true},
		{1, 0, 0.25, vec.Vec2{X: 2, Y: 3.75}, true},
		{0, 4, 0, p0, true},
		{0, 4, 4, p1, true},
		{3, 3, 3, p0, true},
		{0, 1, 1.5, vec.Vec2{}, false},
		{0, 1, -0.5, vec.Vec2{}, false},
		{3, 3, 2, vec.Vec2{}, false},
	}
	for _, c := range cases {
		got, ok := crossing(p0, p1, c.v0, c.v1, c.level)
		if ok != c.ok || got.Sub(c.want).Length() > 1e-12 {
			t.Errorf("crossing(%g, %g, %g) = %v, %t, want %v, %t",
				c.v0, c.v1, c.level, got, ok, c.want, c.ok)
		}
	}
}

func TestAppendQuad(t *testing.T) {
	cases := []struct {
		name  string
		face  Face4
		level float64
		want  []stitch.Segment
	}{
		{
			name:  "none",
			face:  Face4{{0, 0}, {0, 0}},
			level: 1,
		},
		{
			name:  "vertical",
			face:  Face4{{0, 2}, {0, 2}},
			level: 1,
			want:  []stitch.Segment{{A: vec.Vec2{X: 5.5, Y: 7}, B: vec.Vec2{X: 5.5, Y: 8}}},
		},
		{
			name:  "corner",
			face:  Face4{{0, 1}, {1, 1}},
			level: 0.5,
			want:  []stitch.Segment{{A: vec.Vec2{X: 5.5, Y: 7}, B: vec.Vec2{X: 5, Y: 7.5}}},
		},
		{
			name:  "single_point",
			face:  Face4{{1, 0}, {0, 0}},
			level: 1,
		},
		{
			// four crossings: only the first two are used
			name:  "saddle",
			face:  Face4{{1, 0}, {0, 1}},
			level: 0.5,
			want:  []stitch.Segment{{A: vec.Vec2{X: 5.5, Y: 7}, B: vec.Vec2{X: 6, Y: 7.5}}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fi := &faceIntersector{level: c.level, eps: defaultPointEpsilon}
			got := fi.appendQuad(nil, 5, 7, &c.face)
			if len(got) != len(c.want) {
				t.Fatalf("got %v, want %v", got, c.want)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Errorf("got %v, want %v", got[i], c.want[i])
				}
			}
		})
	}
}

func TestAppendTriangles(t *testing.T) {
	// A=1, B=0, C=1, D=0: the lower-left triangle is cut between the
	// bottom and the left edge, the upper-right one between the top and
	// the right edge.
	face := Face4{{1, 0}, {0, 1}}
	fi := &faceIntersector{level: 0.5, eps: defaultPointEpsilon}
	got := fi.appendTriangles(nil, 0, 0, &face)
	want := []stitch.Segment{
		{A: vec.Vec2{X: 0.5, Y: 1}, B: vec.Vec2{X: 0, Y: 0.5}},
		{A: vec.Vec2{X: 0.5, Y: 0}, B: vec.Vec2{X: 1, Y: 0.5}},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i].A.Sub(want[i].A).Length() > 1e-12 || got[i].B.Sub(want[i].B).Length() > 1e-12 {
			t.Errorf("segment %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDegenerateCellLogging(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	single := Face4{{1, 0}, {0, 0}}
	saddle := Face4{{1, 0}, {0, 1}}

	fi := &faceIntersector{level: 1, eps: defaultPointEpsilon}
	fi.appendQuad(nil, 0, 0, &single)
	if buf.Len() != 0 {
		t.Errorf("unexpected log output without debug flag: %s", buf.String())
	}

	fi.debug = true
	fi.appendQuad(nil, 3, 4, &single)
	if !strings.Contains(buf.String(), "single corner") || !strings.Contains(buf.String(), "x=3") {
		t.Errorf("missing log message for single point, got: %s", buf.String())
	}

	buf.Reset()
	fi.level = 0.5
	fi.appendQuad(nil, 0, 0, &saddle)
	if !strings.Contains(buf.String(), "crossings=4") {
		t.Errorf("missing log message for saddle cell, got: %s", buf.String())
	}
}
