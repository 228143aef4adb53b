// seehuhn.de/go/decorate - place decorations along polylines
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

package decorate

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DefaultFlatness is the curve approximation tolerance used by [Polylines]
// when a non-positive flatness is given, in output units.
const DefaultFlatness = 0.25

// Polylines converts a path into one polyline per subpath, suitable as
// input for [BuildSegmentIndex].
//
// All points are mapped through m, which takes the path into the pixel
// space in which decorations are placed.  The zero matrix is treated as
// the identity.  Quadratic and cubic Bézier curves are replaced by line
// segments which deviate from the curve by at most flatness, measured
// after the transformation.  A closed subpath ends with a copy of its
// first point.
func Polylines(p path.Path, m matrix.Matrix, flatness float64) [][]vec.Vec2 {
	if m == (matrix.Matrix{}) {
		m = matrix.Identity
	}
	if !(flatness > 0) {
		flatness = DefaultFlatness
	}
	f := &flattener{ctm: m, flatness: flatness}

	var res [][]vec.Vec2
	var cur []vec.Vec2 // open subpath, nil if there is none
	var current, start vec.Vec2
	hasCurrent := false
	// extend appends to the open subpath.  After ClosePath, a new subpath
	// starts at the current point.
	extend := func(pts ...vec.Vec2) {
		if cur == nil {
			cur = []vec.Vec2{current}
		}
		cur = append(cur, pts...)
	}
	emit := func(_, to vec.Vec2) {
		extend(to)
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if cur != nil {
				res = append(res, cur)
			}
			current = f.apply(pts[0])
			start = current
			cur = []vec.Vec2{current}
			hasCurrent = true

		case path.CmdLineTo:
			if !hasCurrent {
				continue
			}
			next := f.apply(pts[0])
			extend(next)
			current = next

		case path.CmdQuadTo:
			if !hasCurrent {
				continue
			}
			p1, p2 := f.apply(pts[0]), f.apply(pts[1])
			f.flattenQuadratic(current, p1, p2, emit)
			current = p2

		case path.CmdCubeTo:
			if !hasCurrent {
				continue
			}
			p1, p2, p3 := f.apply(pts[0]), f.apply(pts[1]), f.apply(pts[2])
			f.flattenCubic(current, p1, p2, p3, emit)
			current = p3

		case path.CmdClose:
			if cur == nil {
				continue
			}
			cur = append(cur, start)
			res = append(res, cur)
			cur = nil
			current = start
		}
	}
	if cur != nil {
		res = append(res, cur)
	}
	return res
}

// flattener approximates Bézier curves by line segments.  Curves are
// flattened after transformation, so flatness is measured in output units.
type flattener struct {
	ctm      matrix.Matrix
	flatness float64
}

// apply maps a point through the transformation matrix.
func (f *flattener) apply(v vec.Vec2) vec.Vec2 {
	m := f.ctm
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line
// segment.  p0 is the start point, p1 is the control point, p2 is the end
// point.
func (f *flattener) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// error vector: e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if errLen := e.Length(); errLen > f.flatness {
		n = int(math.Ceil(math.Sqrt(errLen / f.flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		if i == n {
			pt = p2
		}
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line segment.
// p0 is the start point, p1 and p2 are control points, p3 is the end point.
func (f *flattener) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		nFloat := math.Sqrt(3 * m / (4 * f.flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		omt := 1 - t
		omt2 := omt * omt
		omt3 := omt2 * omt
		t2 := t * t
		t3 := t2 * t
		pt := p0.Mul(omt3).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t3))
		if i == n {
			pt = p3
		}
		emit(prev, pt)
		prev = pt
	}
}
