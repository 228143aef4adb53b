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
	"sort"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Segment is one non-degenerate edge of a path.
type Segment struct {
	A, B vec.Vec2 // endpoints

	// Start and End are the arc length from the first point of the path to
	// A and B.  End-Start is the Euclidean length of the segment and is
	// always positive.
	Start, End float64

	// Heading is the rotation of a decoration placed on this segment, in
	// degrees in [0, 360).  See [heading].
	Heading float64
}

// SegmentIndex is the list of non-degenerate segments of a path, annotated
// with cumulative arc length.
//
// Segments[0].Start is 0 and the End values are non-decreasing.
// TotalLength equals the End value of the last segment, or 0 if there are
// no segments.
type SegmentIndex struct {
	Segments    []Segment
	TotalLength float64
}

// BuildSegmentIndex turns a sequence of points into a SegmentIndex.
//
// Consecutive points which are exactly equal contribute nothing, so that
// inserting duplicates of a point next to it does not change the result.
// If fewer than two distinct points remain, the index is empty.
// The input slice is not modified.
func BuildSegmentIndex(pts []vec.Vec2) *SegmentIndex {
	idx := &SegmentIndex{}
	if len(pts) < 2 {
		return idx
	}

	dist := 0.0
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if a == b {
			continue
		}
		length := distance(a, b)
		idx.Segments = append(idx.Segments, Segment{
			A:       a,
			B:       b,
			Start:   dist,
			End:     dist + length,
			Heading: heading(a, b),
		})
		dist += length
	}
	idx.TotalLength = dist
	return idx
}

// IsEmpty reports whether the index contains no segments.
func (idx *SegmentIndex) IsEmpty() bool {
	return len(idx.Segments) == 0
}

// Bounds returns the bounding box of all segment endpoints.
// The zero rectangle is returned for an empty index.
func (idx *SegmentIndex) Bounds() rect.Rect {
	if idx.IsEmpty() {
		return rect.Rect{}
	}
	first := idx.Segments[0].A
	b := rect.Rect{LLx: first.X, LLy: first.Y, URx: first.X, URy: first.Y}
	for _, seg := range idx.Segments {
		b.LLx = min(b.LLx, seg.B.X)
		b.LLy = min(b.LLy, seg.B.Y)
		b.URx = max(b.URx, seg.B.X)
		b.URy = max(b.URy, seg.B.Y)
	}
	return b
}

// PointAt returns the placement at arc length d from the start of the path.
//
// Unlike [SegmentIndex.Project], which walks the segments once for a sorted
// sequence of offsets, PointAt uses a binary search and can be called with
// arbitrary distances.  Distances outside [0, TotalLength] are extrapolated
// along the first or last segment.  The zero Placement is returned for an
// empty index.
func (idx *SegmentIndex) PointAt(d float64) Placement {
	n := len(idx.Segments)
	if n == 0 {
		return Placement{}
	}

	// find the first segment which ends at or after d
	i := sort.Search(n-1, func(i int) bool {
		return idx.Segments[i].End >= d
	})
	return idx.Segments[i].placement(d)
}

// placement interpolates the position at arc length d along the line
// through the segment.  The ratio is not clamped.
func (seg *Segment) placement(d float64) Placement {
	ratio := (d - seg.Start) / (seg.End - seg.Start)
	return Placement{
		Pos:     interpolate(seg.A, seg.B, ratio),
		Heading: seg.Heading,
	}
}

// distance returns the Euclidean distance between a and b.
func distance(a, b vec.Vec2) float64 {
	return b.Sub(a).Length()
}

// heading returns the decoration rotation for travel from a to b, in
// degrees in [0, 360).
//
// The angle is the bearing of b-a plus 90°, so that a symbol drawn with
// rotation 0 points across the direction of travel.
func heading(a, b vec.Vec2) float64 {
	deg := math.Atan2(b.Y-a.Y, b.X-a.X)*180/math.Pi + 90
	return normalizeDegrees(deg)
}

// normalizeDegrees maps an angle in degrees into [0, 360).
func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 { // -tiny + 360 rounds to 360
		deg = 0
	}
	return deg
}

// interpolate returns a + t*(b-a).
func interpolate(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}
