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
	"reflect"
	"testing"

	"seehuhn.de/go/geom/vec"
)

var (
	ptA = vec.Vec2{X: 0, Y: 0}
	ptB = vec.Vec2{X: 1, Y: 0}
	ptC = vec.Vec2{X: 1, Y: 1}
	ptD = vec.Vec2{X: 0, Y: 1}
)

// referencePatterns are the patterns used for the invariance tests.
var referencePatterns = []RawPattern{
	{Offset: 0, EndOffset: 0, Repeat: 0},
	{Offset: "100%", EndOffset: 0, Repeat: 0},
	{Offset: "25%", EndOffset: 0, Repeat: 0},
	{Offset: "10%", EndOffset: 0, Repeat: "20%"},
	{Offset: "10%", EndOffset: "40%", Repeat: "20%"},
	{Offset: 0.3, EndOffset: 0.2, Repeat: 0.25},
	{Offset: -3, EndOffset: -1, Repeat: "7%"},
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestProjectDegenerate(t *testing.T) {
	paths := [][]vec.Vec2{
		nil,
		{ptA},
		{ptA, ptA, ptA},
	}
	for _, pts := range paths {
		for _, raw := range referencePatterns {
			got := ProjectPattern(pts, raw)
			if len(got) != 0 {
				t.Errorf("%v, %v: got %d placements, want 0", pts, raw, len(got))
			}
		}
	}
}

func TestProjectSingle(t *testing.T) {
	cases := []struct {
		name string
		pts  []vec.Vec2
		raw  RawPattern
		want Placement
	}{
		{
			name: "offset_zero",
			pts:  []vec.Vec2{ptA, ptB, ptC},
			raw:  RawPattern{Offset: 0, EndOffset: 0, Repeat: 0},
			want: Placement{Pos: ptA, Heading: 90},
		},
		{
			name: "offset_full",
			pts:  []vec.Vec2{ptA, ptB, ptC},
			raw:  RawPattern{Offset: "100%", EndOffset: 0, Repeat: 0},
			want: Placement{Pos: ptC, Heading: 180},
		},
		{
			name: "relative_interpolation",
			pts:  []vec.Vec2{ptA, ptB},
			raw:  RawPattern{Offset: "25%", EndOffset: 0, Repeat: 0},
			want: Placement{Pos: vec.Vec2{X: 0.25, Y: 0}, Heading: 90},
		},
		{
			name: "absolute_on_second_segment",
			pts:  []vec.Vec2{ptA, ptB, ptC},
			raw:  RawPattern{Offset: 1.5, EndOffset: 0, Repeat: 0},
			want: Placement{Pos: vec.Vec2{X: 1, Y: 0.5}, Heading: 180},
		},
		{
			name: "extrapolated",
			pts:  []vec.Vec2{ptA, ptB},
			raw:  RawPattern{Offset: 3, EndOffset: 0, Repeat: 0},
			want: Placement{Pos: vec.Vec2{X: 3, Y: 0}, Heading: 90},
		},
		{
			name: "negative_offset_clamped",
			pts:  []vec.Vec2{ptA, ptB},
			raw:  RawPattern{Offset: -0.5, EndOffset: 0, Repeat: -2},
			want: Placement{Pos: ptA, Heading: 90},
		},
		{
			name: "westward",
			pts:  []vec.Vec2{ptB, ptA},
			raw:  RawPattern{Offset: "50%"},
			want: Placement{Pos: vec.Vec2{X: 0.5, Y: 0}, Heading: 270},
		},
		{
			name: "northward",
			pts:  []vec.Vec2{ptC, ptB},
			raw:  RawPattern{},
			want: Placement{Pos: ptC, Heading: 0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ProjectPattern(tc.pts, tc.raw)
			if len(got) != 1 {
				t.Fatalf("got %d placements, want 1", len(got))
			}
			p := got[0]
			if !closeTo(p.Pos.X, tc.want.Pos.X) || !closeTo(p.Pos.Y, tc.want.Pos.Y) || !closeTo(p.Heading, tc.want.Heading) {
				t.Errorf("got %v, want %v", p, tc.want)
			}
		})
	}
}

func TestProjectRepeatCount(t *testing.T) {
	pts := []vec.Vec2{ptA, ptB}

	got := ProjectPattern(pts, RawPattern{Offset: "10%", EndOffset: 0, Repeat: "20%"})
	if len(got) != 5 {
		t.Errorf("got %d placements, want 5", len(got))
	}
	for i, p := range got {
		want := 0.1 + 0.2*float64(i)
		if !closeTo(p.Pos.X, want) || p.Pos.Y != 0 {
			t.Errorf("placement %d: got %v, want x=%g", i, p.Pos, want)
		}
	}

	got = ProjectPattern(pts, RawPattern{Offset: "10%", EndOffset: "40%", Repeat: "20%"})
	if len(got) != 3 {
		t.Errorf("with end offset: got %d placements, want 3", len(got))
	}
}

func TestProjectOffsetBeyondEnd(t *testing.T) {
	// A repeated pattern whose offset is past the end still produces its
	// first placement.
	got := ProjectPattern([]vec.Vec2{ptA, ptB}, RawPattern{Offset: 5, Repeat: 1})
	if len(got) != 1 {
		t.Fatalf("got %d placements, want 1", len(got))
	}
	if !closeTo(got[0].Pos.X, 5) {
		t.Errorf("got %v, want x=5", got[0].Pos)
	}
}

func TestProjectDuplicateInvariance(t *testing.T) {
	withDups := []vec.Vec2{ptA, ptA, ptB, ptB, ptB, ptC, ptD, ptD, ptD}
	plain := []vec.Vec2{ptA, ptB, ptC, ptD}

	for _, raw := range referencePatterns {
		got := ProjectPattern(withDups, raw)
		want := ProjectPattern(plain, raw)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%v:\ngot  %v\nwant %v", raw, got, want)
		}
	}
}

func TestProjectHeadingRange(t *testing.T) {
	// a star-shaped path visits all directions
	var pts []vec.Vec2
	for i := range 37 {
		phi := float64(i) * 10 * math.Pi / 180
		pts = append(pts, vec.Vec2{}, vec.Vec2{X: math.Cos(phi), Y: math.Sin(phi)})
	}

	for _, raw := range referencePatterns {
		for _, p := range ProjectPattern(pts, raw) {
			if p.Heading < 0 || p.Heading >= 360 {
				t.Errorf("%v: heading %g out of range", raw, p.Heading)
			}
		}
	}
}

func TestProjectOrdering(t *testing.T) {
	pts := []vec.Vec2{ptA, ptB, ptC, ptD, ptA, {X: 3, Y: 4}}
	idx := BuildSegmentIndex(pts)

	for _, raw := range referencePatterns {
		p := raw.Parse()
		offsets := p.Offsets(idx.TotalLength)
		placements := idx.Project(p)
		if len(offsets) != len(placements) {
			t.Fatalf("%v: %d offsets but %d placements", raw, len(offsets), len(placements))
		}
		for i := 1; i < len(offsets); i++ {
			if offsets[i] < offsets[i-1] {
				t.Errorf("%v: offsets decrease at %d: %g < %g", raw, i, offsets[i], offsets[i-1])
			}
		}
	}
}

func TestOffsets(t *testing.T) {
	cases := []struct {
		name  string
		p     Pattern
		total float64
		want  []float64
	}{
		{"nil fields", Pattern{}, 10, []float64{0}},
		{"no repeat", Pattern{Offset: Absolute(4)}, 10, []float64{4}},
		{"beyond end", Pattern{Offset: Absolute(40), Repeat: Absolute(1)}, 10, []float64{40}},
		{"repeat", Pattern{Offset: Absolute(1), Repeat: Absolute(3)}, 10, []float64{1, 4, 7}},
		{"limit exclusive", Pattern{Offset: Absolute(1), Repeat: Absolute(3)}, 7, []float64{1, 4}},
		{"end offset", Pattern{Offset: Absolute(1), EndOffset: Absolute(3), Repeat: Absolute(3)}, 10, []float64{1, 4}},
		{"negative end offset", Pattern{EndOffset: Relative(-1), Repeat: Absolute(5)}, 10, []float64{0, 5}},
		{"relative", Pattern{Offset: Relative(0.5), Repeat: Relative(0.25)}, 8, []float64{4, 6}},
		{"negative repeat", Pattern{Offset: Absolute(2), Repeat: Relative(-0.5)}, 8, []float64{2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.p.Offsets(tc.total)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestProjectDoesNotModifyInput(t *testing.T) {
	pts := []vec.Vec2{ptA, ptA, ptB, ptC}
	orig := append([]vec.Vec2(nil), pts...)
	ProjectPattern(pts, RawPattern{Offset: "10%", Repeat: "10%"})
	if !reflect.DeepEqual(pts, orig) {
		t.Errorf("input modified: %v", pts)
	}
}

func TestPointAtMatchesProject(t *testing.T) {
	pts := []vec.Vec2{ptA, ptB, ptC, ptD, {X: -2, Y: 3}}
	idx := BuildSegmentIndex(pts)

	for _, d := range []float64{-1, 0, 0.5, 1, 1.25, 2, 2.999, 3, 4.5, idx.TotalLength, 20} {
		want := idx.Project(Pattern{Offset: Absolute(d)})[0]
		if d <= 0 {
			// Project clamps non-positive offsets to the path start
			want = idx.Project(Pattern{})[0]
			d = 0
		}
		got := idx.PointAt(d)
		if got != want {
			t.Errorf("d=%g: got %v, want %v", d, got, want)
		}
	}

	if got := BuildSegmentIndex(nil).PointAt(1); got != (Placement{}) {
		t.Errorf("empty index: got %v", got)
	}
}

func TestDecorate(t *testing.T) {
	paths := [][]vec.Vec2{
		{ptA, ptB},
		{ptA, ptA},
		{ptA, ptB, ptC},
	}
	patterns := []Pattern{
		{},
		{Offset: Relative(0.5)},
	}

	got := Decorate(paths, patterns)
	if len(got) != 4 {
		t.Fatalf("got %d decorations, want 4", len(got))
	}
	wantIdx := [][2]int{{0, 0}, {0, 1}, {2, 0}, {2, 1}}
	for i, d := range got {
		if d.Path != wantIdx[i][0] || d.Pattern != wantIdx[i][1] {
			t.Errorf("decoration %d: path %d pattern %d, want %v", i, d.Path, d.Pattern, wantIdx[i])
		}
		want := BuildSegmentIndex(paths[d.Path]).Project(patterns[d.Pattern])
		if !reflect.DeepEqual(d.Placements, want) {
			t.Errorf("decoration %d: got %v, want %v", i, d.Placements, want)
		}
	}
}
