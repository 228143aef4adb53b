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

// Package decorate computes where repeating decorations, such as arrow
// heads or dashes, are placed along a polyline.
//
// A path is a sequence of points in a single 2D coordinate space, normally
// pixel space at a fixed zoom level.  A [Pattern] gives the offset of the
// first decoration, the distance to keep from the end of the path, and the
// spacing between decorations.  Each of these is either a fixed number of
// pixels ([Absolute]) or a fraction of the path length ([Relative]).
// The result is a list of [Placement] values, each with a position and a
// heading in degrees.
//
// All functions in this package are pure.  They never modify their inputs,
// keep no state between calls and are safe for concurrent use.
package decorate

import "seehuhn.de/go/geom/vec"

//go:generate go run ./testcases/export

// ProjectPattern computes the decoration placements for a single path and
// pattern.  The raw pattern values are parsed using [ParseLength].
// If the path has fewer than two distinct points, nil is returned.
func ProjectPattern(pts []vec.Vec2, raw RawPattern) []Placement {
	return BuildSegmentIndex(pts).Project(raw.Parse())
}

// Decoration holds the placements of one pattern on one path.
type Decoration struct {
	Path       int // index into the paths argument of Decorate
	Pattern    int // index into the patterns argument of Decorate
	Placements []Placement
}

// Decorate projects every pattern onto every path.  The segment index of
// each path is built only once.  The result is ordered by path, then by
// pattern.  Paths which produce no placements are omitted.
func Decorate(paths [][]vec.Vec2, patterns []Pattern) []Decoration {
	var res []Decoration
	for i, pts := range paths {
		idx := BuildSegmentIndex(pts)
		if idx.IsEmpty() {
			continue
		}
		for j, p := range patterns {
			res = append(res, Decoration{
				Path:       i,
				Pattern:    j,
				Placements: idx.Project(p),
			})
		}
	}
	return res
}
