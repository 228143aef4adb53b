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

import "seehuhn.de/go/geom/vec"

// Placement is the anchor of one decoration.
type Placement struct {
	Pos     vec.Vec2 // position, in the coordinate space of the path
	Heading float64  // rotation in degrees, in [0, 360)
}

// Pattern describes where decorations are placed along a path.
// A nil field is treated as Relative(0).
type Pattern struct {
	// Offset is the distance from the start of the path to the first
	// decoration.
	Offset Length

	// EndOffset is the minimum distance between the last repeated
	// decoration and the end of the path.
	EndOffset Length

	// Repeat is the spacing between decorations.  If it resolves to a
	// non-positive value, a single decoration is placed at Offset.
	Repeat Length
}

// RawPattern is a Pattern whose fields have not yet been parsed.
// Each field is a number or a string such as "25%"; see [ParseLength].
type RawPattern struct {
	Offset    any `json:"offset" toml:"offset"`
	EndOffset any `json:"endOffset" toml:"end_offset"`
	Repeat    any `json:"repeat" toml:"repeat"`
}

// Parse converts the raw values into a Pattern.
func (raw RawPattern) Parse() Pattern {
	return Pattern{
		Offset:    ParseLength(raw.Offset),
		EndOffset: ParseLength(raw.EndOffset),
		Repeat:    ParseLength(raw.Repeat),
	}
}

// Offsets returns the arc length positions, in pixels, at which the pattern
// places decorations on a path of the given total length.
//
// The first offset is always included, even if it lies beyond the end of
// the path.  Further offsets are generated while the repeat interval is
// positive and the next offset is less than totalLength minus the end
// offset.  The result is non-decreasing.
func (p Pattern) Offsets(totalLength float64) []float64 {
	offset := max(resolve(p.Offset, totalLength), 0)
	endOffset := max(resolve(p.EndOffset, totalLength), 0)
	repeat := resolve(p.Repeat, totalLength)

	limit := totalLength - endOffset
	var offsets []float64
	for {
		offsets = append(offsets, offset)
		offset += repeat
		if !(repeat > 0 && offset < limit) {
			break
		}
	}
	return offsets
}

// Project computes the placements of the pattern along the indexed path.
// The placements are returned in order of increasing distance from the
// start of the path.  If the index is empty, nil is returned.
//
// Offsets past the end of the path are extrapolated along the last
// segment, rather than being clamped to the final point.
func (idx *SegmentIndex) Project(p Pattern) []Placement {
	n := len(idx.Segments)
	if n == 0 {
		return nil
	}

	offsets := p.Offsets(idx.TotalLength)
	res := make([]Placement, len(offsets))

	// Offsets are non-decreasing, so the segment cursor only moves forward.
	// This must be replaced by a search if unsorted offsets are ever
	// allowed; see PointAt.
	i := 0
	for k, d := range offsets {
		for d > idx.Segments[i].End && i < n-1 {
			i++
		}
		res[k] = idx.Segments[i].placement(d)
	}
	return res
}
