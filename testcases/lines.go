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

package testcases

import "seehuhn.de/go/geom/path"

var lineCases = []TestCase{
	// ==========================================================================
	// Single placements
	// ==========================================================================

	{
		Name:    "offset_zero",
		Path:    horizontalLine(8, 32, 120),
		Width:   128,
		Height:  64,
		Pattern: Pattern{Offset: 0, EndOffset: 0, Repeat: 0},
		Symbol:  Arrow,
		Want:    1,
	},
	{
		Name:    "offset_full",
		Path:    horizontalLine(8, 32, 120),
		Width:   128,
		Height:  64,
		Pattern: Pattern{Offset: "100%", EndOffset: 0, Repeat: 0},
		Symbol:  Arrow,
		Want:    1,
	},
	// the single placement is extrapolated past the end of the line
	{
		Name:    "offset_beyond_end",
		Path:    horizontalLine(8, 32, 64),
		Width:   128,
		Height:  64,
		Pattern: Pattern{Offset: 100, EndOffset: 0, Repeat: 0},
		Symbol:  Arrow,
		Want:    1,
	},
	// negative values are fractions; both resolve to "none"
	{
		Name:    "negative_values",
		Path:    horizontalLine(8, 32, 120),
		Width:   128,
		Height:  64,
		Pattern: Pattern{Offset: -5, EndOffset: 0, Repeat: -1},
		Symbol:  Marker,
		Want:    1,
	},
	{
		Name:    "corner_midpoint",
		Path:    polyline(pt(16, 16), pt(112, 16), pt(112, 112)),
		Width:   128,
		Height:  128,
		Pattern: Pattern{Offset: "50%", EndOffset: 0, Repeat: 0},
		Symbol:  Arrow,
		Want:    1,
	},

	// ==========================================================================
	// Repeated placements
	// ==========================================================================

	{
		Name:    "percent_repeat",
		Path:    horizontalLine(8, 32, 120),
		Width:   128,
		Height:  64,
		Pattern: Pattern{Offset: "10%", EndOffset: 0, Repeat: "20%"},
		Symbol:  Arrow,
		Want:    5,
	},
	{
		Name:    "percent_end_offset",
		Path:    horizontalLine(8, 32, 120),
		Width:   128,
		Height:  64,
		Pattern: Pattern{Offset: "10%", EndOffset: "40%", Repeat: "20%"},
		Symbol:  Arrow,
		Want:    3,
	},
	{
		Name:    "absolute_repeat",
		Path:    horizontalLine(4, 32, 124),
		Width:   128,
		Height:  64,
		Pattern: Pattern{Offset: 10, EndOffset: 0, Repeat: 25},
		Symbol:  Dash,
		Want:    5,
	},
	{
		Name:    "string_pixels",
		Path:    horizontalLine(4, 32, 124),
		Width:   128,
		Height:  64,
		Pattern: Pattern{Offset: "10", EndOffset: "0", Repeat: "25px"},
		Symbol:  Dash,
		Want:    5,
	},
	{
		Name: "zigzag_dashes",
		Path: polyline(
			pt(8, 56), pt(40, 8), pt(72, 56), pt(104, 8), pt(136, 56),
		),
		Width:   144,
		Height:  64,
		Pattern: Pattern{Offset: 0, EndOffset: 0, Repeat: 12},
		Symbol:  Dash,
		Want:    20,
	},
	{
		Name: "duplicate_points",
		Path: polyline(
			pt(16, 16), pt(16, 16), pt(112, 16), pt(112, 16), pt(112, 16), pt(112, 112),
		),
		Width:   128,
		Height:  128,
		Pattern: Pattern{Offset: "25%", EndOffset: 0, Repeat: "25%"},
		Symbol:  Arrow,
		Want:    3,
	},
	{
		Name:    "closed_square",
		Path:    closedSquare(24, 24, 80),
		Width:   128,
		Height:  128,
		Pattern: Pattern{Offset: 0, EndOffset: 0, Repeat: "12.5%"},
		Symbol:  Marker,
		Want:    8,
	},

	// ==========================================================================
	// Degenerate paths
	// ==========================================================================

	{
		Name:    "single_point",
		Path:    polyline(pt(32, 32), pt(32, 32), pt(32, 32)),
		Width:   64,
		Height:  64,
		Pattern: Pattern{Offset: 0, EndOffset: 0, Repeat: 10},
		Symbol:  Arrow,
		Want:    0,
	},
	{
		Name:    "move_only",
		Path:    (&path.Data{}).MoveTo(pt(32, 32)),
		Width:   64,
		Height:  64,
		Pattern: Pattern{Offset: "50%", EndOffset: 0, Repeat: 0},
		Symbol:  Arrow,
		Want:    0,
	},
}

// horizontalLine builds a horizontal line segment.
func horizontalLine(x1, y, x2 float64) *path.Data {
	return polyline(pt(x1, y), pt(x2, y))
}

// closedSquare builds a closed square path, traversed clockwise on screen.
func closedSquare(x, y, side float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x, y)).
		LineTo(pt(x+side, y)).
		LineTo(pt(x+side, y+side)).
		LineTo(pt(x, y+side)).
		Close()
}
