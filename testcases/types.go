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

// Package testcases contains named decoration scenarios, shared by the
// tests, the JSON exporter and the preview generator.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single decoration scenario.
type TestCase struct {
	Name    string        // lowercase a-z, 0-9 and _ only
	Path    *path.Data    // the geometry to decorate
	CTM     matrix.Matrix // user space to pixel space (zero-value means no transform)
	Width   int           // canvas width in pixels, for previews
	Height  int           // canvas height in pixels, for previews
	Pattern Pattern       // where to place decorations
	Symbol  SymbolKind    // what to draw in previews

	// Want is the expected total number of placements over all subpaths,
	// or -1 if the count is not checked.
	Want int
}

// Pattern holds the unparsed pattern values.  Each field is a number
// (pixels) or a string like "25%" (fraction of the path length).
type Pattern struct {
	Offset    any
	EndOffset any
	Repeat    any
}

// SymbolKind selects the decoration drawn in previews.
type SymbolKind int

const (
	Arrow SymbolKind = iota
	Dash
	Marker
)

func (k SymbolKind) String() string {
	switch k {
	case Arrow:
		return "arrow"
	case Dash:
		return "dash"
	case Marker:
		return "marker"
	default:
		return "unknown"
	}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polyline builds an open path through the given points.
func polyline(pts ...vec.Vec2) *path.Data {
	p := &path.Data{}
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0])
	for _, q := range pts[1:] {
		p.LineTo(q)
	}
	return p
}
