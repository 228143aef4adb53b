package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:    "quadratic_arrows",
		Path:    (&path.Data{}).MoveTo(pt(8, 56)).QuadTo(pt(64, -24), pt(120, 56)),
		Width:   128,
		Height:  64,
		Pattern: Pattern{Offset: "10%", EndOffset: 0, Repeat: "25%"},
		Symbol:  Arrow,
		Want:    4,
	},
	{
		Name: "cubic_scaled",
		Path: (&path.Data{}).
			MoveTo(pt(4, 28)).
			CubeTo(pt(16, 0), pt(32, 56), pt(60, 28)),
		CTM:     matrix.Scale(2, 2),
		Width:   128,
		Height:  64,
		Pattern: Pattern{Offset: "12.5%", EndOffset: 0, Repeat: "25%"},
		Symbol:  Arrow,
		Want:    4,
	},
	{
		Name:    "circle_dashes",
		Path:    circle(64, 64, 48),
		Width:   128,
		Height:  128,
		Pattern: Pattern{Offset: 0, EndOffset: 0, Repeat: "6%"},
		Symbol:  Dash,
		Want:    17,
	},
	// rotation changes positions but not the number of placements
	{
		Name:    "rotated_corner",
		Path:    polyline(pt(-40, -40), pt(40, -40), pt(40, 40)),
		CTM:     matrix.RotateDeg(30).Translate(64, 64),
		Width:   128,
		Height:  128,
		Pattern: Pattern{Offset: 8, EndOffset: 4, Repeat: 16},
		Symbol:  Arrow,
		Want:    10,
	},
	{
		Name:    "two_subpaths",
		Path:    twoLines(),
		Width:   128,
		Height:  64,
		Pattern: Pattern{Offset: "25%", EndOffset: 0, Repeat: 0},
		Symbol:  Marker,
		Want:    2,
	},
}

// circle builds an approximate circle using four cubic Bézier curves.
func circle(cx, cy, r float64) *path.Data {
	k := r * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).                                 // start at right
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)). // top-right quadrant
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)). // top-left quadrant
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)). // bottom-left quadrant
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)). // bottom-right quadrant
		Close()
}

// twoLines builds two parallel horizontal lines as separate subpaths.
func twoLines() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(8, 16)).LineTo(pt(120, 16)).
		MoveTo(pt(8, 48)).LineTo(pt(120, 48))
}
