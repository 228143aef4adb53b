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

// Package symbol builds the outlines of decorations at placements computed
// by package decorate.
//
// Outlines are given in the coordinate space of the decorated path, with
// the y-axis pointing down as in pixel space.  Nothing is drawn here; the
// caller decides how to fill or stroke the returned shapes.
package symbol

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/decorate"
)

const (
	defaultPixelSize = 10
	defaultHeadAngle = 60
)

// Symbol constructs the outline of a decoration.
type Symbol interface {
	Build(p decorate.Placement) Shape
}

// Shape is the outline of one decoration.
type Shape struct {
	Path *path.Data

	// Fill is true if the outline is a closed area which should be
	// filled.  Otherwise the path should be stroked.
	Fill bool
}

// Build returns the shapes of s at all placements.
func Build(s Symbol, placements []decorate.Placement) []Shape {
	res := make([]Shape, len(placements))
	for i, p := range placements {
		res[i] = s.Build(p)
	}
	return res
}

// ArrowHead is an arrow head with its tip at the placement, pointing in the
// direction of travel along the path.
type ArrowHead struct {
	// PixelSize is the length of the two sides of the head.
	// The default is 10.
	PixelSize float64

	// HeadAngle is the angle at the tip, in degrees.  The default is 60.
	HeadAngle float64

	// Open selects an open "V" shape instead of a filled triangle.
	Open bool
}

// Build implements the [Symbol] interface.
func (a ArrowHead) Build(p decorate.Placement) Shape {
	size := a.PixelSize
	if !(size > 0) {
		size = defaultPixelSize
	}
	angle := a.HeadAngle
	if !(angle > 0) {
		angle = defaultHeadAngle
	}

	dir := travelAngle(p.Heading)
	half := angle / 2 * math.Pi / 180
	tip := p.Pos
	wing1 := tip.Sub(direction(dir + half).Mul(size))
	wing2 := tip.Sub(direction(dir - half).Mul(size))

	outline := (&path.Data{}).MoveTo(wing1).LineTo(tip).LineTo(wing2)
	if a.Open {
		return Shape{Path: outline}
	}
	return Shape{Path: outline.Close(), Fill: true}
}

// Dash is a short line segment centred on the placement and aligned with the
// path.
type Dash struct {
	// PixelSize is the length of the dash.  The default is 10.  If the
	// value is positive but at most 1, a zero-length segment is used.
	PixelSize float64
}

// Build implements the [Symbol] interface.
func (d Dash) Build(p decorate.Placement) Shape {
	size := d.PixelSize
	if size <= 0 {
		size = defaultPixelSize
	}
	if size <= 1 {
		return Shape{Path: (&path.Data{}).MoveTo(p.Pos).LineTo(p.Pos)}
	}

	half := direction(travelAngle(p.Heading)).Mul(size / 2)
	a := p.Pos.Sub(half)
	b := p.Pos.Add(half)
	return Shape{Path: (&path.Data{}).MoveTo(a).LineTo(b)}
}

// Marker is a square centred on the placement, rotated with the path.
type Marker struct {
	// Radius is half the side length of the square.  The default is 5.
	Radius float64
}

// Build implements the [Symbol] interface.
func (m Marker) Build(p decorate.Placement) Shape {
	r := m.Radius
	if !(r > 0) {
		r = defaultPixelSize / 2
	}

	u := direction(travelAngle(p.Heading)).Mul(r)
	n := vec.Vec2{X: -u.Y, Y: u.X}
	c := p.Pos
	outline := (&path.Data{}).
		MoveTo(c.Add(u).Add(n)).
		LineTo(c.Sub(u).Add(n)).
		LineTo(c.Sub(u).Sub(n)).
		LineTo(c.Add(u).Sub(n)).
		Close()
	return Shape{Path: outline, Fill: true}
}

// travelAngle converts a placement heading into the angle of the direction
// of travel, in radians, counter-clockwise in a y-up frame.
func travelAngle(heading float64) float64 {
	return -(heading - 90) * math.Pi / 180
}

// direction returns the unit vector for the angle theta, in y-down pixel
// coordinates.
func direction(theta float64) vec.Vec2 {
	return vec.Vec2{X: math.Cos(theta), Y: -math.Sin(theta)}
}
