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

// Package preview draws decorated paths into PNG or PDF files, for visual
// inspection of decoration patterns.
package preview

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/decorate"
	"seehuhn.de/go/decorate/symbol"
)

// Line widths, in pixels.
const (
	pathWidth   = 1.0
	symbolWidth = 1.5
)

var (
	pathGray   = color.Gray{Y: 0x99}
	symbolGray = color.Gray{Y: 0x00}
)

// ErrEmptyScene is returned when a scene has no drawing area.
var ErrEmptyScene = errors.New("preview: scene width and height must be positive")

// Scene is a set of paths and decorations in pixel space, with the origin
// in the top-left corner and the y-axis pointing down.
type Scene struct {
	Width, Height int
	Paths         [][]vec.Vec2
	Shapes        []symbol.Shape
}

// WritePNG rasterizes the scene and writes it to w in PNG format.
// Paths are drawn in grey, decorations in black, on a white background.
func (s *Scene) WritePNG(w io.Writer) error {
	img, err := s.Image()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Image rasterizes the scene into a new grayscale image.
func (s *Scene) Image() (*image.Gray, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, ErrEmptyScene
	}
	img := image.NewGray(image.Rect(0, 0, s.Width, s.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	if len(s.Paths) > 0 {
		r := vector.NewRasterizer(s.Width, s.Height)
		for _, pts := range s.Paths {
			strokePolyline(r, pts, pathWidth)
		}
		r.Draw(img, img.Bounds(), image.NewUniform(pathGray), image.Point{})
	}

	if len(s.Shapes) > 0 {
		r := vector.NewRasterizer(s.Width, s.Height)
		for _, shape := range s.Shapes {
			for _, pts := range outlines(shape.Path) {
				if shape.Fill {
					fillPolygon(r, pts)
				} else {
					strokePolyline(r, pts, symbolWidth)
				}
			}
		}
		r.Draw(img, img.Bounds(), image.NewUniform(symbolGray), image.Point{})
	}

	return img, nil
}

// outlines flattens a shape outline into polylines.
func outlines(p *path.Data) [][]vec.Vec2 {
	if p == nil {
		return nil
	}
	return decorate.Polylines(p.Iter(), matrix.Identity, decorate.DefaultFlatness)
}

// fillPolygon adds a closed polygon to the rasterizer.
func fillPolygon(r *vector.Rasterizer, pts []vec.Vec2) {
	if len(pts) < 3 {
		return
	}
	r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		r.LineTo(float32(pt.X), float32(pt.Y))
	}
	r.ClosePath()
}

// strokePolyline adds one rectangle per segment of the polyline.  All
// rectangles have the same orientation, so overlaps do not cancel under the
// nonzero rule.  Zero-length segments become squares.
func strokePolyline(r *vector.Rasterizer, pts []vec.Vec2, width float64) {
	d := width / 2
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		t := b.Sub(a)
		length := t.Length()
		if length == 0 {
			t = vec.Vec2{X: 1}
		} else {
			t = t.Mul(1 / length)
		}
		t = t.Mul(d)
		n := vec.Vec2{X: -t.Y, Y: t.X}
		if length == 0 {
			// extend both ends to get a square dot
			a = a.Sub(t)
			b = b.Add(t)
		}
		quad := [4]vec.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
		r.MoveTo(float32(quad[0].X), float32(quad[0].Y))
		for _, q := range quad[1:] {
			r.LineTo(float32(q.X), float32(q.Y))
		}
		r.ClosePath()
	}
}

// WritePDF writes the scene as a single-page PDF file.  One pixel
// corresponds to one PDF point.
func (s *Scene) WritePDF(fname string) error {
	if s.Width <= 0 || s.Height <= 0 {
		return ErrEmptyScene
	}
	w, h := float64(s.Width), float64(s.Height)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfcolor.DeviceGray(1))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF origin is bottom-left; scenes use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	if len(s.Paths) > 0 {
		page.SetStrokeColor(pdfcolor.DeviceGray(float64(pathGray.Y) / 255))
		page.SetLineWidth(pathWidth)
		for _, pts := range s.Paths {
			if len(pts) < 2 {
				continue
			}
			page.MoveTo(pts[0].X, pts[0].Y)
			for _, pt := range pts[1:] {
				page.LineTo(pt.X, pt.Y)
			}
		}
		page.Stroke()
	}

	page.SetFillColor(pdfcolor.DeviceGray(0))
	page.SetStrokeColor(pdfcolor.DeviceGray(0))
	page.SetLineWidth(symbolWidth)
	for _, shape := range s.Shapes {
		if shape.Path == nil {
			continue
		}
		// PDF has no quadratic curves
		for cmd, pts := range shape.Path.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		if shape.Fill {
			page.Fill()
		} else {
			page.Stroke()
		}
	}

	return page.Close()
}
