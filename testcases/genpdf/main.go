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

// Command genpdf writes preview images for all test cases, as PDF and PNG
// files, for visual inspection of the decoration placements.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/decorate"
	"seehuhn.de/go/decorate/preview"
	"seehuhn.de/go/decorate/symbol"
	"seehuhn.de/go/decorate/testcases"
)

const outDir = "testdata/preview"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			scene := makeScene(tc)

			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := scene.WritePDF(pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			pngPath := filepath.Join(outDir, name+".png")
			if err := writePNG(scene, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func makeScene(tc testcases.TestCase) *preview.Scene {
	raw := decorate.RawPattern{
		Offset:    tc.Pattern.Offset,
		EndOffset: tc.Pattern.EndOffset,
		Repeat:    tc.Pattern.Repeat,
	}
	pattern := raw.Parse()

	var sym symbol.Symbol
	switch tc.Symbol {
	case testcases.Dash:
		sym = symbol.Dash{PixelSize: 8}
	case testcases.Marker:
		sym = symbol.Marker{Radius: 3}
	default:
		sym = symbol.ArrowHead{PixelSize: 8}
	}

	scene := &preview.Scene{
		Width:  tc.Width,
		Height: tc.Height,
		Paths:  decorate.Polylines(tc.Path.Iter(), tc.CTM, 0),
	}
	for _, d := range decorate.Decorate(scene.Paths, []decorate.Pattern{pattern}) {
		scene.Shapes = append(scene.Shapes, symbol.Build(sym, d.Placements)...)
	}
	return scene
}

func writePNG(scene *preview.Scene, fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := scene.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
