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

package cli

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/decorate"
	"seehuhn.de/go/decorate/internal/catalogue"
	"seehuhn.de/go/decorate/preview"
	"seehuhn.de/go/decorate/symbol"
)

// canvasMargin is added to the path bounds when no canvas size is given.
const canvasMargin = 16

func newRenderCmd() *cobra.Command {
	var opts patternOptions
	var out string
	var width, height int

	cmd := &cobra.Command{
		Use:   "render [flags] input.geojson",
		Short: "Draw decorated paths into a PNG or PDF file",
		Long: `Read line geometries from a GeoJSON feature collection and draw them,
together with their decorations, into a preview image.  The output format
is chosen by the file extension of --out (.png or .pdf).  If no canvas size
is given, the canvas is sized to fit the paths.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, &opts, args[0], out, width, height)
		},
	}
	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (.png or .pdf)")
	cmd.Flags().IntVar(&width, "width", 0, "canvas width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "canvas height in pixels")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runRender(cmd *cobra.Command, opts *patternOptions, input, out string, width, height int) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	ext := strings.ToLower(filepath.Ext(out))
	if ext != ".png" && ext != ".pdf" {
		return fmt.Errorf("unsupported output format %q", ext)
	}

	entries, err := opts.load(ctx, cmd)
	if err != nil {
		return err
	}
	paths, err := readPaths(input, cmd.InOrStdin())
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	scene := buildScene(paths, entries)
	if width <= 0 || height <= 0 {
		w, h := canvasSize(paths)
		width, height = orDefault(width, w), orDefault(height, h)
		logger.Debug("canvas size from path bounds", "width", width, "height", height)
	}
	scene.Width, scene.Height = width, height

	switch ext {
	case ".pdf":
		err = scene.WritePDF(out)
	default:
		err = writePNG(scene, out)
	}
	if err != nil {
		return err
	}
	prog.done("wrote preview", "file", out, "symbols", len(scene.Shapes))
	return nil
}

// buildScene places the symbols of all entries along all paths.
func buildScene(paths [][]vec.Vec2, entries []catalogue.Entry) *preview.Scene {
	patterns := make([]decorate.Pattern, len(entries))
	symbols := make([]symbol.Symbol, len(entries))
	for i, e := range entries {
		patterns[i] = e.Pattern()
		symbols[i] = e.NewSymbol()
	}

	scene := &preview.Scene{Paths: paths}
	for _, d := range decorate.Decorate(paths, patterns) {
		scene.Shapes = append(scene.Shapes, symbol.Build(symbols[d.Pattern], d.Placements)...)
	}
	return scene
}

// canvasSize returns a canvas size which contains all paths, with a margin.
func canvasSize(paths [][]vec.Vec2) (int, int) {
	var urx, ury float64
	for _, pts := range paths {
		idx := decorate.BuildSegmentIndex(pts)
		if idx.IsEmpty() {
			continue
		}
		b := idx.Bounds()
		urx = max(urx, b.URx)
		ury = max(ury, b.URy)
	}
	return int(math.Ceil(urx)) + canvasMargin, int(math.Ceil(ury)) + canvasMargin
}

// orDefault returns given if it is positive, and fallback otherwise.
func orDefault(given, fallback int) int {
	if given > 0 {
		return given
	}
	return fallback
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
