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
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/decorate"
	"seehuhn.de/go/decorate/internal/catalogue"
)

func newProjectCmd() *cobra.Command {
	var opts patternOptions
	var out string

	cmd := &cobra.Command{
		Use:   "project [flags] input.geojson",
		Short: "Write decoration placements as GeoJSON points",
		Long: `Read line geometries from a GeoJSON feature collection and write one
point feature per decoration placement.  Each point has the properties
"heading" (degrees), "pattern" (catalogue name) and "path" (index of the
input line).  Use "-" to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(cmd, &opts, args[0], out)
		},
	}
	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file")

	return cmd
}

func runProject(cmd *cobra.Command, opts *patternOptions, input, out string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	entries, err := opts.load(ctx, cmd)
	if err != nil {
		return err
	}
	paths, err := readPaths(input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	logger.Debug("read paths", "file", input, "paths", len(paths))

	prog := newProgress(logger)
	fc := placementFeatures(paths, entries)
	data, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if out == "-" {
		_, err = cmd.OutOrStdout().Write(data)
	} else {
		err = os.WriteFile(out, data, 0o644)
	}
	if err != nil {
		return err
	}
	prog.done("projected patterns", "placements", len(fc.Features), "paths", len(paths), "patterns", len(entries))
	return nil
}

// placementFeatures projects all entries onto all paths and returns the
// placements as point features.
func placementFeatures(paths [][]vec.Vec2, entries []catalogue.Entry) *geojson.FeatureCollection {
	patterns := make([]decorate.Pattern, len(entries))
	for i, e := range entries {
		patterns[i] = e.Pattern()
	}

	fc := geojson.NewFeatureCollection()
	for _, d := range decorate.Decorate(paths, patterns) {
		for _, p := range d.Placements {
			f := geojson.NewFeature(orb.Point{p.Pos.X, p.Pos.Y})
			f.Properties["heading"] = p.Heading
			f.Properties["pattern"] = entries[d.Pattern].Name
			f.Properties["path"] = d.Path
			fc.Append(f)
		}
	}
	return fc
}
