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
	"io"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"seehuhn.de/go/geom/vec"
)

// readPaths reads all line geometries from a GeoJSON feature collection.
// The name "-" denotes standard input.
func readPaths(fname string, stdin io.Reader) ([][]vec.Vec2, error) {
	var data []byte
	var err error
	if fname == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(fname)
	}
	if err != nil {
		return nil, err
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}

	var paths [][]vec.Vec2
	for _, f := range fc.Features {
		paths = appendLines(paths, f.Geometry)
	}
	return paths, nil
}

// appendLines appends one path for every line in g.  Polygon rings are
// treated as closed lines.  Points are ignored.
func appendLines(paths [][]vec.Vec2, g orb.Geometry) [][]vec.Vec2 {
	switch g := g.(type) {
	case orb.LineString:
		paths = append(paths, toVecs(g))
	case orb.MultiLineString:
		for _, ls := range g {
			paths = append(paths, toVecs(ls))
		}
	case orb.Ring:
		paths = append(paths, toVecs(g))
	case orb.Polygon:
		for _, r := range g {
			paths = append(paths, toVecs(r))
		}
	case orb.MultiPolygon:
		for _, p := range g {
			paths = appendLines(paths, p)
		}
	case orb.Collection:
		for _, sub := range g {
			paths = appendLines(paths, sub)
		}
	}
	return paths
}

func toVecs(pts []orb.Point) []vec.Vec2 {
	res := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		res[i] = vec.Vec2{X: p.X(), Y: p.Y()}
	}
	return res
}
