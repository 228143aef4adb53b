// Command export writes the test cases, together with the computed
// placements, to JSON for use by external tools.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/decorate"
	"seehuhn.de/go/decorate/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string          `json:"name"`
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	Path       []jsonSegment   `json:"path"`
	CTM        []float64       `json:"ctm,omitempty"`
	Pattern    jsonPattern     `json:"pattern"`
	Symbol     string          `json:"symbol"`
	Placements []jsonPlacement `json:"placements"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

type jsonPattern struct {
	Offset    string `json:"offset"`
	EndOffset string `json:"endOffset"`
	Repeat    string `json:"repeat"`
}

type jsonPlacement struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Heading float64 `json:"heading"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	raw := decorate.RawPattern{
		Offset:    tc.Pattern.Offset,
		EndOffset: tc.Pattern.EndOffset,
		Repeat:    tc.Pattern.Repeat,
	}
	pattern := raw.Parse()

	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Path:   pathToJSON(tc.Path.Iter()),
		Pattern: jsonPattern{
			Offset:    lengthString(pattern.Offset),
			EndOffset: lengthString(pattern.EndOffset),
			Repeat:    lengthString(pattern.Repeat),
		},
		Symbol:     tc.Symbol.String(),
		Placements: []jsonPlacement{},
	}
	if tc.CTM != (matrix.Matrix{}) {
		jtc.CTM = tc.CTM[:]
	}

	for _, pts := range decorate.Polylines(tc.Path.Iter(), tc.CTM, 0) {
		for _, p := range decorate.BuildSegmentIndex(pts).Project(pattern) {
			jtc.Placements = append(jtc.Placements, jsonPlacement{
				X:       p.Pos.X,
				Y:       p.Pos.Y,
				Heading: p.Heading,
			})
		}
	}
	return jtc
}

func lengthString(l decorate.Length) string {
	if s, ok := l.(fmt.Stringer); ok {
		return s.String()
	}
	return ""
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
