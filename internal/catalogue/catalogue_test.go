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

package catalogue

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/decorate"
	"seehuhn.de/go/decorate/symbol"
)

const sample = `
[[pattern]]
name = "arrows"
offset = "5%"
end_offset = 0
repeat = 40

  [pattern.symbol]
  kind = "arrow"
  size = 12
  head_angle = 50
  polygon = false

[[pattern]]
name = "ticks"
repeat = "12.5%"

  [pattern.symbol]
  kind = "dash"
  size = 6

[[pattern]]
name = "ends"
offset = "100%"

  [pattern.symbol]
  kind = "marker"
  size = 8
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, c.Patterns, 3)

	arrows, ok := c.Lookup("arrows")
	require.True(t, ok)
	assert.Equal(t, decorate.Pattern{
		Offset:    decorate.Relative(0.05),
		EndOffset: decorate.Relative(0),
		Repeat:    decorate.Absolute(40),
	}, arrows.Pattern())
	assert.Equal(t, symbol.ArrowHead{PixelSize: 12, HeadAngle: 50, Open: true}, arrows.NewSymbol())

	ticks, ok := c.Lookup("ticks")
	require.True(t, ok)
	p := ticks.Pattern()
	assert.Equal(t, decorate.Relative(0), p.Offset)
	assert.Equal(t, decorate.Relative(0.125), p.Repeat)
	assert.Equal(t, symbol.Dash{PixelSize: 6}, ticks.NewSymbol())

	ends, ok := c.Lookup("ends")
	require.True(t, ok)
	assert.Equal(t, decorate.Relative(1), ends.Pattern().Offset)
	assert.Equal(t, symbol.Marker{Radius: 4}, ends.NewSymbol())

	_, ok = c.Lookup("missing")
	assert.False(t, ok)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "syntax error",
			input:   "[[pattern]\nname = ",
			wantErr: "",
		},
		{
			name:    "unknown key",
			input:   "[[pattern]]\nname = \"a\"\nrepaet = 4\n",
			wantErr: "unknown keys: pattern.repaet",
		},
		{
			name:    "unknown symbol key",
			input:   "[[pattern]]\nname = \"a\"\n[pattern.symbol]\ncolour = \"red\"\n",
			wantErr: "unknown keys: pattern.symbol.colour",
		},
		{
			name:    "no patterns",
			input:   "",
			wantErr: "catalogue contains no patterns",
		},
		{
			name:    "missing name",
			input:   "[[pattern]]\noffset = 4\n",
			wantErr: "pattern 1: missing name",
		},
		{
			name:    "duplicate name",
			input:   "[[pattern]]\nname = \"a\"\n[[pattern]]\nname = \"a\"\n",
			wantErr: `pattern "a": duplicate name`,
		},
		{
			name:    "unknown kind",
			input:   "[[pattern]]\nname = \"a\"\n[pattern.symbol]\nkind = \"star\"\n",
			wantErr: `pattern "a": unknown symbol kind "star"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_Sentinels(t *testing.T) {
	err := (&Catalogue{}).Validate()
	assert.ErrorIs(t, err, ErrNoPatterns)

	c := &Catalogue{Patterns: []Entry{{Name: "x", Symbol: SymbolConfig{Kind: "circle"}}}}
	assert.ErrorIs(t, c.Validate(), ErrUnknownSymbol)
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	e, ok := c.Lookup("arrows")
	require.True(t, ok)
	assert.Equal(t, decorate.Pattern{
		Offset:    decorate.Relative(0.05),
		EndOffset: decorate.Relative(0),
		Repeat:    decorate.Relative(0.1),
	}, e.Pattern())
	assert.Equal(t, symbol.ArrowHead{}, e.NewSymbol())
}

func TestNewSymbol_Defaults(t *testing.T) {
	polygon := true
	tests := []struct {
		name string
		cfg  SymbolConfig
		want symbol.Symbol
	}{
		{"empty", SymbolConfig{}, symbol.ArrowHead{}},
		{"explicit polygon", SymbolConfig{Kind: KindArrow, Polygon: &polygon}, symbol.ArrowHead{}},
		{"dash", SymbolConfig{Kind: KindDash}, symbol.Dash{}},
		{"marker", SymbolConfig{Kind: KindMarker}, symbol.Marker{}},
		{"unknown", SymbolConfig{Kind: "star", Size: 3}, symbol.ArrowHead{PixelSize: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Entry{Name: "x", Symbol: tt.cfg}.NewSymbol())
		})
	}
}

func TestLoad(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "patterns.toml")
	require.NoError(t, os.WriteFile(fname, []byte(sample), 0o644))

	c, err := Load(fname)
	require.NoError(t, err)
	assert.Len(t, c.Patterns, 3)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[[pattern]]\n"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad+": pattern 1: missing name")

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
