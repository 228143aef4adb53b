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

// Package catalogue reads named decoration patterns from TOML files.
//
// A catalogue file contains one [[pattern]] table per pattern:
//
//	[[pattern]]
//	name = "arrows"
//	offset = "5%"
//	end_offset = 0
//	repeat = 40
//
//	  [pattern.symbol]
//	  kind = "arrow"
//	  size = 12
//	  head_angle = 50
//	  polygon = true
//
// Pattern values are numbers (pixels) or percentages of the path length.
package catalogue

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/decorate"
	"seehuhn.de/go/decorate/symbol"
)

// Symbol kinds.
const (
	KindArrow  = "arrow"
	KindDash   = "dash"
	KindMarker = "marker"
)

var (
	// ErrUnknownSymbol is returned for a symbol kind other than "arrow",
	// "dash" or "marker".
	ErrUnknownSymbol = errors.New("unknown symbol kind")

	// ErrNoPatterns is returned for a catalogue without patterns.
	ErrNoPatterns = errors.New("catalogue contains no patterns")
)

// Catalogue is a list of named decoration patterns.
type Catalogue struct {
	Patterns []Entry `toml:"pattern"`
}

// Entry is one named pattern together with the symbol drawn at each
// placement.
type Entry struct {
	Name      string       `toml:"name"`
	Offset    any          `toml:"offset"`
	EndOffset any          `toml:"end_offset"`
	Repeat    any          `toml:"repeat"`
	Symbol    SymbolConfig `toml:"symbol"`
}

// SymbolConfig describes the decoration symbol of an entry.
// Zero values select the defaults of package symbol.
type SymbolConfig struct {
	Kind      string  `toml:"kind"` // "arrow" (default), "dash" or "marker"
	Size      float64 `toml:"size"`
	HeadAngle float64 `toml:"head_angle"` // arrows only
	Polygon   *bool   `toml:"polygon"`    // arrows only, default true
}

// Default returns a catalogue with a single pattern, which places arrow
// heads at every tenth of the path length.
func Default() *Catalogue {
	return &Catalogue{
		Patterns: []Entry{
			{
				Name:      "arrows",
				Offset:    "5%",
				EndOffset: 0,
				Repeat:    "10%",
				Symbol:    SymbolConfig{Kind: KindArrow},
			},
		},
	}
}

// Load reads a catalogue from a TOML file and validates it.
func Load(fname string) (*Catalogue, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return c, nil
}

// Parse decodes and validates a catalogue in TOML format.
// Unknown keys are reported as errors.
func Parse(data []byte) (*Catalogue, error) {
	var c Catalogue
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that the catalogue has at least one pattern, that all
// names are non-empty and unique, and that all symbol kinds are known.
func (c *Catalogue) Validate() error {
	if len(c.Patterns) == 0 {
		return ErrNoPatterns
	}
	seen := make(map[string]bool, len(c.Patterns))
	for i, e := range c.Patterns {
		if e.Name == "" {
			return fmt.Errorf("pattern %d: missing name", i+1)
		}
		if seen[e.Name] {
			return fmt.Errorf("pattern %q: duplicate name", e.Name)
		}
		seen[e.Name] = true

		switch e.Symbol.Kind {
		case "", KindArrow, KindDash, KindMarker:
			// pass
		default:
			return fmt.Errorf("pattern %q: %w %q", e.Name, ErrUnknownSymbol, e.Symbol.Kind)
		}
	}
	return nil
}

// Lookup returns the entry with the given name.
func (c *Catalogue) Lookup(name string) (Entry, bool) {
	for _, e := range c.Patterns {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Pattern returns the parsed placement pattern of the entry.
func (e Entry) Pattern() decorate.Pattern {
	raw := decorate.RawPattern{
		Offset:    e.Offset,
		EndOffset: e.EndOffset,
		Repeat:    e.Repeat,
	}
	return raw.Parse()
}

// NewSymbol returns the decoration symbol of the entry.
// Unknown kinds give an arrow head; use [Catalogue.Validate] to reject them.
func (e Entry) NewSymbol() symbol.Symbol {
	s := e.Symbol
	switch s.Kind {
	case KindDash:
		return symbol.Dash{PixelSize: s.Size}
	case KindMarker:
		return symbol.Marker{Radius: s.Size / 2}
	default:
		open := s.Polygon != nil && !*s.Polygon
		return symbol.ArrowHead{PixelSize: s.Size, HeadAngle: s.HeadAngle, Open: open}
	}
}
