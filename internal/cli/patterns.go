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
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"seehuhn.de/go/decorate/internal/catalogue"
)

// patternOptions selects the patterns applied by a command.
type patternOptions struct {
	catalogue string
	names     []string

	offset    string
	endOffset string
	repeat    string
	symbol    string
}

func (o *patternOptions) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.catalogue, "catalogue", "c", "", "TOML pattern catalogue (default: arrows every 10%)")
	f.StringSliceVarP(&o.names, "pattern", "p", nil, "use only the named catalogue patterns")
	f.StringVar(&o.offset, "offset", "", "offset of the first decoration, in pixels or percent")
	f.StringVar(&o.endOffset, "end-offset", "", "distance to keep from the path end, in pixels or percent")
	f.StringVar(&o.repeat, "repeat", "", "spacing of decorations, in pixels or percent")
	f.StringVar(&o.symbol, "symbol", catalogue.KindArrow, "symbol for --offset/--repeat patterns (arrow, dash, marker)")
}

// adHoc reports whether the pattern was given on the command line.
func (o *patternOptions) adHoc(cmd *cobra.Command) bool {
	f := cmd.Flags()
	return f.Changed("offset") || f.Changed("end-offset") || f.Changed("repeat")
}

// load returns the catalogue entries selected by the options.
func (o *patternOptions) load(ctx context.Context, cmd *cobra.Command) ([]catalogue.Entry, error) {
	logger := loggerFromContext(ctx)

	var cat *catalogue.Catalogue
	switch {
	case o.adHoc(cmd):
		cat = &catalogue.Catalogue{
			Patterns: []catalogue.Entry{{
				Name:      "cli",
				Offset:    o.offset,
				EndOffset: o.endOffset,
				Repeat:    o.repeat,
				Symbol:    catalogue.SymbolConfig{Kind: o.symbol},
			}},
		}
		if err := cat.Validate(); err != nil {
			return nil, err
		}
	case o.catalogue != "":
		var err error
		cat, err = catalogue.Load(o.catalogue)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded catalogue", "file", o.catalogue, "patterns", len(cat.Patterns))
	default:
		cat = catalogue.Default()
	}

	if len(o.names) == 0 {
		return cat.Patterns, nil
	}
	entries := make([]catalogue.Entry, 0, len(o.names))
	for _, name := range o.names {
		e, ok := cat.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("pattern %q not found in catalogue", name)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
