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

package decorate

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	tstrconv "github.com/tdewolff/parse/v2/strconv"
)

// Length is a pattern parameter before it is resolved against the length
// of a specific path.  The two implementations are [Absolute] and
// [Relative].
type Length interface {
	// Resolve converts the length into pixels, for a path of the given
	// total length.
	Resolve(totalLength float64) float64

	isLength()
}

// Absolute is a fixed distance in pixels.
type Absolute float64

// Resolve returns the distance unchanged.
func (a Absolute) Resolve(float64) float64 {
	return float64(a)
}

func (a Absolute) String() string {
	return strconv.FormatFloat(float64(a), 'g', -1, 64) + "px"
}

func (Absolute) isLength() {}

// Relative is a fraction of the total path length.
type Relative float64

// Resolve returns the fraction of the total length.
func (r Relative) Resolve(totalLength float64) float64 {
	return float64(r) * totalLength
}

func (r Relative) String() string {
	return strconv.FormatFloat(float64(r)*100, 'g', -1, 64) + "%"
}

func (Relative) isLength() {}

// resolve is like l.Resolve, but maps nil to Relative(0).
func resolve(l Length, totalLength float64) float64 {
	if l == nil {
		return 0
	}
	return l.Resolve(totalLength)
}

// ParseLength converts a raw pattern value into a Length.
//
// A string containing "%" is a percentage of the path length: the leading
// number is parsed and divided by 100.  All other values are converted to a
// number n, where nil, NaN, unparseable strings and unsupported types
// give 0.
// The result is Absolute(n) if n > 0 and Relative(n) otherwise.  In
// particular, 0 means "no offset" and negative numbers are interpreted as
// (negative) fractions of the path length.
func ParseLength(raw any) Length {
	if s, ok := raw.(string); ok && strings.Contains(s, "%") {
		return Relative(leadingNumber(s) / 100)
	}

	n := toNumber(raw)
	if math.IsNaN(n) {
		n = 0
	}
	if n > 0 {
		return Absolute(n)
	}
	return Relative(n)
}

// toNumber converts a raw value to a float64, using 0 for anything which
// does not represent a number.
func toNumber(raw any) float64 {
	switch x := raw.(type) {
	case nil:
		return 0
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case json.Number:
		return leadingNumber(string(x))
	case string:
		return leadingNumber(x)
	default:
		return 0
	}
}

// leadingNumber parses the decimal number at the start of s, ignoring
// leading white space and any trailing characters.  If s does not start
// with a number, 0 is returned.
func leadingNumber(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r\f\v")
	f, n := tstrconv.ParseFloat([]byte(s))
	if n == 0 {
		return 0
	}
	return f
}
