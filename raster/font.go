// seehuhn.de/go/lineannot - line annotations for 2D charts
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

package raster

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/lineannot"
)

// faceFor selects one of the built-in bitmap faces for f.  Bold styles use
// the bold Inconsolata face, sizes of 14 pixels and above the regular
// Inconsolata face, and everything else the 7x13 basic font.
func faceFor(f lineannot.Font) font.Face {
	switch {
	case strings.Contains(f.Style, "bold"):
		return inconsolata.Bold8x16
	case f.Size >= 14:
		return inconsolata.Regular8x16
	default:
		return basicfont.Face7x13
	}
}

// MeasureText implements lineannot.TextMeasurer.
func (c *Canvas) MeasureText(f lineannot.Font, s string) float64 {
	return fromFixed(font.MeasureString(faceFor(f), s))
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

func toFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}
