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

package lineannot

import (
	"fmt"
	"math"
	"strings"
)

// Point is a position in canvas coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in canvas coordinates, with (X1, Y1)
// the top-left and (X2, Y2) the bottom-right corner.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// Contains reports whether p lies inside r, including the boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X1 && p.X <= r.X2 && p.Y >= r.Y1 && p.Y <= r.Y2
}

// Area is the plottable region of a chart, as reported by the host.
type Area struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// Scale maps data values to canvas coordinates along one axis.
// PixelForValue returns NaN for values the scale cannot map.
type Scale interface {
	PixelForValue(v float64) float64
}

// Chart is the view of the host chart engine used by an annotation.
type Chart interface {
	// Scale returns the scale with the given ID.
	Scale(id string) (Scale, bool)

	// ChartArea returns the current plottable area.
	ChartArea() Area

	// ActiveIndex returns the index of the currently active data element,
	// if any.
	ActiveIndex() (int, bool)

	// DatasetValue returns the value of element index in the given dataset.
	DatasetValue(dataset, index int) (float64, bool)
}

// Font describes a text style.  The String method gives the CSS font
// shorthand, which rendering surfaces may use as an opaque font key.
type Font struct {
	Size   float64
	Style  string
	Family string
}

func (f Font) String() string {
	var parts []string
	if f.Style != "" {
		parts = append(parts, f.Style)
	}
	parts = append(parts, fmt.Sprintf("%gpx", f.Size))
	if f.Family != "" {
		parts = append(parts, f.Family)
	}
	return strings.Join(parts, " ")
}

// TextMeasurer measures the advance width of a string.
type TextMeasurer interface {
	MeasureText(f Font, s string) float64
}

// StrokeStyle describes how the annotation line is stroked.
type StrokeStyle struct {
	Color      string
	Width      float64
	Dash       []float64
	DashOffset float64
}

// Surface is the rendering target of an annotation.  Coordinates are
// canvas coordinates, with y increasing downwards.
type Surface interface {
	TextMeasurer

	// Save pushes the clip region onto a stack; Restore pops it.
	Save()
	Restore()

	// ClipRect intersects the clip region with the given rectangle.
	ClipRect(x, y, width, height float64)

	SetStroke(s StrokeStyle)
	StrokeLine(x1, y1, x2, y2 float64)

	FillRoundedRect(x, y, width, height, radius float64, color string)

	// FillText draws s centered horizontally and vertically on (x, y).
	FillText(f Font, s string, x, y float64, color string)
}

// LinearScale maps the data interval [Min, Max] linearly onto the pixel
// interval [Start, End].  Values outside the data interval are still
// mapped; a degenerate data interval maps everything to NaN.
type LinearScale struct {
	Min, Max   float64
	Start, End float64
}

// PixelForValue implements the Scale interface.
func (s LinearScale) PixelForValue(v float64) float64 {
	if s.Max == s.Min {
		return math.NaN()
	}
	return s.Start + (v-s.Min)/(s.Max-s.Min)*(s.End-s.Start)
}

// StaticChart is a Chart with fixed scales and data.
type StaticChart struct {
	Area     Area
	Scales   map[string]Scale
	Active   int // index of the active element, or -1
	Datasets [][]float64
}

// Scale implements the Chart interface.
func (c *StaticChart) Scale(id string) (Scale, bool) {
	s, ok := c.Scales[id]
	return s, ok && s != nil
}

// ChartArea implements the Chart interface.
func (c *StaticChart) ChartArea() Area {
	return c.Area
}

// ActiveIndex implements the Chart interface.
func (c *StaticChart) ActiveIndex() (int, bool) {
	return c.Active, c.Active >= 0
}

// DatasetValue implements the Chart interface.
func (c *StaticChart) DatasetValue(dataset, index int) (float64, bool) {
	if dataset < 0 || dataset >= len(c.Datasets) {
		return 0, false
	}
	data := c.Datasets[dataset]
	if index < 0 || index >= len(data) {
		return 0, false
	}
	return data[index], true
}
