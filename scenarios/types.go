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

package scenarios

import (
	"unicode/utf8"

	"seehuhn.de/go/lineannot"
)

// Scenario defines a chart, a line annotation on it, and the geometry the
// annotation is expected to have after Configure.
type Scenario struct {
	Name   string // lowercase a-z and _ only
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels

	Area     lineannot.Area
	Scales   map[string]lineannot.LinearScale
	Active   int // index of the active element, or -1
	Datasets [][]float64

	// Advance is the width of every character, and the height of a line,
	// when the scenario is laid out with Monospace.
	Advance float64

	Options lineannot.Options
	Expect  Expect
}

// Expect lists the results of configuring a scenario with Monospace text
// measurement.
type Expect struct {
	// Unconfigured is set if Configure must fail.  The other fields are
	// unused in this case.
	Unconfigured bool

	Ends  lineannot.Endpoints
	Label lineannot.Point // top-left corner of the main label box

	Hit  []lineannot.Point // points for which HitTest returns true
	Miss []lineannot.Point // points for which HitTest returns false
}

// Chart returns a new chart for the scenario.
func (s *Scenario) Chart() *lineannot.StaticChart {
	scales := make(map[string]lineannot.Scale, len(s.Scales))
	for id, sc := range s.Scales {
		scales[id] = sc
	}
	return &lineannot.StaticChart{
		Area:     s.Area,
		Scales:   scales,
		Active:   s.Active,
		Datasets: s.Datasets,
	}
}

// Annotation returns an unconfigured annotation for the scenario, using
// the given text measurer.
func (s *Scenario) Annotation(m lineannot.TextMeasurer) *lineannot.LineAnnotation {
	return lineannot.NewLineAnnotation(s.Chart(), m, s.Options)
}

// Monospace measures text as if every character had the same width.
type Monospace struct {
	Advance float64
}

// MeasureText implements lineannot.TextMeasurer.
func (m Monospace) MeasureText(_ lineannot.Font, s string) float64 {
	return m.Advance * float64(utf8.RuneCountInString(s))
}

// pt is a shorthand for lineannot.Point.
func pt(x, y float64) lineannot.Point {
	return lineannot.Point{X: x, Y: y}
}

// options returns the default options with the main label showing
// content, padding p and the sub-label disabled.
func options(scaleID string, mode lineannot.Mode, value float64, content string, p float64) lineannot.Options {
	opts := lineannot.DefaultOptions()
	opts.ScaleID = scaleID
	opts.Mode = mode
	opts.Value = value
	opts.Label.Enabled = true
	opts.Label.Content = content
	opts.Label.XPadding = p
	opts.Label.YPadding = p
	opts.SubLabel.Enabled = false
	opts.SubLabel.XPadding = p
	opts.SubLabel.YPadding = p
	return opts
}

func ptr[T any](v T) *T {
	return &v
}
