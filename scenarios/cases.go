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
	"math"

	"seehuhn.de/go/lineannot"
)

// with applies modify to a copy of opts.
func with(opts lineannot.Options, modify func(o *lineannot.Options)) lineannot.Options {
	modify(&opts)
	return opts
}

var (
	wideArea = lineannot.Area{Left: 0, Right: 200, Top: 0, Bottom: 100}
	narrow   = lineannot.Area{Left: 0, Right: 100, Top: 0, Bottom: 100}

	// yScale maps 0..100 onto the wide area, with 0 at the bottom.
	yScale = map[string]lineannot.LinearScale{
		"y": {Min: 0, Max: 100, Start: 100, End: 0},
	}
	// xScale maps 0..100 onto the wide area, left to right.
	xScale = map[string]lineannot.LinearScale{
		"x": {Min: 0, Max: 100, Start: 0, End: 200},
	}
)

var horizontalCases = []Scenario{
	{
		Name:   "value_only",
		Width:  200,
		Height: 100,
		Area:   wideArea, Scales: yScale, Active: -1, Advance: 20,
		Options: options("y", lineannot.Horizontal, 50, "MM", 6),
		Expect: Expect{
			Ends:  lineannot.Endpoints{X1: 0, Y1: 50, X2: 200, Y2: 50},
			Label: pt(74, 34),
			Hit:   []lineannot.Point{pt(100, 50), pt(0, 50), pt(200, 50.5)},
			Miss:  []lineannot.Point{pt(100, 80), pt(10, 52)},
		},
	},
	{
		Name:   "center_with_sublabel",
		Width:  200,
		Height: 100,
		Area:   wideArea, Scales: yScale, Active: -1, Advance: 20,
		Options: with(options("y", lineannot.Horizontal, 50, "MM", 5), func(o *lineannot.Options) {
			o.SubLabel.Enabled = true
			o.SubLabel.Title = "T"
			o.SubLabel.Label = "L"
		}),
		Expect: Expect{
			Ends:  lineannot.Endpoints{X1: 0, Y1: 50, X2: 200, Y2: 50},
			Label: pt(75, -5),
			Hit:   []lineannot.Point{pt(100, 50), pt(80, 0)},
			Miss:  []lineannot.Point{pt(100, 30)},
		},
	},
	{
		Name:   "left",
		Width:  200,
		Height: 100,
		Area:   wideArea, Scales: yScale, Active: -1, Advance: 20,
		Options: with(options("y", lineannot.Horizontal, 50, "MM", 5), func(o *lineannot.Options) {
			o.Label.Position = lineannot.PositionLeft
		}),
		Expect: Expect{
			Ends:  lineannot.Endpoints{X1: 0, Y1: 50, X2: 200, Y2: 50},
			Label: pt(0, 35),
			Hit:   []lineannot.Point{pt(20, 40)},
			Miss:  []lineannot.Point{pt(100, 40)},
		},
	},
	{
		Name:   "right",
		Width:  200,
		Height: 100,
		Area:   wideArea, Scales: yScale, Active: -1, Advance: 20,
		Options: with(options("y", lineannot.Horizontal, 50, "MM", 5), func(o *lineannot.Options) {
			o.Label.Position = lineannot.PositionRight
		}),
		Expect: Expect{
			Ends:  lineannot.Endpoints{X1: 0, Y1: 50, X2: 200, Y2: 50},
			Label: pt(150, 35),
			Hit:   []lineannot.Point{pt(180, 40)},
			Miss:  []lineannot.Point{pt(100, 40)},
		},
	},
	{
		Name:   "sloped",
		Width:  200,
		Height: 100,
		Area:   wideArea, Scales: yScale, Active: -1, Advance: 20,
		Options: with(options("y", lineannot.Horizontal, 50, "MM", 5), func(o *lineannot.Options) {
			o.EndValue = ptr(0.0)
		}),
		Expect: Expect{
			Ends:  lineannot.Endpoints{X1: 0, Y1: 50, X2: 200, Y2: 100},
			Label: pt(75, 60),
			Hit:   []lineannot.Point{pt(100, 75), pt(20, 55)},
			Miss:  []lineannot.Point{pt(100, 50), pt(20, 60)},
		},
	},
}

var verticalCases = []Scenario{
	{
		Name:   "top",
		Width:  200,
		Height: 100,
		Area:   wideArea, Scales: xScale, Active: -1, Advance: 20,
		Options: with(options("x", lineannot.Vertical, 50, "MM", 5), func(o *lineannot.Options) {
			o.Label.Position = lineannot.PositionTop
		}),
		Expect: Expect{
			Ends:  lineannot.Endpoints{X1: 100, Y1: 0, X2: 100, Y2: 100},
			Label: pt(75, 0),
			Hit:   []lineannot.Point{pt(100, 50), pt(120, 10)},
			Miss:  []lineannot.Point{pt(110, 50)},
		},
	},
	{
		Name:   "bottom",
		Width:  200,
		Height: 100,
		Area:   wideArea, Scales: xScale, Active: -1, Advance: 20,
		Options: with(options("x", lineannot.Vertical, 50, "MM", 5), func(o *lineannot.Options) {
			o.Label.Position = lineannot.PositionBottom
		}),
		Expect: Expect{
			Ends:  lineannot.Endpoints{X1: 100, Y1: 0, X2: 100, Y2: 100},
			Label: pt(75, 70),
			Hit:   []lineannot.Point{pt(100, 20), pt(120, 90)},
			Miss:  []lineannot.Point{pt(120, 10)},
		},
	},
	{
		Name:   "center",
		Width:  200,
		Height: 100,
		Area:   wideArea, Scales: xScale, Active: -1, Advance: 20,
		Options: options("x", lineannot.Vertical, 50, "MM", 5),
		Expect: Expect{
			Ends:  lineannot.Endpoints{X1: 100, Y1: 0, X2: 100, Y2: 100},
			Label: pt(75, 35),
			Hit:   []lineannot.Point{pt(100.5, 5), pt(76, 36)},
			Miss:  []lineannot.Point{pt(50, 50)},
		},
	},
	{
		// Left and right only apply to horizontal lines.
		Name:   "left_is_centered",
		Width:  200,
		Height: 100,
		Area:   wideArea, Scales: xScale, Active: -1, Advance: 20,
		Options: with(options("x", lineannot.Vertical, 50, "MM", 5), func(o *lineannot.Options) {
			o.Label.Position = lineannot.PositionLeft
		}),
		Expect: Expect{
			Ends:  lineannot.Endpoints{X1: 100, Y1: 0, X2: 100, Y2: 100},
			Label: pt(75, 35),
			Hit:   []lineannot.Point{pt(100, 90)},
			Miss:  []lineannot.Point{pt(10, 10)},
		},
	},
}

var clampCases = []Scenario{
	{
		// The box is wider than the chart; the left edge wins.
		Name:   "left_overflow",
		Width:  100,
		Height: 100,
		Area:   narrow, Scales: map[string]lineannot.LinearScale{"y": {Min: 0, Max: 100, Start: 100, End: 0}},
		Active: -1, Advance: 10,
		Options: options("y", lineannot.Horizontal, 50, "MMMMMMMMMMMMMMM", 10),
		Expect: Expect{
			Ends:  lineannot.Endpoints{X1: 0, Y1: 50, X2: 100, Y2: 50},
			Label: pt(0, 35),
		},
	},
	{
		Name:   "right_overflow",
		Width:  100,
		Height: 100,
		Area:   narrow, Scales: map[string]lineannot.LinearScale{"y": {Min: 0, Max: 100, Start: 100, End: 0}},
		Active: -1, Advance: 10,
		Options: with(options("y", lineannot.Horizontal, 50, "MMMMMMMMMMMMMMM", 10), func(o *lineannot.Options) {
			o.Label.XAdjust = 40
		}),
		Expect: Expect{
			Ends:  lineannot.Endpoints{X1: 0, Y1: 50, X2: 100, Y2: 50},
			Label: pt(-70, 35),
		},
	},
	{
		Name:   "right_edge",
		Width:  100,
		Height: 100,
		Area:   narrow, Scales: map[string]lineannot.LinearScale{"y": {Min: 0, Max: 100, Start: 100, End: 0}},
		Active: -1, Advance: 10,
		Options: with(options("y", lineannot.Horizontal, 50, "MMMMMM", 5), func(o *lineannot.Options) {
			o.Label.XAdjust = 30
		}),
		Expect: Expect{
			Ends:  lineannot.Endpoints{X1: 0, Y1: 50, X2: 100, Y2: 50},
			Label: pt(30, 40),
			Hit:   []lineannot.Point{pt(95, 45)},
			Miss:  []lineannot.Point{pt(20, 45)},
		},
	},
}

var activeCases = []Scenario{
	{
		Name:     "follow_active",
		Width:    200,
		Height:   100,
		Area:     wideArea,
		Scales:   yScale,
		Active:   2,
		Datasets: [][]float64{{10, 20, 80}},
		Advance:  20,
		Options: with(options("y", lineannot.Horizontal, 50, "", 5), func(o *lineannot.Options) {
			o.Label.Enabled = false
		}),
		Expect: Expect{
			Ends:  lineannot.Endpoints{X1: 0, Y1: 20, X2: 200, Y2: 20},
			Label: pt(95, 5),
			Hit:   []lineannot.Point{pt(50, 20)},
			Miss:  []lineannot.Point{pt(50, 50), pt(100, 15)},
		},
	},
	{
		// The active index has no data; the configured value is used.
		Name:     "active_out_of_range",
		Width:    200,
		Height:   100,
		Area:     wideArea,
		Scales:   yScale,
		Active:   7,
		Datasets: [][]float64{{10, 20, 80}},
		Advance:  20,
		Options: with(options("y", lineannot.Horizontal, 50, "", 5), func(o *lineannot.Options) {
			o.Label.Enabled = false
		}),
		Expect: Expect{
			Ends:  lineannot.Endpoints{X1: 0, Y1: 50, X2: 200, Y2: 50},
			Label: pt(95, 35),
			Hit:   []lineannot.Point{pt(50, 50)},
			Miss:  []lineannot.Point{pt(50, 20)},
		},
	},
}

var invalidCases = []Scenario{
	{
		Name:   "missing_scale",
		Width:  200,
		Height: 100,
		Area:   wideArea, Scales: yScale, Active: -1, Advance: 20,
		Options: options("nope", lineannot.Horizontal, 50, "MM", 5),
		Expect:  Expect{Unconfigured: true},
	},
	{
		Name:   "nan_value",
		Width:  200,
		Height: 100,
		Area:   wideArea, Scales: yScale, Active: -1, Advance: 20,
		Options: options("y", lineannot.Horizontal, math.NaN(), "MM", 5),
		Expect:  Expect{Unconfigured: true},
	},
	{
		Name:   "degenerate_scale",
		Width:  200,
		Height: 100,
		Area:   wideArea,
		Scales: map[string]lineannot.LinearScale{"y": {Min: 5, Max: 5, Start: 100, End: 0}},
		Active: -1, Advance: 20,
		Options: options("y", lineannot.Horizontal, 5, "MM", 5),
		Expect:  Expect{Unconfigured: true},
	},
}
