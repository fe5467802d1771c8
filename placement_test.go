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
	"testing"

	"github.com/stretchr/testify/assert"
)

func modelFor(mode Mode, ends Endpoints, clip Rect) *RenderModel {
	return &RenderModel{
		Mode: mode,
		Ends: ends,
		Line: NewLine(ends.X1, ends.Y1, ends.X2, ends.Y2),
		Clip: clip,
	}
}

func TestClampToViewport(t *testing.T) {
	clip := Rect{X1: 0, Y1: 0, X2: 100, Y2: 100}
	cases := []struct {
		name           string
		in             Point
		width, padding float64
		want           Point
	}{
		{"inside", Point{20, 7}, 50, 10, Point{20, 7}},
		{"left", Point{5, 7}, 50, 10, Point{10, 7}},
		{"right", Point{60, 7}, 50, 10, Point{40, 7}},
		{"too_wide_left_wins", Point{-25, 7}, 150, 10, Point{10, 7}},
		{"too_wide_right", Point{15, 7}, 150, 10, Point{-60, 7}},
		{"exact_fit", Point{10, 7}, 80, 10, Point{10, 7}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := clampToViewport(c.in, c.width, c.padding, clip)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestClampToViewportBounds(t *testing.T) {
	clip := Rect{X1: 0, Y1: 0, X2: 300, Y2: 100}
	for x := -200.0; x <= 400; x += 7 {
		for _, width := range []float64{10, 100, 250} {
			if width+2*10 > clip.X2 {
				continue
			}
			p := clampToViewport(Point{X: x}, width, 10, clip)
			assert.GreaterOrEqual(t, p.X, 10.0)
			assert.LessOrEqual(t, p.X+width, clip.X2)
		}
	}
}

func TestPlacementFor(t *testing.T) {
	cases := []struct {
		mode Mode
		pos  Position
		want placement
	}{
		{Vertical, PositionTop, placeTop},
		{Vertical, PositionBottom, placeBottom},
		{Vertical, PositionLeft, placeCenter},
		{Vertical, PositionRight, placeCenter},
		{Vertical, PositionCenter, placeCenter},
		{Horizontal, PositionLeft, placeLeft},
		{Horizontal, PositionRight, placeRight},
		{Horizontal, PositionTop, placeCenter},
		{Horizontal, PositionBottom, placeCenter},
		{Horizontal, PositionCenter, placeCenter},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, placementFor(c.mode, c.pos), "%s/%s", c.mode, c.pos)
	}
}

func TestPlaceMainLabelCentered(t *testing.T) {
	m := modelFor(Horizontal, Endpoints{0, 50, 200, 50}, Rect{0, 0, 200, 100})
	g := labelGeometry{Width: 40, Height: 20, XPadding: 5, YPadding: 5}

	plain := placeMainLabel(m, PositionCenter, g, false)
	assert.Equal(t, Point{80, 40}, plain)

	shifted := placeMainLabel(m, PositionCenter, g, true)
	assert.Equal(t, Point{80, 0}, shifted)

	box := newLabelBox(&LabelOptions{XPadding: 5, YPadding: 5}, shifted, g.Width, g.Height, true)
	assert.Equal(t, plain.Y-40-5, box.Y)
	assert.Equal(t, 75.0, box.X)
	assert.Equal(t, 50.0, box.Width)
	assert.Equal(t, 30.0, box.Height)
}

func TestPlaceMainLabelAdjust(t *testing.T) {
	m := modelFor(Horizontal, Endpoints{0, 50, 200, 50}, Rect{0, 0, 200, 100})
	g := labelGeometry{Width: 40, Height: 20, XPadding: 5, YPadding: 5, XAdjust: 10, YAdjust: -3}
	assert.Equal(t, Point{90, 37}, placeMainLabel(m, PositionCenter, g, false))
}

func TestPlaceMainLabelDirectional(t *testing.T) {
	horizontal := modelFor(Horizontal, Endpoints{0, 50, 200, 50}, Rect{0, 0, 200, 100})
	vertical := modelFor(Vertical, Endpoints{100, 0, 100, 100}, Rect{0, 0, 200, 100})
	g := labelGeometry{Width: 40, Height: 20, XPadding: 5, YPadding: 5}

	assert.Equal(t, Point{5, 40}, placeMainLabel(horizontal, PositionLeft, g, false))
	assert.Equal(t, Point{155, 40}, placeMainLabel(horizontal, PositionRight, g, false))
	assert.Equal(t, Point{80, 5}, placeMainLabel(vertical, PositionTop, g, false))
	assert.Equal(t, Point{80, 75}, placeMainLabel(vertical, PositionBottom, g, false))

	// Directional placements are neither clamped nor shifted for the
	// sub-label.
	g.XAdjust = -100
	assert.Equal(t, Point{-95, 40}, placeMainLabel(horizontal, PositionLeft, g, true))
	g.XAdjust = 0
	g.YAdjust = 4
	assert.Equal(t, Point{80, 9}, placeMainLabel(vertical, PositionTop, g, true))
}

func TestPlaceMainLabelSlopedVertical(t *testing.T) {
	// A vertical-mode line from (50, 0) to (150, 100) has slope 1.
	m := modelFor(Vertical, Endpoints{50, 0, 150, 100}, Rect{0, 0, 200, 100})
	g := labelGeometry{Width: 20, Height: 10, YPadding: 5}
	got := placeMainLabel(m, PositionTop, g, false)
	assert.Equal(t, Point{45, 5}, got)
}

func TestPlaceMainLabelHorizontalVerticalModeLine(t *testing.T) {
	// With y1 == y2 the slope is infinite and the x-anchor falls back
	// to X1.
	m := modelFor(Vertical, Endpoints{30, 60, 90, 60}, Rect{0, 0, 200, 100})
	g := labelGeometry{Width: 20, Height: 10, YPadding: 5}
	got := placeMainLabel(m, PositionTop, g, false)
	assert.Equal(t, Point{20, 65}, got)
}

func TestPlaceSubLabel(t *testing.T) {
	m := modelFor(Horizontal, Endpoints{0, 50, 200, 50}, Rect{0, 0, 200, 100})

	for _, g := range []labelGeometry{
		{},
		{Width: 40, Height: 70, XPadding: 5, YPadding: 5},
		{Width: 1e6, Height: -3, XPadding: 100},
	} {
		assert.Equal(t, OffSurface, placeSubLabel(m, g, false))
	}

	g := labelGeometry{Width: 40, Height: 70, XPadding: 5, YPadding: 5, XAdjust: 50, YAdjust: 50}
	assert.Equal(t, Point{80, 15}, placeSubLabel(m, g, true), "adjustments do not apply")

	g = labelGeometry{Width: 300, Height: 70, XPadding: 5}
	assert.Equal(t, Point{5, 15}, placeSubLabel(m, g, true))
}
