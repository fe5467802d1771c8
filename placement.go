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

import "log/slog"

// OffSurface is the position reported for a disabled sub-label.  It lies
// far outside any plausible canvas, so drawing at this position has no
// visible effect.
var OffSurface = Point{X: -9999, Y: -9999}

// subLabelReserve is the vertical space kept free above a centered main
// label when the sub-label is shown.
const subLabelReserve = 40

// placement is one of the five strategies for positioning the main label.
type placement int

const (
	placeCenter placement = iota
	placeTop
	placeBottom
	placeLeft
	placeRight
)

func (p placement) String() string {
	switch p {
	case placeTop:
		return "top"
	case placeBottom:
		return "bottom"
	case placeLeft:
		return "left"
	case placeRight:
		return "right"
	default:
		return "center"
	}
}

// placementFor maps a (mode, position) pair to a placement strategy.
// Top and bottom only apply to vertical lines, left and right only to
// horizontal lines.  Every other combination is centered.
func placementFor(mode Mode, pos Position) placement {
	switch {
	case mode == Vertical && pos == PositionTop:
		return placeTop
	case mode == Vertical && pos == PositionBottom:
		return placeBottom
	case mode == Horizontal && pos == PositionLeft:
		return placeLeft
	case mode == Horizontal && pos == PositionRight:
		return placeRight
	default:
		return placeCenter
	}
}

// labelGeometry collects the inputs shared by the label placers.
type labelGeometry struct {
	Width, Height      float64 // text extent, without padding
	XPadding, YPadding float64
	XAdjust, YAdjust   float64
}

// clampToViewport moves p horizontally so that a box of the given width
// stays inside clip.  The left edge is checked first; only if the box does
// not overflow on the left is the right edge considered.  The vertical
// position is never changed.
func clampToViewport(p Point, width, padding float64, clip Rect) Point {
	if p.X-padding < 0 {
		p.X = padding
	} else if p.X+width > clip.X2 {
		p.X = clip.X2 - width - padding
	}
	return p
}

// centerOf returns the position which centers a box of the given size on
// the bounding box of the endpoints.  The slope of the line is ignored.
func centerOf(ends Endpoints, width, height float64) Point {
	return Point{
		X: (ends.X1 + ends.X2 - width) / 2,
		Y: (ends.Y1 + ends.Y2 - height) / 2,
	}
}

// anchor computes the unclamped position of the main label for strategy p.
func (p placement) anchor(ends Endpoints, line Line, g labelGeometry) Point {
	var ret Point
	switch p {
	case placeTop:
		ret.Y = ends.Y1 + g.YPadding + g.YAdjust
		ret.X = xAt(line, ends, ret.Y) - (g.Width/2 + g.XAdjust)
	case placeBottom:
		ret.Y = ends.Y2 - (g.Height + g.YPadding + g.YAdjust)
		ret.X = xAt(line, ends, ret.Y) - (g.Width/2 + g.XAdjust)
	case placeLeft:
		ret.X = ends.X1 + g.XPadding + g.XAdjust
		ret.Y = line.GetY(ret.X) - (g.Height/2 - g.YAdjust)
	case placeRight:
		ret.X = ends.X2 - (g.Width + g.XPadding + g.XAdjust)
		ret.Y = line.GetY(ret.X) - (g.Height/2 - g.YAdjust)
	default:
		ret = centerOf(ends, g.Width, g.Height)
		ret.X += g.XAdjust
		ret.Y += g.YAdjust
	}
	return ret
}

// xAt evaluates the line at height y, falling back to X1 for a horizontal
// line where the slope is not finite.
func xAt(line Line, ends Endpoints, y float64) float64 {
	if isFinite(line.M) {
		return line.GetX(y)
	}
	return ends.X1
}

// reserveSubLabel shifts a centered label upwards to make room for the
// sub-label.
func reserveSubLabel(p Point, subLabelEnabled bool) Point {
	if subLabelEnabled {
		p.Y -= subLabelReserve
	}
	return p
}

// placeMainLabel returns the anchor of the main label.  Only the centered
// strategy is clamped to the viewport and shifted to make room for the
// sub-label; directional placements are returned unchanged.
func placeMainLabel(m *RenderModel, pos Position, g labelGeometry, subLabelEnabled bool) Point {
	strategy := placementFor(m.Mode, pos)
	ret := strategy.anchor(m.Ends, m.Line, g)
	if strategy == placeCenter {
		ret = clampToViewport(ret, g.Width, g.XPadding, m.Clip)
		ret = reserveSubLabel(ret, subLabelEnabled)
	}
	if debugEnabled() {
		Logger().Debug("main label placed",
			slog.String("strategy", strategy.String()),
			slog.Float64("x", ret.X), slog.Float64("y", ret.Y),
			slog.Float64("width", g.Width), slog.Float64("height", g.Height))
	}
	return ret
}

// placeSubLabel returns the anchor of the sub-label, or OffSurface if the
// sub-label is disabled.
func placeSubLabel(m *RenderModel, g labelGeometry, enabled bool) Point {
	if !enabled {
		return OffSurface
	}
	ret := centerOf(m.Ends, g.Width, g.Height)
	ret = clampToViewport(ret, g.Width, g.XPadding, m.Clip)
	if debugEnabled() {
		Logger().Debug("sub-label placed",
			slog.Float64("x", ret.X), slog.Float64("y", ret.Y),
			slog.Float64("width", g.Width), slog.Float64("height", g.Height))
	}
	return ret
}
