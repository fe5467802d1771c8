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

import "math"

// defaultEpsilon is the tolerance used by Line.Intersects when the caller
// passes a non-positive epsilon.
const defaultEpsilon = 0.001

// Line describes the annotation line in slope-intercept form.
//
// The axes are rotated by 90°, so the slope is Δx/Δy rather than Δy/Δx and
// the intercept is measured along the x-axis.  For a horizontal line M is
// infinite, for a vertical line M is zero.  Callers must use GetX and GetY
// together; GetY is not the inverse of a conventional y = mx + b line.
type Line struct {
	M  float64 // slope, Δx/Δy
	B  float64 // x-intercept at Y1
	Y1 float64 // y-coordinate of the first endpoint
}

// NewLine returns the line through (x1, y1) and (x2, y2).
func NewLine(x1, y1, x2, y2 float64) Line {
	b := x1
	if math.IsNaN(b) {
		b = 0
	}
	return Line{
		M:  (x2 - x1) / (y2 - y1),
		B:  b,
		Y1: y1,
	}
}

// GetX returns the x-coordinate of the line at height y.
func (l Line) GetX(y float64) float64 {
	return l.M*(y-l.Y1) + l.B
}

// GetY returns the y-coordinate of the line at horizontal position x.
func (l Line) GetY(x float64) float64 {
	return (x-l.B)/l.M + l.Y1
}

// Intersects reports whether (x, y) lies within epsilon of the line along
// both axes.  An axis whose projection is not finite does not constrain the
// result.  A non-positive epsilon selects a default of 0.001.
func (l Line) Intersects(x, y, epsilon float64) bool {
	if epsilon <= 0 {
		epsilon = defaultEpsilon
	}
	dy := l.GetY(x)
	dx := l.GetX(y)
	return (!isFinite(dy) || math.Abs(y-dy) < epsilon) &&
		(!isFinite(dx) || math.Abs(x-dx) < epsilon)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
