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
	"image"
	"image/color"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/lineannot"
)

// Canvas is a lineannot.Surface which draws into an RGBA image.
//
// Colors are CSS color strings, see ParseColor.  Strings which cannot be
// parsed are drawn in black.
type Canvas struct {
	Img *image.RGBA

	// Cap is the cap style used at the ends of stroked lines and dashes.
	// Only LineCapButt and LineCapSquare are supported; other values are
	// treated as LineCapButt.
	Cap graphics.LineCapStyle

	r      *Rasteriser
	mask   *image.Alpha
	clip   rect.Rect
	stack  []rect.Rect
	stroke lineannot.StrokeStyle
}

var _ lineannot.Surface = (*Canvas)(nil)

// NewCanvas returns a canvas of the given size, filled with transparent
// black.
func NewCanvas(width, height int) *Canvas {
	bounds := image.Rect(0, 0, width, height)
	full := rect.Rect{LLx: 0, LLy: 0, URx: float64(width), URy: float64(height)}
	return &Canvas{
		Img:    image.NewRGBA(bounds),
		Cap:    graphics.LineCapButt,
		r:      NewRasteriser(full),
		mask:   image.NewAlpha(bounds),
		clip:   full,
		stroke: lineannot.StrokeStyle{Color: "black", Width: 1},
	}
}

// Clear fills the whole image with the given color.
func (c *Canvas) Clear(col string) {
	draw.Draw(c.Img, c.Img.Bounds(), image.NewUniform(c.color(col)), image.Point{}, draw.Src)
}

// Save implements lineannot.Surface.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.clip)
}

// Restore implements lineannot.Surface.
func (c *Canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.clip = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

// ClipRect implements lineannot.Surface.  The clip region is rounded
// outwards to whole pixels.
func (c *Canvas) ClipRect(x, y, width, height float64) {
	x0 := max(c.clip.LLx, math.Floor(min(x, x+width)))
	y0 := max(c.clip.LLy, math.Floor(min(y, y+height)))
	x1 := min(c.clip.URx, math.Ceil(max(x, x+width)))
	y1 := min(c.clip.URy, math.Ceil(max(y, y+height)))
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	c.clip = rect.Rect{LLx: x0, LLy: y0, URx: x1, URy: y1}
}

// SetStroke implements lineannot.Surface.
func (c *Canvas) SetStroke(s lineannot.StrokeStyle) {
	c.stroke = s
}

// StrokeLine implements lineannot.Surface.
func (c *Canvas) StrokeLine(x1, y1, x2, y2 float64) {
	w := c.stroke.Width
	if !(w > 0) {
		w = 1
	}
	a := vec.Vec2{X: x1, Y: y1}
	b := vec.Vec2{X: x2, Y: y2}
	quads := strokeQuads(a, b, w, dashPattern(c.stroke.Dash), c.stroke.DashOffset, c.Cap == graphics.LineCapSquare)
	if len(quads) == 0 {
		return
	}
	c.fill(quadPath(quads), c.color(c.stroke.Color))
}

// FillRoundedRect implements lineannot.Surface.
func (c *Canvas) FillRoundedRect(x, y, width, height, radius float64, col string) {
	if !(width > 0) || !(height > 0) {
		return
	}
	c.fill(RoundedRect(x, y, width, height, radius), c.color(col))
}

// FillText implements lineannot.Surface.
func (c *Canvas) FillText(f lineannot.Font, s string, x, y float64, col string) {
	if s == "" {
		return
	}
	clip := c.clipBounds()
	if clip.Empty() {
		return
	}
	face := faceFor(f)
	metrics := face.Metrics()
	width := fromFixed(font.MeasureString(face, s))
	baseline := y + (fromFixed(metrics.Ascent)-fromFixed(metrics.Descent))/2

	d := &font.Drawer{
		Dst:  c.Img.SubImage(clip).(*image.RGBA),
		Src:  image.NewUniform(c.color(col)),
		Face: face,
	}
	d.Dot.X = toFixed(x - width/2)
	d.Dot.Y = toFixed(baseline)
	d.DrawString(s)
}

// clipBounds returns the clip region as an image rectangle.
func (c *Canvas) clipBounds() image.Rectangle {
	return image.Rect(int(c.clip.LLx), int(c.clip.LLy), int(c.clip.URx), int(c.clip.URy)).
		Intersect(c.Img.Bounds())
}

// fill rasterises p into the coverage mask and composites col through the
// mask onto the image.
func (c *Canvas) fill(p path.Path, col color.Color) {
	c.r.Clip = c.clip
	dirty := image.Rectangle{}
	c.r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		row := c.mask.Pix[y*c.mask.Stride+xMin:]
		for i, cov := range coverage {
			row[i] = uint8(cov*255 + 0.5)
		}
		dirty = dirty.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
	})
	if dirty.Empty() {
		return
	}
	draw.DrawMask(c.Img, dirty, image.NewUniform(col), image.Point{}, c.mask, dirty.Min, draw.Over)
	for y := dirty.Min.Y; y < dirty.Max.Y; y++ {
		off := y * c.mask.Stride
		clear(c.mask.Pix[off+dirty.Min.X : off+dirty.Max.X])
	}
}

func (c *Canvas) color(s string) color.Color {
	col, err := ParseColor(s)
	if err != nil {
		lineannot.Logger().Debug("raster: using black", slog.Any("err", err))
		return color.Black
	}
	return col
}

// dashPattern normalises a dash array the way HTML canvas does: odd-length
// patterns are repeated once, and patterns with negative entries or zero
// total length mean a solid line.
func dashPattern(dash []float64) []float64 {
	if len(dash) == 0 {
		return nil
	}
	total := 0.0
	for _, d := range dash {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return nil
		}
		total += d
	}
	if total == 0 {
		return nil
	}
	if len(dash)%2 == 1 {
		dash = append(append([]float64(nil), dash...), dash...)
	}
	return dash
}

// strokeQuads returns the outlines of the "on" parts of the segment a-b,
// each as a quadrilateral of the given width.
func strokeQuads(a, b vec.Vec2, width float64, dash []float64, offset float64, square bool) [][4]vec.Vec2 {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return nil
	}
	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(width / 2)

	var quads [][4]vec.Vec2
	add := func(s0, s1 float64) {
		if square {
			s0 -= width / 2
			s1 += width / 2
		}
		if s1 <= s0 {
			return
		}
		p := a.Add(t.Mul(s0))
		q := a.Add(t.Mul(s1))
		quads = append(quads, [4]vec.Vec2{p.Add(n), q.Add(n), q.Sub(n), p.Sub(n)})
	}

	if dash == nil {
		add(0, length)
		return quads
	}

	period := 0.0
	for _, x := range dash {
		period += x
	}
	phase := math.Mod(offset, period)
	if phase < 0 {
		phase += period
	}
	i := 0
	rem := dash[0]
	for phase > 0 {
		if phase >= rem {
			phase -= rem
			i = (i + 1) % len(dash)
			rem = dash[i]
		} else {
			rem -= phase
			phase = 0
		}
	}

	for s := 0.0; s < length; {
		e := min(s+rem, length)
		if i%2 == 0 {
			add(s, e)
		}
		s = e
		i = (i + 1) % len(dash)
		rem = dash[i]
	}
	return quads
}

// quadPath returns a path consisting of the given quadrilaterals.
func quadPath(quads [][4]vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, q := range quads {
			if !yield(path.CmdMoveTo, q[:1]) {
				return
			}
			for i := 1; i < 4; i++ {
				if !yield(path.CmdLineTo, q[i:i+1]) {
					return
				}
			}
			if !yield(path.CmdClose, nil) {
				return
			}
		}
	}
}

// RoundedRect returns the outline of a rectangle with circular corners.
// The radius is limited to half the shorter side.
func RoundedRect(x, y, width, height, radius float64) path.Path {
	r := min(max(radius, 0), width/2, height/2)
	// magic number for circular arcs approximated by cubic Béziers
	const k = 0.5522847498
	kr := k * r

	x1, y1 := x+width, y+height
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2
		buf[0] = vec.Vec2{X: x + r, Y: y}
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		corners := [4][4]vec.Vec2{
			{{X: x1 - r, Y: y}, {X: x1 - r + kr, Y: y}, {X: x1, Y: y + r - kr}, {X: x1, Y: y + r}},
			{{X: x1, Y: y1 - r}, {X: x1, Y: y1 - r + kr}, {X: x1 - r + kr, Y: y1}, {X: x1 - r, Y: y1}},
			{{X: x + r, Y: y1}, {X: x + r - kr, Y: y1}, {X: x, Y: y1 - r + kr}, {X: x, Y: y1 - r}},
			{{X: x, Y: y + r}, {X: x, Y: y + r - kr}, {X: x + r - kr, Y: y}, {X: x + r, Y: y}},
		}
		for _, c := range corners {
			buf[0] = c[0]
			if !yield(path.CmdLineTo, buf[:1]) {
				return
			}
			if r > 0 {
				buf[0], buf[1], buf[2] = c[1], c[2], c[3]
				if !yield(path.CmdCubeTo, buf[:3]) {
					return
				}
			}
		}
		yield(path.CmdClose, nil)
	}
}

// zeroLengthThreshold is the shortest segment which is stroked.
const zeroLengthThreshold = 1e-10
