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
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// Errors reported by Configure.  In both cases the previous render model is
// kept.
var (
	ErrNoScale      = errors.New("scale not found")
	ErrInvalidPixel = errors.New("value does not map to a finite pixel")
)

// subLabelExtraWidth is added to each measured sub-label line.
const subLabelExtraWidth = 15

// subLabelSecondaryColor is the color of the second sub-label line.
const subLabelSecondaryColor = "rgba(0, 0, 0, 0.56)"

// Element is the contract between a chart host and an annotation.
type Element interface {
	Configure() error
	Draw(s Surface)
	HitTest(x, y float64) bool
	CenterPoint() Point
	Width() float64
	Height() float64
	Area() float64
}

var _ Element = (*LineAnnotation)(nil)

// Endpoints are the canvas coordinates of the two ends of the line.
type Endpoints struct {
	X1, Y1, X2, Y2 float64
}

// LabelBox is the laid out geometry and style of a label.
// X and Y give the top-left corner of the box, Width and Height include
// the padding on both sides.
type LabelBox struct {
	X, Y, Width, Height float64

	XPadding, YPadding float64
	CornerRadius       float64
	XAdjust, YAdjust   float64
	Position           Position

	// Lines holds the text, one entry per line of the box.  The main label
	// has one line, the sub-label has a title and a label line.
	Lines      []string
	LineHeight float64

	Font            Font
	BackgroundColor string
	Color           string
	SecondaryColor  string

	Enabled bool
}

// Contains reports whether (x, y) lies inside the box.
func (b *LabelBox) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}

// hasContent reports whether the label is enabled and has non-empty text.
func (b *LabelBox) hasContent() bool {
	return b.Enabled && len(b.Lines) > 0 && b.Lines[0] != ""
}

// RenderModel holds everything needed to draw and hit-test a line
// annotation.  A RenderModel is never modified after Configure has
// published it.
type RenderModel struct {
	Mode     Mode
	Ends     Endpoints
	Line     Line
	Clip     Rect
	Border   StrokeStyle
	Label    LabelBox
	SubLabel LabelBox
}

// Range is the data interval claimed by an annotation on one scale.
type Range struct {
	Min, Max float64
}

// LineAnnotation is a straight line across the chart area, tied to a data
// value on one scale, with a main label and a two-line sub-label.
type LineAnnotation struct {
	Options Options

	chart    Chart
	measurer TextMeasurer

	model  *RenderModel
	ranges map[string]Range
}

// NewLineAnnotation returns an unconfigured line annotation.
// The measurer is used by Configure to size the labels.
func NewLineAnnotation(chart Chart, measurer TextMeasurer, opts Options) *LineAnnotation {
	return &LineAnnotation{
		Options:  opts,
		chart:    chart,
		measurer: measurer,
	}
}

// Model returns the current render model, or nil if the annotation has not
// been configured successfully yet.
func (a *LineAnnotation) Model() *RenderModel {
	return a.model
}

// SetDataLimits records the data range covered by the annotation, so that
// the host can include it when fitting the axes.
func (a *LineAnnotation) SetDataLimits() {
	hi := a.Options.Value
	if a.Options.EndValue != nil {
		hi = *a.Options.EndValue
	}
	a.ranges = map[string]Range{
		a.Options.ScaleID: {Min: a.Options.Value, Max: hi},
	}
}

// Ranges returns the data ranges recorded by SetDataLimits.
func (a *LineAnnotation) Ranges() map[string]Range {
	return a.ranges
}

// Configure recomputes the render model from the options and the current
// state of the chart.  If the value cannot be mapped to a pixel position,
// an error is returned and the previous render model stays in place.
// Hosts are free to ignore the error; the annotation then keeps its last
// valid geometry, or stays invisible if it was never configured.
func (a *LineAnnotation) Configure() error {
	m, err := a.build()
	if err != nil {
		if debugEnabled() {
			Logger().Debug("configure skipped",
				slog.String("scale", a.Options.ScaleID),
				slog.Any("err", err))
		}
		return err
	}
	a.model = m
	return nil
}

// build computes a new render model without touching a.model.
func (a *LineAnnotation) build() (*RenderModel, error) {
	opts := &a.Options

	index, ok := a.chart.ActiveIndex()
	if !ok {
		index = -1
	}
	value := opts.Value
	if ok {
		if v, found := a.chart.DatasetValue(0, index); found {
			value = v
		}
	}

	scale, ok := a.chart.Scale(opts.ScaleID)
	if !ok {
		return nil, fmt.Errorf("%q: %w", opts.ScaleID, ErrNoScale)
	}
	pixel := math.NaN()
	if !math.IsNaN(value) {
		pixel = scale.PixelForValue(value)
	}
	endPixel := pixel
	if opts.EndValue != nil && !math.IsNaN(*opts.EndValue) {
		endPixel = scale.PixelForValue(*opts.EndValue)
	}
	if !isFinite(pixel) {
		return nil, fmt.Errorf("%q: value %g: %w", opts.ScaleID, value, ErrInvalidPixel)
	}

	area := a.chart.ChartArea()
	m := &RenderModel{
		Mode: opts.Mode,
		Clip: Rect{X1: area.Left, Y1: area.Top, X2: area.Right, Y2: area.Bottom},
	}
	if opts.Mode == Horizontal {
		m.Ends = Endpoints{X1: area.Left, X2: area.Right, Y1: pixel, Y2: endPixel}
	} else {
		m.Ends = Endpoints{Y1: area.Top, Y2: area.Bottom, X1: pixel, X2: endPixel}
	}
	m.Line = NewLine(m.Ends.X1, m.Ends.Y1, m.Ends.X2, m.Ends.Y2)

	// The sub-label is always laid out.  When it is disabled, only its
	// position moves off the surface.
	sub := &opts.SubLabel
	subEnabled := sub.enabled(index)
	subLabel := sub.label(index)
	subTitle := sub.title(index)
	subFont := sub.Font()
	subWidth := max(
		a.measurer.MeasureText(subFont, subLabel)+subLabelExtraWidth,
		a.measurer.MeasureText(subFont, subTitle)+subLabelExtraWidth)
	subLineHeight := a.measurer.MeasureText(subFont, "M")
	subHeight := subLineHeight * 3.5
	subPos := placeSubLabel(m, labelGeometry{
		Width:    subWidth,
		Height:   subHeight,
		XPadding: sub.XPadding,
		YPadding: sub.YPadding,
	}, subEnabled)
	m.SubLabel = newLabelBox(sub, subPos, subWidth, subHeight, subEnabled)
	m.SubLabel.Lines = []string{subTitle, subLabel}
	m.SubLabel.LineHeight = subLineHeight
	m.SubLabel.SecondaryColor = subLabelSecondaryColor

	lbl := &opts.Label
	mainEnabled := lbl.enabled(index)
	content := lbl.content(index)
	mainFont := lbl.Font()
	textWidth := a.measurer.MeasureText(mainFont, content)
	textHeight := a.measurer.MeasureText(mainFont, "M")
	mainPos := placeMainLabel(m, lbl.Position, labelGeometry{
		Width:    textWidth,
		Height:   textHeight,
		XPadding: lbl.XPadding,
		YPadding: lbl.YPadding,
		XAdjust:  lbl.XAdjust,
		YAdjust:  lbl.YAdjust,
	}, subEnabled)
	m.Label = newLabelBox(lbl, mainPos, textWidth, textHeight, mainEnabled)
	m.Label.Lines = []string{content}
	m.Label.LineHeight = textHeight

	m.Border = StrokeStyle{
		Color:      opts.BorderColor,
		Width:      opts.BorderWidth,
		Dash:       append([]float64(nil), opts.BorderDash...),
		DashOffset: opts.BorderDashOffset,
	}
	return m, nil
}

// newLabelBox turns an anchor position and a text extent into the outer
// box of a label.
func newLabelBox(o *LabelOptions, pos Point, textWidth, textHeight float64, enabled bool) LabelBox {
	return LabelBox{
		X:               pos.X - o.XPadding,
		Y:               pos.Y - o.YPadding,
		Width:           textWidth + 2*o.XPadding,
		Height:          textHeight + 2*o.YPadding,
		XPadding:        o.XPadding,
		YPadding:        o.YPadding,
		CornerRadius:    o.CornerRadius,
		XAdjust:         o.XAdjust,
		YAdjust:         o.YAdjust,
		Position:        o.Position,
		Font:            o.Font(),
		BackgroundColor: o.BackgroundColor,
		Color:           o.Color,
		Enabled:         enabled,
	}
}

// Draw renders the annotation onto s.  Nothing is drawn before the first
// successful call to Configure.
//
// The line is only stroked while the main label is shown.  The sub-label
// is always drawn; when it is disabled its box sits at an off-surface
// position.
func (a *LineAnnotation) Draw(s Surface) {
	m := a.model
	if m == nil {
		return
	}

	s.Save()
	defer s.Restore()

	s.ClipRect(m.Clip.X1, m.Clip.Y1, m.Clip.X2-m.Clip.X1, m.Clip.Y2-m.Clip.Y1)
	s.SetStroke(m.Border)

	if m.Label.hasContent() {
		s.StrokeLine(m.Ends.X1, m.Ends.Y1, m.Ends.X2, m.Ends.Y2)

		b := &m.Label
		s.FillRoundedRect(b.X, b.Y, b.Width, b.Height, b.CornerRadius, b.BackgroundColor)
		s.FillText(b.Font, b.Lines[0], b.X+b.Width/2, b.Y+b.Height/2, b.Color)
	}

	b := &m.SubLabel
	s.FillRoundedRect(b.X, b.Y, b.Width, b.Height, b.CornerRadius, b.BackgroundColor)
	cx := b.X + b.Width/2
	cy := b.Y + b.Height/2
	s.FillText(b.Font, b.Lines[0], cx, cy-b.LineHeight*0.7, b.Color)
	s.FillText(b.Font, b.Lines[1], cx, cy+b.LineHeight*1.2, b.SecondaryColor)
}

// HitTest reports whether (x, y) is on the line, within a band of the
// border width, or inside the main label.  The sub-label does not take
// part in hit-testing.
func (a *LineAnnotation) HitTest(x, y float64) bool {
	m := a.model
	if m == nil {
		return false
	}
	epsilon := m.Border.Width
	if !(epsilon > 0) {
		epsilon = 1
	}
	if m.Line.Intersects(x, y, epsilon) {
		return true
	}
	return m.Label.hasContent() && m.Label.Contains(x, y)
}

// CenterPoint returns the midpoint of the line.
func (a *LineAnnotation) CenterPoint() Point {
	m := a.model
	if m == nil {
		return Point{}
	}
	return Point{
		X: (m.Ends.X1 + m.Ends.X2) / 2,
		Y: (m.Ends.Y1 + m.Ends.Y2) / 2,
	}
}

// Width returns the horizontal extent of the line.
func (a *LineAnnotation) Width() float64 {
	if a.model == nil {
		return 0
	}
	return math.Abs(a.model.Ends.X2 - a.model.Ends.X1)
}

// Height returns the vertical extent of the line.
func (a *LineAnnotation) Height() float64 {
	if a.model == nil {
		return 0
	}
	return math.Abs(a.model.Ends.Y2 - a.model.Ends.Y1)
}

// Area returns the length of the diagonal of the line's bounding box.
// Despite the name, this is a length and not an area.
func (a *LineAnnotation) Area() float64 {
	return math.Hypot(a.Width(), a.Height())
}
