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

import "fmt"

// Mode is the orientation of the annotation line.
type Mode int

const (
	// Horizontal lines span the width of the chart area; the data value
	// determines the y-coordinate.
	Horizontal Mode = iota

	// Vertical lines span the height of the chart area; the data value
	// determines the x-coordinate.
	Vertical
)

func (m Mode) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "horizontal":
		*m = Horizontal
	case "vertical":
		*m = Vertical
	default:
		return fmt.Errorf("unknown mode %q", text)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Position selects where the main label is placed along the line.
type Position int

const (
	PositionCenter Position = iota
	PositionTop
	PositionBottom
	PositionLeft
	PositionRight
)

var positionNames = [...]string{"center", "top", "bottom", "left", "right"}

func (p Position) String() string {
	if p >= 0 && int(p) < len(positionNames) {
		return positionNames[p]
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Unknown keywords select the centered position.
func (p *Position) UnmarshalText(text []byte) error {
	*p = PositionCenter
	for i, name := range positionNames {
		if string(text) == name {
			*p = Position(i)
		}
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Callbacks resolve label state from the index of the active data
// element.  The index is -1 if no element is active.  Nil callbacks fall
// back to the static fields of LabelOptions.
type Callbacks struct {
	Enabled func(index int) bool
	Content func(index int) string
	Label   func(index int) string
	Title   func(index int) string
}

// LabelOptions configure the main label or the sub-label.
type LabelOptions struct {
	// Position is ignored for the sub-label.
	Position Position `yaml:"position"`

	XAdjust      float64 `yaml:"xAdjust"`
	YAdjust      float64 `yaml:"yAdjust"`
	XPadding     float64 `yaml:"xPadding"`
	YPadding     float64 `yaml:"yPadding"`
	CornerRadius float64 `yaml:"cornerRadius"`

	BackgroundColor string  `yaml:"backgroundColor"`
	FontFamily      string  `yaml:"fontFamily"`
	FontSize        float64 `yaml:"fontSize"`
	FontStyle       string  `yaml:"fontStyle"`
	Color           string  `yaml:"color"`

	// Static values, used when the corresponding callback is nil.
	Enabled bool   `yaml:"enabled"`
	Content string `yaml:"content"`
	Label   string `yaml:"label"`
	Title   string `yaml:"title"`

	Callbacks Callbacks `yaml:"-"`
}

// Font returns the font of the label text.
func (o LabelOptions) Font() Font {
	return Font{Size: o.FontSize, Style: o.FontStyle, Family: o.FontFamily}
}

func (o *LabelOptions) enabled(index int) bool {
	if o.Callbacks.Enabled != nil {
		return o.Callbacks.Enabled(index)
	}
	return o.Enabled
}

func (o *LabelOptions) content(index int) string {
	if o.Callbacks.Content != nil {
		return o.Callbacks.Content(index)
	}
	return o.Content
}

func (o *LabelOptions) label(index int) string {
	if o.Callbacks.Label != nil {
		return o.Callbacks.Label(index)
	}
	return o.Label
}

func (o *LabelOptions) title(index int) string {
	if o.Callbacks.Title != nil {
		return o.Callbacks.Title(index)
	}
	return o.Title
}

// Options configure a line annotation.
type Options struct {
	ScaleID string  `yaml:"scaleID"`
	Value   float64 `yaml:"value"`

	// EndValue, if set, gives the data value at the second endpoint.
	// This allows for sloped lines.
	EndValue *float64 `yaml:"endValue"`

	Mode     Mode         `yaml:"mode"`
	Label    LabelOptions `yaml:"label"`
	SubLabel LabelOptions `yaml:"subLabel"`

	BorderColor      string    `yaml:"borderColor"`
	BorderWidth      float64   `yaml:"borderWidth"`
	BorderDash       []float64 `yaml:"borderDash"`
	BorderDashOffset float64   `yaml:"borderDashOffset"`
}

// DefaultOptions returns the option values used by the chart plugin when
// nothing else is configured.
func DefaultOptions() Options {
	label := LabelOptions{
		Position:        PositionCenter,
		XPadding:        6,
		YPadding:        6,
		CornerRadius:    6,
		BackgroundColor: "rgba(0,0,0,0.8)",
		FontFamily:      "sans-serif",
		FontSize:        12,
		FontStyle:       "bold",
		Color:           "#fff",
	}
	return Options{
		Mode:        Horizontal,
		Label:       label,
		SubLabel:    label,
		BorderColor: "black",
		BorderWidth: 1,
	}
}
