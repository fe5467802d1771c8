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
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const minimalConfig = `
width: 200
height: 100
area: {left: 0, right: 200, top: 0, bottom: 100}
scales:
  - {id: y, axis: y, min: 0, max: 100}
`

func TestDecodeConfigDefaults(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(minimalConfig + `
annotation:
  scaleID: y
  value: 25
  label:
    content: hello
`))
	require.NoError(t, err)

	def := DefaultOptions()
	a := cfg.Annotation
	assert.Equal(t, "y", a.ScaleID)
	assert.Equal(t, 25.0, a.Value)
	assert.Nil(t, a.EndValue)
	assert.Equal(t, Horizontal, a.Mode)
	assert.Equal(t, "hello", a.Label.Content)
	assert.Equal(t, def.Label.XPadding, a.Label.XPadding)
	assert.Equal(t, def.Label.BackgroundColor, a.Label.BackgroundColor)
	assert.Equal(t, def.SubLabel, a.SubLabel)
	assert.Equal(t, def.BorderWidth, a.BorderWidth)
	assert.Nil(t, cfg.Active)
}

func TestDecodeConfigEnums(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(minimalConfig + `
active: 2
datasets: [[1, 2, 3]]
annotation:
  scaleID: y
  mode: vertical
  endValue: 75
  borderDash: [4, 2]
  label:
    position: top
  subLabel:
    position: sideways
`))
	require.NoError(t, err)

	a := cfg.Annotation
	assert.Equal(t, Vertical, a.Mode)
	assert.Equal(t, PositionTop, a.Label.Position)
	assert.Equal(t, PositionCenter, a.SubLabel.Position, "unknown positions are centered")
	require.NotNil(t, a.EndValue)
	assert.Equal(t, 75.0, *a.EndValue)
	assert.Equal(t, []float64{4, 2}, a.BorderDash)
	require.NotNil(t, cfg.Active)
	assert.Equal(t, 2, *cfg.Active)
}

func TestDecodeConfigErrors(t *testing.T) {
	cases := map[string]string{
		"mode": minimalConfig + "annotation: {mode: diagonal}\n",
		"size": "width: 0\nheight: 10\n",
		"axis": "width: 10\nheight: 10\nscales: [{id: a, axis: z}]\n",
		"id":   "width: 10\nheight: 10\nscales: [{axis: x}]\n",
		"dup":  "width: 10\nheight: 10\nscales: [{id: a, axis: x}, {id: a, axis: y}]\n",
		"key":  minimalConfig + "colour: red\n",
		"yaml": "width: [\n",
	}
	for name, in := range cases {
		_, err := DecodeConfig(strings.NewReader(in))
		assert.Error(t, err, name)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestConfigChart(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(`
width: 400
height: 300
area: {left: 50, right: 350, top: 10, bottom: 290}
scales:
  - {id: x, axis: x, min: 0, max: 10}
  - {id: y, axis: y, min: -1, max: 1}
datasets: [[0.5]]
`))
	require.NoError(t, err)

	chart := cfg.Chart()
	assert.Equal(t, cfg.Area, chart.ChartArea())
	_, ok := chart.ActiveIndex()
	assert.False(t, ok)

	x, ok := chart.Scale("x")
	require.True(t, ok)
	assert.Equal(t, 50.0, x.PixelForValue(0))
	assert.Equal(t, 200.0, x.PixelForValue(5))

	y, ok := chart.Scale("y")
	require.True(t, ok)
	assert.Equal(t, 290.0, y.PixelForValue(-1))
	assert.Equal(t, 10.0, y.PixelForValue(1))

	_, ok = chart.Scale("z")
	assert.False(t, ok)

	v, ok := chart.DatasetValue(0, 0)
	assert.True(t, ok)
	assert.Equal(t, 0.5, v)
	_, ok = chart.DatasetValue(1, 0)
	assert.False(t, ok)
}

func TestOptionsRoundTrip(t *testing.T) {
	opts := DefaultOptions()
	opts.Mode = Vertical
	opts.Label.Position = PositionBottom
	out, err := yaml.Marshal(&opts)
	require.NoError(t, err)
	assert.Contains(t, string(out), "mode: vertical")
	assert.Contains(t, string(out), "position: bottom")

	var back Options
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, opts.Mode, back.Mode)
	assert.Equal(t, opts.Label, back.Label)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "horizontal", Horizontal.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
	assert.Equal(t, "right", PositionRight.String())
	assert.Equal(t, "Position(-1)", Position(-1).String())
	assert.Equal(t, "bold 12px sans-serif", DefaultOptions().Label.Font().String())
	assert.Equal(t, "10px", Font{Size: 10}.String())
}

func TestLinearScaleDegenerate(t *testing.T) {
	s := LinearScale{Min: 3, Max: 3, Start: 0, End: 100}
	assert.True(t, math.IsNaN(s.PixelForValue(3)))
}
