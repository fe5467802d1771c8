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
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes a chart together with one line annotation.  It is the
// format read by the lineannot command.
type Config struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Area   Area `yaml:"area"`

	Scales []ScaleConfig `yaml:"scales"`

	// Active is the index of the active data element, if any.
	Active   *int        `yaml:"active"`
	Datasets [][]float64 `yaml:"datasets"`

	Annotation Options `yaml:"annotation"`
}

// ScaleConfig describes a linear scale.  Axis "x" maps [Min, Max] onto
// [Area.Left, Area.Right], axis "y" maps it onto [Area.Bottom, Area.Top].
type ScaleConfig struct {
	ID   string  `yaml:"id"`
	Axis string  `yaml:"axis"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(fname string) (*Config, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

// DecodeConfig reads a YAML configuration.  Annotation options which are
// not given in the input keep the values from DefaultOptions.
func DecodeConfig(r io.Reader) (*Config, error) {
	cfg := &Config{
		Annotation: DefaultOptions(),
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, err
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) check() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", c.Width, c.Height)
	}
	seen := make(map[string]bool, len(c.Scales))
	for _, s := range c.Scales {
		if s.ID == "" {
			return fmt.Errorf("scale without id")
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate scale %q", s.ID)
		}
		seen[s.ID] = true
		if s.Axis != "x" && s.Axis != "y" {
			return fmt.Errorf("scale %q: invalid axis %q", s.ID, s.Axis)
		}
	}
	return nil
}

// Chart returns a chart with the scales and data of the configuration.
func (c *Config) Chart() *StaticChart {
	chart := &StaticChart{
		Area:     c.Area,
		Scales:   make(map[string]Scale, len(c.Scales)),
		Active:   -1,
		Datasets: c.Datasets,
	}
	if c.Active != nil {
		chart.Active = *c.Active
	}
	for _, s := range c.Scales {
		ls := LinearScale{Min: s.Min, Max: s.Max}
		if s.Axis == "x" {
			ls.Start, ls.End = c.Area.Left, c.Area.Right
		} else {
			ls.Start, ls.End = c.Area.Bottom, c.Area.Top
		}
		chart.Scales[s.ID] = ls
	}
	return chart
}
