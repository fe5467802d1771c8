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

package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"seehuhn.de/go/lineannot"
	"seehuhn.de/go/lineannot/raster"
)

// Colors are only used when writing to a terminal.
var (
	hitColor  = color.New(color.FgGreen, color.Bold)
	missColor = color.New(color.FgRed)
)

var hitCmd = &cobra.Command{
	Use:   "hit <config.yaml> <x> <y>",
	Short: "Test whether a point lies on the annotation",
	Long: `The hit command prints "hit" if the canvas point (x, y) lies on the line
or inside the main label, and "miss" otherwise.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid x coordinate: %w", err)
		}
		y, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid y coordinate: %w", err)
		}

		cfg, err := lineannot.LoadConfig(args[0])
		if err != nil {
			return err
		}
		a := annotate(cfg, raster.NewCanvas(cfg.Width, cfg.Height))

		if a.HitTest(x, y) {
			hitColor.Fprintln(cmd.OutOrStdout(), "hit")
		} else {
			missColor.Fprintln(cmd.OutOrStdout(), "miss")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hitCmd)
}
