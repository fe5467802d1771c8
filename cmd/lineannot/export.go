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
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"seehuhn.de/go/lineannot/raster"
	"seehuhn.de/go/lineannot/scenarios"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render all built-in scenarios to PNG files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(exportDir, 0o755); err != nil {
			return err
		}
		for _, category := range slices.Sorted(maps.Keys(scenarios.All)) {
			for _, sc := range scenarios.All[category] {
				name := category + "_" + sc.Name
				c := raster.NewCanvas(sc.Width, sc.Height)
				c.Clear("white")
				a := sc.Annotation(c)
				if err := a.Configure(); err != nil {
					slog.Debug("scenario not configured", "scenario", name, "err", err)
				}
				a.Draw(c)

				fname := filepath.Join(exportDir, name+".png")
				if err := writePNG(fname, c); err != nil {
					return err
				}
				slog.Info("wrote image", "file", fname)
			}
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "output", "o", "scenarios", "output directory")
	rootCmd.AddCommand(exportCmd)
}
