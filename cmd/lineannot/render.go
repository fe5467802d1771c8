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
	"image/png"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/lineannot"
	"seehuhn.de/go/lineannot/raster"
)

var (
	renderOut        string
	renderBackground string
)

var renderCmd = &cobra.Command{
	Use:   "render <config.yaml>",
	Short: "Render the annotation to a PNG image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := lineannot.LoadConfig(args[0])
		if err != nil {
			return err
		}
		c := raster.NewCanvas(cfg.Width, cfg.Height)
		a := annotate(cfg, c)
		c.Clear(renderBackground)
		a.Draw(c)

		if err := writePNG(renderOut, c); err != nil {
			return err
		}
		slog.Info("wrote image", "file", renderOut, "width", cfg.Width, "height", cfg.Height)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "output", "o", "out.png", "output file")
	renderCmd.Flags().StringVar(&renderBackground, "background", "white", "background color")
	rootCmd.AddCommand(renderCmd)
}

func writePNG(fname string, c *raster.Canvas) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, c.Img)
}
