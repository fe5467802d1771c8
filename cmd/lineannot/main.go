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

// Command lineannot lays out and draws line annotations described in YAML
// files.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/lineannot"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "lineannot",
	Short: "Lay out and draw line annotations for 2D charts",
	Long: `lineannot reads a chart description with a single line annotation from
a YAML file.  It can render the annotation to PNG or PDF, test points against
it, and export the built-in scenarios as images.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		lineannot.SetLogger(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print layout diagnostics")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// annotate returns the annotation described by cfg, configured against
// its chart.  Configuration errors are logged and leave the annotation
// invisible.
func annotate(cfg *lineannot.Config, m lineannot.TextMeasurer) *lineannot.LineAnnotation {
	a := lineannot.NewLineAnnotation(cfg.Chart(), m, cfg.Annotation)
	if err := a.Configure(); err != nil {
		slog.Warn("annotation not shown", "err", err)
	}
	return a
}
