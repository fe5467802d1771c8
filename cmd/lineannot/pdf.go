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
	"math"

	"github.com/mazznoer/csscolorparser"
	"github.com/spf13/cobra"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/lineannot"
	"seehuhn.de/go/lineannot/raster"
)

var pdfOut string

var pdfCmd = &cobra.Command{
	Use:   "pdf <config.yaml>",
	Short: "Write the annotation as vector graphics to a PDF file",
	Long: `The pdf command writes the line and the label boxes to a single page PDF
file, one PDF point per canvas pixel.  Colors are converted to gray levels,
composited onto a white page.  Label text is not included.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := lineannot.LoadConfig(args[0])
		if err != nil {
			return err
		}
		rec := newRecorder(raster.NewCanvas(cfg.Width, cfg.Height), cfg.Width, cfg.Height)
		annotate(cfg, rec).Draw(rec)

		if err := writePDF(pdfOut, float64(cfg.Width), float64(cfg.Height), rec.ops); err != nil {
			return err
		}
		slog.Info("wrote PDF", "file", pdfOut, "ops", len(rec.ops))
		return nil
	},
}

func init() {
	pdfCmd.Flags().StringVarP(&pdfOut, "output", "o", "out.pdf", "output file")
	rootCmd.AddCommand(pdfCmd)
}

// writePDF creates a single page PDF file and draws ops onto it.
func writePDF(fname string, width, height float64, ops []drawOp) error {
	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; canvas coordinates are top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})
	page.SetLineCap(graphics.LineCapButt)

	var dashed bool
	for _, op := range ops {
		switch op.kind {
		case opLine:
			page.SetStrokeColor(color.DeviceGray(op.gray))
			page.SetLineWidth(op.width)
			if len(op.dash) > 0 || dashed {
				page.SetLineDash(op.dash, op.dashPhase)
				dashed = len(op.dash) > 0
			}
			page.MoveTo(op.x1, op.y1)
			page.LineTo(op.x2, op.y2)
			page.Stroke()
		case opBox:
			page.SetFillColor(color.DeviceGray(op.gray))
			for cmd, pts := range raster.RoundedRect(op.x1, op.y1, op.x2-op.x1, op.y2-op.y1, op.radius) {
				switch cmd {
				case path.CmdMoveTo:
					page.MoveTo(pts[0].X, pts[0].Y)
				case path.CmdLineTo:
					page.LineTo(pts[0].X, pts[0].Y)
				case path.CmdCubeTo:
					page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
				case path.CmdClose:
					page.ClosePath()
				}
			}
			page.Fill()
		}
	}
	return page.Close()
}

type opKind int

const (
	opLine opKind = iota
	opBox
)

// drawOp is one clipped drawing operation in canvas coordinates.
type drawOp struct {
	kind           opKind
	x1, y1, x2, y2 float64
	gray           float64
	width          float64 // line width
	dash           []float64
	dashPhase      float64
	radius         float64 // corner radius of boxes
}

// recorder is a lineannot.Surface which collects drawing operations.
// Clipping is applied geometrically, since the operations are written to
// the PDF file without a clipping path.
type recorder struct {
	lineannot.TextMeasurer

	clip   lineannot.Rect
	stack  []lineannot.Rect
	stroke lineannot.StrokeStyle
	ops    []drawOp

	textSkipped bool
}

func newRecorder(m lineannot.TextMeasurer, width, height int) *recorder {
	return &recorder{
		TextMeasurer: m,
		clip:         lineannot.Rect{X2: float64(width), Y2: float64(height)},
		stroke:       lineannot.StrokeStyle{Color: "black", Width: 1},
	}
}

func (r *recorder) Save() {
	r.stack = append(r.stack, r.clip)
}

func (r *recorder) Restore() {
	if n := len(r.stack); n > 0 {
		r.clip = r.stack[n-1]
		r.stack = r.stack[:n-1]
	}
}

func (r *recorder) ClipRect(x, y, width, height float64) {
	c := r.clip
	c.X1 = max(c.X1, min(x, x+width))
	c.Y1 = max(c.Y1, min(y, y+height))
	c.X2 = min(c.X2, max(x, x+width))
	c.Y2 = min(c.Y2, max(y, y+height))
	r.clip = c
}

func (r *recorder) SetStroke(s lineannot.StrokeStyle) {
	r.stroke = s
}

func (r *recorder) StrokeLine(x1, y1, x2, y2 float64) {
	t0, t1, ok := clipSegment(x1, y1, x2, y2, r.clip)
	if !ok {
		return
	}
	dx, dy := x2-x1, y2-y1
	width := r.stroke.Width
	if !(width > 0) {
		width = 1
	}
	r.ops = append(r.ops, drawOp{
		kind:      opLine,
		x1:        x1 + t0*dx,
		y1:        y1 + t0*dy,
		x2:        x1 + t1*dx,
		y2:        y1 + t1*dy,
		gray:      grayLevel(r.stroke.Color),
		width:     width,
		dash:      r.stroke.Dash,
		dashPhase: r.stroke.DashOffset + t0*math.Hypot(dx, dy),
	})
}

func (r *recorder) FillRoundedRect(x, y, width, height, radius float64, col string) {
	x1 := max(x, r.clip.X1)
	y1 := max(y, r.clip.Y1)
	x2 := min(x+width, r.clip.X2)
	y2 := min(y+height, r.clip.Y2)
	if x2 <= x1 || y2 <= y1 {
		return
	}
	r.ops = append(r.ops, drawOp{
		kind:   opBox,
		x1:     x1,
		y1:     y1,
		x2:     x2,
		y2:     y2,
		gray:   grayLevel(col),
		radius: radius,
	})
}

func (r *recorder) FillText(f lineannot.Font, s string, x, y float64, col string) {
	if s != "" && !r.textSkipped {
		slog.Debug("label text is not written to PDF files", "text", s)
		r.textSkipped = true
	}
}

// clipSegment clips the segment from (x1, y1) to (x2, y2) against c, using
// the Liang-Barsky algorithm.  The result is the parameter range [t0, t1]
// of the visible part.
func clipSegment(x1, y1, x2, y2 float64, c lineannot.Rect) (t0, t1 float64, ok bool) {
	dx, dy := x2-x1, y2-y1
	t0, t1 = 0, 1
	for _, pq := range [4][2]float64{
		{-dx, x1 - c.X1},
		{dx, c.X2 - x1},
		{-dy, y1 - c.Y1},
		{dy, c.Y2 - y1},
	} {
		p, q := pq[0], pq[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
	}
	if !(t0 < t1) {
		return 0, 0, false
	}
	return t0, t1, true
}

// grayLevel converts a CSS color to a gray level, composited onto white.
// Invalid colors are black.
func grayLevel(s string) float64 {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return 0
	}
	l := 0.299*c.R + 0.587*c.G + 0.114*c.B
	return 1 - c.A*(1-l)
}
