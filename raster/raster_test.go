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
	"fmt"
	"image"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// polygon returns a closed path through the given points.
func polygon(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i := range pts {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, pts[i:i+1]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// star returns a self-intersecting five-pointed star.
func star(cx, cy, r float64) []vec.Vec2 {
	var pts []vec.Vec2
	for i := range 5 {
		phi := -math.Pi/2 + float64(2*i)*2*math.Pi/5
		pts = append(pts, vec.Vec2{X: cx + r*math.Cos(phi), Y: cy + r*math.Sin(phi)})
	}
	return pts
}

// rasterise fills p into a new alpha image of the given size.
func rasterise(r *Rasteriser, p path.Path, width, height int) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Reset(rect.Rect{LLx: 0, LLy: 0, URx: float64(width), URy: float64(height)})
	r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+xMin:]
		for i, c := range coverage {
			row[i] = uint8(c*255 + 0.5)
		}
	})
	return img
}

// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := polygon(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 10, Y: 1})

	clip := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 1}
	r := NewRasteriser(clip)

	coverage := make([]float32, 10)
	r.FillNonZero(triangle, func(y, xMin int, cov []float32) {
		if y == 0 {
			copy(coverage[xMin:], cov)
		}
	})

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		if math.Abs(float64(coverage[x]-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, coverage[x])
		}
	}
}

func TestOpenSubpathIsClosed(t *testing.T) {
	open := func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: 1, Y: 1}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 5, Y: 1}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 5, Y: 5}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 1, Y: 5}})
	}
	img := rasterise(NewRasteriser(rect.Rect{}), open, 8, 8)
	for _, p := range []image.Point{{1, 1}, {4, 4}, {2, 3}} {
		if a := img.AlphaAt(p.X, p.Y).A; a != 255 {
			t.Errorf("pixel %v: got alpha %d, want 255", p, a)
		}
	}
	if a := img.AlphaAt(6, 3).A; a != 0 {
		t.Errorf("pixel (6, 3): got alpha %d, want 0", a)
	}
}

func TestClip(t *testing.T) {
	square := polygon(vec.Vec2{X: -10, Y: -10}, vec.Vec2{X: 30, Y: -10}, vec.Vec2{X: 30, Y: 30}, vec.Vec2{X: -10, Y: 30})
	r := NewRasteriser(rect.Rect{LLx: 2, LLy: 3, URx: 7, URy: 9})

	rows := 0
	r.FillNonZero(square, func(y, xMin int, coverage []float32) {
		rows++
		if y < 3 || y >= 9 {
			t.Errorf("row %d outside the clip rectangle", y)
		}
		if xMin != 2 || len(coverage) != 5 {
			t.Errorf("row %d: got span [%d, %d), want [2, 7)", y, xMin, xMin+len(coverage))
		}
		for i, c := range coverage {
			if c != 1 {
				t.Errorf("pixel (%d, %d): got coverage %g, want 1", xMin+i, y, c)
			}
		}
	})
	if rows != 6 {
		t.Errorf("got %d rows, want 6", rows)
	}
}

func TestEmptyPath(t *testing.T) {
	r := NewRasteriser(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10})
	flat := polygon(vec.Vec2{X: 1, Y: 5}, vec.Vec2{X: 9, Y: 5})
	r.FillNonZero(flat, func(y, xMin int, coverage []float32) {
		t.Errorf("unexpected output in row %d", y)
	})
	outside := polygon(vec.Vec2{X: 20, Y: 20}, vec.Vec2{X: 30, Y: 20}, vec.Vec2{X: 30, Y: 30})
	r.FillNonZero(outside, func(y, xMin int, coverage []float32) {
		t.Errorf("unexpected output in row %d", y)
	})
}

// TestSmallAndLargeAgree checks that both scanline methods give the same
// coverage.
func TestSmallAndLargeAgree(t *testing.T) {
	shapes := map[string]path.Path{
		"star":    polygon(star(32, 32, 28)...),
		"rounded": RoundedRect(3.3, 4.7, 50.2, 40.9, 12),
		"thin":    polygon(vec.Vec2{X: 0.5, Y: 10.2}, vec.Vec2{X: 63, Y: 10.4}, vec.Vec2{X: 63, Y: 10.9}),
	}
	for name, p := range shapes {
		t.Run(name, func(t *testing.T) {
			small := NewRasteriser(rect.Rect{})
			small.smallPathThreshold = math.MaxInt
			large := NewRasteriser(rect.Rect{})
			large.smallPathThreshold = 0

			a := rasterise(small, p, 64, 64)
			b := rasterise(large, p, 64, 64)
			// The methods sum edge contributions in a different order,
			// so float32 rounding may differ by one level.
			for i := range a.Pix {
				if d := int(a.Pix[i]) - int(b.Pix[i]); d < -1 || d > 1 {
					t.Fatalf("pixel (%d, %d): %d != %d", i%a.Stride, i/a.Stride, a.Pix[i], b.Pix[i])
				}
			}
		})
	}
}

// TestAgainstVector compares the coverage values with the ones computed by
// golang.org/x/image/vector.
func TestAgainstVector(t *testing.T) {
	const (
		size       = 64
		vectorSize = 1024
	)
	shapes := map[string][]vec.Vec2{
		"star": star(32, 32, 28),
		"quad": {{X: 3.2, Y: 5.5}, {X: 60.1, Y: 1.3}, {X: 50.8, Y: 61.7}, {X: 9.4, Y: 40.2}},
		"sliver": {
			{X: 0, Y: 31.9}, {X: 64, Y: 32.2}, {X: 64, Y: 32.6}, {X: 0, Y: 32.1},
		},
	}
	for name, pts := range shapes {
		t.Run(name, func(t *testing.T) {
			got := rasterise(NewRasteriser(rect.Rect{}), polygon(pts...), size, size)

			// Small vector.Rasterizers use fixed-point arithmetic with
			// visible rounding errors.  A large one uses float32.
			v := vector.NewRasterizer(vectorSize, vectorSize)
			v.MoveTo(float32(pts[0].X), float32(pts[0].Y))
			for _, p := range pts[1:] {
				v.LineTo(float32(p.X), float32(p.Y))
			}
			v.ClosePath()
			want := image.NewAlpha(image.Rect(0, 0, vectorSize, vectorSize))
			v.Draw(want, want.Bounds(), image.Opaque, image.Point{})

			for y := range size {
				for x := range size {
					g, w := got.AlphaAt(x, y).A, want.AlphaAt(x, y).A
					if d := int(g) - int(w); d < -2 || d > 2 {
						t.Errorf("pixel (%d, %d): got %d, want %d", x, y, g, w)
					}
				}
			}
		})
	}
}

func TestFlatness(t *testing.T) {
	r := NewRasteriser(rect.Rect{})
	r.Reset(rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 100})

	var segs int
	count := func(from, to vec.Vec2) { segs++ }

	r.flattenCubic(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0, Y: 50}, vec.Vec2{X: 50, Y: 100}, vec.Vec2{X: 100, Y: 100}, count)
	fine := segs

	segs = 0
	r.Flatness = 4
	r.flattenCubic(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0, Y: 50}, vec.Vec2{X: 50, Y: 100}, vec.Vec2{X: 100, Y: 100}, count)
	if segs >= fine {
		t.Errorf("coarser flatness gave %d segments, finer gave %d", segs, fine)
	}

	segs = 0
	r.flattenQuadratic(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 2, Y: 2}, count)
	if segs != 1 {
		t.Errorf("straight quadratic: got %d segments, want 1", segs)
	}
}

func BenchmarkFillStar(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		s := float64(size)
		p := polygon(star(s/2, s/2, 0.45*s)...)
		clip := rect.Rect{LLx: 0, LLy: 0, URx: s, URy: s}
		r := NewRasteriser(clip)
		emit := func(y, xMin int, coverage []float32) {}
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.FillNonZero(p, emit)
			}
		})
	}
}
