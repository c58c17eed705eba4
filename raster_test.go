// seehuhn.de/go/raster - a 2D rendering library
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

package raster_test

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/raster"
	"seehuhn.de/go/raster/testcases"
)

// approaches select the two fill strategies of the rasterizer:
// per-row buffers for everything, or an active edge list for everything.
var approaches = []struct {
	name      string
	threshold int
}{
	{"A", 1 << 30},
	{"B", 0},
}

func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			baseName := category + "_" + tc.Name
			refPath := filepath.Join("testdata", "reference", baseName+".png")
			for _, approach := range approaches {
				name := baseName + "_" + approach.name
				t.Run(name, func(t *testing.T) {
					ref, err := loadGray(refPath)
					if os.IsNotExist(err) {
						t.Skip("no reference image, run testcases/genpdf")
					} else if err != nil {
						t.Fatalf("loading reference: %v", err)
					}

					w, h := tc.Width, tc.Height
					actual := make([]byte, w*h)
					renderExample(tc, actual, approach.threshold)

					if err := compareImages(name, ref, actual, w, h); err != nil {
						t.Error(err)
					}
				})
			}
		}
	}
}

// TestApproachesAgree checks that both fill strategies compute the same
// coverage for every test case.
func TestApproachesAgree(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				a := renderCoverage(tc, approaches[0].threshold)
				b := renderCoverage(tc, approaches[1].threshold)

				for i := range a {
					if d := math.Abs(float64(a[i] - b[i])); d > 1e-4 {
						t.Fatalf("pixel (%d,%d): A=%g, B=%g",
							i%tc.Width, i/tc.Width, a[i], b[i])
					}
				}
			})
		}
	}
}

// TestEmitOrder checks that rows are emitted once each, in increasing
// order, inside the clip rectangle, and with coverage in [0, 1].
func TestEmitOrder(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			for _, approach := range approaches {
				t.Run(category+"_"+tc.Name+"_"+approach.name, func(t *testing.T) {
					r := raster.NewRasterizer(rect.Rect{})
					tc.Setup(r)
					raster.SetSmallPathThreshold(r, approach.threshold)

					lastY := math.MinInt
					tc.Render(r, func(y, xMin int, coverage []float32) {
						if y <= lastY {
							t.Fatalf("row %d emitted after row %d", y, lastY)
						}
						lastY = y
						if y < 0 || y >= tc.Height || xMin < 0 || xMin+len(coverage) > tc.Width {
							t.Fatalf("row %d [%d, %d) outside the clip rectangle",
								y, xMin, xMin+len(coverage))
						}
						for i, c := range coverage {
							if !(c >= 0 && c <= 1) {
								t.Fatalf("pixel (%d,%d): coverage %g", xMin+i, y, c)
							}
						}
					})
				})
			}
		}
	}
}

// renderCoverage renders a test case into a slice of coverage values.
func renderCoverage(tc testcases.TestCase, threshold int) []float32 {
	res := make([]float32, tc.Width*tc.Height)
	r := raster.NewRasterizer(rect.Rect{})
	tc.Setup(r)
	raster.SetSmallPathThreshold(r, threshold)
	tc.Render(r, func(y, xMin int, coverage []float32) {
		copy(res[y*tc.Width+xMin:], coverage)
	})
	return res
}

// renderExample renders a test case into a grayscale buffer, with one
// byte per pixel and stride equal to the width.
func renderExample(tc testcases.TestCase, buf []byte, threshold int) {
	r := raster.NewRasterizer(rect.Rect{})
	tc.Setup(r)
	raster.SetSmallPathThreshold(r, threshold)

	stride := tc.Width
	tc.Render(r, func(y, xMin int, coverage []float32) {
		row := buf[y*stride:]
		for i, c := range coverage {
			row[xMin+i] = byte(max(0, min(255, int(c*256))))
		}
	})
}

func loadGray(path string) (gray []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray = make([]byte, w*h)
	for y := range h {
		for x := range w {
			c := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			gray[y*w+x] = c.Y
		}
	}
	return gray, nil
}

// compareImages accepts an image if at least 80% of the pixels are
// identical, 95% differ by less than 64 and 99% by less than 128.
func compareImages(name string, expected, actual []byte, w, h int) error {
	if len(expected) != len(actual) {
		return fmt.Errorf("reference has %d pixels, want %d", len(expected), len(actual))
	}

	total := w * h
	diffs := make([]int, total)
	for i := range total {
		d := int(expected[i]) - int(actual[i])
		if d < 0 {
			d = -d
		}
		diffs[i] = d
	}
	sort.Ints(diffs)

	p80 := diffs[int(math.Round(0.80*float64(total-1)))]
	p95 := diffs[int(math.Round(0.95*float64(total-1)))]
	p99 := diffs[int(math.Round(0.99*float64(total-1)))]

	var failures []string
	if p80 > 0 {
		failures = append(failures, fmt.Sprintf("80th percentile diff is %d (want 0)", p80))
	}
	if p95 >= 64 {
		failures = append(failures, fmt.Sprintf("95th percentile diff is %d (want <64)", p95))
	}
	if p99 >= 128 {
		failures = append(failures, fmt.Sprintf("99th percentile diff is %d (want <128)", p99))
	}

	if len(failures) > 0 {
		_ = writeDiffImage(name, expected, actual, w, h)
		return fmt.Errorf("%s", strings.Join(failures, "; "))
	}
	return nil
}

// writeDiffImage writes actual output, difference and reference side by
// side into the debug directory.  In the middle panel, green marks
// missing coverage and red marks excess coverage.
func writeDiffImage(name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0o755); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := y*w + x
			a, e := actual[i], expected[i]
			img.Set(x, y, color.RGBA{R: a, G: a, B: a, A: 255})

			diff := color.RGBA{A: 255}
			if d := int(e) - int(a); d > 0 {
				diff.G = uint8(d)
			} else if d < 0 {
				diff.R = uint8(-d)
			}
			img.Set(x+w, y, diff)

			img.Set(x+2*w, y, color.RGBA{R: e, G: e, B: e, A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := raster.NewPath().
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := raster.NewRasterizer(rect.Rect{URx: 10, URy: 1})
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

// TestAntialias checks the coverage of a rectangle with half-pixel
// offsets, with and without anti-aliasing.
func TestAntialias(t *testing.T) {
	box := raster.NewPath().
		MoveTo(vec.Vec2{X: 0.5, Y: 0.5}).
		LineTo(vec.Vec2{X: 3.5, Y: 0.5}).
		LineTo(vec.Vec2{X: 3.5, Y: 2.5}).
		LineTo(vec.Vec2{X: 0.5, Y: 2.5}).
		Close()

	partX := []float32{0.5, 1, 1, 0.5}
	partY := []float32{0.5, 1, 0.5}

	for _, aa := range []bool{true, false} {
		t.Run(fmt.Sprintf("antialias=%t", aa), func(t *testing.T) {
			r := raster.NewRasterizer(rect.Rect{URx: 4, URy: 3})
			r.Antialias = aa

			got := make([]float32, 12)
			r.FillNonZero(box, func(y, xMin int, cov []float32) {
				copy(got[4*y+xMin:], cov)
			})

			for y := range 3 {
				for x := range 4 {
					want := partX[x] * partY[y]
					if !aa {
						want = float32(math.Floor(float64(want) + 0.5))
					}
					if d := math.Abs(float64(got[4*y+x] - want)); d > 1e-6 {
						t.Errorf("pixel (%d,%d): got %g, want %g", x, y, got[4*y+x], want)
					}
				}
			}
		})
	}
}

// TestClipLeft checks that coverage from geometry left of the clip
// rectangle is carried into the first column.
func TestClipLeft(t *testing.T) {
	p := raster.NewPath().
		MoveTo(vec.Vec2{X: -100, Y: 0}).
		LineTo(vec.Vec2{X: 5.5, Y: 0}).
		LineTo(vec.Vec2{X: 5.5, Y: 2}).
		LineTo(vec.Vec2{X: -100, Y: 2}).
		Close()

	for _, approach := range approaches {
		t.Run(approach.name, func(t *testing.T) {
			r := raster.NewRasterizer(rect.Rect{LLx: 2, URx: 10, URy: 2})
			raster.SetSmallPathThreshold(r, approach.threshold)
			rows := 0
			r.FillNonZero(p, func(y, xMin int, cov []float32) {
				rows++
				if xMin != 2 {
					t.Errorf("row %d starts at %d, want 2", y, xMin)
				}
				want := []float32{1, 1, 1, 0.5}
				if len(cov) != len(want) {
					t.Fatalf("row %d: got %v, want %v", y, cov, want)
				}
				for i := range want {
					if math.Abs(float64(cov[i]-want[i])) > 1e-6 {
						t.Errorf("row %d: got %v, want %v", y, cov, want)
						break
					}
				}
			})
			if rows != 2 {
				t.Errorf("got %d rows, want 2", rows)
			}
		})
	}
}

func TestEmptyPaths(t *testing.T) {
	cases := map[string]*raster.Path{
		"empty":      raster.NewPath(),
		"move only":  raster.NewPath().MoveTo(vec.Vec2{X: 5, Y: 5}),
		"line":       raster.NewPath().MoveTo(vec.Vec2{X: 1, Y: 1}).LineTo(vec.Vec2{X: 9, Y: 9}),
		"horizontal": raster.NewPath().MoveTo(vec.Vec2{X: 1, Y: 5}).LineTo(vec.Vec2{X: 9, Y: 5}).Close(),
		"outside": raster.NewPath().
			MoveTo(vec.Vec2{X: 20, Y: 20}).
			LineTo(vec.Vec2{X: 30, Y: 20}).
			LineTo(vec.Vec2{X: 30, Y: 30}).
			Close(),
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			r := raster.NewRasterizer(rect.Rect{URx: 10, URy: 10})
			r.FillNonZero(p, func(y, xMin int, cov []float32) {
				t.Errorf("unexpected row %d: %v", y, cov)
			})
		})
	}
}

// TestNonFinite checks that segments with NaN or infinite coordinates
// are skipped.
func TestNonFinite(t *testing.T) {
	p := raster.NewPath().
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 9, Y: 1}).
		LineTo(vec.Vec2{X: math.NaN(), Y: 5}).
		LineTo(vec.Vec2{X: 9, Y: 9}).
		LineTo(vec.Vec2{X: 1, Y: math.Inf(1)}).
		LineTo(vec.Vec2{X: 1, Y: 9}).
		Close()

	r := raster.NewRasterizer(rect.Rect{URx: 10, URy: 10})
	total := coverageSum(r, p, raster.NonZero)
	if math.Abs(total-64) > 1e-3 {
		t.Errorf("covered area %g, want 64", total)
	}

	r.Width = 2
	r.Stroke(p, func(y, xMin int, cov []float32) {})
}

func coverageSum(r *raster.Rasterizer, p *raster.Path, rule raster.FillRule) float64 {
	var total float64
	r.Fill(p, rule, func(y, xMin int, cov []float32) {
		for _, c := range cov {
			total += float64(c)
		}
	})
	return total
}

func strokeSum(r *raster.Rasterizer, p *raster.Path) float64 {
	var total float64
	r.Stroke(p, func(y, xMin int, cov []float32) {
		for _, c := range cov {
			total += float64(c)
		}
	})
	return total
}

// TestStrokeArea compares the painted area of a stroked line with the
// area of the ideal outline, for each cap style.
func TestStrokeArea(t *testing.T) {
	const length, width = 40.0, 8.0
	line := raster.NewPath().MoveTo(vec.Vec2{X: 12, Y: 32}).LineTo(vec.Vec2{X: 12 + length, Y: 32})

	cases := []struct {
		cap  graphics.LineCapStyle
		area float64
		tol  float64
	}{
		{graphics.LineCapButt, length * width, 1e-3},
		{graphics.LineCapSquare, (length + width) * width, 1e-3},
		{graphics.LineCapRound, length*width + math.Pi*width*width/4, 0.02},
	}
	for _, c := range cases {
		t.Run(c.cap.String(), func(t *testing.T) {
			r := raster.NewRasterizer(rect.Rect{URx: 64, URy: 64})
			r.Width = width
			r.Cap = c.cap

			got := strokeSum(r, line)
			if math.Abs(got-c.area)/c.area > c.tol {
				t.Errorf("area %g, want %g", got, c.area)
			}
		})
	}
}

// TestStrokeRows checks that a horizontal butt-capped line of width 4
// fully covers exactly four pixel rows.
func TestStrokeRows(t *testing.T) {
	r := raster.NewRasterizer(rect.Rect{URx: 64, URy: 64})
	r.Width = 4
	line := raster.NewPath().MoveTo(vec.Vec2{X: 10, Y: 20}).LineTo(vec.Vec2{X: 50, Y: 20})

	var rows []int
	r.Stroke(line, func(y, xMin int, cov []float32) {
		rows = append(rows, y)
		if xMin != 10 || len(cov) != 40 {
			t.Errorf("row %d covers [%d, %d), want [10, 50)", y, xMin, xMin+len(cov))
		}
		for i, c := range cov {
			if math.Abs(float64(c)-1) > 1e-5 {
				t.Errorf("pixel (%d,%d): coverage %g, want 1", xMin+i, y, c)
				break
			}
		}
	})
	if !slices.Equal(rows, []int{18, 19, 20, 21}) {
		t.Errorf("rows %v, want [18 19 20 21]", rows)
	}
}

func TestDashCount(t *testing.T) {
	line := raster.NewPath().MoveTo(vec.Vec2{X: 0, Y: 10}).LineTo(vec.Vec2{X: 100, Y: 10})

	cases := []struct {
		name  string
		dash  []float64
		phase float64
		cap   graphics.LineCapStyle
		want  int
	}{
		{"even", []float64{10, 10}, 0, graphics.LineCapButt, 5},
		{"odd", []float64{10}, 0, graphics.LineCapButt, 5},
		{"phase", []float64{10, 10}, 5, graphics.LineCapButt, 6},
		{"negative phase", []float64{10, 10}, -15, graphics.LineCapButt, 6},
		{"zero round", []float64{0, 10}, 0, graphics.LineCapRound, 10},
		{"zero square", []float64{0, 10}, 0, graphics.LineCapSquare, 10},
		{"zero butt", []float64{0, 10}, 0, graphics.LineCapButt, 0},
		{"all zero", []float64{0, 0}, 0, graphics.LineCapButt, 1},
		{"negative", []float64{10, -1}, 0, graphics.LineCapButt, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := raster.NewRasterizer(rect.Rect{URx: 120, URy: 20})
			r.Width = 2
			r.Cap = c.cap
			r.Dash = c.dash
			r.DashPhase = c.phase
			if got := len(r.StrokeOutline(line)); got != c.want {
				t.Errorf("got %d polygons, want %d", got, c.want)
			}
		})
	}
}

// TestDashClosed checks that the first and last dash of a closed
// subpath are joined.
func TestDashClosed(t *testing.T) {
	sq := raster.NewPath().
		MoveTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 50, Y: 10}).
		LineTo(vec.Vec2{X: 50, Y: 50}).
		LineTo(vec.Vec2{X: 10, Y: 50}).
		Close()

	r := raster.NewRasterizer(rect.Rect{URx: 64, URy: 64})
	r.Width = 2
	r.Dash = []float64{30, 10}

	// The perimeter of 160 holds exactly four dashes.
	if got := len(r.StrokeOutline(sq)); got != 4 {
		t.Errorf("got %d polygons, want 4", got)
	}

	// Now the last dash ends at the start point, where the first begins,
	// and the two are merged.
	r.DashPhase = 10
	if got := len(r.StrokeOutline(sq)); got != 4 {
		t.Errorf("phase 10: got %d polygons, want 4", got)
	}

	// with a second subpath, each subpath is dashed independently
	sq.MoveTo(vec.Vec2{X: 12, Y: 12}).LineTo(vec.Vec2{X: 20, Y: 12})
	r.DashPhase = 0
	if got := len(r.StrokeOutline(sq)); got != 5 {
		t.Errorf("two subpaths: got %d polygons, want 5", got)
	}
}

func TestStrokeOutlineDevice(t *testing.T) {
	line := raster.NewPath().MoveTo(vec.Vec2{X: 0, Y: 0}).LineTo(vec.Vec2{X: 10, Y: 0})

	r := raster.NewRasterizer(rect.Rect{URx: 100, URy: 100})
	r.Width = 2
	r.CTM = [6]float64{2, 0, 0, 2, 50, 50}

	poly := r.StrokeOutline(line)
	if len(poly) != 1 {
		t.Fatalf("got %d polygons, want 1", len(poly))
	}
	for _, v := range poly[0] {
		if v.X < 50-1e-9 || v.X > 70+1e-9 || math.Abs(math.Abs(v.Y-50)-2) > 1e-9 {
			t.Errorf("unexpected outline vertex %v", v)
		}
	}
}

func TestFillPolygon(t *testing.T) {
	p := raster.NewPath().
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		CubeTo(vec.Vec2{X: 20, Y: -5}, vec.Vec2{X: 30, Y: 40}, vec.Vec2{X: 5, Y: 28}).
		Close()

	r := raster.NewRasterizer(rect.Rect{URx: 32, URy: 32})
	direct := coverageSum(r, p, raster.NonZero)

	var viaPolygon float64
	r.FillPolygon(r.Flatten(p), raster.NonZero, func(y, xMin int, cov []float32) {
		for _, c := range cov {
			viaPolygon += float64(c)
		}
	})
	if math.Abs(direct-viaPolygon) > 1e-3 {
		t.Errorf("Fill: %g, FillPolygon: %g", direct, viaPolygon)
	}
}

func TestEvenOddRing(t *testing.T) {
	// two concentric squares in the same direction
	p := raster.NewPath()
	for _, s := range []float64{0, 4} {
		p.MoveTo(vec.Vec2{X: 2 + s, Y: 2 + s}).
			LineTo(vec.Vec2{X: 18 - s, Y: 2 + s}).
			LineTo(vec.Vec2{X: 18 - s, Y: 18 - s}).
			LineTo(vec.Vec2{X: 2 + s, Y: 18 - s}).
			Close()
	}

	r := raster.NewRasterizer(rect.Rect{URx: 20, URy: 20})
	if got := coverageSum(r, p, raster.NonZero); math.Abs(got-256) > 1e-3 {
		t.Errorf("nonzero: area %g, want 256", got)
	}
	if got := coverageSum(r, p, raster.EvenOdd); math.Abs(got-(256-64)) > 1e-3 {
		t.Errorf("evenodd: area %g, want 192", got)
	}
}

// TestDashFarOutside strokes dashed lines which extend far beyond the
// clip rectangle.  Only the dashes near the clip rectangle are generated,
// and the result matches a shorter line with the same dash positions.
func TestDashFarOutside(t *testing.T) {
	cases := []struct {
		name        string
		long, short *raster.Path
	}{
		{"right",
			raster.NewPath().MoveTo(vec.Vec2{X: 0, Y: 50}).LineTo(vec.Vec2{X: 1e9, Y: 50}),
			raster.NewPath().MoveTo(vec.Vec2{X: 0, Y: 50}).LineTo(vec.Vec2{X: 2000, Y: 50})},
		{"both sides",
			raster.NewPath().MoveTo(vec.Vec2{X: -1e9, Y: 50}).LineTo(vec.Vec2{X: 1e9, Y: 50}),
			raster.NewPath().MoveTo(vec.Vec2{X: -2000, Y: 50}).LineTo(vec.Vec2{X: 2000, Y: 50})},
		{"vertical",
			raster.NewPath().MoveTo(vec.Vec2{X: 50, Y: -1e9}).LineTo(vec.Vec2{X: 50, Y: 1e9}),
			raster.NewPath().MoveTo(vec.Vec2{X: 50, Y: -2000}).LineTo(vec.Vec2{X: 50, Y: 2000})},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := raster.NewRasterizer(rect.Rect{URx: 100, URy: 100})
			r.Width = 2
			r.Dash = []float64{3, 1}

			if n := len(r.StrokeOutline(c.long)); n > 200 {
				t.Errorf("%d dash polygons", n)
			}

			want := strokeCoverage(r, c.short)
			got := strokeCoverage(r, c.long)
			if len(want) == 0 {
				t.Fatal("nothing painted")
			}
			for pix := range want {
				if d := math.Abs(float64(got[pix] - want[pix])); d > 1e-3 {
					t.Errorf("pixel %v: coverage %g, want %g", pix, got[pix], want[pix])
					break
				}
			}
			for pix := range got {
				if _, ok := want[pix]; !ok && got[pix] > 1e-3 {
					t.Errorf("unexpected coverage %g at %v", got[pix], pix)
					break
				}
			}
		})
	}
}

func strokeCoverage(r *raster.Rasterizer, p *raster.Path) map[image.Point]float32 {
	res := make(map[image.Point]float32)
	r.Stroke(p, func(y, xMin int, cov []float32) {
		for i, c := range cov {
			if c != 0 {
				res[image.Point{X: xMin + i, Y: y}] = c
			}
		}
	})
	return res
}

// TestStrokeJoins strokes a right-angled corner with butt caps and checks
// the area added at the outer corner by each join style.
func TestStrokeJoins(t *testing.T) {
	const width = 8.0
	const d = width / 2
	corner := raster.NewPath().
		MoveTo(vec.Vec2{X: 12, Y: 12}).
		LineTo(vec.Vec2{X: 40, Y: 12}).
		LineTo(vec.Vec2{X: 40, Y: 40})

	// Two 28×8 rectangles which overlap in a d×d square.
	const base = 2*28*width - d*d
	// pixel just inside the outer corner point (44, 8)
	tip := image.Point{X: 43, Y: 8}

	cases := []struct {
		name       string
		join       graphics.LineJoinStyle
		miterLimit float64
		area       float64
		tol        float64
		tipCovered bool
	}{
		{"miter", graphics.LineJoinMiter, 10, base + d*d, 0.01, true},
		{"miter at limit", graphics.LineJoinMiter, math.Sqrt2, base + d*d, 0.01, true},
		{"miter beyond limit", graphics.LineJoinMiter, 1.2, base + d*d/2, 0.01, false},
		{"bevel", graphics.LineJoinBevel, 10, base + d*d/2, 0.01, false},
		{"round", graphics.LineJoinRound, 10, base + math.Pi*d*d/4, 0.06, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := raster.NewRasterizer(rect.Rect{URx: 64, URy: 64})
			r.Width = width
			r.Join = c.join
			r.MiterLimit = c.miterLimit
			r.Flatness = 0.01

			cov := strokeCoverage(r, corner)
			var total float64
			for _, v := range cov {
				total += float64(v)
			}
			if math.Abs(total-c.area) > c.tol {
				t.Errorf("area %g, want %g", total, c.area)
			}

			got := cov[tip]
			if c.tipCovered && math.Abs(float64(got)-1) > 1e-5 {
				t.Errorf("tip pixel coverage %g, want 1", got)
			} else if !c.tipCovered && got > 1e-5 {
				t.Errorf("tip pixel coverage %g, want 0", got)
			}
		})
	}
}
