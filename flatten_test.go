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

package raster

import (
	"fmt"
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestQualityFlatness(t *testing.T) {
	prev := math.Inf(1)
	for _, q := range []Quality{QualityFast, QualityBalanced, QualityHigh, QualityBest} {
		f := q.Flatness()
		if !(f < prev) {
			t.Errorf("%s: flatness %g not below %g", q, f, prev)
		}
		prev = f
	}
	if QualityHigh.Flatness() != defaultFlatness {
		t.Errorf("QualityHigh does not match the rasterizer default")
	}
}

func TestFlattenRectangle(t *testing.T) {
	p := NewPath().
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 4, Y: 0}).
		LineTo(vec.Vec2{X: 4, Y: 3}).
		LineTo(vec.Vec2{X: 0, Y: 3}).
		LineTo(vec.Vec2{X: 0, Y: 0}).
		Close()

	poly := Flatten(p, matrix.Identity.Translate(10, 20), QualityHigh)
	if len(poly) != 1 {
		t.Fatalf("got %d loops, want 1", len(poly))
	}
	want := []vec.Vec2{{X: 10, Y: 20}, {X: 14, Y: 20}, {X: 14, Y: 23}, {X: 10, Y: 23}}
	if len(poly[0]) != len(want) {
		t.Fatalf("got %v, want %v", poly[0], want)
	}
	for i := range want {
		if poly[0][i] != want[i] {
			t.Errorf("vertex %d: got %v, want %v", i, poly[0][i], want[i])
		}
	}
}

// TestFlattenMonotone checks that higher quality never gives fewer
// vertices.
func TestFlattenMonotone(t *testing.T) {
	paths := map[string]*Path{
		"quad": NewPath().MoveTo(vec.Vec2{}).QuadTo(vec.Vec2{X: 50, Y: 80}, vec.Vec2{X: 100}),
		"cubic": NewPath().MoveTo(vec.Vec2{}).
			CubeTo(vec.Vec2{X: 0, Y: 80}, vec.Vec2{X: 100, Y: -80}, vec.Vec2{X: 100}),
		"circle":     NewPath().Ellipse(vec.Vec2{X: 50, Y: 50}, 40, 40, 0, 0, 2*math.Pi, false),
		"tiny_arc":   NewPath().Ellipse(vec.Vec2{}, 0.3, 0.2, 0, 0, 2*math.Pi, false),
		"ellipse":    NewPath().Ellipse(vec.Vec2{}, 200, 3, 1, 0.5, 4, true),
		"zero_arc":   NewPath().Ellipse(vec.Vec2{X: 5, Y: 5}, 0, 0, 0, 0, math.Pi, false),
		"small_quad": NewPath().MoveTo(vec.Vec2{}).QuadTo(vec.Vec2{X: 0.1, Y: 0.1}, vec.Vec2{X: 0.2}),
	}
	for name, p := range paths {
		t.Run(name, func(t *testing.T) {
			prev := 0
			for _, q := range []Quality{QualityFast, QualityBalanced, QualityHigh, QualityBest} {
				n := Flatten(p, matrix.Identity, q).NumVertices()
				if n < prev {
					t.Errorf("%s: %d vertices, fewer than %d", q, n, prev)
				}
				prev = n
			}
		})
	}
}

// TestFlattenCircleTolerance checks that chords of a flattened circle
// stay within the flatness tolerance, measured in device space.
func TestFlattenCircleTolerance(t *testing.T) {
	const r = 10.0
	for _, scale := range []float64{0.5, 1, 8} {
		for _, q := range []Quality{QualityFast, QualityHigh, QualityBest} {
			t.Run(fmt.Sprintf("%gx_%s", scale, q), func(t *testing.T) {
				p := NewPath().Ellipse(vec.Vec2{}, r, r, 0, 0, 2*math.Pi, false).Close()
				poly := Flatten(p, matrix.Scale(scale, scale), q)
				loop := poly[0]
				devR := r * scale
				for i := range loop {
					a, b := loop[i], loop[(i+1)%len(loop)]
					if d := math.Abs(a.Length() - devR); d > 1e-9 {
						t.Fatalf("vertex %v not on the circle", a)
					}
					mid := a.Add(b).Mul(0.5)
					if dev := devR - mid.Length(); dev > q.Flatness()+1e-9 && devR > q.Flatness() {
						t.Errorf("chord %v-%v deviates by %g", a, b, dev)
					}
				}
			})
		}
	}
}

func TestFlattenSubpaths(t *testing.T) {
	p := NewPath().
		MoveTo(vec.Vec2{X: 0, Y: 0}).LineTo(vec.Vec2{X: 5, Y: 0}).LineTo(vec.Vec2{X: 5, Y: 5}).
		MoveTo(vec.Vec2{X: 9, Y: 9}). // lone MoveTo, dropped
		MoveTo(vec.Vec2{X: 1, Y: 1}).LineTo(vec.Vec2{X: 2, Y: 1}).LineTo(vec.Vec2{X: 2, Y: 2}).Close()

	poly := Flatten(p, matrix.Identity, QualityHigh)
	if len(poly) != 2 {
		t.Fatalf("got %d loops, want 2", len(poly))
	}
	if len(poly[0]) != 3 || len(poly[1]) != 3 {
		t.Errorf("got loops %v", poly)
	}
}

func TestFlattenQuadraticSegments(t *testing.T) {
	r := &Rasterizer{CTM: matrix.Identity, Flatness: 0.25}

	// |P0 - 2P1 + P2|/4 = 16, so n = ceil(sqrt(16/0.25)) = 8
	var pts []vec.Vec2
	r.flattenQuadratic(vec.Vec2{}, vec.Vec2{X: 16, Y: 32}, vec.Vec2{X: 32},
		func(p vec.Vec2) { pts = append(pts, p) })
	if len(pts) != 8 {
		t.Errorf("got %d segments, want 8", len(pts))
	}
	if pts[len(pts)-1] != (vec.Vec2{X: 32}) {
		t.Errorf("last point %v", pts[len(pts)-1])
	}

	// under a 2x scale the error doubles
	r.CTM = matrix.Scale(2, 2)
	pts = pts[:0]
	r.flattenQuadratic(vec.Vec2{}, vec.Vec2{X: 16, Y: 32}, vec.Vec2{X: 32},
		func(p vec.Vec2) { pts = append(pts, p) })
	if want := int(math.Ceil(math.Sqrt(32 / 0.25))); len(pts) != want {
		t.Errorf("got %d segments, want %d", len(pts), want)
	}
}

// TestFarCurves checks that curves reaching far outside the clip
// rectangle are flattened into a bounded number of points.
func TestFarCurves(t *testing.T) {
	const maxPoints = 16 * splitSegments
	start := vec.Vec2{X: 50 + 1e12, Y: 1e12}

	cases := []struct {
		name string
		path *Path
	}{
		{"cubic", NewPath().MoveTo(vec.Vec2{X: 1, Y: 1}).
			CubeTo(vec.Vec2{X: 1e16}, vec.Vec2{Y: 1e16}, vec.Vec2{X: 1, Y: 1})},
		{"quadratic", NewPath().MoveTo(vec.Vec2{X: 1, Y: 1}).
			QuadTo(vec.Vec2{X: 1e16, Y: 1e16}, vec.Vec2{X: 2, Y: 1})},
		{"circle", NewPath().MoveTo(start).
			Ellipse(vec.Vec2{X: 50, Y: 1e12}, 1e12, 1e12, 0, 0, 2*math.Pi, false).
			Close()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := NewRasterizer(rect.Rect{URx: 100, URy: 100})
			r.Fill(c.path, NonZero, func(y, xMin int, cov []float32) {
				for i, v := range cov {
					if v < 0 || v > 1+1e-5 {
						t.Fatalf("pixel (%d,%d): coverage %g", xMin+i, y, v)
					}
				}
			})
			if n := len(r.pts); n > maxPoints {
				t.Errorf("fill: %d points", n)
			}

			r.Width = 2
			r.Stroke(c.path, func(y, xMin int, cov []float32) {})
			if n := len(r.pts); n > maxPoints {
				t.Errorf("stroke: %d points", n)
			}
			if n := len(r.stroke); n > 8*maxPoints {
				t.Errorf("stroke: %d outline vertices", n)
			}
		})
	}
}

// TestFarCircleAccuracy fills a huge circle whose top touches the clip
// rectangle.  The visible part must still be flattened to within the
// tolerance.
func TestFarCircleAccuracy(t *testing.T) {
	const radius = 1e12
	p := NewPath().
		MoveTo(vec.Vec2{X: 50 + radius, Y: radius}).
		Ellipse(vec.Vec2{X: 50, Y: radius}, radius, radius, 0, 0, 2*math.Pi, false).
		Close()

	r := NewRasterizer(rect.Rect{URx: 100, URy: 100})
	var total float64
	r.Fill(p, NonZero, func(y, xMin int, cov []float32) {
		for _, v := range cov {
			total += float64(v)
		}
	})

	// Only the top row can lose coverage, by at most the flatness.
	if want := 100*100 - 100*r.Flatness - 1; total < want {
		t.Errorf("covered area %g, want at least %g", total, want)
	}
}

func TestWindow(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	w := r.window(1)
	if !w.enabled || w.xMin != -1 || w.xMax != 11 {
		t.Errorf("got window %+v", w)
	}

	inside := emptyBox().extend(vec.Vec2{X: 5, Y: 5})
	if w.misses(inside, 0) {
		t.Error("box inside the window reported as missing")
	}
	right := emptyBox().extend(vec.Vec2{X: 20, Y: 5}).extend(vec.Vec2{X: 30, Y: 6})
	if !w.misses(right, 0) {
		t.Error("box right of the window not reported")
	}
	if w.misses(right, 9) {
		t.Error("padded box reported as missing")
	}

	if r.window(math.Inf(1)).enabled {
		t.Error("infinite margin gives an enabled window")
	}
	r.Clip = rect.Rect{}
	if r.window(1).enabled {
		t.Error("empty clip gives an enabled window")
	}
}
