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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/raster"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polyline builds an open path through the given points.
func polyline(pts ...vec.Vec2) *raster.Path {
	p := raster.NewPath().MoveTo(pts[0])
	for _, q := range pts[1:] {
		p.LineTo(q)
	}
	return p
}

// polygon builds a closed path through the given points.
func polygon(pts ...vec.Vec2) *raster.Path {
	return polyline(pts...).Close()
}

func rectangle(x1, y1, x2, y2 float64) *raster.Path {
	return addRect(raster.NewPath(), x1, y1, x2, y2)
}

// addRect appends a closed rectangle to p.
func addRect(p *raster.Path, x1, y1, x2, y2 float64) *raster.Path {
	return p.MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// star builds a self-intersecting star with n points, connecting every
// second vertex.  n must be odd.
func star(cx, cy, r float64, n int) *raster.Path {
	p := raster.NewPath()
	for i := range n {
		k := (2 * i) % n
		angle := float64(k)*2*math.Pi/float64(n) - math.Pi/2
		q := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if i == 0 {
			p.MoveTo(q)
		} else {
			p.LineTo(q)
		}
	}
	return p.Close()
}

// circle builds a full circle from an elliptical arc.
func circle(cx, cy, r float64) *raster.Path {
	return raster.NewPath().Ellipse(pt(cx, cy), r, r, 0, 0, 2*math.Pi, false).Close()
}

// bezierCircle builds a circle from four cubic Bézier curves.
func bezierCircle(p *raster.Path, cx, cy, r float64) *raster.Path {
	const k = 0.5522847498307936 // 4/3·(√2-1)
	d := k * r
	p.MoveTo(pt(cx+r, cy))
	p.CubeTo(pt(cx+r, cy+d), pt(cx+d, cy+r), pt(cx, cy+r))
	p.CubeTo(pt(cx-d, cy+r), pt(cx-r, cy+d), pt(cx-r, cy))
	p.CubeTo(pt(cx-r, cy-d), pt(cx-d, cy-r), pt(cx, cy-r))
	p.CubeTo(pt(cx+d, cy-r), pt(cx+r, cy-d), pt(cx+r, cy))
	return p.Close()
}

// square builds a closed axis-aligned square, clockwise in device space
// if ccw is false.
func square(p *raster.Path, x, y, side float64, ccw bool) *raster.Path {
	if ccw {
		return p.MoveTo(pt(x, y)).
			LineTo(pt(x, y+side)).
			LineTo(pt(x+side, y+side)).
			LineTo(pt(x+side, y)).
			Close()
	}
	return p.MoveTo(pt(x, y)).
		LineTo(pt(x+side, y)).
		LineTo(pt(x+side, y+side)).
		LineTo(pt(x, y+side)).
		Close()
}

// zigzag builds an open zigzag line between x1 and x2.
func zigzag(x1, x2, cy, amplitude float64, teeth int) *raster.Path {
	p := raster.NewPath().MoveTo(pt(x1, cy))
	step := (x2 - x1) / float64(2*teeth)
	for i := 1; i <= 2*teeth; i++ {
		y := cy - amplitude
		if i%2 == 0 {
			y = cy + amplitude
		}
		if i == 2*teeth {
			y = cy
		}
		p.LineTo(pt(x1+float64(i)*step, y))
	}
	return p
}

// spiral builds an open Archimedean spiral from quadratic curves.
func spiral(cx, cy, rMin, rMax, turns float64) *raster.Path {
	const stepsPerTurn = 16
	n := int(turns * stepsPerTurn)
	at := func(i float64) vec.Vec2 {
		t := i / float64(n)
		r := rMin + t*(rMax-rMin)
		a := t * turns * 2 * math.Pi
		return pt(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	p := raster.NewPath().MoveTo(at(0))
	for i := 1; i <= n; i++ {
		// the midpoint is pushed outwards to approximate the control point
		mid := at(float64(i) - 0.5)
		c := mid.Mul(2).Sub(at(float64(i - 1)).Add(at(float64(i))).Mul(0.5))
		p.QuadTo(c, at(float64(i)))
	}
	return p
}
