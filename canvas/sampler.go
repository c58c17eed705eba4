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

package canvas

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Sampler gives the source color for every painted pixel.
// Coordinates are in device space, pixel (i, j) is sampled at
// (i+0.5, j+0.5).
type Sampler interface {
	ColorAt(x, y float64) Color
}

// FlatColor paints a single color.
type FlatColor Color

// ColorAt implements the [Sampler] interface.
func (c FlatColor) ColorAt(x, y float64) Color {
	return Color(c)
}

// ExtendMode selects the gradient color outside the range [0, 1].
type ExtendMode uint8

const (
	// ExtendPad uses the color of the nearest end.
	ExtendPad ExtendMode = iota

	// ExtendRepeat repeats the gradient.
	ExtendRepeat

	// ExtendReflect repeats the gradient, mirroring every other copy.
	ExtendReflect
)

// ColorStop fixes the gradient color at one offset.
type ColorStop struct {
	Offset float64
	Color  Color
}

// gradient holds the color stops, sorted by offset.
type gradient struct {
	Stops  []ColorStop
	Extend ExtendMode
}

// addStop inserts a color stop.  Stops with equal offsets are kept in the
// order they were added, giving a sharp transition.
func (g *gradient) addStop(offset float64, c Color) {
	i, _ := slices.BinarySearchFunc(g.Stops, offset, func(s ColorStop, t float64) int {
		if s.Offset <= t {
			return -1
		}
		return 1
	})
	g.Stops = slices.Insert(g.Stops, i, ColorStop{Offset: offset, Color: c})
}

func (g *gradient) colorAt(t float64) Color {
	switch len(g.Stops) {
	case 0:
		return Color{}
	case 1:
		return g.Stops[0].Color
	}

	switch g.Extend {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if math.Mod(period, 2) == 1 {
			t = 1 - t
		}
	}
	if math.IsNaN(t) {
		t = 0
	}

	first, last := g.Stops[0], g.Stops[len(g.Stops)-1]
	if t <= first.Offset {
		return first.Color
	}
	if t >= last.Offset {
		return last.Color
	}
	i := 1
	for g.Stops[i].Offset < t {
		i++
	}
	s0, s1 := g.Stops[i-1], g.Stops[i]
	if s1.Offset <= s0.Offset {
		return s1.Color
	}
	return lerpColor(s0.Color, s1.Color, (t-s0.Offset)/(s1.Offset-s0.Offset))
}

// lerpColor interpolates in premultiplied space.
func lerpColor(c0, c1 Color, t float64) Color {
	p0, p1 := c0.premultiplied(), c1.premultiplied()
	s := float32(t)
	return fcolor{
		r: p0.r + s*(p1.r-p0.r),
		g: p0.g + s*(p1.g-p0.g),
		b: p0.b + s*(p1.b-p0.b),
		a: p0.a + s*(p1.a-p0.a),
	}.straight()
}

// LinearGradient varies the color along the line from Start to End.
// The color is constant on lines orthogonal to this direction.
type LinearGradient struct {
	Start, End vec.Vec2
	gradient
}

// NewLinearGradient returns a gradient from start to end without color
// stops.
func NewLinearGradient(start, end vec.Vec2, extend ExtendMode) *LinearGradient {
	return &LinearGradient{
		Start:    start,
		End:      end,
		gradient: gradient{Extend: extend},
	}
}

// AddStop adds a color stop at the given offset.
func (g *LinearGradient) AddStop(offset float64, c Color) *LinearGradient {
	g.addStop(offset, c)
	return g
}

// ColorAt implements the [Sampler] interface.
func (g *LinearGradient) ColorAt(x, y float64) Color {
	d := g.End.Sub(g.Start)
	l2 := d.Dot(d)
	if l2 == 0 {
		return g.colorAt(0)
	}
	p := vec.Vec2{X: x, Y: y}.Sub(g.Start)
	return g.colorAt(p.Dot(d) / l2)
}

// RadialGradient varies the color with the distance from Center.
// Offset 0 is at the center, offset 1 at distance Radius.
type RadialGradient struct {
	Center vec.Vec2
	Radius float64
	gradient
}

// NewRadialGradient returns a radial gradient without color stops.
func NewRadialGradient(center vec.Vec2, radius float64, extend ExtendMode) *RadialGradient {
	return &RadialGradient{
		Center:   center,
		Radius:   radius,
		gradient: gradient{Extend: extend},
	}
}

// AddStop adds a color stop at the given offset.
func (g *RadialGradient) AddStop(offset float64, c Color) *RadialGradient {
	g.addStop(offset, c)
	return g
}

// ColorAt implements the [Sampler] interface.
func (g *RadialGradient) ColorAt(x, y float64) Color {
	if !(g.Radius > 0) {
		return g.colorAt(1)
	}
	d := vec.Vec2{X: x, Y: y}.Sub(g.Center).Length()
	return g.colorAt(d / g.Radius)
}
