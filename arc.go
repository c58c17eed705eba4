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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Arc is a segment of an ellipse.
//
// Angles are given in radians and are measured from the ellipse's own x
// axis (rotated by Rotation) towards its own y axis.  If AntiClockwise is
// false, the arc runs from Start with increasing angle until End is
// reached, otherwise with decreasing angle.  A requested sweep of 2π or
// more in the drawing direction gives the full ellipse.
type Arc struct {
	Center        vec.Vec2
	RX, RY        float64
	Rotation      float64
	Start, End    float64
	AntiClockwise bool
}

// Sweep returns the signed angle covered by the arc, in the range
// [-2π, 2π].  The result is negative for anti-clockwise arcs.
func (a Arc) Sweep() float64 {
	d := a.End - a.Start
	if a.AntiClockwise {
		d = -d
	}
	if d >= 2*math.Pi {
		d = 2 * math.Pi
	} else {
		d = math.Mod(d, 2*math.Pi)
		if d < 0 {
			d += 2 * math.Pi
		}
	}
	if a.AntiClockwise {
		return -d
	}
	return d
}

// Point returns the point of the ellipse at angle theta.
func (a Arc) Point(theta float64) vec.Vec2 {
	sinR, cosR := math.Sincos(a.Rotation)
	sinT, cosT := math.Sincos(theta)
	x := a.RX * cosT
	y := a.RY * sinT
	return vec.Vec2{
		X: a.Center.X + x*cosR - y*sinR,
		Y: a.Center.Y + x*sinR + y*cosR,
	}
}

// derivative returns dPoint/dtheta.
func (a Arc) derivative(theta float64) vec.Vec2 {
	sinR, cosR := math.Sincos(a.Rotation)
	sinT, cosT := math.Sincos(theta)
	x := -a.RX * sinT
	y := a.RY * cosT
	return vec.Vec2{
		X: x*cosR - y*sinR,
		Y: x*sinR + y*cosR,
	}
}

// StartPoint returns the first point of the arc.
func (a Arc) StartPoint() vec.Vec2 {
	return a.Point(a.Start)
}

// EndPoint returns the last point of the arc.
func (a Arc) EndPoint() vec.Vec2 {
	return a.Point(a.Start + a.Sweep())
}

func (a Arc) isFinite() bool {
	for _, x := range []float64{a.Center.X, a.Center.Y, a.RX, a.RY, a.Rotation, a.Start, a.End} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// appendCubics approximates the arc by cubic Bézier curves, each spanning
// at most a quarter turn.  The start point of the arc is not reported.
func (a Arc) appendCubics(cubeTo func(c1, c2, pt vec.Vec2)) {
	sweep := a.Sweep()
	if sweep == 0 {
		return
	}
	n := max(int(math.Ceil(math.Abs(sweep)/(math.Pi/2)-1e-9)), 1)
	delta := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(delta/4)

	theta0 := a.Start
	p0 := a.Point(theta0)
	for i := 1; i <= n; i++ {
		theta1 := a.Start + float64(i)*delta
		p1 := a.Point(theta1)
		c1 := p0.Add(a.derivative(theta0).Mul(k))
		c2 := p1.Sub(a.derivative(theta1).Mul(k))
		cubeTo(c1, c2, p1)
		theta0, p0 = theta1, p1
	}
}
