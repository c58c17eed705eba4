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
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/raster"
)

// dashed returns a stroke with the given dash pattern.
func dashed(width float64, c graphics.LineCapStyle, dash []float64, phase float64) Stroke {
	return Stroke{
		Width:      width,
		Cap:        c,
		Join:       graphics.LineJoinMiter,
		MiterLimit: 10,
		Dash:       dash,
		DashPhase:  phase,
	}
}

var dashLine = polyline(pt(6, 32), pt(58, 32))

var dashCases = []TestCase{
	{
		Name:   "dash_equal",
		Path:   dashLine,
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, []float64{8, 4}, 0),
	},
	{
		Name:   "dash_odd_length",
		Path:   dashLine,
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, []float64{6}, 0),
	},
	{
		Name:   "dash_three_element",
		Path:   dashLine,
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, []float64{8, 3, 2}, 0),
	},
	{
		Name:   "dash_phase",
		Path:   dashLine,
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, []float64{8, 4}, 5),
	},
	{
		Name:   "dash_phase_negative",
		Path:   dashLine,
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, []float64{8, 4}, -5),
	},
	{
		Name:   "dash_zero_round",
		Path:   dashLine,
		Width:  64,
		Height: 64,
		Op:     dashed(6, graphics.LineCapRound, []float64{0, 10}, 0),
	},
	{
		Name:   "dash_zero_square",
		Path:   polyline(pt(8, 8), pt(56, 56)),
		Width:  64,
		Height: 64,
		Op:     dashed(6, graphics.LineCapSquare, []float64{0, 12}, 0),
	},
	{
		Name:   "dash_zero_butt",
		Path:   dashLine,
		Width:  64,
		Height: 64,
		Op:     dashed(6, graphics.LineCapButt, []float64{0, 10}, 0),
	},
	{
		Name:   "dash_corner",
		Path:   polyline(pt(8, 56), pt(32, 8), pt(56, 56)),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, []float64{20, 6}, 0),
	},
	{
		Name:   "dash_closed_square",
		Path:   square(raster.NewPath(), 12, 12, 40, false),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, []float64{30, 10}, 15),
	},
	{
		// a single dash covers the whole closed subpath
		Name:   "dash_closed_long",
		Path:   square(raster.NewPath(), 12, 12, 40, false),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, []float64{500, 10}, 0),
	},
	{
		Name:   "dash_curve",
		Path:   circle(32, 32, 22),
		Width:  64,
		Height: 64,
		Op:     dashed(3, graphics.LineCapRound, []float64{9, 5}, 0),
	},
}
