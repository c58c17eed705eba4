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

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/raster"
)

var ellipseCases = []TestCase{
	{
		Name:   "circle",
		Path:   circle(32, 32, 24),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "ellipse_rotated",
		Path:   raster.NewPath().Ellipse(pt(32, 32), 28, 12, math.Pi/6, 0, 2*math.Pi, false).Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		// the arc is joined to the current point by a straight line
		Name: "pie_slice",
		Path: raster.NewPath().
			MoveTo(pt(32, 32)).
			Ellipse(pt(32, 32), 26, 26, 0, 0, math.Pi/2*3, false).
			Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name: "pie_slice_anticlockwise",
		Path: raster.NewPath().
			MoveTo(pt(32, 32)).
			Ellipse(pt(32, 32), 26, 26, 0, 0, math.Pi/2*3, true).
			Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "arc_stroked",
		Path:   raster.NewPath().Ellipse(pt(32, 40), 24, 24, 0, math.Pi, 2*math.Pi, false),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 5, Cap: graphics.LineCapRound, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
	{
		Name: "ring_evenodd",
		Path: raster.NewPath().
			Ellipse(pt(32, 32), 28, 28, 0, 0, 2*math.Pi, false).Close().
			Ellipse(pt(32, 32), 14, 14, 0, 0, 2*math.Pi, false).Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.EvenOdd},
	},
	{
		Name:   "ellipse_outline",
		Path:   raster.NewPath().Ellipse(pt(32, 32), 26, 14, -math.Pi/8, 0, 2*math.Pi, false).Close(),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 3, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
}
