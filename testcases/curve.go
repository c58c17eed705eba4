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

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   raster.NewPath().MoveTo(pt(8, 56)).QuadTo(pt(32, -8), pt(56, 56)).Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "quadratic_shallow",
		Path:   raster.NewPath().MoveTo(pt(8, 40)).QuadTo(pt(32, 34), pt(56, 40)).Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "cubic",
		Path:   raster.NewPath().MoveTo(pt(8, 56)).CubeTo(pt(8, 0), pt(56, 0), pt(56, 56)).Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "cubic_loop",
		Path:   raster.NewPath().MoveTo(pt(10, 50)).CubeTo(pt(70, 0), pt(-6, 0), pt(54, 50)).Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.EvenOdd},
	},
	{
		Name:   "cubic_degenerate",
		Path:   raster.NewPath().MoveTo(pt(8, 32)).CubeTo(pt(8, 32), pt(56, 32), pt(56, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
	{
		Name:   "bezier_circle",
		Path:   bezierCircle(raster.NewPath(), 32, 32, 24),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "bezier_circle_small",
		Path:   bezierCircle(raster.NewPath(), 8, 8, 2.5),
		Width:  16,
		Height: 16,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "cubic_stroked",
		Path:   raster.NewPath().MoveTo(pt(8, 48)).CubeTo(pt(20, 0), pt(44, 64), pt(56, 16)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Cap: graphics.LineCapRound, Join: graphics.LineJoinRound, MiterLimit: 10},
	},
	{
		Name:   "spiral",
		Path:   spiral(32, 32, 3, 28, 3),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 2, Cap: graphics.LineCapButt, Join: graphics.LineJoinRound, MiterLimit: 10},
	},
}
