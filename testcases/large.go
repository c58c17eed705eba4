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

// These cases have a bounding box above the threshold where the
// rasterizer switches to an active edge list.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Path:   rectangle(10.5, 10.5, 289.5, 289.5),
		Width:  300,
		Height: 300,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "large_circle_evenodd",
		Path:   bezierCircle(bezierCircle(raster.NewPath(), 150, 150, 140), 150, 150, 70),
		Width:  300,
		Height: 300,
		Op:     Fill{Rule: raster.EvenOdd},
	},
	{
		Name:   "large_diamond",
		Path:   polygon(pt(150, 5), pt(295, 150), pt(150, 295), pt(5, 150)),
		Width:  300,
		Height: 300,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "large_grid",
		Path:   grid(20, 20, 300, 300, 3),
		Width:  300,
		Height: 300,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "large_clipped",
		Path:   rectangle(-100, -100, 400, 400),
		Width:  300,
		Height: 300,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "large_stroke",
		Path:   circle(150, 150, 120),
		Width:  300,
		Height: 300,
		Op:     Stroke{Width: 12, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
}
