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

import "seehuhn.de/go/raster"

var fillCases = []TestCase{
	{
		Name:   "triangle_nonzero",
		Path:   polygon(pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "triangle_evenodd",
		Path:   polygon(pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.EvenOdd},
	},
	{
		Name:   "star_nonzero",
		Path:   star(32, 32, 25, 5),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "star_evenodd",
		Path:   star(32, 32, 25, 5),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.EvenOdd},
	},
	{
		Name:   "heptagram_evenodd",
		Path:   star(32, 32, 28, 7),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.EvenOdd},
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		// an open subpath is closed implicitly
		Name:   "open_triangle",
		Path:   polyline(pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "subpixel_offset_25",
		Path:   rectangle(10.25, 10.25, 30.25, 30.25),
		Width:  40,
		Height: 40,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "subpixel_offset_50",
		Path:   rectangle(10.5, 10.5, 30.5, 30.5),
		Width:  40,
		Height: 40,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "partly_outside",
		Path:   polygon(pt(-20, 5), pt(30, -10), pt(50, 40), pt(5, 60)),
		Width:  40,
		Height: 40,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "sliver",
		Path:   polygon(pt(2, 10), pt(62, 10.3), pt(62, 10.6)),
		Width:  64,
		Height: 20,
		Op:     Fill{Rule: raster.NonZero},
	},
}
