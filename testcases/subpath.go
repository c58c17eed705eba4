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
	"seehuhn.de/go/raster"
)

var subpathCases = []TestCase{
	{
		Name: "two_triangles",
		Path: polygon(pt(6, 40), pt(18, 16), pt(30, 40)).
			MoveTo(pt(34, 40)).LineTo(pt(46, 16)).LineTo(pt(58, 40)).Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "overlap_nonzero",
		Path:   addRect(rectangle(8, 8, 40, 40), 24, 24, 56, 56),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "overlap_evenodd",
		Path:   addRect(rectangle(8, 8, 40, 40), 24, 24, 56, 56),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.EvenOdd},
	},
	{
		// the inner square runs the other way, so it is a hole for both rules
		Name:   "ring_opposite",
		Path:   square(square(raster.NewPath(), 8, 8, 48, false), 20, 20, 24, true),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "many_small_shapes",
		Path:   grid(8, 8, 64, 64, 2),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		// drawing after Close continues from the start of the closed subpath
		Name: "after_close",
		Path: raster.NewPath().
			MoveTo(pt(32, 8)).LineTo(pt(56, 32)).LineTo(pt(32, 56)).Close().
			LineTo(pt(8, 32)).LineTo(pt(32, 56)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
}

// grid builds rows×cols separate rectangles which fill a w×h area,
// separated by gap.
func grid(rows, cols, w, h int, gap float64) *raster.Path {
	p := raster.NewPath()
	cw := float64(w) / float64(cols)
	ch := float64(h) / float64(rows)
	for i := range rows {
		for j := range cols {
			x := float64(j) * cw
			y := float64(i) * ch
			addRect(p, x+gap/2, y+gap/2, x+cw-gap/2, y+ch-gap/2)
		}
	}
	return p
}
