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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/raster"
)

var transformCases = []TestCase{
	{
		Name:   "scale_2x",
		Path:   polygon(pt(-10, 10), pt(0, -10), pt(10, 10)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
		CTM:    matrix.Scale(2, 2).Translate(32, 32),
	},
	{
		Name:   "rotate_45deg",
		Path:   rectangle(-16, -8, 16, 8),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:   "circle_to_ellipse",
		Path:   circle(0, 0, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
		CTM:    matrix.Scale(2.4, 1).Translate(32, 32),
	},
	{
		Name:   "shear",
		Path:   rectangle(-12, -12, 12, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 32, 32},
	},
	{
		// a small circle scaled up needs more segments
		Name:   "scale_10x_curve",
		Path:   circle(0, 0, 2.5),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
		CTM:    matrix.Scale(10, 10).Translate(32, 32),
	},
	{
		Name:   "round_cap_nonuniform",
		Path:   polyline(pt(-8, 0), pt(8, 0)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Cap: graphics.LineCapRound, Join: graphics.LineJoinMiter, MiterLimit: 10},
		CTM:    matrix.Scale(2, 4).Translate(32, 32),
	},
	{
		Name:   "round_join_rotated",
		Path:   polyline(pt(-10, 10), pt(0, -10), pt(10, 10)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Cap: graphics.LineCapButt, Join: graphics.LineJoinRound, MiterLimit: 10},
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
	},
	{
		Name:   "dash_scaled",
		Path:   polyline(pt(-12, 0), pt(12, 0)),
		Width:  64,
		Height: 64,
		Op:     dashed(2, graphics.LineCapButt, []float64{3, 2}, 0),
		CTM:    matrix.Scale(2, 2).Translate(32, 32),
	},
}
