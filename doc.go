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

// Package raster converts vector paths into anti-aliased pixel coverage.
//
// A [Path] records move, line, quadratic, cubic, elliptical-arc and close
// commands. [Flatten] turns a path into closed polygon loops in device
// space, and a [Rasterizer] scan-converts paths, polygons or stroke outlines
// into per-row coverage values between 0 and 1, which the caller composites
// onto its own pixel storage (see the canvas sub-package).
//
// Coverage is computed analytically from the signed area swept by each
// edge, so no supersampling is involved. Curves are approximated by line
// segments whose maximal deviation from the true curve is bounded by the
// flatness tolerance, measured in device pixels.
package raster
