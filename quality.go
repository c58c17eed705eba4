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

import "fmt"

// FillRule selects how the winding number of a point decides whether
// the point is inside a path.
type FillRule uint8

const (
	// NonZero paints points with a non-zero winding number.
	NonZero FillRule = iota

	// EvenOdd paints points with an odd winding number.
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("FillRule(%d)", r)
	}
}

// Quality selects the curve flattening tolerance.
type Quality uint8

// Supported quality levels, from coarsest to finest.
const (
	QualityFast Quality = iota
	QualityBalanced
	QualityHigh
	QualityBest
)

// Flatness returns the maximal distance, in device pixels, between a curve
// and its polygonal approximation.  Unknown values map to the tolerance
// of QualityHigh.
func (q Quality) Flatness() float64 {
	switch q {
	case QualityFast:
		return 1.0
	case QualityBalanced:
		return 0.5
	case QualityBest:
		return 0.1
	default:
		return defaultFlatness
	}
}

func (q Quality) String() string {
	switch q {
	case QualityFast:
		return "fast"
	case QualityBalanced:
		return "balanced"
	case QualityHigh:
		return "high"
	case QualityBest:
		return "best"
	default:
		return fmt.Sprintf("Quality(%d)", q)
	}
}
