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

package canvas

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/raster"
)

// ErrInvalidStroke is returned for stroke parameters which cannot be
// drawn.
var ErrInvalidStroke = errors.New("invalid stroke parameters")

// Stencil collects the parameters of a fill or stroke operation which
// are not specific to stroking.
type Stencil struct {
	// Transform maps user space to device space.  The zero matrix is
	// treated as the identity.
	Transform matrix.Matrix

	// Rule is the fill rule.  It is ignored for strokes, which always
	// use [raster.NonZero].
	Rule raster.FillRule

	// Quality selects the curve flattening tolerance.
	Quality raster.Quality

	// Opacity scales the source alpha, 255 means opaque.
	Opacity uint8

	// Antialias enables fractional coverage at the path boundary.
	Antialias bool

	// Blend is the separable blend mode applied before compositing.
	Blend BlendMode

	// Op is the Porter-Duff operator.
	Op CompositeOp

	// Sampler gives the source color.  If nil, opaque black is used.
	Sampler Sampler
}

// NewStencil returns a stencil which paints opaque black using
// source-over compositing.
func NewStencil() Stencil {
	return Stencil{
		Transform: matrix.Identity,
		Rule:      raster.NonZero,
		Quality:   raster.QualityHigh,
		Opacity:   255,
		Antialias: true,
		Blend:     BlendNormal,
		Op:        OpSourceOver,
		Sampler:   FlatColor(Black),
	}
}

func (s *Stencil) transform() matrix.Matrix {
	if s.Transform == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return s.Transform
}

func (s *Stencil) sampler() Sampler {
	if s.Sampler == nil {
		return FlatColor(Black)
	}
	return s.Sampler
}

// Stroker holds the stroke geometry.  All lengths are in user space.
type Stroker struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64

	// Dash lists alternating on and off lengths.  An empty pattern, a
	// pattern with negative or non-finite entries, and a pattern without
	// positive entries all give a solid line.
	Dash       []float64
	DashOffset float64
}

// NewStroker returns a stroker for solid lines of the given width, with
// butt caps and miter joins.
func NewStroker(width float64) Stroker {
	return Stroker{
		Width:      width,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: 4,
	}
}

// Validate checks that the stroke can be drawn.
func (k *Stroker) Validate() error {
	if !(k.Width > 0) || math.IsInf(k.Width, 0) {
		return fmt.Errorf("width %g: %w", k.Width, ErrInvalidStroke)
	}
	if !(k.MiterLimit >= 1) || math.IsInf(k.MiterLimit, 0) {
		return fmt.Errorf("miter limit %g: %w", k.MiterLimit, ErrInvalidStroke)
	}
	switch k.Cap {
	case graphics.LineCapButt, graphics.LineCapRound, graphics.LineCapSquare:
	default:
		return fmt.Errorf("line cap %d: %w", k.Cap, ErrInvalidStroke)
	}
	switch k.Join {
	case graphics.LineJoinMiter, graphics.LineJoinRound, graphics.LineJoinBevel:
	default:
		return fmt.Errorf("line join %d: %w", k.Join, ErrInvalidStroke)
	}
	if math.IsNaN(k.DashOffset) || math.IsInf(k.DashOffset, 0) {
		return fmt.Errorf("dash offset %g: %w", k.DashOffset, ErrInvalidStroke)
	}
	return nil
}
