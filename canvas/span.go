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
	"seehuhn.de/go/raster"
)

// spanFunc chooses the pixel loop for the given stencil.  The choice is
// made once per drawing call.
func (c *Canvas) spanFunc(s *Stencil) raster.EmitFunc {
	b := c.bitmap
	opacity := float32(s.Opacity) / 255
	sampler := s.sampler()

	if flat, ok := sampler.(FlatColor); ok && s.Blend == BlendNormal &&
		(s.Op == OpSourceOver || s.Op == OpFastSourceOverOnOpaque) {
		return c.flatSourceOverSpan(Color(flat), opacity, s.Op == OpFastSourceOverOnOpaque)
	}

	m := &compositor{
		blend:   s.Blend.channelFunc(),
		op:      s.Op,
		opacity: opacity,
	}
	bpp := b.Coder.BytesPerPixel()
	return func(y, xMin int, coverage []float32) {
		c.rows++
		row := b.Pix[y*b.Stride:]
		fy := float64(y) + 0.5
		for i, cov := range coverage {
			if cov <= 0 {
				continue
			}
			x := xMin + i
			px := row[x*bpp:]
			src := sampler.ColorAt(float64(x)+0.5, fy)
			dst := b.Coder.Decode(px)
			b.Coder.Encode(px, m.apply(src, dst, cov))
		}
	}
}

// flatSourceOverSpan paints a single color with normal blending and
// source-over compositing.  If opaqueDst is set, the destination is
// assumed to be opaque and its alpha is left unchanged.
func (c *Canvas) flatSourceOverSpan(col Color, opacity float32, opaqueDst bool) raster.EmitFunc {
	b := c.bitmap
	bpp := b.Coder.BytesPerPixel()
	src := col.premultiplied()
	src = fcolor{r: src.r * opacity, g: src.g * opacity, b: src.b * opacity, a: src.a * opacity}

	// fully covered pixels of an opaque source are overwritten
	var solid []byte
	if src.a >= 1 && !opaqueDst {
		solid = make([]byte, bpp)
		b.Coder.Encode(solid, col)
	}

	return func(y, xMin int, coverage []float32) {
		c.rows++
		row := b.Pix[y*b.Stride:]
		for i, cov := range coverage {
			if cov <= 0 {
				continue
			}
			px := row[(xMin+i)*bpp:]
			if cov >= 1 && solid != nil {
				copy(px, solid)
				continue
			}
			dc := b.Coder.Decode(px)
			dstAlpha := dc.A
			if opaqueDst {
				dc.A = 255
			}
			d := dc.premultiplied()
			k := 1 - cov*src.a
			out := fcolor{
				r: cov*src.r + k*d.r,
				g: cov*src.g + k*d.g,
				b: cov*src.b + k*d.b,
				a: cov*src.a + k*d.a,
			}
			res := out.straight()
			if opaqueDst {
				res.A = dstAlpha
			}
			b.Coder.Encode(px, res)
		}
	}
}
