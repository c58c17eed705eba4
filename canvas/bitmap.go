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
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/raster/pixfmt"
)

// Bitmap is a rectangular array of pixels in the encoding of a
// [PixelCoder].  Row 0 is the top row.
//
// Bitmap implements [draw.Image], so that the contents can be passed to
// image encoders or drawn onto other images.
type Bitmap struct {
	Pix    []byte
	Width  int
	Height int
	Stride int
	Coder  PixelCoder
}

// NewBitmap allocates a bitmap of the given size.  The buffer size and
// row stride are taken from the memory layout of the coder's pixel
// format.
func NewBitmap(width, height int, coder PixelCoder, alloc Allocator) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("bitmap %dx%d: %w", width, height, ErrInvalidSize)
	}
	layout, err := pixfmt.Describe(coder.Format(), width, height, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("bitmap %dx%d: %w", width, height, err)
	}
	pix, err := alloc.Alloc(layout.Size)
	if err != nil {
		return nil, fmt.Errorf("bitmap %dx%d: %w", width, height, err)
	}
	return &Bitmap{
		Pix:    pix,
		Width:  width,
		Height: height,
		Stride: layout.Stride,
		Coder:  coder,
	}, nil
}

// PixOffset returns the index of the first byte of pixel (x, y).
func (b *Bitmap) PixOffset(x, y int) int {
	return y*b.Stride + x*b.Coder.BytesPerPixel()
}

// Pixel returns the color of pixel (x, y).
// Pixels outside the bitmap are transparent.
func (b *Bitmap) Pixel(x, y int) Color {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return Color{}
	}
	return b.Coder.Decode(b.Pix[b.PixOffset(x, y):])
}

// SetPixel sets pixel (x, y) to c.
// Coordinates outside the bitmap are ignored.
func (b *Bitmap) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.Coder.Encode(b.Pix[b.PixOffset(x, y):], c)
}

// ColorModel implements the [image.Image] interface.
func (b *Bitmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements the [image.Image] interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements the [image.Image] interface.
func (b *Bitmap) At(x, y int) color.Color {
	c := b.Pixel(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Set implements the [draw.Image] interface.
func (b *Bitmap) Set(x, y int, c color.Color) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	b.SetPixel(x, y, Color{R: nc.R, G: nc.G, B: nc.B, A: nc.A})
}
