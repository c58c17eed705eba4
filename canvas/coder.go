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
	"encoding/binary"

	"seehuhn.de/go/raster/pixfmt"
)

// PixelCoder converts between [Color] values and the in-memory
// representation of a pixel.
type PixelCoder interface {
	// Format returns the pixel format used for the memory layout.
	Format() pixfmt.Format

	// BytesPerPixel returns the size of one encoded pixel.
	BytesPerPixel() int

	// Encode writes c to the first BytesPerPixel bytes of dst.
	Encode(dst []byte, c Color)

	// Decode reads one pixel from src.  Formats without an alpha
	// channel report opaque colors.
	Decode(src []byte) Color
}

// Pixel coders for the supported encodings.
var (
	RGB565           PixelCoder = rgb565{}
	RGB888Packed32   PixelCoder = rgb888Packed32{}
	RGBA8888Packed32 PixelCoder = rgba8888Packed32{}
	BGRA8888Packed32 PixelCoder = bgra8888Packed32{}
	Gray8            PixelCoder = gray8{}
)

// rgb565 stores 5 bits of red, 6 bits of green and 5 bits of blue in a
// little-endian 16-bit word, red in the most significant bits.
type rgb565 struct{}

func (rgb565) Format() pixfmt.Format { return pixfmt.RGB565 }
func (rgb565) BytesPerPixel() int    { return 2 }

func (rgb565) Encode(dst []byte, c Color) {
	r := (uint16(c.R)*31 + 127) / 255
	g := (uint16(c.G)*63 + 127) / 255
	b := (uint16(c.B)*31 + 127) / 255
	binary.LittleEndian.PutUint16(dst, r<<11|g<<5|b)
}

func (rgb565) Decode(src []byte) Color {
	v := binary.LittleEndian.Uint16(src)
	r := uint8(v >> 11)
	g := uint8(v>>5) & 0x3f
	b := uint8(v) & 0x1f
	return Color{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
		A: 255,
	}
}

// rgb888Packed32 stores one pixel per little-endian 32-bit word
// 0x00BBGGRR.  The top byte is ignored.
type rgb888Packed32 struct{}

func (rgb888Packed32) Format() pixfmt.Format { return pixfmt.RGBX }
func (rgb888Packed32) BytesPerPixel() int    { return 4 }

func (rgb888Packed32) Encode(dst []byte, c Color) {
	binary.LittleEndian.PutUint32(dst, uint32(c.B)<<16|uint32(c.G)<<8|uint32(c.R))
}

func (rgb888Packed32) Decode(src []byte) Color {
	v := binary.LittleEndian.Uint32(src)
	return Color{R: uint8(v), G: uint8(v >> 8), B: uint8(v >> 16), A: 255}
}

// rgba8888Packed32 stores the bytes R, G, B, A in memory order.
type rgba8888Packed32 struct{}

func (rgba8888Packed32) Format() pixfmt.Format { return pixfmt.RGBA }
func (rgba8888Packed32) BytesPerPixel() int    { return 4 }

func (rgba8888Packed32) Encode(dst []byte, c Color) {
	_ = dst[3]
	dst[0], dst[1], dst[2], dst[3] = c.R, c.G, c.B, c.A
}

func (rgba8888Packed32) Decode(src []byte) Color {
	_ = src[3]
	return Color{R: src[0], G: src[1], B: src[2], A: src[3]}
}

// bgra8888Packed32 stores the bytes B, G, R, A in memory order.
type bgra8888Packed32 struct{}

func (bgra8888Packed32) Format() pixfmt.Format { return pixfmt.BGRA }
func (bgra8888Packed32) BytesPerPixel() int    { return 4 }

func (bgra8888Packed32) Encode(dst []byte, c Color) {
	_ = dst[3]
	dst[0], dst[1], dst[2], dst[3] = c.B, c.G, c.R, c.A
}

func (bgra8888Packed32) Decode(src []byte) Color {
	_ = src[3]
	return Color{R: src[2], G: src[1], B: src[0], A: src[3]}
}

// gray8 stores the Rec. 601 luma of the color.
type gray8 struct{}

func (gray8) Format() pixfmt.Format { return pixfmt.Grey }
func (gray8) BytesPerPixel() int    { return 1 }

func (gray8) Encode(dst []byte, c Color) {
	y := (299*uint32(c.R) + 587*uint32(c.G) + 114*uint32(c.B) + 500) / 1000
	dst[0] = uint8(y)
}

func (gray8) Decode(src []byte) Color {
	y := src[0]
	return Color{R: y, G: y, B: y, A: 255}
}
