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

import "fmt"

// Color is an 8-bit sRGB color with straight (non-premultiplied) alpha.
type Color struct {
	R, G, B, A uint8
}

// Some frequently used colors.
var (
	Transparent = Color{}
	Black       = Color{A: 255}
	White       = Color{R: 255, G: 255, B: 255, A: 255}
)

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A) * 0x101
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return
}

func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseColor parses colors of the form "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	var c Color
	var err error
	switch len(s) {
	case 7:
		c.A = 255
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 9:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("wrong length")
	}
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// fcolor is a color with premultiplied alpha and components in [0, 1].
type fcolor struct {
	r, g, b, a float32
}

func (c Color) premultiplied() fcolor {
	a := float32(c.A) / 255
	return fcolor{
		r: float32(c.R) / 255 * a,
		g: float32(c.G) / 255 * a,
		b: float32(c.B) / 255 * a,
		a: a,
	}
}

// straight converts back to 8-bit straight alpha.
func (c fcolor) straight() Color {
	if c.a <= 0 {
		return Color{}
	}
	a := min(c.a, 1)
	return Color{
		R: unitToByte(c.r / a),
		G: unitToByte(c.g / a),
		B: unitToByte(c.b / a),
		A: unitToByte(a),
	}
}

func unitToByte(x float32) uint8 {
	if !(x > 0) {
		return 0
	}
	if x >= 1 {
		return 255
	}
	return uint8(x*255 + 0.5)
}
