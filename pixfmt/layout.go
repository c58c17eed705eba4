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

// Package pixfmt computes the memory layout of raw video and image frames.
//
// For a given [Format] and frame size, [Describe] reports the total buffer
// size, the stride of the primary plane, the stride and height of the
// chroma planes and the number of planes.  Strides supplied by the caller
// are used as given; missing strides are derived from the frame width.
package pixfmt

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned for pixel formats without a known
// memory layout.
var ErrUnsupportedFormat = errors.New("unsupported pixel format")

// ErrInvalidSize is returned for negative frame dimensions or strides.
var ErrInvalidSize = errors.New("invalid frame size")

// Layout describes the memory layout of one frame.
type Layout struct {
	// Size is the total number of bytes required for all planes.
	Size int

	// Stride is the distance in bytes between consecutive rows of the
	// primary plane.
	Stride int

	// StrideUV is the row distance of the chroma planes, or of the depth
	// plane for [RGBDepth].  It is zero for formats without such planes.
	StrideUV int

	// Planes is the number of separately addressed planes.
	Planes int

	// HeightUV is the number of rows of each chroma plane, or zero.
	HeightUV int
}

// Describe returns the layout of a frame of the given format and size.
//
// A non-zero stride or strideUV is used as given, the caller is responsible
// for any alignment the format requires.  Zero values are replaced by the
// default for the format.
func Describe(f Format, width, height, stride, strideUV int) (Layout, error) {
	l := Layout{Stride: stride, StrideUV: strideUV}
	err := l.Resolve(f, width, height)
	if err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Resolve fills in the layout for a frame of the given format and size.
// On entry, l.Stride and l.StrideUV hold the caller-supplied strides, with
// zero meaning "derive from width".  All fields of l are overwritten on
// success.  If an error is returned, l is left unchanged.
func (l *Layout) Resolve(f Format, width, height int) error {
	if width < 0 || height < 0 || l.Stride < 0 || l.StrideUV < 0 {
		return fmt.Errorf("%s %dx%d: %w", f, width, height, ErrInvalidSize)
	}

	stride, strideUV := l.Stride, l.StrideUV
	defaultStride := func(bytesPerPixel int) {
		if stride == 0 {
			stride = bytesPerPixel * width
		}
	}
	// chroma planes of half the width share one rounding rule
	halfStrideUV := func() {
		if strideUV == 0 {
			strideUV = stride / 2
			if stride%2 != 0 {
				strideUV++
			}
		}
	}
	fullStrideUV := func() {
		if strideUV == 0 {
			strideUV = stride
		}
	}
	halfHeight := (height + 1) / 2

	var res Layout
	switch f {
	case Grey:
		defaultStride(1)
		res = packed(stride, height)

	case AlphaGrey, GreyAlpha, RGB444, RGB555, RGB565,
		UYVY, VYUY, YUYV, YVYU:
		defaultStride(2)
		res = packed(stride, height)

	case ARGB, RGBA, BGRA, ABGR, RGBX, BGRX, XRGB, XBGR, RGBD, RGBDS,
		UYVY10, VYUY10, YUYV10, YVYU10,
		YUVA444Pack, UYVA444Pack, YUV444_10Pack:
		defaultStride(4)
		res = packed(stride, height)

	case RGB, BGR, YUV444Pack, VYU444Pack:
		defaultStride(3)
		res = packed(stride, height)

	case RGBDepth:
		defaultStride(3)
		if strideUV == 0 {
			strideUV = width
		}
		res = Layout{Size: 4 * width * height, Stride: stride, StrideUV: strideUV, Planes: 1}

	case YUV420, YVU420, YUV420_10:
		if f == YUV420_10 {
			defaultStride(2)
		} else {
			defaultStride(1)
		}
		halfStrideUV()
		res = Layout{
			Size:     stride*height + 2*strideUV*halfHeight,
			Stride:   stride,
			StrideUV: strideUV,
			Planes:   3,
			HeightUV: halfHeight,
		}

	case YUVA420, YUVD420:
		defaultStride(1)
		halfStrideUV()
		res = Layout{
			Size:     2*stride*height + 2*strideUV*halfHeight,
			Stride:   stride,
			StrideUV: strideUV,
			Planes:   4,
			HeightUV: halfHeight,
		}

	case YUV422, YUV422_10:
		if f == YUV422_10 {
			defaultStride(2)
		} else {
			defaultStride(1)
		}
		halfStrideUV()
		res = Layout{
			Size:     stride*height + 2*strideUV*height,
			Stride:   stride,
			StrideUV: strideUV,
			Planes:   3,
			HeightUV: height,
		}

	case YUV444, YUVA444, YUV444_10:
		planes := 3
		switch f {
		case YUV444_10:
			defaultStride(2)
		case YUVA444:
			defaultStride(1)
			planes = 4
		default:
			defaultStride(1)
		}
		fullStrideUV()
		res = Layout{
			Size:     planes * stride * height,
			Stride:   stride,
			StrideUV: strideUV,
			Planes:   planes,
			HeightUV: height,
		}

	case NV12, NV21, NV12_10, NV21_10:
		if f == NV12_10 || f == NV21_10 {
			defaultStride(2)
		} else {
			defaultStride(1)
		}
		fullStrideUV()
		res = Layout{
			Size:     3 * stride * height / 2,
			Stride:   stride,
			StrideUV: strideUV,
			Planes:   2,
			HeightUV: halfHeight,
		}

	case GLExternal:
		// no CPU-addressable memory
		res = Layout{Planes: 1}

	case V210:
		if stride == 0 {
			// 6 pixels are packed into 4 32-bit words, rows hold
			// a multiple of 48 pixels
			stride = (width + 47) / 48 * 48 * 16 / 6
		}
		res = packed(stride, height)

	default:
		return fmt.Errorf("%s: %w", f, ErrUnsupportedFormat)
	}

	*l = res
	return nil
}

func packed(stride, height int) Layout {
	return Layout{Size: stride * height, Stride: stride, Planes: 1}
}
