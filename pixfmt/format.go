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

package pixfmt

import (
	"fmt"
	"strings"
)

// Format identifies a pixel format.
// The zero value is not a valid format.
type Format uint8

// Greyscale and RGB formats.
const (
	Grey Format = iota + 1 // 8-bit luminance
	AlphaGrey
	GreyAlpha
	RGB444 // 16 bits per pixel
	RGB555
	RGB565
	ARGB // 32 bits per pixel
	RGBA
	BGRA
	ABGR
	RGBX
	BGRX
	XRGB
	XBGR
	RGBD  // RGB plus 8-bit depth
	RGBDS // RGB plus 7-bit depth and 1-bit shape
	RGBDepth
	RGB // 24 bits per pixel
	BGR
)

// Planar and semi-planar YUV formats.
const (
	YUV420 Format = iota + 32
	YVU420
	YUVA420
	YUVD420
	YUV420_10
	YUV422
	YUV422_10
	YUV444
	YUVA444
	YUV444_10
	NV12
	NV21
	NV12_10
	NV21_10
)

// Packed YUV formats.
const (
	UYVY Format = iota + 64
	VYUY
	YUYV
	YVYU
	UYVY10
	VYUY10
	YUYV10
	YVYU10
	YUV444Pack
	VYU444Pack
	YUVA444Pack
	UYVA444Pack
	YUV444_10Pack
	V210 // 10-bit 4:2:2, 6 pixels in 16 bytes
)

// GLExternal refers to frames held in GPU memory.
const GLExternal Format = 96

var formatNames = map[Format]string{
	Grey:      "grey",
	AlphaGrey: "algr",
	GreyAlpha: "gral",
	RGB444:    "rgb444",
	RGB555:    "rgb555",
	RGB565:    "rgb565",
	ARGB:      "argb",
	RGBA:      "rgba",
	BGRA:      "bgra",
	ABGR:      "abgr",
	RGBX:      "rgbx",
	BGRX:      "bgrx",
	XRGB:      "xrgb",
	XBGR:      "xbgr",
	RGBD:      "rgbd",
	RGBDS:     "rgbds",
	RGBDepth:  "rgbdepth",
	RGB:       "rgb",
	BGR:       "bgr",

	YUV420:    "yuv420",
	YVU420:    "yvu420",
	YUVA420:   "yuva420",
	YUVD420:   "yuvd420",
	YUV420_10: "yuv420_10",
	YUV422:    "yuv422",
	YUV422_10: "yuv422_10",
	YUV444:    "yuv444",
	YUVA444:   "yuva444",
	YUV444_10: "yuv444_10",
	NV12:      "nv12",
	NV21:      "nv21",
	NV12_10:   "nv12_10",
	NV21_10:   "nv21_10",

	UYVY:          "uyvy",
	VYUY:          "vyuy",
	YUYV:          "yuyv",
	YVYU:          "yvyu",
	UYVY10:        "uyvy_10",
	VYUY10:        "vyuy_10",
	YUYV10:        "yuyv_10",
	YVYU10:        "yvyu_10",
	YUV444Pack:    "yuv444p",
	VYU444Pack:    "vyu444p",
	YUVA444Pack:   "yuva444p",
	UYVA444Pack:   "uyva444p",
	YUV444_10Pack: "yuv444p_10",
	V210:          "v210",

	GLExternal: "glext",
}

var formatByName map[string]Format

func init() {
	formatByName = make(map[string]Format, len(formatNames))
	for f, name := range formatNames {
		formatByName[name] = f
	}
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// ParseFormat returns the format with the given short name.
// Names are matched case-insensitively.
func ParseFormat(name string) (Format, error) {
	f, ok := formatByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnsupportedFormat)
	}
	return f, nil
}

// Formats returns all supported formats in increasing order.
func Formats() []Format {
	var res []Format
	for f := Format(1); f != 0; f++ {
		if _, ok := formatNames[f]; ok {
			res = append(res, f)
		}
	}
	return res
}

// Planar reports whether frames of format f use more than one plane.
func (f Format) Planar() bool {
	switch f {
	case YUV420, YVU420, YUVA420, YUVD420, YUV420_10,
		YUV422, YUV422_10,
		YUV444, YUVA444, YUV444_10,
		NV12, NV21, NV12_10, NV21_10:
		return true
	}
	return false
}

// BitsPerComponent returns the number of bits used for each sample.
// The result is 0 for unsupported formats and for [GLExternal].
func (f Format) BitsPerComponent() int {
	switch f {
	case YUV420_10, YUV422_10, YUV444_10, NV12_10, NV21_10,
		UYVY10, VYUY10, YUYV10, YVYU10, YUV444_10Pack, V210:
		return 10
	case RGB444:
		return 4
	case RGB555, RGB565:
		return 5
	case GLExternal:
		return 0
	}
	if _, ok := formatNames[f]; ok {
		return 8
	}
	return 0
}
