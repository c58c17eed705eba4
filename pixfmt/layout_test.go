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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeDefaults(t *testing.T) {
	const w, h = 101, 31 // odd sizes exercise the rounding rules
	tests := []struct {
		f    Format
		want Layout
	}{
		{Grey, Layout{Size: 101 * 31, Stride: 101, Planes: 1}},
		{GreyAlpha, Layout{Size: 202 * 31, Stride: 202, Planes: 1}},
		{RGB565, Layout{Size: 202 * 31, Stride: 202, Planes: 1}},
		{RGBA, Layout{Size: 404 * 31, Stride: 404, Planes: 1}},
		{RGBDS, Layout{Size: 404 * 31, Stride: 404, Planes: 1}},
		{BGR, Layout{Size: 303 * 31, Stride: 303, Planes: 1}},
		{RGBDepth, Layout{Size: 4 * 101 * 31, Stride: 303, StrideUV: 101, Planes: 1}},
		{YUV420, Layout{Size: 101*31 + 2*51*16, Stride: 101, StrideUV: 51, Planes: 3, HeightUV: 16}},
		{YVU420, Layout{Size: 101*31 + 2*51*16, Stride: 101, StrideUV: 51, Planes: 3, HeightUV: 16}},
		{YUVA420, Layout{Size: 2*101*31 + 2*51*16, Stride: 101, StrideUV: 51, Planes: 4, HeightUV: 16}},
		{YUV420_10, Layout{Size: 202*31 + 2*101*16, Stride: 202, StrideUV: 101, Planes: 3, HeightUV: 16}},
		{YUV422, Layout{Size: 101*31 + 2*51*31, Stride: 101, StrideUV: 51, Planes: 3, HeightUV: 31}},
		{YUV422_10, Layout{Size: 202*31 + 2*101*31, Stride: 202, StrideUV: 101, Planes: 3, HeightUV: 31}},
		{YUV444, Layout{Size: 3 * 101 * 31, Stride: 101, StrideUV: 101, Planes: 3, HeightUV: 31}},
		{YUVA444, Layout{Size: 4 * 101 * 31, Stride: 101, StrideUV: 101, Planes: 4, HeightUV: 31}},
		{YUV444_10, Layout{Size: 3 * 202 * 31, Stride: 202, StrideUV: 202, Planes: 3, HeightUV: 31}},
		{NV12, Layout{Size: 3 * 101 * 31 / 2, Stride: 101, StrideUV: 101, Planes: 2, HeightUV: 16}},
		{NV21_10, Layout{Size: 3 * 202 * 31 / 2, Stride: 202, StrideUV: 202, Planes: 2, HeightUV: 16}},
		{YUYV, Layout{Size: 202 * 31, Stride: 202, Planes: 1}},
		{UYVY10, Layout{Size: 404 * 31, Stride: 404, Planes: 1}},
		{VYU444Pack, Layout{Size: 303 * 31, Stride: 303, Planes: 1}},
		{UYVA444Pack, Layout{Size: 404 * 31, Stride: 404, Planes: 1}},
		{YUV444_10Pack, Layout{Size: 404 * 31, Stride: 404, Planes: 1}},
		{GLExternal, Layout{Planes: 1}},
		{V210, Layout{Size: 144 * 16 / 6 * 31, Stride: 144 * 16 / 6, Planes: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.f.String(), func(t *testing.T) {
			got, err := Describe(tt.f, w, h, 0, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDescribeCallerStride(t *testing.T) {
	got, err := Describe(YUV420, 100, 50, 128, 0)
	require.NoError(t, err)
	assert.Equal(t, Layout{Size: 128*50 + 2*64*25, Stride: 128, StrideUV: 64, Planes: 3, HeightUV: 25}, got)

	// an odd caller stride is rounded up for the derived chroma stride
	got, err = Describe(YUV422, 100, 50, 129, 0)
	require.NoError(t, err)
	assert.Equal(t, 65, got.StrideUV)

	// an explicit chroma stride is never rounded
	got, err = Describe(YUV420, 100, 50, 129, 70)
	require.NoError(t, err)
	assert.Equal(t, 70, got.StrideUV)
	assert.Equal(t, 129*50+2*70*25, got.Size)

	got, err = Describe(V210, 100, 10, 300, 0)
	require.NoError(t, err)
	assert.Equal(t, Layout{Size: 3000, Stride: 300, Planes: 1}, got)

	got, err = Describe(RGBDepth, 10, 10, 40, 12)
	require.NoError(t, err)
	assert.Equal(t, Layout{Size: 400, Stride: 40, StrideUV: 12, Planes: 1}, got)
}

func TestResolve(t *testing.T) {
	l := Layout{Stride: 64}
	require.NoError(t, l.Resolve(NV12, 60, 10))
	assert.Equal(t, Layout{Size: 960, Stride: 64, StrideUV: 64, Planes: 2, HeightUV: 5}, l)
}

// TestUnsupported checks that failing calls leave their output untouched.
func TestUnsupported(t *testing.T) {
	sentinel := Layout{Size: -1, Stride: 17, StrideUV: 23, Planes: -2, HeightUV: -3}
	for _, f := range []Format{0, 20, 31, 63, 95, 200, 255} {
		l := sentinel
		err := l.Resolve(f, 640, 480)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, "format %d", uint8(f))
		assert.Equal(t, sentinel, l)

		res, err := Describe(f, 640, 480, 0, 0)
		assert.True(t, errors.Is(err, ErrUnsupportedFormat))
		assert.Zero(t, res)
	}
}

func TestInvalidSize(t *testing.T) {
	_, err := Describe(RGBA, -1, 10, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	l := Layout{Stride: -4}
	err = l.Resolve(RGBA, 10, 10)
	assert.ErrorIs(t, err, ErrInvalidSize)
	assert.Equal(t, -4, l.Stride)
}

// TestLayoutProperties checks general invariants for every format over a
// range of sizes.
func TestLayoutProperties(t *testing.T) {
	sizes := [][2]int{{1, 1}, {2, 2}, {7, 3}, {64, 48}, {641, 479}, {1920, 1080}}
	for _, f := range Formats() {
		for _, sz := range sizes {
			w, h := sz[0], sz[1]
			name := fmt.Sprintf("%s/%dx%d", f, w, h)
			l, err := Describe(f, w, h, 0, 0)
			require.NoError(t, err, name)

			if f == GLExternal {
				assert.Equal(t, Layout{Planes: 1}, l, name)
				continue
			}
			assert.GreaterOrEqual(t, l.Size, l.Stride*h, name)
			assert.GreaterOrEqual(t, l.Stride, w, name)
			assert.Equal(t, f.Planar(), l.Planes > 1, name)
			if l.Planes > 1 {
				assert.Positive(t, l.StrideUV, name)
				assert.GreaterOrEqual(t, l.HeightUV, (h+1)/2, name)
			}
		}
	}
}

func TestFormatNames(t *testing.T) {
	all := Formats()
	assert.Len(t, all, 48)
	seen := make(map[string]bool)
	for _, f := range all {
		name := f.String()
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true

		got, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	f, err := ParseFormat(" NV12 ")
	require.NoError(t, err)
	assert.Equal(t, NV12, f)

	_, err = ParseFormat("yuv411")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	assert.Equal(t, "Format(200)", Format(200).String())
}

func TestBitsPerComponent(t *testing.T) {
	assert.Equal(t, 8, RGBA.BitsPerComponent())
	assert.Equal(t, 10, V210.BitsPerComponent())
	assert.Equal(t, 5, RGB565.BitsPerComponent())
	assert.Equal(t, 0, GLExternal.BitsPerComponent())
	assert.Equal(t, 0, Format(0).BitsPerComponent())
}
