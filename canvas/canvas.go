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

// Package canvas draws paths into in-memory bitmaps.
//
// A [Canvas] owns a [Bitmap] and a reusable [raster.Rasterizer].  Paths
// are filled or stroked using a [Stencil], which gives the transformation,
// fill rule, source colors and compositing rule, and a [Stroker] for the
// stroke geometry.
package canvas

import (
	"errors"
	"fmt"
	"log/slog"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/raster"
)

var (
	// ErrInvalidSize is returned for canvases without pixels.
	ErrInvalidSize = errors.New("invalid canvas size")

	// ErrReleased is returned by all drawing calls after Release.
	ErrReleased = errors.New("canvas released")
)

// Canvas is a bitmap together with the state needed to draw into it.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	bitmap *Bitmap
	alloc  Allocator
	logger *slog.Logger
	r      *raster.Rasterizer

	rows int // rows touched by the current drawing call
}

// Option configures a Canvas in [New].
type Option func(*Canvas)

// WithAllocator makes the canvas take its pixel memory from a.
func WithAllocator(a Allocator) Option {
	return func(c *Canvas) {
		c.alloc = a
	}
}

// WithLogger sets a logger for this canvas, overriding the package
// logger set by [SetLogger].
func WithLogger(l *slog.Logger) Option {
	return func(c *Canvas) {
		c.logger = l
	}
}

// New allocates a canvas of the given size.  If coder is nil,
// [RGBA8888Packed32] is used.  The pixels are initially zero, which is
// transparent black for formats with an alpha channel.
func New(width, height int, coder PixelCoder, opts ...Option) (*Canvas, error) {
	c := &Canvas{alloc: HeapAllocator{}}
	for _, opt := range opts {
		opt(c)
	}
	if coder == nil {
		coder = RGBA8888Packed32
	}

	b, err := NewBitmap(width, height, coder, c.alloc)
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}
	c.bitmap = b
	c.r = raster.NewRasterizer(c.clip())

	c.log().Debug("canvas created",
		"width", width,
		"height", height,
		"format", coder.Format(),
		"bytes", len(b.Pix))
	return c, nil
}

func (c *Canvas) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

func (c *Canvas) clip() rect.Rect {
	return rect.Rect{URx: float64(c.bitmap.Width), URy: float64(c.bitmap.Height)}
}

// Bitmap returns the pixels of the canvas, or nil after Release.
func (c *Canvas) Bitmap() *Bitmap {
	return c.bitmap
}

// Release returns the pixel memory to the allocator.  The canvas cannot
// be used afterwards.
func (c *Canvas) Release() error {
	if c.bitmap == nil {
		return ErrReleased
	}
	c.alloc.Free(c.bitmap.Pix)
	c.bitmap = nil
	c.r = nil
	c.log().Debug("canvas released")
	return nil
}

// Clear sets every pixel to col, without blending.
func (c *Canvas) Clear(col Color) error {
	b := c.bitmap
	if b == nil {
		return ErrReleased
	}

	bpp := b.Coder.BytesPerPixel()
	rowLen := b.Width * bpp
	b.Coder.Encode(b.Pix[:bpp], col)
	// fill the first row by doubling, then copy it to all other rows
	for n := bpp; n < rowLen; n *= 2 {
		copy(b.Pix[n:rowLen], b.Pix[:n])
	}
	for y := 1; y < b.Height; y++ {
		copy(b.Pix[y*b.Stride:y*b.Stride+rowLen], b.Pix[:rowLen])
	}
	return nil
}

// Fill paints the inside of p.
func (c *Canvas) Fill(p *raster.Path, s Stencil) error {
	if c.bitmap == nil {
		return ErrReleased
	}
	if err := c.checkPath(p); err != nil {
		return err
	}

	c.setup(&s)
	emit := c.spanFunc(&s)
	c.r.Fill(p, s.Rule, emit)

	c.log().Debug("fill",
		"rule", s.Rule,
		"blend", s.Blend,
		"op", s.Op,
		"rows", c.rows)
	return nil
}

// Stroke paints the outline of p.
func (c *Canvas) Stroke(p *raster.Path, s Stencil, k Stroker) error {
	if c.bitmap == nil {
		return ErrReleased
	}
	if err := k.Validate(); err != nil {
		c.log().Warn("stroke rejected", "error", err)
		return err
	}
	if err := c.checkPath(p); err != nil {
		return err
	}

	c.setup(&s)
	c.r.Width = k.Width
	c.r.Cap = k.Cap
	c.r.Join = k.Join
	c.r.MiterLimit = k.MiterLimit
	c.r.Dash = k.Dash
	c.r.DashPhase = k.DashOffset
	emit := c.spanFunc(&s)
	c.r.Stroke(p, emit)

	c.log().Debug("stroke",
		"width", k.Width,
		"cap", k.Cap,
		"join", k.Join,
		"dashed", len(k.Dash) > 0,
		"rows", c.rows)
	return nil
}

func (c *Canvas) checkPath(p *raster.Path) error {
	if err := p.Validate(); err != nil {
		c.log().Warn("path rejected", "error", err)
		return err
	}
	return nil
}

func (c *Canvas) setup(s *Stencil) {
	c.r.Reset(c.clip())
	c.r.CTM = s.transform()
	c.r.Flatness = s.Quality.Flatness()
	c.r.Antialias = s.Antialias
	c.rows = 0
}
