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

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one pixel row.  coverage[i] is the
// fraction of pixel (xMin+i, y) covered by the shape, in the range [0, 1].
// The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge represents a line segment in device coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasterizer converts paths to pixel coverage values: the fraction of
// each pixel's area covered by the filled or stroked path, from 0
// (outside) to 1 (inside).  Create one instance with [NewRasterizer] and
// reuse it for many paths.  Internal buffers grow as needed but never
// shrink, so that no allocations happen in steady state.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM transforms from user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness controls curve approximation accuracy in device pixels.
	// Must be positive, see [Quality.Flatness] for typical values.
	Flatness float64

	// Antialias enables fractional coverage.  If false, coverage values
	// are rounded to 0 or 1.
	Antialias bool

	// Width sets stroke thickness in user-space units.
	Width float64

	// Cap sets the style for stroke endpoints.
	Cap graphics.LineCapStyle

	// Join sets the style for stroke corners.
	Join graphics.LineJoinStyle

	// MiterLimit caps the miter length, relative to the stroke width.
	MiterLimit float64

	// Dash specifies alternating on/off lengths in user-space units.
	// Nil, or a pattern without positive entries, means a solid line.
	Dash []float64

	// DashPhase offsets into the dash pattern in user-space units.
	// Can be any value (positive, negative, or zero).
	DashPhase float64

	// smallPathThreshold is the maximum bounding box area (in pixels) for
	// using 2D buffers.  Paths with larger bounding boxes use the active
	// edge list.
	smallPathThreshold int

	// coverage accumulation
	cover       []float32 // cover change per pixel; reused as output
	area        []float32 // area within pixel
	edges       []edge
	activeIdx   []int  // indices of active edges
	rowHasEdges []bool // per-scanline flag: true if any edge contributes

	// bounding box of r.edges, in device space
	bboxEmpty                          bool
	devXMin, devXMax, devYMin, devYMax float64

	// flattened path, see flattenPath
	flatWin   window
	pts       []vec.Vec2
	subpaths  []subpath
	inSubpath bool
	spDrawn   bool
	spStart   vec.Vec2
	spIdx     int

	// stroking, see stroke.go and dash.go
	segs             []strokeSegment
	segSpans         []segSpan
	degeneratePoints []vec.Vec2
	dashedSegs       []strokeSegment
	dashSpans        []segSpan
	stroke           []vec.Vec2 // stroke outline vertices, all polygons contiguous
	strokeOffsets    []int      // start index of each stroke polygon
}

// NewRasterizer returns a Rasterizer with the given clip rectangle and
// default values for all other parameters.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Internal buffers are kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Antialias = true
	r.Width = 1.0
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.Dash = nil
	r.DashPhase = 0
	r.smallPathThreshold = smallPathThreshold
}

// Fill fills the path using the given fill rule.  Open subpaths are
// closed by a straight line.  The emit callback receives coverage
// row by row, in increasing order of y.
func (r *Rasterizer) Fill(p *Path, rule FillRule, emit EmitFunc) {
	r.flattenPath(p, r.window(fillMargin))
	r.beginEdges()
	for _, sp := range r.subpaths {
		pts := r.pts[sp.start:sp.end]
		if len(pts) < 3 {
			continue // no area
		}
		for i := 1; i < len(pts); i++ {
			r.addEdge(pts[i-1], pts[i])
		}
		r.addEdge(pts[len(pts)-1], pts[0])
	}
	r.rasterize(rule, emit)
}

// FillNonZero fills the path using the nonzero winding rule.
func (r *Rasterizer) FillNonZero(p *Path, emit EmitFunc) {
	r.Fill(p, NonZero, emit)
}

// FillEvenOdd fills the path using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *Path, emit EmitFunc) {
	r.Fill(p, EvenOdd, emit)
}

// FillPolygon fills loops which are already given in device coordinates.
// The CTM and Flatness are not used.
func (r *Rasterizer) FillPolygon(poly Polygon, rule FillRule, emit EmitFunc) {
	r.beginEdges()
	for _, loop := range poly {
		if len(loop) < 3 {
			continue
		}
		for i := 1; i < len(loop); i++ {
			r.addDeviceEdge(loop[i-1], loop[i])
		}
		r.addDeviceEdge(loop[len(loop)-1], loop[0])
	}
	r.rasterize(rule, emit)
}

// rasterize computes coverage for the edges in r.edges.
func (r *Rasterizer) rasterize(rule FillRule, emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.edgeBounds()
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillSmallPath(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillLargePath(xMin, xMax, yMin, yMax, rule, emit)
	}
}

func (r *Rasterizer) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge adds an edge given in user space coordinates.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	r.addDeviceEdge(r.toDevice(p0), r.toDevice(p1))
}

// addDeviceEdge adds an edge given in device coordinates.
// Horizontal and non-finite edges are ignored.
func (r *Rasterizer) addDeviceEdge(p0, p1 vec.Vec2) {
	dy := p1.Y - p0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	if !isFinite(p0) || !isFinite(p1) {
		return
	}

	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
	})

	if r.bboxEmpty {
		r.devXMin, r.devXMax = min(p0.X, p1.X), max(p0.X, p1.X)
		r.devYMin, r.devYMax = min(p0.Y, p1.Y), max(p0.Y, p1.Y)
		r.bboxEmpty = false
		return
	}
	r.devXMin = min(r.devXMin, p0.X, p1.X)
	r.devXMax = max(r.devXMax, p0.X, p1.X)
	r.devYMin = min(r.devYMin, p0.Y, p1.Y)
	r.devYMax = max(r.devYMax, p0.Y, p1.Y)
}

// edgeBounds returns the pixel bounding box of r.edges, clamped to the
// clip rectangle.  The upper bounds are exclusive.
func (r *Rasterizer) edgeBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(floorInt(r.devXMin, r.Clip.LLx), int(r.Clip.LLx))
	xMax = min(floorInt(r.devXMax, r.Clip.URx)+1, int(r.Clip.URx))
	yMin = max(floorInt(r.devYMin, r.Clip.LLy), int(r.Clip.LLy))
	yMax = min(floorInt(r.devYMax, r.Clip.URy)+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// floorInt converts floor(x) to int.  Values far outside the clip range
// are replaced by the clip bound ref, to avoid integer overflow.
func floorInt(x, ref float64) int {
	const limit = 1 << 30
	if x < ref-limit || x > ref+limit {
		if x < ref {
			return int(ref) - limit
		}
		return int(ref) + limit
	}
	return int(math.Floor(x))
}

// Coverage accumulation model:
//
// For each pixel, we track two values:
//   cover: signed vertical extent of edges crossing this pixel column
//   area:  horizontal position weighting (how far right the crossing is)
//
// An edge crossing a pixel contributes:
//   cover = sign * dy   (where sign is +1 for downward, -1 for upward)
//   area  = cover * (1 - xFrac)   (where xFrac is the horizontal position within the pixel)
//
// Final coverage is computed by integrateScanline:
//   pixel_coverage = accumulated_cover + area[i]
//   accumulated_cover += cover[i]   (carry forward for next pixel)
//
// This computes the signed area of the path within each pixel, which gives
// anti-aliased coverage values when clamped to [0,1] (nonzero) or folded (even-odd).

// accumulateEdge adds a single edge's contribution to the cover and area buffers.
// The buffers are indexed by (x - bboxXMin), where bboxXMin/bboxXMax define the buffer range.
// For edges spanning multiple pixels horizontally, this function splits the edge at pixel
// boundaries and computes separate contributions for each pixel crossed.
func accumulateEdge(e *edge, y int, cover, area []float32, bboxXMin, bboxXMax int) {
	// Compute the portion of the edge within this scanline [y, y+1)
	yTop := float64(y)
	yBot := float64(y + 1)

	// Clamp to edge's actual y extent
	edgeYMin := min(e.y0, e.y1)
	edgeYMax := max(e.y0, e.y1)
	yTop = max(yTop, edgeYMin)
	yBot = min(yBot, edgeYMax)

	if yBot <= yTop {
		return
	}

	// Sign based on edge direction: +1 for downward (y1 > y0), -1 for upward
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	// Compute x at the y boundaries of the edge segment within this scanline
	xAtYTop := e.x0 + e.dxdy*(yTop-e.y0)
	xAtYBot := e.x0 + e.dxdy*(yBot-e.y0)

	// Determine pixel range the edge spans (ensure left <= right for iteration)
	xLeft, xRight := xAtYTop, xAtYBot
	if xLeft > xRight {
		xLeft, xRight = xRight, xLeft
	}

	// clamping keeps the integer conversion in range for huge coordinates
	lim0, lim1 := float64(bboxXMin-1), float64(bboxXMax)
	pixLeft := int(math.Floor(min(max(xLeft, lim0), lim1)))
	pixRight := int(math.Floor(min(max(xRight, lim0), lim1)))

	// Handle edge entirely to the left of bbox
	if pixRight < bboxXMin {
		coverVal := sign * float32(yBot-yTop)
		cover[0] += coverVal
		area[0] += coverVal
		return
	}

	// Handle edge entirely to the right of bbox
	if pixLeft >= bboxXMax {
		return
	}

	// For vertical edges or edges within a single pixel column
	if pixLeft == pixRight {
		accumulateEdgeInColumn(e, yTop, yBot, sign, pixLeft, cover, area, bboxXMin, bboxXMax)
		return
	}

	// The edge spans several pixel columns.  Everything left of the buffer
	// is folded into the first column, and columns right of the buffer do
	// not contribute.
	dydx := 1 / e.dxdy
	lo, hi := pixLeft, min(pixRight, bboxXMax-1)
	if lo < bboxXMin {
		bx := float64(bboxXMin)
		yB := e.y0 + dydx*(bx-e.x0)
		var segYMin, segYMax float64
		if xAtYTop < bx {
			segYMin, segYMax = yTop, min(max(yB, yTop), yBot)
		} else {
			segYMin, segYMax = max(min(yB, yBot), yTop), yBot
		}
		if segYMax > segYMin {
			coverVal := sign * float32(segYMax-segYMin)
			cover[0] += coverVal
			area[0] += coverVal
		}
		lo = bboxXMin
	}

	for pix := lo; pix <= hi; pix++ {
		// y range of the edge within this pixel column
		yAtPixLeft := e.y0 + dydx*(float64(pix)-e.x0)
		yAtPixRight := e.y0 + dydx*(float64(pix+1)-e.x0)
		segYMin := max(min(yAtPixLeft, yAtPixRight), yTop)
		segYMax := min(max(yAtPixLeft, yAtPixRight), yBot)
		segDy := segYMax - segYMin
		if segDy <= 0 {
			continue
		}

		coverVal := sign * float32(segDy)
		yMid := (segYMin + segYMax) / 2
		xFrac := e.x0 + e.dxdy*(yMid-e.y0) - float64(pix)

		idx := pix - bboxXMin
		cover[idx] += coverVal
		area[idx] += coverVal * float32(1-xFrac)
	}
}

// accumulateEdgeInColumn handles an edge segment that falls within a single pixel column.
func accumulateEdgeInColumn(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, bboxXMin, bboxXMax int) {
	coverVal := sign * float32(yBot-yTop)

	if pix < bboxXMin {
		cover[0] += coverVal
		area[0] += coverVal
		return
	}
	if pix >= bboxXMax {
		return
	}

	// Compute average x within this pixel
	yMid := (yTop + yBot) / 2
	xMid := e.x0 + e.dxdy*(yMid-e.y0)
	xFrac := xMid - float64(pix)
	areaVal := coverVal * float32(1-xFrac)

	idx := pix - bboxXMin
	cover[idx] += coverVal
	area[idx] += areaVal
}

// integrateScanlineNonZero converts accumulated cover/area to final coverage
// values using the nonzero winding rule. The cover slice is modified in place.
func integrateScanlineNonZero(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]

		// clamp(abs(raw), 0, 1)
		cov := raw
		if raw < 0 {
			cov = -raw
		}
		if cov > 1 {
			cov = 1
		}
		cover[i] = cov
	}
}

// integrateScanlineEvenOdd converts accumulated cover/area to final coverage
// values using the even-odd fill rule. The cover slice is modified in place.
func integrateScanlineEvenOdd(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]

		// 1 - abs(1 - mod(abs(raw), 2))
		if raw < 0 {
			raw = -raw
		}
		// mod(raw, 2) using floor
		mod := raw - 2*float32(int(raw/2))
		cov := 1 - abs32(1-mod)
		cover[i] = cov
	}
}

// abs32 returns the absolute value of a float32.
func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// finishRow converts the accumulated cover and area values of one row
// into coverage and passes the non-zero part to emit.
func (r *Rasterizer) finishRow(y, xMin int, cover, area []float32, rule FillRule, emit EmitFunc) {
	if rule == EvenOdd {
		integrateScanlineEvenOdd(cover, area)
	} else {
		integrateScanlineNonZero(cover, area)
	}
	if !r.Antialias {
		for i, c := range cover {
			if c >= 0.5 {
				cover[i] = 1
			} else {
				cover[i] = 0
			}
		}
	}
	if trimmed, offset := trimZeros(cover); trimmed != nil {
		emit(y, xMin+offset, trimmed)
	}
}

// trimZeros returns the non-zero portion of coverage and its starting offset.
// Returns nil, 0 if coverage is entirely zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

// fillSmallPath rasterizes using one cover/area buffer per row of the
// bounding box.  xMin, xMax, yMin, yMax is the bounding box, already
// clamped to the clip rectangle.
func (r *Rasterizer) fillSmallPath(xMin, xMax, yMin, yMax int, rule FillRule, emit EmitFunc) {
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], height)[:height]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]
		lo := max(floorInt(min(e.y0, e.y1), float64(yMin)), yMin)
		hi := min(floorInt(max(e.y0, e.y1), float64(yMax))+1, yMax)
		for y := lo; y < hi; y++ {
			row := y - yMin
			off := row * width
			accumulateEdge(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowHasEdges[row] = true
		}
	}

	for row := range height {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * width
		r.finishRow(yMin+row, xMin, r.cover[off:off+width], r.area[off:off+width], rule, emit)
	}
}

// fillLargePath rasterizes one scanline at a time, using an active edge
// list sorted by the top of each edge.
func (r *Rasterizer) fillLargePath(xMin, xMax, yMin, yMax int, rule FillRule, emit EmitFunc) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		yfNext := float64(y + 1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yfNext {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)

		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				// the edge ends above this scanline
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			accumulateEdge(e, y, r.cover, r.area, xMin, xMax)
			if min(yfNext, max(e.y0, e.y1)) > max(yf, min(e.y0, e.y1)) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		r.finishRow(y, xMin, r.cover, r.area, rule, emit)
	}
}

// Default values for rasterizer parameters.
const (
	// defaultFlatness is the flattening tolerance of QualityHigh, in
	// device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript.  Corners sharper than
	// about 11.5 degrees are bevelled.
	defaultMiterLimit = 10.0
)

// Numerical tolerances for the rasterizer.
const (
	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the maximum bounding box area (in pixels) for
	// using per-row buffers in fillSmallPath.
	smallPathThreshold = 65536

	// zeroLengthThreshold is the minimum length for a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is used to detect nearly collinear segments
	// where no join is needed.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects segments which double back on
	// themselves.  cos(179.19°) ≈ -0.9999
	cuspCosineThreshold = -0.9999
)
