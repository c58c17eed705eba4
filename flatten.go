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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Polygon is a list of closed loops in device coordinates.
// Each loop is implicitly closed by an edge from its last vertex back to
// its first vertex.
type Polygon [][]vec.Vec2

// NumVertices returns the total number of vertices of all loops.
func (p Polygon) NumVertices() int {
	n := 0
	for _, loop := range p {
		n += len(loop)
	}
	return n
}

// Flatten converts p into straight line segments and maps the result to
// device space using ctm.  Curves and arcs are approximated to within the
// tolerance of q, measured in device pixels.  There is one loop per
// subpath; open subpaths are closed, as they would be for filling.
func Flatten(p *Path, ctm matrix.Matrix, q Quality) Polygon {
	r := &Rasterizer{CTM: ctm, Flatness: q.Flatness()}
	return r.Flatten(p)
}

// Flatten converts p to a polygon in device space, using the CTM and
// Flatness of r.  The result does not share memory with r.
func (r *Rasterizer) Flatten(p *Path) Polygon {
	r.flattenPath(p, window{})
	res := make(Polygon, 0, len(r.subpaths))
	for _, sp := range r.subpaths {
		pts := r.pts[sp.start:sp.end]
		if len(pts) == 0 {
			continue
		}
		loop := make([]vec.Vec2, len(pts))
		for i, pt := range pts {
			loop[i] = r.toDevice(pt)
		}
		res = append(res, loop)
	}
	return res
}

// subpath locates one flattened subpath inside Rasterizer.pts.
type subpath struct {
	start, end int
	closed     bool
}

// flattenPath walks the path and replaces all curves and arcs by
// polylines in user space.  Results are stored in r.pts and r.subpaths.
// Non-finite points are dropped, and consecutive duplicate points are
// merged.  The closing vertex of a closed subpath is not repeated.
// Curve pieces outside of win are replaced by their chords.
func (r *Rasterizer) flattenPath(p *Path, win window) {
	r.flatWin = win
	r.pts = r.pts[:0]
	r.subpaths = r.subpaths[:0]
	r.inSubpath = false

	var current vec.Vec2
	coordIdx, arcIdx := 0, 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case CmdMoveTo:
			r.endSubpath(false)
			current = p.Coords[coordIdx]
			coordIdx++
			r.beginSubpath(current)

		case CmdLineTo:
			r.ensureSubpath(current)
			current = p.Coords[coordIdx]
			coordIdx++
			r.lineTo(current)

		case CmdQuadTo:
			r.ensureSubpath(current)
			c, pt := p.Coords[coordIdx], p.Coords[coordIdx+1]
			coordIdx += 2
			r.flattenQuadratic(current, c, pt, r.lineTo)
			current = pt

		case CmdCubeTo:
			r.ensureSubpath(current)
			c1, c2, pt := p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2]
			coordIdx += 3
			r.flattenCubic(current, c1, c2, pt, r.lineTo)
			current = pt

		case CmdArc:
			a := p.Arcs[arcIdx]
			arcIdx++
			r.ensureSubpath(current)
			r.lineTo(a.StartPoint())
			r.flattenArc(a, r.lineTo)
			current = a.EndPoint()

		case CmdClose:
			if r.inSubpath {
				r.spDrawn = true
				r.endSubpath(true)
				current = r.spStart
			}
		}
	}
	r.endSubpath(false)
}

func (r *Rasterizer) beginSubpath(pt vec.Vec2) {
	r.inSubpath = true
	r.spDrawn = false
	r.spStart = pt
	r.spIdx = len(r.pts)
	if isFinite(pt) {
		r.pts = append(r.pts, pt)
	}
}

func (r *Rasterizer) ensureSubpath(current vec.Vec2) {
	if !r.inSubpath {
		r.beginSubpath(current)
	}
}

// lineTo extends the current subpath to pt.
func (r *Rasterizer) lineTo(pt vec.Vec2) {
	r.spDrawn = true
	if !isFinite(pt) {
		return
	}
	if n := len(r.pts); n > r.spIdx && r.pts[n-1] == pt {
		return
	}
	r.pts = append(r.pts, pt)
}

// endSubpath records the current subpath.  Subpaths consisting of a
// single MoveTo are discarded.
func (r *Rasterizer) endSubpath(closed bool) {
	if !r.inSubpath {
		return
	}
	r.inSubpath = false
	if !r.spDrawn || len(r.pts) == r.spIdx {
		r.pts = r.pts[:r.spIdx]
		return
	}
	if n := len(r.pts); closed && n > r.spIdx+1 && r.pts[n-1] == r.pts[r.spIdx] {
		r.pts = r.pts[:n-1]
	}
	r.subpaths = append(r.subpaths, subpath{start: r.spIdx, end: len(r.pts), closed: closed})
}

// toDevice maps a point from user space to device space.
func (r *Rasterizer) toDevice(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*p.X + r.CTM[2]*p.Y + r.CTM[4],
		Y: r.CTM[1]*p.X + r.CTM[3]*p.Y + r.CTM[5],
	}
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
// Used for CTM-aware tolerance checking where translation is irrelevant.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2 by
// line segments and calls lineTo for every vertex after p0.
// The points are in user space, the tolerance applies in device space.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, lineTo func(vec.Vec2)) {
	r.quadraticPiece(p0, p1, p2, lineTo, 0)
}

func (r *Rasterizer) quadraticPiece(p0, p1, p2 vec.Vec2, lineTo func(vec.Vec2), depth int) {
	// The distance between the curve and its chord is bounded by
	// |P0 - 2P1 + P2|/4, and halving the parameter step divides it by four.
	e := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	nf := math.Sqrt(e.Length() / r.Flatness)

	switch r.pieceAction(nf, depth, p0, p1, p2) {
	case pieceChord:
		lineTo(p2)
		return
	case pieceSplit:
		p01 := p0.Add(p1).Mul(0.5)
		p12 := p1.Add(p2).Mul(0.5)
		mid := p01.Add(p12).Mul(0.5)
		r.quadraticPiece(p0, p01, mid, lineTo, depth+1)
		r.quadraticPiece(mid, p12, p2, lineTo, depth+1)
		return
	}

	n := segmentCount(nf)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		lineTo(p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t)))
	}
	lineTo(p2)
}

// flattenCubic approximates a cubic Bézier curve by line segments, using
// Wang's formula for the number of segments.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, lineTo func(vec.Vec2)) {
	r.cubicPiece(p0, p1, p2, p3, lineTo, 0)
}

func (r *Rasterizer) cubicPiece(p0, p1, p2, p3 vec.Vec2, lineTo func(vec.Vec2), depth int) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))
	nf := math.Sqrt(3 * max(d1.Length(), d2.Length()) / (4 * r.Flatness))

	switch r.pieceAction(nf, depth, p0, p1, p2, p3) {
	case pieceChord:
		lineTo(p3)
		return
	case pieceSplit:
		p01 := p0.Add(p1).Mul(0.5)
		p12 := p1.Add(p2).Mul(0.5)
		p23 := p2.Add(p3).Mul(0.5)
		p012 := p01.Add(p12).Mul(0.5)
		p123 := p12.Add(p23).Mul(0.5)
		mid := p012.Add(p123).Mul(0.5)
		r.cubicPiece(p0, p01, p012, mid, lineTo, depth+1)
		r.cubicPiece(mid, p123, p23, p3, lineTo, depth+1)
		return
	}

	n := segmentCount(nf)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		lineTo(pt)
	}
	lineTo(p3)
}

const (
	// maxSegments is the largest number of chords used for a single
	// curve piece.
	maxSegments = 1 << 16

	// splitSegments is the number of chords above which a curve is split
	// in half, so that parts outside the clip window can be skipped.
	splitSegments = 256

	// maxSplitDepth limits the recursion when splitting curves.
	maxSplitDepth = 48
)

type pieceMode int

const (
	pieceFlatten pieceMode = iota // approximate by uniform chords
	pieceChord                    // replace by a single chord
	pieceSplit                    // split in half and try again
)

// pieceAction decides how a curve piece which needs nf chords is
// flattened.  ctrl are the control points in user space; the piece lies
// inside their convex hull.  A piece whose control points all lie outside
// the flattening window cannot change the winding number of any pixel
// inside the window when it is replaced by its chord.
func (r *Rasterizer) pieceAction(nf float64, depth int, ctrl ...vec.Vec2) pieceMode {
	if !(nf > splitSegments) || !r.flatWin.enabled || depth >= maxSplitDepth {
		return pieceFlatten
	}
	box := emptyBox()
	for _, pt := range ctrl {
		box = box.extend(r.toDevice(pt))
	}
	if r.flatWin.misses(box, 0) {
		return pieceChord
	}
	return pieceSplit
}

// segmentCount rounds the requested number of chords up to an integer
// between 1 and maxSegments.
func segmentCount(nf float64) int {
	if !(nf > 1) {
		return 1
	}
	return int(math.Ceil(min(nf, maxSegments)))
}

// maxArcStep is the largest angle covered by a single chord of a
// flattened arc.
const maxArcStep = 2 * math.Pi / 3

// arcStep returns the angle per chord which keeps the sagitta of a
// circle of the given device space radius below the flatness tolerance.
func (r *Rasterizer) arcStep(devRadius float64) float64 {
	if devRadius <= r.Flatness {
		return maxArcStep
	}
	// A chord spanning θ deviates from the circle by radius·(1 - cos(θ/2)).
	step := 2 * math.Acos(1-r.Flatness/devRadius)
	if !(step > 0) {
		return maxArcStep
	}
	return min(step, maxArcStep)
}

// flattenArc approximates an elliptical arc by line segments and calls
// lineTo for every vertex after the start point.
func (r *Rasterizer) flattenArc(a Arc, lineTo func(vec.Vec2)) {
	sweep := a.Sweep()
	if sweep == 0 {
		return
	}

	sinR, cosR := math.Sincos(a.Rotation)
	axisX := r.transformLinear(vec.Vec2{X: a.RX * cosR, Y: a.RX * sinR})
	axisY := r.transformLinear(vec.Vec2{X: -a.RY * sinR, Y: a.RY * cosR})
	devRadius := max(axisX.Length(), axisY.Length())
	// bound for the norm of the map from the unit circle to device space
	stretch := math.Hypot(axisX.Length(), axisY.Length())

	r.arcPiece(a, a.Start, sweep, r.arcStep(devRadius), stretch, lineTo, 0)
}

// arcPiece flattens the part of a from angle theta to theta+sweep.
func (r *Rasterizer) arcPiece(a Arc, theta, sweep, step, stretch float64, lineTo func(vec.Vec2), depth int) {
	nf := math.Abs(sweep) / step
	end := a.Point(theta + sweep)

	if r.flatWin.enabled && nf > splitSegments && depth < maxSplitDepth {
		// The arc deviates from its chord by at most the sagitta.
		bulge := 2 * stretch
		if h := math.Abs(sweep) / 2; h < math.Pi/2 {
			bulge = stretch * (1 - math.Cos(h))
		}
		box := emptyBox().
			extend(r.toDevice(a.Point(theta))).
			extend(r.toDevice(end))
		if r.flatWin.misses(box, bulge) {
			lineTo(end)
			return
		}
		r.arcPiece(a, theta, sweep/2, step, stretch, lineTo, depth+1)
		r.arcPiece(a, theta+sweep/2, sweep/2, step, stretch, lineTo, depth+1)
		return
	}

	n := segmentCount(nf)
	for i := 1; i < n; i++ {
		lineTo(a.Point(theta + sweep*float64(i)/float64(n)))
	}
	lineTo(end)
}

// window is a rectangle in device space, outside of which geometry is
// simplified.  The zero value is disabled and contains everything.
type window struct {
	enabled                bool
	xMin, xMax, yMin, yMax float64
}

// window returns the clip rectangle of r, grown by margin device pixels.
// The result is disabled if the clip rectangle is empty or the margin is
// not finite.
func (r *Rasterizer) window(margin float64) window {
	if !(r.Clip.URx > r.Clip.LLx && r.Clip.URy > r.Clip.LLy) || !(margin < math.Inf(1)) {
		return window{}
	}
	return window{
		enabled: true,
		xMin:    r.Clip.LLx - margin,
		xMax:    r.Clip.URx + margin,
		yMin:    r.Clip.LLy - margin,
		yMax:    r.Clip.URy + margin,
	}
}

// fillMargin is the window margin for filling, in device pixels.
const fillMargin = 1

// strokeMargin returns how far, in device pixels, the stroke outline can
// reach beyond the centerline.  Miter joins are bevelled at cusps, and
// inner corners reach furthest just before a corner turns into a cusp.
func (r *Rasterizer) strokeMargin() float64 {
	reach := 1 / math.Sqrt((1+cuspCosineThreshold)/2)
	stretch := math.Sqrt(r.CTM[0]*r.CTM[0] + r.CTM[1]*r.CTM[1] + r.CTM[2]*r.CTM[2] + r.CTM[3]*r.CTM[3])
	return r.Width/2*reach*stretch + fillMargin
}

// box is an axis-aligned bounding box in device space.
type box struct {
	xMin, xMax, yMin, yMax float64
}

func emptyBox() box {
	return box{xMin: math.Inf(1), xMax: math.Inf(-1), yMin: math.Inf(1), yMax: math.Inf(-1)}
}

func (b box) extend(pt vec.Vec2) box {
	return box{
		xMin: min(b.xMin, pt.X),
		xMax: max(b.xMax, pt.X),
		yMin: min(b.yMin, pt.Y),
		yMax: max(b.yMax, pt.Y),
	}
}

// misses reports whether b, grown by pad, lies entirely outside w.
func (w window) misses(b box, pad float64) bool {
	return b.xMax+pad < w.xMin || b.xMin-pad > w.xMax ||
		b.yMax+pad < w.yMin || b.yMin-pad > w.yMax
}
