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

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a line segment of a flattened path, in user space.
type strokeSegment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent (A→B direction)
	N    vec.Vec2 // unit normal (90° CCW from T)
}

// segSpan locates a run of connected segments in a segment buffer.
type segSpan struct {
	start, end int
	closed     bool
}

// Stroke renders the outline of the path, using Width, Cap, Join,
// MiterLimit, Dash and DashPhase.  The outline polygons are filled
// together with the nonzero rule, so overlapping parts are painted once.
func (r *Rasterizer) Stroke(p *Path, emit EmitFunc) {
	r.buildStroke(p)
	r.beginEdges()
	for i := range r.strokeOffsets {
		poly := r.strokePolygon(i)
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	r.rasterize(NonZero, emit)
}

// StrokeOutline returns the polygons which [Rasterizer.Stroke] would fill,
// in device coordinates.  The polygons must be filled using the nonzero
// winding rule.  Dashes and curve detail far outside the clip rectangle
// are left out.
func (r *Rasterizer) StrokeOutline(p *Path) Polygon {
	r.buildStroke(p)
	res := make(Polygon, len(r.strokeOffsets))
	for i := range r.strokeOffsets {
		poly := r.strokePolygon(i)
		loop := make([]vec.Vec2, len(poly))
		for j, pt := range poly {
			loop[j] = r.toDevice(pt)
		}
		res[i] = loop
	}
	return res
}

// strokePolygon returns outline polygon i, in user space.
func (r *Rasterizer) strokePolygon(i int) []vec.Vec2 {
	end := len(r.stroke)
	if i+1 < len(r.strokeOffsets) {
		end = r.strokeOffsets[i+1]
	}
	return r.stroke[r.strokeOffsets[i]:end]
}

// buildStroke computes the stroke outline of p in user space.
// The results are stored in r.stroke and r.strokeOffsets.
func (r *Rasterizer) buildStroke(p *Path) {
	r.flattenPath(p, r.window(r.strokeMargin()))
	r.collectStrokeSegments()

	r.stroke = r.stroke[:0]
	r.strokeOffsets = r.strokeOffsets[:0]

	// Subpaths without any extent have no direction.  Only round caps
	// make them visible.
	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.degeneratePoints {
			start := len(r.stroke)
			r.addArc(pt, r.Width/2, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
			r.endPolygon(start)
		}
	}

	segs, spans := r.segs, r.segSpans
	if r.isDashed() {
		r.applyDashPattern()
		segs, spans = r.dashedSegs, r.dashSpans
	}

	for _, sp := range spans {
		run := segs[sp.start:sp.end]
		start := len(r.stroke)
		if len(run) == 1 && run[0].A == run[0].B {
			r.addDot(&run[0])
		} else {
			r.strokeSubpath(run, sp.closed)
		}
		r.endPolygon(start)
	}
}

// endPolygon finishes the polygon which starts at r.stroke[start].
// Polygons with fewer than three vertices are discarded.
func (r *Rasterizer) endPolygon(start int) {
	if len(r.stroke)-start < 3 {
		r.stroke = r.stroke[:start]
		return
	}
	r.strokeOffsets = append(r.strokeOffsets, start)
}

// collectStrokeSegments converts the flattened subpaths into stroke
// segments.  Subpaths where all points coincide go to r.degeneratePoints.
func (r *Rasterizer) collectStrokeSegments() {
	r.segs = r.segs[:0]
	r.segSpans = r.segSpans[:0]
	r.degeneratePoints = r.degeneratePoints[:0]

	for _, sp := range r.subpaths {
		pts := r.pts[sp.start:sp.end]
		start := len(r.segs)
		for i := 1; i < len(pts); i++ {
			r.addStrokeSegment(pts[i-1], pts[i])
		}
		if sp.closed && len(pts) > 1 {
			r.addStrokeSegment(pts[len(pts)-1], pts[0])
		}

		if len(r.segs) == start {
			r.degeneratePoints = append(r.degeneratePoints, pts[0])
			continue
		}
		r.segSpans = append(r.segSpans, segSpan{start: start, end: len(r.segs), closed: sp.closed})
	}
}

// addStrokeSegment appends the segment from a to b to r.segs.
// Very short segments are skipped.
func (r *Rasterizer) addStrokeSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// cross returns the z component of the cross product of a and b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// strokeSubpath appends the outline of a run of connected segments to
// r.stroke.  The outline is a single polygon: the +N side in path
// direction, followed by the -N side in reverse.  Join geometry goes on
// the outer side of each corner.
func (r *Rasterizer) strokeSubpath(segs []strokeSegment, closed bool) {
	n := len(segs)
	if n == 0 {
		return
	}
	d := r.Width / 2
	first, last := &segs[0], &segs[n-1]

	if closed {
		r.stroke = append(r.stroke, first.A.Add(first.N.Mul(d)))
		for i := range segs {
			r.cornerPos(&segs[i], &segs[(i+1)%n], d)
		}
		r.cornerNeg(last, first, d)
	} else {
		r.addCap(first.A, first.T.Mul(-1), d)
		r.stroke = append(r.stroke, first.A.Add(first.N.Mul(d)))
		for i := 0; i < n-1; i++ {
			r.cornerPos(&segs[i], &segs[i+1], d)
		}
		r.stroke = append(r.stroke, last.B.Add(last.N.Mul(d)))
		r.addCap(last.B, last.T, d)
		r.stroke = append(r.stroke, last.B.Sub(last.N.Mul(d)))
	}

	for i := n - 1; i > 0; i-- {
		r.cornerNeg(&segs[i-1], &segs[i], d)
	}
	r.stroke = append(r.stroke, first.A.Sub(first.N.Mul(d)))
}

// cornerPos adds the +N side of the corner where seg meets next.
func (r *Rasterizer) cornerPos(seg, next *strokeSegment, d float64) {
	s := cross(seg.T, next.T)
	switch {
	case math.Abs(s) < collinearityThreshold:
		r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)), next.A.Add(next.N.Mul(d)))
	case s > 0:
		// right turn, +N is the inner side
		r.innerCorner(seg.B, seg.T, next.T, seg.N, next.N, d, true)
	default:
		r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
		r.addJoin(seg.B, seg.T, next.T, d, true)
		r.stroke = append(r.stroke, next.A.Add(next.N.Mul(d)))
	}
}

// cornerNeg adds the -N side of the corner where prev meets seg,
// walking backwards along the path.
func (r *Rasterizer) cornerNeg(prev, seg *strokeSegment, d float64) {
	s := cross(prev.T, seg.T)
	switch {
	case math.Abs(s) < collinearityThreshold:
		r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)), prev.B.Sub(prev.N.Mul(d)))
	case s > 0:
		r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)))
		r.addJoin(seg.A, prev.T, seg.T, d, false)
		r.stroke = append(r.stroke, prev.B.Sub(prev.N.Mul(d)))
	default:
		// left turn, -N is the inner side
		r.innerCorner(seg.A, prev.T, seg.T, prev.N, seg.N, d, false)
	}
}

// addDot draws a zero-length dash.  The tangent of the underlying path
// orients square caps.
func (r *Rasterizer) addDot(seg *strokeSegment) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addArc(seg.A, r.Width/2, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
	case graphics.LineCapSquare:
		r.addSquare(seg.A, seg.T, r.Width/2)
	}
}

// addCap adds a line cap at P.  T is the tangent pointing away from the
// line, d is half the stroke width.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}

	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.stroke = append(r.stroke, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))

	case graphics.LineCapRound:
		// half circle from +N through T to -N
		r.addArc(P, d, N, -math.Pi, true)
	}
}

// innerCorner adds the inner side of a corner.  Where possible, the
// two offset lines are cut at their intersection; otherwise both offset
// points are added.
func (r *Rasterizer) innerCorner(P, T1, T2, N1, N2 vec.Vec2, d float64, positiveSide bool) {
	if pt, ok := innerIntersection(P, T1, T2, d, positiveSide); ok {
		r.stroke = append(r.stroke, pt)
		return
	}
	if positiveSide {
		r.stroke = append(r.stroke, P.Add(N1.Mul(d)), P.Add(N2.Mul(d)))
	} else {
		r.stroke = append(r.stroke, P.Sub(N1.Mul(d)), P.Sub(N2.Mul(d)))
	}
}

// innerIntersection returns the point where the two inner offset lines
// of a corner meet.  ok is false if the segments are nearly collinear.
func innerIntersection(P, T1, T2 vec.Vec2, d float64, positiveSide bool) (pt vec.Vec2, ok bool) {
	cosTheta := T1.Dot(T2)
	if cosTheta > 1-1e-9 {
		return vec.Vec2{}, false
	}
	cosHalf := math.Sqrt((1 + cosTheta) / 2)
	if cosHalf < 1e-9 {
		return vec.Vec2{}, false
	}

	dir := vec.Vec2{X: -T1.Y - T2.Y, Y: T1.X + T2.X} // N1 + N2
	if !positiveSide {
		dir = dir.Mul(-1)
	}
	l := dir.Length()
	if l < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(dir.Mul(d / (l * cosHalf))), true
}

// addJoin adds the outer side of a line join at P, where the tangent
// changes from T1 to T2.  The offset points on both sides of the join
// are added by the caller.
func (r *Rasterizer) addJoin(P, T1, T2 vec.Vec2, d float64, positiveSide bool) {
	cosTheta := T1.Dot(T2)
	sinTheta := cross(T1, T2)
	if math.Abs(sinTheta) < collinearityThreshold {
		return
	}

	if cosTheta < cuspCosineThreshold {
		// The path doubles back on itself.
		r.addCap(P, T1, d)
		r.addCap(P, T2.Mul(-1), d)
		return
	}

	switch r.Join {
	case graphics.LineJoinMiter:
		// If the tangents enclose the angle θ, the miter length relative
		// to the line width is 1/cos(θ/2).
		cosHalf := math.Sqrt((1 + cosTheta) / 2)
		const miterEpsilon = 1e-10
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit+miterEpsilon {
			bisector := vec.Vec2{X: -T1.Y - T2.Y, Y: T1.X + T2.X}
			if !positiveSide {
				bisector = bisector.Mul(-1)
			}
			if l := bisector.Length(); l > zeroLengthThreshold {
				r.stroke = append(r.stroke, P.Add(bisector.Mul(d/(l*cosHalf))))
			}
		}
		// Beyond the miter limit the join is bevelled, which needs no
		// extra points.

	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cosTheta)))
		if positiveSide {
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			if sinTheta > 0 {
				r.addArc(P, d, N1, angle, false)
			} else {
				r.addArc(P, d, N1, -angle, false)
			}
		} else {
			// walking backwards: from the -N side of T2 to that of T1
			N2 := vec.Vec2{X: T2.Y, Y: -T2.X}
			if sinTheta > 0 {
				r.addArc(P, d, N2, -angle, false)
			} else {
				r.addArc(P, d, N2, angle, false)
			}
		}
	}
}

// addArc adds the vertices of a circular arc to the outline.
// startDir is the unit vector from center to the start of the arc,
// sweep is positive for counter-clockwise arcs.  If includeStart is
// false, the caller has already added the start point.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length())

	n := 1
	if devRadius >= r.Flatness {
		n = segmentCount(math.Abs(sweep) / r.arcStep(devRadius))
	}

	i0 := 1
	if includeStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.stroke = append(r.stroke, center.Add(dir.Mul(radius)))
	}
}

// addSquare adds a square of side 2d, centered at center and aligned
// with the tangent T.
func (r *Rasterizer) addSquare(center, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	r.stroke = append(r.stroke,
		center.Add(T.Mul(d)).Add(N.Mul(d)),
		center.Add(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Add(N.Mul(d)),
	)
}
