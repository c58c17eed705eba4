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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// isDashed reports whether Dash and DashPhase describe a usable dash
// pattern.  Patterns with negative or non-finite entries, and patterns
// where all entries are zero, give a solid line.
func (r *Rasterizer) isDashed() bool {
	if len(r.Dash) == 0 || math.IsNaN(r.DashPhase) || math.IsInf(r.DashPhase, 0) {
		return false
	}
	total := 0.0
	for _, d := range r.Dash {
		if !(d >= 0) || math.IsInf(d, 0) {
			return false
		}
		total += d
	}
	return total > 0
}

// dashState tracks the current position inside the dash pattern.
// Odd-length patterns are repeated twice, so that entry i is "on" if i
// is even.
type dashState struct {
	pattern   []float64
	idx       int
	remaining float64 // length left in the current entry
}

func (s *dashState) on() bool {
	return s.idx%2 == 0
}

func (s *dashState) next() {
	s.idx++
	s.remaining = s.pattern[s.idx%len(s.pattern)]
}

// advance moves the pattern position forward by dist, without producing
// dashes.  period is the length of one full on/off cycle of the pattern.
func (s *dashState) advance(dist, period float64) {
	if dist < s.remaining {
		s.remaining -= dist
		return
	}
	dist -= s.remaining
	s.next()
	dist = math.Mod(dist, period)
	for dist >= s.remaining {
		dist -= s.remaining
		s.next()
	}
	s.remaining -= dist
}

// applyDashPattern splits the stroke segments in r.segs into dashes.
// The results are stored in r.dashedSegs and r.dashSpans.
func (r *Rasterizer) applyDashPattern() {
	r.dashedSegs = r.dashedSegs[:0]
	r.dashSpans = r.dashSpans[:0]

	patternLen := 0.0
	for _, d := range r.Dash {
		patternLen += d
	}
	if len(r.Dash)%2 == 1 {
		patternLen *= 2
	}
	phase := math.Mod(r.DashPhase, patternLen)
	if phase < 0 {
		phase += patternLen
	}

	win := r.window(r.strokeMargin())
	for _, sp := range r.segSpans {
		r.dashSubpath(r.segs[sp.start:sp.end], sp.closed, phase, patternLen, win)
	}
}

// visible returns the part of seg inside the window, as distances from
// seg.A.  If no part of seg is inside the window, from equals to.
func (r *Rasterizer) visible(win window, seg *strokeSegment, segLen float64) (from, to float64) {
	if !win.enabled {
		return 0, segLen
	}
	a, b := r.toDevice(seg.A), r.toDevice(seg.B)
	dx, dy := b.X-a.X, b.Y-a.Y

	t0, t1 := 0.0, 1.0
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
		return t0 <= t1
	}
	if !clip(-dx, a.X-win.xMin) || !clip(dx, win.xMax-a.X) ||
		!clip(-dy, a.Y-win.yMin) || !clip(dy, win.yMax-a.Y) {
		return segLen, segLen
	}
	return t0 * segLen, t1 * segLen
}

// dashSubpath splits the segments of one subpath into dashes.  Dashes are
// only generated inside win; a dash leaving the window is cut where it
// leaves.
func (r *Rasterizer) dashSubpath(segs []strokeSegment, closed bool, phase, period float64, win window) {
	ds := dashState{pattern: r.Dash, remaining: r.Dash[0]}
	for phase > 0 && phase >= ds.remaining {
		phase -= ds.remaining
		ds.next()
	}
	ds.remaining -= phase

	startedOn := ds.on()
	firstSpan := len(r.dashSpans)
	dashStart := len(r.dashedSegs)

	for i := range segs {
		seg := &segs[i]
		segLen := seg.B.Sub(seg.A).Length()
		from, to := r.visible(win, seg, segLen)

		pos := 0.0
		if from > 0 {
			if i == 0 {
				startedOn = false
			}
			dashStart = r.closeDash(dashStart)
			ds.advance(from, period)
			pos = from
		}
		for ds.remaining < to-pos {
			end := pos + ds.remaining
			if ds.on() {
				r.addDashPiece(seg, pos, end, dashStart)
				dashStart = r.closeDash(dashStart)
			}
			pos = end
			ds.next()
		}
		if ds.on() && to > pos {
			r.addDashPiece(seg, pos, to, dashStart)
		}
		ds.remaining -= to - pos
		if to < segLen {
			dashStart = r.closeDash(dashStart)
			ds.advance(segLen-to, period)
		}
	}

	if !ds.on() || len(r.dashedSegs) == dashStart {
		return
	}
	if closed && startedOn {
		if firstSpan == len(r.dashSpans) {
			// a single dash covers the whole subpath
			r.dashSpans = append(r.dashSpans, segSpan{start: dashStart, end: len(r.dashedSegs), closed: true})
			return
		}
		// The first and last dash meet at the start of the subpath.
		first := r.dashSpans[firstSpan]
		r.dashedSegs = append(r.dashedSegs, r.dashedSegs[first.start:first.end]...)
		r.dashSpans = slices.Delete(r.dashSpans, firstSpan, firstSpan+1)
	}
	r.closeDash(dashStart)
}

// addDashPiece adds the part of seg between the distances from and to,
// measured from seg.A, to the current dash.  A dash of length zero is
// recorded as a single point, which keeps the tangent of seg for square
// caps.
func (r *Rasterizer) addDashPiece(seg *strokeSegment, from, to float64, dashStart int) {
	a := seg.pointAt(from)
	if to-from > zeroLengthThreshold {
		r.dashedSegs = append(r.dashedSegs, strokeSegment{A: a, B: seg.pointAt(to), T: seg.T, N: seg.N})
	} else if len(r.dashedSegs) == dashStart {
		r.dashedSegs = append(r.dashedSegs, strokeSegment{A: a, B: a, T: seg.T, N: seg.N})
	}
}

// closeDash finishes the dash starting at r.dashedSegs[dashStart] and
// returns the start index of the next dash.
func (r *Rasterizer) closeDash(dashStart int) int {
	if end := len(r.dashedSegs); end > dashStart {
		r.dashSpans = append(r.dashSpans, segSpan{start: dashStart, end: end})
	}
	return len(r.dashedSegs)
}

// pointAt returns the point at distance dist from s.A.
func (s *strokeSegment) pointAt(dist float64) vec.Vec2 {
	if dist <= 0 {
		return s.A
	}
	if dist >= s.B.Sub(s.A).Length() {
		return s.B
	}
	return s.A.Add(s.T.Mul(dist))
}
