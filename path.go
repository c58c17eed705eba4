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
	"errors"
	"fmt"
	"iter"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrInvalidGeometry is returned by [Path.Validate] for paths containing
// NaN or infinite values.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Command identifies the kind of a path segment.
type Command uint8

// These are the path commands.
const (
	CmdMoveTo Command = iota // 1 point
	CmdLineTo                // 1 point
	CmdQuadTo                // 2 points: control, end
	CmdCubeTo                // 3 points: control 1, control 2, end
	CmdArc                   // no points, parameters in Path.Arcs
	CmdClose                 // no points
)

func (c Command) String() string {
	switch c {
	case CmdMoveTo:
		return "MoveTo"
	case CmdLineTo:
		return "LineTo"
	case CmdQuadTo:
		return "QuadTo"
	case CmdCubeTo:
		return "CubeTo"
	case CmdArc:
		return "Arc"
	case CmdClose:
		return "Close"
	default:
		return fmt.Sprintf("Command(%d)", c)
	}
}

// numCoords returns the number of entries in Path.Coords used by c.
func (c Command) numCoords() int {
	switch c {
	case CmdMoveTo, CmdLineTo:
		return 1
	case CmdQuadTo:
		return 2
	case CmdCubeTo:
		return 3
	default:
		return 0
	}
}

// Path is a sequence of subpaths made of lines, Bézier curves and
// elliptical arcs.
//
// Every subpath starts with a CmdMoveTo. Drawing commands issued while no
// subpath is open first insert an implicit MoveTo at the current point:
// the origin for an empty path, or the start of the previous subpath after
// [Path.Close].
//
// A Path is not safe for concurrent use.
type Path struct {
	Cmds   []Command
	Coords []vec.Vec2
	Arcs   []Arc

	current vec.Vec2
	start   vec.Vec2
	open    bool
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at pt.
// The previous subpath is left open.
func (p *Path) MoveTo(pt vec.Vec2) *Path {
	p.Cmds = append(p.Cmds, CmdMoveTo)
	p.Coords = append(p.Coords, pt)
	p.current = pt
	p.start = pt
	p.open = true
	return p
}

// LineTo appends a straight line from the current point to pt.
func (p *Path) LineTo(pt vec.Vec2) *Path {
	p.ensureOpen()
	p.Cmds = append(p.Cmds, CmdLineTo)
	p.Coords = append(p.Coords, pt)
	p.current = pt
	return p
}

// QuadTo appends a quadratic Bézier curve with control point c, ending at pt.
func (p *Path) QuadTo(c, pt vec.Vec2) *Path {
	p.ensureOpen()
	p.Cmds = append(p.Cmds, CmdQuadTo)
	p.Coords = append(p.Coords, c, pt)
	p.current = pt
	return p
}

// CubeTo appends a cubic Bézier curve with control points c1 and c2,
// ending at pt.
func (p *Path) CubeTo(c1, c2, pt vec.Vec2) *Path {
	p.ensureOpen()
	p.Cmds = append(p.Cmds, CmdCubeTo)
	p.Coords = append(p.Coords, c1, c2, pt)
	p.current = pt
	return p
}

// Ellipse appends an elliptical arc around center.
//
// The ellipse has radii rx and ry along its own axes, which are rotated by
// rotation radians. The arc runs from angle start to angle end, see [Arc]
// for the orientation convention. If a subpath is open, a straight line
// connects the current point to the start of the arc; otherwise a new
// subpath begins there.
func (p *Path) Ellipse(center vec.Vec2, rx, ry, rotation, start, end float64, antiClockwise bool) *Path {
	a := Arc{
		Center:        center,
		RX:            math.Abs(rx),
		RY:            math.Abs(ry),
		Rotation:      rotation,
		Start:         start,
		End:           end,
		AntiClockwise: antiClockwise,
	}
	a0 := a.StartPoint()
	if !p.open {
		p.MoveTo(a0)
	} else if p.current != a0 {
		p.LineTo(a0)
	}
	p.Cmds = append(p.Cmds, CmdArc)
	p.Arcs = append(p.Arcs, a)
	p.current = a.EndPoint()
	return p
}

// Close closes the current subpath with a straight line back to its start.
// Closing when no subpath is open has no effect.
func (p *Path) Close() *Path {
	if !p.open {
		return p
	}
	p.Cmds = append(p.Cmds, CmdClose)
	p.current = p.start
	p.open = false
	return p
}

// Clear removes all segments, keeping the allocated capacity.
func (p *Path) Clear() *Path {
	p.Cmds = p.Cmds[:0]
	p.Coords = p.Coords[:0]
	p.Arcs = p.Arcs[:0]
	p.current = vec.Vec2{}
	p.start = vec.Vec2{}
	p.open = false
	return p
}

func (p *Path) ensureOpen() {
	if !p.open {
		p.MoveTo(p.current)
	}
}

// CurrentPoint returns the end point of the last segment.
func (p *Path) CurrentPoint() vec.Vec2 {
	return p.current
}

// Len returns the number of commands in the path.
func (p *Path) Len() int {
	return len(p.Cmds)
}

// Segment is one command of a path together with its points.
type Segment struct {
	Cmd Command
	Pts []vec.Vec2 // aliases Path.Coords, nil for CmdArc and CmdClose
	Arc Arc        // only set for CmdArc
}

// Segments iterates over the commands of the path.
// The Pts slices are only valid until the path is modified.
func (p *Path) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		coordIdx, arcIdx := 0, 0
		for _, cmd := range p.Cmds {
			seg := Segment{Cmd: cmd}
			if n := cmd.numCoords(); n > 0 {
				seg.Pts = p.Coords[coordIdx : coordIdx+n]
				coordIdx += n
			}
			if cmd == CmdArc {
				seg.Arc = p.Arcs[arcIdx]
				arcIdx++
			}
			if !yield(seg) {
				return
			}
		}
	}
}

// Validate checks that all coordinates and arc parameters are finite.
func (p *Path) Validate() error {
	i := 0
	for seg := range p.Segments() {
		for _, pt := range seg.Pts {
			if !isFinite(pt) {
				return fmt.Errorf("segment %d (%s): %w", i, seg.Cmd, ErrInvalidGeometry)
			}
		}
		if seg.Cmd == CmdArc && !seg.Arc.isFinite() {
			return fmt.Errorf("segment %d (%s): %w", i, seg.Cmd, ErrInvalidGeometry)
		}
		i++
	}
	return nil
}

// Bounds returns a rectangle which encloses the path, including all
// Bézier control points.  The result is the zero rectangle for an
// empty path.
func (p *Path) Bounds() rect.Rect {
	var b rect.Rect
	first := true
	extend := func(pt vec.Vec2) {
		if first {
			b = rect.Rect{LLx: pt.X, LLy: pt.Y, URx: pt.X, URy: pt.Y}
			first = false
			return
		}
		b.LLx = min(b.LLx, pt.X)
		b.LLy = min(b.LLy, pt.Y)
		b.URx = max(b.URx, pt.X)
		b.URy = max(b.URy, pt.Y)
	}
	for _, pt := range p.Coords {
		extend(pt)
	}
	for _, a := range p.Arcs {
		r := max(a.RX, a.RY)
		extend(vec.Vec2{X: a.Center.X - r, Y: a.Center.Y - r})
		extend(vec.Vec2{X: a.Center.X + r, Y: a.Center.Y + r})
	}
	return b
}

// Data converts the path to a [path.Data] value.
// Elliptical arcs are approximated by cubic Bézier curves.
func (p *Path) Data() *path.Data {
	res := &path.Data{}
	for seg := range p.Segments() {
		switch seg.Cmd {
		case CmdMoveTo:
			res.MoveTo(seg.Pts[0])
		case CmdLineTo:
			res.LineTo(seg.Pts[0])
		case CmdQuadTo:
			res.QuadTo(seg.Pts[0], seg.Pts[1])
		case CmdCubeTo:
			res.CubeTo(seg.Pts[0], seg.Pts[1], seg.Pts[2])
		case CmdArc:
			seg.Arc.appendCubics(func(c1, c2, pt vec.Vec2) {
				res.CubeTo(c1, c2, pt)
			})
		case CmdClose:
			res.Close()
		}
	}
	return res
}

// FromData builds a Path from a [path.Data] value.
func FromData(d *path.Data) *Path {
	p := NewPath()
	coordIdx := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			p.MoveTo(d.Coords[coordIdx])
			coordIdx++
		case path.CmdLineTo:
			p.LineTo(d.Coords[coordIdx])
			coordIdx++
		case path.CmdQuadTo:
			p.QuadTo(d.Coords[coordIdx], d.Coords[coordIdx+1])
			coordIdx += 2
		case path.CmdCubeTo:
			p.CubeTo(d.Coords[coordIdx], d.Coords[coordIdx+1], d.Coords[coordIdx+2])
			coordIdx += 3
		case path.CmdClose:
			p.Close()
		}
	}
	return p
}

func isFinite(v vec.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
