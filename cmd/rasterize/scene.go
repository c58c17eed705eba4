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

package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/raster"
	"seehuhn.de/go/raster/canvas"
)

// Scene is the contents of a scene file.
type Scene struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Encoding   string  `yaml:"encoding"`
	Background string  `yaml:"background"`
	Shapes     []Shape `yaml:"shapes"`
}

// Shape is one path, together with the operations applied to it.
type Shape struct {
	Path      []string  `yaml:"path"`
	Transform []float64 `yaml:"transform"`
	Fill      *Paint    `yaml:"fill"`
	Stroke    *Stroke   `yaml:"stroke"`
}

// Paint describes the source colors and the compositing rule.
type Paint struct {
	Color     string    `yaml:"color"`
	Opacity   *int      `yaml:"opacity"`
	Rule      string    `yaml:"rule"`
	Quality   string    `yaml:"quality"`
	Blend     string    `yaml:"blend"`
	Op        string    `yaml:"op"`
	Antialias *bool     `yaml:"antialias"`
	Gradient  *Gradient `yaml:"gradient"`
}

// Stroke adds the stroke geometry to a Paint.
type Stroke struct {
	Paint      `yaml:",inline"`
	Width      float64   `yaml:"width"`
	Cap        string    `yaml:"cap"`
	Join       string    `yaml:"join"`
	MiterLimit float64   `yaml:"miter_limit"`
	Dash       []float64 `yaml:"dash"`
	DashOffset float64   `yaml:"dash_offset"`
}

// Gradient describes a linear or radial gradient in device coordinates.
type Gradient struct {
	Type   string    `yaml:"type"` // "linear" or "radial"
	From   []float64 `yaml:"from"` // start point, or center
	To     []float64 `yaml:"to"`   // end point, linear only
	Radius float64   `yaml:"radius"`
	Extend string    `yaml:"extend"`
	Stops  []struct {
		Offset float64 `yaml:"offset"`
		Color  string  `yaml:"color"`
	} `yaml:"stops"`
}

// Defaults returns the scene settings used for missing fields.
func Defaults() Scene {
	return Scene{
		Width:      256,
		Height:     256,
		Encoding:   "rgba",
		Background: "#ffffff",
	}
}

// LoadScene reads a scene file.
func LoadScene(fname string) (*Scene, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	s, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return s, nil
}

// ParseScene decodes a scene from YAML.
func ParseScene(data []byte) (*Scene, error) {
	s := Defaults()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", s.Width, s.Height)
	}
	return &s, nil
}

var encodings = map[string]canvas.PixelCoder{
	"rgba":   canvas.RGBA8888Packed32,
	"bgra":   canvas.BGRA8888Packed32,
	"rgb888": canvas.RGB888Packed32,
	"rgb565": canvas.RGB565,
	"gray":   canvas.Gray8,
}

// Render draws the scene onto a new canvas.
func (s *Scene) Render(opts ...canvas.Option) (*canvas.Canvas, error) {
	coder, ok := encodings[strings.ToLower(s.Encoding)]
	if !ok {
		return nil, fmt.Errorf("unknown encoding %q", s.Encoding)
	}
	bg, err := canvas.ParseColor(s.Background)
	if err != nil {
		return nil, err
	}

	c, err := canvas.New(s.Width, s.Height, coder, opts...)
	if err != nil {
		return nil, err
	}
	if err := c.Clear(bg); err != nil {
		return nil, err
	}

	for i, shape := range s.Shapes {
		err := shape.draw(c)
		if err != nil {
			c.Release()
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
	}
	return c, nil
}

func (sh *Shape) draw(c *canvas.Canvas) error {
	p, err := ParsePath(sh.Path)
	if err != nil {
		return err
	}
	var m matrix.Matrix
	switch len(sh.Transform) {
	case 0:
		m = matrix.Identity
	case 6:
		copy(m[:], sh.Transform)
	default:
		return fmt.Errorf("transform needs 6 entries, not %d", len(sh.Transform))
	}

	if sh.Fill != nil {
		st, err := sh.Fill.stencil(m)
		if err != nil {
			return fmt.Errorf("fill: %w", err)
		}
		if err := c.Fill(p, st); err != nil {
			return fmt.Errorf("fill: %w", err)
		}
	}
	if sh.Stroke != nil {
		st, err := sh.Stroke.stencil(m)
		if err != nil {
			return fmt.Errorf("stroke: %w", err)
		}
		k, err := sh.Stroke.stroker()
		if err != nil {
			return fmt.Errorf("stroke: %w", err)
		}
		if err := c.Stroke(p, st, k); err != nil {
			return fmt.Errorf("stroke: %w", err)
		}
	}
	return nil
}

var (
	fillRules = map[string]raster.FillRule{
		"":        raster.NonZero,
		"nonzero": raster.NonZero,
		"evenodd": raster.EvenOdd,
	}
	qualities = map[string]raster.Quality{
		"":         raster.QualityHigh,
		"fast":     raster.QualityFast,
		"balanced": raster.QualityBalanced,
		"high":     raster.QualityHigh,
		"best":     raster.QualityBest,
	}
	lineCaps = map[string]graphics.LineCapStyle{
		"":       graphics.LineCapButt,
		"butt":   graphics.LineCapButt,
		"round":  graphics.LineCapRound,
		"square": graphics.LineCapSquare,
	}
	lineJoins = map[string]graphics.LineJoinStyle{
		"":      graphics.LineJoinMiter,
		"miter": graphics.LineJoinMiter,
		"round": graphics.LineJoinRound,
		"bevel": graphics.LineJoinBevel,
	}
	extendModes = map[string]canvas.ExtendMode{
		"":        canvas.ExtendPad,
		"pad":     canvas.ExtendPad,
		"repeat":  canvas.ExtendRepeat,
		"reflect": canvas.ExtendReflect,
	}
)

func lookup[T any](table map[string]T, what, name string) (T, error) {
	v, ok := table[strings.ToLower(name)]
	if !ok {
		return v, fmt.Errorf("unknown %s %q", what, name)
	}
	return v, nil
}

func (p *Paint) stencil(m matrix.Matrix) (canvas.Stencil, error) {
	s := canvas.NewStencil()
	s.Transform = m

	var err error
	if s.Rule, err = lookup(fillRules, "fill rule", p.Rule); err != nil {
		return s, err
	}
	if s.Quality, err = lookup(qualities, "quality", p.Quality); err != nil {
		return s, err
	}
	if p.Blend != "" {
		if s.Blend, err = canvas.ParseBlendMode(p.Blend); err != nil {
			return s, err
		}
	}
	if p.Op != "" {
		if s.Op, err = canvas.ParseCompositeOp(p.Op); err != nil {
			return s, err
		}
	}
	if p.Opacity != nil {
		if *p.Opacity < 0 || *p.Opacity > 255 {
			return s, fmt.Errorf("opacity %d out of range", *p.Opacity)
		}
		s.Opacity = uint8(*p.Opacity)
	}
	if p.Antialias != nil {
		s.Antialias = *p.Antialias
	}

	switch {
	case p.Gradient != nil:
		s.Sampler, err = p.Gradient.sampler()
		if err != nil {
			return s, err
		}
	case p.Color != "":
		col, err := canvas.ParseColor(p.Color)
		if err != nil {
			return s, err
		}
		s.Sampler = canvas.FlatColor(col)
	}
	return s, nil
}

func (st *Stroke) stroker() (canvas.Stroker, error) {
	k := canvas.NewStroker(st.Width)
	if st.Width == 0 {
		k.Width = 1
	}
	if st.MiterLimit != 0 {
		k.MiterLimit = st.MiterLimit
	}
	k.Dash = st.Dash
	k.DashOffset = st.DashOffset

	var err error
	if k.Cap, err = lookup(lineCaps, "line cap", st.Cap); err != nil {
		return k, err
	}
	if k.Join, err = lookup(lineJoins, "line join", st.Join); err != nil {
		return k, err
	}
	return k, nil
}

func point(xy []float64) (vec.Vec2, error) {
	if len(xy) != 2 {
		return vec.Vec2{}, fmt.Errorf("point needs 2 coordinates, not %d", len(xy))
	}
	return vec.Vec2{X: xy[0], Y: xy[1]}, nil
}

func (g *Gradient) sampler() (canvas.Sampler, error) {
	extend, err := lookup(extendModes, "extend mode", g.Extend)
	if err != nil {
		return nil, err
	}
	from, err := point(g.From)
	if err != nil {
		return nil, err
	}

	var addStop func(float64, canvas.Color)
	var res canvas.Sampler
	switch g.Type {
	case "linear", "":
		to, err := point(g.To)
		if err != nil {
			return nil, err
		}
		lin := canvas.NewLinearGradient(from, to, extend)
		addStop = func(o float64, c canvas.Color) { lin.AddStop(o, c) }
		res = lin
	case "radial":
		rad := canvas.NewRadialGradient(from, g.Radius, extend)
		addStop = func(o float64, c canvas.Color) { rad.AddStop(o, c) }
		res = rad
	default:
		return nil, fmt.Errorf("unknown gradient type %q", g.Type)
	}

	for _, stop := range g.Stops {
		col, err := canvas.ParseColor(stop.Color)
		if err != nil {
			return nil, err
		}
		addStop(stop.Offset, col)
	}
	return res, nil
}

var errPathSyntax = errors.New("path syntax error")

// pathArgs gives the number of arguments of each path operator.
var pathArgs = map[string]int{"M": 2, "L": 2, "Q": 4, "C": 6, "E": 7, "Z": 0}

// ParsePath converts a list of path commands into a path.  Each entry
// holds one command letter followed by its numeric arguments:
//
//	M x y
//	L x y
//	Q cx cy x y
//	C c1x c1y c2x c2y x y
//	E cx cy rx ry rotation start end [acw]
//	Z
//
// Angles are in degrees.
func ParsePath(cmds []string) (*raster.Path, error) {
	p := raster.NewPath()
	for i, cmd := range cmds {
		fields := strings.Fields(cmd)
		if len(fields) == 0 {
			return nil, fmt.Errorf("command %d is empty: %w", i, errPathSyntax)
		}
		op, args := strings.ToUpper(fields[0]), fields[1:]

		anticlockwise := false
		if op == "E" && len(args) == 8 && strings.EqualFold(args[7], "acw") {
			anticlockwise = true
			args = args[:7]
		}

		n, ok := pathArgs[op]
		if !ok {
			return nil, fmt.Errorf("command %d: unknown operator %q: %w", i, fields[0], errPathSyntax)
		}
		if len(args) != n {
			return nil, fmt.Errorf("command %d: %s needs %d arguments: %w", i, op, n, errPathSyntax)
		}
		x := make([]float64, n)
		for j, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return nil, fmt.Errorf("command %d: %w", i, err)
			}
			x[j] = v
		}

		switch op {
		case "M":
			p.MoveTo(vec.Vec2{X: x[0], Y: x[1]})
		case "L":
			p.LineTo(vec.Vec2{X: x[0], Y: x[1]})
		case "Q":
			p.QuadTo(vec.Vec2{X: x[0], Y: x[1]}, vec.Vec2{X: x[2], Y: x[3]})
		case "C":
			p.CubeTo(vec.Vec2{X: x[0], Y: x[1]}, vec.Vec2{X: x[2], Y: x[3]}, vec.Vec2{X: x[4], Y: x[5]})
		case "E":
			deg := func(a float64) float64 { return a * math.Pi / 180 }
			p.Ellipse(vec.Vec2{X: x[0], Y: x[1]}, x[2], x[3], deg(x[4]), deg(x[5]), deg(x[6]), anticlockwise)
		case "Z":
			p.Close()
		}
	}
	return p, nil
}
