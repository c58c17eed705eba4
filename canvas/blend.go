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

package canvas

import (
	"fmt"
	"math"
)

// BlendMode selects how source and backdrop colors are mixed where
// both are present.  The separable modes of the W3C compositing
// specification are supported.
type BlendMode uint8

// Supported blend modes.
const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
)

var blendModeNames = []string{
	BlendNormal:     "normal",
	BlendMultiply:   "multiply",
	BlendScreen:     "screen",
	BlendOverlay:    "overlay",
	BlendDarken:     "darken",
	BlendLighten:    "lighten",
	BlendColorDodge: "color-dodge",
	BlendColorBurn:  "color-burn",
	BlendHardLight:  "hard-light",
	BlendSoftLight:  "soft-light",
	BlendDifference: "difference",
	BlendExclusion:  "exclusion",
}

func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", m)
}

// ParseBlendMode returns the blend mode with the given name, as returned
// by [BlendMode.String].
func ParseBlendMode(name string) (BlendMode, error) {
	for i, n := range blendModeNames {
		if n == name {
			return BlendMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown blend mode %q", name)
}

// channelBlend returns B(cb, cs) for straight color components.
type channelBlend func(cb, cs float32) float32

// channelFunc returns nil for BlendNormal.
func (m BlendMode) channelFunc() channelBlend {
	switch m {
	case BlendMultiply:
		return func(cb, cs float32) float32 { return cb * cs }
	case BlendScreen:
		return screen
	case BlendOverlay:
		return func(cb, cs float32) float32 { return hardLight(cs, cb) }
	case BlendDarken:
		return func(cb, cs float32) float32 { return min(cb, cs) }
	case BlendLighten:
		return func(cb, cs float32) float32 { return max(cb, cs) }
	case BlendColorDodge:
		return colorDodge
	case BlendColorBurn:
		return colorBurn
	case BlendHardLight:
		return hardLight
	case BlendSoftLight:
		return softLight
	case BlendDifference:
		return func(cb, cs float32) float32 {
			if cb > cs {
				return cb - cs
			}
			return cs - cb
		}
	case BlendExclusion:
		return func(cb, cs float32) float32 { return cb + cs - 2*cb*cs }
	default:
		return nil
	}
}

func screen(cb, cs float32) float32 {
	return cb + cs - cb*cs
}

func hardLight(cb, cs float32) float32 {
	if cs <= 0.5 {
		return cb * 2 * cs
	}
	return screen(cb, 2*cs-1)
}

func colorDodge(cb, cs float32) float32 {
	switch {
	case cb == 0:
		return 0
	case cs >= 1:
		return 1
	default:
		return min(1, cb/(1-cs))
	}
}

func colorBurn(cb, cs float32) float32 {
	switch {
	case cb >= 1:
		return 1
	case cs <= 0:
		return 0
	default:
		return 1 - min(1, (1-cb)/cs)
	}
}

func softLight(cb, cs float32) float32 {
	if cs <= 0.5 {
		return cb - (1-2*cs)*cb*(1-cb)
	}
	var d float32
	if cb <= 0.25 {
		d = ((16*cb-12)*cb + 4) * cb
	} else {
		d = float32(math.Sqrt(float64(cb)))
	}
	return cb + (2*cs-1)*(d-cb)
}

// CompositeOp is a Porter-Duff compositing operator.
type CompositeOp uint8

// Supported compositing operators.
const (
	OpSourceOver CompositeOp = iota
	OpClear
	OpCopy
	OpDestination
	OpDestinationOver
	OpSourceIn
	OpDestinationIn
	OpSourceOut
	OpDestinationOut
	OpSourceAtop
	OpDestinationAtop
	OpXor
	OpPlus

	// OpFastSourceOverOnOpaque is OpSourceOver for a destination which is
	// known to be opaque.  Destination alpha is neither read nor updated.
	OpFastSourceOverOnOpaque
)

var compositeOpNames = []string{
	OpSourceOver:             "source-over",
	OpClear:                  "clear",
	OpCopy:                   "copy",
	OpDestination:            "destination",
	OpDestinationOver:        "destination-over",
	OpSourceIn:               "source-in",
	OpDestinationIn:          "destination-in",
	OpSourceOut:              "source-out",
	OpDestinationOut:         "destination-out",
	OpSourceAtop:             "source-atop",
	OpDestinationAtop:        "destination-atop",
	OpXor:                    "xor",
	OpPlus:                   "plus",
	OpFastSourceOverOnOpaque: "source-over-opaque",
}

func (op CompositeOp) String() string {
	if int(op) < len(compositeOpNames) {
		return compositeOpNames[op]
	}
	return fmt.Sprintf("CompositeOp(%d)", op)
}

// ParseCompositeOp returns the operator with the given name, as returned
// by [CompositeOp.String].
func ParseCompositeOp(name string) (CompositeOp, error) {
	for i, n := range compositeOpNames {
		if n == name {
			return CompositeOp(i), nil
		}
	}
	return 0, fmt.Errorf("unknown compositing operator %q", name)
}

// factors returns the Porter-Duff weights Fa and Fb of source and
// destination, given the source and destination alpha.
func (op CompositeOp) factors(as, ab float32) (fa, fb float32) {
	switch op {
	case OpClear:
		return 0, 0
	case OpCopy:
		return 1, 0
	case OpDestination:
		return 0, 1
	case OpDestinationOver:
		return 1 - ab, 1
	case OpSourceIn:
		return ab, 0
	case OpDestinationIn:
		return 0, as
	case OpSourceOut:
		return 1 - ab, 0
	case OpDestinationOut:
		return 0, 1 - as
	case OpSourceAtop:
		return ab, 1 - as
	case OpDestinationAtop:
		return 1 - ab, as
	case OpXor:
		return 1 - ab, 1 - as
	case OpPlus:
		return 1, 1
	default: // OpSourceOver, OpFastSourceOverOnOpaque
		return 1, 1 - as
	}
}

// compositor combines one source pixel with one destination pixel.
type compositor struct {
	blend   channelBlend
	op      CompositeOp
	opacity float32
}

// apply returns the new destination color.  The coverage cov acts as a
// mask on the composited result.
func (m *compositor) apply(src, dst Color, cov float32) Color {
	as := float32(src.A) / 255 * m.opacity
	ab := float32(dst.A) / 255
	if m.op == OpFastSourceOverOnOpaque {
		ab = 1
	}

	cs := [3]float32{float32(src.R) / 255, float32(src.G) / 255, float32(src.B) / 255}
	cb := [3]float32{float32(dst.R) / 255, float32(dst.G) / 255, float32(dst.B) / 255}
	if m.blend != nil && ab > 0 {
		for i := range cs {
			cs[i] = (1-ab)*cs[i] + ab*m.blend(cb[i], cs[i])
		}
	}

	fa, fb := m.op.factors(as, ab)
	wa, wb := as*fa, ab*fb
	res := fcolor{
		r: wa*cs[0] + wb*cb[0],
		g: wa*cs[1] + wb*cb[1],
		b: wa*cs[2] + wb*cb[2],
		a: wa + wb,
	}
	if m.op == OpPlus {
		res = fcolor{r: min(res.r, 1), g: min(res.g, 1), b: min(res.b, 1), a: min(res.a, 1)}
	}

	if cov < 1 {
		d := fcolor{r: ab * cb[0], g: ab * cb[1], b: ab * cb[2], a: ab}
		res = fcolor{
			r: d.r + cov*(res.r-d.r),
			g: d.g + cov*(res.g-d.g),
			b: d.b + cov*(res.b-d.b),
			a: d.a + cov*(res.a-d.a),
		}
	}
	out := res.straight()
	if m.op == OpFastSourceOverOnOpaque {
		out.A = dst.A
	}
	return out
}
