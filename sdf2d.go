// Package sdf2d implements analytic 2D signed distance functions and the
// operations to combine them. Distances are negative inside a shape, positive
// outside and zero on the boundary. All primitives operate in normalized
// shape space: the shape's canonical extent is centered at the origin with
// radius close to 1.
//
// The [Normalize] and [HeartCenter] helpers map pixel coordinates of a
// rectangular region into that space. Rasterization of distance fields lives
// in the render subpackage and bytecode evaluation in the sdfvm subpackage.
package sdf2d

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
)

const (
	sqrt3 = 1.7320508075688772935274463415058723669428052538103806280558069794
	// Pentagon fold constants: (cos, sin) of 36 degrees and tan of the same.
	pentaKx = 0.809016994
	pentaKy = 0.587785252
	pentaKz = 0.726542528
)

// Normalize maps a pixel coordinate within a region of resolution res to a
// centered coordinate system with unit y-extent: (2*pos - res)/res.y.
func Normalize(pos, res ms2.Vec) ms2.Vec {
	p := ms2.Scale(2, pos)
	p = ms2.Sub(p, res)
	return ms2.Scale(1/res.Y, p)
}

// HeartCenter maps a pixel coordinate so that the canonical heart shape of
// [Heart] fits the region: y is flipped and shifted down by half a unit.
func HeartCenter(pos, res ms2.Vec) ms2.Vec {
	return ms2.Vec{
		X: (2*pos.X - res.X) / res.Y,
		Y: (2*(res.Y-pos.Y)-res.Y)/res.Y + 0.5,
	}
}

// SmoothStep performs smooth cubic Hermite interpolation between edges e0 and
// e1. Equivalent to the GLSL builtin of the same name.
func SmoothStep(e0, e1, x float32) float32 {
	t := clampf((x-e0)/(e1-e0), 0, 1)
	return t * t * (3 - 2*t)
}

func minf(a, b float32) float32 {
	return math32.Min(a, b)
}

func maxf(a, b float32) float32 {
	return math32.Max(a, b)
}

func absf(a float32) float32 {
	return math32.Abs(a)
}

func signf(a float32) float32 {
	if a == 0 {
		return 0
	}
	return math32.Copysign(1, a)
}

func clampf(v, Min, Max float32) float32 {
	if v < Min {
		return Min
	} else if v > Max {
		return Max
	}
	return v
}

func mixf(x, y, a float32) float32 {
	return x*(1-a) + y*a
}

func dot2(p ms2.Vec) float32 {
	return ms2.Dot(p, p)
}

// ndot returns the negative dot product ax*bx - ay*by
func ndot(a, b ms2.Vec) float32 {
	return a.X*b.X - a.Y*b.Y
}
