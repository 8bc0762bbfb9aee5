// Package render rasterizes signed distance fields into a linear RGB
// framebuffer. A framebuffer is a caller-owned row-major []ms3.Vec with
// channel values in [0,1]. [Draw] fills a rectangular region by fanning the
// region's rows out over a fixed pool of workers; the per-pixel work is a
// [Shader], either a native distance function adapter or a bytecode program
// running on a per-worker virtual machine.
package render

import (
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
)

// DefaultFeather is the width of the analytic anti-aliasing band in
// normalized shape-space units.
const DefaultFeather = 0.03

// Region is the affected sub-rectangle of a draw call: upper-left origin
// and extent in pixels.
type Region struct {
	X, Y, W, H float32
}

// RegionOf is shorthand for a Region literal.
func RegionOf(x, y, w, h float32) Region {
	return Region{X: x, Y: y, W: w, H: h}
}

// Size returns the region extent as a vector.
func (r Region) Size() ms2.Vec {
	return ms2.Vec{X: r.W, Y: r.H}
}

// Context carries the immutable per-draw inputs seen by every shader
// invocation.
type Context struct {
	// Resolution is the full image resolution, not the region size.
	Resolution ms2.Vec
	// Region being drawn. Shaders receive pixel coordinates relative to
	// its origin.
	Region *Region
	// UserData is caller state threaded through untouched.
	UserData any
}

// Shader computes one output color per pixel.
//
// Shade receives a mutable reference to exactly one pixel and the pixel's
// coordinate st relative to the region origin. It may read-modify-write the
// pixel; on error it must leave the pixel unchanged.
//
// Clone returns an instance for exclusive use by one worker. Stateless
// shaders return themselves; shaders with scratch state (a VM instance)
// return a private copy. The rasterizer calls Clone once per worker before
// spawning.
type Shader interface {
	Shade(frag *ms3.Vec, st ms2.Vec, ctx *Context) error
	Clone() Shader
}

// ShaderFunc adapts a stateless function to the [Shader] interface.
type ShaderFunc func(frag *ms3.Vec, st ms2.Vec, ctx *Context) error

func (f ShaderFunc) Shade(frag *ms3.Vec, st ms2.Vec, ctx *Context) error {
	return f(frag, st, ctx)
}

func (f ShaderFunc) Clone() Shader { return f }

// RGBColor converts 8-bit channel values to a linear [0,1] color.
func RGBColor(r, g, b int) ms3.Vec {
	const scale = 1.0 / 255
	return ms3.Vec{X: float32(r) * scale, Y: float32(g) * scale, Z: float32(b) * scale}
}
